// Package model contains domain models passed between layers.
package model

// Sentinel values for records whose context could not be resolved.
const (
	// UnknownPerson marks records whose owning person could not be
	// determined. Such records are excluded from per-person and cohort
	// aggregation by the callers that build those views.
	UnknownPerson = "Unknown"

	// DefaultTier is the qualification tier assigned to records that were
	// not preceded by a tier header.
	DefaultTier = "Sonstige"
)

// Status is the completion state of a module, read verbatim from the source
// document. It is independent from the hour-based progress value; the two may
// legitimately disagree.
type Status string

const (
	StatusCompleted    Status = "Absolviert"
	StatusInProgress   Status = "In Arbeit"
	StatusNotCompleted Status = "Nicht absolviert"
)

// MetaKey identifies one of the fixed metadata categories that can precede a
// person's module lines in the source document.
type MetaKey string

const (
	MetaFirstAid           MetaKey = "Erste Hilfe"
	MetaReadiness          MetaKey = "Einsatzfähigkeit"
	MetaTeamMember         MetaKey = "Truppmitglied"
	MetaTeamLeader         MetaKey = "Truppführer"
	MetaBreathingApparatus MetaKey = "Atemschutz"
	MetaRadioOperator      MetaKey = "Sprechfunk"
)

// MetaKeys lists all metadata categories in classification precedence order.
// A line matching several categories is assigned to the first one only.
var MetaKeys = []MetaKey{
	MetaFirstAid,
	MetaReadiness,
	MetaTeamMember,
	MetaTeamLeader,
	MetaBreathingApparatus,
	MetaRadioOperator,
}

// TrainingRecord is one row per (person, module) occurrence observed in a
// document. Records are created once by the extractor, in full, and never
// mutated afterwards. ModuleID is unique within a person's record set only if
// the source document lists each module once; repeated lines are kept as
// separate records.
//
// Hour fields are fractional hours per category: T (theory), P (practice) and
// K (other), each with an Ist (actual) and Soll (target) value. The JSON
// field names mirror the source document's column vocabulary.
type TrainingRecord struct {
	PersonName string `json:"person_name"`
	ModuleID   string `json:"module_id"`
	Title      string `json:"title"`
	Status     Status `json:"status"`
	QSLevel    string `json:"qs_level"`

	TIst  float64 `json:"T_Ist"`
	TSoll float64 `json:"T_Soll"`
	PIst  float64 `json:"P_Ist"`
	PSoll float64 `json:"P_Soll"`
	KIst  float64 `json:"K_Ist"`
	KSoll float64 `json:"K_Soll"`

	// Meta is the metadata snapshot taken at the moment this record was
	// emitted. Later metadata lines for the same person do not alter it.
	Meta map[MetaKey]string `json:"meta,omitempty"`
}

// CloneMeta returns a deep copy of the record's metadata snapshot, or nil if
// the record carries none.
func (r TrainingRecord) CloneMeta() map[MetaKey]string {
	if len(r.Meta) == 0 {
		return nil
	}
	out := make(map[MetaKey]string, len(r.Meta))
	for k, v := range r.Meta {
		out[k] = v
	}
	return out
}
