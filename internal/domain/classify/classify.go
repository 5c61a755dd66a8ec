// Package classify assigns raw document lines to exactly one structural
// category. Classification is pure and carries no parse state; the extractor
// owns the state that turns classified lines into records.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
)

// Kind enumerates the classification variants in precedence order. A line
// matches at most one variant; the first matching one wins.
type Kind int

const (
	Unrecognized Kind = iota
	PersonBoundary
	Metadata
	TierHeader
	ModuleRecord
)

// String returns a stable label for metrics and logging.
func (k Kind) String() string {
	switch k {
	case PersonBoundary:
		return "person_boundary"
	case Metadata:
		return "metadata"
	case TierHeader:
		return "tier_header"
	case ModuleRecord:
		return "module_record"
	default:
		return "unrecognized"
	}
}

// personAnchor marks the start of a new person's training plan. The person's
// name sits on an earlier line; recovering it is the extractor's job.
const personAnchor = "Ziel der modularen Grundlagenausbildung"

var (
	modulePattern   = regexp.MustCompile(`MGA - (\S+) (.+?) ((?:[TPK]: \d+:\d+/\d+:\d+\s*)+) (Absolviert|In Arbeit|Nicht absolviert)`)
	hourPairPattern = regexp.MustCompile(`([TPK]): (\d+:\d+)/(\d+:\d+)`)
	tierPattern     = regexp.MustCompile(`MGA - (QS\d+|Ergänzungsmodule)(?: - .+)?`)
)

// metaPatterns pairs each metadata category with its line pattern, in the
// fixed enumeration order. A line matching several categories is stored under
// the first matching one only.
var metaPatterns = []struct {
	key model.MetaKey
	re  *regexp.Regexp
}{
	{model.MetaFirstAid, regexp.MustCompile(`(Erste-Hilfe|Ausbildung in Erster Hilfe)`)},
	{model.MetaReadiness, regexp.MustCompile(`Qualifikationsstufe Einsatzfähigkeit`)},
	{model.MetaTeamMember, regexp.MustCompile(`Qualifikationsstufe Truppmitglied`)},
	{model.MetaTeamLeader, regexp.MustCompile(`Qualifikationsstufe Truppführende`)},
	{model.MetaBreathingApparatus, regexp.MustCompile(`Atemschutzgeräteträger`)},
	{model.MetaRadioOperator, regexp.MustCompile(`Sprechfunker Digitalfunk`)},
}

// Hours carries one parsed category pair in fractional hours.
type Hours struct {
	Ist  float64
	Soll float64
}

// Module carries the decomposed fields of a module record line. Hours is
// keyed by category letter (T, P, K); categories absent from the line are
// absent from the map.
type Module struct {
	ID     string
	Title  string
	Status model.Status
	Hours  map[string]Hours
}

// Result is the tagged outcome of classifying one line. Exactly one of the
// variant fields is meaningful, selected by Kind.
type Result struct {
	Kind    Kind
	MetaKey model.MetaKey // Metadata only
	Tier    string        // TierHeader only
	Module  Module        // ModuleRecord only
}

// Classify assigns line to exactly one variant. Precedence, first match wins:
// person boundary, metadata, tier header, module record. A module line can
// never be misread as a tier header because tier codes are restricted to
// QS<digits> and the Ergänzungsmodule section. Everything else is
// Unrecognized.
func Classify(line string) Result {
	if strings.Contains(line, personAnchor) {
		return Result{Kind: PersonBoundary}
	}
	for _, mp := range metaPatterns {
		if mp.re.MatchString(line) {
			return Result{Kind: Metadata, MetaKey: mp.key}
		}
	}
	if m := tierPattern.FindStringSubmatch(line); m != nil {
		return Result{Kind: TierHeader, Tier: strings.TrimSpace(m[1])}
	}
	if m := modulePattern.FindStringSubmatch(line); m != nil {
		return Result{Kind: ModuleRecord, Module: parseModule(m)}
	}
	return Result{Kind: Unrecognized}
}

func parseModule(m []string) Module {
	hours := make(map[string]Hours, 3)
	for _, h := range hourPairPattern.FindAllStringSubmatch(m[3], -1) {
		hours[h[1]] = Hours{Ist: ParseClock(h[2]), Soll: ParseClock(h[3])}
	}
	return Module{
		ID:     m[1],
		Title:  strings.TrimSpace(m[2]),
		Status: model.Status(m[4]),
		Hours:  hours,
	}
}

// ParseClock converts an H:MM string to fractional hours. Malformed or empty
// input yields 0 rather than an error; a broken time value must not discard
// an otherwise valid module line.
func ParseClock(s string) float64 {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 {
		return 0
	}
	return float64(hours) + float64(minutes)/60
}
