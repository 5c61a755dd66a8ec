// Package progress derives completion metrics from training records. All
// functions are pure and total: they never mutate their input, return defined
// zero values for empty input, and are safe for concurrent use over shared
// record slices.
package progress

import (
	"math"
	"sort"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
)

const maxProgress = 100.0

// Derived holds the per-record values computed from the hour fields. They are
// computed on demand and never stored on the parse output.
type Derived struct {
	TotalIst     float64 `json:"Total_Ist"`
	TotalSoll    float64 `json:"Total_Soll"`
	EffectiveIst float64 `json:"Effective_Ist"`
	Progress     float64 `json:"Progress"`
}

// Derive computes totals, the non-compensating effective hours and the
// clamped progress percentage for one record. Each category's actual hours
// are capped at that category's target before summing, so surplus in one
// category never offsets a shortfall in another. A record with no required
// hours is trivially satisfied.
func Derive(r model.TrainingRecord) Derived {
	d := Derived{
		TotalIst:  r.TIst + r.PIst + r.KIst,
		TotalSoll: r.TSoll + r.PSoll + r.KSoll,
		EffectiveIst: math.Min(r.TIst, r.TSoll) +
			math.Min(r.PIst, r.PSoll) +
			math.Min(r.KIst, r.KSoll),
	}
	if d.TotalSoll <= 0 {
		d.Progress = maxProgress
		return d
	}
	d.Progress = math.Min(maxProgress, d.EffectiveIst/d.TotalSoll*maxProgress)
	return d
}

// Summary aggregates one record set.
type Summary struct {
	TotalModules     int     `json:"total_modules"`
	CompletedModules int     `json:"completed_modules"`
	TotalHoursIst    float64 `json:"total_hours_ist"`
	TotalHoursSoll   float64 `json:"total_hours_soll"`
	OverallProgress  float64 `json:"overall_progress"`
}

// Summarize aggregates records into a Summary. OverallProgress is module-count
// based, not hour based: the share of records whose status is Absolviert.
// An empty input yields the zero Summary.
func Summarize(records []model.TrainingRecord) Summary {
	s := Summary{TotalModules: len(records)}
	for _, r := range records {
		if r.Status == model.StatusCompleted {
			s.CompletedModules++
		}
		d := Derive(r)
		s.TotalHoursIst += d.TotalIst
		s.TotalHoursSoll += d.TotalSoll
	}
	if s.TotalModules > 0 {
		s.OverallProgress = float64(s.CompletedModules) / float64(s.TotalModules) * maxProgress
	}
	return s
}

// PersonProgress is one person's completion rollup within a cohort.
type PersonProgress struct {
	Name      string  `json:"name"`
	Progress  float64 `json:"progress"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
}

// ModuleStats reports the completion rate of one (module id, title, tier)
// group across every person that attempted it. Rate uses the group's attempt
// count as denominator, which is deliberately not the same denominator as
// Summary.OverallProgress.
type ModuleStats struct {
	ModuleID  string  `json:"module_id"`
	Title     string  `json:"title"`
	QSLevel   string  `json:"qs_level"`
	Completed int     `json:"completed"`
	Attempts  int     `json:"attempts"`
	Rate      float64 `json:"rate"`
}

// CohortStats rolls a record set up across persons and modules.
type CohortStats struct {
	TotalPeople int              `json:"total_people"`
	PerPerson   []PersonProgress `json:"per_person"`
	PerModule   []ModuleStats    `json:"per_module"`
}

type moduleKey struct {
	id, title, tier string
}

// Cohort computes per-person and per-module rollups. Grouping uses exact
// equality on the grouping fields, and the output is sorted by name (persons)
// and by tier, id, title (modules) so repeated calls over the same records
// are identical regardless of input order. Excluding the unknown-person
// sentinel is the caller's responsibility.
func Cohort(records []model.TrainingRecord) CohortStats {
	if len(records) == 0 {
		return CohortStats{}
	}

	byPerson := make(map[string][]model.TrainingRecord)
	byModule := make(map[moduleKey]*ModuleStats)
	var moduleOrder []moduleKey

	for _, r := range records {
		byPerson[r.PersonName] = append(byPerson[r.PersonName], r)

		key := moduleKey{r.ModuleID, r.Title, r.QSLevel}
		ms, ok := byModule[key]
		if !ok {
			ms = &ModuleStats{ModuleID: r.ModuleID, Title: r.Title, QSLevel: r.QSLevel}
			byModule[key] = ms
			moduleOrder = append(moduleOrder, key)
		}
		ms.Attempts++
		if r.Status == model.StatusCompleted {
			ms.Completed++
		}
	}

	stats := CohortStats{TotalPeople: len(byPerson)}

	names := make([]string, 0, len(byPerson))
	for name := range byPerson {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := Summarize(byPerson[name])
		stats.PerPerson = append(stats.PerPerson, PersonProgress{
			Name:      name,
			Progress:  s.OverallProgress,
			Completed: s.CompletedModules,
			Total:     s.TotalModules,
		})
	}

	sort.Slice(moduleOrder, func(i, j int) bool {
		a, b := moduleOrder[i], moduleOrder[j]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if a.id != b.id {
			return a.id < b.id
		}
		return a.title < b.title
	})
	for _, key := range moduleOrder {
		ms := byModule[key]
		if ms.Attempts > 0 {
			ms.Rate = float64(ms.Completed) / float64(ms.Attempts) * maxProgress
		}
		stats.PerModule = append(stats.PerModule, *ms)
	}

	return stats
}
