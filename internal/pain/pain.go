// Package pain adapts prescribed exercises to reported pain and produces the
// corrective work for each affected area.
package pain

import (
	"fmt"
	"sort"

	"github.com/2beens/liftplan/internal/catalog"
	"github.com/2beens/liftplan/internal/training"

	log "github.com/sirupsen/logrus"
)

const (
	stage = "pain"

	IntensityLight = "light"

	correctiveSets      = 2
	correctiveReps      = 12
	correctiveRepsLabel = "12-15"
	correctiveRest      = "30s"
	// per area, to keep the weekly corrective load schedulable
	maxCorrectivesPerArea = 2
)

// Corrective is a rehab exercise tied to the area that triggered it.
type Corrective struct {
	Area     training.BodyArea
	Severity int
	Spec     training.ExerciseSpec
}

type Adapter struct {
	catalog *catalog.Catalog
}

func NewAdapter(cat *catalog.Catalog) *Adapter {
	return &Adapter{catalog: cat}
}

// Sanitize drops invalid entries and merges repeated areas, keeping the
// highest severity. Area labels are normalized, so aliases are accepted.
// The result is ordered by descending severity.
func Sanitize(pains []training.PainEntry) []training.PainEntry {
	byArea := make(map[training.BodyArea]int, len(pains))
	for _, p := range pains {
		area, err := training.ParseBodyArea(string(p.Area))
		if err != nil {
			log.Warnf("pain: dropping entry: %s", err)
			continue
		}
		p.Area = area
		if err := p.Validate(); err != nil {
			log.Warnf("pain: dropping %s entry: %s", area, err)
			continue
		}
		if p.Severity > byArea[area] {
			byArea[area] = p.Severity
		}
	}

	out := make([]training.PainEntry, 0, len(byArea))
	for area, severity := range byArea {
		out = append(out, training.PainEntry{Area: area, Severity: severity})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity > out[j].Severity
		}
		return out[i].Area < out[j].Area
	})
	return out
}

// Adapt applies the pain policy to one exercise and returns the adapted copy
// along with the correctives for the areas that affected it. Exercises are
// never removed and correctives are returned untouched.
func (a *Adapter) Adapt(
	spec training.ExerciseSpec,
	pains []training.PainEntry,
	rec training.Recorder,
) (training.ExerciseSpec, []Corrective) {
	rec = training.OrDiscard(rec)
	out := spec.Clone()
	if spec.Pattern == training.Corrective {
		return out, nil
	}

	worst, ok := a.worstRelevant(spec.Pattern, pains)
	if !ok {
		return out, nil
	}

	band := worst.Band()
	switch {
	case band == training.PainMild:
		out.AddNote(fmt.Sprintf("Mild %s discomfort: extend the warm-up and stop if pain increases", worst.Area))
		rec.Record(training.DecisionEvent{
			Stage:   stage,
			Kind:    training.EventDecision,
			Pattern: spec.Pattern,
			Subject: string(worst.Area),
			Detail:  "mild pain, note only",
		})
		return out, nil

	case spec.WasSubstituted && spec.SubstitutionReason == training.ReasonPainSubstitution:
		out.AddNote(fmt.Sprintf("Replaces %s because of %s pain", spec.OriginalName, worst.Area))
		rec.Record(training.DecisionEvent{
			Stage:   stage,
			Kind:    training.EventDecision,
			Pattern: spec.Pattern,
			Subject: string(worst.Area),
			Detail:  fmt.Sprintf("%s pain, kept substitute %s", band, spec.Name),
		})

	default:
		reduce(&out)
		out.AddNote(fmt.Sprintf("Reduced volume for %s pain", worst.Area))
		rec.Record(training.DecisionEvent{
			Stage:   stage,
			Kind:    training.EventFallbackUsed,
			Pattern: spec.Pattern,
			Subject: string(worst.Area),
			Detail:  fmt.Sprintf("%s pain without substitute, sets now %d at %s", band, out.Sets, out.Intensity),
		})
	}

	if band == training.PainSevere {
		out.AddNote("Work in a pain-free range of motion and keep intensity low")
	}

	return out, a.correctivesFor(worst)
}

// Correctives returns the corrective work for every area at moderate or
// severe pain, highest severity first.
func (a *Adapter) Correctives(pains []training.PainEntry, rec training.Recorder) []Corrective {
	rec = training.OrDiscard(rec)
	sorted := append([]training.PainEntry(nil), pains...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})

	var out []Corrective
	for _, p := range sorted {
		cs := a.correctivesFor(p)
		if len(cs) == 0 {
			continue
		}
		rec.Record(training.DecisionEvent{
			Stage:   stage,
			Kind:    training.EventRuleMatched,
			Subject: string(p.Area),
			Detail:  fmt.Sprintf("%d correctives for %s pain", len(cs), p.Band()),
		})
		out = append(out, cs...)
	}
	return out
}

func (a *Adapter) correctivesFor(p training.PainEntry) []Corrective {
	if !p.Band().Substitutes() {
		return nil
	}
	names := a.catalog.Correctives(p.Area)
	if len(names) > maxCorrectivesPerArea {
		names = names[:maxCorrectivesPerArea]
	}

	out := make([]Corrective, 0, len(names))
	for _, name := range names {
		out = append(out, Corrective{
			Area:     p.Area,
			Severity: p.Severity,
			Spec: training.ExerciseSpec{
				Pattern:   training.Corrective,
				Name:      name,
				Sets:      correctiveSets,
				Reps:      correctiveReps,
				RepsLabel: correctiveRepsLabel,
				Rest:      correctiveRest,
				Intensity: IntensityLight,
				Notes:     []string{fmt.Sprintf("Corrective for %s", p.Area)},
			},
		})
	}
	return out
}

func (a *Adapter) worstRelevant(p training.Pattern, pains []training.PainEntry) (training.PainEntry, bool) {
	var (
		worst training.PainEntry
		found bool
	)
	for _, entry := range pains {
		if entry.Validate() != nil || !a.catalog.Contraindicated(entry.Area, p) {
			continue
		}
		if !found || entry.Severity > worst.Severity {
			worst, found = entry, true
		}
	}
	return worst, found
}

// reduce drops a set and lowers intensity by one band.
func reduce(spec *training.ExerciseSpec) {
	floor := 1
	if spec.Pattern.IsLower() {
		floor = 2
	}
	spec.Sets = max(floor, spec.Sets-1)
	spec.Intensity = IntensityLight
}
