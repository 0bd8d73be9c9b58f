package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/liftplan/internal/catalog"
	"github.com/2beens/liftplan/internal/training"
)

const (
	StagePain      = "pain"
	StageEquipment = "equipment"
	StageStrength  = "strength"

	defaultBodyMassKg = 75.0
)

type Verdict int

const (
	// Continue passes the candidate to the next stage.
	Continue Verdict = iota
	// Final stops the pipeline with the candidate as the answer.
	Final
)

// Candidate is the exercise under consideration as it moves through the
// stages.
type Candidate struct {
	Name string
	// NeedsConversion marks a loaded exercise that is unavailable and has to
	// be converted into a bodyweight equivalent.
	NeedsConversion bool
	Resolution      Resolution
}

// Stage is one filter of the resolver pipeline.
type Stage interface {
	Name() string
	Apply(q Query, c Candidate, rec training.Recorder) (Candidate, Verdict)
}

func replace(c Candidate, name, stage string, reason training.ModificationReason) Candidate {
	c.Resolution.Name = name
	c.Resolution.WasSubstituted = !strings.EqualFold(name, c.Resolution.OriginalName)
	c.Resolution.Stage = stage
	c.Resolution.Reason = reason
	c.Name = name
	c.NeedsConversion = false
	return c
}

// PainStage swaps a contraindicated exercise for the first documented
// substitute the user can perform that is not the exercise itself. Moderate
// and severe pain both qualify.
type PainStage struct {
	catalog *catalog.Catalog
}

func NewPainStage(cat *catalog.Catalog) PainStage {
	return PainStage{catalog: cat}
}

func (s PainStage) Name() string { return StagePain }

func (s PainStage) Apply(q Query, c Candidate, rec training.Recorder) (Candidate, Verdict) {
	pains := append([]training.PainEntry(nil), q.Pains...)
	sort.SliceStable(pains, func(i, j int) bool {
		return pains[i].Severity > pains[j].Severity
	})

	eq := q.effectiveEquipment()
	for _, p := range pains {
		if !p.Band().Substitutes() || !s.catalog.Contraindicated(p.Area, q.Pattern) {
			continue
		}

		for _, sub := range s.catalog.Substitutes(p.Area, q.Pattern) {
			if !s.catalog.Available(sub, eq) {
				continue
			}
			// a substitute has to move the user off the painful exercise
			if s.catalog.Same(sub, c.Name) || s.catalog.Same(sub, c.Resolution.OriginalName) {
				continue
			}
			out := replace(c, sub, StagePain, training.ReasonPainSubstitution)
			out.Resolution.PainArea = p.Area
			out.Resolution.PainSeverity = p.Severity
			rec.Record(training.DecisionEvent{
				Stage:   StagePain,
				Kind:    training.EventRuleMatched,
				Pattern: q.Pattern,
				Subject: string(p.Area),
				Detail:  fmt.Sprintf("%s pain (%d): %s -> %s", p.Band(), p.Severity, c.Name, sub),
			})
			return out, Final
		}

		rec.Record(training.DecisionEvent{
			Stage:   StagePain,
			Kind:    training.EventFallbackUsed,
			Pattern: q.Pattern,
			Subject: string(p.Area),
			Detail:  "no available substitute, volume will be reduced instead",
		})
	}

	return c, Continue
}

// EquipmentStage handles exercises the user cannot set up.
type EquipmentStage struct {
	catalog *catalog.Catalog
}

func NewEquipmentStage(cat *catalog.Catalog) EquipmentStage {
	return EquipmentStage{catalog: cat}
}

func (s EquipmentStage) Name() string { return StageEquipment }

func (s EquipmentStage) Apply(q Query, c Candidate, rec training.Recorder) (Candidate, Verdict) {
	eq := q.effectiveEquipment()

	// without a bar or a table there is nothing to pull against
	if q.Pattern.IsPull() && !eq.PullupBar && !eq.SturdyTable {
		if floor, ok := s.catalog.FloorPull(q.Pattern); ok {
			rec.Record(training.DecisionEvent{
				Stage:   StageEquipment,
				Kind:    training.EventRuleMatched,
				Pattern: q.Pattern,
				Subject: floor,
				Detail:  "no bar or table, using floor pull",
			})
			return replace(c, floor, StageEquipment, training.ReasonEquipment), Final
		}
	}

	ex, known := s.catalog.Lookup(c.Name)
	if !known || ex.AvailableWith(eq) {
		return c, Continue
	}

	for _, alt := range ex.Equivalents {
		if !s.catalog.Available(alt, eq) {
			continue
		}
		rec.Record(training.DecisionEvent{
			Stage:   StageEquipment,
			Kind:    training.EventRuleMatched,
			Pattern: q.Pattern,
			Subject: alt,
			Detail:  fmt.Sprintf("%s needs unavailable equipment", c.Name),
		})
		return replace(c, alt, StageEquipment, training.ReasonEquipment), Final
	}

	rec.Record(training.DecisionEvent{
		Stage:   StageEquipment,
		Kind:    training.EventDecision,
		Pattern: q.Pattern,
		Subject: c.Name,
		Detail:  "no documented equivalent available, converting by relative strength",
	})
	c.NeedsConversion = true
	return c, Continue
}

// StrengthStage converts an unavailable loaded exercise into the hardest
// bodyweight variant the user's relative strength supports.
type StrengthStage struct {
	catalog *catalog.Catalog
}

func NewStrengthStage(cat *catalog.Catalog) StrengthStage {
	return StrengthStage{catalog: cat}
}

func (s StrengthStage) Name() string { return StageStrength }

func (s StrengthStage) Apply(q Query, c Candidate, rec training.Recorder) (Candidate, Verdict) {
	if !c.NeedsConversion {
		return c, Continue
	}

	ratio, source := s.ratio(q, c.Name)
	eq := q.effectiveEquipment()
	tiers := s.catalog.StrengthTiers(q.Pattern)

	for _, tier := range tiers {
		if ratio >= tier.MinRatio && s.catalog.Available(tier.Name, eq) {
			rec.Record(training.DecisionEvent{
				Stage:   StageStrength,
				Kind:    training.EventRuleMatched,
				Pattern: q.Pattern,
				Subject: tier.Name,
				Detail:  fmt.Sprintf("ratio %.2f (%s) >= %.2f", ratio, source, tier.MinRatio),
			})
			out := replace(c, tier.Name, StageStrength, training.ReasonStrengthRatio)
			out.Resolution.StrengthRatio = ratio
			return out, Final
		}
	}

	for i := len(tiers) - 1; i >= 0; i-- {
		if !s.catalog.Available(tiers[i].Name, eq) {
			continue
		}
		rec.Record(training.DecisionEvent{
			Stage:   StageStrength,
			Kind:    training.EventFallbackUsed,
			Pattern: q.Pattern,
			Subject: tiers[i].Name,
			Detail:  fmt.Sprintf("ratio %.2f matched nothing available, using easiest", ratio),
		})
		out := replace(c, tiers[i].Name, StageStrength, training.ReasonStrengthRatio)
		out.Resolution.StrengthRatio = ratio
		return out, Final
	}

	return c, Continue
}

// ratio is the estimated one-rep max over body mass. A tested 10RM load wins
// over the catalog's conservative estimate.
func (s StrengthStage) ratio(q Query, exercise string) (float64, string) {
	bodyMass := q.BodyMassKg
	if bodyMass <= 0 {
		bodyMass = defaultBodyMassKg
	}

	if q.LoadKg > 0 {
		source := "tested"
		if q.TestDate != nil {
			source = "tested " + q.TestDate.Format("2006-01-02")
		}
		return OneRepMax(q.LoadKg) / bodyMass, source
	}
	return s.catalog.ConservativeLoad(exercise) / bodyMass, "estimated"
}

// OneRepMax converts a 10-rep max load with the Brzycki formula,
// 36 / (37 - reps).
func OneRepMax(tenRepMaxKg float64) float64 {
	return tenRepMaxKg * 36 / 27
}
