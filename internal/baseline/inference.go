// Package baseline fills missing pattern capacities from tested sibling
// patterns or, absent any test, from body mass.
package baseline

import (
	"fmt"
	"math"

	"github.com/2beens/liftplan/internal/training"

	log "github.com/sirupsen/logrus"
)

const stage = "baseline"

// Infer returns a new capacity set where every trainable pattern has usable
// data. The input is never modified.
//
// Missing patterns fall through three stages: correlation with a tested
// sibling, a body-mass fraction, and a fixed conservative load.
func Infer(
	capacities training.Capacities,
	bodyMassKg float64,
	level training.Level,
	rec training.Recorder,
) training.Capacities {
	rec = training.OrDiscard(rec)
	out := capacities.Clone()

	for p, c := range out {
		if err := c.Validate(); err != nil {
			log.Warnf("baseline: ignoring test flag on %s: %s", p, err)
			c.IsEstimated = true
			out[p] = c
		}
	}

	if out.AnyTested() {
		correlate(out, rec)
	} else {
		rec.Record(training.DecisionEvent{
			Stage:  stage,
			Kind:   training.EventDecision,
			Detail: "no tested pattern, seeding from body mass",
		})
	}

	for _, p := range training.AllPatterns {
		if c, ok := out[p]; ok && c.IsUsable() {
			continue
		}
		if bodyMassKg > 0 {
			out[p] = seedFromBodyMass(p, bodyMassKg, level)
			rec.Record(training.DecisionEvent{
				Stage:   stage,
				Kind:    training.EventFallbackUsed,
				Pattern: p,
				Subject: training.EstimatedFromBodyweight,
				Detail:  fmt.Sprintf("seeded %.0fkg from %.1fkg body mass", out[p].Load(), bodyMassKg),
			})
			continue
		}
		out[p] = seedDefault(p)
		rec.Record(training.DecisionEvent{
			Stage:   stage,
			Kind:    training.EventFallbackUsed,
			Pattern: p,
			Subject: training.EstimatedFromDefault,
			Detail:  fmt.Sprintf("no body mass, using conservative %.0fkg", out[p].Load()),
		})
	}

	return out
}

func correlate(caps training.Capacities, rec training.Recorder) {
	for _, rule := range correlationRules {
		if target, ok := caps[rule.target]; ok && target.IsUsable() {
			continue
		}

		for _, corr := range rule.sources {
			src, ok := caps[corr.source]
			if !ok || !src.IsUsable() {
				continue
			}

			caps[rule.target] = fromSource(rule.target, src, corr)
			rec.Record(training.DecisionEvent{
				Stage:   stage,
				Kind:    training.EventRuleMatched,
				Pattern: rule.target,
				Subject: string(corr.source),
				Detail: fmt.Sprintf(
					"ratio %.2f, difficulty %.0f",
					corr.ratio, caps[rule.target].Difficulty,
				),
			})
			break
		}
	}
}

func fromSource(target training.Pattern, src training.PatternCapacity, corr correlation) training.PatternCapacity {
	srcDifficulty := src.Difficulty
	if srcDifficulty <= 0 {
		srcDifficulty = seededDifficulty
	}

	adjusted := clamp(srcDifficulty+corr.difficultyAdjust, 1, 10)
	switch {
	case src.MaxReps > 0 && src.MaxReps < 6:
		adjusted -= 1
	case src.MaxReps > 0 && src.MaxReps < 8:
		adjusted -= 0.5
	}
	adjusted = math.Round(clamp(adjusted, 1, 10))

	c := training.PatternCapacity{
		Pattern:       target,
		Difficulty:    adjusted,
		IsEstimated:   true,
		EstimatedFrom: string(corr.source),
	}

	if src.HasLoad() {
		c.LoadKg = training.Float(math.Round(src.Load() * corr.ratio))
		c.MaxReps = src.MaxReps
		if c.MaxReps <= 0 {
			c.MaxReps = seededMaxReps
		}
		s := bodyweightSeeds[target]
		c.VariantID, c.VariantName = s.variantID, s.variantName
		return c
	}

	// bodyweight-only source: carry the reps over
	c.MaxReps = min(src.MaxReps, maxCarriedReps)
	if v, ok := variantFor(target, adjusted); ok {
		c.VariantID, c.VariantName = v.id, v.name
	} else {
		s := bodyweightSeeds[target]
		c.VariantID, c.VariantName = s.variantID, s.variantName
	}
	return c
}

func seedFromBodyMass(p training.Pattern, bodyMassKg float64, level training.Level) training.PatternCapacity {
	s := bodyweightSeeds[p]
	mult, ok := levelMultipliers[level]
	if !ok {
		mult = levelMultipliers[training.Beginner]
	}
	return training.PatternCapacity{
		Pattern:       p,
		VariantID:     s.variantID,
		VariantName:   s.variantName,
		Difficulty:    seededDifficulty,
		MaxReps:       seededMaxReps,
		LoadKg:        training.Float(math.Round(bodyMassKg * s.ratio * mult)),
		IsEstimated:   true,
		EstimatedFrom: training.EstimatedFromBodyweight,
	}
}

func seedDefault(p training.Pattern) training.PatternCapacity {
	s := bodyweightSeeds[p]
	return training.PatternCapacity{
		Pattern:       p,
		VariantID:     s.variantID,
		VariantName:   s.variantName,
		Difficulty:    seededDifficulty,
		MaxReps:       seededMaxReps,
		LoadKg:        training.Float(s.defaultLoad),
		IsEstimated:   true,
		EstimatedFrom: training.EstimatedFromDefault,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
