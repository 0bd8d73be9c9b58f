// Package planner assembles a weekly split from inferred capacities, resolved
// exercises, pain adaptations and the periodization tables.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/liftplan/internal/baseline"
	"github.com/2beens/liftplan/internal/catalog"
	"github.com/2beens/liftplan/internal/pain"
	"github.com/2beens/liftplan/internal/periodization"
	"github.com/2beens/liftplan/internal/resolver"
	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	stage = "planner"

	defaultMaxReps = 10
)

type Request struct {
	Profile    training.UserProfile `json:"profile"`
	Capacities training.Capacities  `json:"capacities,omitempty"`
	Pains      []training.PainEntry `json:"pains,omitempty"`
	Frequency  int                  `json:"frequency"`
	// Goals overrides the profile goals when set.
	Goals []training.Goal `json:"goals,omitempty"`
}

type Assembler struct {
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
	pain     *pain.Adapter
	now      func() time.Time
}

func NewAssembler(cat *catalog.Catalog, res *resolver.Resolver) *Assembler {
	return &Assembler{
		catalog:  cat,
		resolver: res,
		pain:     pain.NewAdapter(cat),
		now:      time.Now,
	}
}

// Assemble builds the weekly plan. Bad input never fails generation: the
// frequency is clamped, invalid pain entries are dropped and missing
// capacities are inferred.
func (a *Assembler) Assemble(ctx context.Context, req Request, rec training.Recorder) training.WeeklyPlan {
	ctx, span := tracing.GlobalTracer.Start(ctx, "planner.assemble")
	defer span.End()

	rec = training.OrDiscard(rec)
	profile := req.Profile

	var warnings []string
	frequency, clamped := clampFrequency(req.Frequency)
	if clamped {
		msg := fmt.Sprintf("frequency %d out of range, using %d", req.Frequency, frequency)
		log.Warnf("planner: %s", msg)
		warnings = append(warnings, msg)
	}

	goals := req.Goals
	if len(goals) == 0 {
		goals = profile.Goals
	}
	goals, truncated := normalizeGoals(goals)
	if truncated {
		warnings = append(warnings, fmt.Sprintf("only the first %d goals are used", maxGoals))
	}
	profile.Goals = goals

	pains := pain.Sanitize(req.Pains)
	caps := baseline.Infer(req.Capacities, profile.BodyMassKg, profile.Level, rec)

	splitName, templates := splitFor(frequency)
	span.SetAttributes(
		attribute.String("split", splitName),
		attribute.Int("frequency", frequency),
	)
	rec.Record(training.DecisionEvent{
		Stage:   stage,
		Kind:    training.EventDecision,
		Subject: splitName,
		Detail:  fmt.Sprintf("%d days per week", frequency),
	})

	correctives := dedupeCorrectives(a.pain.Correctives(pains, rec))
	perDay := distributeCorrectives(correctives, len(templates), rec)
	withWarmups := !skipsWarmups(goals, profile.Population)

	days := make([]training.DayPlan, 0, len(templates))
	for i, tmpl := range templates {
		exercises := make([]training.ExerciseSpec, 0, len(tmpl.Patterns)+len(perDay[i]))
		for _, p := range tmpl.Patterns {
			// correctives are distributed separately
			ex, _ := a.exercise(ctx, profile, goals, caps, pains, p, i, tmpl.Alternate, rec)
			exercises = append(exercises, ex)
		}
		exercises = append(exercises, perDay[i]...)

		if withWarmups {
			addWarmups(exercises)
		}
		if !fitToTimeLimit(exercises, profile.SessionMinutes) {
			warnings = append(warnings, fmt.Sprintf(
				"day %d (%s) cannot fit in %d minutes even at minimum volume",
				i+1, tmpl.Focus, profile.SessionMinutes,
			))
		}

		days = append(days, training.DayPlan{
			DayName:           fmt.Sprintf("Day %d", i+1),
			Focus:             tmpl.Focus,
			Exercises:         exercises,
			EstimatedDuration: EstimateDuration(exercises),
		})
	}

	return training.WeeklyPlan{
		ID:          uuid.NewString(),
		UserID:      profile.UserID,
		SplitName:   splitName,
		Description: describe(splitName, frequency, goals),
		Goals:       goals,
		Days:        days,
		Warnings:    warnings,
		CreatedAt:   a.now().UTC(),
	}
}

// exercise resolves and prescribes one pattern slot.
func (a *Assembler) exercise(
	ctx context.Context,
	profile training.UserProfile,
	goals []training.Goal,
	caps training.Capacities,
	pains []training.PainEntry,
	p training.Pattern,
	dayIndex int,
	alternate bool,
	rec training.Recorder,
) (training.ExerciseSpec, []pain.Corrective) {
	capacity := caps[p]

	var dayType training.DayType
	if !goals[0].IsSpecial() {
		dayType = periodization.DayTypeFor(dayIndex, p.Index())
	}

	maxReps := capacity.MaxReps
	if maxReps <= 0 {
		maxReps = defaultMaxReps
	}
	presc := blend(maxReps, goals, profile.Level, profile.Location, dayType)

	variant := capacity.VariantName
	if variant == "" {
		variant = a.catalog.DefaultVariant(p)
	}
	if alternate {
		if alt, ok := a.catalog.Alternate(variant); ok {
			variant = alt
		}
	}

	q := resolver.Query{
		Pattern:    p,
		Variant:    variant,
		Location:   profile.Location,
		Equipment:  profile.Equipment,
		Pains:      pains,
		BodyMassKg: profile.BodyMassKg,
	}
	if capacity.IsTested() {
		q.LoadKg = capacity.Load()
		q.TestDate = capacity.TestDate
	}
	res := a.resolver.Resolve(ctx, q, rec)

	source := capacity
	spec := training.ExerciseSpec{
		Pattern:        p,
		Name:           res.Name,
		Sets:           presc.Sets,
		Reps:           presc.Reps,
		RepsLabel:      presc.RepsLabel,
		Rest:           presc.Rest,
		Intensity:      presc.Intensity,
		WasSubstituted: res.WasSubstituted,
		DayType:        dayType,
		Source:         &source,
	}
	spec.AddNote(presc.Notes)
	if res.WasSubstituted {
		spec.OriginalName = res.OriginalName
		spec.SubstitutionReason = res.Reason
	}

	return a.pain.Adapt(spec, pains, rec)
}

func dedupeCorrectives(cs []pain.Corrective) []pain.Corrective {
	seen := make(map[string]bool, len(cs))
	out := make([]pain.Corrective, 0, len(cs))
	for _, c := range cs {
		key := strings.ToLower(c.Spec.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func describe(splitName string, frequency int, goals []training.Goal) string {
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = string(g)
	}
	desc := fmt.Sprintf("%s, %d days per week, goals: %s", splitName, frequency, strings.Join(names, ", "))
	if note := distributionNote(goals); note != "" {
		desc += ". " + note
	}
	return desc
}
