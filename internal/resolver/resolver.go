// Package resolver picks the concrete exercise variant for a movement
// pattern by running pain, equipment and relative-strength stages in order.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/liftplan/internal/cache"
	"github.com/2beens/liftplan/internal/catalog"
	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const resolutionCacheTTL = 6 * time.Hour

type Query struct {
	Pattern    training.Pattern     `json:"pattern"`
	Variant    string               `json:"variant"`
	Location   training.Location    `json:"location"`
	Equipment  training.Equipment   `json:"equipment"`
	Pains      []training.PainEntry `json:"pains,omitempty"`
	BodyMassKg float64              `json:"body_mass_kg"`
	// LoadKg is the tested 10-rep max, zero when untested.
	LoadKg   float64    `json:"load_kg,omitempty"`
	TestDate *time.Time `json:"test_date,omitempty"`
}

func (q Query) effectiveEquipment() training.Equipment {
	return q.Equipment.Effective(q.Location)
}

type Resolution struct {
	Name           string                      `json:"name"`
	OriginalName   string                      `json:"original_name"`
	WasSubstituted bool                        `json:"was_substituted"`
	Stage          string                      `json:"stage,omitempty"`
	Reason         training.ModificationReason `json:"reason,omitempty"`
	PainArea       training.BodyArea           `json:"pain_area,omitempty"`
	PainSeverity   int                         `json:"pain_severity,omitempty"`
	StrengthRatio  float64                     `json:"strength_ratio,omitempty"`
}

func (r Resolution) PainBand() training.PainBand {
	return training.BandFor(r.PainSeverity)
}

type Resolver struct {
	catalog *catalog.Catalog
	stages  []Stage
	cache   cache.Cache
}

// New builds a resolver with the standard pain, equipment and strength
// stages. The cache may be nil.
func New(cat *catalog.Catalog, resolutionCache cache.Cache) *Resolver {
	return NewWithStages(cat, resolutionCache,
		NewPainStage(cat),
		NewEquipmentStage(cat),
		NewStrengthStage(cat),
	)
}

func NewWithStages(cat *catalog.Catalog, resolutionCache cache.Cache, stages ...Stage) *Resolver {
	return &Resolver{
		catalog: cat,
		stages:  stages,
		cache:   resolutionCache,
	}
}

func (r *Resolver) Resolve(ctx context.Context, q Query, rec training.Recorder) Resolution {
	_, span := tracing.GlobalTracer.Start(ctx, "resolver.resolve")
	defer span.End()
	span.SetAttributes(attribute.String("pattern", string(q.Pattern)))

	rec = training.OrDiscard(rec)
	if q.Variant == "" {
		q.Variant = r.catalog.DefaultVariant(q.Pattern)
	}

	cacheKey := r.cacheKey(q)
	if res, ok := r.fromCache(cacheKey); ok {
		span.SetAttributes(attribute.Bool("cached", true))
		rec.Record(training.DecisionEvent{
			Stage:   "resolver",
			Kind:    training.EventDecision,
			Pattern: q.Pattern,
			Subject: res.Name,
			Detail:  "resolution served from cache",
		})
		return res
	}

	c := Candidate{
		Name: q.Variant,
		Resolution: Resolution{
			Name:         q.Variant,
			OriginalName: q.Variant,
		},
	}
	for _, stage := range r.stages {
		var verdict Verdict
		c, verdict = stage.Apply(q, c, rec)
		if verdict == Final {
			break
		}
	}

	res := r.guard(q, c, rec)
	span.SetAttributes(
		attribute.String("exercise", res.Name),
		attribute.Bool("substituted", res.WasSubstituted),
	)
	r.toCache(cacheKey, res)

	return res
}

// guard makes sure the resolver never hands back an exercise the user
// cannot perform.
func (r *Resolver) guard(q Query, c Candidate, rec training.Recorder) Resolution {
	eq := q.effectiveEquipment()
	if r.catalog.Available(c.Name, eq) {
		return c.Resolution
	}

	tiers := r.catalog.StrengthTiers(q.Pattern)
	for i := len(tiers) - 1; i >= 0; i-- {
		if r.catalog.Available(tiers[i].Name, eq) {
			rec.Record(training.DecisionEvent{
				Stage:   "resolver",
				Kind:    training.EventFallbackUsed,
				Pattern: q.Pattern,
				Subject: tiers[i].Name,
				Detail:  fmt.Sprintf("%s unavailable after all stages", c.Name),
			})
			return replace(c, tiers[i].Name, StageEquipment, training.ReasonEquipment).Resolution
		}
	}

	log.Warnf("resolver: no available variant for %s, keeping %s", q.Pattern, c.Name)
	return c.Resolution
}

func (r *Resolver) cacheKey(q Query) []byte {
	if r.cache == nil {
		return nil
	}
	key, err := json.Marshal(q)
	if err != nil {
		log.Errorf("resolver: marshal cache key: %s", err)
		return nil
	}
	return key
}

func (r *Resolver) fromCache(key []byte) (Resolution, bool) {
	if r.cache == nil || key == nil {
		return Resolution{}, false
	}
	raw, found := r.cache.Get(key)
	if !found {
		return Resolution{}, false
	}
	var res Resolution
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Errorf("resolver: unmarshal cached resolution: %s", err)
		return Resolution{}, false
	}
	return res, true
}

func (r *Resolver) toCache(key []byte, res Resolution) {
	if r.cache == nil || key == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		log.Errorf("resolver: marshal resolution: %s", err)
		return
	}
	if err := r.cache.Set(key, raw, resolutionCacheTTL); err != nil {
		log.Errorf("resolver: cache resolution: %s", err)
	}
}
