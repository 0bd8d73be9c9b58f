package plans

import (
	"context"
	"fmt"

	"github.com/2beens/liftplan/internal/autoreg"
	"github.com/2beens/liftplan/internal/baseline"
	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SaveCapacity appends a screened or estimated capacity for the user. Later
// records supersede earlier ones for the same pattern.
func (s *Service) SaveCapacity(ctx context.Context, userID string, c training.PatternCapacity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.capacities.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("pattern", string(c.Pattern)),
	)

	if userID == "" {
		return ErrMissingUserID
	}
	if err := s.store.SaveCapacity(ctx, userID, c); err != nil {
		return fmt.Errorf("save capacity: %w", err)
	}
	return nil
}

// reviseEstimates feeds a finished session back into the user's estimated
// capacities. Only exercises that ran as prescribed count, once per pattern.
func (s *Service) reviseEstimates(ctx context.Context, userID string, summary autoreg.Summary) {
	if summary.SetsCompleted == 0 {
		return
	}

	caps, err := s.store.LoadCapacities(ctx, userID)
	if err != nil {
		log.Errorf("plans: load capacities to revise for user %s: %s", userID, err)
		return
	}

	for _, e := range summary.Exercises {
		c, ok := caps[e.Pattern]
		if !ok || !c.IsEstimated || !c.HasLoad() || len(e.Logs) == 0 || e.Final.WasSubstituted {
			continue
		}
		delete(caps, e.Pattern)

		revised := baseline.Revise(c, autoreg.WeightedRPE(e.Logs), s.now())
		if err := s.store.SaveCapacity(ctx, userID, revised); err != nil {
			log.Errorf("plans: save revised %s capacity for user %s: %s", e.Pattern, userID, err)
			continue
		}
		log.Debugf("plans: revised %s estimate for user %s: %.1f kg, validated %t",
			e.Pattern, userID, revised.Load(), !revised.IsEstimated)
	}
}
