// Package plans exposes plan generation and live sessions on top of the
// engine packages, adding storage, the live-session lock and metrics.
package plans

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/liftplan/internal/autoreg"
	"github.com/2beens/liftplan/internal/baseline"
	"github.com/2beens/liftplan/internal/livelock"
	"github.com/2beens/liftplan/internal/planner"
	"github.com/2beens/liftplan/internal/telemetry/metrics"
	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrPlanLocked      = errors.New("plan is held by a live session")
	ErrMissingUserID   = errors.New("user id is required")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidDay      = errors.New("day index out of range")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans_test

// Store is the storage collaborator of the engine.
type Store interface {
	LoadCapacities(ctx context.Context, userID string) (training.Capacities, error)
	SaveCapacity(ctx context.Context, userID string, c training.PatternCapacity) error
	SavePlan(ctx context.Context, plan training.WeeklyPlan) error
	GetPlan(ctx context.Context, id string) (*training.WeeklyPlan, error)
	LatestPlan(ctx context.Context, userID string) (*training.WeeklyPlan, error)
	AppendSetLog(ctx context.Context, sessionID string, log training.SetLog) error
	ListSetLogs(ctx context.Context, sessionID string) ([]training.SetLog, error)
	SaveModification(ctx context.Context, mod training.ExerciseModification) error
	ListModifications(ctx context.Context, planID string) ([]training.ExerciseModification, error)
}

type sessionLock interface {
	Acquire(ctx context.Context, userID, sessionID string) (bool, error)
	Holder(ctx context.Context, userID string) (string, error)
	Refresh(ctx context.Context, userID, sessionID string) error
	Release(ctx context.Context, userID, sessionID string) error
}

type GenerateResult struct {
	Plan   training.WeeklyPlan      `json:"plan"`
	Events []training.DecisionEvent `json:"events,omitempty"`
}

type InferRequest struct {
	BodyMassKg float64             `json:"body_mass_kg"`
	Level      training.Level      `json:"level"`
	Capacities training.Capacities `json:"capacities,omitempty"`
}

type InferResult struct {
	Capacities training.Capacities      `json:"capacities"`
	Events     []training.DecisionEvent `json:"events,omitempty"`
}

type Service struct {
	store          Store
	lock           sessionLock
	assembler      *planner.Assembler
	metricsManager *metrics.Manager
	now            func() time.Time
	// sessions idle for longer are abandoned
	sessionTTL time.Duration

	// open sessions by id
	mu       sync.Mutex
	sessions map[string]*liveSession
}

func NewService(
	store Store,
	lock sessionLock,
	assembler *planner.Assembler,
	metricsManager *metrics.Manager,
	sessionTTL time.Duration,
) *Service {
	if sessionTTL <= 0 {
		sessionTTL = livelock.DefaultTTL
	}
	return &Service{
		store:          store,
		lock:           lock,
		assembler:      assembler,
		metricsManager: metricsManager,
		now:            time.Now,
		sessionTTL:     sessionTTL,
		sessions:       make(map[string]*liveSession),
	}
}

// GeneratePlan builds and stores a new plan for the user. It refuses to
// regenerate while a live session holds the user's plan.
func (s *Service) GeneratePlan(ctx context.Context, req planner.Request) (_ *GenerateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	userID := req.Profile.UserID
	if userID == "" {
		return nil, ErrMissingUserID
	}
	span.SetAttributes(attribute.String("user_id", userID))

	holder, err := s.lock.Holder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check live session: %w", err)
	}
	if holder != "" {
		s.metricsManager.CounterPlanLockConflicts.Inc()
		return nil, fmt.Errorf("%w: session %s", ErrPlanLocked, holder)
	}

	req.Capacities, err = s.capacities(ctx, userID, req.Capacities)
	if err != nil {
		return nil, err
	}

	start := s.now()
	eventLog := &training.EventLog{}
	plan := s.assembler.Assemble(ctx, req, eventLog)
	s.metricsManager.HistPlanGenerationDuration.Observe(s.now().Sub(start).Seconds())

	if err := s.store.SavePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	s.metricsManager.CounterPlansGenerated.Inc()
	for _, d := range plan.Days {
		for _, e := range d.Exercises {
			if e.WasSubstituted {
				s.metricsManager.CounterSubstitutions.WithLabelValues(string(e.SubstitutionReason)).Inc()
			}
		}
	}
	log.Debugf("plans: generated plan %s for user %s (%s, %d days)", plan.ID, userID, plan.SplitName, len(plan.Days))

	return &GenerateResult{
		Plan:   plan,
		Events: eventLog.Events(),
	}, nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (_ *training.WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	plan, err := s.store.GetPlan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan %s: %w", id, err)
	}
	return plan, nil
}

// LatestPlan returns the user's most recently generated plan.
func (s *Service) LatestPlan(ctx context.Context, userID string) (_ *training.WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.latest")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if userID == "" {
		return nil, ErrMissingUserID
	}
	plan, err := s.store.LatestPlan(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest plan of %s: %w", userID, err)
	}
	return plan, nil
}

// PlanModifications returns the modification ledger of a stored plan.
func (s *Service) PlanModifications(ctx context.Context, planID string) (_ []training.ExerciseModification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.modifications")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if _, err := s.store.GetPlan(ctx, planID); err != nil {
		return nil, fmt.Errorf("get plan %s: %w", planID, err)
	}
	mods, err := s.store.ListModifications(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list modifications of %s: %w", planID, err)
	}
	return mods, nil
}

// ResolveExercise prescribes a single pattern for the user.
func (s *Service) ResolveExercise(ctx context.Context, req planner.ExerciseRequest) (_ *planner.ExerciseResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.resolve")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if req.Profile.UserID != "" {
		req.Capacities, err = s.capacities(ctx, req.Profile.UserID, req.Capacities)
		if err != nil {
			return nil, err
		}
	}

	res, err := s.assembler.ResolveExercise(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// InferCapacities previews baseline inference without touching storage.
func (s *Service) InferCapacities(_ context.Context, req InferRequest) InferResult {
	eventLog := &training.EventLog{}
	caps := baseline.Infer(req.Capacities, req.BodyMassKg, req.Level, eventLog)
	return InferResult{
		Capacities: caps,
		Events:     eventLog.Events(),
	}
}

// capacities fills the request's capacities with stored records for
// patterns the request does not carry.
func (s *Service) capacities(ctx context.Context, userID string, given training.Capacities) (training.Capacities, error) {
	stored, err := s.store.LoadCapacities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load capacities: %w", err)
	}
	merged := stored.Clone()
	for p, c := range given {
		merged[p] = c
	}
	return merged, nil
}

func (s *Service) newSessionID() string {
	return uuid.NewString()
}

// Close abandons every open session and releases its lock.
func (s *Service) Close(ctx context.Context) {
	s.mu.Lock()
	open := s.sessions
	s.sessions = make(map[string]*liveSession)
	s.mu.Unlock()

	for id, ls := range open {
		ls.mu.Lock()
		ls.session.Abandon()
		ls.mu.Unlock()
		s.metricsManager.GaugeLiveSessions.Dec()
		if err := s.lock.Release(ctx, ls.session.UserID(), id); err != nil {
			log.Warnf("plans: release lock of session %s: %s", id, err)
		}
	}
}

// sessionDay picks the day a session will run.
func sessionDay(plan *training.WeeklyPlan, dayIndex int) (training.DayPlan, error) {
	if dayIndex < 0 || dayIndex >= len(plan.Days) {
		return training.DayPlan{}, fmt.Errorf("%w: %d of %d", ErrInvalidDay, dayIndex, len(plan.Days))
	}
	return plan.Days[dayIndex], nil
}

var _ autoreg.Store = Store(nil)
