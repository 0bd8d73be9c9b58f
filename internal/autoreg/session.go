// Package autoreg runs a live training session: it records each set,
// interprets the reported RPE and proposes volume changes for the rest of
// the session.
package autoreg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const stage = "autoreg"

var (
	ErrPersistence       = errors.New("session storage failed")
	ErrSuggestionPending = errors.New("a suggestion is pending for this exercise")
	ErrNoSuggestion      = errors.New("no suggestion is pending")
	ErrInvalidState      = errors.New("operation not allowed in the current session state")
	ErrSessionClosed     = errors.New("session is closed")
	ErrNoExercises       = errors.New("day has no exercises")
)

type State string

const (
	AwaitingSetInput  State = "awaiting_set_input"
	AwaitingRPE       State = "awaiting_rpe"
	SuggestionPending State = "suggestion_pending"
	ExerciseComplete  State = "exercise_complete"
	SessionComplete   State = "session_complete"
	SessionAbandoned  State = "session_abandoned"
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=autoreg_test

// Store persists what a session produces. Implementations must be durable by
// the time a call returns.
type Store interface {
	AppendSetLog(ctx context.Context, sessionID string, log training.SetLog) error
	SaveModification(ctx context.Context, mod training.ExerciseModification) error
}

type Params struct {
	SessionID  string
	UserID     string
	PlanID     string
	Day        training.DayPlan
	Population training.Population
	Store      Store
	Recorder   training.Recorder
	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	id         string
	userID     string
	planID     string
	population training.Population
	store      Store
	rec        training.Recorder
	now        func() time.Time

	exercises []training.ExerciseSpec
	logs      [][]training.SetLog
	current   int
	setNumber int
	state     State

	pendingLog        *training.SetLog
	pendingSuggestion *training.Suggestion
	// set once the pending suggestion's modification is stored
	modificationSaved bool

	startedAt  time.Time
	finishedAt time.Time
}

func NewSession(p Params) (*Session, error) {
	if len(p.Day.Exercises) == 0 {
		return nil, ErrNoExercises
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}

	exercises := make([]training.ExerciseSpec, len(p.Day.Exercises))
	for i, e := range p.Day.Exercises {
		exercises[i] = e.Clone()
	}

	return &Session{
		id:         p.SessionID,
		userID:     p.UserID,
		planID:     p.PlanID,
		population: p.Population,
		store:      p.Store,
		rec:        training.OrDiscard(p.Recorder),
		now:        now,
		exercises:  exercises,
		logs:       make([][]training.SetLog, len(exercises)),
		setNumber:  1,
		state:      AwaitingSetInput,
		startedAt:  now(),
	}, nil
}

func (s *Session) ID() string     { return s.id }
func (s *Session) PlanID() string { return s.planID }
func (s *Session) UserID() string { return s.userID }
func (s *Session) State() State   { return s.state }

// Current returns the exercise in progress and its index. After the session
// is complete the index equals the number of exercises.
func (s *Session) Current() (training.ExerciseSpec, int) {
	if s.current >= len(s.exercises) {
		return training.ExerciseSpec{}, s.current
	}
	return s.exercises[s.current].Clone(), s.current
}

// SetNumber is the 1-based number of the next set to log.
func (s *Session) SetNumber() int { return s.setNumber }

func (s *Session) Exercises() []training.ExerciseSpec {
	out := make([]training.ExerciseSpec, len(s.exercises))
	for i, e := range s.exercises {
		out[i] = e.Clone()
	}
	return out
}

func (s *Session) Pending() (training.Suggestion, bool) {
	if s.pendingSuggestion == nil {
		return training.Suggestion{}, false
	}
	return *s.pendingSuggestion, true
}

// Logs returns the persisted set logs per exercise.
func (s *Session) Logs() [][]training.SetLog {
	out := make([][]training.SetLog, len(s.logs))
	for i, l := range s.logs {
		out[i] = append([]training.SetLog(nil), l...)
	}
	return out
}

// LogSet records the reps and optional load of the next set. The RPE follows
// with SubmitRPE.
func (s *Session) LogSet(reps int, loadKg *float64) error {
	switch s.state {
	case AwaitingSetInput, ExerciseComplete:
	case SuggestionPending:
		return ErrSuggestionPending
	case SessionComplete, SessionAbandoned:
		return ErrSessionClosed
	default:
		return fmt.Errorf("%w: log set in %s", ErrInvalidState, s.state)
	}
	if reps < 0 {
		return fmt.Errorf("%w: negative reps", ErrInvalidState)
	}

	var load *float64
	if loadKg != nil {
		load = training.Float(*loadKg)
	}
	s.pendingLog = &training.SetLog{
		ExerciseIndex: s.current,
		SetNumber:     s.setNumber,
		RepsCompleted: reps,
		LoadKg:        load,
		LoggedAt:      s.now().UTC(),
	}
	s.state = AwaitingRPE
	return nil
}

// SubmitRPE classifies the logged set. A maintain result is persisted right
// away and the session advances; reduce and increase results stay pending
// until applied or dismissed.
func (s *Session) SubmitRPE(ctx context.Context, rpe float64) (_ training.Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "autoreg.session.submit_rpe")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if s.state != AwaitingRPE {
		if s.state == SuggestionPending {
			return training.Suggestion{}, ErrSuggestionPending
		}
		return training.Suggestion{}, fmt.Errorf("%w: submit rpe in %s", ErrInvalidState, s.state)
	}
	if rpe < 1 || rpe > 10 {
		return training.Suggestion{}, fmt.Errorf("%w: got %.1f", training.ErrInvalidRPE, rpe)
	}

	spec := s.exercises[s.current]
	suggestion := Classify(spec, s.setNumber, rpe)
	span.SetAttributes(
		attribute.String("suggestion", string(suggestion.Kind)),
		attribute.Float64("rpe", rpe),
	)
	s.rec.Record(training.DecisionEvent{
		Stage:   stage,
		Kind:    training.EventDecision,
		Pattern: spec.Pattern,
		Subject: string(suggestion.Kind),
		Detail:  fmt.Sprintf("%s set %d/%d: %s", spec.Name, s.setNumber, spec.Sets, suggestion.Message),
	})

	setLog := *s.pendingLog
	setLog.RPE = rpe

	if suggestion.Kind == training.SuggestMaintain {
		if err := s.persistSetLog(ctx, setLog); err != nil {
			return training.Suggestion{}, err
		}
		s.advance()
		return suggestion, nil
	}

	s.pendingLog = &setLog
	s.pendingSuggestion = &suggestion
	s.state = SuggestionPending
	return suggestion, nil
}

// SubmitSet logs a set and its RPE in one step.
func (s *Session) SubmitSet(ctx context.Context, reps int, loadKg *float64, rpe float64) (training.Suggestion, error) {
	if rpe < 1 || rpe > 10 {
		return training.Suggestion{}, fmt.Errorf("%w: got %.1f", training.ErrInvalidRPE, rpe)
	}
	if err := s.LogSet(reps, loadKg); err != nil {
		return training.Suggestion{}, err
	}
	return s.SubmitRPE(ctx, rpe)
}

// ApplySuggestion persists the modification and the set log, in that order,
// and only then updates the exercise for the rest of the session. On a
// storage failure the session state is unchanged and the call may be
// retried; a retry does not store the modification twice.
func (s *Session) ApplySuggestion(ctx context.Context) (_ training.ExerciseSpec, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "autoreg.session.apply")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if s.state != SuggestionPending || s.pendingSuggestion == nil {
		return training.ExerciseSpec{}, ErrNoSuggestion
	}

	suggestion := *s.pendingSuggestion
	spec := s.exercises[s.current]
	updated := apply(spec, suggestion)

	if !s.modificationSaved {
		mod := s.modification(spec, updated, suggestion)
		if err := s.store.SaveModification(ctx, mod); err != nil {
			return training.ExerciseSpec{}, fmt.Errorf("%w: save modification: %w", ErrPersistence, err)
		}
		s.modificationSaved = true
	}

	setLog := *s.pendingLog
	setLog.WasAdjusted = true
	setLog.AdjustmentReason = suggestion.Message
	if err := s.persistSetLog(ctx, setLog); err != nil {
		return training.ExerciseSpec{}, err
	}

	s.exercises[s.current] = updated
	s.rec.Record(training.DecisionEvent{
		Stage:   stage,
		Kind:    training.EventRuleMatched,
		Pattern: spec.Pattern,
		Subject: spec.Name,
		Detail:  fmt.Sprintf("applied %s: %d sets x %d reps, rest %s", suggestion.Kind, updated.Sets, updated.Reps, updated.Rest),
	})
	s.advance()
	return updated.Clone(), nil
}

// DismissSuggestion keeps the plan unchanged and records the set.
func (s *Session) DismissSuggestion(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "autoreg.session.dismiss")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if s.state != SuggestionPending || s.pendingSuggestion == nil {
		return ErrNoSuggestion
	}
	if err := s.persistSetLog(ctx, *s.pendingLog); err != nil {
		return err
	}
	spec := s.exercises[s.current]
	s.rec.Record(training.DecisionEvent{
		Stage:   stage,
		Kind:    training.EventDecision,
		Pattern: spec.Pattern,
		Subject: spec.Name,
		Detail:  fmt.Sprintf("dismissed %s suggestion", s.pendingSuggestion.Kind),
	})
	s.advance()
	return nil
}

// Abandon ends the session without a summary. Logged sets stay persisted.
func (s *Session) Abandon() {
	if s.state == SessionComplete || s.state == SessionAbandoned {
		return
	}
	s.pendingLog = nil
	s.pendingSuggestion = nil
	s.modificationSaved = false
	s.state = SessionAbandoned
	s.finishedAt = s.now()
}

// persistSetLog stores the set. A set the store already holds came from an
// earlier attempt whose reply was lost, so it counts as stored.
func (s *Session) persistSetLog(ctx context.Context, setLog training.SetLog) error {
	err := s.store.AppendSetLog(ctx, s.id, setLog)
	if err != nil && !errors.Is(err, training.ErrSetAlreadyLogged) {
		return fmt.Errorf("%w: append set log: %w", ErrPersistence, err)
	}
	s.logs[setLog.ExerciseIndex] = append(s.logs[setLog.ExerciseIndex], setLog)
	return nil
}

// advance moves past the persisted set to the next set or exercise.
func (s *Session) advance() {
	s.pendingLog = nil
	s.pendingSuggestion = nil
	s.modificationSaved = false

	if s.setNumber < s.exercises[s.current].Sets {
		s.setNumber++
		s.state = AwaitingSetInput
		return
	}

	s.current++
	s.setNumber = 1
	if s.current >= len(s.exercises) {
		s.state = SessionComplete
		s.finishedAt = s.now()
		return
	}
	s.state = ExerciseComplete
}

func (s *Session) modification(
	before training.ExerciseSpec,
	after training.ExerciseSpec,
	suggestion training.Suggestion,
) training.ExerciseModification {
	original := before.Name
	if before.OriginalName != "" {
		original = before.OriginalName
	}
	mod := training.ExerciseModification{
		UserID:          s.userID,
		PlanID:          s.planID,
		Pattern:         before.Pattern,
		OriginalVariant: original,
		CurrentVariant:  after.Name,
		Reason:          reasonFor(suggestion.Kind),
		UpdatedAt:       s.now().UTC(),
	}
	if s.pendingLog != nil && s.pendingLog.LoadKg != nil {
		mod.OriginalLoadKg = training.Float(*s.pendingLog.LoadKg)
		mod.CurrentLoadKg = training.Float(*s.pendingLog.LoadKg)
	}
	return mod
}
