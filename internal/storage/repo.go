// Package storage is the Postgres implementation of the plan, capacity and
// session ledger stores.
package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"
	"github.com/2beens/liftplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrDuplicateSetLog  = training.ErrSetAlreadyLogged
	ErrInvalidCapacity  = errors.New("invalid capacity")
	ErrEmptyPlanID      = errors.New("plan id is empty")
	ErrEmptyUserID      = errors.New("user id is empty")
	ErrEmptySessionID   = errors.New("session id is empty")
	ErrInvalidSetNumber = errors.New("set number must be positive")
	ErrInvalidSetLog    = errors.New("invalid set log")
)

//go:embed schema.sql
var Schema string

type Repo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:  db,
		now: time.Now,
	}
}

// Migrate creates the tables when they do not exist yet.
func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// LoadCapacities returns the latest record per pattern. Older records stay
// in the table: capacities are superseded, never updated.
func (r *Repo) LoadCapacities(ctx context.Context, userID string) (_ training.Capacities, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.capacities.load")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (pattern)
			pattern, variant_id, variant_name, difficulty, max_reps,
			load_kg, test_date, is_estimated, estimated_from, validation_runs
		FROM pattern_capacity
		WHERE user_id = $1
		ORDER BY pattern, recorded_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capacities := make(training.Capacities)
	for rows.Next() {
		var c training.PatternCapacity
		if err := rows.Scan(
			&c.Pattern, &c.VariantID, &c.VariantName, &c.Difficulty, &c.MaxReps,
			&c.LoadKg, &c.TestDate, &c.IsEstimated, &c.EstimatedFrom, &c.ValidationRuns,
		); err != nil {
			return nil, err
		}
		capacities[c.Pattern] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(capacities)))
	return capacities, nil
}

// SaveCapacity appends a new record for the pattern.
func (r *Repo) SaveCapacity(ctx context.Context, userID string, c training.PatternCapacity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.capacities.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if userID == "" {
		return ErrEmptyUserID
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO pattern_capacity (
			user_id, pattern, variant_id, variant_name, difficulty, max_reps,
			load_kg, test_date, is_estimated, estimated_from, validation_runs, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		userID, c.Pattern, c.VariantID, c.VariantName, c.Difficulty, c.MaxReps,
		c.LoadKg, c.TestDate, c.IsEstimated, c.EstimatedFrom, c.ValidationRuns, r.now().UTC(),
	)
	return err
}

func (r *Repo) SavePlan(ctx context.Context, plan training.WeeklyPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("plan_id", plan.ID))

	if plan.ID == "" {
		return ErrEmptyPlanID
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO weekly_plan (id, user_id, split_name, data, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET split_name = EXCLUDED.split_name, data = EXCLUDED.data
	`,
		plan.ID, plan.UserID, plan.SplitName, data, plan.CreatedAt,
	)
	return err
}

func (r *Repo) GetPlan(ctx context.Context, id string) (_ *training.WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("plan_id", id))

	var data []byte
	err = r.db.QueryRow(ctx, `
		SELECT data
		FROM weekly_plan
		WHERE id::text = $1
	`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	plan := &training.WeeklyPlan{}
	if err := json.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return plan, nil
}

// LatestPlan returns the most recently generated plan of the user.
func (r *Repo) LatestPlan(ctx context.Context, userID string) (_ *training.WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.latest")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var id string
	err = r.db.QueryRow(ctx, `
		SELECT id::text
		FROM weekly_plan
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return r.GetPlan(ctx, id)
}

// AppendSetLog inserts the log. A set that was already logged for the same
// session and exercise is rejected with ErrDuplicateSetLog.
func (r *Repo) AppendSetLog(ctx context.Context, sessionID string, log training.SetLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.setlogs.append")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.Int("exercise_index", log.ExerciseIndex),
		attribute.Int("set_number", log.SetNumber),
	)

	if sessionID == "" {
		return ErrEmptySessionID
	}
	if log.SetNumber < 1 {
		return ErrInvalidSetNumber
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO set_log (
			session_id, exercise_index, set_number, reps_completed, load_kg,
			rpe, was_adjusted, adjustment_reason, logged_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		sessionID, log.ExerciseIndex, log.SetNumber, log.RepsCompleted, log.LoadKg,
		log.RPE, log.WasAdjusted, log.AdjustmentReason, log.LoggedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("%w: exercise %d set %d", ErrDuplicateSetLog, log.ExerciseIndex, log.SetNumber)
		}
		if pkg.IsCheckViolationError(err) {
			return fmt.Errorf("%w: %w", ErrInvalidSetLog, err)
		}
		return err
	}
	return nil
}

func (r *Repo) ListSetLogs(ctx context.Context, sessionID string) (_ []training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.setlogs.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT exercise_index, set_number, reps_completed, load_kg,
			rpe, was_adjusted, adjustment_reason, logged_at
		FROM set_log
		WHERE session_id = $1
		ORDER BY exercise_index, set_number
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]training.SetLog, 0)
	for rows.Next() {
		var l training.SetLog
		if err := rows.Scan(
			&l.ExerciseIndex, &l.SetNumber, &l.RepsCompleted, &l.LoadKg,
			&l.RPE, &l.WasAdjusted, &l.AdjustmentReason, &l.LoggedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// SaveModification upserts the ledger entry. Applying the same kind of
// modification to the same pattern of a plan again bumps applied_count.
func (r *Repo) SaveModification(ctx context.Context, mod training.ExerciseModification) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.modifications.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("plan_id", mod.PlanID),
		attribute.String("reason", string(mod.Reason)),
	)

	updatedAt := mod.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now().UTC()
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_modification (
			user_id, plan_id, pattern, original_variant, current_variant,
			original_tempo, current_tempo, original_load_kg, current_load_kg,
			reason, severity, applied_count, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12)
		ON CONFLICT (user_id, plan_id, pattern, reason) DO UPDATE
		SET current_variant = EXCLUDED.current_variant,
			current_tempo   = EXCLUDED.current_tempo,
			current_load_kg = EXCLUDED.current_load_kg,
			severity        = EXCLUDED.severity,
			applied_count   = exercise_modification.applied_count + 1,
			updated_at      = EXCLUDED.updated_at
	`,
		mod.UserID, mod.PlanID, mod.Pattern, mod.OriginalVariant, mod.CurrentVariant,
		mod.OriginalTempo, mod.CurrentTempo, mod.OriginalLoadKg, mod.CurrentLoadKg,
		mod.Reason, mod.Severity, updatedAt,
	)
	return err
}

func (r *Repo) ListModifications(ctx context.Context, planID string) (_ []training.ExerciseModification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.modifications.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, plan_id, pattern, original_variant, current_variant,
			original_tempo, current_tempo, original_load_kg, current_load_kg,
			reason, severity, applied_count, updated_at
		FROM exercise_modification
		WHERE plan_id = $1
		ORDER BY id
	`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mods := make([]training.ExerciseModification, 0)
	for rows.Next() {
		var m training.ExerciseModification
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.PlanID, &m.Pattern, &m.OriginalVariant, &m.CurrentVariant,
			&m.OriginalTempo, &m.CurrentTempo, &m.OriginalLoadKg, &m.CurrentLoadKg,
			&m.Reason, &m.Severity, &m.AppliedCount, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, rows.Err()
}
