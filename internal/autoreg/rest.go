package autoreg

import (
	"context"
	"math"
	"time"

	"github.com/2beens/liftplan/internal/periodization"
	"github.com/2beens/liftplan/internal/training"
)

const (
	menopauseRestFactor = 1.2
	defaultTick         = time.Second
)

// RestFor is the rest after a set of spec. The population modifier scales the
// base value and never replaces it.
func RestFor(spec training.ExerciseSpec, population training.Population) time.Duration {
	base := time.Duration(periodization.RestSeconds(spec.Rest)) * time.Second
	if population == training.PopulationMenopause {
		return time.Duration(math.Round(float64(base) * menopauseRestFactor))
	}
	return base
}

// RestTimer counts a rest period down in ticks.
type RestTimer struct {
	Duration time.Duration
	Tick     time.Duration
}

func NewRestTimer(d time.Duration) RestTimer {
	return RestTimer{Duration: d, Tick: defaultTick}
}

// Run blocks until the rest is over or ctx is done, calling onTick with the
// remaining time after every tick. It returns ctx.Err() when cancelled.
func (t RestTimer) Run(ctx context.Context, onTick func(remaining time.Duration)) error {
	tick := t.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	remaining := t.Duration
	if remaining <= 0 {
		return nil
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			remaining -= tick
			if remaining < 0 {
				remaining = 0
			}
			if onTick != nil {
				onTick(remaining)
			}
			if remaining == 0 {
				return nil
			}
		}
	}
}

// RestTimer returns the timer for the rest that follows the last logged set,
// using the exercise target as it stands now.
func (s *Session) RestTimer() RestTimer {
	idx := s.current
	if s.state == ExerciseComplete || s.state == SessionComplete {
		idx = s.current - 1
	}
	if idx < 0 || idx >= len(s.exercises) {
		return NewRestTimer(0)
	}
	return NewRestTimer(RestFor(s.exercises[idx], s.population))
}
