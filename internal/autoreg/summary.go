package autoreg

import (
	"fmt"
	"time"

	"github.com/2beens/liftplan/internal/training"
)

const (
	lastSetWeight       = 0.5
	secondLastSetWeight = 0.3
	otherSetsWeight     = 0.2
)

type ExerciseLog struct {
	Name    string                `json:"name"`
	Pattern training.Pattern      `json:"pattern"`
	Sets    int                   `json:"sets"`
	Logs    []training.SetLog     `json:"logs"`
	Final   training.ExerciseSpec `json:"final_spec"`
}

type Summary struct {
	SessionID          string        `json:"session_id"`
	Duration           time.Duration `json:"duration"`
	AverageRPE         float64       `json:"average_rpe"`
	WeightedAverageRPE float64       `json:"weighted_average_rpe"`
	SetsCompleted      int           `json:"sets_completed"`
	Exercises          []ExerciseLog `json:"per_exercise_logs"`
}

// Complete closes the session and summarizes it. Completing early is
// allowed; exercises without sets are reported with no logs.
func (s *Session) Complete() (Summary, error) {
	switch s.state {
	case SessionAbandoned:
		return Summary{}, ErrSessionClosed
	case SuggestionPending:
		return Summary{}, ErrSuggestionPending
	}
	if s.state != SessionComplete {
		s.pendingLog = nil
		s.state = SessionComplete
		s.finishedAt = s.now()
	}

	summary := Summary{
		SessionID: s.id,
		Duration:  s.finishedAt.Sub(s.startedAt),
		Exercises: make([]ExerciseLog, len(s.exercises)),
	}

	var (
		rpeSum      float64
		weightedSum float64
		weighted    int
	)
	for i, e := range s.exercises {
		logs := append([]training.SetLog(nil), s.logs[i]...)
		summary.Exercises[i] = ExerciseLog{
			Name:    e.Name,
			Pattern: e.Pattern,
			Sets:    len(logs),
			Logs:    logs,
			Final:   e.Clone(),
		}
		for _, l := range logs {
			rpeSum += l.RPE
		}
		summary.SetsCompleted += len(logs)
		if len(logs) > 0 {
			weightedSum += WeightedRPE(logs)
			weighted++
		}
	}

	if summary.SetsCompleted > 0 {
		summary.AverageRPE = rpeSum / float64(summary.SetsCompleted)
	}
	if weighted > 0 {
		summary.WeightedAverageRPE = weightedSum / float64(weighted)
	}

	detail := fmt.Sprintf("completed %d sets, avg rpe %.1f, weighted %.1f",
		summary.SetsCompleted, summary.AverageRPE, summary.WeightedAverageRPE)
	s.rec.Record(training.DecisionEvent{
		Stage:   stage,
		Kind:    training.EventDecision,
		Subject: s.id,
		Detail:  detail,
	})

	return summary, nil
}

// WeightedRPE favors the final sets of an exercise: the last set weighs 0.5,
// the one before 0.3, and the rest share 0.2. Weights are normalized so
// short exercises still average correctly.
func WeightedRPE(logs []training.SetLog) float64 {
	switch len(logs) {
	case 0:
		return 0
	case 1:
		return logs[0].RPE
	}

	others := len(logs) - 2
	var sum, total float64
	for i, l := range logs {
		var w float64
		switch i {
		case len(logs) - 1:
			w = lastSetWeight
		case len(logs) - 2:
			w = secondLastSetWeight
		default:
			w = otherSetsWeight / float64(others)
		}
		sum += w * l.RPE
		total += w
	}
	return sum / total
}
