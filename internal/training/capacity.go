package training

import (
	"fmt"
	"time"
)

const (
	EstimatedFromBodyweight = "bodyweight"
	EstimatedFromDefault    = "default"
)

// PatternCapacity is a tested or estimated performance record for a pattern.
type PatternCapacity struct {
	Pattern       Pattern    `json:"pattern"`
	VariantID     string     `json:"variant_id"`
	VariantName   string     `json:"variant_name"`
	Difficulty    float64    `json:"difficulty"`
	MaxReps       int        `json:"max_reps"`
	LoadKg        *float64   `json:"load_kg,omitempty"`
	TestDate      *time.Time `json:"test_date,omitempty"`
	IsEstimated   bool       `json:"is_estimated"`
	EstimatedFrom string     `json:"estimated_from,omitempty"`
	// ValidationRuns counts finished sessions that fed back into an estimate.
	ValidationRuns int `json:"validation_runs,omitempty"`
}

func (c PatternCapacity) Validate() error {
	if !c.Pattern.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, c.Pattern)
	}
	if !c.IsEstimated && c.TestDate == nil {
		return fmt.Errorf("%s: %w", c.Pattern, ErrMissingTestDate)
	}
	return nil
}

func (c PatternCapacity) HasLoad() bool {
	return c.LoadKg != nil && *c.LoadKg > 0
}

// IsUsable reports whether the record carries either a load or a
// reps-and-difficulty pair.
func (c PatternCapacity) IsUsable() bool {
	return c.HasLoad() || (c.MaxReps > 0 && c.Difficulty > 0)
}

// IsTested is a real screening result.
func (c PatternCapacity) IsTested() bool {
	return !c.IsEstimated && c.TestDate != nil
}

func (c PatternCapacity) Load() float64 {
	if c.LoadKg == nil {
		return 0
	}
	return *c.LoadKg
}

// Capacities is keyed by pattern. Values are copied on write so a map
// returned by inference never aliases its input.
type Capacities map[Pattern]PatternCapacity

func (c Capacities) Clone() Capacities {
	out := make(Capacities, len(c))
	for k, v := range c {
		if v.LoadKg != nil {
			load := *v.LoadKg
			v.LoadKg = &load
		}
		if v.TestDate != nil {
			td := *v.TestDate
			v.TestDate = &td
		}
		out[k] = v
	}
	return out
}

func (c Capacities) AnyTested() bool {
	for _, v := range c {
		if v.IsTested() {
			return true
		}
	}
	return false
}

func Float(v float64) *float64 {
	return &v
}
