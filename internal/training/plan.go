package training

import "time"

// DayType drives daily undulating periodization.
type DayType string

const (
	DayHeavy    DayType = "heavy"
	DayModerate DayType = "moderate"
	DayVolume   DayType = "volume"
)

type WarmupSets struct {
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Intensity string `json:"intensity"`
}

type ExerciseSpec struct {
	Pattern            Pattern            `json:"pattern"`
	Name               string             `json:"name"`
	Sets               int                `json:"sets"`
	Reps               int                `json:"reps"`
	RepsLabel          string             `json:"reps_label,omitempty"`
	Rest               string             `json:"rest"`
	Intensity          string             `json:"intensity"`
	Notes              []string           `json:"notes,omitempty"`
	WasSubstituted     bool               `json:"was_substituted"`
	OriginalName       string             `json:"original_name,omitempty"`
	SubstitutionReason ModificationReason `json:"substitution_reason,omitempty"`
	DayType            DayType            `json:"day_type,omitempty"`
	Warmup             *WarmupSets        `json:"warmup,omitempty"`
	Source             *PatternCapacity   `json:"source_capacity,omitempty"`
}

func (e *ExerciseSpec) AddNote(note string) {
	if note == "" {
		return
	}
	for _, n := range e.Notes {
		if n == note {
			return
		}
	}
	e.Notes = append(e.Notes, note)
}

// Clone copies the spec including its slices.
func (e ExerciseSpec) Clone() ExerciseSpec {
	out := e
	if e.Notes != nil {
		out.Notes = append([]string(nil), e.Notes...)
	}
	if e.Warmup != nil {
		w := *e.Warmup
		out.Warmup = &w
	}
	if e.Source != nil {
		src := *e.Source
		out.Source = &src
	}
	return out
}

type DayPlan struct {
	DayName           string         `json:"day_name"`
	Focus             string         `json:"focus"`
	Exercises         []ExerciseSpec `json:"exercises"`
	EstimatedDuration int            `json:"estimated_duration_minutes"`
}

type WeeklyPlan struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	SplitName   string    `json:"split_name"`
	Description string    `json:"description"`
	Goals       []Goal    `json:"goals"`
	Days        []DayPlan `json:"days"`
	Warnings    []string  `json:"warnings,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SetLog struct {
	ExerciseIndex    int       `json:"exercise_index"`
	SetNumber        int       `json:"set_number"`
	RepsCompleted    int       `json:"reps_completed"`
	LoadKg           *float64  `json:"load_kg,omitempty"`
	RPE              float64   `json:"rpe"`
	WasAdjusted      bool      `json:"was_adjusted"`
	AdjustmentReason string    `json:"adjustment_reason,omitempty"`
	LoggedAt         time.Time `json:"logged_at"`
}

type SuggestionKind string

const (
	SuggestReduce   SuggestionKind = "reduce"
	SuggestIncrease SuggestionKind = "increase"
	SuggestMaintain SuggestionKind = "maintain"
)

type Suggestion struct {
	Kind         SuggestionKind `json:"kind"`
	Message      string         `json:"message"`
	ProposedSets *int           `json:"proposed_sets,omitempty"`
	ProposedReps *int           `json:"proposed_reps,omitempty"`
	ProposedRest *string        `json:"proposed_rest,omitempty"`
}

type ModificationReason string

const (
	ReasonPainSubstitution ModificationReason = "pain_substitution"
	ReasonPainDeload       ModificationReason = "pain_deload"
	ReasonEquipment        ModificationReason = "equipment"
	ReasonStrengthRatio    ModificationReason = "strength_ratio"
	ReasonAutoregReduce    ModificationReason = "autoreg_reduce"
	ReasonAutoregIncrease  ModificationReason = "autoreg_increase"
)

// ExerciseModification is the ledger entry describing how a prescribed
// exercise differs from its baseline.
type ExerciseModification struct {
	ID              int                `json:"id,omitempty"`
	UserID          string             `json:"user_id"`
	PlanID          string             `json:"plan_id"`
	Pattern         Pattern            `json:"pattern"`
	OriginalVariant string             `json:"original_variant"`
	CurrentVariant  string             `json:"current_variant"`
	OriginalTempo   string             `json:"original_tempo,omitempty"`
	CurrentTempo    string             `json:"current_tempo,omitempty"`
	OriginalLoadKg  *float64           `json:"original_load_kg,omitempty"`
	CurrentLoadKg   *float64           `json:"current_load_kg,omitempty"`
	Reason          ModificationReason `json:"reason"`
	Severity        int                `json:"severity,omitempty"`
	AppliedCount    int                `json:"applied_count"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func Int(v int) *int {
	return &v
}

func String(v string) *string {
	return &v
}
