package training_test

import (
	"errors"
	"testing"
	"time"

	"github.com/2beens/liftplan/internal/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoal(t *testing.T) {
	testCases := map[string]training.Goal{
		"forza":         training.Strength,
		"Massa":         training.Hypertrophy,
		"ipertrofia":    training.Hypertrophy,
		"tonificazione": training.FatLoss,
		"dimagrimento":  training.FatLoss,
		"resistenza":    training.Endurance,
		"benessere":     training.Wellness,
		"strength":      training.Strength,
		"gravidanza":    training.Pregnancy,
		"juggling":      training.Goal("juggling"),
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, training.ParseGoal(in))
		})
	}
}

func TestParseBodyArea(t *testing.T) {
	a, err := training.ParseBodyArea("ginocchio")
	require.NoError(t, err)
	assert.Equal(t, training.Knee, a)

	a, err = training.ParseBodyArea(" Shoulder ")
	require.NoError(t, err)
	assert.Equal(t, training.Shoulder, a)

	_, err = training.ParseBodyArea("tail")
	assert.True(t, errors.Is(err, training.ErrUnknownBodyArea))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, training.PainNone, training.BandFor(0))
	for s := 1; s <= 3; s++ {
		assert.Equal(t, training.PainMild, training.BandFor(s))
	}
	for s := 4; s <= 6; s++ {
		assert.Equal(t, training.PainModerate, training.BandFor(s))
		assert.True(t, training.BandFor(s).Substitutes())
	}
	for s := 7; s <= 10; s++ {
		assert.Equal(t, training.PainSevere, training.BandFor(s))
	}
	assert.False(t, training.PainMild.Substitutes())
}

func TestPainEntry_Validate(t *testing.T) {
	assert.NoError(t, training.PainEntry{Area: training.Knee, Severity: 8}.Validate())
	assert.ErrorIs(t, training.PainEntry{Area: training.Knee, Severity: 11}.Validate(), training.ErrInvalidSeverity)
	assert.ErrorIs(t, training.PainEntry{Area: "tail", Severity: 3}.Validate(), training.ErrUnknownBodyArea)
}

func TestPatternCapacity_Validate(t *testing.T) {
	c := training.PatternCapacity{Pattern: training.LowerPush, IsEstimated: false}
	assert.ErrorIs(t, c.Validate(), training.ErrMissingTestDate)

	now := time.Now()
	c.TestDate = &now
	assert.NoError(t, c.Validate())
	assert.True(t, c.IsTested())

	est := training.PatternCapacity{Pattern: training.Core, IsEstimated: true}
	assert.NoError(t, est.Validate())
	assert.False(t, est.IsUsable())
}

func TestCapacities_CloneDoesNotAlias(t *testing.T) {
	orig := training.Capacities{
		training.LowerPush: {Pattern: training.LowerPush, LoadKg: training.Float(100)},
	}
	clone := orig.Clone()
	*clone[training.LowerPush].LoadKg = 50
	assert.Equal(t, 100.0, orig[training.LowerPush].Load())
}

func TestEquipment_Effective(t *testing.T) {
	assert.Equal(t, training.FullGym, training.Equipment{}.Effective(training.Gym))
	home := training.Equipment{Bands: true}
	assert.Equal(t, home, home.Effective(training.Home))

	p := training.UserProfile{Location: training.Home}
	assert.True(t, p.NoEquipment())
	assert.Equal(t, training.GeneralFitness, p.PrimaryGoal())
}

func TestEventLog(t *testing.T) {
	var log training.EventLog
	log.Record(training.DecisionEvent{Stage: "pain", Kind: training.EventRuleMatched})
	log.Record(training.DecisionEvent{Stage: "equipment", Kind: training.EventDecision})
	assert.Len(t, log.Events(), 2)
	assert.Len(t, log.Filter("pain"), 1)

	// nil recorder must be safe to use
	training.OrDiscard(nil).Record(training.DecisionEvent{})
}
