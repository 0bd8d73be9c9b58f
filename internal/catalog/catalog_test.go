package catalog_test

import (
	"strings"
	"testing"

	"github.com/2beens/liftplan/internal/catalog"
	"github.com/2beens/liftplan/internal/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsConsistent(t *testing.T) {
	c := catalog.Default()
	require.NotNil(t, c)

	for _, p := range training.AllPatterns {
		def := c.DefaultVariant(p)
		require.NotEmpty(t, def, p)
		ex, ok := c.Lookup(def)
		require.True(t, ok, def)
		assert.Equal(t, p, ex.Pattern)

		tiers := c.StrengthTiers(p)
		require.NotEmpty(t, tiers, p)
		assert.Zero(t, tiers[len(tiers)-1].MinRatio)
		for _, tier := range tiers {
			_, ok := c.Lookup(tier.Name)
			assert.True(t, ok, tier.Name)
		}
	}

	for _, area := range training.AllBodyAreas {
		assert.NotEmpty(t, c.Correctives(area), area)
	}
}

func TestLookup_AliasesAreCaseInsensitive(t *testing.T) {
	c := catalog.Default()

	ex, ok := c.Lookup("squat (bilanciere)")
	require.True(t, ok)
	assert.Equal(t, "Back Squat", ex.Name)

	ex, ok = c.Lookup("  TRAZIONI ")
	require.True(t, ok)
	assert.Equal(t, "Pull-up", ex.Name)

	_, ok = c.Lookup("Underwater Basket Weaving")
	assert.False(t, ok)
}

func TestCanonicalAndSame(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, "Lat Pulldown", c.Canonical("lat machine"))
	assert.Equal(t, "Back Squat", c.Canonical("Squat (Bilanciere)"))
	assert.Equal(t, "Handstand Walk", c.Canonical(" Handstand Walk "))

	assert.True(t, c.Same("Lat Pulldown (Machine)", "LAT PULLDOWN"))
	assert.True(t, c.Same("Mystery Lift", "mystery lift"))
	assert.False(t, c.Same("Lat Pulldown", "Lat Pulldown (Wide Grip)"))
	assert.False(t, c.Same("Leg Press", "Leg Press (Limited ROM)"))
}

func TestAvailable(t *testing.T) {
	c := catalog.Default()
	bare := training.Equipment{}

	assert.False(t, c.Available("Pull-up", bare))
	assert.True(t, c.Available("Pull-up", training.Equipment{PullupBar: true}))
	assert.False(t, c.Available("Inverted Row", bare))
	assert.True(t, c.Available("Inverted Row", training.Equipment{SturdyTable: true}))
	assert.False(t, c.Available("Band Row", bare))
	assert.True(t, c.Available("Wall Sit", bare))
	assert.True(t, c.Available("Something Unknown", bare))
	assert.True(t, c.Available("Back Squat", training.FullGym))
}

func TestConservativeLoad(t *testing.T) {
	c := catalog.Default()
	testCases := []struct {
		name   string
		expect float64
	}{
		{"Back Squat", 70},
		{"Conventional Deadlift", 80},
		{"Bench Press", 60},
		{"Military Press", 40},
		{"Barbell Row", 50},
		{"Leg Press", 100},
		{"Lat Pulldown", 50},
		{"Pull-up", 20},
		{"no such exercise", 20},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, c.ConservativeLoad(tc.name), tc.name)
	}
}

func TestPainRules(t *testing.T) {
	c := catalog.Default()

	assert.True(t, c.Contraindicated(training.Knee, training.LowerPush))
	assert.False(t, c.Contraindicated(training.Knee, training.HorizontalPush))
	assert.Equal(t, "Wall Sit", c.Substitutes(training.Knee, training.LowerPush)[0])
	assert.Equal(t, []string{"Knee Circles", "VMO Activation", "Wall Sit", "Quad/Hamstring Stretch"}, c.Correctives(training.Knee))
	assert.Nil(t, c.Substitutes(training.Ankle, training.VerticalPull))
}

func TestFloorPullAndAlternate(t *testing.T) {
	c := catalog.Default()

	name, ok := c.FloorPull(training.VerticalPull)
	assert.True(t, ok)
	assert.Equal(t, "Floor Pull (Towel)", name)
	name, ok = c.FloorPull(training.HorizontalPull)
	assert.True(t, ok)
	assert.Equal(t, "Prone Y-T-W Raises", name)
	_, ok = c.FloorPull(training.LowerPush)
	assert.False(t, ok)

	alt, ok := c.Alternate("Back Squat")
	assert.True(t, ok)
	assert.Equal(t, "Front Squat", alt)
	_, ok = c.Alternate("Wall Sit")
	assert.False(t, ok)
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "exercises: [\n"},
		{"unknown pattern", "exercises:\n  - name: X\n    pattern: sideways\n"},
		{"missing name", "exercises:\n  - pattern: core\n"},
		{"duplicate alias", "exercises:\n  - name: A\n    pattern: core\n  - name: B\n    pattern: core\n    aliases: [a]\n"},
		{"tiers not descending", "strength_tiers:\n  core:\n    - {min_ratio: 0.5, name: A}\n    - {min_ratio: 1, name: B}\n"},
		{"tiers without floor", "strength_tiers:\n  core:\n    - {min_ratio: 0.5, name: A}\n"},
		{"unknown area", "pain:\n  tail:\n    correctives: [Wag]\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := catalog.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
			assert.Nil(t, c)
		})
	}
}
