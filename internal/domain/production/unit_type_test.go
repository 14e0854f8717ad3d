package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/production"
)

func TestParseUnitType(t *testing.T) {
	cases := []struct {
		input    string
		expected production.UnitType
	}{
		{"fighter", production.UnitFighter},
		{"FIGHTER", production.UnitFighter},
		{"space-dock", production.UnitSpaceDock},
		{"space_dock", production.UnitSpaceDock},
		{" war sun ", ""},
		{"monument", ""},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			// Act
			parsed, err := production.ParseUnitType(tc.input)

			// Assert
			if tc.expected == "" {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, parsed)
			}
		})
	}
}

func TestUnitType_IsDualCapable(t *testing.T) {
	assert.True(t, production.UnitFighter.IsDualCapable())
	assert.True(t, production.UnitInfantry.IsDualCapable())
	assert.False(t, production.UnitCruiser.IsDualCapable())
	assert.False(t, production.UnitWarSun.IsDualCapable())
}

func TestDefaultStatsRegistry_Roster(t *testing.T) {
	// Arrange
	registry := production.DefaultStatsRegistry()

	// Act & Assert
	fighter, ok := registry.BaseStats(production.UnitFighter)
	require.True(t, ok)
	assert.Equal(t, 1.0, fighter.Cost)

	pds, ok := registry.BaseStats(production.UnitPDS)
	require.True(t, ok)
	assert.Equal(t, 0.0, pds.Cost)

	delta, ok := registry.TechnologyModifier("PROTOTYPE_WAR_SUN_II", production.UnitWarSun)
	require.True(t, ok)
	assert.Equal(t, -2.0, delta)

	assert.Len(t, registry.UnitTypes(), 11)
}

func TestStatsRegistry_ModifierLookupMisses(t *testing.T) {
	// Arrange
	registry := production.NewStatsRegistry()

	// Act
	_, factionFound := registry.FactionModifier("FEDERATION_OF_SOL", production.UnitCruiser)
	_, techFound := registry.TechnologyModifier("GRAVITY_DRIVE", production.UnitCruiser)

	// Assert
	assert.False(t, factionFound)
	assert.False(t, techFound)
}
