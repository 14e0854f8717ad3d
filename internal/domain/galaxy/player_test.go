package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

func newTestPlayer(t *testing.T, id int, name string) *galaxy.Player {
	t.Helper()
	player, err := galaxy.NewPlayer(shared.MustNewPlayerID(id), name, "FEDERATION_OF_SOL")
	require.NoError(t, err)
	return player
}

func TestNewPlayer_Valid(t *testing.T) {
	// Act
	player := newTestPlayer(t, 1, "Alice")

	// Assert
	assert.Equal(t, 1, player.ID().Value())
	assert.Equal(t, "Alice", player.Name())
	assert.Equal(t, "FEDERATION_OF_SOL", player.Faction())
	assert.Equal(t, 0, player.TradeGoods())
	assert.Equal(t, 0, player.Commodities())
	assert.Empty(t, player.Technologies())
}

func TestNewPlayer_EmptyName(t *testing.T) {
	_, err := galaxy.NewPlayer(shared.MustNewPlayerID(1), "", "")
	assert.Error(t, err)
}

func TestPlayer_SpendTradeGoods(t *testing.T) {
	// Arrange
	player := newTestPlayer(t, 1, "Alice")
	require.NoError(t, player.GainTradeGoods(5))

	// Act
	err := player.SpendTradeGoods(3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, player.TradeGoods())
}

func TestPlayer_SpendTradeGoods_Insufficient(t *testing.T) {
	// Arrange
	player := newTestPlayer(t, 1, "Alice")
	require.NoError(t, player.GainTradeGoods(2))

	// Act
	err := player.SpendTradeGoods(3)

	// Assert - balance untouched on failure
	require.Error(t, err)
	var insufficient *galaxy.InsufficientTradeGoodsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Required)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 2, player.TradeGoods())
}

func TestPlayer_SpendTradeGoods_Negative(t *testing.T) {
	player := newTestPlayer(t, 1, "Alice")
	assert.Error(t, player.SpendTradeGoods(-1))
}

func TestPlayer_ConvertCommodities(t *testing.T) {
	// Arrange
	player := newTestPlayer(t, 2, "Bob")
	require.NoError(t, player.GainCommodities(4))

	// Act
	err := player.ConvertCommodities(3)

	// Assert - one-for-one conversion
	require.NoError(t, err)
	assert.Equal(t, 1, player.Commodities())
	assert.Equal(t, 3, player.TradeGoods())
}

func TestPlayer_ConvertCommodities_Insufficient(t *testing.T) {
	// Arrange
	player := newTestPlayer(t, 2, "Bob")
	require.NoError(t, player.GainCommodities(1))

	// Act
	err := player.ConvertCommodities(2)

	// Assert
	require.Error(t, err)
	assert.Equal(t, 1, player.Commodities())
	assert.Equal(t, 0, player.TradeGoods())
}

func TestPlayer_Technologies(t *testing.T) {
	// Arrange
	player := newTestPlayer(t, 3, "Carol")

	// Act
	player.GainTechnology("SARWEEN_TOOLS")
	player.GainTechnology("SARWEEN_TOOLS")
	player.GainTechnology("GRAVITY_DRIVE")

	// Assert - idempotent, order preserved
	assert.Equal(t, []string{"SARWEEN_TOOLS", "GRAVITY_DRIVE"}, player.Technologies())
	assert.True(t, player.HasTechnology("SARWEEN_TOOLS"))
	assert.False(t, player.HasTechnology("DUAL_WEAPONRY"))

	// Mutating the returned slice must not affect the player
	techs := player.Technologies()
	techs[0] = "HACKED"
	assert.True(t, player.HasTechnology("SARWEEN_TOOLS"))
}
