package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

var recordTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newValidRecord(t *testing.T) *ledger.SpendRecord {
	t.Helper()

	record, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		recordTime,
		ledger.PurposeProduction,
		6, 0, 2,
		[]string{"Jord", "Muaat"},
		false,
		"produced 2 dreadnoughts",
	)
	require.NoError(t, err)
	return record
}

func TestNewSpendRecord_Valid(t *testing.T) {
	// Act
	record := newValidRecord(t)

	// Assert
	assert.False(t, record.ID().IsZero())
	assert.Equal(t, 1, record.PlayerID().Value())
	assert.Equal(t, ledger.PurposeProduction, record.Purpose())
	assert.Equal(t, ledger.PhaseAction, record.Phase())
	assert.Equal(t, 6, record.ResourcesSpent())
	assert.Equal(t, 2, record.TradeGoodsSpent())
	assert.Equal(t, []string{"Jord", "Muaat"}, record.PlanetsExhausted())
	assert.Equal(t, 2, record.PlanetCount())
	assert.Equal(t, 6, record.TotalSpent())
}

func TestNewSpendRecord_ZeroPlayerRejected(t *testing.T) {
	// Act
	_, err := ledger.NewSpendRecord(
		shared.PlayerID{},
		recordTime,
		ledger.PurposeProduction,
		1, 0, 0, nil, false, "")

	// Assert
	var invalid *ledger.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "player_id", invalid.Field)
}

func TestNewSpendRecord_InvalidPurposeRejected(t *testing.T) {
	// Act
	_, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		recordTime,
		ledger.Purpose("SMUGGLING"),
		1, 0, 0, nil, false, "")

	// Assert
	var invalid *ledger.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "purpose", invalid.Field)
}

func TestNewSpendRecord_NegativeAmountRejected(t *testing.T) {
	// Act
	_, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		recordTime,
		ledger.PurposeProduction,
		-1, 0, 0, nil, false, "")

	// Assert
	var invalid *ledger.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "resources_spent", invalid.Field)
}

func TestNewSpendRecord_EmptyRecordRejected(t *testing.T) {
	// Act
	_, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		recordTime,
		ledger.PurposeProduction,
		0, 0, 0, nil, false, "")

	// Assert
	var invalid *ledger.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "amounts", invalid.Field)
}

func TestNewSpendRecord_TradeGoodInvariant(t *testing.T) {
	// Arrange: 5 trade goods cannot appear in a spend totalling 2 + 2
	_, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		recordTime,
		ledger.PurposeProduction,
		2, 2, 5, nil, false, "")

	// Assert
	var violation *ledger.ErrSpendInvariantViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 5, violation.TradeGoods)
}

func TestNewSpendRecord_VotingGoodsBeyondResourcesRejected(t *testing.T) {
	// Arrange: a voting record where goods exceed the resource side could
	// only mean goods were counted as influence
	_, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		recordTime,
		ledger.PurposeAgenda,
		0, 4, 2,
		[]string{"Jord"},
		true,
		"voted on Mutiny")

	// Assert
	var invalid *ledger.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "trade_goods_spent", invalid.Field)
}

func TestNewSpendRecord_VotingPlanetsOnlyAccepted(t *testing.T) {
	// Act
	record, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		recordTime,
		ledger.PurposeAgenda,
		0, 4, 0,
		[]string{"Jord", "Muaat"},
		true,
		"voted on Mutiny")

	// Assert
	require.NoError(t, err)
	assert.True(t, record.ForVoting())
	assert.Equal(t, ledger.PhaseAgenda, record.Phase())
}

func TestNewSpendRecord_FutureTimestampRejected(t *testing.T) {
	// Act
	_, err := ledger.NewSpendRecord(
		shared.MustNewPlayerID(1),
		time.Now().Add(2*time.Hour),
		ledger.PurposeProduction,
		1, 0, 0, nil, false, "")

	// Assert
	var invalid *ledger.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "timestamp", invalid.Field)
}

func TestReconstructSpendRecord_BypassesValidation(t *testing.T) {
	// Arrange
	id := ledger.NewRecordID()

	// Act
	record := ledger.ReconstructSpendRecord(
		id,
		shared.MustNewPlayerID(3),
		recordTime,
		ledger.PurposeLeadership,
		ledger.PhaseStrategy,
		0, 3, 0,
		[]string{"Arc Prime"},
		false,
		"")

	// Assert
	assert.True(t, record.ID().Equals(id))
	assert.Equal(t, ledger.PhaseStrategy, record.Phase())
	assert.Equal(t, []string{"Arc Prime"}, record.PlanetsExhausted())
}

func TestSpendRecord_PlanetsCopyIsIsolated(t *testing.T) {
	// Arrange
	record := newValidRecord(t)

	// Act
	planets := record.PlanetsExhausted()
	planets[0] = "Nestphar"

	// Assert
	assert.Equal(t, []string{"Jord", "Muaat"}, record.PlanetsExhausted())
}

func TestPurpose_ToPhase(t *testing.T) {
	cases := []struct {
		purpose ledger.Purpose
		phase   ledger.Phase
	}{
		{ledger.PurposeProduction, ledger.PhaseAction},
		{ledger.PurposeConstruction, ledger.PhaseAction},
		{ledger.PurposeResearch, ledger.PhaseAction},
		{ledger.PurposeLeadership, ledger.PhaseStrategy},
		{ledger.PurposeAgenda, ledger.PhaseAgenda},
	}

	for _, tc := range cases {
		t.Run(tc.purpose.String(), func(t *testing.T) {
			phase, err := tc.purpose.ToPhase()
			require.NoError(t, err)
			assert.Equal(t, tc.phase, phase)
		})
	}
}

func TestParsePurpose(t *testing.T) {
	// Act
	parsed, err := ledger.ParsePurpose("RESEARCH")
	require.NoError(t, err)
	_, invalidErr := ledger.ParsePurpose("SMUGGLING")

	// Assert
	assert.Equal(t, ledger.PurposeResearch, parsed)
	assert.Error(t, invalidErr)
}

func TestRecordID_FromString(t *testing.T) {
	// Arrange
	original := ledger.NewRecordID()

	// Act
	parsed, err := ledger.NewRecordIDFromString(original.Value())
	require.NoError(t, err)
	_, emptyErr := ledger.NewRecordIDFromString("")
	_, malformedErr := ledger.NewRecordIDFromString("not-a-uuid")

	// Assert
	assert.True(t, parsed.Equals(original))
	assert.Error(t, emptyErr)
	assert.Error(t, malformedErr)
}
