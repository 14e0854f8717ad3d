package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
	"github.com/twilightsim/imperium-go/test/helpers"
)

func mustPlayerID(t *testing.T, id int) shared.PlayerID {
	t.Helper()
	playerID, err := shared.NewPlayerID(id)
	require.NoError(t, err)
	return playerID
}

func newRecord(t *testing.T, playerID shared.PlayerID, ts time.Time, purpose ledger.Purpose, resources int) *ledger.SpendRecord {
	t.Helper()
	record, err := ledger.NewSpendRecord(
		playerID, ts, purpose,
		resources, 0, 0,
		[]string{"Jord"}, false, "test spend",
	)
	require.NoError(t, err)
	return record
}

func TestSpendRecordRepository_CreateAndFindByID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSpendRecordRepository(db)

	playerID := mustPlayerID(t, 1)
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	record := newRecord(t, playerID, ts, ledger.PurposeProduction, 5)

	require.NoError(t, repo.Create(context.Background(), record))

	found, err := repo.FindByID(context.Background(), record.ID(), playerID)
	require.NoError(t, err)

	assert.True(t, record.ID().Equals(found.ID()))
	assert.Equal(t, ledger.PurposeProduction, found.Purpose())
	assert.Equal(t, 5, found.ResourcesSpent())
	assert.Equal(t, []string{"Jord"}, found.PlanetsExhausted())
	assert.Equal(t, "test spend", found.Description())
}

func TestSpendRecordRepository_FindByIDWrongPlayer(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSpendRecordRepository(db)

	playerID := mustPlayerID(t, 1)
	record := newRecord(t, playerID, time.Now().UTC(), ledger.PurposeResearch, 4)
	require.NoError(t, repo.Create(context.Background(), record))

	_, err := repo.FindByID(context.Background(), record.ID(), mustPlayerID(t, 2))
	assert.Error(t, err)
}

func TestSpendRecordRepository_FilterByPurpose(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSpendRecordRepository(db)

	playerID := mustPlayerID(t, 1)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), newRecord(t, playerID, base, ledger.PurposeProduction, 3)))
	require.NoError(t, repo.Create(context.Background(), newRecord(t, playerID, base.Add(time.Hour), ledger.PurposeResearch, 4)))
	require.NoError(t, repo.Create(context.Background(), newRecord(t, playerID, base.Add(2*time.Hour), ledger.PurposeProduction, 2)))

	purpose := ledger.PurposeProduction
	opts := ledger.DefaultQueryOptions()
	opts.Purpose = &purpose

	records, err := repo.FindByPlayer(context.Background(), playerID, opts)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, ledger.PurposeProduction, record.Purpose())
	}

	count, err := repo.CountByPlayer(context.Background(), playerID, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSpendRecordRepository_FilterByDateRange(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSpendRecordRepository(db)

	playerID := mustPlayerID(t, 1)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for day := 0; day < 5; day++ {
		record := newRecord(t, playerID, base.AddDate(0, 0, day), ledger.PurposeLeadership, 1)
		require.NoError(t, repo.Create(context.Background(), record))
	}

	start := base.AddDate(0, 0, 1)
	end := base.AddDate(0, 0, 3)
	opts := ledger.DefaultQueryOptions()
	opts.StartDate = &start
	opts.EndDate = &end

	records, err := repo.FindByPlayer(context.Background(), playerID, opts)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestSpendRecordRepository_OrderAndPagination(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSpendRecordRepository(db)

	playerID := mustPlayerID(t, 1)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		record := newRecord(t, playerID, base.Add(time.Duration(i)*time.Hour), ledger.PurposeAgenda, i+1)
		require.NoError(t, repo.Create(context.Background(), record))
	}

	// Default order is newest first
	opts := ledger.DefaultQueryOptions()
	opts.Limit = 2

	records, err := repo.FindByPlayer(context.Background(), playerID, opts)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 4, records[0].ResourcesSpent())
	assert.Equal(t, 3, records[1].ResourcesSpent())

	opts.Offset = 2
	records, err = repo.FindByPlayer(context.Background(), playerID, opts)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].ResourcesSpent())
}

func TestSpendRecordRepository_ScopedToPlayer(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSpendRecordRepository(db)

	first := mustPlayerID(t, 1)
	second := mustPlayerID(t, 2)
	ts := time.Now().UTC()

	require.NoError(t, repo.Create(context.Background(), newRecord(t, first, ts, ledger.PurposeProduction, 3)))
	require.NoError(t, repo.Create(context.Background(), newRecord(t, second, ts, ledger.PurposeProduction, 4)))

	records, err := repo.FindByPlayer(context.Background(), first, ledger.DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].ResourcesSpent())
}
