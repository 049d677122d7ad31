package persistence_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/bakeplan-go/test/helpers"
)

func TestStockRepository_SetAndRead(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStockRepository(db)

	require.NoError(t, repo.Set(20, "Dough", decimal.NewFromInt(5000)))

	level, err := repo.CurrentLevel(20)
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.NewFromInt(5000)))

	ok, err := repo.Sufficient(20, decimal.NewFromInt(4000))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Sufficient(20, decimal.NewFromInt(6000))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStockRepository_MissingItemMeansZero(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStockRepository(db)

	level, err := repo.CurrentLevel(999)
	require.NoError(t, err)
	assert.True(t, level.IsZero())

	ok, err := repo.Sufficient(999, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStockRepository_ConsumeFloorsAtZero(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStockRepository(db)

	require.NoError(t, repo.Set(20, "Dough", decimal.NewFromInt(100)))
	require.NoError(t, repo.Consume(20, decimal.NewFromInt(40)))

	level, err := repo.CurrentLevel(20)
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.NewFromInt(60)))

	require.NoError(t, repo.Consume(20, decimal.NewFromInt(500)))
	level, err = repo.CurrentLevel(20)
	require.NoError(t, err)
	assert.True(t, level.IsZero())
}
