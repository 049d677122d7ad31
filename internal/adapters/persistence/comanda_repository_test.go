package persistence_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/test/helpers"
)

func testComanda(orderID int) *recipe.Comanda {
	return &recipe.Comanda{
		OrderID:   orderID,
		RequestID: 1,
		ProductID: 10,
		Items: []recipe.ComandaItem{
			{
				ItemID:   20,
				Name:     "Dough",
				Policy:   recipe.PolicyOnDemand,
				Quantity: decimal.NewFromInt(500),
				Children: []recipe.ComandaItem{
					{ItemID: 40, Name: "Flour", Policy: recipe.PolicyStocked, Quantity: decimal.NewFromInt(500)},
				},
			},
		},
	}
}

func TestComandaRepository_SaveAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormComandaRepository(db)

	require.NoError(t, repo.Save(testComanda(1)))

	found, err := repo.FindByOrder(1)
	require.NoError(t, err)
	assert.Equal(t, 10, found.ProductID)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Dough", found.Items[0].Name)
	require.Len(t, found.Items[0].Children, 1)
	assert.Equal(t, 40, found.Items[0].Children[0].ItemID)
}

func TestComandaRepository_SaveReplaces(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormComandaRepository(db)

	require.NoError(t, repo.Save(testComanda(1)))

	replacement := testComanda(1)
	replacement.ProductID = 11
	require.NoError(t, repo.Save(replacement))

	found, err := repo.FindByOrder(1)
	require.NoError(t, err)
	assert.Equal(t, 11, found.ProductID)
}

func TestComandaRepository_Delete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormComandaRepository(db)

	require.NoError(t, repo.Save(testComanda(1)))
	require.NoError(t, repo.Delete(1))

	_, err := repo.FindByOrder(1)
	assert.Error(t, err)

	// Deleting a missing ticket is a no-op
	assert.NoError(t, repo.Delete(1))
}
