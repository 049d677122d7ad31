package recipe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTechnicalSheet_ComponentRequirements(t *testing.T) {
	// A 60g roll made from dough (proportion 1.1) and topping (0.05),
	// losing 0.15 during production.
	components := []recipe.ComponentRef{
		{ItemID: 20, Name: "Dough", ItemType: recipe.ItemSubproduct, Proportion: dec("1.1")},
		{ItemID: 30, Name: "Topping", ItemType: recipe.ItemIngredient, Proportion: dec("0.05")},
	}
	sheet, err := recipe.NewTechnicalSheet(1, 10, "Roll", recipe.ItemProduct, recipe.UnitUnits,
		dec("60"), dec("100"), dec("0.15"), recipe.PolicyOnDemand, components)
	require.NoError(t, err)

	reqs, err := sheet.ComponentRequirements(dec("200"))
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	// 1.1 * 60 * 200 / (1.15 - 0.15) = 13200
	assert.True(t, reqs[0].Quantity.Equal(dec("13200")), "got %s", reqs[0].Quantity)
	// 0.05 * 60 * 200 / 1.00 = 600
	assert.True(t, reqs[1].Quantity.Equal(dec("600")), "got %s", reqs[1].Quantity)
}

func TestTechnicalSheet_ComponentRequirementsRoundsToTwoPlaces(t *testing.T) {
	components := []recipe.ComponentRef{
		{ItemID: 20, Name: "Flour", ItemType: recipe.ItemIngredient, Proportion: dec("1")},
		{ItemID: 21, Name: "Water", ItemType: recipe.ItemIngredient, Proportion: dec("0.5")},
	}
	// Gram-based sheet: zero unit weight counts as 1
	sheet, err := recipe.NewTechnicalSheet(2, 11, "Dough", recipe.ItemSubproduct, recipe.UnitGrams,
		decimal.Zero, dec("1000"), dec("0.05"), recipe.PolicyOnDemand, components)
	require.NoError(t, err)

	reqs, err := sheet.ComponentRequirements(dec("1000"))
	require.NoError(t, err)

	// 1 * 1000 / 1.45 = 689.655... -> 689.66
	assert.True(t, reqs[0].Quantity.Equal(dec("689.66")), "got %s", reqs[0].Quantity)
	// 0.5 * 1000 / 1.45 = 344.827... -> 344.83
	assert.True(t, reqs[1].Quantity.Equal(dec("344.83")), "got %s", reqs[1].Quantity)
}

func TestTechnicalSheet_LeafHasNoRequirements(t *testing.T) {
	sheet, err := recipe.NewTechnicalSheet(3, 12, "Salt", recipe.ItemIngredient, recipe.UnitGrams,
		decimal.Zero, dec("1000"), decimal.Zero, recipe.PolicyStocked, nil)
	require.NoError(t, err)

	reqs, err := sheet.ComponentRequirements(dec("500"))
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestNewTechnicalSheet_RejectsLossAtProportionSum(t *testing.T) {
	components := []recipe.ComponentRef{
		{ItemID: 20, Name: "Flour", ItemType: recipe.ItemIngredient, Proportion: dec("1")},
	}

	_, err := recipe.NewTechnicalSheet(4, 13, "Broken", recipe.ItemSubproduct, recipe.UnitGrams,
		decimal.Zero, dec("1000"), dec("1"), recipe.PolicyOnDemand, components)

	var invalid *recipe.InvalidLossError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 4, invalid.SheetID)
}
