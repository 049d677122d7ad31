package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/adapters/catalog"
	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

const sheetsJSON = `[
  {
    "id": 1, "item_id": 10, "name": "Roll", "item_type": "PRODUCT",
    "unit": "un", "unit_weight": "60", "base_quantity": "100", "loss_pct": "0.15",
    "policy": "ON_DEMAND",
    "components": [
      {"item_id": 20, "sheet_id": 2, "name": "Dough", "item_type": "SUBPRODUCT", "policy": "ON_DEMAND", "proportion": "1.1"},
      {"item_id": 30, "name": "Topping", "item_type": "INGREDIENT", "policy": "STOCKED", "proportion": "0.05"}
    ]
  },
  {
    "id": 2, "item_id": 20, "name": "Dough", "item_type": "SUBPRODUCT",
    "unit": "g", "base_quantity": "1000",
    "components": [
      {"item_id": 40, "name": "Flour", "item_type": "INGREDIENT", "policy": "STOCKED", "proportion": "1"}
    ]
  }
]`

const activitiesJSON = `[
  {
    "id": 1, "item_id": 10, "item_type": "PRODUCT", "name": "Shape", "item_name": "Roll",
    "equipment_types": ["BENCHES"],
    "duration_bands": [{"min": 0, "max": 500, "duration": "0:45:00"}],
    "max_wait": "0:00:00",
    "staff_count": 2, "staff_types": ["BAKER", "ASSISTANT"], "staff_fips": {"BAKER": 1}
  },
  {
    "id": 2, "item_id": 10, "item_type": "PRODUCT", "name": "Bake", "item_name": "Roll",
    "equipment_types": ["OVENS"],
    "eligible_equipment": {"OVENS": ["Oven A"]},
    "equipment_fips": {"Oven A": 1},
    "settings": {"OVENS": {"temperature": 180, "steam": 20}},
    "duration_bands": [
      {"min": 0, "max": 100, "duration": "0:30:00"},
      {"min": 101, "max": 500, "duration": "1:00:00"}
    ],
    "staff_count": 1, "staff_types": ["BAKER"]
  },
  {
    "id": 3, "item_id": 20, "item_type": "SUBPRODUCT", "name": "Mix", "item_name": "Dough",
    "equipment_types": ["MIXERS"],
    "duration_bands": [{"min": 0, "max": 50000, "duration": "0:20:00"}]
  }
]`

func writeCatalogFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	sheetPath := filepath.Join(dir, "sheets.json")
	activityPath := filepath.Join(dir, "activities.json")
	require.NoError(t, os.WriteFile(sheetPath, []byte(sheetsJSON), 0o644))
	require.NoError(t, os.WriteFile(activityPath, []byte(activitiesJSON), 0o644))
	return sheetPath, activityPath
}

func TestLoadRecipeStore(t *testing.T) {
	sheetPath, activityPath := writeCatalogFiles(t)

	store, err := catalog.LoadRecipeStore(sheetPath, activityPath)
	require.NoError(t, err)

	sheet, err := store.Sheet(10, recipe.ItemProduct)
	require.NoError(t, err)
	assert.Equal(t, "Roll", sheet.Name())
	assert.Len(t, sheet.Components(), 2)

	_, err = store.Sheet(99, recipe.ItemProduct)
	var notFound *recipe.SheetNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRecipeStore_ActivitiesInCatalogOrder(t *testing.T) {
	sheetPath, activityPath := writeCatalogFiles(t)
	store, err := catalog.LoadRecipeStore(sheetPath, activityPath)
	require.NoError(t, err)

	specs, err := store.ActivitiesFor(10, recipe.ItemProduct)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "Shape", specs[0].Name)
	assert.Equal(t, "Bake", specs[1].Name)

	// Zero max wait parses to an exact-chaining constraint
	require.NotNil(t, specs[0].MaxWait)
	assert.Equal(t, time.Duration(0), *specs[0].MaxWait)
	assert.Nil(t, specs[1].MaxWait)

	bake := specs[1]
	require.Contains(t, bake.Settings, equipment.TypeOvens)
	require.NotNil(t, bake.Settings[equipment.TypeOvens].Temperature)
	assert.Equal(t, 180, *bake.Settings[equipment.TypeOvens].Temperature)
	assert.Equal(t, []string{"Oven A"}, bake.EligibleEquipment[equipment.TypeOvens])

	d, err := bake.Durations.DurationFor(450)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)
}

func TestRecipeStore_ProfessionsForUnionsActivities(t *testing.T) {
	sheetPath, activityPath := writeCatalogFiles(t)
	store, err := catalog.LoadRecipeStore(sheetPath, activityPath)
	require.NoError(t, err)

	profs, err := store.ProfessionsFor(10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []staff.Profession{
		staff.ProfessionBaker, staff.ProfessionAssistant,
	}, profs)

	profs, err = store.ProfessionsFor(20)
	require.NoError(t, err)
	assert.Empty(t, profs)
}

func TestRecipeStore_SheetQuantities(t *testing.T) {
	sheetPath, activityPath := writeCatalogFiles(t)
	store, err := catalog.LoadRecipeStore(sheetPath, activityPath)
	require.NoError(t, err)

	sheet, err := store.Sheet(10, recipe.ItemProduct)
	require.NoError(t, err)

	reqs, err := sheet.ComponentRequirements(decimal.NewFromInt(200))
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	// 1.1 * 60 * 200 / (1.15 - 0.15)
	assert.True(t, reqs[0].Quantity.Equal(decimal.NewFromInt(13200)), "got %s", reqs[0].Quantity)
}

func TestLoadRecipeStore_RejectsInvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	sheetPath := filepath.Join(dir, "sheets.json")
	activityPath := filepath.Join(dir, "activities.json")

	// Activity with an unknown staff type fails validation
	bad := `[{"id": 1, "item_id": 10, "item_type": "PRODUCT", "name": "Shape",
	  "equipment_types": ["BENCHES"],
	  "duration_bands": [{"min": 0, "max": 500, "duration": "0:45:00"}],
	  "staff_types": ["WIZARD"]}]`
	require.NoError(t, os.WriteFile(sheetPath, []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(activityPath, []byte(bad), 0o644))

	_, err := catalog.LoadRecipeStore(sheetPath, activityPath)
	assert.Error(t, err)
}
