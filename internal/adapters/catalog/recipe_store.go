package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

// componentDTO is one child entry of a sheet in the catalog file
type componentDTO struct {
	ItemID     int             `json:"item_id" validate:"required"`
	SheetID    int             `json:"sheet_id"`
	Name       string          `json:"name" validate:"required"`
	ItemType   string          `json:"item_type" validate:"required,oneof=PRODUCT SUBPRODUCT INGREDIENT"`
	Policy     string          `json:"policy" validate:"omitempty,oneof=STOCKED ON_DEMAND"`
	Proportion decimal.Decimal `json:"proportion" validate:"required"`
}

// sheetDTO is one technical sheet entry of the catalog file
type sheetDTO struct {
	ID           int             `json:"id" validate:"required"`
	ItemID       int             `json:"item_id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	ItemType     string          `json:"item_type" validate:"required,oneof=PRODUCT SUBPRODUCT"`
	Unit         string          `json:"unit" validate:"required,oneof=g un"`
	UnitWeight   decimal.Decimal `json:"unit_weight"`
	BaseQuantity decimal.Decimal `json:"base_quantity"`
	LossPct      decimal.Decimal `json:"loss_pct"`
	Policy       string          `json:"policy" validate:"omitempty,oneof=STOCKED ON_DEMAND"`
	Components   []componentDTO  `json:"components" validate:"dive"`
}

// durationBandDTO maps a quantity range to an "H:M:S" duration
type durationBandDTO struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Duration string  `json:"duration" validate:"required"`
}

// settingsDTO carries the operating parameters of one equipment category
type settingsDTO struct {
	Temperature *int    `json:"temperature"`
	Steam       *int    `json:"steam"`
	Speed       *int    `json:"speed"`
	Flame       *string `json:"flame" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Pressure    *string `json:"pressure" validate:"omitempty,oneof=NONE LOW HIGH"`
	Packaging   *string `json:"packaging" validate:"omitempty,oneof=TRAY BAG VACUUM FILM"`
	Fractions   *int    `json:"fractions"`
}

// activityDTO is one activity spec entry of the catalog file
type activityDTO struct {
	ID                int                    `json:"id" validate:"required"`
	ItemID            int                    `json:"item_id" validate:"required"`
	ItemType          string                 `json:"item_type" validate:"required,oneof=PRODUCT SUBPRODUCT"`
	Name              string                 `json:"name" validate:"required"`
	ItemName          string                 `json:"item_name"`
	EquipmentTypes    []string               `json:"equipment_types" validate:"required,min=1"`
	EligibleEquipment map[string][]string    `json:"eligible_equipment"`
	EquipmentFIPs     map[string]int         `json:"equipment_fips"`
	Settings          map[string]settingsDTO `json:"settings"`
	DurationBands     []durationBandDTO      `json:"duration_bands" validate:"required,min=1,dive"`
	MaxWait           *string                `json:"max_wait"`
	StaffCount        int                    `json:"staff_count"`
	StaffTypes        []string               `json:"staff_types" validate:"dive,oneof=BAKER CONFECTIONER COOK ASSISTANT"`
	StaffFIPs         map[string]int         `json:"staff_fips"`
}

type itemKey struct {
	itemID   int
	itemType recipe.ItemType
}

// RecipeStore serves technical sheets and activity specs loaded from JSON
// catalog files. It implements the sheet, activity and profession sources the
// order controller consumes.
type RecipeStore struct {
	sheets     map[itemKey]*recipe.TechnicalSheet
	activities map[itemKey][]*schedule.ActivitySpec
}

// LoadRecipeStore reads and validates the sheet and activity catalog files
func LoadRecipeStore(sheetPath, activityPath string) (*RecipeStore, error) {
	validate := validator.New()

	var sheetDTOs []sheetDTO
	if err := readJSON(sheetPath, &sheetDTOs); err != nil {
		return nil, err
	}
	var activityDTOs []activityDTO
	if err := readJSON(activityPath, &activityDTOs); err != nil {
		return nil, err
	}

	store := &RecipeStore{
		sheets:     make(map[itemKey]*recipe.TechnicalSheet),
		activities: make(map[itemKey][]*schedule.ActivitySpec),
	}

	for i := range sheetDTOs {
		dto := &sheetDTOs[i]
		if err := validate.Struct(dto); err != nil {
			return nil, fmt.Errorf("sheet catalog entry %d: %w", dto.ID, err)
		}
		sheet, err := buildSheet(dto)
		if err != nil {
			return nil, err
		}
		store.sheets[itemKey{dto.ItemID, recipe.ItemType(dto.ItemType)}] = sheet
	}

	for i := range activityDTOs {
		dto := &activityDTOs[i]
		if err := validate.Struct(dto); err != nil {
			return nil, fmt.Errorf("activity catalog entry %d: %w", dto.ID, err)
		}
		spec, err := buildActivitySpec(dto)
		if err != nil {
			return nil, err
		}
		key := itemKey{dto.ItemID, recipe.ItemType(dto.ItemType)}
		store.activities[key] = append(store.activities[key], spec)
	}

	return store, nil
}

// Sheet resolves the bill-of-materials node of an item
func (s *RecipeStore) Sheet(itemID int, itemType recipe.ItemType) (*recipe.TechnicalSheet, error) {
	sheet, ok := s.sheets[itemKey{itemID, itemType}]
	if !ok {
		return nil, &recipe.SheetNotFoundError{ItemID: itemID, ItemType: itemType}
	}
	return sheet, nil
}

// ActivitiesFor returns the activity specs of an item in catalog order
func (s *RecipeStore) ActivitiesFor(itemID int, itemType recipe.ItemType) ([]*schedule.ActivitySpec, error) {
	return s.activities[itemKey{itemID, itemType}], nil
}

// ProfessionsFor returns the union of professions across an item's activities
func (s *RecipeStore) ProfessionsFor(itemID int) ([]staff.Profession, error) {
	seen := make(map[staff.Profession]bool)
	var out []staff.Profession
	for key, specs := range s.activities {
		if key.itemID != itemID {
			continue
		}
		for _, spec := range specs {
			for _, p := range spec.StaffTypes {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
	}
	return out, nil
}

func buildSheet(dto *sheetDTO) (*recipe.TechnicalSheet, error) {
	components := make([]recipe.ComponentRef, 0, len(dto.Components))
	for _, c := range dto.Components {
		components = append(components, recipe.ComponentRef{
			ItemID:     c.ItemID,
			SheetID:    c.SheetID,
			Name:       c.Name,
			ItemType:   recipe.ItemType(c.ItemType),
			Policy:     recipe.ProductionPolicy(c.Policy),
			Proportion: c.Proportion,
		})
	}

	sheet, err := recipe.NewTechnicalSheet(dto.ID, dto.ItemID, dto.Name,
		recipe.ItemType(dto.ItemType), recipe.Unit(dto.Unit),
		dto.UnitWeight, dto.BaseQuantity, dto.LossPct,
		recipe.ProductionPolicy(dto.Policy), components)
	if err != nil {
		return nil, fmt.Errorf("sheet catalog entry %d: %w", dto.ID, err)
	}
	return sheet, nil
}

func buildActivitySpec(dto *activityDTO) (*schedule.ActivitySpec, error) {
	bands := make(recipe.DurationTable, 0, len(dto.DurationBands))
	for _, b := range dto.DurationBands {
		d, err := ParseClock(b.Duration)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", dto.ID, err)
		}
		bands = append(bands, recipe.DurationBand{
			MinQuantity: b.Min,
			MaxQuantity: b.Max,
			Duration:    d,
		})
	}

	var maxWait *time.Duration
	if dto.MaxWait != nil {
		d, err := ParseClock(*dto.MaxWait)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", dto.ID, err)
		}
		maxWait = &d
	}

	types := make([]equipment.Type, 0, len(dto.EquipmentTypes))
	for _, t := range dto.EquipmentTypes {
		types = append(types, equipment.Type(t))
	}

	eligible := make(map[equipment.Type][]string, len(dto.EligibleEquipment))
	for t, names := range dto.EligibleEquipment {
		eligible[equipment.Type(t)] = names
	}

	settings := make(map[equipment.Type]equipment.Settings, len(dto.Settings))
	for t, s := range dto.Settings {
		settings[equipment.Type(t)] = buildSettings(s)
	}

	staffTypes := make([]staff.Profession, 0, len(dto.StaffTypes))
	for _, p := range dto.StaffTypes {
		staffTypes = append(staffTypes, staff.Profession(p))
	}
	staffFIPs := make(map[staff.Profession]int, len(dto.StaffFIPs))
	for p, fip := range dto.StaffFIPs {
		staffFIPs[staff.Profession(p)] = fip
	}

	return &schedule.ActivitySpec{
		ID:                dto.ID,
		Name:              dto.Name,
		ItemName:          dto.ItemName,
		EquipmentTypes:    types,
		EligibleEquipment: eligible,
		EquipmentFIPs:     dto.EquipmentFIPs,
		Settings:          settings,
		Durations:         bands,
		MaxWait:           maxWait,
		StaffCount:        dto.StaffCount,
		StaffTypes:        staffTypes,
		StaffFIPs:         staffFIPs,
	}, nil
}

func buildSettings(dto settingsDTO) equipment.Settings {
	s := equipment.Settings{
		Temperature: dto.Temperature,
		Steam:       dto.Steam,
		Speed:       dto.Speed,
		Fractions:   dto.Fractions,
	}
	if dto.Flame != nil {
		s.Flame = equipment.FlameSetting(equipment.FlameType(*dto.Flame))
	}
	if dto.Pressure != nil {
		s.Pressure = equipment.PressureSetting(equipment.PressureLevel(*dto.Pressure))
	}
	if dto.Packaging != nil {
		s.Packaging = equipment.PackagingSetting(equipment.PackagingType(*dto.Packaging))
	}
	return s
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return nil
}
