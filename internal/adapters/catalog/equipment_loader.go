package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
)

type ovenDTO struct {
	ID            int     `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Sector        string  `json:"sector" validate:"required"`
	Levels        int     `json:"levels" validate:"required,min=1"`
	GramsPerLevel float64 `json:"grams_per_level" validate:"required,gt=0"`
	TempMin       int     `json:"temp_min" validate:"required"`
	TempMax       int     `json:"temp_max" validate:"required,gtefield=TempMin"`
	SteamMin      *int    `json:"steam_min"`
	SteamMax      *int    `json:"steam_max"`
	SpeedMin      *int    `json:"speed_min"`
	SpeedMax      *int    `json:"speed_max"`
}

type mixerDTO struct {
	ID       int     `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Sector   string  `json:"sector" validate:"required"`
	Kind     string  `json:"kind" validate:"omitempty,oneof=PLANETARY INDUSTRIAL KNEADER"`
	GramsMin float64 `json:"grams_min"`
	GramsMax float64 `json:"grams_max" validate:"required,gt=0"`
	SpeedMin int     `json:"speed_min"`
	SpeedMax int     `json:"speed_max"`
	TempMin  int     `json:"temp_min"`
	TempMax  int     `json:"temp_max"`
}

type cabinetDTO struct {
	ID            int     `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Sector        string  `json:"sector" validate:"required"`
	Levels        int     `json:"levels" validate:"required,min=1"`
	GramsPerLevel float64 `json:"grams_per_level" validate:"required,gt=0"`
	TempMin       int     `json:"temp_min" validate:"required"`
	TempMax       int     `json:"temp_max" validate:"required,gtefield=TempMin"`
}

type scaleDTO struct {
	ID       int     `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Sector   string  `json:"sector" validate:"required"`
	GramsMin float64 `json:"grams_min"`
	GramsMax float64 `json:"grams_max" validate:"required,gt=0"`
}

type stoveDTO struct {
	ID             int      `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Sector         string   `json:"sector" validate:"required"`
	Burners        int      `json:"burners" validate:"required,min=1"`
	GramsPerBurner float64  `json:"grams_per_burner" validate:"required,gt=0"`
	Flames         []string `json:"flames" validate:"dive,oneof=LOW MEDIUM HIGH"`
	Pressures      []string `json:"pressures" validate:"dive,oneof=NONE LOW HIGH"`
}

type fryerDTO struct {
	ID             int     `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Sector         string  `json:"sector" validate:"required"`
	Baskets        int     `json:"baskets" validate:"required,min=1"`
	GramsPerBasket float64 `json:"grams_per_basket" validate:"required,gt=0"`
	TempMin        int     `json:"temp_min" validate:"required"`
	TempMax        int     `json:"temp_max" validate:"required,gtefield=TempMin"`
}

type benchDTO struct {
	ID        int    `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Sector    string `json:"sector" validate:"required"`
	Fractions int    `json:"fractions" validate:"required,min=1"`
}

type dividerDTO struct {
	ID         int     `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Sector     string  `json:"sector" validate:"required"`
	GramsMax   float64 `json:"grams_max" validate:"required,gt=0"`
	HasRounder bool    `json:"has_rounder"`
}

type modelerDTO struct {
	ID       int    `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Sector   string `json:"sector" validate:"required"`
	UnitsMax int    `json:"units_max" validate:"required,min=1"`
}

type packagerDTO struct {
	ID         int      `json:"id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Sector     string   `json:"sector" validate:"required"`
	GramsMax   float64  `json:"grams_max" validate:"required,gt=0"`
	Packagings []string `json:"packagings" validate:"required,min=1,dive,oneof=TRAY BAG VACUUM FILM"`
}

type coldDTO struct {
	ID       int     `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Sector   string  `json:"sector" validate:"required"`
	Kind     string  `json:"kind" validate:"required,oneof=REFRIGERATION FREEZING"`
	BoxesMax float64 `json:"boxes_max" validate:"required,gt=0"`
	TempMin  int     `json:"temp_min"`
	TempMax  int     `json:"temp_max" validate:"gtefield=TempMin"`
}

// equipmentFileDTO is the top-level shape of the equipment catalog file
type equipmentFileDTO struct {
	Ovens                []ovenDTO     `json:"ovens" validate:"dive"`
	Mixers               []mixerDTO    `json:"mixers" validate:"dive"`
	CookingMixers        []mixerDTO    `json:"cooking_mixers" validate:"dive"`
	FermentationCabinets []cabinetDTO  `json:"fermentation_cabinets" validate:"dive"`
	Scales               []scaleDTO    `json:"scales" validate:"dive"`
	Stoves               []stoveDTO    `json:"stoves" validate:"dive"`
	Fryers               []fryerDTO    `json:"fryers" validate:"dive"`
	Benches              []benchDTO    `json:"benches" validate:"dive"`
	Dividers             []dividerDTO  `json:"dividers" validate:"dive"`
	Modelers             []modelerDTO  `json:"modelers" validate:"dive"`
	Packagers            []packagerDTO `json:"packagers" validate:"dive"`
	ColdChambers         []coldDTO     `json:"cold_chambers" validate:"dive"`
}

// LoadEquipment reads and validates the equipment catalog file into the
// resource catalog the scheduler allocates against
func LoadEquipment(path string) (*scheduler.ResourceCatalog, error) {
	var file equipmentFileDTO
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("equipment catalog %s: %w", path, err)
	}

	cat := &scheduler.ResourceCatalog{}

	for _, d := range file.Ovens {
		cat.Ovens = append(cat.Ovens, equipment.NewOven(d.ID, d.Name,
			equipment.Sector(d.Sector), d.Levels, d.GramsPerLevel,
			d.TempMin, d.TempMax, d.SteamMin, d.SteamMax, d.SpeedMin, d.SpeedMax))
	}
	for _, d := range file.Mixers {
		kind := equipment.MixerKind(d.Kind)
		if kind == "" {
			kind = equipment.MixerPlanetary
		}
		cat.Mixers = append(cat.Mixers, equipment.NewMixer(d.ID, d.Name,
			equipment.Sector(d.Sector), kind, d.GramsMin, d.GramsMax, d.SpeedMin, d.SpeedMax))
	}
	for _, d := range file.CookingMixers {
		cat.CookingMixers = append(cat.CookingMixers, equipment.NewCookingMixer(d.ID, d.Name,
			equipment.Sector(d.Sector), d.GramsMin, d.GramsMax,
			d.SpeedMin, d.SpeedMax, d.TempMin, d.TempMax))
	}
	for _, d := range file.FermentationCabinets {
		cat.FermentationCabinets = append(cat.FermentationCabinets,
			equipment.NewFermentationCabinet(d.ID, d.Name, equipment.Sector(d.Sector),
				d.Levels, d.GramsPerLevel, d.TempMin, d.TempMax))
	}
	for _, d := range file.Scales {
		cat.Scales = append(cat.Scales, equipment.NewScale(d.ID, d.Name,
			equipment.Sector(d.Sector), d.GramsMin, d.GramsMax))
	}
	for _, d := range file.Stoves {
		flames := make([]equipment.FlameType, 0, len(d.Flames))
		for _, f := range d.Flames {
			flames = append(flames, equipment.FlameType(f))
		}
		pressures := make([]equipment.PressureLevel, 0, len(d.Pressures))
		for _, p := range d.Pressures {
			pressures = append(pressures, equipment.PressureLevel(p))
		}
		cat.Stoves = append(cat.Stoves, equipment.NewStove(d.ID, d.Name,
			equipment.Sector(d.Sector), d.Burners, d.GramsPerBurner, flames, pressures))
	}
	for _, d := range file.Fryers {
		cat.Fryers = append(cat.Fryers, equipment.NewFryer(d.ID, d.Name,
			equipment.Sector(d.Sector), d.Baskets, d.GramsPerBasket, d.TempMin, d.TempMax))
	}
	for _, d := range file.Benches {
		cat.Benches = append(cat.Benches, equipment.NewBench(d.ID, d.Name,
			equipment.Sector(d.Sector), d.Fractions))
	}
	for _, d := range file.Dividers {
		cat.Dividers = append(cat.Dividers, equipment.NewDivider(d.ID, d.Name,
			equipment.Sector(d.Sector), d.GramsMax, d.HasRounder))
	}
	for _, d := range file.Modelers {
		cat.Modelers = append(cat.Modelers, equipment.NewModeler(d.ID, d.Name,
			equipment.Sector(d.Sector), d.UnitsMax))
	}
	for _, d := range file.Packagers {
		packagings := make([]equipment.PackagingType, 0, len(d.Packagings))
		for _, p := range d.Packagings {
			packagings = append(packagings, equipment.PackagingType(p))
		}
		cat.Packagers = append(cat.Packagers, equipment.NewPackager(d.ID, d.Name,
			equipment.Sector(d.Sector), d.GramsMax, packagings))
	}
	for _, d := range file.ColdChambers {
		cat.ColdChambers = append(cat.ColdChambers, equipment.NewColdChamber(d.ID, d.Name,
			equipment.Sector(d.Sector), equipment.ColdKind(d.Kind),
			d.BoxesMax, d.TempMin, d.TempMax))
	}

	return cat, nil
}
