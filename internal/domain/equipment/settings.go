package equipment

import (
	"fmt"
	"strings"
)

// FlameType is the burner flame a stove recipe step requires
type FlameType string

const (
	FlameLow    FlameType = "LOW"
	FlameMedium FlameType = "MEDIUM"
	FlameHigh   FlameType = "HIGH"
)

// PressureLevel applies to pressurized stove burners
type PressureLevel string

const (
	PressureNone   PressureLevel = "NONE"
	PressureLow    PressureLevel = "LOW"
	PressureHigh   PressureLevel = "HIGH"
)

// PackagingType selects the wrapping a packager applies
type PackagingType string

const (
	PackagingTray   PackagingType = "TRAY"
	PackagingBag    PackagingType = "BAG"
	PackagingVacuum PackagingType = "VACUUM"
	PackagingFilm   PackagingType = "FILM"
)

// Settings carries the per-resource-type operating parameters an activity
// demands. Fields are pointers: nil means the parameter is not required by
// the activity, which never conflicts with a concurrent occupancy.
type Settings struct {
	Temperature *int
	Steam       *int
	Speed       *int
	Flame       *FlameType
	Pressure    *PressureLevel
	Packaging   *PackagingType
	Fractions   *int
}

// CompatibleWith reports whether two settings can share a resource at the
// same instant. A parameter only conflicts when both sides pin it to
// different values.
func (s Settings) CompatibleWith(o Settings) bool {
	if !intCompatible(s.Temperature, o.Temperature) {
		return false
	}
	if !intCompatible(s.Steam, o.Steam) {
		return false
	}
	if !intCompatible(s.Speed, o.Speed) {
		return false
	}
	if s.Flame != nil && o.Flame != nil && *s.Flame != *o.Flame {
		return false
	}
	if s.Pressure != nil && o.Pressure != nil && *s.Pressure != *o.Pressure {
		return false
	}
	if s.Packaging != nil && o.Packaging != nil && *s.Packaging != *o.Packaging {
		return false
	}
	return true
}

func intCompatible(a, b *int) bool {
	if a == nil || b == nil {
		return true
	}
	return *a == *b
}

func (s Settings) String() string {
	parts := []string{}
	if s.Temperature != nil {
		parts = append(parts, fmt.Sprintf("temp=%d", *s.Temperature))
	}
	if s.Steam != nil {
		parts = append(parts, fmt.Sprintf("steam=%d", *s.Steam))
	}
	if s.Speed != nil {
		parts = append(parts, fmt.Sprintf("speed=%d", *s.Speed))
	}
	if s.Flame != nil {
		parts = append(parts, fmt.Sprintf("flame=%s", *s.Flame))
	}
	if s.Pressure != nil {
		parts = append(parts, fmt.Sprintf("pressure=%s", *s.Pressure))
	}
	if s.Packaging != nil {
		parts = append(parts, fmt.Sprintf("packaging=%s", *s.Packaging))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// IntSetting is a convenience for building pointer-valued settings
func IntSetting(v int) *int { return &v }

// FlameSetting is a convenience for building pointer-valued flame settings
func FlameSetting(v FlameType) *FlameType { return &v }

// PressureSetting is a convenience for building pointer-valued pressure settings
func PressureSetting(v PressureLevel) *PressureLevel { return &v }

// PackagingSetting is a convenience for building pointer-valued packaging settings
func PackagingSetting(v PackagingType) *PackagingType { return &v }
