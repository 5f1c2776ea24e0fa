// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"balloon-tower-defense/pkg/pathgeom"

	"gopkg.in/yaml.v3"
)

//go:embed data/defaults.yaml
var defaultsYAML []byte

// EconomyDefinition — стартовые ресурсы и правила экономики.
type EconomyDefinition struct {
	InitialGold  int     `yaml:"initial_gold"`
	InitialLives int     `yaml:"initial_lives"`
	PopReward    int     `yaml:"pop_reward"`
	SellRatio    float64 `yaml:"sell_ratio"`
}

// FieldDefinition is the playable area in pixels.
type FieldDefinition struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Contains reports whether a point lies inside the field.
func (f FieldDefinition) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= f.Width && y <= f.Height
}

// Library is the full set of static definitions for one session.
type Library struct {
	Economy  EconomyDefinition
	Field    FieldDefinition
	Path     []pathgeom.Point
	Balloons map[BalloonColor]BalloonDefinition
	Towers   map[TowerType]TowerDefinition
	Waves    WaveDefinition
}

type libraryFile struct {
	Economy  EconomyDefinition   `yaml:"economy"`
	Field    FieldDefinition     `yaml:"field"`
	Path     []pathgeom.Point    `yaml:"path"`
	Balloons []BalloonDefinition `yaml:"balloons"`
	Towers   []TowerDefinition   `yaml:"towers"`
	Waves    WaveDefinition      `yaml:"waves"`
}

// Default returns the definitions embedded in the binary.
func Default() *Library {
	lib, err := ParseLibrary(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded definitions are invalid: %v", err))
	}
	return lib
}

// LoadLibrary reads a definitions file from disk.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// ParseLibrary decodes and validates YAML definitions.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Economy:  file.Economy,
		Field:    file.Field,
		Path:     file.Path,
		Balloons: make(map[BalloonColor]BalloonDefinition, len(file.Balloons)),
		Towers:   make(map[TowerType]TowerDefinition, len(file.Towers)),
		Waves:    file.Waves,
	}
	for _, def := range file.Balloons {
		lib.Balloons[def.Color] = def
	}
	for _, def := range file.Towers {
		lib.Towers[def.Type] = def
	}

	if err := validateLibrary(lib); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	return lib, nil
}

func validateLibrary(lib *Library) error {
	if lib.Economy.InitialLives <= 0 {
		return fmt.Errorf("initial_lives must be positive, got %d", lib.Economy.InitialLives)
	}
	if lib.Economy.InitialGold < 0 {
		return fmt.Errorf("initial_gold cannot be negative, got %d", lib.Economy.InitialGold)
	}
	if lib.Economy.SellRatio < 0 || lib.Economy.SellRatio > 1 {
		return fmt.Errorf("sell_ratio must be within [0,1], got %f", lib.Economy.SellRatio)
	}
	if lib.Field.Width <= 0 || lib.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive")
	}
	if len(lib.Path) < 2 {
		return fmt.Errorf("path needs at least 2 points, got %d", len(lib.Path))
	}
	if pathgeom.TotalLength(lib.Path) <= 0 {
		return fmt.Errorf("path has zero length")
	}

	for _, color := range AllColors {
		def, ok := lib.Balloons[color]
		if !ok {
			return fmt.Errorf("balloon %s is not defined", color)
		}
		if def.Health <= 0 || def.Speed <= 0 || def.Radius <= 0 {
			return fmt.Errorf("balloon %s needs positive health, speed and radius", color)
		}
		if next, ok := def.Splits(); ok {
			if !next.Valid() {
				return fmt.Errorf("balloon %s has unknown successor %s", color, next)
			}
			if next.Rank() >= color.Rank() {
				return fmt.Errorf("balloon %s successor %s is not weaker", color, next)
			}
		}
	}
	if len(lib.Balloons) != len(AllColors) {
		return fmt.Errorf("unknown balloon colors in definitions")
	}

	for _, towerType := range AllTowerTypes {
		def, ok := lib.Towers[towerType]
		if !ok {
			return fmt.Errorf("tower %s is not defined", towerType)
		}
		if def.Cost <= 0 || def.Range <= 0 || def.Cooldown <= 0 {
			return fmt.Errorf("tower %s needs positive cost, range and cooldown", towerType)
		}
		if len(def.Upgrades) != MaxTowerLevel {
			return fmt.Errorf("tower %s must have %d upgrades, got %d", towerType, MaxTowerLevel, len(def.Upgrades))
		}
		for i, u := range def.Upgrades {
			if u.Cost <= 0 {
				return fmt.Errorf("tower %s upgrade %d needs a positive cost", towerType, i+1)
			}
		}
		if def.StatsAt(MaxTowerLevel).Cooldown < 0 {
			return fmt.Errorf("tower %s cooldown drops below zero", towerType)
		}
	}
	if len(lib.Towers) != len(AllTowerTypes) {
		return fmt.Errorf("unknown tower types in definitions")
	}

	w := lib.Waves
	if w.Total <= 0 {
		return fmt.Errorf("waves.total must be positive")
	}
	if w.BaseCount < 0 || w.CountPerWave < 0 || w.DelayBase < 0 || w.DelayJitter < 0 {
		return fmt.Errorf("wave counts and delays cannot be negative")
	}
	if !w.DefaultColor.Valid() {
		return fmt.Errorf("unknown default wave color %q", w.DefaultColor)
	}
	for i, tier := range w.Tiers {
		if !tier.Strong.Valid() || !tier.Weak.Valid() {
			return fmt.Errorf("wave tier %d has unknown colors", i)
		}
		if tier.Threshold < 0 || tier.Threshold > 1 {
			return fmt.Errorf("wave tier %d threshold must be within [0,1]", i)
		}
		if i > 0 && tier.Above >= w.Tiers[i-1].Above {
			return fmt.Errorf("wave tiers must be sorted by descending 'above'")
		}
	}
	return nil
}
