// internal/defs/towers.go
package defs

// TowerType defines the firing pattern of a tower.
type TowerType string

const (
	TowerDartMonkey  TowerType = "DART_MONKEY"
	TowerTackShooter TowerType = "TACK_SHOOTER"
	TowerCannon      TowerType = "CANNON"
	TowerIce         TowerType = "ICE_TOWER"
)

// AllTowerTypes is the shop order.
var AllTowerTypes = []TowerType{TowerDartMonkey, TowerTackShooter, TowerCannon, TowerIce}

// MaxTowerLevel — количество доступных улучшений.
const MaxTowerLevel = 3

func (t TowerType) Valid() bool {
	for _, known := range AllTowerTypes {
		if known == t {
			return true
		}
	}
	return false
}

// UpgradeDef — одно улучшение башни. Значения складываются с базовыми.
type UpgradeDef struct {
	Name     string  `yaml:"name"`
	Cost     int     `yaml:"cost"`
	Range    float64 `yaml:"range"`
	Cooldown float64 `yaml:"cooldown"`
	Damage   int     `yaml:"damage"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type        TowerType    `yaml:"type"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Cost        int          `yaml:"cost"`
	Range       float64      `yaml:"range"`
	Cooldown    float64      `yaml:"cooldown"` // кадров между выстрелами
	Damage      int          `yaml:"damage"`
	AoE         float64      `yaml:"aoe,omitempty"`
	Upgrades    []UpgradeDef `yaml:"upgrades"`
}

// LevelStats are the effective combat numbers of a tower at some level.
type LevelStats struct {
	Range    float64
	Cooldown float64
	Damage   int
}

// StatsAt sums the upgrade deltas for levels below level over the base stats.
// It never reads tower state, so every caller gets the same answer for the same level.
func (d TowerDefinition) StatsAt(level int) LevelStats {
	stats := LevelStats{Range: d.Range, Cooldown: d.Cooldown, Damage: d.Damage}
	for i := 0; i < level && i < len(d.Upgrades); i++ {
		u := d.Upgrades[i]
		stats.Range += u.Range
		stats.Cooldown += u.Cooldown
		stats.Damage += u.Damage
	}
	return stats
}

// NextUpgrade returns the upgrade bought when leaving level, or false at max level.
func (d TowerDefinition) NextUpgrade(level int) (UpgradeDef, bool) {
	if level < 0 || level >= MaxTowerLevel || level >= len(d.Upgrades) {
		return UpgradeDef{}, false
	}
	return d.Upgrades[level], true
}

// InvestedAt is the total gold spent on a tower bought and upgraded to level.
func (d TowerDefinition) InvestedAt(level int) int {
	total := d.Cost
	for i := 0; i < level && i < len(d.Upgrades); i++ {
		total += d.Upgrades[i].Cost
	}
	return total
}
