// internal/defs/balloons.go
package defs

// BalloonColor — ярус шарика. Порядок: RED < BLUE < GREEN < YELLOW < PINK.
type BalloonColor string

const (
	ColorRed    BalloonColor = "RED"
	ColorBlue   BalloonColor = "BLUE"
	ColorGreen  BalloonColor = "GREEN"
	ColorYellow BalloonColor = "YELLOW"
	ColorPink   BalloonColor = "PINK"
)

// AllColors lists the tiers from weakest to strongest.
var AllColors = []BalloonColor{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPink}

// Rank returns the tier position (0 for RED) or -1 for an unknown color.
func (c BalloonColor) Rank() int {
	for i, known := range AllColors {
		if known == c {
			return i
		}
	}
	return -1
}

func (c BalloonColor) Valid() bool {
	return c.Rank() >= 0
}

// BalloonDefinition holds all the static data for one balloon tier.
type BalloonDefinition struct {
	Color     BalloonColor `yaml:"color"`
	Health    int          `yaml:"health"`
	Speed     float64      `yaml:"speed"` // пикселей за кадр
	Radius    float64      `yaml:"radius"`
	Successor BalloonColor `yaml:"successor"` // пусто для самого слабого яруса
}

// Splits reports whether popping this tier spawns weaker children.
func (d BalloonDefinition) Splits() (BalloonColor, bool) {
	if d.Successor == "" {
		return "", false
	}
	return d.Successor, true
}
