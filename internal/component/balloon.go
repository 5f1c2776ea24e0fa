// internal/component/balloon.go
package component

import (
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/types"
)

// Balloon — шарик, движущийся по пути.
type Balloon struct {
	ID                types.EntityID
	Color             defs.BalloonColor
	Health            int
	MaxHealth         int
	Speed             float64 // базовая скорость, px за кадр
	Radius            float64
	DistanceTravelled float64
	SlowTimer         float64 // кадров замедления осталось
	Position          Position
	Dead              bool // лопнул, будет удалён после шага снарядов
}

// Slowed reports whether the slow effect is still active.
func (b *Balloon) Slowed() bool {
	return b.SlowTimer > 0
}
