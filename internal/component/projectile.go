// internal/component/projectile.go
package component

import (
	"image/color"

	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID             types.EntityID
	Source         defs.TowerType
	Position       Position
	Velocity       Velocity
	Damage         int
	RangeRemaining float64
	AoE            float64 // 0 — одиночная цель
	Radius         float64
	Slows          bool // замедляет основную цель
	Color          color.RGBA
}
