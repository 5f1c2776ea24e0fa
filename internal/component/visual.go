// internal/component/visual.go
package component

import (
	"image/color"

	"balloon-tower-defense/internal/types"
)

// Particle — косметическая частица от лопнувшего шарика или взрыва.
type Particle struct {
	ID       types.EntityID
	Position Position
	Velocity Velocity
	Life     float64 // кадров осталось
	MaxLife  float64
	Size     float64
	Color    color.RGBA
}

// Alpha returns the remaining life fraction in [0,1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	if p.Life >= p.MaxLife {
		return 1
	}
	return p.Life / p.MaxLife
}
