// internal/app/snapshot.go
package app

import (
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/types"
	"balloon-tower-defense/pkg/pathgeom"
)

// Snapshot — копия состояния после тика. Ссылок на хранилища движка нет.
type Snapshot struct {
	SessionID   string
	State       component.GameState
	Balloons    []component.Balloon
	Towers      []component.Tower
	Projectiles []component.Projectile
	Particles   []component.Particle
	QueueLength int
	TotalWaves  int
	PathLength  float64
	Path        []pathgeom.Point
	GameTime    float64
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID:   g.SessionID,
		State:       *g.ECS.GameState,
		Balloons:    copyAll(g.ECS.Balloons),
		Towers:      copyAll(g.ECS.Towers),
		Projectiles: copyAll(g.ECS.Projectiles),
		Particles:   copyAll(g.ECS.Particles),
		QueueLength: g.QueueLength(),
		TotalWaves:  g.Library.Waves.Total,
		PathLength:  g.Path.Length(),
		Path:        g.Path.Points(),
		GameTime:    g.ECS.GameTime,
	}
}

func copyAll[T any](src []*T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = *v
	}
	return out
}

// Tower finds a tower in the snapshot.
func (s Snapshot) Tower(id types.EntityID) (component.Tower, bool) {
	for _, t := range s.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return component.Tower{}, false
}

// SelectedTower returns the inspected tower, if any.
func (s Snapshot) SelectedTower() (component.Tower, bool) {
	if s.State.SelectedTowerID == 0 {
		return component.Tower{}, false
	}
	return s.Tower(s.State.SelectedTowerID)
}
