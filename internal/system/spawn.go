// internal/system/spawn.go
package system

import (
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/pkg/pathgeom"
)

// BalloonSpawner создаёт шарики на пути. Общий для волн и для деления.
type BalloonSpawner struct {
	ecs  *entity.ECS
	lib  *defs.Library
	path *pathgeom.Path
}

func NewBalloonSpawner(ecs *entity.ECS, lib *defs.Library, path *pathgeom.Path) *BalloonSpawner {
	return &BalloonSpawner{ecs: ecs, lib: lib, path: path}
}

// Spawn appends a full-health balloon of color at distance along the path.
func (s *BalloonSpawner) Spawn(color defs.BalloonColor, distance, slowTimer float64) *component.Balloon {
	def := s.lib.Balloons[color]
	b := &component.Balloon{
		ID:                s.ecs.NewEntity(),
		Color:             color,
		Health:            def.Health,
		MaxHealth:         def.Health,
		Speed:             def.Speed,
		Radius:            def.Radius,
		DistanceTravelled: distance,
		SlowTimer:         slowTimer,
		Position:          s.path.PositionAt(distance),
	}
	s.ecs.Balloons = append(s.ecs.Balloons, b)
	return b
}
