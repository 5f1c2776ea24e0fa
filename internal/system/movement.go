// internal/system/movement.go
package system

import (
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/pkg/pathgeom"
)

// MovementSystem двигает шарики вдоль пути и снимает жизни за ушедших.
type MovementSystem struct {
	ecs             *entity.ECS
	path            *pathgeom.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *pathgeom.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, eventDispatcher: eventDispatcher}
}

// EffectiveSpeed — скорость с учётом замедления.
func EffectiveSpeed(b *component.Balloon) float64 {
	if b.Slowed() {
		return b.Speed * config.SlowFactor
	}
	return b.Speed
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, b := range s.ecs.Balloons {
		if b.Dead {
			continue
		}
		if b.SlowTimer > 0 {
			b.SlowTimer -= deltaTime
			if b.SlowTimer < 0 {
				b.SlowTimer = 0
			}
		}
		b.DistanceTravelled += EffectiveSpeed(b) * deltaTime
		b.Position = s.path.PositionAt(b.DistanceTravelled)
	}
}

// ResolveEscapes убирает дошедшие до конца шарики и возвращает их число.
// Жизни не опускаются ниже нуля.
func (s *MovementSystem) ResolveEscapes() int {
	end := s.path.Length()
	kept := s.ecs.Balloons[:0]
	escaped := 0
	for _, b := range s.ecs.Balloons {
		if !b.Dead && b.DistanceTravelled >= end {
			escaped++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(s.ecs.Balloons); i++ {
		s.ecs.Balloons[i] = nil
	}
	s.ecs.Balloons = kept
	if escaped == 0 {
		return 0
	}

	state := s.ecs.GameState
	state.Lives -= escaped
	if state.Lives < 0 {
		state.Lives = 0
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BalloonEscaped, Data: escaped})
	return escaped
}
