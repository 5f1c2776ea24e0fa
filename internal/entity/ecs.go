// internal/entity/ecs.go
package entity

import (
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/types"
)

// ECS хранит все сущности сессии. Срезы, а не карты: порядок вставки
// определяет порядок обхода и разрешение ничьих при выборе цели.
type ECS struct {
	GameTime    float64 // кадров симуляции с начала сессии
	NextID      types.EntityID
	Balloons    []*component.Balloon
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Particles   []*component.Particle
	Wave        *component.Wave // nil, если волна не идёт
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		GameState: &component.GameState{Speed: 1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Reset очищает все хранилища. Счётчик ID продолжает расти.
func (ecs *ECS) Reset() {
	ecs.GameTime = 0
	ecs.Balloons = nil
	ecs.Towers = nil
	ecs.Projectiles = nil
	ecs.Particles = nil
	ecs.Wave = nil
	ecs.GameState = &component.GameState{Speed: 1}
}

func (ecs *ECS) TowerByID(id types.EntityID) (*component.Tower, bool) {
	if id == 0 {
		return nil, false
	}
	for _, t := range ecs.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

func (ecs *ECS) BalloonByID(id types.EntityID) (*component.Balloon, bool) {
	for _, b := range ecs.Balloons {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// RemoveTower удаляет башню, сохраняя порядок остальных.
func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	for i, t := range ecs.Towers {
		if t.ID == id {
			ecs.Towers = append(ecs.Towers[:i], ecs.Towers[i+1:]...)
			return true
		}
	}
	return false
}

// LiveBalloons counts balloons that have not popped.
func (ecs *ECS) LiveBalloons() int {
	n := 0
	for _, b := range ecs.Balloons {
		if !b.Dead {
			n++
		}
	}
	return n
}

// PurgeBalloons drops popped balloons and returns how many were removed.
func (ecs *ECS) PurgeBalloons() int {
	kept := ecs.Balloons[:0]
	for _, b := range ecs.Balloons {
		if !b.Dead {
			kept = append(kept, b)
		}
	}
	removed := len(ecs.Balloons) - len(kept)
	clearTail(ecs.Balloons, len(kept))
	ecs.Balloons = kept
	return removed
}

// PurgeProjectiles drops projectiles whose remaining range is used up.
func (ecs *ECS) PurgeProjectiles() int {
	kept := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if p.RangeRemaining > 0 {
			kept = append(kept, p)
		}
	}
	removed := len(ecs.Projectiles) - len(kept)
	clearTail(ecs.Projectiles, len(kept))
	ecs.Projectiles = kept
	return removed
}

// PurgeParticles drops expired particles.
func (ecs *ECS) PurgeParticles() int {
	kept := ecs.Particles[:0]
	for _, p := range ecs.Particles {
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	removed := len(ecs.Particles) - len(kept)
	clearTail(ecs.Particles, len(kept))
	ecs.Particles = kept
	return removed
}

// clearTail зануляет хвост, чтобы GC мог собрать удалённые сущности.
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
