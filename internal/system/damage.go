// internal/system/damage.go
package system

import (
	"math"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/pkg/pathgeom"
)

// DamageSystem разрешает попадания: замедление, урон по области, лопание и деление.
type DamageSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	spawner         *BalloonSpawner
	particles       *ParticleSystem
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, lib *defs.Library, spawner *BalloonSpawner, particles *ParticleSystem, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		lib:             lib,
		spawner:         spawner,
		particles:       particles,
		eventDispatcher: eventDispatcher,
	}
}

// ResolveHit применяет попадание снаряда в основную цель.
// Замедление получает только основная цель, даже при уроне по области.
func (s *DamageSystem) ResolveHit(proj *component.Projectile, primary *component.Balloon) {
	if proj.Slows {
		primary.SlowTimer = config.SlowDuration
	}
	if proj.AoE <= 0 {
		s.ApplyDamage(primary, proj.Damage)
		return
	}

	s.particles.EmitExplosion(proj.Position)
	// Жертвы выбираются до нанесения урона: дети, появившиеся от
	// лопания внутри этого взрыва, урон не получают.
	victims := make([]*component.Balloon, 0, 8)
	for _, b := range s.ecs.Balloons {
		if b.Dead {
			continue
		}
		if b == primary || pathgeom.Distance(b.Position, proj.Position) <= proj.AoE {
			victims = append(victims, b)
		}
	}
	for _, b := range victims {
		s.ApplyDamage(b, proj.Damage)
	}
}

// ApplyDamage наносит урон и лопает шарик при здоровье <= 0.
func (s *DamageSystem) ApplyDamage(b *component.Balloon, damage int) {
	if b.Dead || damage <= 0 {
		return
	}
	b.Health -= damage
	if b.Health <= 0 {
		s.Pop(b)
	}
}

// Pop awards gold, emits particles and replaces the balloon with two
// children of the next weaker color, if it has one.
func (s *DamageSystem) Pop(b *component.Balloon) {
	if b.Dead {
		return
	}
	b.Dead = true
	s.particles.EmitPop(b.Position, config.BalloonColors[string(b.Color)])
	s.ecs.GameState.Gold += s.lib.Economy.PopReward
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BalloonPopped,
		Data: event.BalloonPoppedData{ID: b.ID, Color: b.Color, Position: b.Position},
	})

	next, ok := s.lib.Balloons[b.Color].Splits()
	if !ok {
		return
	}
	s.spawner.Spawn(next, b.DistanceTravelled, b.SlowTimer)
	s.spawner.Spawn(next, math.Max(0, b.DistanceTravelled-config.SplitStagger), b.SlowTimer)
}
