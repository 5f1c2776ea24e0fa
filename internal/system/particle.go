// internal/system/particle.go
package system

import (
	"image/color"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/internal/utils"
	"balloon-tower-defense/pkg/pathgeom"
)

// ParticleSystem управляет косметическими частицами. У неё свой генератор,
// чтобы частицы не сдвигали последовательность бросков для волн.
type ParticleSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewParticleSystem(ecs *entity.ECS, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{ecs: ecs, rng: rng}
}

// EmitPop — брызги цвета лопнувшего шарика.
func (s *ParticleSystem) EmitPop(at pathgeom.Point, clr color.RGBA) {
	s.emit(at, clr, config.PopParticleCount, config.PopParticleLife,
		config.PopParticleSpeed, config.PopParticleMinSize, config.PopParticleSizeSpan)
}

// EmitExplosion — оранжевая вспышка в точке попадания ядра.
func (s *ParticleSystem) EmitExplosion(at pathgeom.Point) {
	s.emit(at, config.ExplosionColor, config.ExplosionParticleCount, config.ExplosionParticleLife,
		config.ExplosionParticleSpeed, config.ExplosionParticleMinSize, config.ExplosionParticleSizeSpan)
}

func (s *ParticleSystem) emit(at pathgeom.Point, clr color.RGBA, count int, life, speed, minSize, sizeSpan float64) {
	for i := 0; i < count; i++ {
		s.ecs.Particles = append(s.ecs.Particles, &component.Particle{
			ID:       s.ecs.NewEntity(),
			Position: at,
			Velocity: component.Velocity{X: s.rng.Spread(speed), Y: s.rng.Spread(speed)},
			Life:     life,
			MaxLife:  life,
			Size:     s.rng.Range(minSize, sizeSpan),
			Color:    clr,
		})
	}
}

// Update двигает и старит частицы, истёкшие удаляются.
func (s *ParticleSystem) Update(deltaTime float64) {
	for _, p := range s.ecs.Particles {
		p.Position.X += p.Velocity.X * deltaTime
		p.Position.Y += p.Velocity.Y * deltaTime
		p.Life -= deltaTime
	}
	s.ecs.PurgeParticles()
}
