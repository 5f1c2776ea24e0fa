// internal/system/projectile.go
package system

import (
	"math"

	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/pkg/pathgeom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, damage: damage}
}

// Update двигает снаряды и проверяет столкновения. Снаряд поражает только
// первый пересекающийся живой шарик и после этого выбывает. Израсходованные
// снаряды и лопнувшие шарики удаляются в конце шага.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, proj := range s.ecs.Projectiles {
		if proj.RangeRemaining <= 0 {
			continue
		}
		dx := proj.Velocity.X * deltaTime
		dy := proj.Velocity.Y * deltaTime
		proj.Position.X += dx
		proj.Position.Y += dy
		proj.RangeRemaining -= math.Hypot(dx, dy)

		for _, b := range s.ecs.Balloons {
			if b.Dead {
				continue
			}
			if pathgeom.CirclesOverlap(proj.Position, proj.Radius, b.Position, b.Radius) {
				s.damage.ResolveHit(proj, b)
				proj.RangeRemaining = 0
				break
			}
		}
	}
	s.ecs.PurgeProjectiles()
	s.ecs.PurgeBalloons()
}
