// internal/system/combat.go
package system

import (
	"math"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/pkg/pathgeom"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs    *entity.ECS
	towers map[defs.TowerType]defs.TowerDefinition
}

func NewCombatSystem(ecs *entity.ECS, towers map[defs.TowerType]defs.TowerDefinition) *CombatSystem {
	return &CombatSystem{ecs: ecs, towers: towers}
}

// Update обходит башни в порядке постройки. Башня на перезарядке только
// уменьшает счётчик и в этот тик не стреляет.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.ecs.Towers {
		if tower.Cooldown > 0 {
			tower.Cooldown = math.Max(0, tower.Cooldown-deltaTime)
			continue
		}
		target := s.FindTarget(tower)
		if target == nil {
			continue
		}
		s.fire(tower, target)
	}
}

// FindTarget возвращает живой шарик в радиусе, дальше всех продвинувшийся
// по пути. При равенстве побеждает более ранний в хранилище.
func (s *CombatSystem) FindTarget(tower *component.Tower) *component.Balloon {
	var best *component.Balloon
	for _, b := range s.ecs.Balloons {
		if b.Dead || pathgeom.Distance(tower.Position, b.Position) > tower.Range {
			continue
		}
		if best == nil || b.DistanceTravelled > best.DistanceTravelled {
			best = b
		}
	}
	return best
}

func (s *CombatSystem) fire(tower *component.Tower, target *component.Balloon) {
	def := s.towers[tower.Type]
	stats := def.StatsAt(tower.Level)
	tower.Cooldown = stats.Cooldown

	angle := math.Atan2(target.Position.Y-tower.Position.Y, target.Position.X-tower.Position.X)
	shot := shotSpec{
		speed:  config.ProjectileSpeed,
		radius: config.ProjectileRadius,
		damage: stats.Damage,
	}

	switch tower.Type {
	case defs.TowerDartMonkey:
		s.spawnProjectile(tower, angle, shot)
		if tower.Level >= config.MultiShotLevel {
			s.spawnProjectile(tower, angle+config.DartSpreadAngle, shot)
		}
	case defs.TowerTackShooter:
		count := config.TackCount
		if tower.Level >= config.MultiShotLevel {
			count = config.TackCountUpgraded
		}
		for i := 0; i < count; i++ {
			s.spawnProjectile(tower, 2*math.Pi/float64(count)*float64(i), shot)
		}
	case defs.TowerCannon:
		shot.radius = config.CannonballRadius
		shot.aoe = def.AoE
		s.spawnProjectile(tower, angle, shot)
	case defs.TowerIce:
		shot.speed *= config.IceSpeedFactor
		shot.radius = config.IceBoltRadius
		shot.slows = true
		s.spawnProjectile(tower, angle, shot)
	}
}

type shotSpec struct {
	speed  float64
	radius float64
	damage int
	aoe    float64
	slows  bool
}

func (s *CombatSystem) spawnProjectile(tower *component.Tower, angle float64, shot shotSpec) {
	s.ecs.Projectiles = append(s.ecs.Projectiles, &component.Projectile{
		ID:       s.ecs.NewEntity(),
		Source:   tower.Type,
		Position: tower.Position,
		Velocity: component.Velocity{
			X: math.Cos(angle) * shot.speed,
			Y: math.Sin(angle) * shot.speed,
		},
		Damage:         shot.damage,
		RangeRemaining: tower.Range * config.ProjectileRangeFactor,
		AoE:            shot.aoe,
		Radius:         shot.radius,
		Slows:          shot.slows,
		Color:          config.ProjectileColors[string(tower.Type)],
	})
}
