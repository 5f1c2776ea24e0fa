package system

import (
	"testing"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/internal/utils"
	"balloon-tower-defense/pkg/pathgeom"
)

// recorder собирает события для проверок.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// fixture собирает системы на прямом пути длиной 1000 вдоль оси X.
type fixture struct {
	ecs        *entity.ECS
	lib        *defs.Library
	path       *pathgeom.Path
	dispatcher *event.Dispatcher
	rec        *recorder
	spawner    *BalloonSpawner
	particles  *ParticleSystem
	damage     *DamageSystem
	waves      *WaveSystem
	movement   *MovementSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	state      *StateSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ecs:        entity.NewECS(),
		lib:        defs.Default(),
		path:       pathgeom.NewPath([]pathgeom.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}}),
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
	}
	f.ecs.GameState.Gold = f.lib.Economy.InitialGold
	f.ecs.GameState.Lives = f.lib.Economy.InitialLives
	f.dispatcher.SubscribeAll(f.rec,
		event.WaveStarted, event.WaveEnded, event.BalloonPopped, event.BalloonEscaped,
		event.GameOver, event.Victory)

	f.spawner = NewBalloonSpawner(f.ecs, f.lib, f.path)
	f.particles = NewParticleSystem(f.ecs, utils.NewPRNGService(2))
	f.damage = NewDamageSystem(f.ecs, f.lib, f.spawner, f.particles, f.dispatcher)
	f.waves = NewWaveSystem(f.ecs, f.lib.Waves, f.spawner, utils.NewPRNGService(1), f.dispatcher)
	f.movement = NewMovementSystem(f.ecs, f.path, f.dispatcher)
	f.combat = NewCombatSystem(f.ecs, f.lib.Towers)
	f.projectile = NewProjectileSystem(f.ecs, f.damage)
	f.state = NewStateSystem(f.ecs, f.lib.Waves.Total, f.dispatcher)
	return f
}

func (f *fixture) balloon(color defs.BalloonColor, distance float64) *component.Balloon {
	return f.spawner.Spawn(color, distance, 0)
}

func (f *fixture) tower(towerType defs.TowerType, level int, at pathgeom.Point) *component.Tower {
	def := f.lib.Towers[towerType]
	tw := &component.Tower{
		ID:            f.ecs.NewEntity(),
		Type:          towerType,
		Position:      at,
		Level:         level,
		Range:         def.StatsAt(level).Range,
		TotalInvested: def.InvestedAt(level),
	}
	f.ecs.Towers = append(f.ecs.Towers, tw)
	return tw
}

func (f *fixture) colors() []defs.BalloonColor {
	out := make([]defs.BalloonColor, 0, len(f.ecs.Balloons))
	for _, b := range f.ecs.Balloons {
		out = append(out, b.Color)
	}
	return out
}
