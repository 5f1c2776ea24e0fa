// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"time"

	"balloon-tower-defense/internal/advisor"
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/internal/system"
	"balloon-tower-defense/internal/utils"
	"balloon-tower-defense/pkg/pathgeom"

	"github.com/google/uuid"
)

// Game владеет всеми хранилищами и системами одной сессии.
// Команды и Update вызываются из одной горутины, между тиками.
type Game struct {
	SessionID       string
	Library         *defs.Library
	Path            *pathgeom.Path
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	DamageSystem     *system.DamageSystem
	ParticleSystem   *system.ParticleSystem
	StateSystem      *system.StateSystem

	clock       *FrameClock
	particleRng *utils.PRNGService
	logger      *log.Logger
}

// NewGame initializes a new game instance. A zero seed picks one from the clock.
func NewGame(lib *defs.Library, seed int64) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}

	id := uuid.New()
	rng := utils.NewPRNGService(seed)
	g := &Game{
		SessionID:       id.String(),
		Library:         lib,
		Path:            pathgeom.NewPath(lib.Path),
		ECS:             entity.NewECS(),
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		clock:           NewFrameClock(),
		particleRng:     utils.NewPRNGService(rng.Seed() + 1),
		logger:          log.New(log.Writer(), fmt.Sprintf("[%s] ", id.String()[:8]), log.Flags()),
	}

	spawner := system.NewBalloonSpawner(g.ECS, lib, g.Path)
	g.ParticleSystem = system.NewParticleSystem(g.ECS, g.particleRng)
	g.DamageSystem = system.NewDamageSystem(g.ECS, lib, spawner, g.ParticleSystem, g.EventDispatcher)
	g.WaveSystem = system.NewWaveSystem(g.ECS, lib.Waves, spawner, rng, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.Path, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.ECS, lib.Towers)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, g.DamageSystem)
	g.StateSystem = system.NewStateSystem(g.ECS, lib.Waves.Total, g.EventDispatcher)
	g.WaveSystem.Logger = g.logger
	g.StateSystem.Logger = g.logger

	g.resetState()
	g.logger.Printf("new session, seed %d", rng.Seed())
	return g
}

func (g *Game) resetState() {
	g.ECS.Reset()
	g.ECS.GameState.Gold = g.Library.Economy.InitialGold
	g.ECS.GameState.Lives = g.Library.Economy.InitialLives
	g.clock.Reset()
}

// Update продвигает симуляцию на deltaTime кадров (уже с учётом скорости).
// Пауза и терминальные фазы полностью останавливают шаг.
func (g *Game) Update(deltaTime float64) {
	state := g.ECS.GameState
	if state.Paused || state.Phase != component.PhasePlaying || deltaTime < 0 {
		return
	}
	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	if state.Phase != component.PhasePlaying {
		return
	}
	g.MovementSystem.Update(deltaTime)
	if g.MovementSystem.ResolveEscapes() > 0 && state.Lives == 0 {
		g.StateSystem.EnterGameOver()
		return
	}
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.ParticleSystem.Update(deltaTime)
}

// Step reads the frame clock and runs one tick at the current speed.
// While paused or finished the clock is kept fresh so resuming never
// produces a catch-up jump.
func (g *Game) Step(now time.Time) {
	state := g.ECS.GameState
	if state.Paused || state.Phase.Terminal() {
		g.clock.Reset()
		return
	}
	g.Update(g.clock.Advance(now) * state.Speed)
}

// QueueLength — сколько шариков волны ещё не вышло.
func (g *Game) QueueLength() int {
	return g.WaveSystem.QueueLength()
}

// AdvisorSummary собирает данные для советника.
func (g *Game) AdvisorSummary() advisor.Summary {
	state := g.ECS.GameState
	towers := make(map[defs.TowerType]int)
	for _, t := range g.ECS.Towers {
		towers[t.Type]++
	}
	return advisor.Summary{Session: g.SessionID[:8], Wave: state.Wave, Gold: state.Gold, Lives: state.Lives, Towers: towers}
}

func (g *Game) logf(format string, args ...any) {
	g.logger.Printf(format, args...)
}
