// internal/app/commands.go
package app

import (
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/internal/types"
)

// StartNextWave запускает следующую волну. Отклоняется, пока идёт текущая.
// Если все волны уже пройдены, фиксирует победу.
func (g *Game) StartNextWave() bool {
	state := g.ECS.GameState
	if state.Phase.Terminal() || state.WaveActive {
		return false
	}
	if state.Wave >= g.Library.Waves.Total {
		g.StateSystem.EnterVictory()
		return false
	}
	return g.WaveSystem.Start(state.Wave + 1)
}

// SetSpeed принимает только множители из config.GameSpeeds.
func (g *Game) SetSpeed(multiplier float64) bool {
	if g.ECS.GameState.Phase.Terminal() {
		return false
	}
	for _, s := range config.GameSpeeds {
		if s == multiplier {
			g.ECS.GameState.Speed = multiplier
			g.logf("speed x%g", multiplier)
			return true
		}
	}
	return false
}

// CycleSpeed переключает x1 -> x2 -> x4 -> x1, как кнопка скорости.
func (g *Game) CycleSpeed() float64 {
	current := g.ECS.GameState.Speed
	next := config.GameSpeeds[0]
	for i, s := range config.GameSpeeds {
		if s == current {
			next = config.GameSpeeds[(i+1)%len(config.GameSpeeds)]
			break
		}
	}
	g.SetSpeed(next)
	return g.ECS.GameState.Speed
}

// TogglePause ставит и снимает паузу. После снятия первый тик идёт с dt = 0.
func (g *Game) TogglePause() bool {
	state := g.ECS.GameState
	if state.Phase.Terminal() {
		return false
	}
	state.Paused = !state.Paused
	g.clock.Reset()
	g.logf("paused=%v", state.Paused)
	return true
}

// SelectTower выделяет башню; 0 снимает выделение.
// Несуществующий ID ничего не меняет.
func (g *Game) SelectTower(id types.EntityID) bool {
	state := g.ECS.GameState
	if id == 0 {
		state.SelectedTowerID = 0
		return true
	}
	if state.Phase.Terminal() {
		return false
	}
	if _, ok := g.ECS.TowerByID(id); !ok {
		return false
	}
	state.SelectedTowerID = id
	state.PlacingTowerType = ""
	return true
}

// BeginPlacing выбирает тип башни для следующего клика по полю.
func (g *Game) BeginPlacing(towerType defs.TowerType) bool {
	state := g.ECS.GameState
	if state.Phase.Terminal() || !towerType.Valid() {
		return false
	}
	state.PlacingTowerType = towerType
	state.SelectedTowerID = 0
	return true
}

func (g *Game) CancelPlacing() {
	g.ECS.GameState.PlacingTowerType = ""
}

// Restart возвращает сессию к начальному состоянию с тем же сидом.
func (g *Game) Restart() {
	g.resetState()
	g.Rng.Reseed()
	g.particleRng.Reseed()
	g.logf("restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}
