// internal/component/game_state.go
package component

import (
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/types"
)

// Phase — фаза сессии. GameOver и Victory терминальные.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseVictory:
		return "victory"
	}
	return "unknown"
}

// Terminal reports whether the engine is frozen until restart.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Gold       int
	Lives      int
	Wave       int
	WaveActive bool
	Speed      float64
	Paused     bool
	Phase      Phase

	// Состояние интерфейса, на симуляцию не влияет.
	SelectedTowerID  types.EntityID
	PlacingTowerType defs.TowerType // пусто — ничего не ставим
}
