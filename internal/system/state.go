// internal/system/state.go
package system

import (
	"log"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/internal/event"
)

// StateSystem переводит сессию в терминальные фазы.
type StateSystem struct {
	ecs             *entity.ECS
	totalWaves      int
	eventDispatcher *event.Dispatcher
	Logger          *log.Logger
}

func NewStateSystem(ecs *entity.ECS, totalWaves int, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		totalWaves:      totalWaves,
		eventDispatcher: eventDispatcher,
		Logger:          log.Default(),
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.WaveEnded {
		return
	}
	if wave, ok := e.Data.(int); ok && wave >= s.totalWaves {
		s.EnterVictory()
	}
}

// EnterGameOver замораживает движок до перезапуска.
func (s *StateSystem) EnterGameOver() {
	state := s.ecs.GameState
	if state.Phase.Terminal() {
		return
	}
	state.Phase = component.PhaseGameOver
	s.Logger.Printf("game over at wave %d", state.Wave)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: state.Wave})
}

func (s *StateSystem) EnterVictory() {
	state := s.ecs.GameState
	if state.Phase.Terminal() {
		return
	}
	state.Phase = component.PhaseVictory
	state.WaveActive = false
	s.ecs.Wave = nil
	s.Logger.Printf("victory: all %d waves cleared with %d lives left", s.totalWaves, state.Lives)
	s.eventDispatcher.Dispatch(event.Event{Type: event.Victory, Data: state.Wave})
}
