// internal/state/pause_state.go
package state

import (
	"time"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженное поле с затемнением. Движок на паузе
// сам не двигается, здесь только ждём снятия паузы.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(now time.Time) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.pauseButton.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause {
		// При выходе из паузы "отжимаем" кнопку в игровом состоянии
		s.previousState.game.TogglePause()
		s.previousState.pauseButton.SetPaused(false)
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.FieldWidth, config.ScreenHeight, config.OverlayColor, false)
	render.DrawTextOutlined(screen, "PAUSED", config.FieldWidth/2, config.ScreenHeight/2, 2, config.TextLightColor, config.TextDarkColor)
	render.DrawTextCentered(screen, "P to resume", config.FieldWidth/2, config.ScreenHeight/2+24, config.TextLightColor)
}

func (s *PauseState) Exit() {}
