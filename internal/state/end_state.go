// internal/state/end_state.go
package state

import (
	"fmt"
	"image"
	"time"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/ui"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*EndState)(nil)

// EndState — экран победы или поражения поверх последнего кадра.
// Из него есть только перезапуск.
type EndState struct {
	stateMachine  *StateMachine
	previousState *GameState
	restartButton *ui.Button
}

func NewEndState(sm *StateMachine, prevState *GameState) *EndState {
	cx, cy := config.FieldWidth/2, config.ScreenHeight/2
	return &EndState{
		stateMachine:  sm,
		previousState: prevState,
		restartButton: ui.NewButton(image.Rect(cx-80, cy+40, cx+80, cy+40+config.ButtonHeight), "Restart (R)"),
	}
}

func (s *EndState) Enter() {}

func (s *EndState) Update(now time.Time) {
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		restart = restart || s.restartButton.IsClicked(x, y)
	}
	if !restart {
		return
	}
	game := s.previousState.game
	game.Restart()
	s.previousState.refresh()
	s.stateMachine.SetState(s.previousState)
}

func (s *EndState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	snap := s.previousState.snap
	title, clr := "GAME OVER", config.LivesColor
	if snap.State.Phase == component.PhaseVictory {
		title, clr = "VICTORY", config.GoldColor
	}

	vector.DrawFilledRect(screen, 0, 0, config.FieldWidth, config.ScreenHeight, config.OverlayColor, false)
	cx, cy := config.FieldWidth/2, config.ScreenHeight/2
	render.DrawTextOutlined(screen, title, cx, cy-20, 2, clr, config.TextDarkColor)
	summary := fmt.Sprintf("Wave %d of %d, %d lives left, $%d", snap.State.Wave, snap.TotalWaves, snap.State.Lives, snap.State.Gold)
	render.DrawTextCentered(screen, summary, cx, cy+8, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	s.restartButton.Draw(screen, mx, my)
}

func (s *EndState) Exit() {}
