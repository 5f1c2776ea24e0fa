// internal/state/game_state.go
package state

import (
	"context"
	"fmt"
	"log"
	"time"

	"balloon-tower-defense/internal/advisor"
	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/audio"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/settings"
	"balloon-tower-defense/internal/ui"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Services — необязательные подсистемы вокруг движка. Любое поле может быть nil.
type Services struct {
	Advisor  *advisor.Advisor
	Settings *settings.Manager
	Sound    *audio.SoundManager
}

// GameState — основное состояние: поле, магазин и HUD.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	services Services
	renderer *render.FieldRenderer

	shop           *ui.ShopPanel
	infoPanel      *ui.InfoPanel
	indicator      *ui.StateIndicator
	speedButton    *ui.SpeedButton
	pauseButton    *ui.PauseButton
	soundIndicator *ui.SoundIndicator
	waveIndicator  *ui.WaveIndicator
	livesIndicator *ui.LivesIndicator
	advisorLine    *ui.AdvisorLine

	snap          app.Snapshot
	advice        <-chan string
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, game *app.Game, services Services) *GameState {
	fieldColors := &render.FieldColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     config.StrokeWidth,
	}
	entityColors := &render.EntityColors{
		Balloons:    config.BalloonColors,
		Towers:      config.TowerColors,
		Stroke:      config.TowerStrokeColor,
		Range:       config.RangeColor,
		RangeDenied: config.InvalidRange,
		SlowTint:    config.SlowTintColor,
	}
	renderer := render.NewFieldRenderer(game.Path.Points(), config.FieldWidth, config.FieldHeight,
		config.PathStrokeWidth, config.TowerRadius, fieldColors, entityColors)

	left := config.PanelX + config.PanelPadding
	width := config.PanelWidth - 2*config.PanelPadding
	cx := float32(config.PanelX + config.PanelWidth/2)

	gs := &GameState{
		sm:             sm,
		game:           game,
		services:       services,
		renderer:       renderer,
		shop:           ui.NewShopPanel(left, config.ShopY, width, game.Library.Towers),
		infoPanel:      ui.NewInfoPanel(config.PanelX, config.PanelWidth, config.ScreenHeight),
		indicator:      ui.NewStateIndicator(float32(left)+config.IndicatorRadius, config.ControlsY, config.IndicatorRadius),
		speedButton:    ui.NewSpeedButton(cx-20, config.ControlsY, config.SpeedButtonSize, config.GameSpeeds, config.SpeedButtonColors),
		pauseButton:    ui.NewPauseButton(cx+40, config.ControlsY, config.SpeedButtonSize*0.8, config.SpeedButtonColors[0], config.SpeedButtonColors[1]),
		soundIndicator: ui.NewSoundIndicator(float32(config.PanelX+config.PanelWidth-config.PanelPadding-10), config.ControlsY, 14),
		waveIndicator:  ui.NewWaveIndicator(int(cx), config.WaveY),
		livesIndicator: ui.NewLivesIndicator(float32(left), config.LivesY),
		advisorLine:    ui.NewAdvisorLine(left, config.AdvisorY, width),
		lastClickTime:  time.Now(),
	}
	gs.advisorLine.Enabled = gs.advisorEnabled()
	gs.refresh()
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(now time.Time) {
	if g.handleKeys() || g.handleMouse(now) {
		return
	}

	g.game.Step(now)
	g.refresh()

	if g.snap.State.Phase.Terminal() {
		g.sm.SetState(NewEndState(g.sm, g))
	}
}

// refresh снимает снимок и синхронизирует виджеты с движком.
func (g *GameState) refresh() {
	g.snap = g.game.Snapshot()
	state := g.snap.State

	g.speedButton.Sync(state.Speed)
	g.pauseButton.SetPaused(state.Paused)
	g.shop.Update(state.Gold, state.Phase.Terminal(), state.PlacingTowerType)

	if tower, ok := g.snap.SelectedTower(); ok {
		def := g.game.Library.Towers[tower.Type]
		g.infoPanel.SetTarget(tower.ID, ui.DescribeTower(tower, def, g.game.SellValue(&tower), state.Gold))
	} else {
		g.infoPanel.Hide()
	}
	g.infoPanel.Update()

	g.pollAdvice()
}

// handleKeys возвращает true, если состояние сменилось.
func (g *GameState) handleKeys() bool {
	state := g.game.ECS.GameState
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.startWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyF), inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.game.UpgradeTower(state.SelectedTowerID)
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.game.SellTower(state.SelectedTowerID)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.game.CancelPlacing()
		g.game.SelectTower(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.askAdvisor()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.toggleSound()
	}

	hotkeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, key := range hotkeys {
		if inpututil.IsKeyJustPressed(key) {
			if towerType, ok := g.shop.TypeForHotkey(i + 1); ok {
				g.game.BeginPlacing(towerType)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		return g.pause()
	}
	return false
}

// handleMouse возвращает true, если состояние сменилось и тик надо пропустить.
func (g *GameState) handleMouse(now time.Time) bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.CancelPlacing()
		g.game.SelectTower(0)
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	if now.Sub(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return false
	}
	g.lastClickTime = now

	x, y := ebiten.CursorPosition()
	if x >= config.FieldWidth {
		return g.handleUIClick(x, y)
	}
	g.handleFieldClick(x, y)
	return false
}

// handleUIClick обрабатывает клик по правой панели
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.infoPanel.HandleClick(x, y, g.game):
	case g.indicator.IsClicked(x, y):
		g.startWave()
	case g.speedButton.IsClicked(x, y):
		g.cycleSpeed()
	case g.pauseButton.IsClicked(x, y):
		return g.pause()
	case g.soundIndicator.IsClicked(x, y):
		g.toggleSound()
	case g.advisorLine.IsClicked(x, y):
		g.askAdvisor()
	default:
		g.shop.HandleClick(x, y, g.game)
	}
	return false
}

// handleFieldClick ставит выбранную башню или выделяет существующую.
func (g *GameState) handleFieldClick(x, y int) {
	fx, fy := float64(x), float64(y)
	state := g.game.ECS.GameState
	if state.PlacingTowerType != "" {
		g.game.PlaceTower(state.PlacingTowerType, fx, fy)
		return
	}
	if id, ok := g.game.TowerAt(fx, fy); ok {
		g.game.SelectTower(id)
		return
	}
	g.game.SelectTower(0)
}

func (g *GameState) startWave() {
	g.indicator.HandleClick()
	g.game.StartNextWave()
}

func (g *GameState) cycleSpeed() {
	g.speedButton.Click()
	speed := g.game.CycleSpeed()
	if g.services.Settings != nil {
		g.services.Settings.SetSpeed(speed)
		g.saveSettings()
	}
}

func (g *GameState) pause() bool {
	if !g.game.TogglePause() {
		return false
	}
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
	return true
}

func (g *GameState) toggleSound() {
	if g.services.Settings == nil {
		return
	}
	enabled := !g.services.Settings.Get().SoundEnabled
	g.services.Settings.SetSoundEnabled(enabled)
	if g.services.Sound != nil {
		g.services.Sound.SetEnabled(enabled)
	}
	g.saveSettings()
}

func (g *GameState) soundEnabled() bool {
	if g.services.Settings == nil || g.services.Sound == nil {
		return false
	}
	return g.services.Settings.Get().SoundEnabled
}

func (g *GameState) advisorEnabled() bool {
	if g.services.Advisor == nil {
		return false
	}
	return g.services.Settings == nil || g.services.Settings.Get().AdvisorEnabled
}

// askAdvisor запускает запрос в фоне; ответ забирает pollAdvice.
func (g *GameState) askAdvisor() {
	if !g.advisorEnabled() || g.advice != nil {
		return
	}
	ch, ok := g.services.Advisor.Request(context.Background(), g.game.AdvisorSummary())
	if !ok {
		return
	}
	g.advice = ch
	g.advisorLine.Consulting = true
	g.advisorLine.Message = advisor.ConsultingMessage
}

func (g *GameState) pollAdvice() {
	if g.advice == nil {
		return
	}
	select {
	case msg, ok := <-g.advice:
		if ok {
			g.advisorLine.Message = msg
		}
		g.advice = nil
		g.advisorLine.Consulting = false
	default:
	}
}

func (g *GameState) saveSettings() {
	if err := g.services.Settings.Save(); err != nil {
		log.Printf("failed to save settings: %v", err)
	}
}

// preview — призрак башни под курсором в режиме постановки.
func (g *GameState) preview() render.Preview {
	towerType := g.snap.State.PlacingTowerType
	if towerType == "" {
		return render.Preview{}
	}
	x, y := ebiten.CursorPosition()
	if x >= config.FieldWidth {
		return render.Preview{}
	}
	fx, fy := float64(x), float64(y)
	return render.Preview{
		Active: true,
		Type:   string(towerType),
		X:      fx,
		Y:      fy,
		Range:  g.game.Library.Towers[towerType].Range,
		Valid:  g.game.CanPlace(towerType, fx, fy),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.snap, g.preview())
	g.drawPanel(screen)
}

func (g *GameState) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, config.PanelX, 0, config.PanelWidth, config.ScreenHeight, config.PanelColor, false)

	state := g.snap.State
	cx, cy := ebiten.CursorPosition()
	left := config.PanelX + config.PanelPadding

	render.DrawText(screen, fmt.Sprintf("Gold: $%d", state.Gold), left, config.GoldY, config.GoldColor)
	g.livesIndicator.Draw(screen, state.Lives, g.game.Library.Economy.InitialLives)
	g.waveIndicator.Draw(screen, state.Wave, g.snap.TotalWaves)
	if state.WaveActive {
		render.DrawTextCentered(screen, fmt.Sprintf("%d to spawn", g.snap.QueueLength), config.PanelX+config.PanelWidth/2, config.WaveY+16, config.TextLightColor)
	}

	g.indicator.Draw(screen, state.WaveActive)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.soundIndicator.Draw(screen, g.soundEnabled())

	g.shop.Draw(screen, cx, cy)
	g.advisorLine.Enabled = g.advisorEnabled()
	g.advisorLine.Draw(screen, cx, cy)
	g.infoPanel.Draw(screen, cx, cy)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
