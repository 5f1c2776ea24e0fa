// internal/term/session.go
package term

import (
	"context"
	"fmt"
	"time"

	"balloon-tower-defense/internal/advisor"
	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval — период тика терминального цикла (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// Session связывает движок с терминалом. Все методы вызываются
// из одной горутины цикла Run.
type Session struct {
	game      *app.Game
	screen    tcell.Screen
	view      *View
	advisor   *advisor.Advisor // nil — без советника
	advice    <-chan string
	cursorCol int
	cursorRow int
	status    string
}

func NewSession(game *app.Game, screen tcell.Screen, adv *advisor.Advisor) *Session {
	s := &Session{
		game:    game,
		screen:  screen,
		view:    NewView(screen, game.Path.Points()),
		advisor: adv,
		status:  "press space to start the first wave",
	}
	grid := s.view.Grid()
	s.cursorCol, s.cursorRow = grid.Cols/2, grid.Rows/2
	return s
}

// Status returns the last message shown in the status line.
func (s *Session) Status() string {
	return s.status
}

// Cursor returns the cursor cell.
func (s *Session) Cursor() (int, int) {
	return s.cursorCol, s.cursorRow
}

// Run крутит цикл до выхода: события приходят из отдельной горутины,
// команды применяются между тиками.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil { // экран закрыт
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventChan:
			if !ok || !s.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

// Tick продвигает движок и перерисовывает экран.
func (s *Session) Tick(now time.Time) {
	before := s.game.ECS.GameState.Phase
	s.game.Step(now)
	if phase := s.game.ECS.GameState.Phase; phase != before && phase.Terminal() {
		s.status = fmt.Sprintf("%s! press r to restart", phase)
	}
	s.pollAdvice()
	s.Draw()
}

func (s *Session) Draw() {
	s.view.Draw(s.game.Snapshot(), s.cursorCol, s.cursorRow, s.status)
}

// HandleEvent применяет одно событие. Возвращает false, если пора выходить.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			grid := s.view.Grid()
			if x < grid.Cols && y < grid.Rows {
				s.cursorCol, s.cursorRow = x, y
				s.act()
			}
		}
	case *tcell.EventResize:
		s.view.Resize()
		s.clampCursor()
		s.screen.Sync()
	}
	return true
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		s.game.CancelPlacing()
		s.game.SelectTower(0)
	case tcell.KeyUp:
		s.cursorRow--
	case tcell.KeyDown:
		s.cursorRow++
	case tcell.KeyLeft:
		s.cursorCol--
	case tcell.KeyRight:
		s.cursorCol++
	case tcell.KeyEnter:
		s.act()
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	s.clampCursor()
	return true
}

func (s *Session) handleRune(r rune) bool {
	state := s.game.ECS.GameState
	switch r {
	case 'q':
		return false
	case '1', '2', '3', '4':
		towerType := defs.AllTowerTypes[r-'1']
		if s.game.BeginPlacing(towerType) {
			s.status = fmt.Sprintf("placing %s, enter to build", s.game.Library.Towers[towerType].Name)
		}
	case ' ':
		if s.game.StartNextWave() {
			s.status = fmt.Sprintf("wave %d", s.game.ECS.GameState.Wave)
		}
	case 'f':
		s.status = fmt.Sprintf("speed x%g", s.game.CycleSpeed())
	case 'p':
		s.game.TogglePause()
	case 'u':
		if !s.game.UpgradeTower(state.SelectedTowerID) {
			s.status = "cannot upgrade"
		}
	case 's':
		if s.game.SellTower(state.SelectedTowerID) {
			s.status = fmt.Sprintf("sold, gold $%d", s.game.ECS.GameState.Gold)
		}
	case 'r':
		s.game.Restart()
		s.status = "restarted"
	case 'a':
		s.askAdvisor()
	case 'h':
		s.cursorCol--
	case 'l':
		s.cursorCol++
	case 'k':
		s.cursorRow--
	case 'j':
		s.cursorRow++
	}
	s.clampCursor()
	return true
}

// act ставит выбранную башню в клетке курсора или выделяет башню под ним.
func (s *Session) act() {
	p := s.view.Grid().Point(s.cursorCol, s.cursorRow)
	state := s.game.ECS.GameState
	if towerType := state.PlacingTowerType; towerType != "" {
		if _, ok := s.game.PlaceTower(towerType, p.X, p.Y); !ok {
			s.status = fmt.Sprintf("cannot build %s here ($%d)", towerType, s.game.Library.Towers[towerType].Cost)
			return
		}
		s.status = fmt.Sprintf("built, gold $%d", state.Gold)
		return
	}
	if id, ok := s.game.TowerAt(p.X, p.Y); ok {
		s.game.SelectTower(id)
		return
	}
	s.game.SelectTower(0)
}

func (s *Session) askAdvisor() {
	if s.advisor == nil || s.advice != nil {
		return
	}
	ch, ok := s.advisor.Request(context.Background(), s.game.AdvisorSummary())
	if !ok {
		return
	}
	s.advice = ch
	s.status = advisor.ConsultingMessage
}

func (s *Session) pollAdvice() {
	if s.advice == nil {
		return
	}
	select {
	case msg, ok := <-s.advice:
		if ok {
			s.status = msg
		}
		s.advice = nil
	default:
	}
}

func (s *Session) clampCursor() {
	grid := s.view.Grid()
	s.cursorCol = min(max(s.cursorCol, 0), grid.Cols-1)
	s.cursorRow = min(max(s.cursorRow, 0), grid.Rows-1)
}
