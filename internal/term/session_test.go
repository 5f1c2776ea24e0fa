package term

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/pkg/pathgeom"

	"github.com/gdamore/tcell/v2"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestSession(t *testing.T) (*Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	game := app.NewGame(defs.Default(), 42)
	return NewSession(game, screen, nil), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// rowText собирает строку экрана в обычный текст.
func rowText(screen tcell.Screen, row, from, to int) string {
	var b strings.Builder
	for col := from; col < to; col++ {
		r, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestGridRoundTrip(t *testing.T) {
	g := Grid{Cols: 72, Rows: 29}
	for _, p := range []pathgeom.Point{{X: 0, Y: 0}, {X: 500, Y: 300}, {X: 999, Y: 649}} {
		col, row := g.Cell(p)
		back := g.Point(col, row)
		if c2, r2 := g.Cell(back); c2 != col || r2 != row {
			t.Errorf("cell(%v) = %d,%d but center maps to %d,%d", p, col, row, c2, r2)
		}
	}
	if col, row := g.Cell(pathgeom.Point{X: -50, Y: 5000}); col != 0 || row != g.Rows-1 {
		t.Errorf("out of field point must clamp, got %d,%d", col, row)
	}
}

func TestPlaceSelectAndSell(t *testing.T) {
	s, _ := newTestSession(t)
	game := s.game

	s.HandleEvent(runeKey('1'))
	if game.ECS.GameState.PlacingTowerType != defs.TowerDartMonkey {
		t.Fatalf("placing = %q", game.ECS.GameState.PlacingTowerType)
	}
	s.HandleEvent(key(tcell.KeyEnter))
	if len(game.ECS.Towers) != 1 {
		t.Fatalf("towers = %d, status %q", len(game.ECS.Towers), s.Status())
	}
	id := game.ECS.Towers[0].ID
	if game.ECS.GameState.SelectedTowerID != id {
		t.Fatal("a new tower is selected")
	}

	s.HandleEvent(key(tcell.KeyEscape))
	if game.ECS.GameState.SelectedTowerID != 0 {
		t.Fatal("escape clears the selection")
	}
	s.HandleEvent(key(tcell.KeyEnter))
	if game.ECS.GameState.SelectedTowerID != id {
		t.Fatal("enter on a tower selects it")
	}

	gold := game.ECS.GameState.Gold
	s.HandleEvent(runeKey('s'))
	if len(game.ECS.Towers) != 0 || game.ECS.GameState.Gold <= gold {
		t.Fatalf("sell failed: towers %d gold %d", len(game.ECS.Towers), game.ECS.GameState.Gold)
	}
}

func TestCursorStaysOnField(t *testing.T) {
	s, _ := newTestSession(t)
	for i := 0; i < 200; i++ {
		s.HandleEvent(key(tcell.KeyLeft))
		s.HandleEvent(runeKey('k'))
	}
	if col, row := s.Cursor(); col != 0 || row != 0 {
		t.Fatalf("cursor = %d,%d", col, row)
	}
	for i := 0; i < 200; i++ {
		s.HandleEvent(key(tcell.KeyRight))
		s.HandleEvent(key(tcell.KeyDown))
	}
	grid := s.view.Grid()
	if col, row := s.Cursor(); col != grid.Cols-1 || row != grid.Rows-1 {
		t.Fatalf("cursor = %d,%d, grid %+v", col, row, grid)
	}
}

func TestMouseClickPlaces(t *testing.T) {
	s, _ := newTestSession(t)
	s.HandleEvent(runeKey('3'))
	s.HandleEvent(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	if len(s.game.ECS.Towers) != 1 || s.game.ECS.Towers[0].Type != defs.TowerCannon {
		t.Fatalf("towers = %+v", s.game.ECS.Towers)
	}
	// клик по боковой панели не трогает поле
	s.HandleEvent(tcell.NewEventMouse(95, 5, tcell.Button1, tcell.ModNone))
	if col, row := s.Cursor(); col != 5 || row != 5 {
		t.Fatalf("cursor moved to %d,%d", col, row)
	}
}

func TestQuitKeys(t *testing.T) {
	s, _ := newTestSession(t)
	if s.HandleEvent(runeKey('q')) {
		t.Error("q must quit")
	}
	if s.HandleEvent(key(tcell.KeyCtrlC)) {
		t.Error("ctrl-c must quit")
	}
	if !s.HandleEvent(runeKey('f')) || s.game.ECS.GameState.Speed != 2 {
		t.Error("f cycles speed and keeps running")
	}
}

func TestTickDrawsHUD(t *testing.T) {
	s, screen := newTestSession(t)
	s.HandleEvent(runeKey(' '))
	now := time.Now()
	for i := 0; i < 10; i++ {
		s.Tick(now.Add(time.Duration(i) * FrameInterval))
	}

	grid := s.view.Grid()
	first := rowText(screen, 0, grid.Cols+1, grid.Cols+1+SidebarWidth-1)
	if !strings.HasPrefix(first, "Gold  $") {
		t.Errorf("sidebar row 0 = %q", first)
	}
	third := rowText(screen, 2, grid.Cols+1, grid.Cols+1+SidebarWidth-1)
	if !strings.HasPrefix(third, "Wave  1/30") {
		t.Errorf("sidebar row 2 = %q", third)
	}
}

func TestRestartKey(t *testing.T) {
	s, _ := newTestSession(t)
	s.HandleEvent(runeKey('1'))
	s.HandleEvent(key(tcell.KeyEnter))
	s.HandleEvent(runeKey('r'))
	if len(s.game.ECS.Towers) != 0 || s.game.ECS.GameState.Gold != s.game.Library.Economy.InitialGold {
		t.Fatal("restart must reset the session")
	}
	if s.Status() != "restarted" {
		t.Errorf("status = %q", s.Status())
	}
}

func TestSidebarShowsSelectedTower(t *testing.T) {
	s, screen := newTestSession(t)
	s.HandleEvent(runeKey('1'))
	s.HandleEvent(key(tcell.KeyEnter))
	s.Draw()

	grid := s.view.Grid()
	id := s.game.ECS.Towers[0].ID
	want := fmt.Sprintf("#%d D L0", id)
	for row := 0; row < grid.Rows; row++ {
		line := rowText(screen, row, grid.Cols+1, grid.Cols+1+SidebarWidth-1)
		if strings.HasPrefix(line, "#") {
			if !strings.HasPrefix(line, want) {
				t.Fatalf("selected tower line = %q, want prefix %q", line, want)
			}
			return
		}
	}
	t.Fatal("no selected tower line in the sidebar")
}

func TestStatusLineKeepsRuneColumns(t *testing.T) {
	s, screen := newTestSession(t)
	s.status = "Gelée: build ice, déjà vu!"
	s.Draw()

	row := s.view.Grid().Rows
	got := rowText(screen, row, 0, len([]rune(s.status)))
	if got != s.status {
		t.Fatalf("status row = %q, want %q", got, s.status)
	}
}
