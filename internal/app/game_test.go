package app

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/event"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(defs.Default(), 12345)
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.ECS.GameState
	if s.Gold != 650 || s.Lives != 100 || s.Wave != 0 || s.WaveActive || s.Speed != 1 {
		t.Fatalf("initial state %+v", s)
	}
	if g.SessionID == "" {
		t.Fatal("session id must be set")
	}
}

func TestPlaceDartMonkey(t *testing.T) {
	g := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.TowerPlaced, rec)

	id, ok := g.PlaceTower(defs.TowerDartMonkey, 300, 300)
	if !ok {
		t.Fatal("placement rejected")
	}
	if g.ECS.GameState.Gold != 450 {
		t.Fatalf("gold = %d, want 450", g.ECS.GameState.Gold)
	}
	if len(g.ECS.Towers) != 1 || g.ECS.Towers[0].Level != 0 || g.ECS.Towers[0].Range != 150 {
		t.Fatalf("towers = %+v", g.ECS.Towers)
	}
	if g.ECS.GameState.SelectedTowerID != id {
		t.Fatal("new tower must be selected")
	}
	if rec.count(event.TowerPlaced) != 1 {
		t.Fatal("TowerPlaced not dispatched")
	}
}

func TestPlaceRejections(t *testing.T) {
	tests := []struct {
		name  string
		tower defs.TowerType
		x, y  float64
		gold  int
	}{
		{"not enough gold", defs.TowerCannon, 300, 300, 599},
		{"outside field", defs.TowerDartMonkey, -5, 300, 650},
		{"below field", defs.TowerDartMonkey, 300, 651, 650},
		{"unknown type", defs.TowerType("SUPER_MONKEY"), 300, 300, 650},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ECS.GameState.Gold = tt.gold
			if _, ok := g.PlaceTower(tt.tower, tt.x, tt.y); ok {
				t.Fatal("placement must be rejected")
			}
			if g.ECS.GameState.Gold != tt.gold || len(g.ECS.Towers) != 0 {
				t.Fatal("rejected placement changed state")
			}
		})
	}
}

func TestUpgradeTower(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameState.Gold = 5000
	id, _ := g.PlaceTower(defs.TowerDartMonkey, 300, 300)
	tower, _ := g.ECS.TowerByID(id)

	for level := 1; level <= defs.MaxTowerLevel; level++ {
		if !g.UpgradeTower(id) {
			t.Fatalf("upgrade to %d rejected", level)
		}
	}
	if tower.Level != 3 || tower.Range != 210 || tower.TotalInvested != 200+100+200+450 {
		t.Fatalf("tower after upgrades %+v", tower)
	}
	if g.ECS.GameState.Gold != 5000-950 {
		t.Fatalf("gold = %d", g.ECS.GameState.Gold)
	}

	gold := g.ECS.GameState.Gold
	if g.UpgradeTower(id) {
		t.Fatal("upgrade at level 3 must be rejected")
	}
	if g.ECS.GameState.Gold != gold || tower.Level != 3 {
		t.Fatal("rejected upgrade changed state")
	}
}

func TestUpgradeWithoutGold(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.PlaceTower(defs.TowerCannon, 300, 300) // 650 - 600 = 50
	if g.UpgradeTower(id) {
		t.Fatal("upgrade without gold must be rejected")
	}
	if g.UpgradeTower(9999) {
		t.Fatal("upgrade of a missing tower must be rejected")
	}
	if g.ECS.GameState.Gold != 50 {
		t.Fatalf("gold = %d", g.ECS.GameState.Gold)
	}
}

func TestSellTowerRefund(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameState.Gold = 2000
	id, _ := g.PlaceTower(defs.TowerCannon, 300, 300)
	g.UpgradeTower(id) // вложено 950

	gold := g.ECS.GameState.Gold
	if !g.SellTower(id) {
		t.Fatal("sell rejected")
	}
	if got := g.ECS.GameState.Gold - gold; got != 665 {
		t.Fatalf("refund = %d, want 665", got)
	}
	if len(g.ECS.Towers) != 0 || g.ECS.GameState.SelectedTowerID != 0 {
		t.Fatal("sold tower must be removed and deselected")
	}
	if g.SellTower(id) {
		t.Fatal("selling twice must be rejected")
	}
}

func TestSellRefundIsFloored(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameState.Gold = 2000
	id, _ := g.PlaceTower(defs.TowerTackShooter, 300, 300)
	tower, _ := g.ECS.TowerByID(id)
	tower.TotalInvested = 351

	gold := g.ECS.GameState.Gold
	g.SellTower(id)
	if got := g.ECS.GameState.Gold - gold; got != 245 {
		t.Fatalf("refund = %d, want floor(0.7*351) = 245", got)
	}
}

func TestStartNextWave(t *testing.T) {
	g := newTestGame(t)
	if !g.StartNextWave() {
		t.Fatal("first wave rejected")
	}
	if g.ECS.GameState.Wave != 1 || !g.ECS.GameState.WaveActive || g.QueueLength() != 7 {
		t.Fatalf("state %+v queue %d", g.ECS.GameState, g.QueueLength())
	}

	queue := append([]component.WaveEntry(nil), g.ECS.Wave.Queue...)
	if g.StartNextWave() {
		t.Fatal("starting a wave while one is active must be rejected")
	}
	if g.ECS.GameState.Wave != 1 || len(g.ECS.Wave.Queue) != len(queue) {
		t.Fatal("rejected start changed the queue")
	}
	for i := range queue {
		if queue[i] != g.ECS.Wave.Queue[i] {
			t.Fatal("rejected start changed the queue")
		}
	}
}

func TestSpeedAndPause(t *testing.T) {
	g := newTestGame(t)
	if g.SetSpeed(3) {
		t.Fatal("speed 3 is not allowed")
	}
	if !g.SetSpeed(4) || g.ECS.GameState.Speed != 4 {
		t.Fatal("speed 4 rejected")
	}
	if g.CycleSpeed() != 1 || g.CycleSpeed() != 2 {
		t.Fatal("speed cycle must wrap 4 -> 1 -> 2")
	}

	g.TogglePause()
	g.StartNextWave()
	g.Update(10)
	if len(g.ECS.Balloons) != 0 {
		t.Fatal("paused game must not advance")
	}
	g.TogglePause()
	g.Update(10)
	if len(g.ECS.Balloons) != 1 {
		t.Fatal("resumed game must advance")
	}
}

func TestSelectTower(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.PlaceTower(defs.TowerDartMonkey, 300, 300)
	if !g.SelectTower(0) || g.ECS.GameState.SelectedTowerID != 0 {
		t.Fatal("select 0 must clear")
	}
	if g.SelectTower(id+100) || g.ECS.GameState.SelectedTowerID != 0 {
		t.Fatal("selecting a missing tower must be a no-op")
	}
	if !g.SelectTower(id) || g.ECS.GameState.SelectedTowerID != id {
		t.Fatal("select failed")
	}
	if found, ok := g.TowerAt(310, 310); !ok || found != id {
		t.Fatal("TowerAt must find the tower within the pick radius")
	}
	if _, ok := g.TowerAt(340, 300); ok {
		t.Fatal("TowerAt must miss outside the pick radius")
	}
}

func TestPlacingFlow(t *testing.T) {
	g := newTestGame(t)
	if !g.BeginPlacing(defs.TowerIce) || g.ECS.GameState.PlacingTowerType != defs.TowerIce {
		t.Fatal("BeginPlacing failed")
	}
	g.CancelPlacing()
	if g.ECS.GameState.PlacingTowerType != "" {
		t.Fatal("CancelPlacing failed")
	}
	g.BeginPlacing(defs.TowerIce)
	g.PlaceTower(defs.TowerIce, 100, 100)
	if g.ECS.GameState.PlacingTowerType != "" {
		t.Fatal("placing must end after a successful placement")
	}
}

func TestGameOverFreezesEngine(t *testing.T) {
	g := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.SubscribeAll(rec, event.GameOver, event.BalloonEscaped)
	g.ECS.GameState.Lives = 1
	g.StartNextWave()
	g.Update(0)
	g.ECS.Balloons[0].DistanceTravelled = g.Path.Length()
	g.PlaceTower(defs.TowerDartMonkey, 0, 150)

	g.Update(1)
	if g.ECS.GameState.Phase != component.PhaseGameOver || g.ECS.GameState.Lives != 0 {
		t.Fatalf("phase %v lives %d", g.ECS.GameState.Phase, g.ECS.GameState.Lives)
	}
	if len(g.ECS.Projectiles) != 0 {
		t.Fatal("towers must not fire on the tick the game ends")
	}
	if rec.count(event.GameOver) != 1 {
		t.Fatal("GameOver not dispatched")
	}

	frozenAt := g.ECS.GameTime
	g.Update(5)
	if g.ECS.GameTime != frozenAt {
		t.Fatal("terminal phase must not advance")
	}
	if g.StartNextWave() || g.SetSpeed(2) || g.TogglePause() {
		t.Fatal("commands must be rejected after game over")
	}
	if _, ok := g.PlaceTower(defs.TowerDartMonkey, 100, 100); ok {
		t.Fatal("placement must be rejected after game over")
	}
}

func TestVictoryAfterFinalWave(t *testing.T) {
	g := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.Victory, rec)
	g.ECS.GameState.Wave = g.Library.Waves.Total - 1
	g.StartNextWave()
	g.ECS.Wave.Queue = nil

	g.Update(1)
	if g.ECS.GameState.Phase != component.PhaseVictory || rec.count(event.Victory) != 1 {
		t.Fatalf("phase %v", g.ECS.GameState.Phase)
	}
}

func TestStartBeyondTotalIsVictory(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameState.Wave = g.Library.Waves.Total
	if g.StartNextWave() {
		t.Fatal("no wave beyond the total")
	}
	if g.ECS.GameState.Phase != component.PhaseVictory {
		t.Fatal("phase must be victory")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()
	first := append([]component.WaveEntry(nil), g.ECS.Wave.Queue...)
	g.PlaceTower(defs.TowerDartMonkey, 300, 300)
	g.Update(1)
	g.ECS.GameState.Lives = 0
	g.StateSystem.EnterGameOver()

	g.Restart()
	s := g.ECS.GameState
	if s.Gold != 650 || s.Lives != 100 || s.Wave != 0 || s.Phase != component.PhasePlaying || s.WaveActive {
		t.Fatalf("state after restart %+v", s)
	}
	if len(g.ECS.Towers)+len(g.ECS.Balloons)+len(g.ECS.Projectiles)+len(g.ECS.Particles) != 0 {
		t.Fatal("stores must be empty after restart")
	}
	g.StartNextWave()
	for i := range first {
		if first[i] != g.ECS.Wave.Queue[i] {
			t.Fatal("restart must replay the same seed")
		}
	}
}

func TestStepUsesFreshBaselineAfterPause(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()
	start := time.Unix(1000, 0)

	g.Step(start) // базовая точка, dt = 0: первый шарик появляется
	if len(g.ECS.Balloons) != 1 || g.ECS.Balloons[0].DistanceTravelled != 0 {
		t.Fatal("first step must use dt = 0")
	}
	g.Step(start.Add(time.Second / 60))
	d := g.ECS.Balloons[0].DistanceTravelled
	if d <= 0 {
		t.Fatal("balloon must move on the second step")
	}

	g.TogglePause()
	g.Step(start.Add(10 * time.Second))
	g.TogglePause()
	g.Step(start.Add(20 * time.Second))
	if g.ECS.Balloons[0].DistanceTravelled != d {
		t.Fatal("resuming must not jump forward")
	}
	g.Step(start.Add(20*time.Second + time.Hour))
	want := d + g.ECS.Balloons[0].Speed*config.MaxDeltaFrames
	if got := g.ECS.Balloons[0].DistanceTravelled; got != want {
		t.Fatalf("distance = %f, want clamped step to %f", got, want)
	}
}

func TestAdvisorSummary(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameState.Gold = 2000
	g.PlaceTower(defs.TowerDartMonkey, 100, 100)
	g.PlaceTower(defs.TowerDartMonkey, 200, 100)
	g.PlaceTower(defs.TowerIce, 300, 100)

	s := g.AdvisorSummary()
	if s.Towers[defs.TowerDartMonkey] != 2 || s.Towers[defs.TowerIce] != 1 || s.Gold != 2000-850 {
		t.Fatalf("summary %+v", s)
	}
}

func TestSystemLogLinesCarrySessionPrefix(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(io.Discard) })

	g := NewGame(defs.Default(), 3)
	prefix := "[" + g.SessionID[:8] + "] "
	g.StartNextWave()
	g.StateSystem.EnterVictory()

	for _, want := range []string{"wave 1 started", "victory: all"} {
		found := false
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, want) {
				found = true
				if !strings.HasPrefix(line, prefix) {
					t.Errorf("line %q lacks session prefix %q", line, prefix)
				}
			}
		}
		if !found {
			t.Errorf("no %q line in log:\n%s", want, buf.String())
		}
	}
}
