package ui

import (
	"strings"
	"testing"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/types"
)

// recordingGame запоминает вызванные команды.
type recordingGame struct {
	calls   []string
	sellOK  bool
	placing defs.TowerType
}

func (g *recordingGame) StartNextWave() bool { g.calls = append(g.calls, "wave"); return true }
func (g *recordingGame) CycleSpeed() float64 { g.calls = append(g.calls, "speed"); return 2 }
func (g *recordingGame) TogglePause() bool   { g.calls = append(g.calls, "pause"); return true }
func (g *recordingGame) SelectTower(id types.EntityID) bool {
	g.calls = append(g.calls, "select")
	return true
}
func (g *recordingGame) BeginPlacing(t defs.TowerType) bool {
	g.calls = append(g.calls, "place:"+string(t))
	g.placing = t
	return true
}
func (g *recordingGame) CancelPlacing() { g.calls = append(g.calls, "cancel"); g.placing = "" }
func (g *recordingGame) PlaceTower(t defs.TowerType, x, y float64) (types.EntityID, bool) {
	g.calls = append(g.calls, "build")
	return 1, true
}
func (g *recordingGame) UpgradeTower(id types.EntityID) bool {
	g.calls = append(g.calls, "upgrade")
	return true
}
func (g *recordingGame) SellTower(id types.EntityID) bool {
	g.calls = append(g.calls, "sell")
	return g.sellOK
}
func (g *recordingGame) Restart() { g.calls = append(g.calls, "restart") }

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 29: "XXIX", 30: "XXX"}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
	w := NewWaveIndicator(0, 0)
	if got := w.Label(0, 30); got != "Wave - / 30" {
		t.Errorf("Label(0) = %q", got)
	}
	if got := w.Label(12, 30); got != "Wave XII / 30" {
		t.Errorf("Label(12) = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("build more dart monkeys near the first bend", 12, 10)
	for _, l := range lines {
		if len(l) > 12 {
			t.Errorf("line %q longer than 12", l)
		}
	}
	if strings.Join(lines, " ") != "build more dart monkeys near the first bend" {
		t.Errorf("words lost: %q", lines)
	}

	cut := wrapText("one two three four five six seven eight", 5, 2)
	if len(cut) != 2 || !strings.HasSuffix(cut[1], "...") {
		t.Errorf("truncated = %q", cut)
	}
	if got := wrapText("abcdefghij", 4, 5); len(got) != 3 || got[0] != "abcd" || got[2] != "ij" {
		t.Errorf("long word split = %q", got)
	}
	if wrapText("", 10, 3) != nil {
		t.Error("empty text must produce no lines")
	}
}

func TestLivesIndicatorFilled(t *testing.T) {
	li := NewLivesIndicator(0, 0)
	tests := []struct{ lives, want int }{{100, 10}, {91, 10}, {90, 9}, {1, 1}, {0, 0}, {-5, 0}}
	for _, tt := range tests {
		if got := li.Filled(tt.lives, 100); got != tt.want {
			t.Errorf("Filled(%d) = %d, want %d", tt.lives, got, tt.want)
		}
	}
}

func TestDescribeTower(t *testing.T) {
	def := defs.Default().Towers[defs.TowerCannon]
	tower := component.Tower{Type: defs.TowerCannon, Range: def.Range, TotalInvested: def.Cost}

	info := DescribeTower(tower, def, 420, 100)
	if info.CanUpgrade {
		t.Error("100 gold cannot buy the first cannon upgrade")
	}
	if info.SellLabel != "Sell +$420" {
		t.Errorf("sell label = %q", info.SellLabel)
	}
	if !strings.Contains(strings.Join(info.Lines, "|"), "Splash") {
		t.Error("cannon info must mention splash")
	}

	tower.Level = defs.MaxTowerLevel
	info = DescribeTower(tower, def, 0, 1_000_000)
	if info.CanUpgrade || info.UpgradeLabel != "Max level" {
		t.Errorf("max level info = %+v", info)
	}
}

func TestShopPanelClicks(t *testing.T) {
	lib := defs.Default()
	shop := NewShopPanel(0, 0, 200, lib.Towers)
	game := &recordingGame{}

	first := config.ButtonHeight / 2
	second := config.ButtonHeight + config.ButtonGap + config.ButtonHeight/2

	shop.Update(0, false, "")
	if !shop.HandleClick(10, first, game) || len(game.calls) != 0 {
		t.Fatalf("disabled button must consume the click without a command: %v", game.calls)
	}

	shop.Update(10_000, false, "")
	shop.HandleClick(10, second, game)
	if game.placing != defs.TowerTackShooter {
		t.Fatalf("placing = %q", game.placing)
	}
	shop.Update(10_000, false, game.placing)
	shop.HandleClick(10, second, game)
	if game.placing != "" {
		t.Fatal("second click on the same tower must cancel")
	}
	if shop.HandleClick(500, 500, game) {
		t.Fatal("click outside the shop must fall through")
	}

	if tt, ok := shop.TypeForHotkey(3); !ok || tt != defs.TowerCannon {
		t.Errorf("hotkey 3 = %q", tt)
	}
	if _, ok := shop.TypeForHotkey(5); ok {
		t.Error("hotkey 5 has no tower")
	}
}

func TestInfoPanelClicks(t *testing.T) {
	p := NewInfoPanel(0, 260, 650)
	game := &recordingGame{sellOK: true}
	if p.HandleClick(20, 640, game) {
		t.Fatal("hidden panel must not take clicks")
	}

	p.SetTarget(7, TowerInfo{UpgradeLabel: "Upgrade", CanUpgrade: true, SellLabel: "Sell"})
	for i := 0; i < 100; i++ {
		p.Update()
	}
	up, sell := p.UpgradeButton.Rect, p.SellButton.Rect
	if up.Empty() || sell.Min.Y <= up.Min.Y || sell.Max.Y > 650 {
		t.Fatalf("layout: upgrade %v sell %v", up, sell)
	}

	p.HandleClick(up.Min.X+1, up.Min.Y+1, game)
	p.HandleClick(sell.Min.X+1, sell.Min.Y+1, game)
	if strings.Join(game.calls, ",") != "upgrade,sell" {
		t.Fatalf("calls = %v", game.calls)
	}
	for i := 0; i < 100; i++ {
		p.Update()
	}
	if p.IsVisible || p.TargetEntity != 0 {
		t.Fatal("panel must slide away after selling")
	}
}

func TestSpeedButtonSync(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, config.GameSpeeds, config.SpeedButtonColors)
	b.Sync(4)
	if b.CurrentState != 2 {
		t.Fatalf("state = %d", b.CurrentState)
	}
	b.Sync(3) // неизвестная скорость ничего не меняет
	if b.CurrentState != 2 {
		t.Fatalf("state = %d", b.CurrentState)
	}
	if !b.IsClicked(5, 5) || b.IsClicked(40, 0) {
		t.Error("hit test radius is 1.5 x size")
	}
}

func TestPulse(t *testing.T) {
	if p := pulse(0); p < 1.29 || p > 1.31 {
		t.Errorf("pulse(0) = %v", p)
	}
	if p := pulse(5); p > 1.0001 {
		t.Errorf("pulse(5) = %v", p)
	}
}
