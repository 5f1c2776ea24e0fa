// internal/sim/sim.go
package sim

import (
	"fmt"
	"os"

	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/internal/types"

	"gopkg.in/yaml.v3"
)

// DefaultMaxWaveFrames — страховка от волны, которая никогда не кончается.
const DefaultMaxWaveFrames = 60 * 60 * 10

// BuildOrder — башня, которую скрипт ставит перед волной BeforeWave.
// Если золота не хватает, попытка повторяется перед следующими волнами.
type BuildOrder struct {
	BeforeWave int            `yaml:"before_wave"`
	Tower      defs.TowerType `yaml:"tower"`
	X          float64        `yaml:"x"`
	Y          float64        `yaml:"y"`
	Upgrades   int            `yaml:"upgrades"`
}

// Script — сценарий застройки для безголового прогона.
type Script struct {
	Name   string       `yaml:"name"`
	Speed  float64      `yaml:"speed"`
	Orders []BuildOrder `yaml:"orders"`
}

// DefaultScript — простая застройка вдоль стандартного пути.
func DefaultScript() Script {
	return Script{
		Name:  "default",
		Speed: 1,
		Orders: []BuildOrder{
			{BeforeWave: 1, Tower: defs.TowerDartMonkey, X: 300, Y: 200, Upgrades: 3},
			{BeforeWave: 1, Tower: defs.TowerDartMonkey, X: 450, Y: 210, Upgrades: 2},
			{BeforeWave: 4, Tower: defs.TowerTackShooter, X: 550, Y: 400, Upgrades: 2},
			{BeforeWave: 6, Tower: defs.TowerCannon, X: 300, Y: 300, Upgrades: 3},
			{BeforeWave: 8, Tower: defs.TowerIce, X: 150, Y: 420, Upgrades: 1},
			{BeforeWave: 10, Tower: defs.TowerDartMonkey, X: 780, Y: 300, Upgrades: 3},
			{BeforeWave: 12, Tower: defs.TowerCannon, X: 780, Y: 470, Upgrades: 2},
		},
	}
}

// LoadScript reads a build script from a YAML file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to unmarshal script: %w", err)
	}
	if s.Speed == 0 {
		s.Speed = 1
	}
	if err := s.validate(); err != nil {
		return Script{}, fmt.Errorf("invalid script: %w", err)
	}
	return s, nil
}

func (s Script) validate() error {
	validSpeed := false
	for _, speed := range config.GameSpeeds {
		validSpeed = validSpeed || speed == s.Speed
	}
	if !validSpeed {
		return fmt.Errorf("speed must be one of %v, got %g", config.GameSpeeds, s.Speed)
	}
	for i, o := range s.Orders {
		if !o.Tower.Valid() {
			return fmt.Errorf("order %d: unknown tower %q", i, o.Tower)
		}
		if o.Upgrades < 0 || o.Upgrades > defs.MaxTowerLevel {
			return fmt.Errorf("order %d: upgrades must be within [0,%d]", i, defs.MaxTowerLevel)
		}
		if o.BeforeWave < 1 {
			return fmt.Errorf("order %d: before_wave must be at least 1", i)
		}
	}
	return nil
}

// WaveReport — итог одной волны.
type WaveReport struct {
	Wave    int     `yaml:"wave"`
	Frames  float64 `yaml:"frames"`
	Popped  int     `yaml:"popped"`
	Escaped int     `yaml:"escaped"`
	Gold    int     `yaml:"gold"`
	Lives   int     `yaml:"lives"`
	Towers  int     `yaml:"towers"`
}

// Report — итог прогона.
type Report struct {
	Seed    int64        `yaml:"seed"`
	Script  string       `yaml:"script"`
	Outcome string       `yaml:"outcome"`
	Waves   []WaveReport `yaml:"waves"`
}

type pendingOrder struct {
	BuildOrder
	id       types.EntityID
	upgraded int
}

// Runner прогоняет сессию без окна с фиксированным шагом в один кадр.
type Runner struct {
	game          *app.Game
	script        Script
	pending       []*pendingOrder
	popped        int
	escaped       int
	MaxWaveFrames float64
}

func NewRunner(lib *defs.Library, seed int64, script Script) *Runner {
	r := &Runner{
		game:          app.NewGame(lib, seed),
		script:        script,
		MaxWaveFrames: DefaultMaxWaveFrames,
	}
	for _, o := range script.Orders {
		r.pending = append(r.pending, &pendingOrder{BuildOrder: o})
	}
	r.game.EventDispatcher.SubscribeAll(r, event.BalloonPopped, event.BalloonEscaped)
	return r
}

// Game exposes the simulated session.
func (r *Runner) Game() *app.Game {
	return r.game
}

func (r *Runner) OnEvent(e event.Event) {
	switch e.Type {
	case event.BalloonPopped:
		r.popped++
	case event.BalloonEscaped:
		if n, ok := e.Data.(int); ok {
			r.escaped += n
		}
	}
}

// Run играет волны до победы или поражения.
func (r *Runner) Run() (Report, error) {
	g := r.game
	report := Report{Seed: g.Rng.Seed(), Script: r.script.Name}
	g.SetSpeed(r.script.Speed)

	for !g.ECS.GameState.Phase.Terminal() {
		next := g.ECS.GameState.Wave + 1
		r.applyOrders(next)
		if !g.StartNextWave() {
			break
		}

		r.popped, r.escaped = 0, 0
		frames := 0.0
		for g.ECS.GameState.WaveActive && !g.ECS.GameState.Phase.Terminal() {
			g.Update(g.ECS.GameState.Speed)
			frames += g.ECS.GameState.Speed
			if frames > r.MaxWaveFrames {
				return report, fmt.Errorf("wave %d did not finish in %.0f frames", next, r.MaxWaveFrames)
			}
		}

		state := g.ECS.GameState
		report.Waves = append(report.Waves, WaveReport{
			Wave:    next,
			Frames:  frames,
			Popped:  r.popped,
			Escaped: r.escaped,
			Gold:    state.Gold,
			Lives:   state.Lives,
			Towers:  len(g.ECS.Towers),
		})
	}

	report.Outcome = g.ECS.GameState.Phase.String()
	return report, nil
}

// applyOrders ставит и улучшает башни, пока хватает золота, в порядке скрипта.
func (r *Runner) applyOrders(wave int) {
	kept := r.pending[:0]
	for _, o := range r.pending {
		if o.BeforeWave > wave {
			kept = append(kept, o)
			continue
		}
		if o.id == 0 {
			id, ok := r.game.PlaceTower(o.Tower, o.X, o.Y)
			if !ok {
				kept = append(kept, o)
				continue
			}
			o.id = id
		}
		for o.upgraded < o.Upgrades && r.game.UpgradeTower(o.id) {
			o.upgraded++
		}
		if o.upgraded < o.Upgrades {
			kept = append(kept, o)
		}
	}
	r.pending = kept
	r.game.SelectTower(0)
}

// Outcome helpers for callers that only need the final phase.
func (r Report) Won() bool {
	return r.Outcome == component.PhaseVictory.String()
}
