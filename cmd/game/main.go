// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"balloon-tower-defense/internal/advisor"
	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/audio"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/settings"
	"balloon-tower-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update передаёт текущее время; dt считает и ограничивает часы движка.
func (a *AppGame) Update() error {
	a.stateMachine.Update(time.Now())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "path to a definitions YAML file (embedded defaults if empty)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	pprofAddr := flag.String("pprof", "", "address for the pprof server, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib := defs.Default()
	if *defsPath != "" {
		loaded, err := defs.LoadLibrary(*defsPath)
		if err != nil {
			log.Fatal(err)
		}
		lib = loaded
	}

	prefs := settings.Open()
	userSettings := prefs.Get()

	game := app.NewGame(lib, *seed)
	game.SetSpeed(userSettings.Speed)

	sound := audio.NewSoundManager(userSettings.SoundVolume)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
		sound = nil
	} else {
		sound.SetEnabled(userSettings.SoundEnabled)
		sound.Subscribe(game.EventDispatcher)
		defer sound.Close()
	}

	services := state.Services{
		Advisor:  newAdvisor(lib),
		Settings: prefs,
		Sound:    sound,
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game, services))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Balloon Tower Defense")
	ebiten.SetFullscreen(userSettings.Fullscreen)
	ebiten.SetTPS(config.FrameRate)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
	if err := prefs.Save(); err != nil {
		log.Printf("failed to save settings: %v", err)
	}
}

// newAdvisor берёт сетевую модель, если задан ключ, иначе локальные правила.
func newAdvisor(lib *defs.Library) *advisor.Advisor {
	client, err := advisor.NewGenerativeClientFromEnv()
	if err != nil {
		log.Printf("advisor: %v, using built-in rules", err)
		return advisor.New(advisor.RuleSuggester{Library: lib}, advisor.DefaultTimeout)
	}
	return advisor.New(client, advisor.DefaultTimeout)
}
