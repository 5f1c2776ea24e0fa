// internal/audio/audio.go
package audio

import (
	"math"
	"sync"
	"time"

	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// minPopGap — не чаще одного хлопка за этот интервал, иначе волна шипит.
const minPopGap = 40 * time.Millisecond

// popPitch — чем крепче шарик, тем ниже хлопок.
var popPitch = map[defs.BalloonColor]float64{
	defs.ColorRed:    880,
	defs.ColorBlue:   784,
	defs.ColorGreen:  698,
	defs.ColorYellow: 622,
	defs.ColorPink:   554,
}

// SoundManager проигрывает короткие звуки на игровые события.
// Подписывается на Dispatcher как обычный слушатель.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	lastPop     time.Time
	now         func() time.Time
	dispatcher  *event.Dispatcher
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: true,
		now:     time.Now,
	}
}

// Initialize открывает аудиоустройство. Ошибка не фатальна: без звука игра идёт дальше.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	sm.enabled = enabled
	sm.mu.Unlock()
}

// Subscribe registers the manager for the events it voices.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	sm.dispatcher = d
	d.SubscribeAll(sm, event.BalloonPopped, event.BalloonEscaped, event.TowerPlaced,
		event.GameOver, event.Victory)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.BalloonPopped:
		data, _ := e.Data.(event.BalloonPoppedData)
		freq, ok := popPitch[data.Color]
		if !ok {
			freq = popPitch[defs.ColorRed]
		}
		sm.play(NewBlip(sampleRate, freq, 40*time.Millisecond), true)
	case event.BalloonEscaped:
		sm.play(NewBlip(sampleRate, 110, 180*time.Millisecond), false)
	case event.TowerPlaced:
		sm.play(NewBlip(sampleRate, 330, 60*time.Millisecond), false)
	case event.GameOver:
		sm.play(NewBlip(sampleRate, 90, 600*time.Millisecond), false)
	case event.Victory:
		sm.play(beep.Seq(
			NewBlip(sampleRate, 523, 120*time.Millisecond),
			NewBlip(sampleRate, 659, 120*time.Millisecond),
			NewBlip(sampleRate, 784, 240*time.Millisecond),
		), false)
	}
}

func (sm *SoundManager) play(s beep.Streamer, isPop bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || !sm.enabled {
		return
	}
	if isPop {
		now := sm.now()
		if now.Sub(sm.lastPop) < minPopGap {
			return
		}
		sm.lastPop = now
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// Close unsubscribes from the dispatcher and clears queued sounds.
func (sm *SoundManager) Close() {
	if sm.dispatcher != nil {
		sm.dispatcher.UnsubscribeAll(sm)
		sm.dispatcher = nil
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Blip — синус с быстрым спадом, конечный поток.
type Blip struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func NewBlip(sr beep.SampleRate, freq float64, d time.Duration) *Blip {
	return &Blip{sr: sr, freq: freq, total: sr.N(d)}
}

func (b *Blip) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.total {
		return 0, false
	}
	for i := range samples {
		if b.pos >= b.total {
			return i, true
		}
		t := float64(b.pos) / float64(b.sr)
		envelope := 1 - float64(b.pos)/float64(b.total)
		v := 0.3 * envelope * envelope * math.Sin(2*math.Pi*b.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Blip) Err() error {
	return nil
}

// withVolume масштабирует поток линейным множителем vol. log2(0) = -Inf, поэтому 0 — тишина.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
