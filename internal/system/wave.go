// internal/system/wave.go
package system

import (
	"log"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/entity"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/internal/utils"
)

// WaveSystem строит очередь волны и выпускает шарики по таймеру.
type WaveSystem struct {
	ecs             *entity.ECS
	waves           defs.WaveDefinition
	spawner         *BalloonSpawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	Logger          *log.Logger // по умолчанию глобальный; Game подставляет логгер сессии
}

func NewWaveSystem(ecs *entity.ECS, waves defs.WaveDefinition, spawner *BalloonSpawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		waves:           waves,
		spawner:         spawner,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		Logger:          log.Default(),
	}
}

// BuildQueue составляет очередь для волны: по одному броску кубика на цвет
// каждого шарика и по одному на задержку, начиная со второго.
func (s *WaveSystem) BuildQueue(wave int) *component.Wave {
	count := s.waves.CountFor(wave)
	queue := make([]component.WaveEntry, 0, count)
	tier, tiered := s.waves.TierFor(wave)

	for i := 0; i < count; i++ {
		color := s.waves.DefaultColor
		if tiered {
			if s.rng.Float64() > tier.Threshold {
				color = tier.Strong
			} else {
				color = tier.Weak
			}
		}
		delay := 0.0
		if i > 0 {
			delay = s.rng.Range(s.waves.DelayBase, s.waves.DelayJitter)
		}
		queue = append(queue, component.WaveEntry{Color: color, Delay: delay})
	}
	return &component.Wave{Number: wave, Queue: queue}
}

// Start делает волну активной. Возвращает false, если волна уже идёт.
func (s *WaveSystem) Start(wave int) bool {
	state := s.ecs.GameState
	if state.WaveActive || s.ecs.Wave != nil {
		return false
	}
	s.ecs.Wave = s.BuildQueue(wave)
	state.Wave = wave
	state.WaveActive = true
	s.Logger.Printf("wave %d started: %d balloons queued", wave, len(s.ecs.Wave.Queue))
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave})
	return true
}

// Update выпускает не больше одного шарика за тик.
func (s *WaveSystem) Update(deltaTime float64) {
	state := s.ecs.GameState
	wave := s.ecs.Wave
	if !state.WaveActive || wave == nil {
		return
	}

	if len(wave.Queue) > 0 {
		head := &wave.Queue[0]
		head.Delay -= deltaTime
		if head.Delay <= 0 {
			s.spawner.Spawn(head.Color, 0, 0)
			wave.Queue = wave.Queue[1:]
		}
	} else if s.ecs.LiveBalloons() == 0 {
		state.WaveActive = false
		s.ecs.Wave = nil
		s.Logger.Printf("wave %d cleared", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// QueueLength — сколько шариков ещё ждут появления.
func (s *WaveSystem) QueueLength() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return len(s.ecs.Wave.Queue)
}
