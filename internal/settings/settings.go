// internal/settings/settings.go
package settings

import (
	"fmt"
	"log"

	"balloon-tower-defense/internal/config"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "balloon_tower_defense"

	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings — пользовательские настройки, не состояние партии.
type Settings struct {
	Speed          float64 `yaml:"speed"`
	SoundEnabled   bool    `yaml:"soundEnabled"`
	SoundVolume    float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	AdvisorEnabled bool    `yaml:"advisorEnabled"`
	Fullscreen     bool    `yaml:"fullscreen"`
}

func Defaults() *Settings {
	return &Settings{
		Speed:          1,
		SoundEnabled:   true,
		SoundVolume:    0.6,
		AdvisorEnabled: true,
	}
}

// Manager хранит настройки через gdata. Без gdata работает только в памяти.
type Manager struct {
	store    *gdata.Manager // nil — деградированный режим
	settings *Settings
}

// Open creates a gdata-backed manager, falling back to memory-only mode
// when the platform storage is unavailable.
func Open() *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[settings] storage unavailable: %v (settings will not persist)", err)
		store = nil
	}
	return NewManager(store)
}

func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Defaults()}
	if err := m.Load(); err != nil {
		log.Printf("[settings] Warning: %v (using defaults)", err)
	}
	return m
}

func (m *Manager) Load() error {
	m.settings = Defaults()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := Defaults()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.normalize()
	m.settings = loaded
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return *m.settings
}

// Persistent reports whether settings survive a restart of the program.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

func (m *Manager) SetSpeed(speed float64) {
	m.settings.Speed = speed
	m.settings.normalize()
}

func (m *Manager) SetSoundEnabled(enabled bool) {
	m.settings.SoundEnabled = enabled
}

func (m *Manager) SetSoundVolume(volume float64) {
	m.settings.SoundVolume = volume
	m.settings.normalize()
}

func (m *Manager) SetAdvisorEnabled(enabled bool) {
	m.settings.AdvisorEnabled = enabled
}

func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

// normalize чинит значения из старого или испорченного файла.
func (s *Settings) normalize() {
	valid := false
	for _, v := range config.GameSpeeds {
		if s.Speed == v {
			valid = true
			break
		}
	}
	if !valid {
		s.Speed = config.GameSpeeds[0]
	}
	if s.SoundVolume < 0 {
		s.SoundVolume = 0
	} else if s.SoundVolume > 1 {
		s.SoundVolume = 1
	}
}
