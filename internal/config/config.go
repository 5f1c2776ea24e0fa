// internal/config/config.go
package config

import "image/color"

const (
	FieldWidth   = 1000
	FieldHeight  = 650
	PanelWidth   = 260 // правая панель магазина
	ScreenWidth  = FieldWidth + PanelWidth
	ScreenHeight = FieldHeight

	FrameRate      = 60.0 // кадров в секунду, единица времени симуляции
	MaxDeltaFrames = 3.6  // 0.06 s, как и прежний MaxDeltaTime
	ClickCooldown  = 150  // ms

	SlowDuration = 90.0 // кадров
	SlowFactor   = 0.5

	ProjectileSpeed       = 10.0 // px за кадр
	IceSpeedFactor        = 0.8
	ProjectileRangeFactor = 1.5
	ProjectileRadius      = 4.0
	CannonballRadius      = 8.0
	IceBoltRadius         = 6.0

	DartSpreadAngle     = 0.2 // рад, второй дротик на 3 уровне
	TackCount           = 8
	TackCountUpgraded   = 12
	MultiShotLevel      = 3
	SplitStagger        = 10.0 // px между двумя дочерними шариками
	TowerRadius         = 15.0
	TowerPickRadius     = 30.0 // клик ближе этого выбирает башню
	PathStrokeWidth     = 40.0
	PopParticleCount    = 6
	PopParticleLife     = 20.0
	PopParticleSpeed    = 2.0
	PopParticleMinSize  = 3.0
	PopParticleSizeSpan = 3.0

	ExplosionParticleCount    = 15
	ExplosionParticleLife     = 30.0
	ExplosionParticleSpeed    = 4.0
	ExplosionParticleMinSize  = 5.0
	ExplosionParticleSizeSpan = 5.0

	SpeedButtonSize = 18.0
	ButtonHeight    = 36
	ButtonGap       = 8
	TextCharWidth   = 7
	TextLineHeight  = 16

	// Раскладка правой панели, X отсчитывается от PanelX
	PanelX          = FieldWidth
	PanelPadding    = 12
	GoldY           = 24
	LivesY          = 44
	WaveY           = 78
	ControlsY       = 112
	IndicatorRadius = 18.0
	ShopY           = 144
	AdvisorY        = 330
	InfoPanelHeight = 230
	PanelAnimSpeed  = 10.0 // px за кадр интерфейса
)

// GameSpeeds — допустимые множители скорости, по кругу для кнопки.
var GameSpeeds = []float64{1, 2, 4}

var (
	BackgroundColor  = color.RGBA{86, 148, 64, 255}
	PathColor        = color.RGBA{196, 164, 110, 255}
	PanelColor       = color.RGBA{30, 30, 40, 240}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	DisabledColor    = color.RGBA{90, 90, 100, 220}
	RangeColor       = color.RGBA{60, 60, 60, 60} // премультиплицированные
	InvalidRange     = color.RGBA{80, 19, 19, 80}
	SlowTintColor    = color.RGBA{170, 230, 255, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	ButtonColor      = color.RGBA{60, 60, 80, 255}
	ButtonHover      = color.RGBA{80, 80, 110, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	ExplosionColor   = color.RGBA{255, 140, 0, 255}
	GoldColor        = color.RGBA{255, 215, 0, 255}
	LivesColor       = color.RGBA{255, 80, 80, 255}
	StrokeWidth      = float32(2.0)

	// BalloonColors по имени цвета из defs.
	BalloonColors = map[string]color.RGBA{
		"RED":    {230, 40, 40, 255},
		"BLUE":   {40, 110, 230, 255},
		"GREEN":  {60, 200, 70, 255},
		"YELLOW": {250, 220, 40, 255},
		"PINK":   {255, 120, 190, 255},
	}
	TowerColors = map[string]color.RGBA{
		"DART_MONKEY":  {139, 90, 43, 255},
		"TACK_SHOOTER": {220, 60, 160, 255},
		"CANNON":       {50, 50, 50, 255},
		"ICE_TOWER":    {150, 220, 255, 255},
	}
	ProjectileColors = map[string]color.RGBA{
		"DART_MONKEY":  {30, 30, 30, 255},
		"TACK_SHOOTER": {200, 200, 200, 255},
		"CANNON":       {20, 20, 20, 255},
		"ICE_TOWER":    {170, 230, 255, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
