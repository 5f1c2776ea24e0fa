package interfaces

import (
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/types"
)

// Game — команды игрока, которые фронтенды вызывают между тиками.
// Реализуется *app.Game; виджеты UI зависят только от этого интерфейса.
type Game interface {
	StartNextWave() bool
	CycleSpeed() float64
	TogglePause() bool
	SelectTower(id types.EntityID) bool
	BeginPlacing(towerType defs.TowerType) bool
	CancelPlacing()
	PlaceTower(towerType defs.TowerType, x, y float64) (types.EntityID, bool)
	UpgradeTower(id types.EntityID) bool
	SellTower(id types.EntityID) bool
	Restart()
}
