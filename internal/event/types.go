// internal/event/types.go
package event

import (
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/types"
	"balloon-tower-defense/pkg/pathgeom"
)

const (
	WaveStarted    EventType = "WaveStarted"    // Волна началась, Data: int (номер)
	WaveEnded      EventType = "WaveEnded"      // Волна закончилась, Data: int (номер)
	BalloonPopped  EventType = "BalloonPopped"  // Data: BalloonPoppedData
	BalloonEscaped EventType = "BalloonEscaped" // Data: int (сколько ушло за тик)
	TowerPlaced    EventType = "TowerPlaced"    // Data: TowerData
	TowerUpgraded  EventType = "TowerUpgraded"  // Data: TowerData
	TowerSold      EventType = "TowerSold"      // Data: TowerData
	GameOver       EventType = "GameOver"
	Victory        EventType = "Victory"
	GameRestarted  EventType = "GameRestarted"
)

type BalloonPoppedData struct {
	ID       types.EntityID
	Color    defs.BalloonColor
	Position pathgeom.Point
}

type TowerData struct {
	ID    types.EntityID
	Type  defs.TowerType
	Level int
	Gold  int // золото после операции
}
