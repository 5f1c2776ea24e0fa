// component/tower.go
package component

import (
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/types"
)

type Tower struct {
	ID            types.EntityID
	Type          defs.TowerType
	Position      Position // не меняется после постройки
	Level         int      // 0..defs.MaxTowerLevel
	Cooldown      float64  // кадров до следующего выстрела
	Range         float64
	TotalInvested int // база для возврата при продаже
}
