// internal/app/tower_management.go
package app

import (
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/event"
	"balloon-tower-defense/internal/types"
	"balloon-tower-defense/internal/utils"
	"balloon-tower-defense/pkg/pathgeom"
)

// CanPlace reports whether a tower of towerType could be placed at (x, y) now.
func (g *Game) CanPlace(towerType defs.TowerType, x, y float64) bool {
	def, ok := g.Library.Towers[towerType]
	if !ok || g.ECS.GameState.Phase.Terminal() {
		return false
	}
	return g.Library.Field.Contains(x, y) && g.ECS.GameState.Gold >= def.Cost
}

// PlaceTower ставит башню нулевого уровня и выделяет её.
// При нехватке золота или точке вне поля ничего не меняется.
func (g *Game) PlaceTower(towerType defs.TowerType, x, y float64) (types.EntityID, bool) {
	if !g.CanPlace(towerType, x, y) {
		return 0, false
	}
	def := g.Library.Towers[towerType]
	state := g.ECS.GameState

	tower := &component.Tower{
		ID:            g.ECS.NewEntity(),
		Type:          towerType,
		Position:      pathgeom.Point{X: x, Y: y},
		Range:         def.Range,
		TotalInvested: def.Cost,
	}
	g.ECS.Towers = append(g.ECS.Towers, tower)
	state.Gold -= def.Cost
	state.PlacingTowerType = ""
	state.SelectedTowerID = tower.ID

	g.logf("placed %s #%d at (%.0f, %.0f), gold %d", towerType, tower.ID, x, y, state.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: g.towerData(tower)})
	return tower.ID, true
}

// UpgradeTower покупает следующее улучшение. Урон и перезарядка
// пересчитываются при выстреле, здесь меняется только радиус.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	if g.ECS.GameState.Phase.Terminal() {
		return false
	}
	tower, ok := g.ECS.TowerByID(id)
	if !ok {
		return false
	}
	upgrade, ok := g.Library.Towers[tower.Type].NextUpgrade(tower.Level)
	if !ok {
		return false
	}
	state := g.ECS.GameState
	if state.Gold < upgrade.Cost {
		return false
	}

	state.Gold -= upgrade.Cost
	tower.Level++
	tower.Range += upgrade.Range
	tower.TotalInvested += upgrade.Cost

	g.logf("upgraded %s #%d to level %d (%s), gold %d", tower.Type, tower.ID, tower.Level, upgrade.Name, state.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: g.towerData(tower)})
	return true
}

// SellTower возвращает floor(sell_ratio * вложено) и убирает башню.
func (g *Game) SellTower(id types.EntityID) bool {
	if g.ECS.GameState.Phase.Terminal() {
		return false
	}
	tower, ok := g.ECS.TowerByID(id)
	if !ok {
		return false
	}
	refund := g.SellValue(tower)
	g.ECS.RemoveTower(id)

	state := g.ECS.GameState
	state.Gold += refund
	if state.SelectedTowerID == id {
		state.SelectedTowerID = 0
	}

	g.logf("sold %s #%d for %d, gold %d", tower.Type, tower.ID, refund, state.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: g.towerData(tower)})
	return true
}

// SellValue is the refund SellTower would give for tower.
func (g *Game) SellValue(tower *component.Tower) int {
	return utils.FloorInt(float64(tower.TotalInvested) * g.Library.Economy.SellRatio)
}

// TowerAt returns the first tower whose center is within the pick radius.
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	p := pathgeom.Point{X: x, Y: y}
	for _, t := range g.ECS.Towers {
		if pathgeom.Distance(p, t.Position) < config.TowerPickRadius {
			return t.ID, true
		}
	}
	return 0, false
}

func (g *Game) towerData(t *component.Tower) event.TowerData {
	return event.TowerData{ID: t.ID, Type: t.Type, Level: t.Level, Gold: g.ECS.GameState.Gold}
}
