// internal/ui/shop_panel.go
package ui

import (
	"fmt"
	"image"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/interfaces"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// ShopPanel — список башен для покупки в правой панели.
type ShopPanel struct {
	X, Y    int
	Width   int
	types   []defs.TowerType
	costs   map[defs.TowerType]int
	buttons map[defs.TowerType]*Button
	placing defs.TowerType
}

// NewShopPanel строит по кнопке на каждый тип башни в порядке магазина.
func NewShopPanel(x, y, width int, towers map[defs.TowerType]defs.TowerDefinition) *ShopPanel {
	p := &ShopPanel{
		X:       x,
		Y:       y,
		Width:   width,
		costs:   make(map[defs.TowerType]int, len(towers)),
		buttons: make(map[defs.TowerType]*Button, len(towers)),
	}
	row := 0
	for _, towerType := range defs.AllTowerTypes {
		def, ok := towers[towerType]
		if !ok {
			continue
		}
		top := y + row*(config.ButtonHeight+config.ButtonGap)
		btn := NewButton(image.Rect(x, top, x+width, top+config.ButtonHeight), fmt.Sprintf("%d. %s  $%d", row+1, def.Name, def.Cost))
		btn.Accent = config.TowerColors[string(towerType)]
		p.types = append(p.types, towerType)
		p.costs[towerType] = def.Cost
		p.buttons[towerType] = btn
		row++
	}
	return p
}

// Update включает только те кнопки, на которые хватает золота.
func (p *ShopPanel) Update(gold int, terminal bool, placing defs.TowerType) {
	p.placing = placing
	for towerType, btn := range p.buttons {
		btn.Enabled = !terminal && gold >= p.costs[towerType]
		btn.BgColor = config.ButtonColor
		if towerType == placing {
			btn.BgColor = config.ButtonHover
		}
	}
}

// Contains reports whether (x, y) falls on any shop button.
func (p *ShopPanel) Contains(x, y int) bool {
	_, ok := p.buttonAt(x, y)
	return ok
}

func (p *ShopPanel) buttonAt(x, y int) (defs.TowerType, bool) {
	for _, towerType := range p.types {
		if p.buttons[towerType].Contains(x, y) {
			return towerType, true
		}
	}
	return "", false
}

// HandleClick выбирает башню для постановки. Повторный клик по той же
// башне отменяет выбор.
func (p *ShopPanel) HandleClick(x, y int, game interfaces.Game) bool {
	towerType, ok := p.buttonAt(x, y)
	if !ok {
		return false
	}
	if towerType == p.placing {
		game.CancelPlacing()
		return true
	}
	if p.buttons[towerType].Enabled {
		game.BeginPlacing(towerType)
	}
	return true
}

// TypeForHotkey maps 1..N to the shop order.
func (p *ShopPanel) TypeForHotkey(n int) (defs.TowerType, bool) {
	if n < 1 || n > len(p.types) {
		return "", false
	}
	return p.types[n-1], true
}

func (p *ShopPanel) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	render.DrawText(screen, "Towers", p.X, p.Y-6, config.TextLightColor)
	for _, towerType := range p.types {
		p.buttons[towerType].Draw(screen, cursorX, cursorY)
	}
}
