// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/interfaces"
	"balloon-tower-defense/internal/types"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelMargin = 5
	lineHeight  = 16
)

// TowerInfo — всё, что панель показывает о выбранной башне.
type TowerInfo struct {
	Title        string
	Lines        []string
	UpgradeLabel string
	CanUpgrade   bool
	SellLabel    string
}

// DescribeTower собирает текст панели для башни.
func DescribeTower(t component.Tower, def defs.TowerDefinition, sellValue, gold int) TowerInfo {
	stats := def.StatsAt(t.Level)
	info := TowerInfo{
		Title: fmt.Sprintf("%s  Lv %d/%d", def.Name, t.Level, defs.MaxTowerLevel),
		Lines: []string{
			fmt.Sprintf("Damage: %d", stats.Damage),
			fmt.Sprintf("Reload: %.0f frames", stats.Cooldown),
			fmt.Sprintf("Range: %.0f", t.Range),
		},
		SellLabel: fmt.Sprintf("Sell +$%d", sellValue),
	}
	if def.AoE > 0 {
		info.Lines = append(info.Lines, fmt.Sprintf("Splash: %.0f", def.AoE))
	}
	info.Lines = append(info.Lines, fmt.Sprintf("Invested: $%d", t.TotalInvested))

	if upgrade, ok := def.NextUpgrade(t.Level); ok {
		info.UpgradeLabel = fmt.Sprintf("Upgrade: %s $%d", upgrade.Name, upgrade.Cost)
		info.CanUpgrade = gold >= upgrade.Cost
	} else {
		info.UpgradeLabel = "Max level"
	}
	return info
}

// InfoPanel displays information about the selected tower.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	X, Width      int
	bottom        float64
	currentY      float64
	targetY       float64
	info          TowerInfo
	UpgradeButton *Button
	SellButton    *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(x, width, bottom int) *InfoPanel {
	return &InfoPanel{
		X:             x,
		Width:         width,
		bottom:        float64(bottom),
		currentY:      float64(bottom),
		targetY:       float64(bottom),
		UpgradeButton: NewButton(image.Rectangle{}, ""),
		SellButton:    NewButton(image.Rectangle{}, ""),
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID, info TowerInfo) {
	p.TargetEntity = entityID
	p.info = info
	p.IsVisible = true
	p.targetY = p.bottom - config.InfoPanelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.bottom
}

// Update двигает панель к цели и раскладывает кнопки.
func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < config.PanelAnimSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += config.PanelAnimSpeed
		} else {
			p.currentY -= config.PanelAnimSpeed
		}

		if p.currentY >= p.bottom {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}

	// Две кнопки во всю ширину, одна под другой
	btnWidth := p.Width - 4*panelMargin
	left := p.X + 2*panelMargin
	sellTop := int(p.currentY) + config.InfoPanelHeight - config.ButtonHeight - 3*panelMargin
	upgradeTop := sellTop - config.ButtonHeight - panelMargin
	p.UpgradeButton.Rect = image.Rect(left, upgradeTop, left+btnWidth, upgradeTop+config.ButtonHeight)
	p.SellButton.Rect = image.Rect(left, sellTop, left+btnWidth, sellTop+config.ButtonHeight)
	p.UpgradeButton.Text = p.info.UpgradeLabel
	p.UpgradeButton.Enabled = p.info.CanUpgrade
	p.SellButton.Text = p.info.SellLabel
	p.SellButton.Enabled = true
}

// Contains — клик внутри видимой части панели.
func (p *InfoPanel) Contains(x, y int) bool {
	if !p.IsVisible {
		return false
	}
	return x >= p.X && x < p.X+p.Width && float64(y) >= p.currentY && float64(y) < p.bottom
}

// HandleClick обрабатывает клики по кнопкам улучшения и продажи.
func (p *InfoPanel) HandleClick(x, y int, game interfaces.Game) bool {
	if !p.Contains(x, y) || p.TargetEntity == 0 {
		return false
	}
	switch {
	case p.UpgradeButton.IsClicked(x, y):
		game.UpgradeTower(p.TargetEntity)
	case p.SellButton.IsClicked(x, y):
		if game.SellTower(p.TargetEntity) {
			p.Hide() // Скрываем панель после продажи
		}
	}
	return true
}

func (p *InfoPanel) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	if !p.IsVisible && p.currentY >= p.bottom {
		return
	}

	x, y := float32(p.X+panelMargin), float32(p.currentY)+panelMargin
	w, h := float32(p.Width-2*panelMargin), float32(config.InfoPanelHeight-2*panelMargin)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, true)

	if p.TargetEntity == 0 {
		return
	}

	textX := int(x) + 10
	textY := int(y) + 20
	render.DrawText(screen, p.info.Title, textX, textY, config.GoldColor)
	for _, line := range p.info.Lines {
		textY += lineHeight
		render.DrawText(screen, line, textX, textY, config.TextLightColor)
	}

	p.UpgradeButton.Draw(screen, cursorX, cursorY)
	p.SellButton.Draw(screen, cursorX, cursorY)
}
