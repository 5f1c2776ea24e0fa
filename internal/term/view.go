// internal/term/view.go
package term

import (
	"fmt"
	"image/color"

	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/pathgeom"

	"github.com/gdamore/tcell/v2"
)

// SidebarWidth — колонки справа под HUD и магазин.
const SidebarWidth = 28

var towerGlyphs = map[string]rune{
	"DART_MONKEY":  'D',
	"TACK_SHOOTER": 'T',
	"CANNON":       'C',
	"ICE_TOWER":    'I',
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Grid переводит пиксели поля в клетки терминала и обратно.
type Grid struct {
	Cols, Rows int
}

// Cell returns the terminal cell covering a field point.
func (g Grid) Cell(p pathgeom.Point) (int, int) {
	col := int(p.X * float64(g.Cols) / config.FieldWidth)
	row := int(p.Y * float64(g.Rows) / config.FieldHeight)
	return min(max(col, 0), g.Cols-1), min(max(row, 0), g.Rows-1)
}

// Point returns the field point at the center of a cell.
func (g Grid) Point(col, row int) pathgeom.Point {
	return pathgeom.Point{
		X: (float64(col) + 0.5) * config.FieldWidth / float64(g.Cols),
		Y: (float64(row) + 0.5) * config.FieldHeight / float64(g.Rows),
	}
}

// View рисует снимок в tcell.Screen.
type View struct {
	screen     tcell.Screen
	grid       Grid
	points     []pathgeom.Point
	pathLength float64
	path       map[[2]int]struct{} // клетки дороги, пересчитываются при ресайзе
}

func NewView(screen tcell.Screen, path []pathgeom.Point) *View {
	v := &View{screen: screen, points: path, pathLength: pathgeom.TotalLength(path)}
	v.Resize()
	return v
}

// Resize пересчитывает сетку по размеру экрана.
func (v *View) Resize() {
	w, h := v.screen.Size()
	v.grid = Grid{Cols: max(w-SidebarWidth, 1), Rows: max(h-1, 1)}
	v.path = make(map[[2]int]struct{})
	if len(v.points) < 2 {
		return
	}
	step := config.FieldWidth / float64(v.grid.Cols) / 2
	for d := 0.0; d <= v.pathLength; d += step {
		col, row := v.grid.Cell(pathgeom.PositionAt(v.points, d))
		v.path[[2]int{col, row}] = struct{}{}
	}
}

func (v *View) Grid() Grid {
	return v.grid
}

func (v *View) put(col, row int, r rune, style tcell.Style) {
	v.screen.SetContent(col, row, r, nil, style)
}

func (v *View) text(col, row int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		v.put(col+i, row, r, style)
		i++
	}
}

// Draw рисует поле, сущности, боковую панель и строку статуса.
func (v *View) Draw(snap app.Snapshot, cursorCol, cursorRow int, status string) {
	v.screen.Clear()
	grass := tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	road := tcell.StyleDefault.Background(rgb(config.PathColor))

	for row := 0; row < v.grid.Rows; row++ {
		for col := 0; col < v.grid.Cols; col++ {
			style := grass
			if _, ok := v.path[[2]int{col, row}]; ok {
				style = road
			}
			v.put(col, row, ' ', style)
		}
	}

	for _, t := range snap.Towers {
		col, row := v.grid.Cell(t.Position)
		style := tcell.StyleDefault.Background(rgb(config.TowerColors[string(t.Type)])).Foreground(tcell.ColorWhite).Bold(true)
		if t.ID == snap.State.SelectedTowerID {
			style = style.Reverse(true)
		}
		v.put(col, row, towerGlyphs[string(t.Type)], style)
	}
	for _, b := range snap.Balloons {
		col, row := v.grid.Cell(b.Position)
		glyph := 'o'
		if b.Slowed() {
			glyph = '*'
		}
		v.put(col, row, glyph, road.Foreground(rgb(config.BalloonColors[string(b.Color)])).Bold(true))
	}
	for _, p := range snap.Projectiles {
		col, row := v.grid.Cell(p.Position)
		v.put(col, row, '.', tcell.StyleDefault.Foreground(rgb(p.Color)))
	}

	v.put(cursorCol, cursorRow, '+', tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))
	v.drawSidebar(snap)
	v.text(0, v.grid.Rows, status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	v.screen.Show()
}

type hudLine struct {
	s     string
	style tcell.Style
}

func (v *View) drawSidebar(snap app.Snapshot) {
	x := v.grid.Cols + 1
	plain := tcell.StyleDefault
	state := snap.State

	lines := []hudLine{
		{fmt.Sprintf("Gold  $%d", state.Gold), plain.Foreground(rgb(config.GoldColor))},
		{fmt.Sprintf("Lives %d", state.Lives), plain.Foreground(rgb(config.LivesColor))},
		{fmt.Sprintf("Wave  %d/%d", state.Wave, snap.TotalWaves), plain},
		{fmt.Sprintf("Speed x%g", state.Speed), plain},
	}
	if state.WaveActive {
		lines = append(lines, hudLine{fmt.Sprintf("%d to spawn", snap.QueueLength), plain})
	}
	if state.PlacingTowerType != "" {
		lines = append(lines, hudLine{"placing " + string(state.PlacingTowerType), plain.Foreground(tcell.ColorAqua)})
	}
	if tower, ok := snap.SelectedTower(); ok {
		lines = append(lines, hudLine{fmt.Sprintf("#%d %c L%d", tower.ID, towerGlyphs[string(tower.Type)], tower.Level), plain.Bold(true)})
	}
	switch {
	case state.Phase.Terminal():
		lines = append(lines, hudLine{state.Phase.String(), plain.Bold(true).Foreground(tcell.ColorRed)})
	case state.Paused:
		lines = append(lines, hudLine{"PAUSED", plain.Bold(true)})
	}
	for i, l := range lines {
		v.text(x, i, l.s, l.style)
	}

	help := []string{
		"1-4 buy  enter place",
		"u upgrade  s sell",
		"space wave  f speed",
		"p pause  a advice",
		"r restart  q quit",
	}
	for i, h := range help {
		v.text(x, v.grid.Rows-len(help)+i, h, plain.Dim(true))
	}
}
