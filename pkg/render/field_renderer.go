// pkg/render/field_renderer.go
package render

import (
	"image/color"
	"math"

	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/component"
	"balloon-tower-defense/pkg/pathgeom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Preview — башня, которую игрок сейчас ставит под курсором.
type Preview struct {
	Active bool
	Type   string
	X, Y   float64
	Range  float64
	Valid  bool
}

// FieldRenderer рисует поле, путь и все сущности из снимка.
type FieldRenderer struct {
	path        []pathgeom.Point
	pathWidth   float32
	width       int
	height      int
	colors      *FieldColors
	entities    *EntityColors
	fillImg     *ebiten.Image
	strokeVs    []ebiten.Vertex
	strokeIs    []uint16
	mapImage    *ebiten.Image // предрендеренный фон: трава и дорога
	towerRadius float32
}

func NewFieldRenderer(path []pathgeom.Point, width, height int, pathWidth, towerRadius float32, colors *FieldColors, entities *EntityColors) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &FieldRenderer{
		path:        path,
		pathWidth:   pathWidth,
		width:       width,
		height:      height,
		colors:      colors,
		entities:    entities,
		fillImg:     fillImg,
		strokeVs:    make([]ebiten.Vertex, 0, 256),
		strokeIs:    make([]uint16, 0, 384),
		mapImage:    ebiten.NewImage(width, height),
		towerRadius: towerRadius,
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *FieldRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	// Кромка чуть светлее дороги, потом сама дорога поверх
	edge := LightenColor(r.colors.PathColor, 40)
	r.strokePath(r.mapImage, r.pathWidth+r.colors.StrokeWidth*2, edge)
	r.strokePath(r.mapImage, r.pathWidth, r.colors.PathColor)
}

func (r *FieldRenderer) strokePath(target *ebiten.Image, width float32, clr color.RGBA) {
	if len(r.path) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(r.path[0].X), float32(r.path[0].Y))
	for _, p := range r.path[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(clr.R) / 255
		r.strokeVs[i].ColorG = float32(clr.G) / 255
		r.strokeVs[i].ColorB = float32(clr.B) / 255
		r.strokeVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw рисует кадр: фон одним вызовом, затем башни, шарики, снаряды и частицы.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, preview Preview) {
	screen.DrawImage(r.mapImage, nil)

	if tower, ok := snap.SelectedTower(); ok {
		r.drawRange(screen, tower.Position.X, tower.Position.Y, tower.Range, r.entities.Range)
	}
	for i := range snap.Towers {
		r.drawTower(screen, &snap.Towers[i], snap.Towers[i].ID == snap.State.SelectedTowerID)
	}
	for i := range snap.Balloons {
		r.drawBalloon(screen, &snap.Balloons[i])
	}
	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), p.Color, true)
	}
	for i := range snap.Particles {
		p := &snap.Particles[i]
		clr := WithAlpha(p.Color, p.Alpha())
		size := float32(p.Size * p.Alpha())
		if size <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), size, clr, true)
	}

	if preview.Active {
		rangeColor := r.entities.Range
		if !preview.Valid {
			rangeColor = r.entities.RangeDenied
		}
		r.drawRange(screen, preview.X, preview.Y, preview.Range, rangeColor)
		ghost := WithAlpha(r.entities.Towers[preview.Type], 0.6)
		vector.DrawFilledCircle(screen, float32(preview.X), float32(preview.Y), r.towerRadius, ghost, true)
	}
}

func (r *FieldRenderer) drawRange(screen *ebiten.Image, x, y, radius float64, clr color.RGBA) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 1, clr, true)
}

func (r *FieldRenderer) drawTower(screen *ebiten.Image, t *component.Tower, selected bool) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	fill := r.entities.Towers[string(t.Type)]
	vector.DrawFilledCircle(screen, x, y, r.towerRadius, fill, true)

	stroke := DarkenColor(fill)
	width := r.colors.StrokeWidth
	if selected {
		stroke = r.entities.Stroke
		width *= 1.5
	}
	vector.StrokeCircle(screen, x, y, r.towerRadius, width, stroke, true)

	// Точки уровня по кругу над башней
	for i := 0; i < t.Level; i++ {
		angle := -math.Pi/2 + float64(i-1)*0.45
		px := x + float32(math.Cos(angle))*(r.towerRadius+5)
		py := y + float32(math.Sin(angle))*(r.towerRadius+5)
		vector.DrawFilledCircle(screen, px, py, 2.5, r.entities.Stroke, true)
	}
}

func (r *FieldRenderer) drawBalloon(screen *ebiten.Image, b *component.Balloon) {
	x, y := float32(b.Position.X), float32(b.Position.Y)
	fill := r.entities.Balloons[string(b.Color)]
	radius := float32(b.Radius)
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	vector.StrokeCircle(screen, x, y, radius, 1, DarkenColor(fill), true)
	// блик
	vector.DrawFilledCircle(screen, x-radius*0.35, y-radius*0.35, radius*0.25, color.RGBA{140, 140, 140, 140}, true)
	if b.Slowed() {
		vector.StrokeCircle(screen, x, y, radius+2, 2, r.entities.SlowTint, true)
	}
}
