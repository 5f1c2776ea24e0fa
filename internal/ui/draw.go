// internal/ui/draw.go
package ui

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

func pixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	})
	return whitePixel
}

// fillPolygon заливает многоугольник по точкам через DrawTriangles.
func fillPolygon(dst *ebiten.Image, clr color.Color, points ...[2]float32) {
	path := polygon(points)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	paint(dst, vs, is, clr)
}

func strokePolygon(dst *ebiten.Image, width float32, clr color.Color, points ...[2]float32) {
	path := polygon(points)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound})
	paint(dst, vs, is, clr)
}

func polygon(points [][2]float32) *vector.Path {
	path := &vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(p[0], p[1])
		} else {
			path.LineTo(p[0], p[1])
		}
	}
	path.Close()
	return path
}

func paint(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, pixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// pulse — кнопка «вспухает» после клика и за ~0.3 с возвращается к 1.
func pulse(elapsedSeconds float64) float64 {
	if elapsedSeconds < 0 {
		return 1
	}
	return 1.0 + 0.3*math.Exp(-elapsedSeconds*8)
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}
