// pkg/pathgeom/path.go
package pathgeom

import "math"

// Point — точка на игровом поле в пикселях.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TotalLength суммирует длины всех сегментов ломаной.
func TotalLength(points []Point) float64 {
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += Distance(points[i], points[i+1])
	}
	return total
}

// PositionAt maps an arc-length distance onto the polyline.
// Distances past the end clamp to the last waypoint, negative ones to the first.
func PositionAt(points []Point, distance float64) Point {
	if len(points) == 0 {
		return Point{}
	}
	if distance <= 0 {
		return points[0]
	}

	remaining := distance
	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]
		segment := Distance(p1, p2)
		if segment == 0 {
			continue
		}
		if remaining <= segment {
			ratio := remaining / segment
			return Point{
				X: p1.X + (p2.X-p1.X)*ratio,
				Y: p1.Y + (p2.Y-p1.Y)*ratio,
			}
		}
		remaining -= segment
	}
	return points[len(points)-1]
}

// CirclesOverlap — строгая проверка: касание не считается столкновением.
func CirclesOverlap(c1 Point, r1 float64, c2 Point, r2 float64) bool {
	return Distance(c1, c2) < r1+r2
}

// Path is an immutable polyline with its length computed once.
type Path struct {
	points []Point
	length float64
}

// NewPath copies the waypoints and precomputes the total length.
func NewPath(points []Point) *Path {
	if len(points) < 2 {
		panic("pathgeom: path needs at least two points")
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Path{points: cp, length: TotalLength(cp)}
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)
	return cp
}

func (p *Path) Length() float64 {
	return p.length
}

func (p *Path) PositionAt(distance float64) Point {
	return PositionAt(p.points, distance)
}

// Start returns the first waypoint.
func (p *Path) Start() Point {
	return p.points[0]
}

// End returns the last waypoint.
func (p *Path) End() Point {
	return p.points[len(p.points)-1]
}
