// component/movement.go
package component

import "balloon-tower-defense/pkg/pathgeom"

// Position — компонент позиции
type Position = pathgeom.Point

// Velocity — скорость в пикселях за кадр
type Velocity struct {
	X, Y float64
}
