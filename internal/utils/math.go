// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// FloorInt округляет вниз, как при возврате золота за продажу.
func FloorInt(v float64) int {
	return int(math.Floor(v))
}
