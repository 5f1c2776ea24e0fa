// internal/component/wave.go
package component

import "balloon-tower-defense/internal/defs"

// WaveEntry — один шарик в очереди волны.
type WaveEntry struct {
	Color defs.BalloonColor
	Delay float64 // кадров до появления, считается от предыдущего
}

// Wave — активная очередь появления.
type Wave struct {
	Number int
	Queue  []WaveEntry
}
