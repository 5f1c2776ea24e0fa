package defs

// WaveTier описывает пару цветов для волн с номером больше Above.
type WaveTier struct {
	Above     int          `yaml:"above"`
	Strong    BalloonColor `yaml:"strong"`
	Weak      BalloonColor `yaml:"weak"`
	Threshold float64      `yaml:"threshold"` // roll > Threshold => Strong
}

// WaveDefinition is the difficulty curve used to build spawn queues.
type WaveDefinition struct {
	Total        int          `yaml:"total"`
	BaseCount    int          `yaml:"base_count"`
	CountPerWave int          `yaml:"count_per_wave"`
	DelayBase    float64      `yaml:"delay_base"`   // кадры
	DelayJitter  float64      `yaml:"delay_jitter"` // кадры
	DefaultColor BalloonColor `yaml:"default_color"`
	Tiers        []WaveTier   `yaml:"tiers"` // по убыванию Above
}

// CountFor returns the number of balloons queued for wave.
func (w WaveDefinition) CountFor(wave int) int {
	return w.BaseCount + w.CountPerWave*wave
}

// TierFor returns the first tier that applies to wave.
func (w WaveDefinition) TierFor(wave int) (WaveTier, bool) {
	for _, tier := range w.Tiers {
		if wave > tier.Above {
			return tier, true
		}
	}
	return WaveTier{}, false
}
