package audio

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns audio disabled at a moderate volume
// Kiosks opt in through the config file
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   48000,
		EffectVolumes: [soundTypeCount]float64{
			SoundMunch:   0.6,
			SoundFanfare: 0.8,
		},
	}
}

// Normalize clamps volumes to [0,1] and restores a zero sample rate
func (c *AudioConfig) Normalize() {
	c.MasterVolume = clamp01(c.MasterVolume)
	for i := range c.EffectVolumes {
		c.EffectVolumes[i] = clamp01(c.EffectVolumes[i])
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultAudioConfig().SampleRate
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
