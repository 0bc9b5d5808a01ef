package domain

// Tone describes the interval beep
type Tone struct {
	FrequencyHz float64
	Volume      float64 // peak gain in (0, 1]
}

// Default tone parameters
const (
	DefaultToneFrequencyHz = 880
	DefaultToneVolume      = 0.5
)

// DefaultTone returns the 880 Hz interval beep
func DefaultTone() Tone {
	return Tone{
		FrequencyHz: DefaultToneFrequencyHz,
		Volume:      DefaultToneVolume,
	}
}
