package cmd

import (
	"github.com/renato0307/gymtimer/internal/config"
	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/services"
)

// Environment variables accepted by the timer flags
const (
	EnvFlashDuration = "GYMTIMER_FLASH_DURATION"
	EnvInterval      = "GYMTIMER_INTERVAL"
	EnvToneFrequency = "GYMTIMER_TONE_FREQUENCY"
)

const defaultFlashDurationMs = 700

// IntervalFlags are shared by every command that builds a timer
type IntervalFlags struct {
	Interval int `help:"Seconds between automatic set changes" default:"120" env:"GYMTIMER_INTERVAL"`
}

func (f *IntervalFlags) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	applyIntSetting(&f.Interval, services.DefaultIntervalSeconds, EnvInterval, settings.IntervalSeconds)
}

// ToneFlags are shared by every command that plays the interval tone
type ToneFlags struct {
	ToneFrequency float64 `help:"Interval tone frequency in Hz" default:"880" env:"GYMTIMER_TONE_FREQUENCY"`
}

func (f *ToneFlags) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	applyFloatSetting(&f.ToneFrequency, domain.DefaultToneFrequencyHz, EnvToneFrequency, settings.ToneFrequencyHz)
}

func (f *ToneFlags) tone() domain.Tone {
	return domain.Tone{FrequencyHz: f.ToneFrequency, Volume: domain.DefaultToneVolume}
}
