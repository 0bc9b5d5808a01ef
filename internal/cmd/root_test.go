package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApplyIntSetting_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		flag    int
		env     string
		setting *int
		want    int
	}{
		{name: "default without setting", flag: 120, want: 120},
		{name: "setting replaces default", flag: 120, setting: intPtr(60), want: 60},
		{name: "explicit flag wins", flag: 90, setting: intPtr(60), want: 90},
		{name: "env wins over setting", flag: 120, env: "45", setting: intPtr(60), want: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(EnvInterval, tt.env)
			}
			flag := tt.flag
			applyIntSetting(&flag, 120, EnvInterval, tt.setting)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestApplyFloatSetting(t *testing.T) {
	freq := 880.0
	applyFloatSetting(&freq, 880, EnvToneFrequency, floatPtr(440))
	assert.Equal(t, 440.0, freq)
}

func TestApplyBoolSetting(t *testing.T) {
	flag := false
	applyBoolSetting(&flag, "", boolPtr(true))
	assert.True(t, flag)

	flag = true
	applyBoolSetting(&flag, "", boolPtr(false))
	assert.True(t, flag, "settings cannot turn off a flag given on the command line")

	flag = false
	applyBoolSetting(&flag, "", nil)
	assert.False(t, flag)
}
