package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/gymtimer/test/integration/harness"
)

func TestSimulate(t *testing.T) {
	tests := []struct {
		name         string
		seconds      int
		interval     int
		wantTriggers []string
		wantFinal    string
	}{
		{
			name:    "default interval",
			seconds: 250,
			wantTriggers: []string{
				"2:00  Exercise 1 • Set 2/4  (cycle 1)",
				"4:00  Exercise 1 • Set 3/4  (cycle 1)",
			},
			wantFinal: "Final: Exercise 1 • Set 3/4, set clock 0:10, total 4:10, cycles completed 0",
		},
		{
			name:     "full cycle",
			seconds:  100,
			interval: 10,
			wantTriggers: []string{
				"0:10  Exercise 1 • Set 2/4  (cycle 1)",
				"0:20  Exercise 1 • Set 3/4  (cycle 1)",
				"0:30  Exercise 1 • Set 4/4  (cycle 1)",
				"0:40  Exercise 2 • Set 1/3  (cycle 1)",
				"0:50  Exercise 2 • Set 2/3  (cycle 1)",
				"1:00  Exercise 2 • Set 3/3  (cycle 1)",
				"1:10  Exercise 3 • Set 1/3  (cycle 1)",
				"1:20  Exercise 3 • Set 2/3  (cycle 1)",
				"1:30  Exercise 3 • Set 3/3  (cycle 1)",
				"1:40  Exercise 1 • Set 1/4  (cycle 2)",
			},
			wantFinal: "Final: Exercise 1 • Set 1/4, set clock 0:00, total 1:40, cycles completed 1",
		},
		{
			name:      "shorter than one interval",
			seconds:   30,
			wantFinal: "Final: Exercise 1 • Set 1/4, set clock 0:30, total 0:30, cycles completed 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.Simulate(t, env, tt.seconds, tt.interval)

			harness.AssertSuccess(t, result)
			assert.Equal(t, tt.wantTriggers, result.Triggers())
			harness.AssertStdoutContains(t, result, tt.wantFinal)
		})
	}
}

func TestSimulate_NegativeSeconds(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.Simulate(t, env, -5, 0)

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "Error: seconds must not be negative")
}
