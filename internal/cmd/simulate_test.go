package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gymtimer/internal/domain"
	portsmocks "github.com/renato0307/gymtimer/internal/ports/mocks"
	"github.com/renato0307/gymtimer/internal/services"
)

func TestSimulate_PrintsEachIntervalTrigger(t *testing.T) {
	var buf bytes.Buffer
	player := portsmocks.NewMockSoundPlayer(t)

	err := simulate(&buf, player, domain.DefaultPlan(), 5, 12)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Simulating 0:12 with one set every 0:05 (plan: ex1×4, ex2×3, ex3×3)\n")
	assert.Contains(t, out, "   0:05  Exercise 1 • Set 2/4  (cycle 1)\n")
	assert.Contains(t, out, "   0:10  Exercise 1 • Set 3/4  (cycle 1)\n")
	assert.NotContains(t, out, "0:15")
	assert.Contains(t, out, "Final: Exercise 1 • Set 3/4, set clock 0:02, total 0:12, cycles completed 0\n")
}

func TestSimulate_WrapsIntoNextCycle(t *testing.T) {
	var buf bytes.Buffer
	player := portsmocks.NewMockSoundPlayer(t)

	err := simulate(&buf, player, domain.DefaultPlan(), 1, 10)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "   0:09  Exercise 3 • Set 3/3  (cycle 1)\n")
	assert.Contains(t, out, "   0:10  Exercise 1 • Set 1/4  (cycle 2)\n")
	assert.Contains(t, out, "Final: Exercise 1 • Set 1/4, set clock 0:00, total 0:10, cycles completed 1\n")
}

func TestSimulate_RejectsInvalidInput(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)

	err := simulate(&bytes.Buffer{}, player, domain.DefaultPlan(), 0, 10)
	assert.ErrorIs(t, err, services.ErrInvalidInterval)

	err = simulate(&bytes.Buffer{}, player, domain.DefaultPlan(), 5, -1)
	assert.Error(t, err)
}
