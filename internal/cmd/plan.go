package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/services"
	"github.com/renato0307/gymtimer/internal/ui"
)

// PlanCmd prints the workout plan
type PlanCmd struct {
	IntervalFlags `embed:""`

	Sequence bool `help:"List every set of one cycle in order"`
}

// Run prints the plan summary
func (p *PlanCmd) Run(cli *CLI) error {
	p.IntervalFlags.applySettings(cli.settings)
	if p.Interval < 1 {
		return services.ErrInvalidInterval
	}
	printPlan(os.Stdout, domain.DefaultPlan(), p.Interval, p.Sequence)
	return nil
}

func printPlan(w io.Writer, plan domain.Plan, intervalSeconds int, sequence bool) {
	sets := plan.TotalSets()
	fmt.Fprintf(w, "Plan: %s\n", plan)
	fmt.Fprintf(w, "Sets per cycle: %d\n", sets)
	fmt.Fprintf(w, "Cycle length: %s at one set every %s\n",
		ui.FormatClock(sets*intervalSeconds), ui.FormatClock(intervalSeconds))

	if !sequence {
		return
	}

	fmt.Fprintln(w)
	state := domain.NewWorkoutState()
	for i := 1; i <= sets; i++ {
		start := (i - 1) * intervalSeconds
		fmt.Fprintf(w, "%3d. %7s  %s\n", i, ui.FormatClock(start), domain.CurrentPosition(state, plan))
		state = domain.Advance(state, plan)
	}
}
