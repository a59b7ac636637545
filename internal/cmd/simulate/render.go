package simulate

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/anaitab/montyhall/internal/monty/sim"
)

// render writes the per-strategy summary as an aligned table. Rendering
// is presentation only: the aggregator owns all derived numbers.
func render(out io.Writer, seed int64, summary sim.Summary) error {
	if _, err := fmt.Fprintf(out, "seed %d\n\n", seed); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tTRIALS\tWINS\tLOSSES\tWIN RATE\tLOSS RATE")
	renderRow(tw, "stay", summary.Stay)
	renderRow(tw, "switch", summary.Switch)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func renderRow(w io.Writer, name string, s sim.StrategySummary) {
	if s.Trials == 0 {
		fmt.Fprintf(w, "%s\t0\t0\t0\tn/a\tn/a\n", name)
		return
	}
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.2f\t%.2f\n", name, s.Trials, s.Wins, s.Losses, s.WinRate, s.LossRate)
}
