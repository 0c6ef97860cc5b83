package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// NamedConfig pairs a simulation config with its experiment label.
type NamedConfig struct {
	Name string
	Config
}

// SweepResult is the outcome of one experiment in a sweep.
type SweepResult struct {
	Name   string
	Result *Result
}

// RunSweep executes every experiment concurrently. Each run owns its
// own shoe and statistics accumulator, so results are independent of
// scheduling; only seed-derivation from the clock is shared state, and
// explicit seeds avoid even that.
func RunSweep(ctx context.Context, experiments []NamedConfig, logger *log.Logger) ([]SweepResult, error) {
	if len(experiments) == 0 {
		return nil, fmt.Errorf("no experiments to run")
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make([]SweepResult, len(experiments))

	for i, exp := range experiments {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := exp.Config
			cfg.Logger = logger.With("experiment", exp.Name)
			res, err := New(cfg).Run()
			if err != nil {
				return fmt.Errorf("experiment %q: %w", exp.Name, err)
			}
			results[i] = SweepResult{Name: exp.Name, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ReportSweep writes a comparison table across sweep results.
func ReportSweep(w io.Writer, results []SweepResult) {
	st := NewReportStyles()

	fmt.Fprintln(w, st.Header.Render("SPANISH 21 SWEEP RESULTS"))
	fmt.Fprintln(w)

	header := fmt.Sprintf("%-16s %10s %8s %12s %9s %9s %9s",
		"EXPERIMENT", "HANDS", "WIN%", "NET", "REG ROI", "TOP ROI", "BOT ROI")
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(header))

	for _, r := range results {
		stats := r.Result.Stats
		net := fmt.Sprintf("%.2f", r.Result.NetProfit())
		if r.Result.NetProfit() < 0 {
			net = st.Loss.Render(net)
		} else {
			net = st.Profit.Render(net)
		}
		fmt.Fprintf(w, "%-16s %10d %7.2f%% %12s %8.2f%% %8.2f%% %8.2f%%\n",
			r.Name,
			stats.HandsPlayed,
			stats.WinRate()*100,
			net,
			stats.RegularROI()*100,
			stats.TopROI()*100,
			stats.BottomROI()*100)
	}
}
