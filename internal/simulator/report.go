package simulator

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/spanish21/internal/statistics"
)

// ReportStyles contains styling for the final report
type ReportStyles struct {
	Header    lipgloss.Style
	Section   lipgloss.Style
	Label     lipgloss.Style
	Profit    lipgloss.Style
	Loss      lipgloss.Style
	Separator lipgloss.Style
}

// NewReportStyles creates the default report styling
func NewReportStyles() *ReportStyles {
	return &ReportStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Profit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Loss: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

func (st *ReportStyles) money(v float64) string {
	s := fmt.Sprintf("$%.2f", v)
	if v < 0 {
		return st.Loss.Render(s)
	}
	return st.Profit.Render(s)
}

// Report writes the final simulation report: bankroll delta, hand
// outcome counts, and expected value / ROI per bet category.
func Report(w io.Writer, res *Result) {
	st := NewReportStyles()
	stats := res.Stats

	fmt.Fprintln(w, st.Header.Render("SPANISH 21 SIMULATION RESULTS"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", st.Label.Render("Starting bankroll:"), fmt.Sprintf("$%.2f", res.StartingBankroll))
	fmt.Fprintf(w, "%s %s\n", st.Label.Render("Final bankroll:   "), fmt.Sprintf("$%.2f", res.FinalBankroll))
	fmt.Fprintf(w, "%s %s\n", st.Label.Render("Net profit/loss:  "), st.money(res.NetProfit()))
	fmt.Fprintf(w, "%s %d / %d (seed %d, %s)\n",
		st.Label.Render("Rounds played:    "),
		res.RoundsPlayed, res.TotalRounds, res.Seed, res.Duration.Round(time.Millisecond))
	if res.RoundsPlayed < res.TotalRounds {
		fmt.Fprintln(w, st.Loss.Render("Bankroll exhausted before the full run completed"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Section.Render("HAND RESULTS"))
	fmt.Fprintf(w, "  Hands played:      %d\n", stats.HandsPlayed)
	fmt.Fprintf(w, "  Hands won:         %d\n", stats.HandsWon)
	fmt.Fprintf(w, "  Hands lost:        %d\n", stats.HandsLost)
	fmt.Fprintf(w, "  Hands pushed:      %d\n", stats.HandsPushed)
	fmt.Fprintf(w, "  Hands surrendered: %d\n", stats.HandsSurrendered)
	fmt.Fprintf(w, "  Win rate:          %.2f%%\n", stats.WinRate()*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Section.Render("REGULAR BET"))
	reportBet(w, st, stats.RegularWagered, stats.RegularPaid)

	if stats.TopWagered > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.Section.Render("MATCH DEALER TOP CARD"))
		fmt.Fprintf(w, "  Side bets hit:     %d\n", stats.TopBetsHit)
		reportBreakdown(w, &stats.TopMatches)
		reportBet(w, st, stats.TopWagered, stats.TopPaid)
	}

	if stats.BottomWagered > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.Section.Render("MATCH DEALER BOTTOM CARD"))
		fmt.Fprintf(w, "  Side bets hit:     %d\n", stats.BottomBetsHit)
		reportBreakdown(w, &stats.BottomMatches)
		reportBet(w, st, stats.BottomWagered, stats.BottomPaid)
	}
}

func reportBet(w io.Writer, st *ReportStyles, wagered, paid float64) {
	fmt.Fprintf(w, "  Total wagered:     $%.2f\n", wagered)
	fmt.Fprintf(w, "  Total returned:    $%.2f\n", paid)
	fmt.Fprintf(w, "  Net EV:            %s\n", st.money(paid-wagered))
	if wagered > 0 {
		fmt.Fprintf(w, "  ROI:               %.2f%%\n", (paid-wagered)/wagered*100)
	}
}

func reportBreakdown(w io.Writer, b *statistics.MatchBreakdown) {
	fmt.Fprintf(w, "  1 non-suited:      %d\n", b.OneNonsuited)
	fmt.Fprintf(w, "  2 non-suited:      %d\n", b.TwoNonsuited)
	fmt.Fprintf(w, "  1 suited:          %d\n", b.OneSuited)
	fmt.Fprintf(w, "  1 suited + 1 non:  %d\n", b.OneSuitedOneNonsuited)
	fmt.Fprintf(w, "  2 suited:          %d\n", b.TwoSuited)
}
