// Package statistics accumulates the run-wide counters and monetary
// ledgers for a Spanish 21 simulation. One Statistics value is created
// per run and passed into the round engine, so independent runs (for
// example parallel bet-size sweeps) never interfere.
package statistics

import "fmt"

// MatchBreakdown counts paying side-bet outcomes by category. The
// categories are mutually exclusive per evaluated hand.
type MatchBreakdown struct {
	OneNonsuited          int
	TwoNonsuited          int
	OneSuited             int
	OneSuitedOneNonsuited int
	TwoSuited             int
}

// Total returns the number of paying matches across all categories.
func (m *MatchBreakdown) Total() int {
	return m.OneNonsuited + m.TwoNonsuited + m.OneSuited + m.OneSuitedOneNonsuited + m.TwoSuited
}

// Statistics tracks hand outcomes and wager/payout ledgers for an
// entire simulation run. It is mutated in place by the round engine
// after every resolved hand and never reset between rounds.
type Statistics struct {
	HandsPlayed      int
	HandsWon         int
	HandsLost        int
	HandsPushed      int
	HandsSurrendered int

	TopBetsHit    int
	BottomBetsHit int
	TopMatches    MatchBreakdown
	BottomMatches MatchBreakdown

	RegularWagered float64
	RegularPaid    float64
	TopWagered     float64
	TopPaid        float64
	BottomWagered  float64
	BottomPaid     float64
}

// New creates an empty statistics accumulator.
func New() *Statistics {
	return &Statistics{}
}

// WinRate returns the fraction of played hands that won, in [0,1].
func (s *Statistics) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0
	}
	return float64(s.HandsWon) / float64(s.HandsPlayed)
}

// RegularNet returns winnings minus wagers for the regular bet.
func (s *Statistics) RegularNet() float64 {
	return s.RegularPaid - s.RegularWagered
}

// RegularROI returns the regular bet's return on investment, e.g.
// -0.05 for a 5% house edge. Zero if nothing was wagered.
func (s *Statistics) RegularROI() float64 {
	return roi(s.RegularPaid, s.RegularWagered)
}

// TopNet returns winnings minus wagers for the top-card match bet.
func (s *Statistics) TopNet() float64 {
	return s.TopPaid - s.TopWagered
}

// TopROI returns the top-card match bet's return on investment.
func (s *Statistics) TopROI() float64 {
	return roi(s.TopPaid, s.TopWagered)
}

// BottomNet returns winnings minus wagers for the bottom-card match bet.
func (s *Statistics) BottomNet() float64 {
	return s.BottomPaid - s.BottomWagered
}

// BottomROI returns the bottom-card match bet's return on investment.
func (s *Statistics) BottomROI() float64 {
	return roi(s.BottomPaid, s.BottomWagered)
}

// TotalWagered returns the sum of all wagers across bet categories.
func (s *Statistics) TotalWagered() float64 {
	return s.RegularWagered + s.TopWagered + s.BottomWagered
}

// TotalPaid returns the sum of all payouts across bet categories.
func (s *Statistics) TotalPaid() float64 {
	return s.RegularPaid + s.TopPaid + s.BottomPaid
}

func roi(paid, wagered float64) float64 {
	if wagered == 0 {
		return 0
	}
	return (paid - wagered) / wagered
}

// Validate performs consistency checks over the accumulated counters.
func (s *Statistics) Validate() error {
	if s.HandsPlayed < 0 {
		return fmt.Errorf("negative hands played: %d", s.HandsPlayed)
	}
	resolved := s.HandsWon + s.HandsLost + s.HandsPushed + s.HandsSurrendered
	if resolved != s.HandsPlayed {
		return fmt.Errorf("outcome counters (%d) do not sum to hands played (%d)",
			resolved, s.HandsPlayed)
	}
	if s.RegularWagered < 0 || s.TopWagered < 0 || s.BottomWagered < 0 {
		return fmt.Errorf("negative wager ledger: regular=%.2f top=%.2f bottom=%.2f",
			s.RegularWagered, s.TopWagered, s.BottomWagered)
	}
	if s.RegularPaid < 0 || s.TopPaid < 0 || s.BottomPaid < 0 {
		return fmt.Errorf("negative payout ledger: regular=%.2f top=%.2f bottom=%.2f",
			s.RegularPaid, s.TopPaid, s.BottomPaid)
	}
	if s.TopBetsHit != s.TopMatches.Total() {
		return fmt.Errorf("top bets hit (%d) does not match breakdown total (%d)",
			s.TopBetsHit, s.TopMatches.Total())
	}
	if s.BottomBetsHit != s.BottomMatches.Total() {
		return fmt.Errorf("bottom bets hit (%d) does not match breakdown total (%d)",
			s.BottomBetsHit, s.BottomMatches.Total())
	}
	return nil
}
