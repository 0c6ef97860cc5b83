// Package simulator drives Spanish 21 Monte-Carlo runs: it owns the
// bankroll loop around the round engine and produces the final report.
package simulator

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/spanish21/internal/deck"
	"github.com/lox/spanish21/internal/game"
	"github.com/lox/spanish21/internal/randutil"
	"github.com/lox/spanish21/internal/statistics"
)

// Table minimums enforced before a run starts.
const (
	MinRegularBet = 10
	MinSideBet    = 2
)

// progressInterval is how many rounds pass between progress log lines.
const progressInterval = 10000

// Config holds everything a simulation run needs. Zero-value optional
// fields are filled in by Validate.
type Config struct {
	Bankroll      float64 // starting bankroll
	TotalHands    int     // total player hands to simulate
	HandsPerRound int     // simultaneous hands per round
	RegularBet    float64 // per-hand wager, >= MinRegularBet
	TopBet        float64 // match-the-upcard bet, 0 or >= MinSideBet
	BottomBet     float64 // match-the-hole-card bet, 0 or >= MinSideBet
	AutoSurrender bool    // surrender matched hard 13-16 vs 7-A
	NumDecks      int     // decks in the shoe, defaults to 8
	Seed          int64   // RNG seed, 0 derives one from the clock

	Logger *log.Logger
	Clock  quartz.Clock
}

// Validate applies defaults and rejects parameters the simulated house
// would not accept. Invalid input is fatal before any round is played.
func (c *Config) Validate() error {
	if c.NumDecks == 0 {
		c.NumDecks = 8
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	if c.TotalHands < 1 {
		return fmt.Errorf("total hands must be positive, got %d", c.TotalHands)
	}
	if c.HandsPerRound < 1 {
		return fmt.Errorf("hands per round must be positive, got %d", c.HandsPerRound)
	}
	if c.RegularBet < MinRegularBet {
		return fmt.Errorf("regular bet must be at least %d, got %.2f", MinRegularBet, c.RegularBet)
	}
	if c.TopBet != 0 && c.TopBet < MinSideBet {
		return fmt.Errorf("top bet must be 0 or at least %d, got %.2f", MinSideBet, c.TopBet)
	}
	if c.BottomBet != 0 && c.BottomBet < MinSideBet {
		return fmt.Errorf("bottom bet must be 0 or at least %d, got %.2f", MinSideBet, c.BottomBet)
	}
	if c.Bankroll <= 0 {
		return fmt.Errorf("bankroll must be positive, got %.2f", c.Bankroll)
	}
	return nil
}

// BetPerRound returns the total wager deducted before each round.
func (c *Config) BetPerRound() float64 {
	return (c.RegularBet + c.TopBet + c.BottomBet) * float64(c.HandsPerRound)
}

// Result is the outcome of a completed simulation run.
type Result struct {
	Seed             int64
	StartingBankroll float64
	FinalBankroll    float64
	RoundsPlayed     int
	TotalRounds      int
	Stats            *statistics.Statistics
	Duration         time.Duration
}

// NetProfit returns the bankroll change over the run.
func (r *Result) NetProfit() float64 {
	return r.FinalBankroll - r.StartingBankroll
}

// Simulator runs one configured Spanish 21 simulation.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the whole simulation: build a seeded shoe, then play
// rounds until the hand budget is spent or the bankroll can no longer
// cover a round's wagers. All statistics accumulate into one state
// object owned by this run, so concurrent runs never interfere.
func (s *Simulator) Run() (*Result, error) {
	cfg := s.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Clock.Now().UnixNano()
	}

	shoe, err := deck.NewShoe(randutil.New(seed), cfg.NumDecks)
	if err != nil {
		return nil, err
	}
	stats := statistics.New()
	engine := game.NewEngine(shoe, stats, cfg.Logger)

	roundCfg := game.RoundConfig{
		NumHands:      cfg.HandsPerRound,
		RegularBet:    cfg.RegularBet,
		TopBet:        cfg.TopBet,
		BottomBet:     cfg.BottomBet,
		AutoSurrender: cfg.AutoSurrender,
	}
	betPerRound := cfg.BetPerRound()
	totalRounds := cfg.TotalHands / cfg.HandsPerRound

	cfg.Logger.Info("starting simulation",
		"hands", cfg.TotalHands, "hands_per_round", cfg.HandsPerRound,
		"bankroll", cfg.Bankroll, "seed", seed)

	bankroll := cfg.Bankroll
	roundsPlayed := 0
	start := cfg.Clock.Now()

	for round := 0; round < totalRounds; round++ {
		if bankroll < betPerRound {
			cfg.Logger.Warn("insufficient bankroll, stopping early",
				"round", round, "needed", betPerRound, "available", bankroll)
			break
		}

		bankroll -= betPerRound
		payout, err := engine.PlayRound(roundCfg)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
		bankroll += payout
		roundsPlayed++

		if roundsPlayed%progressInterval == 0 {
			elapsed := cfg.Clock.Since(start)
			cfg.Logger.Info("progress",
				"rounds", roundsPlayed,
				"hands", stats.HandsPlayed,
				"bankroll", fmt.Sprintf("%.2f", bankroll),
				"rounds_per_sec", fmt.Sprintf("%.0f", float64(roundsPlayed)/elapsed.Seconds()))
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return &Result{
		Seed:             seed,
		StartingBankroll: cfg.Bankroll,
		FinalBankroll:    bankroll,
		RoundsPlayed:     roundsPlayed,
		TotalRounds:      totalRounds,
		Stats:            stats,
		Duration:         cfg.Clock.Since(start),
	}, nil
}
