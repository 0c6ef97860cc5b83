package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/spanish21/internal/simulator"
)

type SimulateCmd struct {
	Hands         int     `default:"100000" help:"Total number of player hands to simulate"`
	HandsPerRound int     `default:"1" help:"Simultaneous hands played per round"`
	Bankroll      float64 `default:"100000" help:"Starting bankroll"`
	Bet           float64 `default:"10" help:"Regular bet per hand (table minimum 10)"`
	TopBet        float64 `default:"0" help:"Match-the-dealer top card bet (0 to skip, minimum 2)"`
	BottomBet     float64 `default:"0" help:"Match-the-dealer bottom card bet (0 to skip, minimum 2)"`
	Surrender     bool    `help:"Auto-surrender matched hard 13-16 against 7 through ace"`
	Decks         int     `default:"8" help:"Number of decks in the shoe"`
	Seed          int64   `default:"0" help:"RNG seed (0 for random)"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	sim := simulator.New(simulator.Config{
		Bankroll:      c.Bankroll,
		TotalHands:    c.Hands,
		HandsPerRound: c.HandsPerRound,
		RegularBet:    c.Bet,
		TopBet:        c.TopBet,
		BottomBet:     c.BottomBet,
		AutoSurrender: c.Surrender,
		NumDecks:      c.Decks,
		Seed:          c.Seed,
		Logger:        logger,
	})

	result, err := sim.Run()
	if err != nil {
		return err
	}

	simulator.Report(os.Stdout, result)
	return nil
}
