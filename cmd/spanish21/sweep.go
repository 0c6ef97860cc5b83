package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/spanish21/internal/simulator"
)

type SweepCmd struct {
	Config string `arg:"" help:"HCL sweep file defining the experiments to run" type:"existingfile"`
}

func (c *SweepCmd) Run(logger *log.Logger) error {
	experiments, err := simulator.LoadSweepConfig(c.Config)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("running sweep", "experiments", len(experiments))
	results, err := simulator.RunSweep(ctx, experiments, logger)
	if err != nil {
		return err
	}

	simulator.ReportSweep(os.Stdout, results)
	return nil
}
