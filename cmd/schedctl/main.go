package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ai-process-scheduler/backend/internal/console"
	"ai-process-scheduler/backend/internal/engine"
	"ai-process-scheduler/backend/pkg/config"
)

var (
	flagAlgorithm string
	flagQuantum   float64
	flagSeed      int64
	flagInterval  time.Duration
	flagTop       int
	flagActuate   bool
)

func buildEngine() (*engine.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if flagAlgorithm != "" {
		cfg.Scheduler.Algorithm = flagAlgorithm
	}
	if flagQuantum != 0 {
		cfg.Scheduler.Quantum = flagQuantum
	}
	if flagSeed != 0 {
		cfg.Scheduler.Seed = flagSeed
	}
	if flagActuate {
		cfg.Actuator.Enabled = true
	}
	return engine.FromConfig(cfg)
}

func runOnce(cmd *cobra.Command, args []string) error {
	eng, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := eng.RunCycle(cmd.Context(), flagActuate)
	if err != nil {
		return err
	}
	console.Render(os.Stdout, *res, flagTop)
	return nil
}

func runMonitor(cmd *cobra.Command, args []string) error {
	eng, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(flagInterval)
	defer ticker.Stop()

	for {
		res, err := eng.RunCycle(ctx, flagActuate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cycle failed: %v\n", err)
		} else {
			// Clear screen and repaint, the poor man's live table.
			fmt.Print("\033[2J\033[H")
			console.Render(os.Stdout, *res, flagTop)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func main() {
	root := &cobra.Command{
		Use:   "schedctl",
		Short: "AI process scheduler control tool",
	}
	root.PersistentFlags().StringVar(&flagAlgorithm, "algorithm", "", "scheduling policy (fcfs, sjf, priority, round-robin, hybrid)")
	root.PersistentFlags().Float64Var(&flagQuantum, "quantum", 0, "round-robin time quantum in ms")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "seed for priority and feature randomness")
	root.PersistentFlags().IntVar(&flagTop, "top", 10, "rows to display")
	root.PersistentFlags().BoolVar(&flagActuate, "actuate", false, "apply real OS scheduling requests (needs privileges)")

	once := &cobra.Command{
		Use:   "once",
		Short: "Run a single scheduling cycle and print the result",
		RunE:  runOnce,
	}

	monitor := &cobra.Command{
		Use:   "monitor",
		Short: "Continuously schedule and repaint a live table",
		RunE:  runMonitor,
	}
	monitor.Flags().DurationVar(&flagInterval, "interval", 3*time.Second, "time between cycles")

	root.AddCommand(once, monitor)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
