package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	game "go-timber/internal/app"
	"go-timber/internal/config"
	"go-timber/internal/ui"
	"go-timber/internal/utils"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play rounds headless and print a summary",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Int("rounds", 3, "number of rounds to play")
	simulateCmd.Flags().Float64("step", 1.0/config.TPS, "seconds per simulated tick")
	simulateCmd.Flags().Int("max-ticks", 1_000_000, "give up after this many ticks")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	rounds, _ := cmd.Flags().GetInt("rounds")
	step, _ := cmd.Flags().GetFloat64("step")
	maxTicks, _ := cmd.Flags().GetInt("max-ticks")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rng := utils.NewPRNGService(settings.Seed)
	label := ui.NewRoundLabel(0, 0, nil)
	world := game.NewWorld(settings, label, rng)
	world.Controller.Start()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d\n", rng.Seed())
	err = game.NewAutoplayer(world, step, maxTicks).PlayRounds(ctx, rounds, func(s game.RoundSummary) {
		fmt.Fprintf(out, "round %d: %d trees, %d trunks, %.1fs\n", s.Round, s.Trees, s.Trunks, float64(s.Ticks)*step)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "now showing %q, pool created %d segments\n", label.Text(), world.Pool.Created())
	return nil
}
