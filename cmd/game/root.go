package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-timber/internal/config"
	"go-timber/internal/save"
	"go-timber/internal/state"
	"go-timber/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "timber",
	Short: "Chop trees one trunk at a time",
	Long:  `Timber builds trees out of stacked trunks. Tap CHOP (or press SPACE) to knock out the bottom trunk; fell every tree to clear the round.`,
	RunE:  runGame,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML settings file")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed (0 = time based)")
	rootCmd.Flags().Bool("no-save", false, "do not read or write saved progress")
	rootCmd.Flags().Bool("skip-menu", false, "start straight in the game")
	rootCmd.Flags().String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
}

// loadSettings читает настройки и применяет --seed поверх файла.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		settings.Seed = seed
	}
	return settings, nil
}

func openStore(settings *config.Settings, disabled bool) *save.Store {
	if disabled || !settings.SaveProgress {
		return save.NewStore(nil)
	}
	store, err := save.Open(config.SaveAppName)
	if err != nil {
		log.Printf("[main] Warning: %v (progress will not be saved)", err)
	}
	return store
}

func runGame(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	noSave, _ := cmd.Flags().GetBool("no-save")
	skipMenu, _ := cmd.Flags().GetBool("skip-menu")

	if addr, _ := cmd.Flags().GetString("pprof"); addr != "" {
		go func() {
			log.Println(http.ListenAndServe(addr, nil))
		}()
	}

	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("[main] seed %d", rng.Seed())
	store := openStore(settings, noSave)

	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, settings, rng, store)
	if skipMenu {
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, func() state.State { return gs }))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		onClose:        gs.Close,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Timber")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)
	return ebiten.RunGame(app)
}
