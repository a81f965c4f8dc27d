package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten"
	"github.com/spf13/cobra"

	"github.com/jtestard/pong-series/config"
	"github.com/jtestard/pong-series/pong"
	"github.com/jtestard/pong-series/sfx"
	"github.com/jtestard/pong-series/sim"
	"github.com/jtestard/pong-series/spectate"
	"github.com/jtestard/pong-series/term"
)

const (
	defaultTitle  = "Pong Series"
	defaultScale  = 1.0
	defaultTPS    = 60
	defaultVolume = 1.0
)

var (
	configPath string

	audioEnabled bool
	audioVolume  float64
	spectateAddr string
	gameSeed     int64
	gameAutoplay bool

	windowTitle string
	windowScale float64
	windowTPS   int

	termHoldMs int

	simFrames   int
	simBestOf   int
	simSeries   int
	simMaxRally int
	simJSON     bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pong",
		Short:         "Pong against the computer, in best-of series",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runWindowCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	pf.BoolVar(&audioEnabled, "audio", true, "play sound effects")
	pf.Float64Var(&audioVolume, "volume", defaultVolume, "sound volume (0-1)")
	pf.StringVar(&spectateAddr, "spectate", "", "serve a websocket spectator feed on this address")
	pf.Int64Var(&gameSeed, "seed", 0, "random seed (0 picks one)")
	pf.BoolVar(&gameAutoplay, "autoplay", false, "let the player paddle follow the ball")

	rootCmd.Flags().StringVar(&windowTitle, "title", defaultTitle, "window title")
	rootCmd.Flags().Float64Var(&windowScale, "scale", defaultScale, "window scale factor")
	rootCmd.Flags().IntVar(&windowTPS, "tps", defaultTPS, "ticks per second")

	rootCmd.AddCommand(newTermCmd())
	rootCmd.AddCommand(newSimCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTermCmd,
	}
	cmd.Flags().IntVar(&termHoldMs, "hold-ms", term.DefaultHoldMs, "how long a movement key stays held after a key repeat")
	cmd.Flags().IntVar(&windowTPS, "tps", defaultTPS, "ticks per second")
	return cmd
}

func newSimCmd() *cobra.Command {
	def := sim.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Play series headlessly and print the results",
		Args:  cobra.NoArgs,
		RunE:  runSimCmd,
	}
	cmd.Flags().IntVar(&simFrames, "frames", def.Frames, "frame budget")
	cmd.Flags().IntVar(&simBestOf, "best-of", def.BestOf, "series length (3, 5 or 7)")
	cmd.Flags().IntVar(&simSeries, "series", def.Series, "number of series to play")
	cmd.Flags().IntVar(&simMaxRally, "max-rally", def.MaxRally, "paddle hits before the simulated player concedes")
	cmd.Flags().BoolVar(&simJSON, "json", false, "print the result as JSON")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the config file path and its values",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

// loadConfig merges the config file into every flag the user did not set
func loadConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "audio", &audioEnabled, fileCfg.Audio.Enabled)
	applyFloatConfig(cmd, "volume", &audioVolume, fileCfg.Audio.Volume)
	applyStringConfig(cmd, "spectate", &spectateAddr, fileCfg.Spectate.Addr)
	applyInt64Config(cmd, "seed", &gameSeed, fileCfg.Game.Seed)
	applyBoolConfig(cmd, "autoplay", &gameAutoplay, fileCfg.Game.Autoplay)
	applyStringConfig(cmd, "title", &windowTitle, fileCfg.Window.Title)
	applyFloatConfig(cmd, "scale", &windowScale, fileCfg.Window.Scale)
	applyIntConfig(cmd, "tps", &windowTPS, fileCfg.Window.TPS)
	applyIntConfig(cmd, "hold-ms", &termHoldMs, fileCfg.Term.HoldMs)
	return nil
}

// session holds what both interactive hosts share
type session struct {
	clock  *pong.MonotonicClock
	match  *pong.Match
	sounds *sfx.Player
	hub    *spectate.Hub
}

func openSession(ctx context.Context) (*session, error) {
	sounds, err := sfx.Open(sfx.Config{Enabled: audioEnabled, Volume: audioVolume})
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}

	s := &session{
		clock:  pong.NewMonotonicClock(),
		sounds: sounds,
	}
	s.match = pong.NewMatch(pong.Options{
		Clock:      s.clock,
		Rand:       pong.NewRand(gameSeed),
		Sounds:     sounds,
		AutoPlayer: gameAutoplay,
	})

	if spectateAddr != "" {
		s.hub = spectate.NewHub()
		srv, err := spectate.Listen(spectateAddr, s.hub)
		if err != nil {
			sounds.Close()
			return nil, err
		}
		fmt.Printf("starting spectator feed on ws://%s/\n", srv.Addr())
		go func() {
			if err := srv.Serve(ctx); err != nil {
				log.Print(err)
			}
		}()
	}
	return s, nil
}

func (s *session) Close() {
	s.sounds.Close()
}

func runWindowCmd(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	if windowScale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", windowScale)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Println("bootstraping new game...")
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := NewGame(s.match, s.clock, s.hub)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	ebiten.SetWindowSize(int(windowWidth*windowScale), int(windowHeight*windowScale))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetMaxTPS(windowTPS)
	ebiten.SetRunnableOnUnfocused(true)

	fmt.Println("starting the game...")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

func runTermCmd(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	opts := term.Options{HoldMs: termHoldMs, TPS: windowTPS}
	if s.hub != nil {
		opts.OnFrame = func(m *pong.Match) { s.hub.Publish(m.Snapshot()) }
	}
	return term.Run(ctx, screen, s.match, s.clock, opts)
}

func runSimCmd(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	seed := gameSeed
	if seed == 0 {
		seed = sim.DefaultOptions().Seed
	}
	opts := sim.Options{
		Seed:     seed,
		Frames:   simFrames,
		BestOf:   simBestOf,
		Series:   simSeries,
		MaxRally: simMaxRally,
	}
	res, err := sim.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}

	out := cmd.OutOrStdout()
	if simJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for i, s := range res.Series {
		fmt.Fprintf(out, "series %d: %s wins %d-%d (best of %d)\n", i+1, s.Winner, s.PlayerWins, s.AIWins, s.BestOf)
	}
	fmt.Fprintf(out, "%d games, %d frames, %d paddle hits, %d wall bounces\n",
		len(res.Games), res.Frames, res.Cues.Paddles, res.Cues.Walls)
	if !res.Completed {
		return fmt.Errorf("frame budget of %d spent before %d series finished", simFrames, simSeries)
	}
	return nil
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", configPath)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "# file not found, using defaults")
	}
	if err := toml.NewEncoder(out).Encode(fileCfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
