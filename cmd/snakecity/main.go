// Command snakecity plays Snake City in a window or a terminal, or runs it
// headless.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"snakecity/internal/config"
	"snakecity/internal/desktop"
	"snakecity/internal/game"
	"snakecity/internal/sim"
	"snakecity/internal/tui"
)

const (
	logDir      = "logs"
	logFileName = "snakecity.log"
	maxLogSize  = 10 << 20
)

// setupLogging sends log output to logs/snakecity.log when debug is set and
// discards it otherwise. A log over maxLogSize is moved aside first. The
// returned file, if any, must be closed.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", logDir, err)
		log.SetOutput(io.Discard)
		return nil
	}
	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, "snakecity-"+time.Now().Format("20060102-150405")+".log")
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotating log file: %v\n", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}

// session is what every subcommand starts from.
type session struct {
	cfg    *config.Config
	tables *game.Tables
	seed   uint64
	logs   *os.File
}

func (s *session) Close() {
	if s.logs != nil {
		s.logs.Close()
	}
}

// loadTables returns nil for the built-in tables.
func loadTables(path string) (*game.Tables, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables: %w", err)
	}
	return game.ParseTables(data)
}

func start(cmd *cobra.Command, configPath string) (*session, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, seed: cfg.Seed, logs: setupLogging(cfg.Debug)}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	s.tables, err = loadTables(cfg.Tables)
	if err != nil {
		s.Close()
		return nil, err
	}
	log.Printf("snakecity: seed %d, difficulty %s", s.seed, cfg.Difficulty)
	return s, nil
}

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "snakecity",
		Short:         "Steer a growing snake through a procedurally built city",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (yaml, toml or json)")
	pf.Bool("debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	pf.Uint64("seed", 0, "world seed (0 picks one from the clock)")
	pf.String("difficulty", string(game.DifficultyNormal), "easy, normal or hard")

	rootCmd.AddCommand(playCmd(&configPath))
	rootCmd.AddCommand(tuiCmd(&configPath))
	rootCmd.AddCommand(simCmd(&configPath))
	rootCmd.AddCommand(configCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "snakecity:", err)
		os.Exit(1)
	}
}

func playCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in a 3D window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := start(cmd, *configPath)
			if err != nil {
				return err
			}
			defer s.Close()
			return desktop.Run(s.cfg, s.tables, s.seed)
		},
	}
}

func tuiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play top-down in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := start(cmd, *configPath)
			if err != nil {
				return err
			}
			defer s.Close()
			return tui.Run(s.cfg.Game, s.tables, s.seed)
		},
	}
}

func simCmd(configPath *string) *cobra.Command {
	var (
		frames  int
		fps     int
		restart bool
	)
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the game headless under an autopilot and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames <= 0 || fps <= 0 {
				return fmt.Errorf("--frames and --fps must be positive")
			}
			s, err := start(cmd, *configPath)
			if err != nil {
				return err
			}
			defer s.Close()
			g := game.NewGame(s.cfg.Game, s.tables, s.seed, nil)
			game.LogEvents(g.Events)
			sum := sim.Run(g, frames, 1/float64(fps), &sim.Autopilot{Restart: restart})
			fmt.Fprintf(cmd.OutOrStdout(), "seed %d: %s\n", s.seed, sum)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 3600, "frames to simulate")
	cmd.Flags().IntVar(&fps, "fps", 60, "simulated frames per second")
	cmd.Flags().BoolVar(&restart, "restart", true, "start a new run after game over")
	return cmd
}

func configCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "write [path]",
		Short: "Write the effective configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if err := config.Save(*cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0])
			return nil
		},
	})
	return cmd
}
