package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soocke/snapgif/app"
	"github.com/soocke/snapgif/config"
	"github.com/soocke/snapgif/debug"
	"github.com/soocke/snapgif/domain/assemble"
	"github.com/soocke/snapgif/domain/capture"
	"github.com/soocke/snapgif/domain/session"
	"github.com/soocke/snapgif/progress"
)

const debugLogInterval = 2 * time.Second

var (
	flagConfig    string
	flagDebug     bool
	flagFPS       int
	flagSeconds   int
	flagOutputDir string
	flagDither    bool
	flagRegion    string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snapgif",
		Short:         "Record a screen region into an animated GIF",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGUICmd,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: XDG config dir)")
	pf.BoolVar(&flagDebug, "debug", false, "verbose logging and runtime stats")
	pf.IntVar(&flagFPS, "fps", config.DefaultFPS, "frames per second (1-9)")
	pf.IntVar(&flagSeconds, "seconds", config.DefaultMaxSeconds, "maximum recording length in seconds")
	pf.StringVar(&flagOutputDir, "output-dir", "", "directory for GIF files (default: desktop)")
	pf.BoolVar(&flagDither, "dither", true, "dither frames while reducing to the GIF palette")

	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a region without the GUI; Ctrl+C finishes early",
		RunE:  runRecordCmd,
	}
	cmd.Flags().StringVar(&flagRegion, "region", "", "region as x,y,width,height (default: last saved selection)")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", path, out)
			return nil
		},
	}
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path := flagConfig
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = flagDebug
	}
	if flags.Changed("fps") {
		cfg.FPS = flagFPS
	}
	if flags.Changed("seconds") {
		cfg.MaxSeconds = flagSeconds
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = flagOutputDir
	}
	if flags.Changed("dither") {
		cfg.Dither = flagDither
	}
	_ = cfg.Validate()
	return cfg, path, nil
}

func logLevel(cfg *config.Config) slog.Level {
	if cfg.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func runGUICmd(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := NewLogger(os.Stdout, logLevel(cfg))
	if cfg.Debug {
		defer debug.StartRuntimeLogger(debugLogInterval, logger)()
	}
	application := app.NewApp("Snapshot GIF", 640, 640, cfg, path, logger)
	application.Start()
	return nil
}

func runRecordCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	region, err := cfg.ResolveRegion(flagRegion)
	if err != nil {
		return err
	}
	logger := NewLogger(os.Stderr, logLevel(cfg))
	if cfg.Debug {
		defer debug.StartRuntimeLogger(debugLogInterval, logger)()
	}

	sink := progress.NewConsole(cmd.ErrOrStderr())
	grabber := capture.NewScreenGrabber()
	defer grabber.Close()
	rec := capture.NewRecorder(grabber, sink, logger)
	asm := assemble.New(assemble.Options{OutputDir: cfg.OutputDir, Dither: cfg.Dither}, sink, logger)
	runner := session.NewRunner(rec, asm, sink, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done, err := runner.Start(region, capture.Params{FPS: cfg.FPS, MaxDuration: cfg.MaxDuration()})
	if err != nil {
		return err
	}
	var res session.Result
	select {
	case res = <-done:
	case <-ctx.Done():
		runner.Stop()
		res = <-done
	}
	if res.Err != nil {
		if errors.Is(res.Err, assemble.ErrEmptyInput) {
			return fmt.Errorf("stopped before the first frame: %w", res.Err)
		}
		return res.Err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}
