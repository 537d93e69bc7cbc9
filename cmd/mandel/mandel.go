package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/willbeason/mandel-explorer/pkg/config"
	"github.com/willbeason/mandel-explorer/pkg/explore"
)

const version = "v0.1.0"

type flags struct {
	debug      bool
	configPath string

	width, height int
	iterations    int
	region        string
	workers       int
	history       int
}

func mainCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "mandel",
		Short: "Explore the Mandelbrot set",
		Args:  cobra.ExactArgs(0),
	}

	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Path to "+config.FileName+" (searched for from the working directory if not set)")

	cmd.AddCommand(exploreCmd(&f), landmarksCmd())

	return cmd
}

func exploreCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [step...]",
		Short: "Run a sequence of pan and zoom steps and report the view after each",
		Long: `Explore starts a session and applies each step in order.

Steps:
  zoom:X,Y,L              zoom into the L pixel square with top-left corner (X, Y)
  pan:DX,DY               move the view by DX, DY pixels
  drag-zoom:X0,Y0,X1,Y1   zoom as if the mouse were dragged from (X0, Y0) to (X1, Y1)
  drag-pan:X0,Y0,X1,Y1    pan as if the mouse were dragged from (X0, Y0) to (X1, Y1)
  iterations:N            set the iteration budget
  color                   cycle the display color
  undo, redo, reset`,
		Example: `  # Zoom into the middle of the default view, then back out
  mandel explore zoom:425,425,212 undo

  # Start from a landmark at a smaller resolution
  mandel explore --region seahorse-valley --width 200 --height 200 pan:20,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, f, args)
		},
	}

	cmd.Flags().IntVar(&f.width, "width", 0, "Horizontal resolution in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "Vertical resolution in pixels")
	cmd.Flags().IntVarP(&f.iterations, "iterations", "i", 0, "Iteration budget")
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "Landmark to start from (see mandel landmarks)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Goroutines computing rows (0 for one per CPU)")
	cmd.Flags().IntVar(&f.history, "history", 0, "Depth of the undo and redo stacks")

	return cmd
}

func landmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "landmarks",
		Short: "List named regions that explore can start from",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reportLandmarks(cmd.OutOrStdout())
		},
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var cfg *config.Config

	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}

		path, found, err := config.Find(cwd)
		if err != nil {
			return nil, err
		}
		if found != nil {
			slog.Debug("using config", "path", path)
			cfg = found
		}
	}

	if cfg == nil {
		d := config.Default()
		cfg = &d
	}

	set := cmd.Flags().Changed
	if set("width") {
		cfg.Width = f.width
	}
	if set("height") {
		cfg.Height = f.height
	}
	if set("iterations") {
		cfg.MaxIterations = f.iterations
	}
	if set("region") {
		cfg.Region = f.region
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("history") {
		cfg.HistoryCapacity = f.history
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runExplore(cmd *cobra.Command, f *flags, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	setupLogging(f.debug)

	steps, err := ParseScript(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	opts.Logger = slog.Default()

	session, err := explore.NewSession(opts)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	out := cmd.OutOrStdout()
	report(out, fmt.Sprintf("start %dx%d", cfg.Width, cfg.Height), session, "")

	for i, step := range steps {
		skipped, err := step.Run(session)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}

		note := ""
		if skipped {
			note = "nothing to " + step.Name
		}
		fmt.Fprintln(out)
		report(out, fmt.Sprintf("step %d %s", i+1, step), session, note)
	}

	return nil
}

func main() {
	ctx := context.Background()

	err := fang.Execute(ctx, mainCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
