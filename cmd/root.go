package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/goobj/internal/app"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/pipeline"
	"github.com/philipparndt/goobj/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	fillName   string
	verbose    bool
	watchFile  bool
)

var rootCmd = &cobra.Command{
	Use:   "goobj [file]",
	Short: "Spinning software-rendered viewer for OBJ and STL meshes",
	Long: `goobj spins a triangle mesh in front of a fixed camera and draws it with
back-face culling, flat shading and painter's-algorithm depth sorting.

Without a file it shows the unit cube. Tab cycles wireframe, filled and
both; the mouse wheel zooms; dragging with the middle button pans; Escape quits.`,
	Version:      version.GetFullVersion(),
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
	RunE: runViewer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file overriding the default viewer settings")
	rootCmd.PersistentFlags().StringVarP(&fillName, "fill", "f", pipeline.Wireframe.String(), "initial fill mode: wireframe, filled or both")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.RegisterFlagCompletionFunc("fill", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{pipeline.Wireframe.String(), pipeline.Filled.String(), pipeline.Both.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload the mesh when the file changes")
}

// loadSettings returns the configuration and fill mode selected by flags
func loadSettings() (pipeline.Config, pipeline.FillMode, error) {
	fill, err := pipeline.ParseFillMode(fillName)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	if configPath == "" {
		return pipeline.DefaultConfig(), fill, nil
	}
	cfg, err := pipeline.LoadConfig(configPath)
	if err != nil {
		return pipeline.Config{}, 0, err
	}
	logger.Debug("config loaded", "path", configPath)
	return cfg, fill, nil
}

func meshPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, fill, err := loadSettings()
	if err != nil {
		return err
	}

	path := meshPath(args)
	if watchFile && path == "" {
		return errors.New("--watch needs a mesh file")
	}

	m, err := mesh.Load(path)
	if err != nil {
		return fmt.Errorf("error loading mesh: %w", err)
	}

	host := app.OpenWindow(cfg, "goobj - "+m.Name)
	defer host.Close()
	if !host.Ready() {
		return errors.New("failed to open window")
	}

	opts := []app.Option{app.WithLogger(logger)}
	if watchFile {
		reloader := app.NewReloader(path, logger)
		if err := reloader.Watch(cmd.Context()); err != nil {
			logger.Warn("auto-reload will not be available", "error", err)
		} else {
			defer reloader.Close()
			opts = append(opts, app.WithReloader(reloader))
		}
	}

	return app.NewViewer(host, m, cfg, fill, opts...).Run(cmd.Context())
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
