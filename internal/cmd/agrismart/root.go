// Package agrismart implements the agrismart command line: the HTTP site, a
// terminal flavour of the analyzer, and a form render helper.
package agrismart

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kalai-nithi-guhan/next-deploy/internal/config"
	"github.com/Kalai-nithi-guhan/next-deploy/internal/logging"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/renderers/tui"
)

// App carries the process streams and dependencies shared by subcommands.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	// Driver overrides the terminal prompt driver used by analyze.
	Driver tui.PromptDriver

	cfg     config.Config
	logger  *zap.Logger
	verbose bool
}

// NewRootCommand assembles the command tree. A nil app uses the process
// streams.
func NewRootCommand(app *App) *cobra.Command {
	if app == nil {
		app = &App{}
	}
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}

	root := &cobra.Command{
		Use:   "agrismart",
		Short: "AgriSmart fertilizer recommendation site",
		Long: `agrismart serves the AgriSmart website (home, about, contact and the soil
analyzer) and offers the analyzer form in the terminal.

Settings are read from AGRISMART_* environment variables; flags win.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if app.verbose {
				cfg.LogLevel = "debug"
			}
			logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			app.cfg = cfg
			app.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newServeCommand(app),
		newAnalyzeCommand(app),
		newRenderCommand(app),
	)
	return root
}
