package agrismart

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/site"
)

func newServeCommand(app *App) *cobra.Command {
	var (
		addr         string
		grace        time.Duration
		variant      string
		templatesDir string
		uiSchemaDir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the AgriSmart website",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.cfg
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.HTTPAddr = addr
			}
			if flags.Changed("grace") {
				cfg.ShutdownGrace = grace
			}
			if flags.Changed("theme-variant") {
				cfg.ThemeVariant = variant
			}
			if flags.Changed("templates") {
				cfg.TemplatesDir = templatesDir
			}
			if flags.Changed("uischema") {
				cfg.UISchemaDir = uiSchemaDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := []site.Option{
				site.WithLogger(app.logger),
				site.WithTheme(site.BrandThemeName, cfg.ThemeVariant),
				site.WithTemplatesDir(cfg.TemplatesDir),
			}
			if cfg.UISchemaDir != "" {
				opts = append(opts, site.WithUISchemaFS(os.DirFS(cfg.UISchemaDir)))
			}
			srv, err := site.New(ctx, opts...)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx, cfg.HTTPAddr, cfg.ShutdownGrace)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":3000", "listen address (AGRISMART_HTTP_ADDR)")
	cmd.Flags().DurationVar(&grace, "grace", 5*time.Second, "shutdown grace period (AGRISMART_SHUTDOWN_GRACE)")
	cmd.Flags().StringVar(&variant, "theme-variant", "light", "theme variant: light or dark (AGRISMART_THEME_VARIANT)")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "directory overriding page templates (AGRISMART_TEMPLATES_DIR)")
	cmd.Flags().StringVar(&uiSchemaDir, "uischema", "", "directory replacing the analyzer UI schema (AGRISMART_UISCHEMA_DIR)")
	return cmd
}

func withContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
