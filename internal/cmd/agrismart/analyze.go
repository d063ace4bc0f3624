package agrismart

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/analyzer"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/renderers/tui"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/site"
)

func newAnalyzeCommand(app *App) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fill in the soil analyzer from the terminal",
		Long: `analyze prompts for each analyzer reading in form order. Answers outside a
field's limits are rejected and asked again, the same way the browser form
refuses them. Accepted answers are kept exactly as typed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := withContext(cmd)

			form, err := site.NewGenerator(uiSchemaFS(app)).Build(ctx, site.AnalyzerRequest())
			if err != nil {
				return err
			}

			driver := app.Driver
			if driver == nil {
				driver = tui.NewSurveyDriver(terminal.Stdio{Err: app.Stderr})
			}
			prompter, err := tui.New(tui.WithPromptDriver(driver))
			if err != nil {
				return err
			}
			answers, err := prompter.Collect(ctx, form, render.RenderOptions{})
			if err != nil {
				return err
			}

			state := analyzer.NewFormState()
			for name, value := range answers {
				if err := state.UpdateField(name, value); err != nil {
					app.logger.Debug("skipping answer", zap.String("field", name), zap.Error(err))
				}
			}

			if summary {
				for _, field := range form.Fields {
					value, _ := state.Value(field.Name)
					if _, err := fmt.Fprintf(app.Stdout, "%s: %s\n", field.Label, value); err != nil {
						return err
					}
				}
			}
			_, err = fmt.Fprintln(app.Stdout, state.Submit().Message)
			return err
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "echo the readings before the recommendation")
	return cmd
}

func uiSchemaFS(app *App) fs.FS {
	if app.cfg.UISchemaDir == "" {
		return nil
	}
	return os.DirFS(app.cfg.UISchemaDir)
}
