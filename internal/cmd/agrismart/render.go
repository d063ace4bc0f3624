package agrismart

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/orchestrator"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/site"
)

func newRenderCommand(app *App) *cobra.Command {
	var (
		source    string
		operation string
		output    string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the analyzer form markup",
		Long: `render writes the analyzer form as HTML (or its form model as JSON with
--format json). --source renders an operation from another OpenAPI file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := withContext(cmd)

			generator := site.NewGenerator(uiSchemaFS(app))
			req := site.AnalyzerRequest()
			if source != "" {
				generator = orchestrator.New()
				req = orchestrator.Request{
					Source:      pkgopenapi.SourceFromFile(source),
					OperationID: operation,
				}
			}

			form, err := generator.Build(ctx, req)
			if err != nil {
				return err
			}

			var payload []byte
			switch format {
			case "html":
				payload, err = generator.Render(ctx, form, "", render.RenderOptions{})
			case "json":
				payload, err = json.MarshalIndent(form, "", "  ")
				payload = append(payload, '\n')
			default:
				return fmt.Errorf("unknown format %q (want html or json)", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = app.Stdout.Write(payload)
				return err
			}
			if err := os.WriteFile(output, payload, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			_, err = fmt.Fprintf(app.Stdout, "Form written to %s\n", output)
			return err
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "OpenAPI document path (defaults to the embedded analyzer)")
	cmd.Flags().StringVar(&operation, "operation", "submitAnalysis", "operation ID to render with --source")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "html", "output format: html or json")
	return cmd
}
