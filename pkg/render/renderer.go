package render

import (
	"context"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
)

// Renderer converts a FormModel into a byte representation (HTML, terminal
// answers...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
