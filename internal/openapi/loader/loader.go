package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
)

// Loader reads OpenAPI documents from disk or from the configured fs.FS.
type Loader struct {
	files fs.FS
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New returns a Loader. FS sources fail unless options carry a FileSystem.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	return &Loader{files: options.FileSystem}
}

// Load reads src and wraps the payload in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Document{}, err
	}

	name := src.Location()
	if name == "" || name == "." {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s source has no location", src.Kind())
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = os.ReadFile(name)
	case pkgopenapi.SourceKindFS:
		if l.files == nil {
			return pkgopenapi.Document{}, errors.New("openapi loader: no filesystem configured for fs sources")
		}
		data, err = fs.ReadFile(l.files, name)
	default:
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: read %s: %w", name, err)
	}
	return pkgopenapi.NewDocument(src, data)
}
