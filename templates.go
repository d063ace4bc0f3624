package agrismart

import (
	"io/fs"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/renderers/vanilla"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/site"
)

// EmbeddedTemplates exposes the form templates so callers can copy and adapt
// them for vanilla.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedPageTemplates exposes the site page templates, the starting point
// for an AGRISMART_TEMPLATES_DIR override.
func EmbeddedPageTemplates() fs.FS {
	return site.TemplatesFS()
}
