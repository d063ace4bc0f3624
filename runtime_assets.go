package agrismart

import (
	"io/fs"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the analyzer submit script and form stylesheet.
//
// Typical mount:
//
//	mux.Handle("/static/form/",
//	  http.StripPrefix("/static/form/",
//	    http.FileServerFS(agrismart.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
