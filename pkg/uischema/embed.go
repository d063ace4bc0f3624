package uischema

import (
	"embed"
	"io/fs"
)

//go:embed ui/schema/*.yaml
var embeddedSchema embed.FS

// EmbeddedFS returns the bundled UI schema for the analyzer form. Pass it to
// LoadFS to use the default presentation.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "ui/schema")
	if err != nil {
		panic(err)
	}
	return sub
}
