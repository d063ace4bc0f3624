package analyzer

import (
	"embed"
	"io/fs"
)

const (
	// DocumentName is the path of the analyzer OpenAPI document inside DocumentFS.
	DocumentName = "analyzer.openapi.yaml"
	// OperationID selects the analyzer form inside the document.
	OperationID = "submitAnalysis"
	// Endpoint is the path the analyzer form posts to.
	Endpoint = "/analyzer"
)

//go:embed openapi/*.yaml
var embeddedDocument embed.FS

// DocumentFS exposes the embedded analyzer OpenAPI document.
func DocumentFS() fs.FS {
	sub, err := fs.Sub(embeddedDocument, "openapi")
	if err != nil {
		panic(err)
	}
	return sub
}
