package analyzer_test

import (
	"io/fs"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/analyzer"
)

type documentShape struct {
	Paths map[string]map[string]struct {
		OperationID string `yaml:"operationId"`
	} `yaml:"paths"`
	Components struct {
		Schemas map[string]struct {
			Required   []string               `yaml:"required"`
			Properties map[string]interface{} `yaml:"properties"`
		} `yaml:"schemas"`
	} `yaml:"components"`
}

func TestDocumentDescribesEveryField(t *testing.T) {
	raw, err := fs.ReadFile(analyzer.DocumentFS(), analyzer.DocumentName)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}

	var doc documentShape
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}

	post, ok := doc.Paths[analyzer.Endpoint]["post"]
	if !ok {
		t.Fatalf("document has no POST %s", analyzer.Endpoint)
	}
	if post.OperationID != analyzer.OperationID {
		t.Fatalf("operation id: want %q, got %q", analyzer.OperationID, post.OperationID)
	}

	sample, ok := doc.Components.Schemas["SoilSample"]
	if !ok {
		t.Fatalf("SoilSample schema missing")
	}

	var want []string
	for _, name := range analyzer.FieldNames() {
		want = append(want, string(name))
	}
	sort.Strings(want)

	var props []string
	for name := range sample.Properties {
		props = append(props, name)
	}
	sort.Strings(props)
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}

	required := append([]string(nil), sample.Required...)
	sort.Strings(required)
	if diff := cmp.Diff(want, required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}
