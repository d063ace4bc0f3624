// Package content holds the copy shown on the informational pages. The copy
// lives in a YAML document so wording changes do not touch templates.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// DocumentName is the embedded content document.
const DocumentName = "content.yaml"

//go:embed content.yaml
var embedded embed.FS

// Site carries metadata shared by every page.
type Site struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Brand       string `yaml:"brand" json:"brand"`
}

// Link is a call-to-action anchor.
type Link struct {
	Label   string `yaml:"label" json:"label"`
	Href    string `yaml:"href" json:"href"`
	Primary bool   `yaml:"primary" json:"primary"`
}

// Feature is an icon card on the home page.
type Feature struct {
	Icon  string `yaml:"icon" json:"icon"`
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// Section is a titled block of prose.
type Section struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// Detail is one contact channel; Lines render one per row.
type Detail struct {
	Icon  string   `yaml:"icon" json:"icon"`
	Label string   `yaml:"label" json:"label"`
	Lines []string `yaml:"lines" json:"lines"`
}

type Home struct {
	Heading         string    `yaml:"heading" json:"heading"`
	Highlight       string    `yaml:"highlight" json:"highlight"`
	Lead            string    `yaml:"lead" json:"lead"`
	Actions         []Link    `yaml:"actions" json:"actions"`
	FeaturesKicker  string    `yaml:"featuresKicker" json:"featuresKicker"`
	FeaturesHeading string    `yaml:"featuresHeading" json:"featuresHeading"`
	Features        []Feature `yaml:"features" json:"features"`
}

type About struct {
	Heading  string    `yaml:"heading" json:"heading"`
	Lead     string    `yaml:"lead" json:"lead"`
	Sections []Section `yaml:"sections" json:"sections"`
}

type Contact struct {
	Heading        string    `yaml:"heading" json:"heading"`
	Lead           string    `yaml:"lead" json:"lead"`
	DetailsHeading string    `yaml:"detailsHeading" json:"detailsHeading"`
	Details        []Detail  `yaml:"details" json:"details"`
	SupportHeading string    `yaml:"supportHeading" json:"supportHeading"`
	Topics         []Section `yaml:"topics" json:"topics"`
	CallToAction   string    `yaml:"callToAction" json:"callToAction"`
}

// Analyzer is the sidebar beside the analyzer form.
type Analyzer struct {
	Brand    string   `yaml:"brand" json:"brand"`
	Tagline  string   `yaml:"tagline" json:"tagline"`
	Features []string `yaml:"features" json:"features"`
}

// Document is the full site copy.
type Document struct {
	Site     Site     `yaml:"site" json:"site"`
	Home     Home     `yaml:"home" json:"home"`
	About    About    `yaml:"about" json:"about"`
	Contact  Contact  `yaml:"contact" json:"contact"`
	Analyzer Analyzer `yaml:"analyzer" json:"analyzer"`
}

// EmbeddedFS exposes the built-in content document.
func EmbeddedFS() fs.FS {
	return embedded
}

// Default loads the embedded content document.
func Default() (Document, error) {
	return Load(embedded, DocumentName)
}

// Load reads and validates the content document name from fsys. Unknown keys
// are rejected so typos surface at startup.
func Load(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("content: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("content: read %s: %w", name, err)
	}

	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("content: decode %s: %w", name, err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("content: %s: %w", name, err)
	}
	return doc, nil
}

// Validate reports the first missing heading or empty list.
func (d Document) Validate() error {
	required := []struct {
		path  string
		value string
	}{
		{"site.title", d.Site.Title},
		{"site.brand", d.Site.Brand},
		{"home.heading", d.Home.Heading},
		{"about.heading", d.About.Heading},
		{"contact.heading", d.Contact.Heading},
		{"analyzer.brand", d.Analyzer.Brand},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%s is required", field.path)
		}
	}
	if len(d.Home.Features) == 0 {
		return errors.New("home.features must not be empty")
	}
	if len(d.About.Sections) == 0 {
		return errors.New("about.sections must not be empty")
	}
	if len(d.Contact.Details) == 0 {
		return errors.New("contact.details must not be empty")
	}
	for i, section := range d.About.Sections {
		if section.Title == "" {
			return fmt.Errorf("about.sections[%d].title is required", i)
		}
	}
	for i, topic := range d.Contact.Topics {
		if topic.Title == "" {
			return fmt.Errorf("contact.topics[%d].title is required", i)
		}
	}
	return nil
}
