package uischema

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// iconPolicy keeps inline SVG glyphs and plain text (emoji) only.
var iconPolicy = newIconPolicy()

func newIconPolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	shapes := []string{"path", "circle", "rect", "line", "polyline", "polygon"}

	p.AllowElements(append([]string{"svg", "g", "title"}, shapes...)...)
	p.AllowAttrs("xmlns", "viewBox", "width", "height", "fill", "stroke", "stroke-width", "aria-hidden", "focusable", "class").
		OnElements("svg")
	p.AllowAttrs("fill", "stroke", "class").OnElements("g")
	p.AllowAttrs("d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2", "rx", "ry", "points",
		"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin").
		OnElements(shapes...)
	return p
}

// sanitizeIcon strips everything but the allowed glyph markup from a submit
// action icon. Blank input and markup that sanitizes to nothing yield "".
func sanitizeIcon(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(iconPolicy.Sanitize(raw))
}
