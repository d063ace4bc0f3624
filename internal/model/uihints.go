package model

import (
	"strconv"
	"strings"
)

const extensionPrefix = "x-formgen-"

// uiHintKeys are the x-formgen-* keys renderers read from UIHints. Every
// other extension only lands in Metadata.
var uiHintKeys = map[string]bool{
	"cssClass":    true,
	"helpText":    true,
	"inputType":   true,
	"label":       true,
	"placeholder": true,
	"step":        true,
	"submitLabel": true,
	"unit":        true,
}

// isUIHintKey reports whether key is copied into UIHints.
func isUIHintKey(key string) bool {
	return uiHintKeys[key]
}

// extensionStrings strips the x-formgen- prefix and keeps scalar values.
func extensionStrings(ext map[string]any) map[string]string {
	out := make(map[string]string)
	for key, value := range ext {
		name, ok := strings.CutPrefix(key, extensionPrefix)
		if !ok || name == "" {
			continue
		}
		if s, ok := scalarString(value); ok {
			out[name] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return formatFloat(v), true
	default:
		return "", false
	}
}

func uiHints(metadata map[string]string) map[string]string {
	out := make(map[string]string)
	for key, value := range metadata {
		if isUIHintKey(key) {
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// inputType picks the HTML input type for a field without an explicit
// inputType hint.
func inputType(field Field) string {
	if len(field.Enum) > 0 {
		return "select"
	}
	switch strings.ToLower(field.Format) {
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "email":
		return "email"
	case "uri", "url":
		return "url"
	case "password":
		return "password"
	}
	switch field.Type {
	case FieldTypeNumber, FieldTypeInteger:
		return "number"
	case FieldTypeBoolean:
		return "checkbox"
	default:
		return "text"
	}
}

func merge(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
