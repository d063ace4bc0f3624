package uischema

import (
	"encoding/json"
	"fmt"
	"sort"

	pkgmodel "github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
)

// Hint and metadata keys written by the decorator.
const (
	TitleHint    = "layout.title"
	SubtitleHint = "layout.subtitle"
	actionsKey   = "actions"
)

// Decorator applies a Store's overlays to form models.
type Decorator struct {
	store *Store
}

var _ pkgmodel.Decorator = (*Decorator)(nil)

// NewDecorator returns a Decorator over store. A nil store decorates nothing.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate applies the overlay whose id matches form.OperationID. An overlay
// that names a field the form does not have is an error.
func (d *Decorator) Decorate(form *pkgmodel.FormModel) error {
	if d == nil || form == nil {
		return nil
	}
	op, ok := d.store.Operation(form.OperationID)
	if !ok {
		return nil
	}

	hints := map[string]string{}
	for k, v := range op.Form.UIHints {
		hints[k] = v
	}
	if op.Form.Title != "" {
		hints[TitleHint] = op.Form.Title
	}
	if op.Form.Subtitle != "" {
		hints[SubtitleHint] = op.Form.Subtitle
	}
	form.UIHints = mergeInto(form.UIHints, hints)

	if len(op.Form.Actions) > 0 {
		encoded, err := json.Marshal(op.Form.Actions)
		if err != nil {
			return fmt.Errorf("uischema: encode actions for %s: %w", op.ID, err)
		}
		form.Metadata = mergeInto(form.Metadata, map[string]string{actionsKey: string(encoded)})
	}

	positions := make(map[string]int, len(form.Fields))
	for i, f := range form.Fields {
		positions[f.Name] = i
	}
	order := map[string]int{}
	for name, cfg := range op.Fields {
		i, ok := positions[name]
		if !ok {
			return fmt.Errorf("uischema: %s: operation %q has no field %q", op.Source, op.ID, name)
		}
		applyField(&form.Fields[i], cfg)
		if cfg.Order != nil {
			order[name] = *cfg.Order
		}
	}

	// ordered fields first, ascending; the rest keep their relative order
	sort.SliceStable(form.Fields, func(i, j int) bool {
		oi, iok := order[form.Fields[i].Name]
		oj, jok := order[form.Fields[j].Name]
		if iok && jok {
			return oi < oj
		}
		return iok && !jok
	})
	return nil
}

func applyField(field *pkgmodel.Field, cfg FieldConfig) {
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.Placeholder != "" {
		field.Placeholder = cfg.Placeholder
	}
	if cfg.HelpText != "" {
		field.Description = cfg.HelpText
	}
	field.UIHints = mergeInto(field.UIHints, cfg.UIHints)
	if cfg.CSSClass != "" {
		field.UIHints = mergeInto(field.UIHints, map[string]string{"cssClass": cfg.CSSClass})
	}
}

// Actions returns the buttons a decorated form carries, or nil.
func Actions(form pkgmodel.FormModel) ([]ActionConfig, error) {
	raw := form.Metadata[actionsKey]
	if raw == "" {
		return nil, nil
	}
	var actions []ActionConfig
	if err := json.Unmarshal([]byte(raw), &actions); err != nil {
		return nil, fmt.Errorf("uischema: decode actions: %w", err)
	}
	return actions, nil
}

func mergeInto(dst, src map[string]string) map[string]string {
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
