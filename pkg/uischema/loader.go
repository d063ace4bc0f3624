package uischema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

type schemaFile struct {
	Operations map[string]struct {
		Form   FormConfig             `yaml:"form"`
		Fields map[string]FieldConfig `yaml:"fields"`
	} `yaml:"operations"`
}

// LoadFS reads every .yaml, .yml and .json file in fsys. JSON documents are
// read as YAML. Unknown keys, unlabeled actions and an operation defined in
// two files are errors. A nil fsys yields an empty Store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{operations: map[string]Operation{}}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isSchemaFile(name) {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", name, err)
		}
		return store.add(name, data)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(name string, data []byte) error {
	var file schemaFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("uischema: %s is empty", name)
		}
		return fmt.Errorf("uischema: decode %s: %w", name, err)
	}

	for rawID, raw := range file.Operations {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("uischema: %s: empty operation id", name)
		}
		if prev, dup := s.operations[id]; dup {
			return fmt.Errorf("uischema: operation %q defined in %s and %s", id, prev.Source, name)
		}

		op := Operation{ID: id, Source: name, Form: raw.Form, Fields: map[string]FieldConfig{}}
		for i, action := range op.Form.Actions {
			if strings.TrimSpace(action.Label) == "" {
				return fmt.Errorf("uischema: %s: operation %q action %d has no label", name, id, i)
			}
			if action.Type == "" {
				action.Type = "button"
			}
			if action.Kind == "" {
				action.Kind = "secondary"
			}
			action.Icon = sanitizeIcon(action.Icon)
			op.Form.Actions[i] = action
		}
		for field, cfg := range raw.Fields {
			op.Fields[strings.TrimSpace(field)] = cfg
		}
		s.operations[id] = op
	}
	return nil
}

// Operation returns the overlay for id.
func (s *Store) Operation(id string) (Operation, bool) {
	if s == nil {
		return Operation{}, false
	}
	op, ok := s.operations[id]
	return op, ok
}

// Empty reports whether the store has no overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.operations) == 0
}

func isSchemaFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
