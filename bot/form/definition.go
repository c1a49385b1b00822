package form

import (
	"context"
	"fmt"
)

// Field is one prompt/collect turn of a form.
type Field struct {
	// Name keys the accepted value in the submission payload. Unique per form.
	Name string

	// Prompt is the catalog key of the question shown when the field is entered.
	Prompt string

	Validator Validator

	// Optional fields accept the skip keyword, collecting Default instead.
	Optional bool
	Default  any

	// Replies are static quick-reply labels or catalog keys shown with the prompt.
	Replies []string

	// DynamicReplies, when set, is evaluated at prompt time and takes
	// precedence over Replies. Used for entity-backed selection fields.
	DynamicReplies func(ctx context.Context) []string
}

// Definition is a declarative, ordered description of one wizard.
type Definition struct {
	ID     string
	Fields []Field
}

func (d Definition) fieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Registry holds validated form definitions.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry validates each definition at construction time so a malformed
// form can never reach the engine.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("form without id")
		}
		if _, dup := r.defs[d.ID]; dup {
			return nil, fmt.Errorf("form %q: duplicate form id", d.ID)
		}
		if len(d.Fields) == 0 {
			return nil, fmt.Errorf("form %q: must declare at least one field", d.ID)
		}
		seen := make(map[string]bool, len(d.Fields))
		for _, f := range d.Fields {
			if f.Name == "" {
				return nil, fmt.Errorf("form %q: field without name", d.ID)
			}
			if seen[f.Name] {
				return nil, fmt.Errorf("form %q: duplicate field %q", d.ID, f.Name)
			}
			seen[f.Name] = true
			if f.Prompt == "" {
				return nil, fmt.Errorf("form %q: field %q has no prompt", d.ID, f.Name)
			}
			if f.Validator == nil {
				return nil, fmt.Errorf("form %q: field %q has no validator", d.ID, f.Name)
			}
		}
		r.defs[d.ID] = d
	}
	return r, nil
}

// Get returns a form definition by id.
func (r *Registry) Get(id string) (Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// IDs returns the ids of all registered forms.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	return ids
}
