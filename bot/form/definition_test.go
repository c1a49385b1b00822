package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	field := func(name string) Field {
		return Field{Name: name, Prompt: "ask_" + name, Validator: NonEmpty()}
	}

	for scenario, defs := range map[string][]Definition{
		"form without id":      {{Fields: []Field{field("name")}}},
		"duplicate form id":    {{ID: "a", Fields: []Field{field("name")}}, {ID: "a", Fields: []Field{field("name")}}},
		"form without fields":  {{ID: "a"}},
		"field without name":   {{ID: "a", Fields: []Field{{Prompt: "ask", Validator: NonEmpty()}}}},
		"duplicate field name": {{ID: "a", Fields: []Field{field("name"), field("name")}}},
		"field without prompt": {{ID: "a", Fields: []Field{{Name: "name", Validator: NonEmpty()}}}},
		"field without validator": {{ID: "a", Fields: []Field{{Name: "name", Prompt: "ask"}}}},
	} {
		t.Run(scenario, func(t *testing.T) {
			_, err := NewRegistry(defs...)
			require.Error(t, err)
		})
	}

	t.Run("valid forms register", func(t *testing.T) {
		reg, err := NewRegistry(
			Definition{ID: "a", Fields: []Field{field("name")}},
			Definition{ID: "b", Fields: []Field{field("name"), field("age")}},
		)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"a", "b"}, reg.IDs())

		def, ok := reg.Get("b")
		require.True(t, ok)
		require.Len(t, def.Fields, 2)

		_, ok = reg.Get("c")
		require.False(t, ok)
	})
}
