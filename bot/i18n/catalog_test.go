package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("known key resolves per language", func(t *testing.T) {
		require.Equal(t, "Cancelar", T("es", "cancel"))
		require.Equal(t, "Cancel", T("en", "cancel"))
	})

	t.Run("unknown language falls back to spanish", func(t *testing.T) {
		require.Equal(t, T("es", "cancel"), T("fr", "cancel"))
	})

	t.Run("unknown key passes through", func(t *testing.T) {
		require.Equal(t, "1: Sede Norte", T("es", "1: Sede Norte"))
	})

	t.Run("formatted messages interpolate", func(t *testing.T) {
		require.Contains(t, Tf("en", "form_submitted", "Ana"), "Ana")
	})

	t.Run("english covers every spanish key", func(t *testing.T) {
		for key := range catalogs[Spanish] {
			_, ok := catalogs[English][key]
			require.True(t, ok, "missing english entry for %s", key)
		}
		for key := range catalogs[English] {
			_, ok := catalogs[Spanish][key]
			require.True(t, ok, "missing spanish entry for %s", key)
		}
	})
}
