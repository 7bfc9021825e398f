package localstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-cli/internal/domain/entity"
	"github.com/jhoicas/gestion-cli/internal/infrastructure/localstore"
)

func newStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gestion", "session.json")
	return localstore.NewStore(path, nil), path
}

// Guardar y recargar devuelve identidad y cookie intactas.
func TestSaveLoad_RoundTrip(t *testing.T) {
	st, path := newStore(t)
	sess := entity.Session{ID: "u1", Name: "Alice", Email: "a@b.com"}

	require.NoError(t, st.Save(sess, "jwt-abc"))

	got, cookie, ok := st.Load()
	require.True(t, ok)
	assert.Equal(t, sess, *got)
	assert.Equal(t, "jwt-abc", cookie)

	// El archivo porta una credencial: solo el usuario puede leerlo.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// Sin archivo la sesión está ausente, sin error.
func TestLoad_SinArchivo(t *testing.T) {
	st, _ := newStore(t)
	s, cookie, ok := st.Load()
	assert.False(t, ok)
	assert.Nil(t, s)
	assert.Empty(t, cookie)
}

// Un archivo corrupto se trata como ausente, nunca como panic.
func TestLoad_ArchivoCorrupto(t *testing.T) {
	st, path := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	_, _, ok := st.Load()
	assert.False(t, ok)
}

// Un JSON válido pero sin identidad también cuenta como ausente.
func TestLoad_SinIdentidad(t *testing.T) {
	st, path := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	raw, _ := json.Marshal(map[string]string{"cookie": "jwt"})
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	_, _, ok := st.Load()
	assert.False(t, ok)
}

// Clear elimina la sesión; repetirlo sobre nada no falla.
func TestClear_Idempotente(t *testing.T) {
	st, _ := newStore(t)
	require.NoError(t, st.Save(entity.Session{ID: "u1"}, "jwt"))

	require.NoError(t, st.Clear())
	_, _, ok := st.Load()
	assert.False(t, ok)

	require.NoError(t, st.Clear())
}

// Un segundo Save reemplaza por completo al anterior.
func TestSave_Reemplaza(t *testing.T) {
	st, _ := newStore(t)
	require.NoError(t, st.Save(entity.Session{ID: "u1", Name: "Alice"}, "jwt-1"))
	require.NoError(t, st.Save(entity.Session{ID: "u2", Name: "Bob"}, "jwt-2"))

	got, cookie, ok := st.Load()
	require.True(t, ok)
	assert.Equal(t, "u2", got.ID)
	assert.Equal(t, "jwt-2", cookie)
}
