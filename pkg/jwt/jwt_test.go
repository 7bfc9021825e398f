package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-cli/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("secret", "u1", "Alice", "a@b.com", "gestion", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, name, email, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "Alice", name)
	assert.Equal(t, "a@b.com", email)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secret", "u1", "Alice", "a@b.com", "gestion", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate("secret", "u1", "Alice", "a@b.com", "gestion", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "Alice", "a@b.com", "gestion", 60)
	assert.Error(t, err)
}
