package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "pena", fold("Peña"))
	assert.Equal(t, "gomez", fold("GÓMEZ"))
	assert.Equal(t, "arbol nino", fold("Árbol Niño"))
	assert.Equal(t, "acme", fold("acme"))
}

func TestMatchesFilter(t *testing.T) {
	c := entity.Customer{
		CompanyName:        "Peña y Asociados",
		ContactPerson:      "José Gómez",
		Email:              "jose@pena.co",
		RegistrationNumber: "CUST-0007",
	}

	// Coincidencia insensible a acentos y mayúsculas, en cualquier campo.
	assert.True(t, matchesFilter(c, "pena"))
	assert.True(t, matchesFilter(c, "PEÑA"))
	assert.True(t, matchesFilter(c, "gomez"))
	assert.True(t, matchesFilter(c, "jose@"))
	assert.True(t, matchesFilter(c, "cust-0007"))

	// La consulta vacía o con solo espacios no filtra nada.
	assert.True(t, matchesFilter(c, ""))
	assert.True(t, matchesFilter(c, "   "))

	// Sin coincidencia en ningún campo.
	assert.False(t, matchesFilter(c, "globex"))
	assert.False(t, matchesFilter(c, "CUST-0008"))
}
