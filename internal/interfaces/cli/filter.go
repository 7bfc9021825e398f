package cli

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// foldTransformer descompone y elimina diacríticos: "Peña" ~ "pena".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza para comparación insensible a mayúsculas y acentos.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// matchesFilter informa si el cliente coincide con el texto buscado en
// empresa, contacto, email o número de registro.
func matchesFilter(c entity.Customer, query string) bool {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{c.CompanyName, c.ContactPerson, c.Email, c.RegistrationNumber} {
		if strings.Contains(fold(field), q) {
			return true
		}
	}
	return false
}
