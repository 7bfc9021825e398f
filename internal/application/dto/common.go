package dto

import (
	"regexp"
	"strings"

	"github.com/jhoicas/gestion-cli/internal/domain"
)

// emailRe patrón simple de email, igual de permisivo que el formulario original.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail informa si s tiene forma de email.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// NormalizePhone reduce un teléfono ingresado por el usuario a su secuencia
// de dígitos: elimina espacios, guiones, puntos, paréntesis y un '+' inicial.
// Cualquier otro carácter lo invalida. El resultado debe tener al menos
// 10 dígitos antes de enviarse al gateway.
func NormalizePhone(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// separadores comunes, se descartan
		default:
			return "", domain.NewValidationError("phone", "contiene caracteres no numéricos")
		}
	}
	digits := b.String()
	if len(digits) < 10 {
		return "", domain.NewValidationError("phone", "debe tener al menos 10 dígitos")
	}
	return digits, nil
}

// ErrorResponse cuerpo de error HTTP del backend.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// DeleteResponse confirmación de un DELETE.
type DeleteResponse struct {
	Message string `json:"message"`
}

// UploadResponse ubicación del archivo subido (logo).
type UploadResponse struct {
	URL string `json:"url"`
}
