package dto

import (
	"strings"

	"github.com/jhoicas/gestion-cli/internal/domain"
)

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate valida presencia y formato antes de tocar la red.
func (r *LoginRequest) Validate() error {
	var ve *domain.ValidationError
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		ve = appendField(ve, "email", "es requerido")
	} else if !ValidEmail(r.Email) {
		ve = appendField(ve, "email", "no tiene formato de email")
	}
	if r.Password == "" {
		ve = appendField(ve, "password", "es requerido")
	}
	if ve != nil {
		return ve
	}
	return nil
}

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate valida presencia, formato y coincidencia de contraseñas.
func (r *RegisterRequest) Validate() error {
	var ve *domain.ValidationError
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Name == "" {
		ve = appendField(ve, "name", "es requerido")
	}
	if r.Email == "" {
		ve = appendField(ve, "email", "es requerido")
	} else if !ValidEmail(r.Email) {
		ve = appendField(ve, "email", "no tiene formato de email")
	}
	if len(r.Password) < 6 {
		ve = appendField(ve, "password", "debe tener al menos 6 caracteres")
	}
	if r.ConfirmPassword != r.Password {
		ve = appendField(ve, "confirmPassword", "las contraseñas no coinciden")
	}
	if ve != nil {
		return ve
	}
	return nil
}

func appendField(ve *domain.ValidationError, field, msg string) *domain.ValidationError {
	if ve == nil {
		return domain.NewValidationError(field, msg)
	}
	return ve.Add(field, msg)
}
