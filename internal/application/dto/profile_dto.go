package dto

import (
	"strings"

	"github.com/jhoicas/gestion-cli/internal/domain"
)

// ProfileInput datos del formulario de perfil del negocio (creación).
type ProfileInput struct {
	BusinessName       string
	RegistrationNumber string
	Address            string
	ContactNumbers     []string
	EmailAddresses     []string
	Logo               string // URL, opcional
}

// ProfilePayload cuerpo JSON de POST /api/profile.
type ProfilePayload struct {
	BusinessName       string   `json:"businessName"`
	RegistrationNumber string   `json:"registrationNumber"`
	Address            string   `json:"address"`
	ContactNumbers     []string `json:"contactNumbers"`
	EmailAddresses     []string `json:"emailAddresses"`
	Logo               string   `json:"logo,omitempty"`
}

// Validate valida presencia y formato y devuelve el payload para el gateway.
func (in *ProfileInput) Validate() (*ProfilePayload, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.RegistrationNumber = strings.TrimSpace(in.RegistrationNumber)
	in.Address = strings.TrimSpace(in.Address)

	var ve *domain.ValidationError
	if in.BusinessName == "" {
		ve = appendField(ve, "businessName", "es requerido")
	}
	if in.RegistrationNumber == "" {
		ve = appendField(ve, "registrationNumber", "es requerido")
	}
	if in.Address == "" {
		ve = appendField(ve, "address", "es requerido")
	}

	numbers, err := cleanContactNumbers(in.ContactNumbers)
	if err != nil {
		ve = mergeValidation(ve, err)
	}
	emails, err := cleanEmailAddresses(in.EmailAddresses)
	if err != nil {
		ve = mergeValidation(ve, err)
	}

	if ve != nil {
		return nil, ve
	}
	return &ProfilePayload{
		BusinessName:       in.BusinessName,
		RegistrationNumber: in.RegistrationNumber,
		Address:            in.Address,
		ContactNumbers:     numbers,
		EmailAddresses:     emails,
		Logo:               strings.TrimSpace(in.Logo),
	}, nil
}

// ProfilePatch actualización parcial de PUT /api/profile. Solo los campos
// presentes (punteros no nulos) viajan en el JSON; un campo desconocido es
// imposible por construcción. Las listas, si vienen, reemplazan por completo
// a las actuales.
type ProfilePatch struct {
	BusinessName       *string   `json:"businessName,omitempty"`
	RegistrationNumber *string   `json:"registrationNumber,omitempty"`
	Address            *string   `json:"address,omitempty"`
	ContactNumbers     *[]string `json:"contactNumbers,omitempty"`
	EmailAddresses     *[]string `json:"emailAddresses,omitempty"`
	Logo               *string   `json:"logo,omitempty"`
}

// IsEmpty informa si el patch no trae ningún campo.
func (p *ProfilePatch) IsEmpty() bool {
	return p.BusinessName == nil && p.RegistrationNumber == nil &&
		p.Address == nil && p.ContactNumbers == nil &&
		p.EmailAddresses == nil && p.Logo == nil
}

// Validate valida los campos presentes; los ausentes no se tocan.
func (p *ProfilePatch) Validate() error {
	var ve *domain.ValidationError
	if p.IsEmpty() {
		return domain.NewValidationError("patch", "no hay campos para actualizar")
	}
	if p.BusinessName != nil && strings.TrimSpace(*p.BusinessName) == "" {
		ve = appendField(ve, "businessName", "no puede quedar vacío")
	}
	if p.RegistrationNumber != nil && strings.TrimSpace(*p.RegistrationNumber) == "" {
		ve = appendField(ve, "registrationNumber", "no puede quedar vacío")
	}
	if p.Address != nil && strings.TrimSpace(*p.Address) == "" {
		ve = appendField(ve, "address", "no puede quedar vacío")
	}
	if p.ContactNumbers != nil {
		numbers, err := cleanContactNumbers(*p.ContactNumbers)
		if err != nil {
			ve = mergeValidation(ve, err)
		} else {
			*p.ContactNumbers = numbers
		}
	}
	if p.EmailAddresses != nil {
		emails, err := cleanEmailAddresses(*p.EmailAddresses)
		if err != nil {
			ve = mergeValidation(ve, err)
		} else {
			*p.EmailAddresses = emails
		}
	}
	if ve != nil {
		return ve
	}
	return nil
}

// cleanContactNumbers normaliza cada teléfono y exige al menos uno.
func cleanContactNumbers(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, n := range raw {
		if strings.TrimSpace(n) == "" {
			continue
		}
		digits, err := NormalizePhone(n)
		if err != nil {
			return nil, domain.NewValidationError("contactNumbers", "teléfono inválido: "+n)
		}
		out = append(out, digits)
	}
	if len(out) == 0 {
		return nil, domain.NewValidationError("contactNumbers", "se requiere al menos un teléfono")
	}
	return out, nil
}

// cleanEmailAddresses valida cada email y exige al menos uno.
func cleanEmailAddresses(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !ValidEmail(e) {
			return nil, domain.NewValidationError("emailAddresses", "email inválido: "+e)
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, domain.NewValidationError("emailAddresses", "se requiere al menos un email")
	}
	return out, nil
}

// mergeValidation vuelca los campos de err (si es ValidationError) en ve.
func mergeValidation(ve *domain.ValidationError, err error) *domain.ValidationError {
	pe, ok := err.(*domain.ValidationError)
	if !ok {
		return appendField(ve, "_", err.Error())
	}
	for f, m := range pe.Fields {
		ve = appendField(ve, f, m)
	}
	return ve
}
