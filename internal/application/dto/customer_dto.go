package dto

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jhoicas/gestion-cli/internal/domain"
)

// CustomerInput datos del formulario de cliente, tal como los escribe el
// usuario (teléfono con separadores, espacios, etc.).
type CustomerInput struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string // entrada libre; se normaliza en Validate
	Address       string
	Description   string
}

// CustomerPayload cuerpo JSON que espera el backend en POST/PUT /api/customers.
// Phone viaja como número JSON, ya normalizado.
type CustomerPayload struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         int64  `json:"phone"`
	Address       string `json:"address"`
	Description   string `json:"description"`
}

// Validate valida presencia y formato y devuelve el payload listo para el
// gateway. Si retorna error es un *domain.ValidationError y no debe
// emitirse ninguna llamada de red.
func (in *CustomerInput) Validate() (*CustomerPayload, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)

	var ve *domain.ValidationError
	if in.CompanyName == "" {
		ve = appendField(ve, "companyName", "es requerido")
	}
	if in.ContactPerson == "" {
		ve = appendField(ve, "contactPerson", "es requerido")
	}
	if in.Email == "" {
		ve = appendField(ve, "email", "es requerido")
	} else if !ValidEmail(in.Email) {
		ve = appendField(ve, "email", "no tiene formato de email")
	}
	if in.Address == "" {
		ve = appendField(ve, "address", "es requerido")
	}

	var phone int64
	if strings.TrimSpace(in.Phone) == "" {
		ve = appendField(ve, "phone", "es requerido")
	} else if digits, err := NormalizePhone(in.Phone); err != nil {
		var pe *domain.ValidationError
		if errors.As(err, &pe) {
			for f, m := range pe.Fields {
				ve = appendField(ve, f, m)
			}
		}
	} else {
		// 19 dígitos caben en int64; los teléfonos reales quedan muy por debajo
		phone, err = strconv.ParseInt(digits, 10, 64)
		if err != nil {
			ve = appendField(ve, "phone", "es demasiado largo")
		}
	}

	if ve != nil {
		return nil, ve
	}
	return &CustomerPayload{
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         phone,
		Address:       in.Address,
		Description:   strings.TrimSpace(in.Description),
	}, nil
}
