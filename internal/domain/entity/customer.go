package entity

import "time"

// Customer representa un cliente del negocio tal como lo entrega el backend.
// El ID y el RegistrationNumber los asigna siempre el servidor; el cliente
// nunca los genera. La caché local es una proyección descartable, no la
// fuente de verdad.
type Customer struct {
	ID                 string    `json:"id"`
	RegistrationNumber string    `json:"registrationNumber"`
	CompanyName        string    `json:"companyName"`
	ContactPerson      string    `json:"contactPerson"`
	Email              string    `json:"email"`
	Phone              int64     `json:"phone"` // secuencia de dígitos normalizada, viaja como número JSON
	Address            string    `json:"address"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
