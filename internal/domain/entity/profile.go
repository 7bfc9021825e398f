package entity

import "time"

// BusinessProfile perfil del negocio de la cuenta autenticada.
// Existe a lo sumo una instancia por cuenta; su ausencia ("aún no hay
// perfil") es un estado válido y distinguible, no un error.
type BusinessProfile struct {
	ID                 string    `json:"id"`
	BusinessName       string    `json:"businessName"`
	RegistrationNumber string    `json:"registrationNumber"`
	Address            string    `json:"address"`
	ContactNumbers     []string  `json:"contactNumbers"` // al menos uno
	EmailAddresses     []string  `json:"emailAddresses"` // al menos uno
	Logo               string    `json:"logo,omitempty"` // URL, opcional
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
