// Package ports define los puertos de salida de la capa de aplicación.
// Las implementaciones concretas viven en internal/infrastructure; para
// tests se inyectan mocks que además cuentan llamadas de red.
package ports

import (
	"context"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// AuthGateway operaciones de autenticación contra el backend.
type AuthGateway interface {
	Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error)
}

// CustomerGateway una llamada HTTP exacta por operación sobre clientes.
// Cualquier respuesta no-2xx o error de decodificación se devuelve como
// fallo tipado (domain.TransportError / domain.DecodeError); aquí no hay
// reintentos.
type CustomerGateway interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, in dto.CustomerPayload) (*entity.Customer, error)
	Update(ctx context.Context, id string, in dto.CustomerPayload) (*entity.Customer, error)
	Delete(ctx context.Context, id string) (string, error) // mensaje de confirmación
}

// ProfileGateway operaciones sobre el perfil único del negocio.
type ProfileGateway interface {
	// Get devuelve (nil, nil) cuando el backend responde 404: "aún no hay
	// perfil" es un estado válido, no un error.
	Get(ctx context.Context) (*entity.BusinessProfile, error)
	Create(ctx context.Context, in dto.ProfilePayload) (*entity.BusinessProfile, error)
	Update(ctx context.Context, in dto.ProfilePatch) (*entity.BusinessProfile, error)
	// UploadLogo sube el binario (campo multipart "logo") y devuelve la URL.
	// Rechaza localmente blobs que no sean imagen o superen 5 MiB.
	UploadLogo(ctx context.Context, filename string, data []byte) (string, error)
}

// SessionStore persistencia local y durable de la sesión.
// Save/Load/Clear son síncronos y nunca tocan la red. cookie es la
// credencial que el backend entregó vía Set-Cookie y que el cliente
// HTTP debe reenviar en cada llamada.
type SessionStore interface {
	Save(s entity.Session, cookie string) error
	Load() (s *entity.Session, cookie string, ok bool)
	Clear() error
}

// CredentialCarrier acceso a la credencial de sesión que viaja con cada
// petición HTTP. Lo implementa el cliente del gateway.
type CredentialCarrier interface {
	SessionCookie() string
	SetSessionCookie(v string)
}
