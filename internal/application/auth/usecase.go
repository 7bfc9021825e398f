package auth

import (
	"context"

	"github.com/jhoicas/gestion-cli/internal/application/cache"
	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// AuthUseCase casos de uso de autenticación: login, registro y logout.
// Es el único dueño del session store; las vistas consultan Current para
// decidir redirecciones (comandos protegidos exigen sesión presente).
type AuthUseCase struct {
	gw       ports.AuthGateway
	sessions ports.SessionStore
	creds    ports.CredentialCarrier
	cache    *cache.Store
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(gw ports.AuthGateway, sessions ports.SessionStore, creds ports.CredentialCarrier, c *cache.Store) *AuthUseCase {
	return &AuthUseCase{gw: gw, sessions: sessions, creds: creds, cache: c}
}

// Login valida credenciales localmente, autentica contra el backend y
// persiste la identidad junto con la cookie de sesión que entregó.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s, err := uc.gw.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(*s, uc.creds.SessionCookie()); err != nil {
		return nil, err
	}
	return s, nil
}

// Register crea la cuenta y deja la sesión iniciada (el backend devuelve la
// identidad y la cookie igual que en login).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s, err := uc.gw.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(*s, uc.creds.SessionCookie()); err != nil {
		return nil, err
	}
	return s, nil
}

// Logout borra la sesión persistida, la credencial en memoria y desmonta la
// caché: la proyección cacheada pertenecía a la sesión que termina.
func (uc *AuthUseCase) Logout() error {
	if err := uc.sessions.Clear(); err != nil {
		return err
	}
	uc.creds.SetSessionCookie("")
	uc.cache.Reset()
	return nil
}

// Current devuelve la sesión persistida o domain.ErrNoSession.
func (uc *AuthUseCase) Current() (*entity.Session, error) {
	s, _, ok := uc.sessions.Load()
	if !ok {
		return nil, domain.ErrNoSession
	}
	return s, nil
}
