package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// Verificar en tiempo de compilación que AuthGateway implementa el puerto.
var _ ports.AuthGateway = (*AuthGateway)(nil)

// AuthGateway llamadas de autenticación del backend.
type AuthGateway struct {
	c *Client
}

// NewAuthGateway construye el gateway sobre el cliente compartido.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

// Login POST /api/auth/login.
func (g *AuthGateway) Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error) {
	var s entity.Session
	if err := g.c.doJSON(ctx, "auth.login", http.MethodPost, "/api/auth/login", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Register POST /api/auth/register.
func (g *AuthGateway) Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error) {
	var s entity.Session
	if err := g.c.doJSON(ctx, "auth.register", http.MethodPost, "/api/auth/register", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
