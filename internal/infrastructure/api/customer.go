package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// Verificar en tiempo de compilación que CustomerGateway implementa el puerto.
var _ ports.CustomerGateway = (*CustomerGateway)(nil)

// CustomerGateway operaciones REST sobre /api/customers.
type CustomerGateway struct {
	c *Client
}

// NewCustomerGateway construye el gateway sobre el cliente compartido.
func NewCustomerGateway(c *Client) *CustomerGateway {
	return &CustomerGateway{c: c}
}

// List GET /api/customers.
func (g *CustomerGateway) List(ctx context.Context) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := g.c.doJSON(ctx, "customers.list", http.MethodGet, "/api/customers", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get GET /api/customers/:id.
func (g *CustomerGateway) Get(ctx context.Context, id string) (*entity.Customer, error) {
	var c entity.Customer
	if err := g.c.doJSON(ctx, "customers.get", http.MethodGet, "/api/customers/"+url.PathEscape(id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create POST /api/customers.
func (g *CustomerGateway) Create(ctx context.Context, in dto.CustomerPayload) (*entity.Customer, error) {
	var c entity.Customer
	if err := g.c.doJSON(ctx, "customers.create", http.MethodPost, "/api/customers", in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update PUT /api/customers/:id.
func (g *CustomerGateway) Update(ctx context.Context, id string, in dto.CustomerPayload) (*entity.Customer, error) {
	var c entity.Customer
	if err := g.c.doJSON(ctx, "customers.update", http.MethodPut, "/api/customers/"+url.PathEscape(id), in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete DELETE /api/customers/:id. Devuelve el mensaje de confirmación.
func (g *CustomerGateway) Delete(ctx context.Context, id string) (string, error) {
	var out dto.DeleteResponse
	if err := g.c.doJSON(ctx, "customers.delete", http.MethodDelete, "/api/customers/"+url.PathEscape(id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
