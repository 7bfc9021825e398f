package usecase

import (
	"context"

	"github.com/jhoicas/gestion-cli/internal/application/cache"
	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// Claves de caché de clientes. El listado vive bajo "customers"; cada
// detalle bajo "customer/<id>", para que lista y detalle no compartan forma.
var customersListKey = cache.Key{Kind: "customers"}

func customerKey(id string) cache.Key {
	return cache.Key{Kind: "customer", ID: id}
}

// CustomerUseCase resuelve lecturas contra la caché y reconcilia las
// mutaciones de forma determinista:
//   - create: invalida el listado (la próxima lectura refetchea y el nuevo
//     registro aparece sin merge manual);
//   - update: fija el detalle con el registro que devolvió el servidor e
//     invalida el listado, para no divergir entre formas de lista y detalle;
//   - delete: quita el id del listado cacheado sin refetch (seguro porque
//     la identidad sola determina la eliminación) y descarta el detalle.
//
// Ante cualquier fallo del gateway la caché queda intacta y el fallo se
// propaga sin cambios al llamador.
type CustomerUseCase struct {
	gw    ports.CustomerGateway
	cache *cache.Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(gw ports.CustomerGateway, c *cache.Store) *CustomerUseCase {
	return &CustomerUseCase{gw: gw, cache: c}
}

// List devuelve el listado de clientes, sirviendo la caché cuando está
// fresca. Con revalidate se sirve lo cacheado y se recarga en segundo plano.
func (uc *CustomerUseCase) List(ctx context.Context, opts ...cache.ReadOption) ([]entity.Customer, error) {
	e, err := uc.cache.Read(ctx, customersListKey, func(ctx context.Context) (interface{}, error) {
		return uc.gw.List(ctx)
	}, opts...)
	if err != nil {
		return nil, err
	}
	list, _ := e.Data.([]entity.Customer)
	return list, nil
}

// Get devuelve el detalle de un cliente.
func (uc *CustomerUseCase) Get(ctx context.Context, id string, opts ...cache.ReadOption) (*entity.Customer, error) {
	e, err := uc.cache.Read(ctx, customerKey(id), func(ctx context.Context) (interface{}, error) {
		return uc.gw.Get(ctx, id)
	}, opts...)
	if err != nil {
		return nil, err
	}
	c, _ := e.Data.(*entity.Customer)
	return c, nil
}

// Create valida el formulario y crea el cliente. La validación fallida es
// local: no se emite ninguna llamada de red.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerInput) (*entity.Customer, error) {
	payload, err := in.Validate()
	if err != nil {
		return nil, err
	}
	created, err := uc.gw.Create(ctx, *payload)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(customersListKey)
	return created, nil
}

// Update valida y actualiza el cliente id con el payload completo.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerInput) (*entity.Customer, error) {
	payload, err := in.Validate()
	if err != nil {
		return nil, err
	}
	updated, err := uc.gw.Update(ctx, id, *payload)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(customerKey(updated.ID), updated)
	uc.cache.Invalidate(customersListKey)
	return updated, nil
}

// Delete elimina el cliente y lo quita del listado cacheado sin refetch.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) (string, error) {
	msg, err := uc.gw.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	uc.cache.Patch(customersListKey, func(data interface{}) interface{} {
		list, ok := data.([]entity.Customer)
		if !ok {
			return data
		}
		out := make([]entity.Customer, 0, len(list))
		for _, c := range list {
			if c.ID != id {
				out = append(out, c)
			}
		}
		return out
	})
	uc.cache.Drop(customerKey(id))
	return msg, nil
}
