package usecase

import (
	"context"

	"github.com/jhoicas/gestion-cli/internal/application/cache"
	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// profileKey el perfil es único por cuenta: una sola clave sin id.
var profileKey = cache.Key{Kind: "profile"}

// ProfileUseCase lecturas y mutaciones del perfil del negocio.
//
// La ausencia de perfil (404 del backend) no es un error: la entrada queda
// Ready con dato ausente (puntero nil), el estado "crear primero" de la
// vista. Create y Update fijan la entrada directamente con el registro del
// servidor: al ser un recurso único no hay listado que pueda divergir.
type ProfileUseCase struct {
	gw    ports.ProfileGateway
	cache *cache.Store
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(gw ports.ProfileGateway, c *cache.Store) *ProfileUseCase {
	return &ProfileUseCase{gw: gw, cache: c}
}

// Get devuelve el perfil, o (nil, nil) si aún no existe.
func (uc *ProfileUseCase) Get(ctx context.Context, opts ...cache.ReadOption) (*entity.BusinessProfile, error) {
	e, err := uc.cache.Read(ctx, profileKey, func(ctx context.Context) (interface{}, error) {
		return uc.gw.Get(ctx)
	}, opts...)
	if err != nil {
		return nil, err
	}
	p, _ := e.Data.(*entity.BusinessProfile)
	return p, nil
}

// Create valida y crea el perfil; la entrada de caché queda con el registro
// devuelto por el servidor.
func (uc *ProfileUseCase) Create(ctx context.Context, in dto.ProfileInput) (*entity.BusinessProfile, error) {
	payload, err := in.Validate()
	if err != nil {
		return nil, err
	}
	created, err := uc.gw.Create(ctx, *payload)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(profileKey, created)
	return created, nil
}

// Update aplica un patch parcial; solo los campos presentes viajan.
func (uc *ProfileUseCase) Update(ctx context.Context, patch dto.ProfilePatch) (*entity.BusinessProfile, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	updated, err := uc.gw.Update(ctx, patch)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(profileKey, updated)
	return updated, nil
}

// UploadLogo sube el logo y parchea la URL en el perfil cacheado, si lo hay.
func (uc *ProfileUseCase) UploadLogo(ctx context.Context, filename string, data []byte) (string, error) {
	url, err := uc.gw.UploadLogo(ctx, filename, data)
	if err != nil {
		return "", err
	}
	uc.cache.Patch(profileKey, func(data interface{}) interface{} {
		p, ok := data.(*entity.BusinessProfile)
		if !ok || p == nil {
			return data
		}
		cp := *p
		cp.Logo = url
		return &cp
	})
	return url, nil
}
