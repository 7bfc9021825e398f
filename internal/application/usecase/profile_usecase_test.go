package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-cli/internal/application/cache"
	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/usecase"
	"github.com/jhoicas/gestion-cli/internal/domain"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// mockProfileGateway implementa ports.ProfileGateway sobre un puntero en
// memoria; profile == nil reproduce el 404 del backend ("aún no hay perfil").
type mockProfileGateway struct {
	profile *entity.BusinessProfile
	calls   map[string]int
}

func newMockProfileGateway(p *entity.BusinessProfile) *mockProfileGateway {
	return &mockProfileGateway{profile: p, calls: map[string]int{}}
}

func (m *mockProfileGateway) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	m.calls["get"]++
	if m.profile == nil {
		return nil, nil // el gateway ya tradujo el 404 a ausencia
	}
	p := *m.profile
	return &p, nil
}

func (m *mockProfileGateway) Create(ctx context.Context, in dto.ProfilePayload) (*entity.BusinessProfile, error) {
	m.calls["create"]++
	if m.profile != nil {
		return nil, &domain.TransportError{Status: 409, Message: "el perfil ya existe"}
	}
	m.profile = &entity.BusinessProfile{
		ID:                 "p1",
		BusinessName:       in.BusinessName,
		RegistrationNumber: in.RegistrationNumber,
		Address:            in.Address,
		ContactNumbers:     in.ContactNumbers,
		EmailAddresses:     in.EmailAddresses,
		Logo:               in.Logo,
	}
	p := *m.profile
	return &p, nil
}

func (m *mockProfileGateway) Update(ctx context.Context, in dto.ProfilePatch) (*entity.BusinessProfile, error) {
	m.calls["update"]++
	if m.profile == nil {
		return nil, &domain.TransportError{Status: 404, Message: "perfil no encontrado"}
	}
	if in.BusinessName != nil {
		m.profile.BusinessName = *in.BusinessName
	}
	if in.Address != nil {
		m.profile.Address = *in.Address
	}
	if in.ContactNumbers != nil {
		m.profile.ContactNumbers = *in.ContactNumbers
	}
	if in.EmailAddresses != nil {
		m.profile.EmailAddresses = *in.EmailAddresses
	}
	p := *m.profile
	return &p, nil
}

func (m *mockProfileGateway) UploadLogo(ctx context.Context, filename string, data []byte) (string, error) {
	m.calls["uploadLogo"]++
	return "/uploads/" + filename, nil
}

func validProfileInput() dto.ProfileInput {
	return dto.ProfileInput{
		BusinessName:       "Ferretería El Tornillo",
		RegistrationNumber: "900123456-7",
		Address:            "Carrera 7 # 45-10",
		ContactNumbers:     []string{"601 555 1234"},
		EmailAddresses:     []string{"ventas@tornillo.co"},
	}
}

// La ausencia de perfil es un estado Ready con dato nil, no un error, y
// queda cacheada como cualquier otra lectura.
func TestProfileGet_AusenciaEsReadyNoError(t *testing.T) {
	gw := newMockProfileGateway(nil)
	uc := usecase.NewProfileUseCase(gw, cache.NewStore(nil))

	p, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p, "sin perfil: puntero nil sin error")

	_, err = uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, gw.calls["get"], "la ausencia también se cachea")
}

// Create fija la entrada con la respuesta del servidor: el Get posterior no
// vuelve a la red.
func TestProfileCreate_FijaLaCache(t *testing.T) {
	gw := newMockProfileGateway(nil)
	uc := usecase.NewProfileUseCase(gw, cache.NewStore(nil))

	created, err := uc.Create(context.Background(), validProfileInput())
	require.NoError(t, err)
	assert.Equal(t, "Ferretería El Tornillo", created.BusinessName)
	assert.Equal(t, []string{"6015551234"}, created.ContactNumbers, "los teléfonos viajan normalizados")

	got, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, 0, gw.calls["get"], "el create dejó la entrada fijada")
}

// Un patch vacío o con campos vacíos falla localmente sin tocar el gateway.
func TestProfileUpdate_PatchInvalidoSinRed(t *testing.T) {
	gw := newMockProfileGateway(nil)
	uc := usecase.NewProfileUseCase(gw, cache.NewStore(nil))

	_, err := uc.Update(context.Background(), dto.ProfilePatch{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "patch")

	empty := ""
	_, err = uc.Update(context.Background(), dto.ProfilePatch{BusinessName: &empty})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "businessName")

	assert.Equal(t, 0, gw.calls["update"])
}

// Subir el logo parchea la URL sobre el perfil cacheado sin refetch.
func TestProfileUploadLogo_ParcheaPerfilCacheado(t *testing.T) {
	gw := newMockProfileGateway(&entity.BusinessProfile{ID: "p1", BusinessName: "El Tornillo"})
	uc := usecase.NewProfileUseCase(gw, cache.NewStore(nil))

	_, err := uc.Get(context.Background())
	require.NoError(t, err)

	url, err := uc.UploadLogo(context.Background(), "logo.png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo.png", url)

	got, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, url, got.Logo)
	assert.Equal(t, 1, gw.calls["get"], "el logo se reconcilia sin refetch")
}
