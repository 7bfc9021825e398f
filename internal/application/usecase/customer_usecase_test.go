package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-cli/internal/application/cache"
	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/usecase"
	"github.com/jhoicas/gestion-cli/internal/domain"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// mockCustomerGateway implementa ports.CustomerGateway sobre un slice en
// memoria y cuenta las llamadas por operación.
type mockCustomerGateway struct {
	customers []entity.Customer
	calls     map[string]int
	failWith  error
}

func newMockCustomerGateway(seed ...entity.Customer) *mockCustomerGateway {
	return &mockCustomerGateway{customers: seed, calls: map[string]int{}}
}

func (m *mockCustomerGateway) List(ctx context.Context) ([]entity.Customer, error) {
	m.calls["list"]++
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]entity.Customer, len(m.customers))
	copy(out, m.customers)
	return out, nil
}

func (m *mockCustomerGateway) Get(ctx context.Context, id string) (*entity.Customer, error) {
	m.calls["get"]++
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.customers {
		if m.customers[i].ID == id {
			c := m.customers[i]
			return &c, nil
		}
	}
	return nil, &domain.TransportError{Status: 404, Message: "cliente no encontrado"}
}

func (m *mockCustomerGateway) Create(ctx context.Context, in dto.CustomerPayload) (*entity.Customer, error) {
	m.calls["create"]++
	if m.failWith != nil {
		return nil, m.failWith
	}
	c := entity.Customer{
		ID:                 fmt.Sprintf("c%d", len(m.customers)+1),
		RegistrationNumber: fmt.Sprintf("CUST-%04d", len(m.customers)+1),
		CompanyName:        in.CompanyName,
		ContactPerson:      in.ContactPerson,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		Description:        in.Description,
	}
	m.customers = append(m.customers, c)
	return &c, nil
}

func (m *mockCustomerGateway) Update(ctx context.Context, id string, in dto.CustomerPayload) (*entity.Customer, error) {
	m.calls["update"]++
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.customers {
		if m.customers[i].ID == id {
			m.customers[i].CompanyName = in.CompanyName
			m.customers[i].ContactPerson = in.ContactPerson
			m.customers[i].Email = in.Email
			m.customers[i].Phone = in.Phone
			m.customers[i].Address = in.Address
			m.customers[i].Description = in.Description
			c := m.customers[i]
			return &c, nil
		}
	}
	return nil, &domain.TransportError{Status: 404, Message: "cliente no encontrado"}
}

func (m *mockCustomerGateway) Delete(ctx context.Context, id string) (string, error) {
	m.calls["delete"]++
	if m.failWith != nil {
		return "", m.failWith
	}
	for i := range m.customers {
		if m.customers[i].ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return "cliente eliminado", nil
		}
	}
	return "", &domain.TransportError{Status: 404, Message: "cliente no encontrado"}
}

func validInput(company string) dto.CustomerInput {
	return dto.CustomerInput{
		CompanyName:   company,
		ContactPerson: "Ana Gómez",
		Email:         "ana@acme.com",
		Phone:         "3001234567",
		Address:       "Calle 10 # 5-21",
	}
}

// La segunda lectura del listado sale de la caché sin tocar el gateway.
func TestCustomerList_SegundaLecturaCacheada(t *testing.T) {
	gw := newMockCustomerGateway(entity.Customer{ID: "c1", CompanyName: "Acme"})
	uc := usecase.NewCustomerUseCase(gw, cache.NewStore(nil))

	first, err := uc.List(context.Background())
	require.NoError(t, err)
	second, err := uc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gw.calls["list"], "la segunda lectura no debe ir a la red")
}

// Crear un cliente invalida el listado: la próxima lectura refetchea y el
// nuevo registro aparece.
func TestCustomerCreate_InvalidaListado(t *testing.T) {
	gw := newMockCustomerGateway()
	uc := usecase.NewCustomerUseCase(gw, cache.NewStore(nil))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := uc.Create(context.Background(), validInput("Acme"))
	require.NoError(t, err)
	assert.Equal(t, "CUST-0001", created.RegistrationNumber)

	list, err = uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, 2, gw.calls["list"], "la creación debe forzar el refetch del listado")
}

// Un formulario inválido falla localmente con el mapa de campos: el gateway
// no recibe ninguna llamada.
func TestCustomerCreate_ValidacionLocalSinRed(t *testing.T) {
	gw := newMockCustomerGateway()
	uc := usecase.NewCustomerUseCase(gw, cache.NewStore(nil))

	_, err := uc.Create(context.Background(), dto.CustomerInput{
		CompanyName: "Acme",
		Email:       "no-es-email",
		Phone:       "123", // menos de 10 dígitos
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "contactPerson")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "phone")
	assert.Contains(t, verr.Fields, "address")
	assert.Equal(t, 0, gw.calls["create"], "la validación fallida no debe emitir red")
}

// Update fija el detalle con la respuesta del servidor e invalida el listado.
func TestCustomerUpdate_FijaDetalleEInvalidaListado(t *testing.T) {
	gw := newMockCustomerGateway(entity.Customer{
		ID: "c1", CompanyName: "Acme", ContactPerson: "Ana",
		Email: "ana@acme.com", Phone: 3001234567, Address: "Calle 10",
	})
	uc := usecase.NewCustomerUseCase(gw, cache.NewStore(nil))

	_, err := uc.List(context.Background())
	require.NoError(t, err)

	in := validInput("Acme Renovada")
	updated, err := uc.Update(context.Background(), "c1", in)
	require.NoError(t, err)
	assert.Equal(t, "Acme Renovada", updated.CompanyName)

	// El detalle sale de la caché fijada, sin GET al gateway.
	got, err := uc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Renovada", got.CompanyName)
	assert.Equal(t, 0, gw.calls["get"], "el detalle quedó fijado por el update")

	// El listado sí refetchea.
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme Renovada", list[0].CompanyName)
	assert.Equal(t, 2, gw.calls["list"])
}

// Delete quita el id del listado cacheado sin refetch y descarta el detalle.
func TestCustomerDelete_ParcheaListadoSinRefetch(t *testing.T) {
	gw := newMockCustomerGateway(
		entity.Customer{ID: "c1", CompanyName: "Acme"},
		entity.Customer{ID: "c2", CompanyName: "Globex"},
	)
	uc := usecase.NewCustomerUseCase(gw, cache.NewStore(nil))

	_, err := uc.List(context.Background())
	require.NoError(t, err)

	msg, err := uc.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "cliente eliminado", msg)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)
	assert.Equal(t, 1, gw.calls["list"], "la eliminación se reconcilia sin refetch")
}

// Si el gateway falla, la caché queda intacta y el error se propaga tal cual.
func TestCustomerDelete_FalloDejaCacheIntacta(t *testing.T) {
	gw := newMockCustomerGateway(entity.Customer{ID: "c1", CompanyName: "Acme"})
	uc := usecase.NewCustomerUseCase(gw, cache.NewStore(nil))

	_, err := uc.List(context.Background())
	require.NoError(t, err)

	boom := &domain.TransportError{Status: 500, Message: "error interno"}
	gw.failWith = boom
	_, err = uc.Delete(context.Background(), "c1")
	require.ErrorIs(t, err, boom)

	gw.failWith = nil
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1, "el listado cacheado no debe perder el registro")
}
