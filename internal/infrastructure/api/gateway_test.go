package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/domain"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
	"github.com/jhoicas/gestion-cli/internal/infrastructure/api"
)

// capture registra la última petición recibida por el servidor de prueba.
type capture struct {
	method string
	path   string
	cookie string
	body   []byte
	count  int
}

func newTestServer(t *testing.T, status int, respBody string, cap *capture) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.count++
		cap.method = r.Method
		cap.path = r.URL.Path
		if ck, err := r.Cookie("session"); err == nil {
			cap.cookie = ck.Value
		} else {
			cap.cookie = ""
		}
		cap.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
}

// El create emite exactamente un POST con el teléfono como número JSON,
// sin comillas.
func TestCustomerCreate_PayloadYRuta(t *testing.T) {
	var cap capture
	srv := newTestServer(t, http.StatusCreated, `{"id":"c1","companyName":"Acme","phone":1234567890}`, &cap)
	defer srv.Close()

	gw := api.NewCustomerGateway(api.NewClient(srv.URL, 5, nil))
	created, err := gw.Create(context.Background(), dto.CustomerPayload{
		CompanyName: "Acme", ContactPerson: "Ana", Email: "ana@acme.com",
		Phone: 1234567890, Address: "Calle 10",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID)
	assert.EqualValues(t, 1234567890, created.Phone)

	assert.Equal(t, 1, cap.count, "exactamente una petición por operación")
	assert.Equal(t, http.MethodPost, cap.method)
	assert.Equal(t, "/api/customers", cap.path)
	assert.Contains(t, string(cap.body), `"phone":1234567890`, "el teléfono viaja como número, no como string")
}

func TestCustomerGatewayRutas(t *testing.T) {
	cases := []struct {
		name       string
		call       func(gw *api.CustomerGateway) error
		wantMethod string
		wantPath   string
	}{
		{"list", func(gw *api.CustomerGateway) error {
			_, err := gw.List(context.Background())
			return err
		}, http.MethodGet, "/api/customers"},
		{"get", func(gw *api.CustomerGateway) error {
			_, err := gw.Get(context.Background(), "c1")
			return err
		}, http.MethodGet, "/api/customers/c1"},
		{"update", func(gw *api.CustomerGateway) error {
			_, err := gw.Update(context.Background(), "c1", dto.CustomerPayload{})
			return err
		}, http.MethodPut, "/api/customers/c1"},
		{"delete", func(gw *api.CustomerGateway) error {
			_, err := gw.Delete(context.Background(), "c1")
			return err
		}, http.MethodDelete, "/api/customers/c1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cap capture
			srv := newTestServer(t, http.StatusOK, `{"message":"ok"}`, &cap)
			defer srv.Close()
			gw := api.NewCustomerGateway(api.NewClient(srv.URL, 5, nil))

			// list/get decodifican otras formas; aquí solo interesa la ruta.
			_ = tc.call(gw)
			assert.Equal(t, tc.wantMethod, cap.method)
			assert.Equal(t, tc.wantPath, cap.path)
		})
	}
}

// Un error del backend con cuerpo estructurado llega como TransportError
// con status, código y mensaje.
func TestDo_ErrorEstructurado(t *testing.T) {
	var cap capture
	srv := newTestServer(t, http.StatusConflict, `{"code":"DUPLICATE","message":"el email ya está registrado"}`, &cap)
	defer srv.Close()

	gw := api.NewAuthGateway(api.NewClient(srv.URL, 5, nil))
	_, err := gw.Register(context.Background(), dto.RegisterRequest{
		Name: "Bob", Email: "bob@b.com", Password: "secret1", ConfirmPassword: "secret1",
	})

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusConflict, te.Status)
	assert.Equal(t, "DUPLICATE", te.Code)
	assert.Equal(t, "el email ya está registrado", te.Message)
}

// Sin cuerpo decodificable, el error cae al texto estándar del status.
func TestDo_ErrorSinCuerpo(t *testing.T) {
	var cap capture
	srv := newTestServer(t, http.StatusInternalServerError, "boom", &cap)
	defer srv.Close()

	gw := api.NewCustomerGateway(api.NewClient(srv.URL, 5, nil))
	_, err := gw.List(context.Background())
	assert.True(t, domain.IsStatus(err, http.StatusInternalServerError))
}

// Red inalcanzable: TransportError con Status 0, distinguible de cualquier
// respuesta HTTP.
func TestDo_RedInalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	gw := api.NewCustomerGateway(api.NewClient(srv.URL, 1, nil))
	_, err := gw.List(context.Background())

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.Status, "sin respuesta HTTP el status es 0")
}

// Un 2xx con JSON malformado es un DecodeError que identifica la operación.
func TestDo_RespuestaMalformada(t *testing.T) {
	var cap capture
	srv := newTestServer(t, http.StatusOK, `{"id":`, &cap)
	defer srv.Close()

	gw := api.NewCustomerGateway(api.NewClient(srv.URL, 5, nil))
	_, err := gw.Get(context.Background(), "c1")

	var de *domain.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "customers.get", de.Op)
}

// La cookie que el backend emite en login queda capturada y se reenvía en
// las peticiones siguientes.
func TestClient_CapturaYReenviaCookie(t *testing.T) {
	var cap capture
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.count++
		cap.path = r.URL.Path
		if ck, err := r.Cookie("session"); err == nil {
			cap.cookie = ck.Value
		}
		if r.URL.Path == "/api/auth/login" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "jwt-abc", HttpOnly: true})
			_ = json.NewEncoder(w).Encode(entity.Session{ID: "u1", Name: "Alice", Email: "a@b.com"})
			return
		}
		_ = json.NewEncoder(w).Encode([]entity.Customer{})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 5, nil)
	authGw := api.NewAuthGateway(client)
	s, err := authGw.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", s.ID)
	assert.Equal(t, "jwt-abc", client.SessionCookie())

	_, err = api.NewCustomerGateway(client).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", cap.cookie, "la credencial viaja en cada petición posterior")
}

// El 404 de perfil se traduce a (nil, nil): "aún no hay perfil" no es un error.
func TestProfileGet_404EsAusencia(t *testing.T) {
	var cap capture
	srv := newTestServer(t, http.StatusNotFound, `{"message":"perfil no encontrado"}`, &cap)
	defer srv.Close()

	gw := api.NewProfileGateway(api.NewClient(srv.URL, 5, nil))
	p, err := gw.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

// Cualquier otro status de perfil sí es un error.
func TestProfileGet_OtroStatusEsError(t *testing.T) {
	var cap capture
	srv := newTestServer(t, http.StatusInternalServerError, `{"message":"error interno"}`, &cap)
	defer srv.Close()

	gw := api.NewProfileGateway(api.NewClient(srv.URL, 5, nil))
	_, err := gw.Get(context.Background())
	assert.True(t, domain.IsStatus(err, http.StatusInternalServerError))
}

// Los rechazos locales del logo (vacío, excedido, no-imagen) no emiten red.
func TestUploadLogo_RechazosLocales(t *testing.T) {
	var cap capture
	srv := newTestServer(t, http.StatusOK, `{"url":"/uploads/x.png"}`, &cap)
	defer srv.Close()
	gw := api.NewProfileGateway(api.NewClient(srv.URL, 5, nil))

	cases := []struct {
		name string
		data []byte
	}{
		{"vacío", nil},
		{"demasiado grande", bytes.Repeat([]byte{0xff}, 5<<20+1)},
		{"no es imagen", []byte("texto plano, no una imagen")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gw.UploadLogo(context.Background(), "logo.bin", tc.data)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "logo")
		})
	}
	assert.Zero(t, cap.count, "los rechazos locales no deben tocar la red")
}

// Un PNG válido viaja como multipart con campo "logo" y vuelve la URL.
func TestUploadLogo_MultipartOK(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("logo")
		if err != nil {
			http.Error(w, "falta el campo logo", http.StatusBadRequest)
			return
		}
		defer f.Close()
		assert.Equal(t, "logo.png", hdr.Filename)
		got, _ := io.ReadAll(f)
		assert.Equal(t, pngHeader, got)
		_ = json.NewEncoder(w).Encode(dto.UploadResponse{URL: "/uploads/logo.png"})
	}))
	defer srv.Close()

	gw := api.NewProfileGateway(api.NewClient(srv.URL, 5, nil))
	url, err := gw.UploadLogo(context.Background(), "logo.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo.png", url)
}
