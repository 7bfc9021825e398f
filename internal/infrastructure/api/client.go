// Package api implementa el gateway remoto de entidades: cada operación
// lógica (list, get, create, update, delete) se traduce en exactamente una
// petición HTTP al backend REST y su respuesta se decodifica a un registro
// tipado o a un fallo tipado. Aquí no hay reintentos: la política de
// reintento, si existe, es del llamador.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain"
	"github.com/jhoicas/gestion-cli/pkg/logger"
)

// sessionCookieName nombre de la cookie que emite el backend en login/register.
const sessionCookieName = "session"

// maxResponseBytes tope de lectura de cuerpos de respuesta.
const maxResponseBytes = 4 << 20 // 4 MiB

// Verificar en tiempo de compilación que Client porta la credencial.
var _ ports.CredentialCarrier = (*Client)(nil)

// Client cliente HTTP compartido por todos los gateways de entidad.
// Porta la cookie de sesión y la reenvía en cada petición; captura la que
// el backend entregue vía Set-Cookie.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger

	mu            sync.Mutex
	sessionCookie string
}

// NewClient construye el cliente. timeoutSeconds == 0 deja el default del
// transporte (sin timeout propio del lado cliente, como especifica la capa:
// una petición colgada deja la entrada en Loading indefinidamente).
func NewClient(baseURL string, timeoutSeconds int, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	hc := &http.Client{}
	if timeoutSeconds > 0 {
		hc.Timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: hc,
		log:        log,
	}
}

// SessionCookie devuelve la credencial de sesión vigente ("" si no hay).
func (c *Client) SessionCookie() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionCookie
}

// SetSessionCookie fija la credencial (al restaurar una sesión persistida
// o al limpiarla en logout).
func (c *Client) SetSessionCookie(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionCookie = v
}

// doJSON ejecuta una petición JSON y decodifica la respuesta en out (si no
// es nil). op identifica la operación en logs y fallos de decodificación.
// Exactamente un round trip; los fallos salen tipados, nunca como panic.
func (c *Client) doJSON(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo de %s: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: crear petición de %s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(op, req, out)
}

// do completa cabeceras comunes, ejecuta la petición y decodifica.
func (c *Client) do(op string, req *http.Request, out interface{}) error {
	reqID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if cookie := c.SessionCookie(); cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Str("op", op).Str("request_id", reqID).Err(err).Msg("api: red no disponible")
		return &domain.TransportError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	// Capturar la cookie de sesión si el backend la (re)emitió.
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookieName {
			c.SetSessionCookie(ck.Value)
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.TransportError{Status: resp.StatusCode, Message: "leer respuesta: " + err.Error()}
	}

	c.log.Debug().
		Str("op", op).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api: round trip")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er dto.ErrorResponse
		if jsonErr := json.Unmarshal(raw, &er); jsonErr == nil && er.Message != "" {
			return &domain.TransportError{Status: resp.StatusCode, Code: er.Code, Message: er.Message}
		}
		return &domain.TransportError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.DecodeError{Op: op, Err: err}
	}
	return nil
}
