package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// maxLogoBytes tamaño máximo del logo.
const maxLogoBytes = 5 << 20 // 5 MiB

// Verificar en tiempo de compilación que ProfileGateway implementa el puerto.
var _ ports.ProfileGateway = (*ProfileGateway)(nil)

// ProfileGateway operaciones REST sobre el perfil único del negocio.
type ProfileGateway struct {
	c *Client
}

// NewProfileGateway construye el gateway sobre el cliente compartido.
func NewProfileGateway(c *Client) *ProfileGateway {
	return &ProfileGateway{c: c}
}

// Get GET /api/profile. Un 404 no es un error: significa "aún no hay
// perfil" y se devuelve (nil, nil). Se distingue por el status HTTP
// estructurado, nunca por el texto del mensaje.
func (g *ProfileGateway) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	var p entity.BusinessProfile
	err := g.c.doJSON(ctx, "profile.get", http.MethodGet, "/api/profile", nil, &p)
	if err != nil {
		if domain.IsStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create POST /api/profile.
func (g *ProfileGateway) Create(ctx context.Context, in dto.ProfilePayload) (*entity.BusinessProfile, error) {
	var p entity.BusinessProfile
	if err := g.c.doJSON(ctx, "profile.create", http.MethodPost, "/api/profile", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update PUT /api/profile con el patch parcial.
func (g *ProfileGateway) Update(ctx context.Context, in dto.ProfilePatch) (*entity.BusinessProfile, error) {
	var p entity.BusinessProfile
	if err := g.c.doJSON(ctx, "profile.update", http.MethodPut, "/api/profile", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UploadLogo POST /api/profile/logo, multipart con campo "logo".
// Restricciones locales antes de tocar la red: el blob debe ser una imagen
// (sniffing del contenido, no de la extensión) y pesar a lo sumo 5 MiB.
func (g *ProfileGateway) UploadLogo(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.NewValidationError("logo", "el archivo está vacío")
	}
	if len(data) > maxLogoBytes {
		return "", domain.NewValidationError("logo", "supera el máximo de 5 MiB")
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return "", domain.NewValidationError("logo", "el archivo no es una imagen")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("logo", filename)
	if err != nil {
		return "", fmt.Errorf("api: armar multipart del logo: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return "", fmt.Errorf("api: escribir multipart del logo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("api: cerrar multipart del logo: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.c.baseURL+"/api/profile/logo", &buf)
	if err != nil {
		return "", fmt.Errorf("api: crear petición de logo: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out dto.UploadResponse
	if err := g.c.do("profile.logo", req, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
