package devserver

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// maxLogoBytes mismo tope que aplica el cliente.
const maxLogoBytes = 5 << 20

// getProfile GET /api/profile
// El 404 aquí es deliberado: "aún no hay perfil" se comunica con el status
// code, que el cliente interpreta como estado válido y no como error.
func (s *Server) getProfile(c *fiber.Ctx) error {
	p, ok := s.store.getProfile()
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el negocio aún no tiene perfil"})
	}
	return c.JSON(p)
}

// createProfile POST /api/profile
func (s *Server) createProfile(c *fiber.Ctx) error {
	var in dto.ProfilePayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BusinessName == "" || len(in.ContactNumbers) == 0 || len(in.EmailAddresses) == 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "businessName, contactNumbers y emailAddresses son requeridos"})
	}
	created, ok := s.store.createProfile(entity.BusinessProfile{
		BusinessName:       in.BusinessName,
		RegistrationNumber: in.RegistrationNumber,
		Address:            in.Address,
		ContactNumbers:     in.ContactNumbers,
		EmailAddresses:     in.EmailAddresses,
		Logo:               in.Logo,
	})
	if !ok {
		return c.Status(fiber.StatusConflict).
			JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el perfil ya existe; use PUT para actualizar"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// updateProfile PUT /api/profile (merge parcial del lado servidor)
func (s *Server) updateProfile(c *fiber.Ctx) error {
	var in dto.ProfilePatch
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, ok := s.store.updateProfile(func(p *entity.BusinessProfile) {
		if in.BusinessName != nil {
			p.BusinessName = *in.BusinessName
		}
		if in.RegistrationNumber != nil {
			p.RegistrationNumber = *in.RegistrationNumber
		}
		if in.Address != nil {
			p.Address = *in.Address
		}
		if in.ContactNumbers != nil {
			p.ContactNumbers = *in.ContactNumbers
		}
		if in.EmailAddresses != nil {
			p.EmailAddresses = *in.EmailAddresses
		}
		if in.Logo != nil {
			p.Logo = *in.Logo
		}
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el negocio aún no tiene perfil"})
	}
	return c.JSON(updated)
}

// uploadLogo POST /api/profile/logo (multipart, campo "logo")
func (s *Server) uploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el campo logo"})
	}
	if fh.Size > maxLogoBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).
			JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: "el logo supera 5 MiB"})
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxLogoBytes+1))
	if err != nil {
		return err
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return c.Status(fiber.StatusUnsupportedMediaType).
			JSON(dto.ErrorResponse{Code: "NOT_IMAGE", Message: "el archivo no es una imagen"})
	}

	name := uuid.New().String() + filepath.Ext(fh.Filename)
	s.store.putUpload(name, data)
	url := "/uploads/" + name

	// Si ya hay perfil, el logo queda asociado de inmediato.
	s.store.updateProfile(func(p *entity.BusinessProfile) { p.Logo = url })

	return c.JSON(dto.UploadResponse{URL: url})
}

// serveUpload GET /uploads/:name
func (s *Server) serveUpload(c *fiber.Ctx) error {
	data, ok := s.store.getUpload(c.Params("name"))
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
	}
	c.Set("Content-Type", http.DetectContentType(data))
	return c.Send(data)
}
