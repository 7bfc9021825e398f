package devserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// register POST /api/auth/register
func (s *Server) register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u, ok := s.store.addUser(in.Name, in.Email, hash)
	if !ok {
		return c.Status(fiber.StatusConflict).
			JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
	}
	if err := s.setSessionCookie(c, u); err != nil {
		return err
	}
	s.log.Info().Str("email", u.Email).Msg("devserver: usuario registrado")
	return c.Status(fiber.StatusCreated).
		JSON(entity.Session{ID: u.ID, Name: u.Name, Email: u.Email})
}

// login POST /api/auth/login
func (s *Server) login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u, ok := s.store.userByEmail(in.Email)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	if err := bcrypt.CompareHashAndPassword(u.Hash, []byte(in.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	if err := s.setSessionCookie(c, u); err != nil {
		return err
	}
	return c.JSON(entity.Session{ID: u.ID, Name: u.Name, Email: u.Email})
}
