// Package devserver implementa en memoria el contrato REST que consume la
// consola, para desarrollo local y tests de integración sin el backend
// real. No persiste nada: cada arranque parte vacío.
package devserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/pkg/config"
	"github.com/jhoicas/gestion-cli/pkg/jwt"
	"github.com/jhoicas/gestion-cli/pkg/logger"
)

// sessionCookieName debe coincidir con la cookie que espera el cliente.
const sessionCookieName = "session"

// Server el stub del backend con su estado en memoria.
type Server struct {
	app   *fiber.App
	store *memStore
	cfg   config.JWTConfig
	log   *logger.Logger
}

// New construye la aplicación fiber con todas las rutas del contrato.
// Si el secret JWT viene vacío se usa uno fijo de desarrollo.
func New(jwtCfg config.JWTConfig, log *logger.Logger) *Server {
	if jwtCfg.Secret == "" {
		jwtCfg.Secret = "gestion-devserver-secret"
	}
	if jwtCfg.Expiration <= 0 {
		jwtCfg.Expiration = 60 * 24
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		store: newMemStore(),
		cfg:   jwtCfg,
		log:   log,
	}

	app := fiber.New(fiber.Config{
		AppName: "gestion-devserver",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		},
	})
	app.Use(recover.New())

	api := app.Group("/api")
	authGroup := api.Group("/auth")
	authGroup.Post("/register", s.register)
	authGroup.Post("/login", s.login)

	customers := api.Group("/customers", s.requireAuth)
	customers.Get("/", s.listCustomers)
	customers.Post("/", s.createCustomer)
	customers.Get("/:id", s.getCustomer)
	customers.Put("/:id", s.updateCustomer)
	customers.Delete("/:id", s.deleteCustomer)

	profile := api.Group("/profile", s.requireAuth)
	profile.Get("/", s.getProfile)
	profile.Post("/", s.createProfile)
	profile.Put("/", s.updateProfile)
	profile.Post("/logo", s.uploadLogo)

	app.Get("/uploads/:name", s.serveUpload)

	s.app = app
	return s
}

// App expone la aplicación fiber (Listen en el binario, app.Test en tests).
func (s *Server) App() *fiber.App {
	return s.app
}

// requireAuth exige la cookie de sesión con un JWT válido.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	userID, name, email, err := jwt.Parse(s.cfg.Secret, token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida o expirada"})
	}
	c.Locals("user_id", userID)
	c.Locals("user_name", name)
	c.Locals("user_email", email)
	return c.Next()
}

// setSessionCookie emite la cookie de sesión firmada para el usuario.
func (s *Server) setSessionCookie(c *fiber.Ctx, u *user) error {
	token, err := jwt.Generate(s.cfg.Secret, u.ID, u.Name, u.Email, s.cfg.Issuer, s.cfg.Expiration)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}
