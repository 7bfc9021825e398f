package devserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// listCustomers GET /api/customers
func (s *Server) listCustomers(c *fiber.Ctx) error {
	return c.JSON(s.store.listCustomers())
}

// getCustomer GET /api/customers/:id
func (s *Server) getCustomer(c *fiber.Ctx) error {
	cust, ok := s.store.getCustomer(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(cust)
}

// createCustomer POST /api/customers
func (s *Server) createCustomer(c *fiber.Ctx) error {
	var in dto.CustomerPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" || in.ContactPerson == "" || in.Email == "" || in.Phone == 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "companyName, contactPerson, email y phone son requeridos"})
	}
	created := s.store.createCustomer(entity.Customer{
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Description:   in.Description,
	})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// updateCustomer PUT /api/customers/:id
func (s *Server) updateCustomer(c *fiber.Ctx) error {
	var in dto.CustomerPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, ok := s.store.updateCustomer(c.Params("id"), func(cust *entity.Customer) {
		cust.CompanyName = in.CompanyName
		cust.ContactPerson = in.ContactPerson
		cust.Email = in.Email
		cust.Phone = in.Phone
		cust.Address = in.Address
		cust.Description = in.Description
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(updated)
}

// deleteCustomer DELETE /api/customers/:id
func (s *Server) deleteCustomer(c *fiber.Ctx) error {
	if !s.store.deleteCustomer(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(dto.DeleteResponse{Message: "cliente eliminado"})
}
