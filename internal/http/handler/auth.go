package handler

import (
	"github.com/gofiber/fiber/v2"

	"cdms/internal/model"
	"cdms/internal/service"
)

type registerRequest struct {
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Department model.Department `json:"department"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser handles POST /api/auth/register.
func RegisterUser(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := authSvc.Register(c.UserContext(), req.Email, req.Password, req.Department)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// LoginUser handles POST /api/auth/login.
func LoginUser(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := authSvc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}
