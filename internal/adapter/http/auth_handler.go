package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"ashgrove-backend/internal/usecase/auth"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthHandler struct {
	uc *auth.Usecase
}

func NewAuthHandler(uc *auth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}

	res, err := h.uc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Printf("[AUTH] login failed: %v", err)
		}
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid credentials",
		})
	}
	return c.JSON(http.StatusOK, res)
}

// Logout is stateless: tokens expire on their own, the endpoint exists
// so clients have a uniform place to end a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
