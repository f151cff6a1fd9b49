package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/scim-provision/internal/application/admin"
)

type AdminHandler struct {
	create app.CreateAdmin
}

func NewAdminHandler(create app.CreateAdmin) *AdminHandler {
	return &AdminHandler{create: create}
}

type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	out, err := h.create.Execute(c.Request().Context(), app.CreateAdminInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDuplicateAdmin):
			return c.JSON(http.StatusConflict, apiResponse{Error: &errorBody{
				Code:    "duplicate_admin",
				Message: "username already exists",
			}})
		case errors.Is(err, app.ErrInvalidAdmin):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_admin",
				Message: err.Error(),
			}})
		default:
			return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
				Code:    "internal_error",
				Message: "failed to create admin user",
			}})
		}
	}

	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *AdminHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
