package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/scim-provision/internal/application/realm"
)

type RealmHandler struct {
	create app.CreateRealm
	get    app.GetRealm
	list   app.ListRealms
}

func NewRealmHandler(create app.CreateRealm, get app.GetRealm, list app.ListRealms) *RealmHandler {
	return &RealmHandler{create: create, get: get, list: list}
}

type createRealmRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *RealmHandler) CreateRealm(c echo.Context) error {
	var req createRealmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	out, err := h.create.Execute(c.Request().Context(), app.CreateRealmInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidRealm) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_realm",
				Message: "name is required",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to create realm",
		}})
	}

	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *RealmHandler) GetRealm(c echo.Context) error {
	out, err := h.get.Execute(c.Request().Context(), app.GetRealmInput{
		RealmID: c.Param("realm_id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrRealmNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "realm not found",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get realm",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *RealmHandler) ListRealms(c echo.Context) error {
	out, err := h.list.Execute(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to list realms",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
