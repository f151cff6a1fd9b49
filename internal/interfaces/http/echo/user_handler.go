package echo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/scim-provision/internal/application/user"
)

type UserHandler struct {
	create     app.CreateUser
	getByID    app.GetUserByID
	getByName  app.GetUserByUserName
	getByEmail app.GetUserByEmail
	list       app.ListUsers
	update     app.UpdateUser
	remove     app.DeleteUser
}

func NewUserHandler(
	create app.CreateUser,
	getByID app.GetUserByID,
	getByName app.GetUserByUserName,
	getByEmail app.GetUserByEmail,
	list app.ListUsers,
	update app.UpdateUser,
	remove app.DeleteUser,
) *UserHandler {
	return &UserHandler{
		create:     create,
		getByID:    getByID,
		getByName:  getByName,
		getByEmail: getByEmail,
		list:       list,
		update:     update,
		remove:     remove,
	}
}

type userRequest struct {
	UserName    string           `json:"userName"`
	ExternalID  string           `json:"externalId"`
	FirstName   string           `json:"firstName"`
	SurName     string           `json:"surName"`
	DisplayName string           `json:"displayName"`
	Active      *bool            `json:"active"`
	Emails      []app.EmailInput `json:"emails"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return scimError(c, http.StatusBadRequest, "invalid request body")
	}

	out, err := h.create.Execute(c.Request().Context(), app.CreateUserInput{
		RealmID:     c.Param("realm_id"),
		UserName:    req.UserName,
		ExternalID:  req.ExternalID,
		FirstName:   req.FirstName,
		SurName:     req.SurName,
		DisplayName: req.DisplayName,
		Active:      req.Active,
		Emails:      req.Emails,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrRealmNotFound):
			return scimError(c, http.StatusNotFound, "realm not found")
		case errors.Is(err, app.ErrDuplicateUserName):
			return scimError(c, http.StatusConflict, "userName already exists in realm")
		case errors.Is(err, app.ErrInvalidUser):
			return scimError(c, http.StatusBadRequest, err.Error())
		default:
			return scimError(c, http.StatusInternalServerError, "failed to create user")
		}
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	out, err := h.getByID.Execute(c.Request().Context(), app.GetUserByIDInput{
		RealmID: c.Param("realm_id"),
		UserID:  c.Param("user_id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID):
			return scimError(c, http.StatusBadRequest, "user id must be a valid UUID")
		case errors.Is(err, app.ErrUserNotFound):
			return scimError(c, http.StatusNotFound, "user not found")
		default:
			return scimError(c, http.StatusInternalServerError, "failed to get user")
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) GetUserByUserName(c echo.Context) error {
	out, err := h.getByName.Execute(c.Request().Context(), app.GetUserByUserNameInput{
		RealmID:  c.Param("realm_id"),
		UserName: c.Param("user_name"),
	})
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			return scimError(c, http.StatusNotFound, "user not found")
		}
		return scimError(c, http.StatusInternalServerError, "failed to get user")
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return scimError(c, http.StatusBadRequest, "email query parameter is required")
	}

	out, err := h.getByEmail.Execute(c.Request().Context(), app.GetUserByEmailInput{
		RealmID: c.Param("realm_id"),
		Email:   email,
	})
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			return scimError(c, http.StatusNotFound, "user not found")
		}
		return scimError(c, http.StatusInternalServerError, "failed to get user")
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	startIndex, _ := strconv.Atoi(c.QueryParam("startIndex"))
	count, _ := strconv.Atoi(c.QueryParam("count"))

	out, err := h.list.Execute(c.Request().Context(), app.ListUsersInput{
		RealmID:    c.Param("realm_id"),
		StartIndex: startIndex,
		Count:      count,
		Filter:     c.QueryParam("filter"),
	})
	if err != nil {
		return scimError(c, http.StatusInternalServerError, "failed to list users")
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req struct {
		UserName    *string          `json:"userName"`
		ExternalID  *string          `json:"externalId"`
		FirstName   *string          `json:"firstName"`
		SurName     *string          `json:"surName"`
		DisplayName *string          `json:"displayName"`
		Active      *bool            `json:"active"`
		Emails      []app.EmailInput `json:"emails"`
	}
	if err := c.Bind(&req); err != nil {
		return scimError(c, http.StatusBadRequest, "invalid request body")
	}

	out, err := h.update.Execute(c.Request().Context(), app.UpdateUserInput{
		RealmID:     c.Param("realm_id"),
		UserID:      c.Param("user_id"),
		UserName:    req.UserName,
		ExternalID:  req.ExternalID,
		FirstName:   req.FirstName,
		SurName:     req.SurName,
		DisplayName: req.DisplayName,
		Active:      req.Active,
		Emails:      req.Emails,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID):
			return scimError(c, http.StatusBadRequest, "user id must be a valid UUID")
		case errors.Is(err, app.ErrUserNotFound):
			return scimError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, app.ErrDuplicateUserName):
			return scimError(c, http.StatusConflict, "userName already exists in realm")
		case errors.Is(err, app.ErrInvalidUser):
			return scimError(c, http.StatusBadRequest, err.Error())
		default:
			return scimError(c, http.StatusInternalServerError, "failed to update user")
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	err := h.remove.Execute(c.Request().Context(), app.DeleteUserInput{
		RealmID: c.Param("realm_id"),
		UserID:  c.Param("user_id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID):
			return scimError(c, http.StatusBadRequest, "user id must be a valid UUID")
		case errors.Is(err, app.ErrUserNotFound):
			return scimError(c, http.StatusNotFound, "user not found")
		default:
			return scimError(c, http.StatusInternalServerError, "failed to delete user")
		}
	}

	return c.NoContent(http.StatusNoContent)
}
