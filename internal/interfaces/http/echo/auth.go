package echo

import (
	e "github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	app "github.com/mohammadpnp/scim-provision/internal/application/admin"
)

// BasicAuth guards the admin surface with HTTP Basic credentials checked
// against the admin store.
func BasicAuth(authenticate app.Authenticate) e.MiddlewareFunc {
	return middleware.BasicAuth(func(username, password string, c e.Context) (bool, error) {
		out, err := authenticate.Execute(c.Request().Context(), app.AuthenticateInput{
			Username: username,
			Password: password,
		})
		if err != nil {
			return false, nil
		}
		c.Set("admin_username", out.Username)
		return true, nil
	})
}
