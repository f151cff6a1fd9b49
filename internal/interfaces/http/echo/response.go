package echo

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const errorSchema = "urn:ietf:params:scim:api:messages:2.0:Error"

// scimErrorBody follows the SCIM error message shape. Status is a string
// per RFC 7644.
type scimErrorBody struct {
	Schemas []string `json:"schemas"`
	Detail  string   `json:"detail"`
	Status  string   `json:"status"`
}

func scimError(c echo.Context, status int, detail string) error {
	return c.JSON(status, scimErrorBody{
		Schemas: []string{errorSchema},
		Detail:  detail,
		Status:  strconv.Itoa(status),
	})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// apiResponse wraps the admin (non-SCIM) endpoints.
type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}
