package echo

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/scim-provision/internal/application/bulkimport"
)

type ImportHandler struct {
	service *bulkimport.Service
}

func NewImportHandler(service *bulkimport.Service) *ImportHandler {
	return &ImportHandler{service: service}
}

// BulkImport accepts a multipart CSV upload and runs it through the import
// pipeline. File and structural failures come back as a failed report with
// HTTP 200; only a missing file part is a request error.
func (h *ImportHandler) BulkImport(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return scimError(c, http.StatusBadRequest, "multipart field 'file' is required")
	}

	src, err := header.Open()
	if err != nil {
		return scimError(c, http.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return scimError(c, http.StatusBadRequest, "could not read uploaded file")
	}

	report := h.service.Run(c.Request().Context(), bulkimport.Input{
		RealmID:  c.Param("realm_id"),
		FileName: header.Filename,
		Size:     header.Size,
		Content:  content,
		Policy: bulkimport.Policy{
			DryRun:          boolParam(c, "dry_run", false),
			SkipDuplicates:  boolParam(c, "skip_duplicates", true),
			ContinueOnError: boolParam(c, "continue_on_error", true),
		},
	})

	return c.JSON(http.StatusOK, report)
}

func (h *ImportHandler) Template(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="user_import_template.csv"`)
	return c.Blob(http.StatusOK, "text/csv", bulkimport.Template())
}

func (h *ImportHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Limits())
}

// boolParam reads a policy flag from the multipart form first, then the
// query string.
func boolParam(c echo.Context, name string, fallback bool) bool {
	raw := c.FormValue(name)
	if raw == "" {
		raw = c.QueryParam(name)
	}
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
