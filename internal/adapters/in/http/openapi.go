package http

import (
	_ "embed"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openAPISpec []byte

var (
	openAPIOnce sync.Once
	openAPIDoc  *openapi3.T
	openAPIErr  error
)

// loadOpenAPIDoc parses and validates the embedded API description once.
func loadOpenAPIDoc() (*openapi3.T, error) {
	openAPIOnce.Do(func() {
		loader := openapi3.NewLoader()
		openAPIDoc, openAPIErr = loader.LoadFromData(openAPISpec)
		if openAPIErr != nil {
			return
		}
		openAPIErr = openAPIDoc.Validate(loader.Context)
	})
	return openAPIDoc, openAPIErr
}

// OpenAPISchema handles GET /openapi.json - serves the API description.
func (s *Server) OpenAPISchema(ctx echo.Context) error {
	doc, err := loadOpenAPIDoc()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load API schema",
		})
	}

	return ctx.JSON(http.StatusOK, doc)
}
