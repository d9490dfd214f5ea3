package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiContract []byte

// LoadOpenAPIContract parses and validates the embedded OpenAPI document.
// Called at startup so a contract that drifted into invalidity fails the
// boot instead of serving garbage.
func LoadOpenAPIContract(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiContract)
	if err != nil {
		return nil, fmt.Errorf("parse openapi contract: %w", err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi contract: %w", err)
	}
	return doc, nil
}

// RegisterOpenAPIRoute serves the embedded contract at /openapi.json.
func RegisterOpenAPIRoute(e *echo.Echo) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, openapiContract)
	})
}
