package http

import (
	"fmt"
	"sync"

	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDoc sync.Once

// RegisterSwagger serves the embedded OpenAPI document at /swagger/doc.json
// and the UI under /swagger/.
func RegisterSwagger(e *echo.Echo) error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi spec: %w", err)
	}
	spec.Servers = nil

	raw, err := spec.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}

	registerDoc.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          spec.Info.Version,
			Title:            spec.Info.Title,
			Description:      spec.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
