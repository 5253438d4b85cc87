package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ordering/internal/adapters/in/http/docs"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// LoadAPIDoc reads the registered swagger document and converts it to OpenAPI 3 so
// requests can be validated against the same contract the swagger UI shows.
func LoadAPIDoc() (*openapi3.T, error) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read swagger doc: %w", err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(raw), &doc2); err != nil {
		return nil, fmt.Errorf("decode swagger doc: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger doc: %w", err)
	}

	return doc3, nil
}

// RequestValidator checks path parameters and bodies against doc. Routes that the
// document does not describe pass through untouched.
func RequestValidator(doc *openapi3.T, basePath string) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		MultiError: false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, ok := findRoute(doc, basePath, c)
			if !ok {
				return next(c)
			}

			pathParams := make(map[string]string, len(c.ParamNames()))
			for _, name := range c.ParamNames() {
				pathParams[name] = c.Param(name)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(c.Request().Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(c)
		}
	}
}

func findRoute(doc *openapi3.T, basePath string, c echo.Context) (*routers.Route, bool) {
	path, found := strings.CutPrefix(c.Path(), basePath)
	if !found || doc.Paths == nil {
		return nil, false
	}

	template := toTemplatePath(path)
	pathItem := doc.Paths.Value(template)
	if pathItem == nil {
		return nil, false
	}

	method := c.Request().Method
	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, false
	}

	return &routers.Route{
		Spec:      doc,
		Path:      template,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}, true
}

// toTemplatePath turns an echo route such as /orders/:orderId/pay into /orders/{orderId}/pay.
func toTemplatePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) && requestErr.Parameter != nil {
		return fmt.Sprintf("invalid parameter %s: %s", requestErr.Parameter.Name, requestErr.Error())
	}
	return err.Error()
}
