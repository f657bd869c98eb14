package docs

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-auth-api/models"
	"github.com/invopop/jsonschema"
)

// sessionSchemeName identifies the cookie security scheme in the document.
const sessionSchemeName = "sessionCookie"

// Document is an OpenAPI 3.1 description of the API. Only the subset of the
// specification this service uses is modelled.
type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Paths      map[string]PathItem `json:"paths"`
	Components Components          `json:"components"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// PathItem maps lowercase HTTP methods to their operations.
type PathItem map[string]*Operation

type Operation struct {
	OperationID string                `json:"operationId"`
	Summary     string                `json:"summary,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
	Security    []map[string][]string `json:"security,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses"`
}

type RequestBody struct {
	Required bool                 `json:"required"`
	Content  map[string]MediaType `json:"content"`
}

type MediaType struct {
	Schema *jsonschema.Schema `json:"schema"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

type Components struct {
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes"`
}

type SecurityScheme struct {
	Type        string `json:"type"`
	In          string `json:"in,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Build renders the registered routes as an OpenAPI 3.1 document. Schemas are
// reflected from the Go request/response types; every operation additionally
// documents the error envelope under the "default" response.
func (r *Registry) Build() *Document {
	doc := &Document{
		OpenAPI: "3.1.0",
		Info:    Info{Title: r.title, Version: r.version},
		Paths:   make(map[string]PathItem),
		Components: Components{
			SecuritySchemes: map[string]SecurityScheme{
				sessionSchemeName: {
					Type:        "apiKey",
					In:          "cookie",
					Name:        "session_id",
					Description: "Opaque session token issued on login.",
				},
			},
		},
	}

	errorSchema := reflectSchema(&models.ErrorResponse{})

	for _, route := range r.Routes() {
		op := &Operation{
			OperationID: route.OperationID,
			Summary:     route.Summary,
			Tags:        route.Tags,
			Responses: map[string]Response{
				"default": {
					Description: "Error",
					Content:     jsonContent(errorSchema),
				},
			},
		}

		if !route.Public {
			op.Security = []map[string][]string{{sessionSchemeName: {}}}
		}

		if route.Request != nil {
			op.RequestBody = &RequestBody{
				Required: true,
				Content:  jsonContent(reflectSchema(route.Request)),
			}
		}

		success := Response{Description: http.StatusText(route.Status)}
		if route.Response != nil {
			success.Content = jsonContent(reflectSchema(route.Response))
		}
		op.Responses[strconv.Itoa(route.Status)] = success

		item, ok := doc.Paths[route.Path]
		if !ok {
			item = make(PathItem)
			doc.Paths[route.Path] = item
		}
		item[strings.ToLower(route.Method)] = op
	}

	return doc
}

// reflectSchema reflects a Go type into an inline JSON schema. Definitions are
// expanded in place so the document needs no shared components section for
// model schemas.
func reflectSchema(v any) *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true, // inline defs
		ExpandedStruct: true, // put struct at root
	}
	return reflector.Reflect(v)
}

func jsonContent(schema *jsonschema.Schema) map[string]MediaType {
	return map[string]MediaType{
		"application/json": {Schema: schema},
	}
}
