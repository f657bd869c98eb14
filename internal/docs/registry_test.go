package docs

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAuthRoutes(t *testing.T, r *Registry) {
	t.Helper()

	routes := []Route{
		{
			Method:      http.MethodPost,
			Path:        "/api/auth/register",
			OperationID: "registerUser",
			Summary:     "Create a new account",
			Tags:        []string{"auth"},
			Public:      true,
			Status:      http.StatusCreated,
			Request:     &models.RegisterRequest{},
			Response:    &models.AuthResponse{},
		},
		{
			Method:      http.MethodPost,
			Path:        "/api/auth/login",
			OperationID: "login",
			Public:      true,
			Request:     &models.LoginRequest{},
			Response:    &models.AuthResponse{},
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/auth/profile",
			OperationID: "profile",
			Response:    &models.AuthResponse{},
		},
	}
	for _, route := range routes {
		require.NoError(t, r.Register(route))
	}
}

func TestRegistry_RejectsDuplicateOperationID(t *testing.T) {
	r := NewRegistry("auth-api", "1.0.0")
	registerAuthRoutes(t, r)

	err := r.Register(Route{
		Method:      http.MethodDelete,
		Path:        "/api/auth/session",
		OperationID: "login",
	})
	assert.ErrorIs(t, err, ErrDuplicateOperationID)
}

func TestRegistry_RejectsDuplicateMethodPath(t *testing.T) {
	r := NewRegistry("auth-api", "1.0.0")
	registerAuthRoutes(t, r)

	err := r.Register(Route{
		Method:      "post", // method casing must not hide the conflict
		Path:        "/api/auth/login",
		OperationID: "loginAgain",
	})
	assert.ErrorIs(t, err, ErrDuplicateRoute)
}

func TestRegistry_RejectsIncompleteDescriptor(t *testing.T) {
	r := NewRegistry("auth-api", "1.0.0")

	err := r.Register(Route{Method: http.MethodGet, Path: "/api/health"})
	assert.ErrorIs(t, err, ErrInvalidRoute)
}

func TestRegistry_RoutesAreSorted(t *testing.T) {
	r := NewRegistry("auth-api", "1.0.0")
	registerAuthRoutes(t, r)

	routes := r.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/api/auth/login", routes[0].Path)
	assert.Equal(t, "/api/auth/profile", routes[2].Path)
}

func TestBuild_Document(t *testing.T) {
	r := NewRegistry("auth-api", "1.2.3")
	registerAuthRoutes(t, r)

	doc := r.Build()
	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Equal(t, "auth-api", doc.Info.Title)
	assert.Equal(t, "1.2.3", doc.Info.Version)

	register := doc.Paths["/api/auth/register"]["post"]
	require.NotNil(t, register)
	assert.Equal(t, "registerUser", register.OperationID)
	assert.Empty(t, register.Security, "public route must not demand a session")
	require.NotNil(t, register.RequestBody)
	assert.Contains(t, register.Responses, "201")
	assert.Contains(t, register.Responses, "default", "error envelope must be documented")

	profile := doc.Paths["/api/auth/profile"]["get"]
	require.NotNil(t, profile)
	require.Len(t, profile.Security, 1)
	assert.Contains(t, profile.Security[0], sessionSchemeName)
	assert.Contains(t, profile.Responses, "200", "default success status is 200")
}

func TestBuild_DocumentMarshalsWithReflectedSchemas(t *testing.T) {
	r := NewRegistry("auth-api", "1.0.0")
	registerAuthRoutes(t, r)

	raw, err := json.Marshal(r.Build())
	require.NoError(t, err)

	// field names from the reflected request/response models
	for _, field := range []string{`"email"`, `"password"`, `"message"`} {
		assert.Contains(t, string(raw), field)
	}
}

func TestExplorerPagesEmbedSpecURL(t *testing.T) {
	const specURL = "/api-docs/openapi.json"

	swagger := string(SwaggerUI(specURL))
	assert.Contains(t, swagger, specURL)
	assert.Contains(t, swagger, "swagger-ui")

	scalar := string(Scalar(specURL))
	assert.Contains(t, scalar, specURL)
	assert.True(t, strings.Contains(scalar, "api-reference"))
}
