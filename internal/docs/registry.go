// Package docs collects route descriptors at startup and renders them as an
// OpenAPI 3.1 document, along with embedded HTML pages for interactive API
// explorers. Registration conflicts are reported as errors so wiring mistakes
// fail the process before it starts serving.
package docs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateOperationID is returned when two routes register the same
	// operation id.
	ErrDuplicateOperationID = errors.New("duplicate operation id")

	// ErrDuplicateRoute is returned when two routes register the same
	// method and path pair.
	ErrDuplicateRoute = errors.New("duplicate method and path")

	// ErrInvalidRoute is returned when a descriptor is missing its method,
	// path or operation id.
	ErrInvalidRoute = errors.New("invalid route descriptor")
)

// Route describes a single documented endpoint. Request and Response carry Go
// types (typically pointers to zero values) whose JSON schemas are reflected
// into the document; either may be nil when the endpoint has no body.
type Route struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	Tags        []string

	// Public marks endpoints reachable without a session.
	Public bool

	// Status is the success status code; zero means 200.
	Status   int
	Request  any
	Response any
}

// Registry accumulates route descriptors during wiring. It is not safe for
// concurrent registration; all routes are registered on the main goroutine
// before the server starts.
type Registry struct {
	title   string
	version string

	routes       []Route
	operationIDs map[string]bool
	methodPaths  map[string]bool
}

func NewRegistry(title, version string) *Registry {
	return &Registry{
		title:        title,
		version:      version,
		operationIDs: make(map[string]bool),
		methodPaths:  make(map[string]bool),
	}
}

// Register adds a route descriptor. Duplicate operation ids and duplicate
// method+path pairs are rejected; callers treat that as a startup failure.
func (r *Registry) Register(route Route) error {
	if route.Method == "" || route.Path == "" || route.OperationID == "" {
		return fmt.Errorf("%w: method=%q path=%q operation=%q",
			ErrInvalidRoute, route.Method, route.Path, route.OperationID)
	}

	route.Method = strings.ToUpper(route.Method)
	if route.Status == 0 {
		route.Status = 200
	}

	if r.operationIDs[route.OperationID] {
		return fmt.Errorf("%w: %s", ErrDuplicateOperationID, route.OperationID)
	}
	methodPath := route.Method + " " + route.Path
	if r.methodPaths[methodPath] {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, methodPath)
	}

	r.operationIDs[route.OperationID] = true
	r.methodPaths[methodPath] = true
	r.routes = append(r.routes, route)
	return nil
}

// Routes returns the registered descriptors ordered by path, then method.
func (r *Registry) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}
