// Package handlers contains the http handlers the host process exposes on server.port, so that the URL announced
// to the registry answers health and info probes.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"myregistrar/domain"
	"myregistrar/helpers"
	"myregistrar/interfaces"
	"myregistrar/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// ServerInterface is the set of endpoints served by the host process.
type ServerInterface interface {
	// GetHealth (GET /health)
	GetHealth(ctx echo.Context) error
	// GetInfo (GET /info)
	GetInfo(ctx echo.Context) error
}

// RegisterHandlers adds the ServerInterface routes to e.
func RegisterHandlers(e *echo.Echo, si ServerInterface) {
	e.GET("/health", si.GetHealth)
	e.GET("/info", si.GetInfo)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// InfoResponse is the body of GET /info.
type InfoResponse struct {
	ID string `json:"id"`
}

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	properties interfaces.PropertySource
	logger     log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil properties or logger.
func NewHTTPServer(properties interfaces.PropertySource, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		properties: helpers.NilPanic(properties, "handlers.http.go: properties is required"),
		logger:     logger,
	}
}

// GetHealth (GET /health) answers 200 {"status":"UP"} while the process serves requests. With verbose=true it
// adds details.identity, DOWN when the registration properties are incomplete.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	resp := HealthResponse{Status: statusUp}
	if verbose, _ := strconv.ParseBool(ectx.QueryParam("verbose")); verbose {
		identity := statusUp
		if _, err := service.LoadIdentity(h.properties); err != nil {
			identity = statusDown
		}
		resp.Details = map[string]string{"identity": identity}
	}
	return ectx.JSON(http.StatusOK, resp)
}

// GetInfo (GET /info) returns the configured application id. Returns 404 when info.id is not set.
func (h *HTTPServer) GetInfo(ectx echo.Context) error {
	id, ok := h.properties.Get(domain.PropertyID)
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return service.NewEntityNotFoundError(domain.PropertyID+" is not configured", nil)
	}

	return ectx.JSON(http.StatusOK, InfoResponse{ID: id})
}
