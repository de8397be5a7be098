package handlers

import (
	"net/http"

	"github.com/alfagnish/demoapi/internal/config"
	"github.com/go-chi/chi/v5"
)

// SystemHandler serves the welcome and health endpoints.
type SystemHandler struct {
	cfg *config.Config
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

// Routes registers the system routes on the given chi router.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

// Root returns the welcome message.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": h.cfg.WelcomeMessage})
}

// Health reports liveness. The service has no upstream dependencies, so it
// is healthy whenever it can answer.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers requests whose path matches but method does not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
