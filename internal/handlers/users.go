package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alfagnish/demoapi/internal/models"
	"github.com/go-chi/chi/v5"
)

// UsersHandler provides the user creation endpoint. Nothing is stored: the
// submitted user is echoed back.
type UsersHandler struct {
	log *slog.Logger
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(logger *slog.Logger) *UsersHandler {
	return &UsersHandler{log: logger}
}

// Routes registers user routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Post("/", h.CreateUser)
}

// CreateUser echoes the submitted user inside a confirmation message.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := req.User()
	h.log.DebugContext(r.Context(), "user created", "username", user.Username)

	writeJSON(w, http.StatusOK, models.CreateUserResponse{
		Message: "User created",
		User:    user,
	})
}
