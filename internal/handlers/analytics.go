package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alfagnish/demoapi/internal/analytics"
	"github.com/go-chi/chi/v5"
)

// AnalyticsHandler serves synthetic per-user analytics.
type AnalyticsHandler struct {
	log *slog.Logger
	now func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{log: logger, now: time.Now}
}

// Routes registers analytics routes on the given chi router.
func (h *AnalyticsHandler) Routes(r chi.Router) {
	r.Get("/user/{user_id}", h.UserAnalytics)
}

// UserAnalytics returns the aggregated counters for a user. The range is
// always the current instant and every metric is enabled.
func (h *AnalyticsHandler) UserAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	now := h.now()
	rep := analytics.Aggregate(analytics.Request{
		UserID: userID,
		Start:  now,
		End:    now,
	}, analytics.AllMetrics())

	h.log.DebugContext(r.Context(), "analytics computed",
		"user_id", userID,
		"revenue_growth", rep.RevenueGrowth,
		"posts_growth", rep.PostsGrowth,
	)

	writeJSON(w, http.StatusOK, rep)
}
