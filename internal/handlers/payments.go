package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alfagnish/demoapi/internal/models"
	"github.com/alfagnish/demoapi/internal/payments"
	"github.com/go-chi/chi/v5"
)

// PaymentsHandler provides the simulated charge and history endpoints.
type PaymentsHandler struct {
	log       *slog.Logger
	processor *payments.Processor
	history   *payments.History
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(logger *slog.Logger, p *payments.Processor, hist *payments.History) *PaymentsHandler {
	return &PaymentsHandler{log: logger, processor: p, history: hist}
}

// Routes registers payment routes on the given chi router.
func (h *PaymentsHandler) Routes(r chi.Router) {
	r.Post("/", h.ProcessPayment)
	r.Get("/history/{user_id}", h.History)
}

// ProcessPayment charges the card in the request. Any well-formed request
// succeeds with the fixed transaction ID; only cancellation of the request
// context can fail it.
func (h *PaymentsHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	payment := req.PaymentRequest()

	receipt, err := h.processor.Process(r.Context(), payment)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			h.log.WarnContext(r.Context(), "payment cancelled", "user_id", payment.UserID, "error", err)
			writeError(w, http.StatusServiceUnavailable, "payment processing cancelled")
			return
		}
		h.log.ErrorContext(r.Context(), "payment failed", "user_id", payment.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "payment processing failed")
		return
	}

	h.log.InfoContext(r.Context(), "payment processed",
		"user_id", payment.UserID,
		"amount", receipt.Amount,
		"card", receipt.MaskedCard,
		"transaction_id", receipt.TransactionID,
		"log_bytes", receipt.LogBytes,
		"fetched", receipt.Fetched,
	)

	writeJSON(w, http.StatusOK, models.PaymentResponse{
		Status:        "success",
		TransactionID: receipt.TransactionID,
	})
}

// History streams every synthetic payment record for the user. There is no
// pagination.
func (h *PaymentsHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := h.history.WriteJSON(w, userID); err != nil {
		// Headers are already sent; all that is left is to log.
		h.log.WarnContext(r.Context(), "history stream aborted", "user_id", userID, "error", err)
	}
}
