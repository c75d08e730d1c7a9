package get_provider_receipts

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	msgInvalidProviderID = "User ID cannot be empty."
	msgInvalidLimit      = "Limit must be a number between 1 and 500."
)

type Handler struct {
	repo   ReceiptRepository
	logger Logger
}

func NewHandler(repo ReceiptRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/receipts?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := strings.TrimSpace(mux.Vars(r)["providerId"])
	if providerID == "" {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	limit := uint64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 || parsed > maxLimit {
			h.logger.Warn("GET /providers/{id}/receipts - Invalid limit %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	receipts, err := h.repo.ListByProvider(r.Context(), providerID, limit)
	if err != nil {
		h.logger.Error("GET /providers/{id}/receipts - Failed to list receipts: provider=%s, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/receipts - %d receipts: provider=%s", len(receipts), providerID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(providerID, receipts))
}
