package create_booking_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	bookingSession "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/booking_session"
	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	lookupProvider "github.com/m04kA/SMC-SlotBooking/internal/usecase/lookup_provider"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgProviderNotFound   = "User not found."
	msgUnavailable        = "Something went wrong. Please try again."
)

type Handler struct {
	useCase LookupProviderUseCase
	logger  Logger
}

func NewHandler(useCase LookupProviderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &lookupProvider.Request{ProviderID: req.ProviderID})
	if err != nil {
		switch {
		case errors.Is(err, lookupProvider.ErrInvalidInput):
			h.logger.Warn("POST /booking-sessions - Empty provider id")
			handlers.RespondErrorDetails(w, http.StatusBadRequest, handlers.ErrorResponse{
				Field:   "providerId",
				Message: lookupProvider.MsgEmptyProviderID,
			})

		case errors.Is(err, lookupProvider.ErrProviderNotFound):
			h.logger.Warn("POST /booking-sessions - Provider not found: provider=%s", req.ProviderID)
			message := msgProviderNotFound
			if detail := scheduler.DetailOf(err); detail != "" {
				message = detail
			}
			handlers.RespondNotFound(w, message)

		case errors.Is(err, lookupProvider.ErrSchedulerUnavailable):
			h.logger.Error("POST /booking-sessions - Scheduler unavailable: provider=%s, error=%v", req.ProviderID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)

		default:
			h.logger.Error("POST /booking-sessions - Failed to open session: provider=%s, error=%v", req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions - Session opened: session_id=%s, provider=%s",
		result.SessionID, result.Snapshot.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, bookingSession.FromSnapshot(result.Snapshot))
}
