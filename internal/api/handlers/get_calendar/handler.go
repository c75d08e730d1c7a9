package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-SlotBooking/internal/usecase/get_calendar"
)

const (
	msgSessionNotFound = "Booking session not found or expired."
	msgInvalidMonth    = "Invalid month, expected YYYY-MM."
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-sessions/{sessionId}/calendar?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	month := r.URL.Query().Get("month")

	result, err := h.useCase.Execute(&getCalendar.Request{SessionID: sessionID, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrSessionNotFound):
			h.logger.Warn("GET /booking-sessions/{id}/calendar - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /booking-sessions/{id}/calendar - Invalid month %q: session_id=%s", month, sessionID)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /booking-sessions/{id}/calendar - Failed to build calendar: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
