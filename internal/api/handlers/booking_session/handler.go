package booking_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/booking"
	"github.com/m04kA/SMC-SlotBooking/internal/service/sessions"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgSessionNotFound    = "Booking session not found or expired."
	msgInvalidDate        = "Please select a valid date."
	msgDateUnavailable    = "This date is not available for booking."
	msgInvalidTime        = "Please select a time slot."
	msgSlotNotOffered     = "The selected time slot is not offered for this date."
	msgSlotsNotReady      = "Time slots are not loaded yet."
	msgSubmissionInFlight = "Your booking is already being submitted."
	msgSessionCompleted   = "This appointment is already booked."
)

type Handler struct {
	store  SessionStore
	logger Logger
}

func NewHandler(store SessionStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Get GET /api/v1/booking-sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r, "GET /booking-sessions/{id}")
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(session.Snapshot()))
}

// SelectDate PUT /api/v1/booking-sessions/{sessionId}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /booking-sessions/{id}/date"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseCalendarDate(req.Date)
	if err != nil {
		h.logger.Warn("%s - Invalid date %q: session_id=%s", op, req.Date, session.ID())
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	snap, err := session.SelectDate(r.Context(), date)
	if err != nil {
		h.respondSessionError(w, op, snap, err)
		return
	}

	h.logger.Info("%s - Date selected: session_id=%s, date=%s, state=%s", op, snap.ID, snap.Date, snap.State)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// SelectSlot PUT /api/v1/booking-sessions/{sessionId}/slot
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /booking-sessions/{id}/slot"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("%s - Invalid time %q: session_id=%s", op, req.Time, session.ID())
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	snap, err := session.SelectSlot(slot)
	if err != nil {
		h.respondSessionError(w, op, snap, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// UpdateContact PUT /api/v1/booking-sessions/{sessionId}/contact
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /booking-sessions/{id}/contact"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	var req ContactDetails
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := session.UpdateContact(req.ToDomain())
	if err != nil {
		h.respondSessionError(w, op, snap, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// Submit POST /api/v1/booking-sessions/{sessionId}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "POST /booking-sessions/{id}/submit"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	snap, err := session.Submit(r.Context())
	if err != nil {
		h.respondSessionError(w, op, snap, err)
		return
	}

	h.logger.Info("%s - Booking confirmed: session_id=%s, provider=%s, date=%s, time=%s",
		op, snap.ID, snap.ProviderID, snap.Date, snap.SelectedSlot)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// Delete DELETE /api/v1/booking-sessions/{sessionId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /booking-sessions/{id}"
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.store.Delete(sessionID); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("%s - Session not found: session_id=%s", op, sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("%s - Failed to delete session: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Session closed: session_id=%s", op, sessionID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request, op string) (*booking.Session, bool) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("%s - Session not found: session_id=%s", op, sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return nil, false
		}
		h.logger.Error("%s - Failed to get session: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
		return nil, false
	}

	return session, true
}

func (h *Handler) respondSessionError(w http.ResponseWriter, op string, snap booking.Snapshot, err error) {
	body := handlers.ErrorResponse{Session: FromSnapshot(snap)}

	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		h.logger.Warn("%s - Validation failed: session_id=%s, field=%s", op, snap.ID, verr.Field)
		body.Field = verr.Field
		body.Message = verr.Message
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, body)

	case errors.Is(err, booking.ErrDateUnavailable):
		h.logger.Warn("%s - Date unavailable: session_id=%s, error=%v", op, snap.ID, err)
		body.Field = booking.FieldDate
		body.Message = msgDateUnavailable
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, body)

	case errors.Is(err, booking.ErrSlotNotOffered):
		h.logger.Warn("%s - Slot not offered: session_id=%s, error=%v", op, snap.ID, err)
		body.Field = booking.FieldSlot
		body.Message = msgSlotNotOffered
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, body)

	case errors.Is(err, booking.ErrSlotsNotReady):
		h.logger.Warn("%s - Slots not ready: session_id=%s, state=%s", op, snap.ID, snap.State)
		body.Message = msgSlotsNotReady
		handlers.RespondErrorDetails(w, http.StatusConflict, body)

	case errors.Is(err, booking.ErrSubmissionInFlight):
		h.logger.Warn("%s - Submission in flight: session_id=%s", op, snap.ID)
		body.Message = msgSubmissionInFlight
		handlers.RespondErrorDetails(w, http.StatusConflict, body)

	case errors.Is(err, booking.ErrSessionCompleted):
		h.logger.Warn("%s - Session completed: session_id=%s", op, snap.ID)
		body.Message = msgSessionCompleted
		handlers.RespondErrorDetails(w, http.StatusConflict, body)

	case errors.Is(err, booking.ErrSubmissionFailed):
		h.logger.Warn("%s - Booking rejected: session_id=%s, error=%v", op, snap.ID, err)
		body.Message = snap.SubmitError
		handlers.RespondErrorDetails(w, http.StatusBadGateway, body)

	default:
		h.logger.Error("%s - Unexpected error: session_id=%s, error=%v", op, snap.ID, err)
		handlers.RespondInternalError(w)
	}
}
