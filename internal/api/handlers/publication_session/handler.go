package publication_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/publication"
	"github.com/m04kA/SMC-SlotBooking/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgSessionNotFound    = "Publication session not found or expired."
	msgInvalidWeekday     = "Unknown day of the week."
	msgInvalidTime        = "Times must be in HH:MM format."
	msgSubmissionInFlight = "Your availability is already being saved."
	msgSessionCompleted   = "Availability is already saved."
)

type Handler struct {
	store       SessionStore
	sessionDeps publication.Dependencies
	logger      Logger
}

// NewHandler sessionDeps передаются каждой новой сессии публикации
func NewHandler(store SessionStore, sessionDeps publication.Dependencies, logger Logger) *Handler {
	return &Handler{
		store:       store,
		sessionDeps: sessionDeps,
		logger:      logger,
	}
}

// Create POST /api/v1/publication-sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	session := h.store.Create(func(id string) *publication.Session {
		return publication.NewSession(id, h.sessionDeps)
	})

	h.logger.Info("POST /publication-sessions - Session opened: session_id=%s", session.ID())
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(session.Snapshot()))
}

// Get GET /api/v1/publication-sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r, "GET /publication-sessions/{id}")
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(session.Snapshot()))
}

// Update PUT /api/v1/publication-sessions/{sessionId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /publication-sessions/{id}"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap := session.Snapshot()
	var err error
	if req.ProviderID != nil {
		if snap, err = session.SetProviderID(*req.ProviderID); err != nil {
			h.respondSessionError(w, op, snap, err)
			return
		}
	}
	if req.SlotDurationMinutes != nil {
		if snap, err = session.SetSlotDuration(*req.SlotDurationMinutes); err != nil {
			h.respondSessionError(w, op, snap, err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// SetDay PUT /api/v1/publication-sessions/{sessionId}/days/{weekday}
func (h *Handler) SetDay(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /publication-sessions/{id}/days/{weekday}"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	day, ok := h.weekday(w, r, op)
	if !ok {
		return
	}

	var req DayWindow
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := session.SetDay(day, req.ToDomain())
	if err != nil {
		h.respondSessionError(w, op, snap, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// ToggleDay POST /api/v1/publication-sessions/{sessionId}/days/{weekday}/toggle
func (h *Handler) ToggleDay(w http.ResponseWriter, r *http.Request) {
	const op = "POST /publication-sessions/{id}/days/{weekday}/toggle"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	day, ok := h.weekday(w, r, op)
	if !ok {
		return
	}

	snap, err := session.ToggleDay(day)
	if err != nil {
		h.respondSessionError(w, op, snap, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// Submit POST /api/v1/publication-sessions/{sessionId}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "POST /publication-sessions/{id}/submit"

	session, ok := h.session(w, r, op)
	if !ok {
		return
	}

	snap, err := session.Submit(r.Context())
	if err != nil {
		h.respondSessionError(w, op, snap, err)
		return
	}

	h.logger.Info("%s - Availability published: session_id=%s, provider=%s", op, snap.ID, snap.ProviderID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// Delete DELETE /api/v1/publication-sessions/{sessionId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /publication-sessions/{id}"
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

func (h *Handler) session(w http.ResponseWriter, r *http.Request, op string) (*publication.Session, bool) {
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

func (h *Handler) weekday(w http.ResponseWriter, r *http.Request, op string) (domain.Weekday, bool) {
	raw := mux.Vars(r)["weekday"]

	day, err := domain.ParseWeekday(raw)
	if err != nil {
		h.logger.Warn("%s - Invalid weekday %q", op, raw)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return "", false
	}

	return day, true
}

func (h *Handler) respondSessionError(w http.ResponseWriter, op string, snap publication.Snapshot, err error) {
	body := handlers.ErrorResponse{Session: FromSnapshot(snap)}

	var verr *publication.ValidationError
	switch {
	case errors.As(err, &verr):
		h.logger.Warn("%s - Validation failed: session_id=%s, field=%s", op, snap.ID, verr.Field)
		body.Field = verr.Field
		body.Message = verr.Message
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, body)

	case errors.Is(err, publication.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: session_id=%s, error=%v", op, snap.ID, err)
		body.Message = msgInvalidTime
		handlers.RespondErrorDetails(w, http.StatusBadRequest, body)

	case errors.Is(err, publication.ErrSubmissionInFlight):
		h.logger.Warn("%s - Submission in flight: session_id=%s", op, snap.ID)
		body.Message = msgSubmissionInFlight
		handlers.RespondErrorDetails(w, http.StatusConflict, body)

	case errors.Is(err, publication.ErrSessionCompleted):
		h.logger.Warn("%s - Session completed: session_id=%s", op, snap.ID)
		body.Message = msgSessionCompleted
		handlers.RespondErrorDetails(w, http.StatusConflict, body)

	case errors.Is(err, publication.ErrSubmissionFailed):
		h.logger.Warn("%s - Publication rejected: session_id=%s, error=%v", op, snap.ID, err)
		body.Message = snap.SubmitError
		handlers.RespondErrorDetails(w, http.StatusBadGateway, body)

	default:
		h.logger.Error("%s - Unexpected error: session_id=%s, error=%v", op, snap.ID, err)
		handlers.RespondInternalError(w)
	}
}
