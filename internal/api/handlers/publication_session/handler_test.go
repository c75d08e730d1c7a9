package publication_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/integrations/scheduler"
	"github.com/m04kA/SMC-SlotBooking/internal/service/publication"
	"github.com/m04kA/SMC-SlotBooking/internal/service/sessions"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
)

type stubScheduler struct {
	err   error
	calls []*scheduler.CreateAppointmentRequest
}

func (s *stubScheduler) CreateAppointment(_ context.Context, req *scheduler.CreateAppointmentRequest) error {
	s.calls = append(s.calls, req)
	return s.err
}

type testEnv struct {
	router *mux.Router
	sched  *stubScheduler
}

func newTestEnv() *testEnv {
	log := logger.NewNop()
	sched := &stubScheduler{}
	store := sessions.NewStore[*publication.Session](sessions.KindPublication, time.Minute, log, nil)
	h := NewHandler(store, publication.Dependencies{Scheduler: sched, Logger: log}, log)

	r := mux.NewRouter()
	r.HandleFunc("/publication-sessions", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/publication-sessions/{sessionId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/publication-sessions/{sessionId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/publication-sessions/{sessionId}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/publication-sessions/{sessionId}/days/{weekday}", h.SetDay).Methods(http.MethodPut)
	r.HandleFunc("/publication-sessions/{sessionId}/days/{weekday}/toggle", h.ToggleDay).Methods(http.MethodPost)
	r.HandleFunc("/publication-sessions/{sessionId}/submit", h.Submit).Methods(http.MethodPost)

	return &testEnv{router: r, sched: sched}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) open(t *testing.T) string {
	t.Helper()
	rec := e.do(http.MethodPost, "/publication-sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var snap SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap.Days, 7)
	assert.Equal(t, "Monday", snap.Days[0].Day)
	assert.Equal(t, "editing", snap.State)
	return "/publication-sessions/" + snap.ID
}

type errorBody struct {
	Message string          `json:"message"`
	Field   string          `json:"field"`
	Session SessionResponse `json:"session"`
}

func TestHandler_PublishFlow(t *testing.T) {
	env := newTestEnv()
	base := env.open(t)

	rec := env.do(http.MethodPut, base, `{"providerId":"abc123","slotDurationMinutes":30}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, base+"/days/monday", `{"isAvailable":true,"startTime":"09:00","endTime":"17:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "published", snap.State)
	assert.Equal(t, "Availability saved! Share your Appointment ID (abc123) with others to let them book a slot.", snap.Confirmation)

	require.Len(t, env.sched.calls, 1)
	assert.Len(t, env.sched.calls[0].Availability, 7)
	assert.Equal(t, 30, env.sched.calls[0].SlotDurationMinutes)

	rec = env.do(http.MethodPut, base, `{"providerId":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_TuesdayTimeOrder(t *testing.T) {
	env := newTestEnv()
	base := env.open(t)

	env.do(http.MethodPut, base, `{"providerId":"abc123","slotDurationMinutes":30}`)
	rec := env.do(http.MethodPut, base+"/days/Tuesday", `{"isAvailable":true,"startTime":"10:00","endTime":"09:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Start time must be earlier than end time for Tuesday.", body.Message)
	assert.Equal(t, "Tuesday", body.Field)
	assert.Equal(t, "editing", body.Session.State)
	assert.Empty(t, env.sched.calls)
}

func TestHandler_ToggleAndBadInput(t *testing.T) {
	env := newTestEnv()
	base := env.open(t)

	rec := env.do(http.MethodPost, base+"/days/Friday/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var snap SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.True(t, snap.Days[4].IsAvailable)

	rec = env.do(http.MethodPost, base+"/days/Caturday/toggle", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPut, base+"/days/Friday", `{"isAvailable":true,"startTime":"9am","endTime":"17:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PublishRejected(t *testing.T) {
	env := newTestEnv()
	env.sched.err = &scheduler.ServerError{StatusCode: 400, Detail: "User ID already exists"}
	base := env.open(t)

	env.do(http.MethodPut, base, `{"providerId":"abc123","slotDurationMinutes":30}`)
	rec := env.do(http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User ID already exists", body.Message)
	assert.Equal(t, "failed", body.Session.State)
	assert.True(t, body.Session.CanSubmit)
}

func TestHandler_DeleteAndNotFound(t *testing.T) {
	env := newTestEnv()
	base := env.open(t)

	assert.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, base, "").Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, base, "").Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodPost, base+"/submit", "").Code)
}
