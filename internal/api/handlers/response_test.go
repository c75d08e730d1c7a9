package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "Session not found.")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"Session not found."}`, rec.Body.String())
}

func TestRespondErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorDetails(rec, http.StatusUnprocessableEntity, ErrorResponse{
		Message: "Please select a time slot.",
		Field:   "slot",
		Session: map[string]string{"state": "slots_ready"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 422, body.Code)
	assert.Equal(t, "slot", body.Field)
	assert.NotNil(t, body.Session)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		ProviderID string `json:"providerId"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"providerId":"abc"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "abc", dst.ProviderID)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":"abc"}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"providerId":"a"}{"providerId":"b"}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(req, &dst))
}
