package get_provider_receipts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
)

type stubRepo struct {
	providerID string
	limit      uint64
	receipts   []*domain.BookingReceipt
	err        error
}

func (s *stubRepo) ListByProvider(_ context.Context, providerID string, limit uint64) ([]*domain.BookingReceipt, error) {
	s.providerID, s.limit = providerID, limit
	return s.receipts, s.err
}

func serve(repo *stubRepo, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/providers/{providerId}/receipts", NewHandler(repo, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_ListReceipts(t *testing.T) {
	repo := &stubRepo{receipts: []*domain.BookingReceipt{{
		ID:         7,
		SessionID:  "s-1",
		ProviderID: "abc123",
		Date:       domain.CalendarDate{Year: 2025, Month: time.March, Day: 17},
		Time:       "09:30",
		Contact:    domain.ContactDetails{FullName: "Ada", Email: "ada@example.com", Phone: "5551234567"},
		CreatedAt:  time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}}}

	rec := serve(repo, "/providers/abc123/receipts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", repo.providerID)
	assert.Equal(t, uint64(50), repo.limit)

	var body ReceiptsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Receipts, 1)
	assert.Equal(t, "2025-03-17", body.Receipts[0].Date)
	assert.Equal(t, "09:30", body.Receipts[0].Time)
	assert.Equal(t, "2025-03-14T10:00:00Z", body.Receipts[0].CreatedAt)
	assert.Equal(t, "s-1", body.Receipts[0].SessionID)

	for _, pii := range []string{"Ada", "ada@example.com", "5551234567"} {
		assert.NotContains(t, rec.Body.String(), pii)
	}
}

func TestHandler_ListReceiptsErrors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubRepo{}, "/providers/abc123/receipts?limit=0").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubRepo{}, "/providers/abc123/receipts?limit=many").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&stubRepo{err: errors.New("connection reset")}, "/providers/abc123/receipts").Code)

	repo := &stubRepo{}
	rec := serve(repo, "/providers/abc123/receipts?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(5), repo.limit)
	assert.JSONEq(t, `{"providerId":"abc123","receipts":[]}`, rec.Body.String())
}
