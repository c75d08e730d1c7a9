package get_provider_receipts

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// ReceiptResponse HTTP response model; контактные данные клиента наружу не отдаются
type ReceiptResponse struct {
	ID         int64  `json:"id"`
	SessionID  string `json:"sessionId"`
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	CreatedAt  string `json:"createdAt"`
}

// ReceiptsResponse список квитанций провайдера
type ReceiptsResponse struct {
	ProviderID string            `json:"providerId"`
	Receipts   []ReceiptResponse `json:"receipts"`
}

// FromDomain конвертирует квитанции в HTTP response
func FromDomain(providerID string, receipts []*domain.BookingReceipt) *ReceiptsResponse {
	resp := &ReceiptsResponse{
		ProviderID: providerID,
		Receipts:   make([]ReceiptResponse, len(receipts)),
	}
	for i, r := range receipts {
		resp.Receipts[i] = ReceiptResponse{
			ID:         r.ID,
			SessionID:  r.SessionID,
			ProviderID: r.ProviderID,
			Date:       r.Date.String(),
			Time:       r.Time.String(),
			CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}
