package create_booking_session

// CreateBookingSessionRequest HTTP request model
type CreateBookingSessionRequest struct {
	ProviderID string `json:"providerId"`
}
