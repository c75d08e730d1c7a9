package scheduler

// AvailableWeekdaysResponse ответ GET available-weekdays
type AvailableWeekdaysResponse struct {
	AvailableWeekdays []string `json:"available_weekdays"`
}

// AvailableSlotsResponse ответ GET available-slots
type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"available_slots"`
}

// BookAppointmentRequest тело POST book-appointment
type BookAppointmentRequest struct {
	UserID      string `json:"user_id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// DayAvailability окно доступности одного дня недели
type DayAvailability struct {
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// CreateAppointmentRequest тело POST create-appointment
type CreateAppointmentRequest struct {
	UserID              string                     `json:"user_id"`
	SlotDurationMinutes int                        `json:"slot_duration_minutes"`
	Availability        map[string]DayAvailability `json:"availability"`
}

// MessageResponse успешный ответ мутаций
type MessageResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// ErrorResponse модель ошибки внешнего API
type ErrorResponse struct {
	Detail string `json:"detail"`
}
