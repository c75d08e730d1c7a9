package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	msgInternalError = "Something went wrong. Please try again."

	maxBodyBytes = 1 << 20
)

// ErrorResponse тело ответа с ошибкой.
// Session заполняется, когда клиенту нужно перерисовать форму по текущему состоянию
type ErrorResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
	Session interface{} `json:"session,omitempty"`
}

// RespondJSON пишет data в JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError ошибка с кодом и сообщением для пользователя
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondErrorDetails ошибка с полем формы и/или снимком сессии
func RespondErrorDetails(w http.ResponseWriter, status int, resp ErrorResponse) {
	resp.Code = status
	RespondJSON(w, status, resp)
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса; неизвестные поля и лишние данные после объекта - ошибка
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
