package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Коды ошибок в ответах API
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidToken   = "INVALID_TOKEN"
	CodeSlotTaken      = "SLOT_TAKEN"
	CodeCalendarError  = "CALENDAR_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ErrorResponse стандартный конверт ошибки API
type ErrorResponse struct {
	OK        bool   `json:"ok"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// DecodeJSON декодирует тело запроса в переданную структуру
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError пишет конверт ошибки {ok:false, errorCode, message}
func RespondError(w http.ResponseWriter, status int, errorCode, message string) {
	RespondJSON(w, status, ErrorResponse{
		OK:        false,
		ErrorCode: errorCode,
		Message:   message,
	})
}

// RespondBadRequest пишет 400 с кодом INVALID_REQUEST
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidRequest, message)
}

// RespondUnauthorized пишет 401 с кодом INVALID_TOKEN
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeInvalidToken, message)
}

// RespondConflict пишет 409 с кодом SLOT_TAKEN
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, CodeSlotTaken, message)
}

// RespondCalendarError пишет 502 с кодом CALENDAR_ERROR
func RespondCalendarError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, CodeCalendarError, message)
}

// RespondInternalError пишет 500 с кодом INTERNAL_ERROR
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, "internal server error")
}
