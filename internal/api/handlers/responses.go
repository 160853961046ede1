package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse ответ формы с ошибками по полям
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondValidationErrors пишет 400 с ошибками по каждому полю
func RespondValidationErrors(w http.ResponseWriter, fields map[string]string) {
	RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: fields})
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// RespondBadGateway пишет 502 с сообщением, используется при сбоях внешней системы
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadGateway, ErrorResponse{Error: message})
}

// RespondInternalError пишет 500 с нейтральным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
