package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

const (
	maxBodyBytes = 1 << 20

	msgServerError = "Server error"
)

// SuccessResponse обертка успешного ответа
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse обертка страницы списка
type ListResponse struct {
	Success     bool        `json:"success"`
	Count       int         `json:"count"`
	Total       int         `json:"total"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Data        interface{} `json:"data"`
}

// ErrorResponse обертка ошибки. Errors заполняется при ошибках валидации.
type ErrorResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// DecodeJSON читает тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// RespondJSON пишет произвольное тело в JSON
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondSuccess пишет {"success": true, "message": ..., "data": ...}
func RespondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, SuccessResponse{Success: true, Message: message, Data: data})
}

// RespondList пишет страницу списка с метаданными пагинации
func RespondList(w http.ResponseWriter, data interface{}, count, total, totalPages, currentPage int) {
	RespondJSON(w, http.StatusOK, ListResponse{
		Success:     true,
		Count:       count,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Data:        data,
	})
}

// RespondError пишет ошибку с заданным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgServerError)
}

// RespondValidationError 400 со списком ошибок по полям
func RespondValidationError(w http.ResponseWriter, verr *validation.Error) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: verr.First(),
		Errors:  verr.Fields,
	})
}

// RespondInvalidInput 400: ошибки по полям, если они есть в цепочке err, иначе fallback
func RespondInvalidInput(w http.ResponseWriter, err error, fallback string) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		RespondValidationError(w, verr)
		return
	}
	RespondBadRequest(w, fallback)
}

// PathID разбирает числовой параметр пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, mux.Vars(r)[name])
	}
	return id, nil
}

// QueryInt читает целый query параметр, 0 если отсутствует или некорректен
func QueryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
