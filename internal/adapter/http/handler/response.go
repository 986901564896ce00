package handler

import (
	"encoding/json"
	"net/http"

	"github.com/plastinin/leafguard/internal/adapter/http/dto"
	"go.uber.org/zap"
)

// responder общая запись JSON ответов для обработчиков
type responder struct {
	logger *zap.Logger
}

// respondJSON отправляет JSON ответ
func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError отправляет ответ с ошибкой
func (h responder) respondError(w http.ResponseWriter, status int, errCode string, message string) {
	h.respondJSON(w, status, dto.NewErrorResponse(errCode, message))
}

// NotFound отвечает на запросы к неизвестным маршрутам
func NotFound(logger *zap.Logger) http.HandlerFunc {
	h := responder{logger: logger}
	return func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, http.StatusNotFound, dto.CodeNotFound, "Route not found")
	}
}

// MethodNotAllowed отвечает на запросы с неподдерживаемым методом
func MethodNotAllowed(logger *zap.Logger) http.HandlerFunc {
	h := responder{logger: logger}
	return func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, http.StatusMethodNotAllowed, dto.CodeMethodNotAllowed, "Method not allowed")
	}
}
