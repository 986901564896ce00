package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/plastinin/leafguard/internal/adapter/http/dto"
	"github.com/plastinin/leafguard/internal/domain"
	"github.com/plastinin/leafguard/internal/usecase"
	"go.uber.org/zap"
)

// ValidationHandler обработчик HTTP запросов для проверки изображений
type ValidationHandler struct {
	responder
	validationUC *usecase.ValidationUseCase
	maxBodyBytes int64
}

// NewValidationHandler создаёт новый ValidationHandler
func NewValidationHandler(validationUC *usecase.ValidationUseCase, maxBodyBytes int64, logger *zap.Logger) *ValidationHandler {
	return &ValidationHandler{
		responder:    responder{logger: logger},
		validationUC: validationUC,
		maxBodyBytes: maxBodyBytes,
	}
}

// Policy возвращает ограничения загрузки
// GET /api/v1/upload-policy
func (h *ValidationHandler) Policy(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.PolicyFromDomain(h.validationUC.Policy()))
}

// Validate проверяет один файл
// POST /api/v1/validations
// {"size": 1024, "media_type": "image/png"}
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateImageRequest
	if !h.decode(w, r, &req) {
		return
	}

	if code, msg := checkRequest(req); code != "" {
		h.respondError(w, http.StatusBadRequest, code, msg)
		return
	}

	outcome := h.validationUC.Validate(r.Context(), req.ToDomain())

	// Отклонённый файл — штатный результат, поэтому 200
	h.respondJSON(w, http.StatusOK, dto.ValidationFromDomain(outcome))
}

// ValidateBatch проверяет несколько файлов независимо друг от друга
// POST /api/v1/validations/batch
// {"files": [{"size": 1024, "media_type": "image/png"}, ...]}
func (h *ValidationHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateBatchRequest
	if !h.decode(w, r, &req) {
		return
	}

	files := make([]domain.CandidateFile, len(req.Files))
	for i, f := range req.Files {
		if code, msg := checkRequest(f); code != "" {
			h.respondError(w, http.StatusBadRequest, code, fmt.Sprintf("files[%d]: %s", i, msg))
			return
		}
		files[i] = f.ToDomain()
	}

	result, err := h.validationUC.ValidateBatch(r.Context(), files)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyBatch):
			h.respondError(w, http.StatusBadRequest, dto.CodeEmptyBatch, "Files cannot be empty")
		case errors.Is(err, usecase.ErrBatchTooLarge):
			h.respondError(w, http.StatusBadRequest, dto.CodeBatchTooLarge, err.Error())
		default:
			h.logger.Error("Failed to validate batch", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, dto.CodeInternal, "Failed to validate batch")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, dto.BatchFromDomain(result))
}

// decode читает JSON тело запроса с ограничением размера.
// При ошибке сам отправляет ответ и возвращает false.
func (h *ValidationHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, dto.CodeRequestTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit))
			return false
		}

		h.logger.Debug("Failed to decode request", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "Request body must be valid JSON")
		return false
	}

	return true
}

// checkRequest проверяет то, что нельзя выразить в CandidateFile.
// Пустой media_type допустим: валидатор отклонит его как unsupported_type.
func checkRequest(req dto.ValidateImageRequest) (code, message string) {
	if req.Size == nil {
		return dto.CodeSizeRequired, "Size is required"
	}
	if *req.Size < 0 {
		return dto.CodeInvalidSize, "Size must be a non-negative number of bytes"
	}
	return "", ""
}
