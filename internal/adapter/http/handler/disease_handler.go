package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/plastinin/leafguard/internal/adapter/http/dto"
	"github.com/plastinin/leafguard/internal/domain"
	"github.com/plastinin/leafguard/internal/usecase"
	"go.uber.org/zap"
)

// DiseaseHandler обработчик HTTP запросов к справочнику заболеваний
type DiseaseHandler struct {
	responder
	catalogUC *usecase.CatalogUseCase
}

// NewDiseaseHandler создаёт новый DiseaseHandler
func NewDiseaseHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *DiseaseHandler {
	return &DiseaseHandler{
		responder: responder{logger: logger},
		catalogUC: catalogUC,
	}
}

// List возвращает список заболеваний (без здорового листа)
// GET /api/v1/diseases?page=1&page_size=20
func (h *DiseaseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	pagination := domain.NewPagination(page, pageSize)

	result, err := h.catalogUC.List(r.Context(), pagination)
	if err != nil {
		h.logger.Error("Failed to list diseases", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, dto.CodeInternal, "Failed to list diseases")
		return
	}

	h.respondJSON(w, http.StatusOK, dto.DiseaseListFromDomain(result))
}

// Get возвращает заболевание по ключу, например "late blight"
// GET /api/v1/diseases/{key}
func (h *DiseaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	disease, err := h.catalogUC.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrDiseaseNotFound) {
			h.respondError(w, http.StatusNotFound, dto.CodeNotFound, "Disease not found")
			return
		}
		h.logger.Error("Failed to get disease", zap.String("key", key), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, dto.CodeInternal, "Failed to get disease")
		return
	}

	h.respondJSON(w, http.StatusOK, dto.DiseaseFromDomain(disease))
}
