package dto

import "github.com/plastinin/leafguard/internal/domain"

// DiseaseResponse подробная информация о заболевании
type DiseaseResponse struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Causes      string   `json:"causes"`
	Prevention  []string `json:"prevention"`
	Treatment   []string `json:"treatment"`
}

// DiseaseFromDomain конвертирует доменную модель в DTO
func DiseaseFromDomain(d *domain.Disease) *DiseaseResponse {
	return &DiseaseResponse{
		Key:         d.Key,
		Name:        d.Name,
		Description: d.Description,
		Symptoms:    d.Symptoms,
		Causes:      d.Causes,
		Prevention:  d.Prevention,
		Treatment:   d.Treatment,
	}
}

// DiseaseListResponse ответ со списком заболеваний
type DiseaseListResponse struct {
	Diseases   []domain.DiseaseSummary `json:"diseases"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalPages int                     `json:"total_pages"`
}

// DiseaseListFromDomain конвертирует результат списка в DTO
func DiseaseListFromDomain(result *domain.DiseaseListResult) *DiseaseListResponse {
	return &DiseaseListResponse{
		Diseases:   result.Diseases,
		Total:      result.Total,
		Page:       result.Pagination.Page,
		PageSize:   result.Pagination.PageSize,
		TotalPages: result.Pagination.TotalPages(result.Total),
	}
}
