package dto

import (
	"github.com/plastinin/leafguard/internal/domain"
	"github.com/plastinin/leafguard/internal/usecase"
)

// ValidateImageRequest описание файла, который собираются загрузить.
// Само содержимое файла не передаётся.
type ValidateImageRequest struct {
	Size      *int64 `json:"size"`
	MediaType string `json:"media_type"`
}

// ToDomain конвертирует запрос в доменную модель. Size должен быть проверен заранее.
func (r ValidateImageRequest) ToDomain() domain.CandidateFile {
	return domain.CandidateFile{
		Size:      *r.Size,
		MediaType: r.MediaType,
	}
}

// ValidateBatchRequest пакет файлов для проверки
type ValidateBatchRequest struct {
	Files []ValidateImageRequest `json:"files"`
}

// ValidationResponse результат проверки одного файла
type ValidationResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ValidationFromDomain конвертирует результат валидации в DTO
func ValidationFromDomain(outcome domain.Outcome) ValidationResponse {
	if outcome.Accepted {
		return ValidationResponse{Accepted: true}
	}
	return ValidationResponse{
		Reason:  outcome.Reason.String(),
		Message: outcome.Err().Error(),
	}
}

// BatchItemResponse результат проверки файла внутри пакета
// Описание файла возвращается, чтобы клиент сопоставил результат без индекса
type BatchItemResponse struct {
	Index     int    `json:"index"`
	Size      int64  `json:"size"`
	MediaType string `json:"media_type"`
	ValidationResponse
}

// BatchResponse результат проверки пакета
type BatchResponse struct {
	BatchID  string              `json:"batch_id"`
	Accepted int                 `json:"accepted"`
	Rejected int                 `json:"rejected"`
	Results  []BatchItemResponse `json:"results"`
}

// BatchFromDomain конвертирует результат пакетной проверки в DTO
func BatchFromDomain(result *usecase.BatchResult) *BatchResponse {
	items := make([]BatchItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = BatchItemResponse{
			Index:              item.Index,
			Size:               item.File.Size,
			MediaType:          item.File.MediaType,
			ValidationResponse: ValidationFromDomain(item.Outcome),
		}
	}

	return &BatchResponse{
		BatchID:  result.ID.String(),
		Accepted: result.Accepted,
		Rejected: result.Rejected,
		Results:  items,
	}
}

// PolicyResponse ограничения загрузки
type PolicyResponse struct {
	MaxSizeBytes      int64    `json:"max_size_bytes"`
	MaxSizeLabel      string   `json:"max_size_label"`
	AllowedTypes      []string `json:"allowed_types"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

// PolicyFromDomain конвертирует политику загрузки в DTO
func PolicyFromDomain(policy usecase.UploadPolicy) *PolicyResponse {
	return &PolicyResponse{
		MaxSizeBytes:      policy.MaxSizeBytes,
		MaxSizeLabel:      policy.MaxSizeLabel,
		AllowedTypes:      policy.AllowedTypes,
		AllowedExtensions: policy.AllowedExtensions,
	}
}
