package usecase

import (
	"github.com/google/uuid"
	"github.com/plastinin/leafguard/internal/domain"
)

// UploadPolicy ограничения загрузки, общие для сайта и сервера
type UploadPolicy struct {
	MaxSizeBytes      int64    `json:"max_size_bytes"`
	MaxSizeLabel      string   `json:"max_size_label"`
	AllowedTypes      []string `json:"allowed_types"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

// BatchItem результат валидации одного файла пакета
type BatchItem struct {
	Index   int
	File    domain.CandidateFile
	Outcome domain.Outcome
}

// BatchResult результат валидации пакета файлов
type BatchResult struct {
	ID       uuid.UUID
	Items    []BatchItem // В порядке входного списка
	Accepted int
	Rejected int
}

// PublishResult результат публикации политики
type PublishResult struct {
	Key  string
	Size int64
	URL  string
}
