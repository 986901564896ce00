package usecase

import (
	"context"
	"io"

	"github.com/plastinin/leafguard/internal/domain"
)

// DiseaseRepository интерфейс для работы со справочником заболеваний
type DiseaseRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Disease, error)
	List(ctx context.Context, pagination domain.Pagination) (*domain.DiseaseListResult, error)
}

// OutcomeRecorder учитывает результаты валидации (Prometheus)
type OutcomeRecorder interface {
	Record(outcome domain.Outcome)
}

// PolicyStorage интерфейс хранилища, откуда статика сайта читает политику (S3)
type PolicyStorage interface {
	Put(ctx context.Context, key string, contentType string, reader io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	GetURL(ctx context.Context, key string) (string, error)
}
