package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/plastinin/leafguard/internal/domain"
	"go.uber.org/zap"
)

// CatalogUseCase чтение справочника заболеваний
type CatalogUseCase struct {
	diseaseRepo DiseaseRepository
	logger      *zap.Logger
}

// NewCatalogUseCase создаёт новый экземпляр CatalogUseCase
func NewCatalogUseCase(diseaseRepo DiseaseRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		diseaseRepo: diseaseRepo,
		logger:      logger,
	}
}

// Get возвращает заболевание по ключу
func (uc *CatalogUseCase) Get(ctx context.Context, key string) (*domain.Disease, error) {
	disease, err := uc.diseaseRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrDiseaseNotFound) {
			uc.logger.Debug("Disease not found", zap.String("key", key))
			return nil, err
		}
		return nil, fmt.Errorf("failed to get disease: %w", err)
	}
	return disease, nil
}

// List возвращает страницу списка заболеваний
func (uc *CatalogUseCase) List(ctx context.Context, pagination domain.Pagination) (*domain.DiseaseListResult, error) {
	result, err := uc.diseaseRepo.List(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list diseases: %w", err)
	}
	return result, nil
}
