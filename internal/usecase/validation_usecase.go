package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/plastinin/leafguard/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrEmptyBatch    = errors.New("batch is empty")
	ErrBatchTooLarge = errors.New("batch is too large")
)

// ValidationUseCase проверка загружаемых изображений
type ValidationUseCase struct {
	recorder     OutcomeRecorder
	maxBatchSize int
	logger       *zap.Logger
}

// NewValidationUseCase создаёт новый экземпляр ValidationUseCase.
// recorder может быть nil, если метрики выключены.
func NewValidationUseCase(recorder OutcomeRecorder, maxBatchSize int, logger *zap.Logger) *ValidationUseCase {
	return &ValidationUseCase{
		recorder:     recorder,
		maxBatchSize: maxBatchSize,
		logger:       logger,
	}
}

// Validate проверяет один файл. Отклонение — это результат, а не ошибка.
func (uc *ValidationUseCase) Validate(ctx context.Context, file domain.CandidateFile) domain.Outcome {
	outcome := domain.ValidateImage(file)
	uc.record(outcome)

	if !outcome.Accepted {
		uc.logger.Debug("Image rejected",
			zap.Int64("size", file.Size),
			zap.String("media_type", file.MediaType),
			zap.String("reason", outcome.Reason.String()),
		)
	}

	return outcome
}

// ValidateBatch проверяет каждый файл независимо от остальных
func (uc *ValidationUseCase) ValidateBatch(ctx context.Context, files []domain.CandidateFile) (*BatchResult, error) {
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(files) > uc.maxBatchSize {
		return nil, fmt.Errorf("%w: %d files, limit %d", ErrBatchTooLarge, len(files), uc.maxBatchSize)
	}

	result := &BatchResult{
		ID:    uuid.New(),
		Items: make([]BatchItem, len(files)),
	}

	for i, file := range files {
		outcome := domain.ValidateImage(file)
		uc.record(outcome)

		result.Items[i] = BatchItem{Index: i, File: file, Outcome: outcome}
		if outcome.Accepted {
			result.Accepted++
			continue
		}
		result.Rejected++

		uc.logger.Debug("Image rejected",
			zap.String("batch_id", result.ID.String()),
			zap.Int("index", i),
			zap.Int64("size", file.Size),
			zap.String("media_type", file.MediaType),
			zap.String("reason", outcome.Reason.String()),
		)
	}

	uc.logger.Info("Batch validated",
		zap.String("batch_id", result.ID.String()),
		zap.Int("files", len(files)),
		zap.Int("accepted", result.Accepted),
		zap.Int("rejected", result.Rejected),
	)

	return result, nil
}

// Policy возвращает действующие ограничения загрузки
func (uc *ValidationUseCase) Policy() UploadPolicy {
	return CurrentPolicy()
}

// CurrentPolicy собирает политику из констант домена
func CurrentPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSizeBytes:      domain.MaxImageSize,
		MaxSizeLabel:      domain.MaxImageSizeLabel,
		AllowedTypes:      domain.AllowedImageTypes(),
		AllowedExtensions: domain.AllowedImageExtensions(),
	}
}

func (uc *ValidationUseCase) record(outcome domain.Outcome) {
	if uc.recorder != nil {
		uc.recorder.Record(outcome)
	}
}
