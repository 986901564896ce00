package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"go.uber.org/zap"
)

// PolicyUseCase публикация политики загрузки рядом со статикой сайта,
// чтобы клиентский скрипт и сервер проверяли файлы по одним правилам
type PolicyUseCase struct {
	storage PolicyStorage
	key     string
	logger  *zap.Logger
}

// NewPolicyUseCase создаёт новый экземпляр PolicyUseCase
func NewPolicyUseCase(storage PolicyStorage, key string, logger *zap.Logger) *PolicyUseCase {
	return &PolicyUseCase{
		storage: storage,
		key:     key,
		logger:  logger,
	}
}

// Publish записывает текущую политику в хранилище
func (uc *PolicyUseCase) Publish(ctx context.Context) (*PublishResult, error) {
	data, err := json.MarshalIndent(CurrentPolicy(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy: %w", err)
	}

	size := int64(len(data))
	if err := uc.storage.Put(ctx, uc.key, "application/json", bytes.NewReader(data), size); err != nil {
		uc.logger.Error("Failed to publish upload policy",
			zap.String("key", uc.key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to publish policy: %w", err)
	}

	url, err := uc.storage.GetURL(ctx, uc.key)
	if err != nil {
		// Документ уже записан, ссылка нужна только для лога
		uc.logger.Warn("Failed to get policy URL",
			zap.String("key", uc.key),
			zap.Error(err),
		)
	}

	uc.logger.Info("Upload policy published",
		zap.String("key", uc.key),
		zap.Int64("size", size),
	)

	return &PublishResult{Key: uc.key, Size: size, URL: url}, nil
}

// InSync проверяет, совпадает ли опубликованная политика с текущей
func (uc *PolicyUseCase) InSync(ctx context.Context) (bool, error) {
	reader, err := uc.storage.Get(ctx, uc.key)
	if err != nil {
		return false, fmt.Errorf("failed to get published policy: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return false, fmt.Errorf("failed to read published policy: %w", err)
	}

	var published UploadPolicy
	if err := json.Unmarshal(data, &published); err != nil {
		return false, fmt.Errorf("failed to decode published policy: %w", err)
	}

	inSync := reflect.DeepEqual(published, CurrentPolicy())
	if !inSync {
		uc.logger.Warn("Published upload policy is out of date", zap.String("key", uc.key))
	}

	return inSync, nil
}
