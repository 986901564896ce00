package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryStorage struct {
	objects      map[string][]byte
	contentTypes map[string]string
	putErr       error
	urlErr       error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (s *memoryStorage) Put(ctx context.Context, key string, contentType string, reader io.Reader, size int64) error {
	if s.putErr != nil {
		return s.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return errors.New("size mismatch")
	}
	s.objects[key] = data
	s.contentTypes[key] = contentType
	return nil
}

func (s *memoryStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memoryStorage) GetURL(ctx context.Context, key string) (string, error) {
	if s.urlErr != nil {
		return "", s.urlErr
	}
	return "http://static.local/" + key, nil
}

func TestPolicyUseCase_Publish(t *testing.T) {
	storage := newMemoryStorage()
	uc := NewPolicyUseCase(storage, "config/upload-policy.json", zap.NewNop())

	result, err := uc.Publish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "config/upload-policy.json", result.Key)
	assert.Equal(t, "http://static.local/config/upload-policy.json", result.URL)

	data := storage.objects["config/upload-policy.json"]
	assert.Equal(t, int64(len(data)), result.Size)
	assert.Equal(t, "application/json", storage.contentTypes["config/upload-policy.json"])

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, float64(16*1024*1024), doc["max_size_bytes"])
	assert.Equal(t, "16MB", doc["max_size_label"])
	assert.Len(t, doc["allowed_types"], 4)
}

func TestPolicyUseCase_PublishIgnoresURLError(t *testing.T) {
	storage := newMemoryStorage()
	storage.urlErr = errors.New("presign failed")
	uc := NewPolicyUseCase(storage, "policy.json", zap.NewNop())

	result, err := uc.Publish(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.URL)
}

func TestPolicyUseCase_PublishError(t *testing.T) {
	storage := newMemoryStorage()
	storage.putErr = errors.New("access denied")
	uc := NewPolicyUseCase(storage, "policy.json", zap.NewNop())

	_, err := uc.Publish(context.Background())
	assert.ErrorIs(t, err, storage.putErr)
}

func TestPolicyUseCase_InSync(t *testing.T) {
	storage := newMemoryStorage()
	uc := NewPolicyUseCase(storage, "policy.json", zap.NewNop())
	ctx := context.Background()

	_, err := uc.InSync(ctx)
	assert.Error(t, err)

	_, err = uc.Publish(ctx)
	require.NoError(t, err)

	inSync, err := uc.InSync(ctx)
	require.NoError(t, err)
	assert.True(t, inSync)

	stale := CurrentPolicy()
	stale.AllowedTypes = append(stale.AllowedTypes, "image/webp")
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	storage.objects["policy.json"] = data

	inSync, err = uc.InSync(ctx)
	require.NoError(t, err)
	assert.False(t, inSync)

	storage.objects["policy.json"] = []byte("not json")
	_, err = uc.InSync(ctx)
	assert.Error(t, err)
}
