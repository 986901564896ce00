package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/plastinin/leafguard/internal/domain"
)

// DiseaseCatalog справочник заболеваний в памяти.
// Данные неизменяемы после создания, поэтому блокировки не нужны.
type DiseaseCatalog struct {
	byKey map[string]*domain.Disease
	keys  []string // Отсортированы, без healthy
}

// NewDiseaseCatalog создаёт справочник из переданных записей
func NewDiseaseCatalog(diseases []domain.Disease) *DiseaseCatalog {
	c := &DiseaseCatalog{
		byKey: make(map[string]*domain.Disease, len(diseases)),
	}

	for i := range diseases {
		d := diseases[i]
		key := strings.ToLower(d.Key)
		d.Key = key
		c.byKey[key] = &d
	}

	for key, d := range c.byKey {
		if !d.IsHealthy() {
			c.keys = append(c.keys, key)
		}
	}
	sort.Strings(c.keys)

	return c
}

// NewDefaultDiseaseCatalog создаёт справочник со встроенными данными
func NewDefaultDiseaseCatalog() *DiseaseCatalog {
	return NewDiseaseCatalog(defaultDiseases)
}

// GetByKey возвращает заболевание по ключу, регистр ключа не важен
func (c *DiseaseCatalog) GetByKey(ctx context.Context, key string) (*domain.Disease, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, ok := c.byKey[strings.ToLower(key)]
	if !ok {
		return nil, domain.ErrDiseaseNotFound
	}

	return cloneDisease(d), nil
}

// List возвращает страницу кратких описаний заболеваний
func (c *DiseaseCatalog) List(ctx context.Context, pagination domain.Pagination) (*domain.DiseaseListResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, end := pagination.Window(len(c.keys))

	summaries := make([]domain.DiseaseSummary, 0, end-start)
	for _, key := range c.keys[start:end] {
		summaries = append(summaries, c.byKey[key].Summary())
	}

	return &domain.DiseaseListResult{
		Diseases:   summaries,
		Total:      len(c.keys),
		Pagination: pagination,
	}, nil
}

// cloneDisease копирует запись, чтобы вызывающий не мог изменить справочник
func cloneDisease(d *domain.Disease) *domain.Disease {
	cp := *d
	cp.Symptoms = append([]string(nil), d.Symptoms...)
	cp.Prevention = append([]string(nil), d.Prevention...)
	cp.Treatment = append([]string(nil), d.Treatment...)
	return &cp
}
