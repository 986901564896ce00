package domain

import "errors"

var (
	ErrDiseaseNotFound = errors.New("disease not found")
)

// HealthyKey ключ записи о здоровом листе. В общий список не попадает.
const HealthyKey = "healthy"

// Disease справочная информация о заболевании листа томата
type Disease struct {
	Key         string   `json:"key"`  // Нижний регистр, как в выходе классификатора
	Name        string   `json:"name"` // Отображаемое имя
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Causes      string   `json:"causes"`
	Prevention  []string `json:"prevention"`
	Treatment   []string `json:"treatment"`
}

// Summary возвращает краткое представление для списка
func (d *Disease) Summary() DiseaseSummary {
	return DiseaseSummary{
		Key:           d.Key,
		Name:          d.Name,
		Description:   d.Description,
		SymptomsCount: len(d.Symptoms),
	}
}

// IsHealthy проверяет, описывает ли запись здоровое растение
func (d *Disease) IsHealthy() bool {
	return d.Key == HealthyKey
}

// DiseaseSummary элемент списка заболеваний
type DiseaseSummary struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SymptomsCount int    `json:"symptoms_count"`
}

// DiseaseListResult результат запроса списка
type DiseaseListResult struct {
	Diseases   []DiseaseSummary `json:"diseases"`
	Total      int              `json:"total"`
	Pagination Pagination       `json:"pagination"`
}
