// Package metrics Prometheus метрики проверки изображений.
package metrics

import (
	"github.com/plastinin/leafguard/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"

	// Метка reason для принятых файлов
	reasonNone = "none"
)

// ValidationRecorder считает результаты валидации по исходу и причине
type ValidationRecorder struct {
	validations *prometheus.CounterVec
}

// NewValidationRecorder регистрирует счётчик в reg
func NewValidationRecorder(reg prometheus.Registerer) *ValidationRecorder {
	return &ValidationRecorder{
		validations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "leafguard_image_validations_total",
				Help: "Количество проверок загружаемых изображений",
			},
			[]string{"outcome", "reason"},
		),
	}
}

// Record учитывает один результат валидации
func (r *ValidationRecorder) Record(outcome domain.Outcome) {
	if outcome.Accepted {
		r.validations.WithLabelValues(outcomeAccepted, reasonNone).Inc()
		return
	}
	r.validations.WithLabelValues(outcomeRejected, outcome.Reason.String()).Inc()
}
