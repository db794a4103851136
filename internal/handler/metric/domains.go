package metric

import (
	"time"

	"footballer-app/internal/domain/metric"
	metricuc "footballer-app/internal/usecase/metric"
)

// Конкретные обработчики трёх доменов — инстанциации одного generic-кода.
type (
	PhysicalHandler    = Handler[metric.Physical, metric.PhysicalPatch]
	ConditionalHandler = Handler[metric.Conditional, metric.ConditionalPatch]
	EnduranceHandler   = Handler[metric.Endurance, metric.EndurancePatch]
)

// NewPhysicalHandler создаёт обработчик домена физического развития.
func NewPhysicalHandler(svc *metricuc.Service[metric.Physical, metric.PhysicalPatch]) *PhysicalHandler {
	return NewHandler(svc)
}

// NewConditionalHandler создаёт обработчик кондиционного домена.
// Отсутствие записи за день здесь не ошибка: клиент получает заготовку
// с нулевыми показателями, чтобы форма ввода открывалась заполненной.
func NewConditionalHandler(svc *metricuc.Service[metric.Conditional, metric.ConditionalPatch]) *ConditionalHandler {
	return NewHandler(svc).WithMissingByDate(conditionalPlaceholder)
}

// NewEnduranceHandler создаёт обработчик домена выносливости.
func NewEnduranceHandler(svc *metricuc.Service[metric.Endurance, metric.EndurancePatch]) *EnduranceHandler {
	return NewHandler(svc)
}

// conditionalDraft — тело заготовки кондиционной записи.
// id всегда null: в базе за этот день ничего не сохранено.
type conditionalDraft struct {
	ID                    *int64    `json:"id"`
	FootballerID          int64     `json:"footballer_id"`
	VO2Max                *float64  `json:"vo2_max"`
	LactateLevels         *float64  `json:"lactate_levels"`
	TrainingIntensity     *float64  `json:"training_intensity"`
	RecoveryTimes         *float64  `json:"recovery_times"`
	CurrentVO2Max         *float64  `json:"current_vo2_max"`
	CurrentLactateLevels  *float64  `json:"current_lactate_levels"`
	CurrentMuscleStrength *float64  `json:"current_muscle_strength"`
	TargetVO2Max          *float64  `json:"target_vo2_max"`
	TargetLactateLevel    *float64  `json:"target_lactate_level"`
	TargetMuscleStrength  *float64  `json:"target_muscle_strength"`
	CreatedAt             time.Time `json:"created_at"`
	Timestamp             time.Time `json:"updated_at"`
}

// conditionalPlaceholder собирает нулевую заготовку кондиционной записи за день.
func conditionalPlaceholder(footballerID int64, day time.Time) any {
	zero := func() *float64 { v := 0.0; return &v }
	return conditionalDraft{
		FootballerID:          footballerID,
		VO2Max:                zero(),
		LactateLevels:         zero(),
		TrainingIntensity:     zero(),
		RecoveryTimes:         zero(),
		CurrentVO2Max:         zero(),
		CurrentLactateLevels:  zero(),
		CurrentMuscleStrength: zero(),
		TargetVO2Max:          zero(),
		TargetLactateLevel:    zero(),
		TargetMuscleStrength:  zero(),
		CreatedAt:             day,
		Timestamp:             day,
	}
}
