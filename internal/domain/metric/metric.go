package metric

import "time"

// Пакет metric описывает три домена измерений футболиста — физический (physical),
// кондиционный (conditional) и выносливость (endurance). Наборы полей у доменов
// разные, но контракт операций общий, поэтому CRUD/история реализованы один раз
// generic-движком, параметризованным типами Entry/Patch конкретного домена.

// Domain — один из трёх доменов измерений.
type Domain string

const (
	DomainPhysical    Domain = "physical"
	DomainConditional Domain = "conditional"
	DomainEndurance   Domain = "endurance"
)

// ParseDomain возвращает домен по строковому тегу.
func ParseDomain(s string) (Domain, bool) {
	switch Domain(s) {
	case DomainPhysical, DomainConditional, DomainEndurance:
		return Domain(s), true
	}
	return "", false
}

// Entry — контракт записи измерения. Реализуется значениями Physical,
// Conditional и Endurance; методы дают generic-слоям доступ к общим атрибутам
// без знания конкретной схемы домена.
type Entry interface {
	// EntryID возвращает идентификатор записи.
	EntryID() int64
	// EntryFootballer возвращает идентификатор футболиста-владельца.
	EntryFootballer() int64
	// EntryDate возвращает дату измерения (created_at).
	EntryDate() time.Time
	// Value возвращает значение метрики по её имени.
	// Второй результат false, если метрика домену неизвестна.
	// nil-указатель означает, что значение не было задано.
	Value(name string) (*float64, bool)
}

// Patch — частичное обновление записи домена E. Каждое поле независимо
// присутствует или отсутствует (nil-указатель = не задано), поэтому
// незаданные поля при обновлении сохраняются.
type Patch[E any] interface {
	// Changes возвращает карту колонка → значение только для заданных полей.
	Changes() map[string]interface{}
	// NewEntry собирает новую запись из заданных полей патча.
	NewEntry(footballerID int64, createdAt time.Time) E
}

// DefaultMetrics возвращает имена метрик домена, используемые построителем
// отчётов, когда вызывающая сторона не указала собственный список.
func DefaultMetrics(d Domain) []string {
	switch d {
	case DomainPhysical:
		return []string{"muscle_mass", "muscle_strength", "muscle_endurance", "flexibility", "weight", "body_fat_percentage"}
	case DomainConditional:
		return []string{"vo2_max", "lactate_levels", "training_intensity", "recovery_times"}
	case DomainEndurance:
		return []string{"running_distance", "average_speed", "heart_rate", "peak_heart_rate", "training_intensity"}
	}
	return nil
}

// intValue конвертирует опциональное целое в опциональный float для отчётов.
func intValue(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
