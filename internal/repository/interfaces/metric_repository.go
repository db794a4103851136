package interfaces

import (
	"context"
	"time"

	"footballer-app/internal/domain/metric"
)

// MetricEntryRepository определяет generic-контракт хранилища записей измерений.
// Один и тот же контракт обслуживает все три домена (physical, conditional,
// endurance); E — тип записи конкретного домена.
type MetricEntryRepository[E metric.Entry] interface {
	// Create сохраняет новую запись и заполняет её идентификатор.
	// Возвращает ErrDuplicateEntry, если уникальный индекс (footballer_id, день)
	// отклонил вставку — это закрывает гонку двух конкурентных добавлений.
	Create(ctx context.Context, entry *E) error

	// GetByID возвращает запись по идентификатору.
	// Возвращает (nil, ErrNotFound), если запись не найдена.
	GetByID(ctx context.Context, id int64) (*E, error)

	// GetByDate возвращает запись футболиста, чья дата измерения попадает
	// в календарный день day (границы [00:00:00, 23:59:59] включительно).
	// Возвращает (nil, ErrNotFound), если записи за этот день нет.
	GetByDate(ctx context.Context, footballerID int64, day time.Time) (*E, error)

	// Series возвращает записи футболиста по возрастанию даты измерения.
	// nil-границы означают отсутствие ограничения; границы включительны.
	Series(ctx context.Context, footballerID int64, from, to *time.Time) ([]E, error)

	// History возвращает не более limit последних записей футболиста
	// по убыванию даты измерения.
	History(ctx context.Context, footballerID int64, limit int) ([]E, error)

	// UpdateFields обновляет только перечисленные колонки записи.
	// Возвращает ErrNotFound, если запись не существует.
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error

	// Delete удаляет запись. Возвращает ErrNotFound, если запись не существует.
	Delete(ctx context.Context, id int64) error
}
