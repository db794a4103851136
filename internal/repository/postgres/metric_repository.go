package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"footballer-app/internal/domain/metric"
	repo "footballer-app/internal/repository/interfaces"
)

// MetricRepository — generic-реализация repo.MetricEntryRepository поверх GORM.
// Один тип обслуживает все три таблицы измерений: конкретная таблица выбирается
// типом записи E (TableName у Physical/Conditional/Endurance).
type MetricRepository[E metric.Entry] struct {
	db *gorm.DB
}

// NewMetricRepository создает новый репозиторий записей измерений домена E.
func NewMetricRepository[E metric.Entry](db *gorm.DB) *MetricRepository[E] {
	return &MetricRepository[E]{db: db}
}

// dayBounds возвращает границы календарного дня: [00:00:00, 23:59:59] в UTC.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}

// Create сохраняет новую запись и заполняет её идентификатор.
// Нарушение уникального индекса (footballer_id, день) маппится в ErrDuplicateEntry.
func (r *MetricRepository[E]) Create(ctx context.Context, entry *E) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return repo.ErrDuplicateEntry
		}
		return err
	}
	return nil
}

// GetByID возвращает запись по идентификатору.
func (r *MetricRepository[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	var model E
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetByDate возвращает запись футболиста за календарный день day.
func (r *MetricRepository[E]) GetByDate(ctx context.Context, footballerID int64, day time.Time) (*E, error) {
	start, end := dayBounds(day)

	var model E
	err := r.db.WithContext(ctx).
		Where("footballer_id = ? AND created_at BETWEEN ? AND ?", footballerID, start, end).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Series возвращает записи футболиста по возрастанию даты измерения.
// Границы диапазона включительны; nil означает отсутствие ограничения.
func (r *MetricRepository[E]) Series(ctx context.Context, footballerID int64, from, to *time.Time) ([]E, error) {
	q := r.db.WithContext(ctx).
		Where("footballer_id = ?", footballerID)

	if from != nil {
		start, _ := dayBounds(*from)
		q = q.Where("created_at >= ?", start)
	}
	if to != nil {
		_, end := dayBounds(*to)
		q = q.Where("created_at <= ?", end)
	}

	var models []E
	if err := q.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// History возвращает не более limit последних записей по убыванию даты измерения.
func (r *MetricRepository[E]) History(ctx context.Context, footballerID int64, limit int) ([]E, error) {
	var models []E
	err := r.db.WithContext(ctx).
		Where("footballer_id = ?", footballerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return models, nil
}

// UpdateFields обновляет только перечисленные колонки записи.
func (r *MetricRepository[E]) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(new(E)).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Delete удаляет запись по идентификатору.
func (r *MetricRepository[E]) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(E))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
