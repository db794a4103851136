package metric

import (
	"context"
	"errors"
	"time"

	"footballer-app/internal/domain/identity"
	"footballer-app/internal/domain/metric"
	repo "footballer-app/internal/repository/interfaces"
	"footballer-app/internal/usecase/authz"
)

// Ошибки бизнес-логики usecase-слоя.
var (
	// ErrEmptyPatch возвращается, когда в частичном обновлении не задано ни одно поле.
	ErrEmptyPatch = errors.New("no fields to update")

	// ErrInvalidLimit возвращается при некорректном лимите истории.
	ErrInvalidLimit = errors.New("limit must be positive")
)

const defaultHistoryLimit = 10

// Service — generic-движок операций над записями измерений.
// Один и тот же код обслуживает все три домена; E — тип записи домена,
// P — тип частичного обновления. Каждая операция, затрагивающая футболиста
// или запись, перепроверяет доступ через общий движок авторизации.
type Service[E metric.Entry, P metric.Patch[E]] struct {
	domain  metric.Domain
	entries repo.MetricEntryRepository[E]
	authz   *authz.Engine
}

// NewService создаёт сервис измерений для домена domain.
func NewService[E metric.Entry, P metric.Patch[E]](
	domain metric.Domain,
	entries repo.MetricEntryRepository[E],
	engine *authz.Engine,
) *Service[E, P] {
	return &Service[E, P]{
		domain:  domain,
		entries: entries,
		authz:   engine,
	}
}

// Domain возвращает домен измерений, который обслуживает сервис.
func (s *Service[E, P]) Domain() metric.Domain {
	return s.domain
}

// guardFootballer проверяет доступ identity к футболисту.
func (s *Service[E, P]) guardFootballer(ctx context.Context, id identity.Identity, footballerID int64) error {
	allowed, err := s.authz.CanAccessFootballer(ctx, id, footballerID)
	if err != nil {
		return err
	}
	if !allowed {
		return authz.ErrAccessDenied
	}
	return nil
}

// Series возвращает записи футболиста по возрастанию даты измерения.
// Границы диапазона — календарные даты, обе включительны; nil — без ограничения.
func (s *Service[E, P]) Series(ctx context.Context, id identity.Identity, footballerID int64, from, to *time.Time) ([]E, error) {
	if err := s.guardFootballer(ctx, id, footballerID); err != nil {
		return nil, err
	}
	return s.entries.Series(ctx, footballerID, from, to)
}

// ByDate возвращает запись футболиста за календарный день day.
// Возвращает repo.ErrNotFound, если записи за этот день нет.
func (s *Service[E, P]) ByDate(ctx context.Context, id identity.Identity, footballerID int64, day time.Time) (*E, error) {
	if err := s.guardFootballer(ctx, id, footballerID); err != nil {
		return nil, err
	}
	return s.entries.GetByDate(ctx, footballerID, day)
}

// Add создаёт новую запись за день asOf (по умолчанию — сегодня).
// Возвращает repo.ErrDuplicateEntry, если запись за этот день уже существует.
// Незаданные поля патча сохраняются как NULL.
func (s *Service[E, P]) Add(ctx context.Context, id identity.Identity, footballerID int64, patch P, asOf *time.Time) (*E, error) {
	if err := s.guardFootballer(ctx, id, footballerID); err != nil {
		return nil, err
	}

	day := time.Now().UTC()
	if asOf != nil {
		day = *asOf
	}

	// Предварительная проверка даёт понятную ошибку без обращения к вставке;
	// гарантию от гонки двух конкурентных добавлений даёт уникальный индекс
	// (footballer_id, день) — Create маппит его нарушение в ErrDuplicateEntry.
	if _, err := s.entries.GetByDate(ctx, footballerID, day); err == nil {
		return nil, repo.ErrDuplicateEntry
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	entry := patch.NewEntry(footballerID, startOfDay(day))
	if err := s.entries.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update применяет частичное обновление к записи entryID.
// Перед изменением доступ перепроверяется по футболисту записи.
// Поля, отсутствующие в патче, сохраняются; отметка модификации обновляется.
func (s *Service[E, P]) Update(ctx context.Context, id identity.Identity, entryID int64, patch P) (*E, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.guardFootballer(ctx, id, (*entry).EntryFootballer()); err != nil {
		return nil, err
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, ErrEmptyPatch
	}
	changes["timestamp"] = time.Now().UTC()

	if err := s.entries.UpdateFields(ctx, entryID, changes); err != nil {
		return nil, err
	}

	return s.entries.GetByID(ctx, entryID)
}

// Delete удаляет запись entryID с той же проверкой доступа, что и Update.
func (s *Service[E, P]) Delete(ctx context.Context, id identity.Identity, entryID int64) error {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return err
	}

	if err := s.guardFootballer(ctx, id, (*entry).EntryFootballer()); err != nil {
		return err
	}

	return s.entries.Delete(ctx, entryID)
}

// History возвращает не более limit последних записей футболиста
// по убыванию даты измерения. limit <= 0 заменяется значением по умолчанию.
func (s *Service[E, P]) History(ctx context.Context, id identity.Identity, footballerID int64, limit int) ([]E, error) {
	if err := s.guardFootballer(ctx, id, footballerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.entries.History(ctx, footballerID, limit)
}

// startOfDay нормализует момент времени к началу календарного дня в UTC.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
