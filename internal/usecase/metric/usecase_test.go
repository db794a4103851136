package metric_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"footballer-app/internal/domain/identity"
	"footballer-app/internal/domain/metric"
	"footballer-app/internal/domain/roster"
	repo "footballer-app/internal/repository/interfaces"
	"footballer-app/internal/usecase/authz"
	metricuc "footballer-app/internal/usecase/metric"
)

// ==== Fakes ====

type fakeRosterRepo struct {
	footballers map[int64]*roster.Footballer
}

func (r *fakeRosterRepo) ListLeagues(context.Context) ([]roster.League, error)    { return nil, nil }
func (r *fakeRosterRepo) GetTeam(context.Context, int64) (*roster.Team, error)    { return nil, repo.ErrNotFound }
func (r *fakeRosterRepo) ListTeams(context.Context) ([]roster.Team, error)        { return nil, nil }
func (r *fakeRosterRepo) ListTeamsByLeague(context.Context, string) ([]roster.Team, error) {
	return nil, nil
}
func (r *fakeRosterRepo) ListFootballers(context.Context) ([]roster.Footballer, error) {
	return nil, nil
}
func (r *fakeRosterRepo) ListFootballersByTeam(context.Context, int64) ([]roster.Footballer, error) {
	return nil, nil
}
func (r *fakeRosterRepo) GetFootballer(_ context.Context, id int64) (*roster.Footballer, error) {
	f, ok := r.footballers[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return f, nil
}

type fakePhysicalRepo struct {
	entries map[int64]metric.Physical
	nextID  int64
}

func newFakePhysicalRepo() *fakePhysicalRepo {
	return &fakePhysicalRepo{entries: map[int64]metric.Physical{}}
}

func (r *fakePhysicalRepo) Create(_ context.Context, e *metric.Physical) error {
	for _, stored := range r.entries {
		if stored.FootballerID == e.FootballerID && sameDay(stored.CreatedAt, e.CreatedAt) {
			return repo.ErrDuplicateEntry
		}
	}
	r.nextID++
	e.ID = r.nextID
	r.entries[e.ID] = *e
	return nil
}

func (r *fakePhysicalRepo) GetByID(_ context.Context, id int64) (*metric.Physical, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &e, nil
}

func (r *fakePhysicalRepo) GetByDate(_ context.Context, footballerID int64, day time.Time) (*metric.Physical, error) {
	for _, e := range r.entries {
		if e.FootballerID == footballerID && sameDay(e.CreatedAt, day) {
			found := e
			return &found, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakePhysicalRepo) Series(_ context.Context, footballerID int64, from, to *time.Time) ([]metric.Physical, error) {
	var out []metric.Physical
	for _, e := range r.entries {
		if e.FootballerID != footballerID {
			continue
		}
		// Границы включительны по календарному дню, как в хранилище
		if from != nil && e.CreatedAt.Before(*from) && !sameDay(e.CreatedAt, *from) {
			continue
		}
		if to != nil && e.CreatedAt.After(*to) && !sameDay(e.CreatedAt, *to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePhysicalRepo) History(_ context.Context, footballerID int64, limit int) ([]metric.Physical, error) {
	var out []metric.Physical
	for _, e := range r.entries {
		if e.FootballerID == footballerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePhysicalRepo) UpdateFields(_ context.Context, id int64, fields map[string]interface{}) error {
	e, ok := r.entries[id]
	if !ok {
		return repo.ErrNotFound
	}
	for name, value := range fields {
		switch name {
		case "weight":
			v := value.(float64)
			e.Weight = &v
		case "muscle_mass":
			v := value.(float64)
			e.MuscleMass = &v
		case "timestamp":
			e.Timestamp = value.(time.Time)
		}
	}
	r.entries[id] = e
	return nil
}

func (r *fakePhysicalRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.entries[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.UTC().Format(time.DateOnly) == b.UTC().Format(time.DateOnly)
}

// ==== Helpers ====

func teamID(v int64) *int64   { return &v }
func f64(v float64) *float64  { return &v }
func date(s string) time.Time { t, _ := time.Parse(time.DateOnly, s); return t }

func newService(entries *fakePhysicalRepo) *metricuc.Service[metric.Physical, metric.PhysicalPatch] {
	rosters := &fakeRosterRepo{footballers: map[int64]*roster.Footballer{
		100: {ID: 100, TeamID: 10},
		200: {ID: 200, TeamID: 20},
	}}
	engine := authz.NewEngine(rosters)
	return metricuc.NewService[metric.Physical, metric.PhysicalPatch](metric.DomainPhysical, entries, engine)
}

var coach = identity.Identity{UserID: 2, TeamID: teamID(10)}

// ==== Tests ====

func TestAdd_CreatesEntryForToday(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	patch := metric.PhysicalPatch{Weight: f64(82.5)}
	entry, err := svc.Add(context.Background(), coach, 100, patch, nil)
	require.NoError(t, err)
	require.NotZero(t, entry.ID)
	require.Equal(t, int64(100), entry.FootballerID)
	require.Equal(t, 82.5, *entry.Weight)

	// Незаданные поля остаются NULL, а не нулями
	require.Nil(t, entry.MuscleMass)
	require.Nil(t, entry.Heights)

	// Дата измерения нормализована к началу дня
	require.True(t, sameDay(entry.CreatedAt, time.Now().UTC()))
	require.Equal(t, 0, entry.CreatedAt.Hour())
}

func TestAdd_AsOfDate(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	asOf := date("2026-03-15")
	entry, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, &asOf)
	require.NoError(t, err)
	require.Equal(t, "2026-03-15", entry.CreatedAt.Format(time.DateOnly))
}

func TestAdd_SameDayDuplicateRejected(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	asOf := date("2026-03-15")
	_, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, &asOf)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(81)}, &asOf)
	require.ErrorIs(t, err, repo.ErrDuplicateEntry)

	// На другой день запись добавляется
	nextDay := date("2026-03-16")
	_, err = svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(81)}, &nextDay)
	require.NoError(t, err)
}

func TestAdd_ForeignFootballerDenied(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	_, err := svc.Add(context.Background(), coach, 200, metric.PhysicalPatch{Weight: f64(80)}, nil)
	require.ErrorIs(t, err, authz.ErrAccessDenied)
	require.Empty(t, entries.entries)
}

func TestUpdate_PartialPreservesOtherFields(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	asOf := date("2026-03-15")
	created, err := svc.Add(context.Background(), coach, 100,
		metric.PhysicalPatch{Weight: f64(80), MuscleMass: f64(40)}, &asOf)
	require.NoError(t, err)
	before := created.Timestamp

	updated, err := svc.Update(context.Background(), coach, created.ID, metric.PhysicalPatch{Weight: f64(83)})
	require.NoError(t, err)

	require.Equal(t, 83.0, *updated.Weight)
	// Поле, отсутствующее в патче, сохраняется
	require.Equal(t, 40.0, *updated.MuscleMass)
	// Отметка модификации обновлена
	require.True(t, updated.Timestamp.After(before) || updated.Timestamp.Equal(before))
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdate_EmptyPatchRejected(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	created, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, nil)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), coach, created.ID, metric.PhysicalPatch{})
	require.ErrorIs(t, err, metricuc.ErrEmptyPatch)
}

func TestUpdate_ForeignEntryDenied(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	admin := identity.Identity{UserID: 1, IsAdmin: true}
	created, err := svc.Add(context.Background(), admin, 200, metric.PhysicalPatch{Weight: f64(75)}, nil)
	require.NoError(t, err)

	// Тренер команды 10 не может править запись футболиста команды 20
	_, err = svc.Update(context.Background(), coach, created.ID, metric.PhysicalPatch{Weight: f64(76)})
	require.ErrorIs(t, err, authz.ErrAccessDenied)
}

func TestDelete(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	created, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), coach, created.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), coach, created.ID), repo.ErrNotFound)
}

func TestByDate(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	asOf := date("2026-03-15")
	_, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, &asOf)
	require.NoError(t, err)

	entry, err := svc.ByDate(context.Background(), coach, 100, date("2026-03-15"))
	require.NoError(t, err)
	require.Equal(t, 80.0, *entry.Weight)

	_, err = svc.ByDate(context.Background(), coach, 100, date("2026-03-16"))
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSeries_OrderedAscending(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	for _, day := range []string{"2026-03-17", "2026-03-15", "2026-03-16"} {
		asOf := date(day)
		_, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, &asOf)
		require.NoError(t, err)
	}

	series, err := svc.Series(context.Background(), coach, 100, nil, nil)
	require.NoError(t, err)
	require.Len(t, series, 3)
	require.Equal(t, "2026-03-15", series[0].CreatedAt.Format(time.DateOnly))
	require.Equal(t, "2026-03-17", series[2].CreatedAt.Format(time.DateOnly))
}

func TestSeries_InclusiveBounds(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	for _, day := range []string{"2026-03-14", "2026-03-15", "2026-03-16", "2026-03-17", "2026-03-18"} {
		asOf := date(day)
		_, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, &asOf)
		require.NoError(t, err)
	}

	from := date("2026-03-15")
	to := date("2026-03-17")
	series, err := svc.Series(context.Background(), coach, 100, &from, &to)
	require.NoError(t, err)

	// Записи на границах диапазона входят в выборку, соседние дни — нет
	require.Len(t, series, 3)
	require.Equal(t, "2026-03-15", series[0].CreatedAt.Format(time.DateOnly))
	require.Equal(t, "2026-03-16", series[1].CreatedAt.Format(time.DateOnly))
	require.Equal(t, "2026-03-17", series[2].CreatedAt.Format(time.DateOnly))
}

func TestSeries_ForeignFootballerDenied(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	_, err := svc.Series(context.Background(), coach, 200, nil, nil)
	require.ErrorIs(t, err, authz.ErrAccessDenied)
}

func TestHistory_LimitAndOrder(t *testing.T) {
	entries := newFakePhysicalRepo()
	svc := newService(entries)

	for i := 1; i <= 12; i++ {
		asOf := date("2026-03-01").AddDate(0, 0, i)
		_, err := svc.Add(context.Background(), coach, 100, metric.PhysicalPatch{Weight: f64(80)}, &asOf)
		require.NoError(t, err)
	}

	// limit <= 0 заменяется значением по умолчанию (10)
	history, err := svc.History(context.Background(), coach, 100, 0)
	require.NoError(t, err)
	require.Len(t, history, 10)
	// Последняя запись — первой
	require.Equal(t, "2026-03-13", history[0].CreatedAt.Format(time.DateOnly))

	history, err = svc.History(context.Background(), coach, 100, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
}
