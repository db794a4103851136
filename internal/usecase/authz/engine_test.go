package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"footballer-app/internal/domain/identity"
	"footballer-app/internal/domain/roster"
	repo "footballer-app/internal/repository/interfaces"
	"footballer-app/internal/usecase/authz"
)

// ==== Fake roster repository ====

type fakeRosterRepo struct {
	teams       map[int64]*roster.Team
	footballers map[int64]*roster.Footballer
	failWith    error
}

func (r *fakeRosterRepo) ListLeagues(context.Context) ([]roster.League, error) { return nil, nil }

func (r *fakeRosterRepo) GetTeam(_ context.Context, id int64) (*roster.Team, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	t, ok := r.teams[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return t, nil
}

func (r *fakeRosterRepo) ListTeams(context.Context) ([]roster.Team, error) {
	out := make([]roster.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeRosterRepo) ListTeamsByLeague(_ context.Context, leagueID string) ([]roster.Team, error) {
	var out []roster.Team
	for _, t := range r.teams {
		if t.LeagueID == leagueID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeRosterRepo) GetFootballer(_ context.Context, id int64) (*roster.Footballer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	f, ok := r.footballers[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return f, nil
}

func (r *fakeRosterRepo) ListFootballers(context.Context) ([]roster.Footballer, error) {
	out := make([]roster.Footballer, 0, len(r.footballers))
	for _, f := range r.footballers {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeRosterRepo) ListFootballersByTeam(_ context.Context, teamID int64) ([]roster.Footballer, error) {
	var out []roster.Footballer
	for _, f := range r.footballers {
		if f.TeamID == teamID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func teamID(v int64) *int64 { return &v }

func newRepo() *fakeRosterRepo {
	return &fakeRosterRepo{
		teams: map[int64]*roster.Team{
			10: {ID: 10, LeagueID: "L1", Name: "Alpha"},
			20: {ID: 20, LeagueID: "L1", Name: "Beta"},
		},
		footballers: map[int64]*roster.Footballer{
			100: {ID: 100, TeamID: 10, Name: "Own Player"},
			200: {ID: 200, TeamID: 20, Name: "Other Player"},
		},
	}
}

// ==== Tests ====

func TestCanAccessTeam_AdminSeesEverything(t *testing.T) {
	engine := authz.NewEngine(newRepo())
	admin := identity.Identity{UserID: 1, IsAdmin: true}

	require.True(t, engine.CanAccessTeam(context.Background(), admin, 10))
	require.True(t, engine.CanAccessTeam(context.Background(), admin, 20))
	require.True(t, engine.CanAccessTeam(context.Background(), admin, 999))
}

func TestCanAccessTeam_NonAdminOnlyOwnTeam(t *testing.T) {
	engine := authz.NewEngine(newRepo())
	coach := identity.Identity{UserID: 2, TeamID: teamID(10)}

	require.True(t, engine.CanAccessTeam(context.Background(), coach, 10))
	require.False(t, engine.CanAccessTeam(context.Background(), coach, 20))
}

func TestCanAccessTeam_NoTeamAssigned_Denied(t *testing.T) {
	engine := authz.NewEngine(newRepo())
	orphan := identity.Identity{UserID: 3}

	require.False(t, engine.CanAccessTeam(context.Background(), orphan, 10))
}

func TestCanAccessFootballer_AdminShortCircuit(t *testing.T) {
	r := newRepo()
	r.failWith = errors.New("storage down")
	engine := authz.NewEngine(r)
	admin := identity.Identity{UserID: 1, IsAdmin: true}

	// Администратору доступ даётся без обращения к хранилищу
	ok, err := engine.CanAccessFootballer(context.Background(), admin, 100)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCanAccessFootballer_OwnAndForeign(t *testing.T) {
	engine := authz.NewEngine(newRepo())
	coach := identity.Identity{UserID: 2, TeamID: teamID(10)}

	ok, err := engine.CanAccessFootballer(context.Background(), coach, 100)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = engine.CanAccessFootballer(context.Background(), coach, 200)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanAccessFootballer_MissingFootballer_DeniedNotError(t *testing.T) {
	engine := authz.NewEngine(newRepo())
	coach := identity.Identity{UserID: 2, TeamID: teamID(10)}

	ok, err := engine.CanAccessFootballer(context.Background(), coach, 999)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanAccessFootballer_StorageErrorPropagated(t *testing.T) {
	r := newRepo()
	r.failWith = errors.New("storage down")
	engine := authz.NewEngine(r)
	coach := identity.Identity{UserID: 2, TeamID: teamID(10)}

	ok, err := engine.CanAccessFootballer(context.Background(), coach, 100)
	require.Error(t, err)
	require.False(t, ok)
}

func TestAccessibleTeams(t *testing.T) {
	engine := authz.NewEngine(newRepo())

	admin := identity.Identity{UserID: 1, IsAdmin: true}
	teams, err := engine.AccessibleTeams(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	coach := identity.Identity{UserID: 2, TeamID: teamID(10)}
	teams, err = engine.AccessibleTeams(context.Background(), coach)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, int64(10), teams[0].ID)

	orphan := identity.Identity{UserID: 3}
	teams, err = engine.AccessibleTeams(context.Background(), orphan)
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestAccessibleFootballers(t *testing.T) {
	engine := authz.NewEngine(newRepo())

	admin := identity.Identity{UserID: 1, IsAdmin: true}
	all, err := engine.AccessibleFootballers(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, all, 2)

	coach := identity.Identity{UserID: 2, TeamID: teamID(10)}
	own, err := engine.AccessibleFootballers(context.Background(), coach)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, int64(100), own[0].ID)
}
