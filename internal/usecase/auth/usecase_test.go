package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"footballer-app/internal/domain/roster"
	domain "footballer-app/internal/domain/user"
	repo "footballer-app/internal/repository/interfaces"
	authuc "footballer-app/internal/usecase/auth"
	jwtsvc "footballer-app/pkg/jwt"
	"footballer-app/pkg/password"
)

// ==== Fakes ====

type fakeUserRepo struct {
	byID    map[int64]*domain.User
	nextID  int64
	updated int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[int64]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, stored := range r.byID {
		if stored.Email == u.Email {
			return repo.ErrEmailExists
		}
		if stored.Username == u.Username {
			return repo.ErrUsernameExists
		}
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return repo.ErrNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.updated++
	return nil
}

func (r *fakeUserRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (r *fakeUserRepo) ReleaseStaleLogins(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type fakeRosterRepo struct {
	teams map[int64]*roster.Team
}

func (r *fakeRosterRepo) ListLeagues(context.Context) ([]roster.League, error) { return nil, nil }
func (r *fakeRosterRepo) GetTeam(_ context.Context, id int64) (*roster.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return t, nil
}
func (r *fakeRosterRepo) ListTeams(context.Context) ([]roster.Team, error) { return nil, nil }
func (r *fakeRosterRepo) ListTeamsByLeague(context.Context, string) ([]roster.Team, error) {
	return nil, nil
}
func (r *fakeRosterRepo) GetFootballer(context.Context, int64) (*roster.Footballer, error) {
	return nil, repo.ErrNotFound
}
func (r *fakeRosterRepo) ListFootballers(context.Context) ([]roster.Footballer, error) {
	return nil, nil
}
func (r *fakeRosterRepo) ListFootballersByTeam(context.Context, int64) ([]roster.Footballer, error) {
	return nil, nil
}

// fakeJWT выдаёт фиксированный токен.
type fakeJWT struct{}

func (f *fakeJWT) GenerateToken(*domain.User) (string, error) { return "test-token", nil }
func (f *fakeJWT) ParseToken(string) (*jwtsvc.Claims, error)  { return &jwtsvc.Claims{}, nil }

func newService(users *fakeUserRepo) authuc.Service {
	rosters := &fakeRosterRepo{teams: map[int64]*roster.Team{
		10: {ID: 10, LeagueID: "L1", Name: "Alpha"},
	}}
	return authuc.NewService(users, rosters, &fakeJWT{})
}

func str(s string) *string { return &s }
func i64(v int64) *int64   { return &v }

// ==== Tests ====

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	user, token, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1",
		Email:    "coach1@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.Equal(t, "test-token", token)
	require.NotZero(t, user.ID)
	require.Equal(t, domain.RoleUser, user.Role)

	// Пароль хранится хэшем
	require.NotEqual(t, "secret-password", user.PasswordHash)
	require.NoError(t, password.Compare(user.PasswordHash, "secret-password"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	_, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "dup@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach2", Email: "dup@example.com", Password: "secret-password",
	})
	require.ErrorIs(t, err, repo.ErrEmailExists)
}

func TestLogin_SuccessUpdatesCounters(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	registered, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "coach1@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "coach1", "secret-password")
	require.NoError(t, err)
	require.Equal(t, "test-token", token)
	require.Equal(t, 1, user.LoginAttempts)
	require.Equal(t, 0, user.WrongLoginAttempts)
	require.True(t, user.IsLoggedIn)
	require.NotNil(t, user.LastLoginAt)

	// Счётчики персистятся
	stored, err := users.GetByID(context.Background(), registered.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.LoginAttempts)
	require.True(t, stored.IsLoggedIn)
}

func TestLogin_WrongPasswordCountsAndPersists(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	registered, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "coach1@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "coach1", "wrong")
	require.ErrorIs(t, err, authuc.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "coach1", "wrong-again")
	require.ErrorIs(t, err, authuc.ErrInvalidCredentials)

	stored, err := users.GetByID(context.Background(), registered.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.WrongLoginAttempts)
	require.False(t, stored.IsLoggedIn)

	// Успешный вход сбрасывает счётчик неверных попыток
	_, _, err = svc.Login(context.Background(), "coach1", "secret-password")
	require.NoError(t, err)
	stored, _ = users.GetByID(context.Background(), registered.ID)
	require.Equal(t, 0, stored.WrongLoginAttempts)
	require.Equal(t, 1, stored.LoginAttempts)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	require.ErrorIs(t, err, authuc.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	registered, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "coach1@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "coach1", "secret-password")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), registered.ID))

	stored, _ := users.GetByID(context.Background(), registered.ID)
	require.False(t, stored.IsLoggedIn)
}

func TestProfileWithTeam(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	registered, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "coach1@example.com", Password: "secret-password",
		TeamID: i64(10),
	})
	require.NoError(t, err)

	user, team, err := svc.ProfileWithTeam(context.Background(), registered.ID)
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotNil(t, team)
	require.Equal(t, "Alpha", team.Name)
}

func TestProfileWithTeam_MissingTeamTolerated(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	registered, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "coach1@example.com", Password: "secret-password",
		TeamID: i64(999),
	})
	require.NoError(t, err)

	user, team, err := svc.ProfileWithTeam(context.Background(), registered.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Nil(t, team)
}

func TestUpdateProfile_PasswordChange(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	registered, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "coach1@example.com", Password: "secret-password",
		NeedsPasswordChange: true,
	})
	require.NoError(t, err)
	oldHash := registered.PasswordHash

	// Без подтверждения текущим паролем смена отклоняется
	_, err = svc.UpdateProfile(context.Background(), registered.ID, authuc.ProfileUpdateInput{
		Password: str("new-password-123"),
	})
	require.ErrorIs(t, err, authuc.ErrCurrentPasswordInvalid)

	// Неверный текущий пароль тоже
	_, err = svc.UpdateProfile(context.Background(), registered.ID, authuc.ProfileUpdateInput{
		Password:        str("new-password-123"),
		CurrentPassword: str("wrong"),
	})
	require.ErrorIs(t, err, authuc.ErrCurrentPasswordInvalid)

	// С верным текущим паролем — успех
	updated, err := svc.UpdateProfile(context.Background(), registered.ID, authuc.ProfileUpdateInput{
		Password:        str("new-password-123"),
		CurrentPassword: str("secret-password"),
	})
	require.NoError(t, err)
	require.NoError(t, password.Compare(updated.PasswordHash, "new-password-123"))
	require.Equal(t, oldHash, updated.OldPassword)
	require.False(t, updated.NeedsPasswordChange)
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	_, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "taken@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	second, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach2", Email: "coach2@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), second.ID, authuc.ProfileUpdateInput{
		Email: str("taken@example.com"),
	})
	require.ErrorIs(t, err, repo.ErrEmailExists)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	users := newFakeUserRepo()
	svc := newService(users)

	registered, _, err := svc.Register(context.Background(), authuc.RegisterInput{
		Username: "coach1", Email: "coach1@example.com", Password: "secret-password",
		FirstName: "Ivan", Club: "Alpha FC",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), registered.ID, authuc.ProfileUpdateInput{
		LastName: str("Petrov"),
	})
	require.NoError(t, err)
	require.Equal(t, "Petrov", updated.LastName)
	// Остальные поля не тронуты
	require.Equal(t, "Ivan", updated.FirstName)
	require.Equal(t, "Alpha FC", updated.Club)
}
