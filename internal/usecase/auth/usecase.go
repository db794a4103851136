package auth

import (
	"context"
	"errors"
	"time"

	"footballer-app/internal/domain/roster"
	domain "footballer-app/internal/domain/user"
	repo "footballer-app/internal/repository/interfaces"
	jwtsvc "footballer-app/pkg/jwt"
	"footballer-app/pkg/password"
)

// Ошибки бизнес-логики usecase-слоя.
var (
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrCurrentPasswordInvalid = errors.New("current password is incorrect")
)

// RegisterInput описывает данные регистрации нового пользователя.
type RegisterInput struct {
	Username            string
	Email               string
	Password            string
	FirstName           string
	LastName            string
	Role                domain.Role
	Club                string
	TeamID              *int64
	AccessKey           string
	IsAdmin             bool
	NeedsPasswordChange bool
}

// ProfileUpdateInput описывает допустимые изменения профиля пользователя.
// Все поля опциональны; смена пароля требует подтверждения текущим паролем.
type ProfileUpdateInput struct {
	FirstName           *string
	LastName            *string
	Email               *string
	Role                *domain.Role
	Club                *string
	TeamID              *int64
	AccessKey           *string
	IsAdmin             *bool
	NeedsPasswordChange *bool
	Password            *string
	CurrentPassword     *string
}

// Service описывает usecase-слой аутентификации и профиля пользователя.
type Service interface {
	// Register регистрирует пользователя, проверяя уникальность username/email.
	// Возвращает созданного пользователя и его токен.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)

	// Login выполняет вход по username/паролю, ведя счётчики попыток.
	// Возвращает пользователя и токен.
	Login(ctx context.Context, username, rawPassword string) (*domain.User, string, error)

	// Logout помечает сессию пользователя завершённой.
	Logout(ctx context.Context, userID int64) error

	// Profile возвращает пользователя по идентификатору.
	Profile(ctx context.Context, userID int64) (*domain.User, error)

	// ProfileWithTeam возвращает пользователя вместе с информацией о его команде
	// (nil, если команда не назначена).
	ProfileWithTeam(ctx context.Context, userID int64) (*domain.User, *roster.Team, error)

	// UpdateProfile применяет частичное обновление профиля.
	// При смене email уникальность перепроверяется; смена пароля требует
	// подтверждения текущим паролем.
	UpdateProfile(ctx context.Context, userID int64, input ProfileUpdateInput) (*domain.User, error)
}

type service struct {
	users   repo.UserRepository
	rosters repo.RosterRepository
	jwt     jwtsvc.Service
}

// NewService создаёт новый auth usecase-сервис.
func NewService(users repo.UserRepository, rosters repo.RosterRepository, jwt jwtsvc.Service) Service {
	return &service{
		users:   users,
		rosters: rosters,
		jwt:     jwt,
	}
}

// Register регистрирует нового пользователя и возвращает его вместе с токеном.
func (s *service) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, "", errors.New("username, email and password are required")
	}

	// Хешируем пароль на уровне usecase.
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := domain.NewUser(input.Username, input.Email, hashed)
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	if input.Role != "" {
		user.Role = input.Role
	}
	user.Club = input.Club
	user.TeamID = input.TeamID
	user.AccessKey = input.AccessKey
	user.IsAdmin = input.IsAdmin
	user.NeedsPasswordChange = input.NeedsPasswordChange

	// Уникальность username/email гарантируют индексы БД;
	// репозиторий маппит нарушение в ErrUsernameExists/ErrEmailExists.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login выполняет вход по username/паролю.
// Неверный пароль увеличивает счётчик неверных попыток; успешный вход
// сбрасывает его и помечает сессию активной.
func (s *service) Login(ctx context.Context, username, rawPassword string) (*domain.User, string, error) {
	if username == "" || rawPassword == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Не раскрываем, что именно неверно
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		user.RegisterWrongLogin()
		_ = s.users.Update(ctx, user)
		return nil, "", ErrInvalidCredentials
	}

	user.RegisterLogin(time.Now().UTC())
	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout помечает сессию пользователя завершённой.
func (s *service) Logout(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Logout()
	return s.users.Update(ctx, user)
}

// Profile возвращает пользователя по идентификатору.
func (s *service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ProfileWithTeam возвращает пользователя вместе с его командой.
func (s *service) ProfileWithTeam(ctx context.Context, userID int64) (*domain.User, *roster.Team, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if user.TeamID == nil {
		return user, nil, nil
	}

	team, err := s.rosters.GetTeam(ctx, *user.TeamID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Назначенная команда исчезла из справочника — профиль всё равно отдаём.
			return user, nil, nil
		}
		return nil, nil, err
	}
	return user, team, nil
}

// UpdateProfile применяет частичное обновление профиля пользователя.
func (s *service) UpdateProfile(ctx context.Context, userID int64, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil && *input.Email != user.Email {
		// Перепроверяем уникальность нового email до записи.
		if _, err := s.users.GetByEmail(ctx, *input.Email); err == nil {
			return nil, repo.ErrEmailExists
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Club != nil {
		user.Club = *input.Club
	}
	if input.TeamID != nil {
		user.TeamID = input.TeamID
	}
	if input.AccessKey != nil {
		user.AccessKey = *input.AccessKey
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.NeedsPasswordChange != nil {
		user.NeedsPasswordChange = *input.NeedsPasswordChange
	}

	if input.Password != nil && *input.Password != "" {
		// Смена пароля требует подтверждения текущим паролем.
		if input.CurrentPassword == nil {
			return nil, ErrCurrentPasswordInvalid
		}
		if err := password.Compare(user.PasswordHash, *input.CurrentPassword); err != nil {
			return nil, ErrCurrentPasswordInvalid
		}

		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.OldPassword = user.PasswordHash
		user.PasswordHash = hashed
		user.NeedsPasswordChange = false
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
