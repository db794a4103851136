package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "footballer-app/internal/domain/user"
	repo "footballer-app/internal/repository/interfaces"
)

// pgUser представляет собой ORM-модель для таблицы users.
// Она максимально близко отражает схему БД и маппится в доменную модель User.
type pgUser struct {
	ID                  int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Username            string     `gorm:"column:username;type:varchar(50);not null"`
	Email               string     `gorm:"column:email;type:varchar(255);not null"`
	PasswordHash        string     `gorm:"column:password_hash;type:varchar(255);not null"`
	OldPassword         string     `gorm:"column:old_password;type:varchar(255)"`
	FirstName           string     `gorm:"column:first_name;type:varchar(100)"`
	LastName            string     `gorm:"column:last_name;type:varchar(100)"`
	Role                string     `gorm:"column:role;type:varchar(25)"`
	Club                string     `gorm:"column:club;type:varchar(100)"`
	TeamID              *int64     `gorm:"column:team_id"`
	AccessKey           string     `gorm:"column:access_key;type:varchar(100)"`
	IsAdmin             bool       `gorm:"column:is_admin;not null"`
	LoginAttempts       int        `gorm:"column:login_attempts;not null"`
	WrongLoginAttempts  int        `gorm:"column:wrong_login_attempts;not null"`
	IsLoggedIn          bool       `gorm:"column:is_logged_in;not null"`
	LastLoginAt         *time.Time `gorm:"column:last_login_at;type:timestamptz"`
	NeedsPasswordChange bool       `gorm:"column:needs_password_change;not null"`
	CreatedAt           time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
}

func (pgUser) TableName() string {
	return "users"
}

// UserRepository реализует repo.UserRepository с использованием GORM и Postgres.
type UserRepository struct {
	db *gorm.DB
}

// Убедимся на этапе компиляции, что структура реализует интерфейс.
var _ repo.UserRepository = (*UserRepository)(nil)

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// toDomain маппит ORM-модель в доменную.
func (m *pgUser) toDomain() *domain.User {
	return &domain.User{
		ID:                  m.ID,
		Username:            m.Username,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		OldPassword:         m.OldPassword,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Role:                domain.Role(m.Role),
		Club:                m.Club,
		TeamID:              m.TeamID,
		AccessKey:           m.AccessKey,
		IsAdmin:             m.IsAdmin,
		LoginAttempts:       m.LoginAttempts,
		WrongLoginAttempts:  m.WrongLoginAttempts,
		IsLoggedIn:          m.IsLoggedIn,
		LastLoginAt:         m.LastLoginAt,
		NeedsPasswordChange: m.NeedsPasswordChange,
		CreatedAt:           m.CreatedAt,
	}
}

// fromDomain маппит доменную модель в ORM-модель.
func fromDomain(u *domain.User) *pgUser {
	return &pgUser{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		OldPassword:         u.OldPassword,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Role:                string(u.Role),
		Club:                u.Club,
		TeamID:              u.TeamID,
		AccessKey:           u.AccessKey,
		IsAdmin:             u.IsAdmin,
		LoginAttempts:       u.LoginAttempts,
		WrongLoginAttempts:  u.WrongLoginAttempts,
		IsLoggedIn:          u.IsLoggedIn,
		LastLoginAt:         u.LastLoginAt,
		NeedsPasswordChange: u.NeedsPasswordChange,
		CreatedAt:           u.CreatedAt,
	}
}

// Create создает нового пользователя в БД и заполняет его идентификатор.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	model := fromDomain(user)
	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil {
		// Проверка на нарушение уникальности email
		if isUniqueViolation(err, "idx_users_email_unique") || strings.Contains(err.Error(), "idx_users_email_unique") {
			return repo.ErrEmailExists
		}
		// Проверка на нарушение уникальности username
		if isUniqueViolation(err, "idx_users_username_unique") || strings.Contains(err.Error(), "idx_users_username_unique") {
			return repo.ErrUsernameExists
		}
		return err
	}
	user.ID = model.ID
	return nil
}

// oneByCondition возвращает одну запись по условию.
func (r *UserRepository) oneByCondition(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var model pgUser
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.oneByCondition(ctx, "id = ?", id)
}

// GetByUsername возвращает пользователя по username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.oneByCondition(ctx, "username = ?", username)
}

// GetByEmail возвращает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.oneByCondition(ctx, "email = ?", email)
}

// Update обновляет изменяемые поля пользователя.
// Не обновляет защищенные поля: id, created_at.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	model := fromDomain(user)

	// Используем выборочное обновление для защиты критичных полей
	updates := map[string]interface{}{
		"username":              model.Username,
		"email":                 model.Email,
		"password_hash":         model.PasswordHash,
		"old_password":          model.OldPassword,
		"first_name":            model.FirstName,
		"last_name":             model.LastName,
		"role":                  model.Role,
		"club":                  model.Club,
		"team_id":               model.TeamID,
		"access_key":            model.AccessKey,
		"is_admin":              model.IsAdmin,
		"login_attempts":        model.LoginAttempts,
		"wrong_login_attempts":  model.WrongLoginAttempts,
		"is_logged_in":          model.IsLoggedIn,
		"last_login_at":         model.LastLoginAt,
		"needs_password_change": model.NeedsPasswordChange,
	}

	result := r.db.WithContext(ctx).
		Model(&pgUser{}).
		Where("id = ?", model.ID).
		Updates(updates)

	if result.Error != nil {
		// Проверка на нарушение уникальности при обновлении
		if isUniqueViolation(result.Error, "idx_users_email_unique") || strings.Contains(result.Error.Error(), "idx_users_email_unique") {
			return repo.ErrEmailExists
		}
		if isUniqueViolation(result.Error, "idx_users_username_unique") || strings.Contains(result.Error.Error(), "idx_users_username_unique") {
			return repo.ErrUsernameExists
		}
		return result.Error
	}

	// Если ни одна строка не была обновлена — пользователя нет
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// List возвращает всех пользователей.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var models []pgUser
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].toDomain())
	}
	return users, nil
}

// ReleaseStaleLogins снимает флаг активной сессии у пользователей,
// входивших последний раз раньше olderThan.
func (r *UserRepository) ReleaseStaleLogins(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&pgUser{}).
		Where("is_logged_in = ? AND last_login_at IS NOT NULL AND last_login_at < ?", true, olderThan).
		Update("is_logged_in", false)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
