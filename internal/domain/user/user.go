package user

import (
	"time"

	"footballer-app/internal/domain/identity"
)

// Role описывает роль пользователя в системе.
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
)

// User представляет доменную модель пользователя (тренера или сотрудника клуба).
//
// Важно: эта модель описывает бизнес-сущность и не зависит от деталей транспорта (HTTP)
// и конкретного представления в БД.
type User struct {
	ID           int64  // Уникальный идентификатор пользователя
	Username     string // Логин (уникальный)
	Email        string // Email (уникальный)
	PasswordHash string // Хэш пароля
	OldPassword  string // Предыдущий хэш пароля (сохраняется при смене)

	FirstName string // Имя
	LastName  string // Фамилия
	Role      Role   // Роль (coach и т.п.)
	Club      string // Клуб, к которому относится пользователь (отображение)
	TeamID    *int64 // Назначенная команда (nil — команда не назначена)
	AccessKey string // Ключ доступа, выданный администратором при создании аккаунта
	IsAdmin   bool   // Флаг администратора: доступ ко всем командам

	LoginAttempts       int        // Количество успешных входов
	WrongLoginAttempts  int        // Количество неверных попыток входа подряд
	IsLoggedIn          bool       // Активна ли сессия пользователя
	LastLoginAt         *time.Time // Время последнего успешного входа
	NeedsPasswordChange bool       // Требуется ли смена пароля при следующем входе

	CreatedAt time.Time // Время создания
}

// NewUser — фабрика для создания нового пользователя на доменном уровне.
// Предполагается, что валидация входных данных и хеширование пароля
// выполняются на уровне usecase-слоя до вызова этой функции.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
}

// Identity возвращает identity-клейм пользователя для авторизации запросов.
func (u *User) Identity() identity.Identity {
	return identity.Identity{
		UserID:  u.ID,
		Role:    string(u.Role),
		TeamID:  u.TeamID,
		IsAdmin: u.IsAdmin,
	}
}

// RegisterLogin фиксирует успешный вход: сбрасывает счётчик неверных попыток
// и помечает сессию активной.
func (u *User) RegisterLogin(at time.Time) {
	u.LoginAttempts++
	u.WrongLoginAttempts = 0
	u.IsLoggedIn = true
	u.LastLoginAt = &at
}

// RegisterWrongLogin фиксирует неверную попытку входа.
func (u *User) RegisterWrongLogin() {
	u.WrongLoginAttempts++
}

// Logout помечает сессию пользователя завершённой.
func (u *User) Logout() {
	u.IsLoggedIn = false
}
