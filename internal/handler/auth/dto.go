package auth

import (
	"time"

	"footballer-app/internal/domain/roster"
	domain "footballer-app/internal/domain/user"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=32"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Club      string `json:"club"`
	TeamID    *int64 `json:"team_id"`
	AccessKey string `json:"access_key"`
}

// LoginRequest описывает тело запроса логина.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest описывает частичное обновление профиля.
// Смена пароля требует подтверждения текущим паролем.
type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Club            *string `json:"club"`
	TeamID          *int64  `json:"team_id"`
	Password        *string `json:"password" binding:"omitempty,min=8"`
	CurrentPassword *string `json:"current_password"`
}

// UserResponse — представление пользователя в ответах API.
// Хэши паролей и ключ доступа наружу не отдаются.
type UserResponse struct {
	ID                  int64      `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	FirstName           string     `json:"first_name,omitempty"`
	LastName            string     `json:"last_name,omitempty"`
	Role                string     `json:"role"`
	Club                string     `json:"club,omitempty"`
	TeamID              *int64     `json:"team_id"`
	IsAdmin             bool       `json:"is_admin"`
	LoginAttempts       int        `json:"login_attempts"`
	WrongLoginAttempts  int        `json:"wrong_login_attempts"`
	IsLoggedIn          bool       `json:"is_logged_in"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	NeedsPasswordChange bool       `json:"needs_password_change"`
	CreatedAt           time.Time  `json:"created_at"`
}

// AuthResponse — ответ при успешной аутентификации/регистрации.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ProfileResponse — профиль пользователя вместе с назначенной командой.
type ProfileResponse struct {
	User UserResponse `json:"user"`
	Team *roster.Team `json:"team,omitempty"`
}

// toUserResponse маппит доменного пользователя в представление API.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Role:                string(u.Role),
		Club:                u.Club,
		TeamID:              u.TeamID,
		IsAdmin:             u.IsAdmin,
		LoginAttempts:       u.LoginAttempts,
		WrongLoginAttempts:  u.WrongLoginAttempts,
		IsLoggedIn:          u.IsLoggedIn,
		LastLoginAt:         u.LastLoginAt,
		NeedsPasswordChange: u.NeedsPasswordChange,
		CreatedAt:           u.CreatedAt,
	}
}
