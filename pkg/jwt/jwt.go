package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"footballer-app/internal/config"
	"footballer-app/internal/domain/identity"
	domain "footballer-app/internal/domain/user"
)

// Claims описывает JWT-пейлоад токена доступа.
// Клейм переносит ровно то, что нужно движку авторизации:
// идентификатор пользователя, роль, назначенную команду и флаг администратора.
type Claims struct {
	UserID  int64  `json:"user_id"`
	Role    string `json:"role,omitempty"`
	TeamID  *int64 `json:"team_id,omitempty"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Identity возвращает identity-клейм для передачи в слой авторизации.
func (c *Claims) Identity() identity.Identity {
	return identity.Identity{
		UserID:  c.UserID,
		Role:    c.Role,
		TeamID:  c.TeamID,
		IsAdmin: c.IsAdmin,
	}
}

// Service инкапсулирует операции по генерации и валидации JWT-токенов.
type Service interface {
	GenerateToken(user *domain.User) (string, error)
	ParseToken(tokenString string) (*Claims, error)
}

type service struct {
	cfg *config.JWTConfig
}

// NewService создаёт JWT-сервис на основе конфигурации.
func NewService(cfg *config.JWTConfig) Service {
	return &service{cfg: cfg}
}

// GenerateToken генерирует токен доступа для пользователя.
func (s *service) GenerateToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID:  user.ID,
		Role:    string(user.Role),
		TeamID:  user.TeamID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// ParseToken парсит и валидирует токен доступа.
func (s *service) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Дополнительная защита: убеждаемся, что метод подписи ожидаемый
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	// Дополнительная проверка issuer при необходимости
	if claims.Issuer != "" && s.cfg.Issuer != "" && claims.Issuer != s.cfg.Issuer {
		return nil, jwt.ErrTokenInvalidIssuer
	}

	return claims, nil
}
