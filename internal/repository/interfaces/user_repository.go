package interfaces

import (
	"context"
	"time"

	domain "footballer-app/internal/domain/user"
)

// UserRepository определяет контракт для работы с пользователями на уровне хранилища.
//
// Интерфейс оперирует доменной моделью User и не раскрывает деталей реализации (GORM, SQL и т.п.).
type UserRepository interface {
	// Create создает нового пользователя.
	// Возвращает ErrEmailExists, если email уже используется.
	// Возвращает ErrUsernameExists, если username уже используется.
	Create(ctx context.Context, user *domain.User) error

	// GetByID возвращает пользователя по идентификатору.
	// Возвращает (nil, ErrNotFound), если пользователь не найден.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername возвращает пользователя по username.
	// Возвращает (nil, ErrNotFound), если пользователь не найден.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByEmail возвращает пользователя по email.
	// Возвращает (nil, ErrNotFound), если пользователь не найден.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update обновляет изменяемые поля пользователя, включая счётчики входов
	// и хэш пароля. Не обновляет id и created_at.
	Update(ctx context.Context, user *domain.User) error

	// List возвращает всех пользователей (административные сценарии).
	List(ctx context.Context) ([]*domain.User, error)

	// ReleaseStaleLogins снимает флаг активной сессии у пользователей,
	// входивших последний раз раньше указанного момента.
	// Возвращает количество затронутых записей.
	ReleaseStaleLogins(ctx context.Context, olderThan time.Time) (int64, error)
}
