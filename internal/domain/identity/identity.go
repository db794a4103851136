package identity

// Identity — проверенный результат валидации учётных данных пользователя.
// Значение формируется auth-middleware после проверки bearer-токена и передаётся
// явно во все операции, работающие с командами и футболистами.
type Identity struct {
	UserID  int64  // Идентификатор пользователя
	Role    string // Роль (coach, user и т.п.)
	TeamID  *int64 // Назначенная команда (nil — команда не назначена)
	IsAdmin bool   // Флаг администратора: полный доступ ко всем командам
}

// HasTeam возвращает true, если пользователю назначена команда.
func (i Identity) HasTeam() bool {
	return i.TeamID != nil
}
