package cleanup

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"footballer-app/internal/config"
	"footballer-app/internal/repository/interfaces"
	"footballer-app/pkg/logger"
)

// Janitor периодически снимает флаг is_logged_in у пользователей,
// чья последняя активность старше заданного TTL. Логин-флаг используется
// только как индикатор активной сессии, поэтому «зависшие» после падения
// клиента сессии безопасно сбрасывать по расписанию.
type Janitor struct {
	users      interfaces.UserRepository
	log        logger.Logger
	schedule   string
	sessionTTL time.Duration
	cron       *cron.Cron
}

// NewJanitor создаёт фоновую задачу очистки устаревших сессий.
func NewJanitor(users interfaces.UserRepository, log logger.Logger, cfg *config.CleanupConfig) *Janitor {
	return &Janitor{
		users:      users,
		log:        log,
		schedule:   cfg.Schedule,
		sessionTTL: cfg.SessionTTL,
		cron:       cron.New(),
	}
}

// Start регистрирует задачу в планировщике и запускает его.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}
	j.cron.Start()
	j.log.Info("планировщик очистки сессий запущен", map[string]any{
		"schedule":    j.schedule,
		"session_ttl": j.sessionTTL.String(),
	})
	return nil
}

// Stop останавливает планировщик и дожидается завершения активных задач.
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.log.Info("планировщик очистки сессий остановлен", nil)
}

func (j *Janitor) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().UTC().Add(-j.sessionTTL)
	released, err := j.users.ReleaseStaleLogins(ctx, cutoff)
	if err != nil {
		j.log.Error("ошибка очистки устаревших сессий", map[string]any{"error": err.Error()})
		return
	}
	if released > 0 {
		j.log.Info("устаревшие сессии сброшены", map[string]any{"count": released})
	}
}
