package authz

import (
	"context"
	"errors"

	"footballer-app/internal/domain/identity"
	"footballer-app/internal/domain/roster"
	repo "footballer-app/internal/repository/interfaces"
)

// ErrAccessDenied возвращается, когда проверка доступа не пройдена.
// Это бизнес-исход (HTTP 403), а не внутренняя ошибка.
var ErrAccessDenied = errors.New("access denied")

// Engine — единственная реализация проверки доступа к командам и футболистам.
// Используется как guard перед каждой операцией, затрагивающей команду или
// футболиста, во всех трёх доменах измерений — логика не дублируется по сервисам.
//
// Правило: администратор имеет доступ ко всему; остальные — ровно к своей
// назначенной команде. Любая неоднозначность (нет команды, футболист не найден)
// трактуется как отказ, а не как ошибка (fail-closed).
type Engine struct {
	rosters repo.RosterRepository
}

// NewEngine создаёт движок авторизации поверх справочного репозитория.
func NewEngine(rosters repo.RosterRepository) *Engine {
	return &Engine{rosters: rosters}
}

// CanAccessTeam проверяет, имеет ли identity доступ к команде teamID.
func (e *Engine) CanAccessTeam(_ context.Context, id identity.Identity, teamID int64) bool {
	if id.IsAdmin {
		return true
	}
	if id.TeamID == nil {
		return false
	}
	return *id.TeamID == teamID
}

// CanAccessFootballer проверяет, имеет ли identity доступ к футболисту.
// Несуществующий футболист означает отказ (fail-closed).
// Ошибка возвращается только при сбое хранилища.
func (e *Engine) CanAccessFootballer(ctx context.Context, id identity.Identity, footballerID int64) (bool, error) {
	if id.IsAdmin {
		return true, nil
	}
	if id.TeamID == nil {
		return false, nil
	}

	f, err := e.rosters.GetFootballer(ctx, footballerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return f.TeamID == *id.TeamID, nil
}

// AccessibleTeams возвращает множество команд, доступных identity:
// администратору — все, остальным — назначенную команду (или пустой список).
func (e *Engine) AccessibleTeams(ctx context.Context, id identity.Identity) ([]roster.Team, error) {
	if id.IsAdmin {
		return e.rosters.ListTeams(ctx)
	}

	if id.TeamID == nil {
		return []roster.Team{}, nil
	}

	team, err := e.rosters.GetTeam(ctx, *id.TeamID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []roster.Team{}, nil
		}
		return nil, err
	}
	return []roster.Team{*team}, nil
}

// AccessibleFootballers возвращает множество футболистов, доступных identity.
func (e *Engine) AccessibleFootballers(ctx context.Context, id identity.Identity) ([]roster.Footballer, error) {
	if id.IsAdmin {
		return e.rosters.ListFootballers(ctx)
	}

	if id.TeamID == nil {
		return []roster.Footballer{}, nil
	}

	return e.rosters.ListFootballersByTeam(ctx, *id.TeamID)
}
