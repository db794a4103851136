package interfaces

import (
	"context"

	"footballer-app/internal/domain/roster"
)

// RosterRepository определяет контракт доступа к справочным данным:
// лигам, командам и футболистам. Данные read-only с точки зрения API.
type RosterRepository interface {
	// ListLeagues возвращает все лиги.
	ListLeagues(ctx context.Context) ([]roster.League, error)

	// GetTeam возвращает команду по идентификатору.
	// Возвращает (nil, ErrNotFound), если команда не найдена.
	GetTeam(ctx context.Context, id int64) (*roster.Team, error)

	// ListTeams возвращает все команды.
	ListTeams(ctx context.Context) ([]roster.Team, error)

	// ListTeamsByLeague возвращает команды указанной лиги.
	ListTeamsByLeague(ctx context.Context, leagueID string) ([]roster.Team, error)

	// GetFootballer возвращает футболиста по идентификатору.
	// Возвращает (nil, ErrNotFound), если футболист не найден.
	GetFootballer(ctx context.Context, id int64) (*roster.Footballer, error)

	// ListFootballers возвращает всех футболистов.
	ListFootballers(ctx context.Context) ([]roster.Footballer, error)

	// ListFootballersByTeam возвращает футболистов указанной команды.
	ListFootballersByTeam(ctx context.Context, teamID int64) ([]roster.Footballer, error)
}
