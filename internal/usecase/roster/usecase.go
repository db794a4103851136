package roster

import (
	"context"

	"footballer-app/internal/domain/identity"
	"footballer-app/internal/domain/roster"
	repo "footballer-app/internal/repository/interfaces"
	"footballer-app/internal/usecase/authz"
)

// Service описывает usecase-слой навигации по справочнику:
// лиги → команды → футболисты, с учётом области доступа вызывающего.
type Service interface {
	// ListLeagues возвращает все лиги. Справочные данные, доступны любой роли.
	ListLeagues(ctx context.Context) ([]roster.League, error)

	// ListTeams возвращает команды лиги, доступные identity:
	// администратору — все команды лиги, остальным — их назначенную команду,
	// если она принадлежит этой лиге, иначе пустой список.
	ListTeams(ctx context.Context, leagueID string, id identity.Identity) ([]roster.Team, error)

	// ListFootballers возвращает состав команды.
	// Возвращает authz.ErrAccessDenied, если identity не имеет доступа к команде:
	// отказ в доступе и пустой состав — это разные исходы.
	ListFootballers(ctx context.Context, teamID int64, id identity.Identity) ([]roster.Footballer, error)

	// GetFootballer возвращает футболиста, если он доступен identity.
	GetFootballer(ctx context.Context, footballerID int64, id identity.Identity) (*roster.Footballer, error)
}

type service struct {
	rosters repo.RosterRepository
	authz   *authz.Engine
}

// NewService создаёт новый roster-сервис.
func NewService(rosters repo.RosterRepository, engine *authz.Engine) Service {
	return &service{
		rosters: rosters,
		authz:   engine,
	}
}

// ListLeagues возвращает все лиги без фильтрации.
func (s *service) ListLeagues(ctx context.Context) ([]roster.League, error) {
	return s.rosters.ListLeagues(ctx)
}

// ListTeams возвращает команды лиги с учётом области доступа.
func (s *service) ListTeams(ctx context.Context, leagueID string, id identity.Identity) ([]roster.Team, error) {
	if id.IsAdmin {
		return s.rosters.ListTeamsByLeague(ctx, leagueID)
	}

	teams, err := s.authz.AccessibleTeams(ctx, id)
	if err != nil {
		return nil, err
	}

	// Не-администратор видит свою команду, только если она в запрошенной лиге.
	result := make([]roster.Team, 0, 1)
	for _, t := range teams {
		if t.LeagueID == leagueID {
			result = append(result, t)
		}
	}
	return result, nil
}

// ListFootballers возвращает состав команды; отказ в доступе — явный исход.
func (s *service) ListFootballers(ctx context.Context, teamID int64, id identity.Identity) ([]roster.Footballer, error) {
	if !s.authz.CanAccessTeam(ctx, id, teamID) {
		return nil, authz.ErrAccessDenied
	}
	return s.rosters.ListFootballersByTeam(ctx, teamID)
}

// GetFootballer возвращает футболиста, если он доступен identity.
func (s *service) GetFootballer(ctx context.Context, footballerID int64, id identity.Identity) (*roster.Footballer, error) {
	f, err := s.rosters.GetFootballer(ctx, footballerID)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccessTeam(ctx, id, f.TeamID) {
		return nil, authz.ErrAccessDenied
	}
	return f, nil
}
