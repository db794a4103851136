package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"footballer-app/internal/domain/roster"
	repo "footballer-app/internal/repository/interfaces"
)

// RosterRepository реализует repo.RosterRepository с использованием GORM и Postgres.
// Справочные сущности читаются напрямую в доменные структуры (см. пакет roster).
type RosterRepository struct {
	db *gorm.DB
}

var _ repo.RosterRepository = (*RosterRepository)(nil)

// NewRosterRepository создает новый репозиторий справочных данных.
func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// ListLeagues возвращает все лиги, упорядоченные по названию.
func (r *RosterRepository) ListLeagues(ctx context.Context) ([]roster.League, error) {
	var leagues []roster.League
	err := r.db.WithContext(ctx).
		Order("league_name ASC").
		Find(&leagues).Error
	if err != nil {
		return nil, err
	}
	return leagues, nil
}

// GetTeam возвращает команду по идентификатору.
func (r *RosterRepository) GetTeam(ctx context.Context, id int64) (*roster.Team, error) {
	var team roster.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", id).
		Take(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListTeams возвращает все команды.
func (r *RosterRepository) ListTeams(ctx context.Context) ([]roster.Team, error) {
	var teams []roster.Team
	err := r.db.WithContext(ctx).
		Order("team_name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListTeamsByLeague возвращает команды указанной лиги.
func (r *RosterRepository) ListTeamsByLeague(ctx context.Context, leagueID string) ([]roster.Team, error) {
	var teams []roster.Team
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("team_name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetFootballer возвращает футболиста по идентификатору.
func (r *RosterRepository) GetFootballer(ctx context.Context, id int64) (*roster.Footballer, error) {
	var f roster.Footballer
	err := r.db.WithContext(ctx).
		Where("footballer_id = ?", id).
		Take(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFootballers возвращает всех футболистов.
func (r *RosterRepository) ListFootballers(ctx context.Context) ([]roster.Footballer, error) {
	var footballers []roster.Footballer
	err := r.db.WithContext(ctx).
		Order("footballer_name ASC").
		Find(&footballers).Error
	if err != nil {
		return nil, err
	}
	return footballers, nil
}

// ListFootballersByTeam возвращает футболистов указанной команды.
func (r *RosterRepository) ListFootballersByTeam(ctx context.Context, teamID int64) ([]roster.Footballer, error) {
	var footballers []roster.Footballer
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("footballer_name ASC").
		Find(&footballers).Error
	if err != nil {
		return nil, err
	}
	return footballers, nil
}
