package repository

import (
	"context"
	"database/sql"
	"time"

	"ticketfoot/internal/database"
	"ticketfoot/internal/models"
)

type MatchRepository struct {
	db *database.DB
}

func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchColumns = `
	id, home_team, away_team, home_team_logo, away_team_logo,
	stadium, city, match_date, match_time, price,
	available_tickets, total_tickets, category, description, weather,
	temperature, created_at, updated_at`

func scanMatch(row interface{ Scan(...any) error }, m *models.Match) error {
	return row.Scan(
		&m.ID,
		&m.HomeTeam,
		&m.AwayTeam,
		&m.HomeTeamLogo,
		&m.AwayTeamLogo,
		&m.Stadium,
		&m.City,
		&m.Date,
		&m.Time,
		&m.Price,
		&m.AvailableTickets,
		&m.TotalTickets,
		&m.Category,
		&m.Description,
		&m.Weather,
		&m.Temperature,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}

func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (id, home_team, away_team, home_team_logo, away_team_logo,
		                     stadium, city, match_date, match_time, price,
		                     available_tickets, total_tickets, category, description,
		                     weather, temperature)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		match.ID,
		match.HomeTeam,
		match.AwayTeam,
		match.HomeTeamLogo,
		match.AwayTeamLogo,
		match.Stadium,
		match.City,
		match.Date,
		match.Time,
		match.Price,
		match.AvailableTickets,
		match.TotalTickets,
		match.Category,
		match.Description,
		match.Weather,
		match.Temperature,
	).Scan(&match.CreatedAt, &match.UpdatedAt)
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	match := &models.Match{}
	query := `SELECT` + matchColumns + ` FROM matches WHERE id = $1`

	err := scanMatch(r.db.QueryRowContext(ctx, query, id), match)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return match, err
}

// ListBetween returns matches with from <= match_date < to, soonest first.
func (r *MatchRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Match, error) {
	var matches []models.Match
	query := `
		SELECT` + matchColumns + `
		FROM matches
		WHERE match_date >= $1 AND match_date < $2
		ORDER BY match_date ASC, match_time ASC`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var match models.Match
		if err := scanMatch(rows, &match); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}
