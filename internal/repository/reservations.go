package repository

import (
	"context"
	"database/sql"

	"ticketfoot/internal/database"
	"ticketfoot/internal/models"
)

type ReservationRepository struct {
	db *database.DB
}

func NewReservationRepository(db *database.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreateConfirmed books tickets atomically: the availability decrement is a
// single conditional UPDATE, so two concurrent requests can never both pass a
// stale availability check. Either the reservation row and the decrement both
// commit, or nothing is persisted. The reservation's TotalPrice is filled in
// from the match price at booking time.
func (r *ReservationRepository) CreateConfirmed(ctx context.Context, res *models.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var price float64
	err = tx.QueryRowContext(ctx,
		`SELECT price FROM matches WHERE id = $1`, res.MatchID,
	).Scan(&price)
	if err == sql.ErrNoRows {
		return ErrMatchNotFound
	}
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE matches
		SET available_tickets = available_tickets - $1, updated_at = NOW()
		WHERE id = $2 AND available_tickets >= $1`,
		res.TicketQuantity, res.MatchID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Zero rows can also mean the match was deleted after the price
		// lookup; distinguish so the error keeps its meaning.
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`, res.MatchID,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return ErrMatchNotFound
		}
		return ErrInsufficientTickets
	}

	res.TotalPrice = price * float64(res.TicketQuantity)
	res.Status = models.StatusConfirmed

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reservations (id, user_id, match_id, ticket_quantity, total_price, status, selected_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		res.ID,
		res.UserID,
		res.MatchID,
		res.TicketQuantity,
		res.TotalPrice,
		res.Status,
		res.SelectedSeats,
	).Scan(&res.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListByUser returns the user's reservations joined with match details,
// newest first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]models.ReservationItem, error) {
	var items []models.ReservationItem
	query := `
		SELECT r.id, r.match_id, m.home_team, m.away_team, m.home_team_logo,
		       m.away_team_logo, m.stadium, m.city, m.match_date, m.match_time,
		       r.ticket_quantity, r.total_price, r.status, m.category,
		       r.created_at, r.selected_seats
		FROM reservations r
		JOIN matches m ON r.match_id = m.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item            models.ReservationItem
			matchDate       sql.NullTime
			reservationDate sql.NullTime
		)
		err := rows.Scan(
			&item.ID,
			&item.MatchID,
			&item.HomeTeam,
			&item.AwayTeam,
			&item.HomeTeamLogo,
			&item.AwayTeamLogo,
			&item.Stadium,
			&item.City,
			&matchDate,
			&item.Time,
			&item.TicketQuantity,
			&item.TotalPrice,
			&item.Status,
			&item.Category,
			&reservationDate,
			&item.SelectedSeats,
		)
		if err != nil {
			return nil, err
		}
		if matchDate.Valid {
			item.Date = matchDate.Time.Format("2006-01-02")
		}
		if reservationDate.Valid {
			item.ReservationDate = reservationDate.Time.Format("2006-01-02 15:04:05")
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	res := &models.Reservation{}
	query := `
		SELECT id, user_id, match_id, ticket_quantity, total_price, status, selected_seats, created_at
		FROM reservations
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID,
		&res.UserID,
		&res.MatchID,
		&res.TicketQuantity,
		&res.TotalPrice,
		&res.Status,
		&res.SelectedSeats,
		&res.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return res, err
}

// UpdateStatus overwrites the reservation status. Any of the allowed values
// may replace any other; transitions are not validated here.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
