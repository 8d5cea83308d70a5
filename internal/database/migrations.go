package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createMatchesTable,
		createReservationsTable,
		createPaymentsTable,
		createMatchesDateIndex,
		createReservationsUserIndex,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(100) NOT NULL,
    name VARCHAR(100) NOT NULL,
    phone VARCHAR(30) NOT NULL DEFAULT '',
    avatar VARCHAR(500),
    member_since TIMESTAMP NOT NULL DEFAULT NOW(),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createMatchesTable = `
CREATE TABLE IF NOT EXISTS matches (
    id UUID PRIMARY KEY,
    home_team VARCHAR(100) NOT NULL,
    away_team VARCHAR(100) NOT NULL,
    home_team_logo VARCHAR(500) NOT NULL DEFAULT '',
    away_team_logo VARCHAR(500) NOT NULL DEFAULT '',
    stadium VARCHAR(200) NOT NULL,
    city VARCHAR(100) NOT NULL,
    match_date DATE NOT NULL,
    match_time VARCHAR(8) NOT NULL,
    price DECIMAL(10,2) NOT NULL,
    available_tickets INTEGER NOT NULL,
    total_tickets INTEGER NOT NULL,
    category VARCHAR(50) NOT NULL,
    description TEXT,
    weather VARCHAR(50),
    temperature VARCHAR(10),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (available_tickets >= 0 AND available_tickets <= total_tickets)
);`

const createReservationsTable = `
CREATE TABLE IF NOT EXISTS reservations (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    match_id UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
    ticket_quantity INTEGER NOT NULL CHECK (ticket_quantity >= 1),
    total_price DECIMAL(10,2) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'confirmé',
    selected_seats TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('confirmé', 'en attente', 'annulé'))
);`

const createPaymentsTable = `
CREATE TABLE IF NOT EXISTS payments (
    id SERIAL PRIMARY KEY,
    reservation_id UUID REFERENCES reservations(id) ON DELETE SET NULL,
    payment_ref VARCHAR(255) NOT NULL,
    order_ref VARCHAR(255) NOT NULL,
    status VARCHAR(30) NOT NULL,
    amount DECIMAL(10,2) NOT NULL DEFAULT 0,
    currency VARCHAR(10) NOT NULL DEFAULT 'MAD',
    payload JSONB,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createMatchesDateIndex = `
CREATE INDEX IF NOT EXISTS matches_match_date_idx ON matches (match_date);`

const createReservationsUserIndex = `
CREATE INDEX IF NOT EXISTS reservations_user_id_idx ON reservations (user_id);`
