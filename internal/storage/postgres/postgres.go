package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"dentalSummit/internal/config"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		timezone TEXT NOT NULL DEFAULT 'UTC',
		platform TEXT NOT NULL DEFAULT '',
		max_capacity INT NOT NULL,
		current_registrations INT NOT NULL DEFAULT 0,
		base_price INT NOT NULL,
		early_bird_price INT NOT NULL DEFAULT 0,
		early_bird_deadline TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'upcoming',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS dentists (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		specialty TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		clinic TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		years_experience INT NOT NULL DEFAULT 0,
		photo_url TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS registrations (
		id TEXT PRIMARY KEY,
		confirmation_number TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		clinic TEXT NOT NULL DEFAULT '',
		license_number TEXT NOT NULL DEFAULT '',
		accommodation_type TEXT NOT NULL DEFAULT 'none',
		food_preference TEXT NOT NULL DEFAULT 'standard',
		certificate_type TEXT NOT NULL DEFAULT 'digital',
		materials_kit BOOLEAN NOT NULL DEFAULT FALSE,
		networking_dinner BOOLEAN NOT NULL DEFAULT FALSE,
		promo_code TEXT NOT NULL DEFAULT '',
		pricing JSONB NOT NULL,
		event_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'pending',
		payment_intent_id TEXT NOT NULL DEFAULT '',
		paid_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_registrations_payment_intent
		ON registrations (payment_intent_id);

	CREATE TABLE IF NOT EXISTS promo_codes (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		discount_type TEXT NOT NULL,
		discount_value INT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		usage_limit INT NOT NULL,
		current_uses INT NOT NULL DEFAULT 0,
		expires_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		author_name TEXT NOT NULL,
		clinic TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		rating INT NOT NULL,
		text TEXT NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err := s.DB.Exec(schema); err != nil {
		return err
	}

	return nil
}
