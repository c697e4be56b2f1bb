package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"overcooked-bot/bot-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		telegram_id BIGINT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		phone_number TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		address_name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		restaurant_chat_id BIGINT NOT NULL,
		delivery_chat_id BIGINT NOT NULL,
		admin_telegram_id BIGINT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		startwork TIME NOT NULL DEFAULT '09:00',
		endwork TIME NOT NULL DEFAULT '23:00',
		delivery_cost NUMERIC(12, 2),
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS foods (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		category_id INT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT,
		price NUMERIC(12, 2) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS cart (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		food_id INT NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
		quantity INT NOT NULL CHECK (quantity > 0),
		UNIQUE (user_id, food_id)
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_persons (
		id SERIAL PRIMARY KEY,
		telegram_id BIGINT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		phone_number TEXT NOT NULL DEFAULT '',
		busy BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		restaurant_id INT NOT NULL REFERENCES restaurants(id),
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'accepted', 'delivering', 'arrived', 'completed', 'cancelled')),
		total NUMERIC(12, 2) NOT NULL,
		phone_number TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		restaurant_message TEXT,
		delivery_message TEXT,
		active_delivery_person_id INT REFERENCES delivery_persons(id),
		cancellation_reason TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		food_id INT NOT NULL REFERENCES foods(id),
		quantity INT NOT NULL,
		price NUMERIC(12, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_messages (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		chat_id BIGINT NOT NULL,
		message_id INT NOT NULL,
		type TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_messages_order ON delivery_messages (order_id, type)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) UpsertUser(ctx context.Context, chatID int64, fullName string) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (telegram_id, full_name)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, chatID, fullName).Scan(&id)
	return id, err
}

func (r *PostgresRepository) UserID(ctx context.Context, chatID int64) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM users WHERE telegram_id = $1`, chatID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrUserUnknown
	}
	return id, err
}

func (r *PostgresRepository) GetUser(ctx context.Context, chatID int64) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, telegram_id, full_name, COALESCE(phone_number, '')
		FROM users WHERE telegram_id = $1
	`, chatID).Scan(&u.ID, &u.ChatID, &u.FullName, &u.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserUnknown
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) UpdatePhone(ctx context.Context, chatID int64, phone string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET phone_number = $1 WHERE telegram_id = $2`, phone, chatID)
	if err != nil {
		return err
	}
	return expectRow(res, domain.ErrUserUnknown)
}

func expectRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
