package storage

import (
	"context"
	"database/sql"
	"errors"

	"overcooked-bot/bot-svc/internal/domain"
)

const ownerByChat = `(SELECT id FROM users WHERE telegram_id = $1)`

func (r *PostgresRepository) ListAddresses(ctx context.Context, chatID int64) ([]domain.Address, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, address_name, latitude, longitude, created_at
		FROM addresses
		WHERE user_id = `+ownerByChat+`
		ORDER BY created_at DESC`, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Latitude, &a.Longitude, &a.CreatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *PostgresRepository) GetAddress(ctx context.Context, chatID int64, addressID int) (*domain.Address, error) {
	return r.scanAddress(r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, address_name, latitude, longitude, created_at
		FROM addresses
		WHERE user_id = `+ownerByChat+` AND id = $2`, chatID, addressID))
}

func (r *PostgresRepository) AddressByName(ctx context.Context, chatID int64, name string) (*domain.Address, error) {
	return r.scanAddress(r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, address_name, latitude, longitude, created_at
		FROM addresses
		WHERE user_id = `+ownerByChat+` AND address_name = $2
		ORDER BY created_at DESC
		LIMIT 1`, chatID, name))
}

func (r *PostgresRepository) scanAddress(row *sql.Row) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Latitude, &a.Longitude, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) CreateAddress(ctx context.Context, chatID int64, addr *domain.Address) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO addresses (user_id, address_name, latitude, longitude)
		SELECT id, $2, $3, $4 FROM users WHERE telegram_id = $1
		RETURNING id, user_id, created_at
	`, chatID, addr.Name, addr.Latitude, addr.Longitude).Scan(&addr.ID, &addr.UserID, &addr.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserUnknown
	}
	return err
}

func (r *PostgresRepository) UpdateAddressLocation(ctx context.Context, chatID int64, addressID int, lat, lon float64) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE addresses SET latitude = $3, longitude = $4
		WHERE user_id = `+ownerByChat+` AND id = $2`, chatID, addressID, lat, lon)
	if err != nil {
		return err
	}
	return expectRow(res, domain.ErrNotFound)
}

func (r *PostgresRepository) UpdateAddressName(ctx context.Context, chatID int64, addressID int, name string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE addresses SET address_name = $3
		WHERE user_id = `+ownerByChat+` AND id = $2`, chatID, addressID, name)
	if err != nil {
		return err
	}
	return expectRow(res, domain.ErrNotFound)
}

func (r *PostgresRepository) DeleteAddress(ctx context.Context, chatID int64, addressID int) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM addresses
		WHERE user_id = `+ownerByChat+` AND id = $2`, chatID, addressID)
	if err != nil {
		return err
	}
	return expectRow(res, domain.ErrNotFound)
}
