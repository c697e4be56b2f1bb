package storage

import (
	"context"
	"database/sql"
	"errors"

	"overcooked-bot/bot-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// AddCartItem merges qty into the (user, food) row. The increment happens in
// the upsert itself so concurrent taps never lose an update.
func (r *PostgresRepository) AddCartItem(ctx context.Context, chatID int64, foodID, qty int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID int
	err = tx.QueryRowContext(ctx, `SELECT id FROM users WHERE telegram_id = $1`, chatID).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserUnknown
	}
	if err != nil {
		return err
	}

	var active bool
	err = tx.QueryRowContext(ctx, `SELECT is_active FROM foods WHERE id = $1`, foodID).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !active) {
		return domain.ErrItemUnavailable
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO cart (user_id, food_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, food_id) DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`, userID, foodID, qty); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) RemoveCartItem(ctx context.Context, chatID int64, cartItemID int) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM cart
		WHERE id = $1 AND user_id = (SELECT id FROM users WHERE telegram_id = $2)
	`, cartItemID, chatID)
	if err != nil {
		return err
	}
	return expectRow(res, domain.ErrNotFound)
}

const cartLinesQuery = `
	SELECT c.id, c.food_id, f.name, c.quantity, f.price,
	       r.id, r.name, r.restaurant_chat_id, r.delivery_cost
	FROM cart c
	JOIN foods f ON c.food_id = f.id
	JOIN restaurants r ON f.restaurant_id = r.id
	WHERE c.user_id = (SELECT id FROM users WHERE telegram_id = $1)
	  AND f.is_active = TRUE AND c.quantity > 0
	ORDER BY f.restaurant_id, f.name`

func (r *PostgresRepository) ListCartItems(ctx context.Context, chatID int64) ([]domain.CartLine, error) {
	rows, err := r.DB.QueryContext(ctx, cartLinesQuery, chatID)
	if err != nil {
		return nil, err
	}
	return scanCartLines(rows)
}

func (r *PostgresRepository) ClearCart(ctx context.Context, chatID int64) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM cart WHERE user_id = (SELECT id FROM users WHERE telegram_id = $1)
	`, chatID)
	return err
}

func scanCartLines(rows *sql.Rows) ([]domain.CartLine, error) {
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var (
			line domain.CartLine
			cost decimal.NullDecimal
		)
		if err := rows.Scan(&line.ID, &line.FoodID, &line.FoodName, &line.Quantity, &line.Price,
			&line.RestaurantID, &line.RestaurantName, &line.RestaurantChatID, &cost); err != nil {
			return nil, err
		}
		if cost.Valid {
			line.DeliveryCost = cost.Decimal
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
