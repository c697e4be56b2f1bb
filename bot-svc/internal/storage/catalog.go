package storage

import (
	"context"
	"database/sql"
	"errors"

	"overcooked-bot/bot-svc/internal/domain"

	"github.com/shopspring/decimal"
)

func (r *PostgresRepository) ActiveRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name FROM restaurants
		WHERE is_active = TRUE
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) ActiveCategories(ctx context.Context, restaurantID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT DISTINCT c.name
		FROM categories c
		JOIN foods f ON f.category_id = c.id AND f.is_active = TRUE
		WHERE c.restaurant_id = $1 AND c.is_active = TRUE
		ORDER BY c.name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresRepository) ActiveFoods(ctx context.Context, restaurantID int, category string) ([]domain.FoodSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT f.id, f.name, f.price
		FROM foods f
		JOIN categories c ON f.category_id = c.id
		WHERE f.restaurant_id = $1 AND c.name = $2
		  AND f.is_active = TRUE AND c.is_active = TRUE
		ORDER BY f.name`, restaurantID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []domain.FoodSummary
	for rows.Next() {
		var food domain.FoodSummary
		if err := rows.Scan(&food.ID, &food.Name, &food.Price); err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (r *PostgresRepository) FoodDetail(ctx context.Context, foodID int) (*domain.FoodDetail, error) {
	var food domain.FoodDetail
	err := r.DB.QueryRowContext(ctx, `
		SELECT f.id, f.name, f.description, COALESCE(f.image, ''), f.price, r.name, c.name
		FROM foods f
		JOIN restaurants r ON f.restaurant_id = r.id
		JOIN categories c ON f.category_id = c.id
		WHERE f.id = $1 AND f.is_active = TRUE AND r.is_active = TRUE`, foodID).
		Scan(&food.ID, &food.Name, &food.Description, &food.Image, &food.Price, &food.RestaurantName, &food.CategoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *PostgresRepository) RestaurantHours(ctx context.Context, restaurantID int) (*domain.RestaurantHours, error) {
	var (
		h          domain.RestaurantHours
		start, end string
		cost       decimal.NullDecimal
		admin      sql.NullInt64
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, to_char(startwork, 'HH24:MI'), to_char(endwork, 'HH24:MI'),
		       delivery_cost, restaurant_chat_id, delivery_chat_id, admin_telegram_id
		FROM restaurants
		WHERE id = $1 AND is_active = TRUE`, restaurantID).
		Scan(&h.RestaurantID, &h.Name, &start, &end, &cost, &h.ChatID, &h.DeliveryChatID, &admin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if h.Start, err = domain.ParseClockTime(start); err != nil {
		return nil, err
	}
	if h.End, err = domain.ParseClockTime(end); err != nil {
		return nil, err
	}
	if cost.Valid {
		h.DeliveryCost = cost.Decimal
	}
	h.AdminChatID = admin.Int64
	return &h, nil
}
