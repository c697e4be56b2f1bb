package storage

import (
	"context"
	"database/sql"
	"errors"

	"overcooked-bot/bot-svc/internal/domain"

	"github.com/lib/pq"
)

// CheckoutBuilder turns the locked cart snapshot into order drafts.
type CheckoutBuilder func(lines []domain.CartLine) ([]domain.OrderDraft, error)

// CreateOrders runs a whole checkout in one transaction: the user's cart rows
// are locked, build turns them into drafts, every draft is inserted with its
// items and the cart is emptied. Any failure leaves both orders and cart untouched.
func (r *PostgresRepository) CreateOrders(ctx context.Context, userID int, build CheckoutBuilder) ([]domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT c.id, c.food_id, f.name, c.quantity, f.price,
		       r.id, r.name, r.restaurant_chat_id, r.delivery_cost
		FROM cart c
		JOIN foods f ON c.food_id = f.id
		JOIN restaurants r ON f.restaurant_id = r.id
		WHERE c.user_id = $1 AND f.is_active = TRUE AND c.quantity > 0
		ORDER BY f.restaurant_id, f.name
		FOR UPDATE OF c`, userID)
	if err != nil {
		return nil, err
	}
	lines, err := scanCartLines(rows)
	if err != nil {
		return nil, err
	}

	drafts, err := build(lines)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(drafts))
	for _, d := range drafts {
		o := domain.Order{
			UserID:            userID,
			RestaurantID:      d.RestaurantID,
			Status:            domain.StatusPending,
			Total:             d.Total,
			PhoneNumber:       d.Phone,
			Latitude:          d.Latitude,
			Longitude:         d.Longitude,
			RestaurantMessage: d.RestaurantMessage,
			DeliveryMessage:   d.DeliveryMessage,
		}
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (user_id, restaurant_id, status, total, phone_number,
			                    latitude, longitude, restaurant_message, delivery_message)
			VALUES ($1, $2, 'pending', $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
			RETURNING id, created_at, updated_at
		`, userID, d.RestaurantID, d.Total, d.Phone, d.Latitude, d.Longitude,
			d.RestaurantMessage, d.DeliveryMessage).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}

		for _, item := range d.Items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, food_id, quantity, price)
				VALUES ($1, $2, $3, $4)
			`, o.ID, item.FoodID, item.Quantity, item.Price); err != nil {
				return nil, err
			}
		}
		orders = append(orders, o)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart WHERE user_id = $1`, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PostgresRepository) OrderDetails(ctx context.Context, orderID int) (*domain.OrderDetails, error) {
	var (
		d       domain.OrderDetails
		courier sql.NullInt64
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.user_id, o.restaurant_id, o.status, o.total, o.phone_number,
		       o.latitude, o.longitude, COALESCE(o.restaurant_message, ''), COALESCE(o.delivery_message, ''),
		       o.active_delivery_person_id, COALESCE(o.cancellation_reason, ''), o.created_at, o.updated_at,
		       u.telegram_id, r.name, r.restaurant_chat_id, r.delivery_chat_id,
		       COALESCE(r.admin_telegram_id, 0), COALESCE(r.latitude, 0), COALESCE(r.longitude, 0),
		       COALESCE(dp.telegram_id, 0), COALESCE(dp.name, ''), COALESCE(dp.phone_number, '')
		FROM orders o
		JOIN users u ON o.user_id = u.id
		JOIN restaurants r ON o.restaurant_id = r.id
		LEFT JOIN delivery_persons dp ON o.active_delivery_person_id = dp.id
		WHERE o.id = $1`, orderID).
		Scan(&d.ID, &d.UserID, &d.RestaurantID, &d.Status, &d.Total, &d.PhoneNumber,
			&d.Latitude, &d.Longitude, &d.RestaurantMessage, &d.DeliveryMessage,
			&courier, &d.CancellationReason, &d.CreatedAt, &d.UpdatedAt,
			&d.CustomerChatID, &d.RestaurantName, &d.RestaurantChatID, &d.DeliveryChatID,
			&d.AdminChatID, &d.RestaurantLat, &d.RestaurantLon,
			&d.CourierChatID, &d.CourierName, &d.CourierPhone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if courier.Valid {
		id := int(courier.Int64)
		d.DeliveryPersonID = &id
	}

	items, err := r.OrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

func (r *PostgresRepository) OrderItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.food_id, f.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN foods f ON oi.food_id = f.id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.FoodID, &item.FoodName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatus moves the order to next only while its status is one of expected.
// Finishing an order frees its courier in the same transaction.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID int, expected []domain.OrderStatus, next domain.OrderStatus) error {
	return r.transition(ctx, orderID, expected, next, "")
}

// CancelOrder applies a cancellation with its reason, guarded like UpdateStatus.
func (r *PostgresRepository) CancelOrder(ctx context.Context, orderID int, expected []domain.OrderStatus, reason string) error {
	return r.transition(ctx, orderID, expected, domain.StatusCancelled, reason)
}

func (r *PostgresRepository) transition(ctx context.Context, orderID int, expected []domain.OrderStatus, next domain.OrderStatus, reason string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var courier sql.NullInt64
	err = tx.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW(),
		    cancellation_reason = COALESCE(NULLIF($2, ''), cancellation_reason)
		WHERE id = $3 AND status = ANY($4)
		RETURNING active_delivery_person_id
	`, next, reason, orderID, pq.Array(statusStrings(expected))).Scan(&courier)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrConflictOrStale
	}
	if err != nil {
		return err
	}

	if next.Terminal() && courier.Valid {
		if _, err := tx.ExecContext(ctx, `UPDATE delivery_persons SET busy = FALSE WHERE id = $1`, courier.Int64); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// AssignCourier hands an accepted order to the courier with the given chat
// identity. Only one courier can win: the update requires no courier yet.
func (r *PostgresRepository) AssignCourier(ctx context.Context, orderID int, courierChatID int64) (*domain.DeliveryPerson, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var dp domain.DeliveryPerson
	err = tx.QueryRowContext(ctx, `
		SELECT id, telegram_id, name, phone_number, busy
		FROM delivery_persons WHERE telegram_id = $1
	`, courierChatID).Scan(&dp.ID, &dp.ChatID, &dp.Name, &dp.PhoneNumber, &dp.Busy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPermissionDenied
	}
	if err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, active_delivery_person_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = ANY($4) AND active_delivery_person_id IS NULL
	`, domain.StatusDelivering, dp.ID, orderID,
		pq.Array(statusStrings(domain.Predecessors(domain.StatusDelivering, domain.ActorCourier))))
	if err != nil {
		return nil, err
	}
	if err := expectRow(res, domain.ErrConflictOrStale); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE delivery_persons SET busy = TRUE WHERE id = $1`, dp.ID); err != nil {
		return nil, err
	}
	dp.Busy = true

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &dp, nil
}

func (r *PostgresRepository) SaveDeliveryMessage(ctx context.Context, msg *domain.DeliveryMessage) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO delivery_messages (order_id, chat_id, message_id, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, msg.OrderID, msg.ChatID, msg.MessageID, msg.Kind).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *PostgresRepository) DeliveryMessages(ctx context.Context, orderID int, kind domain.MessageKind) ([]domain.DeliveryMessage, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, chat_id, message_id, type, created_at
		FROM delivery_messages
		WHERE order_id = $1 AND type = $2
		ORDER BY created_at DESC`, orderID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.DeliveryMessage
	for rows.Next() {
		var m domain.DeliveryMessage
		if err := rows.Scan(&m.ID, &m.OrderID, &m.ChatID, &m.MessageID, &m.Kind, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *PostgresRepository) CustomerOrders(ctx context.Context, chatID int64, limit int) ([]domain.OrderSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, r.name, o.status, o.total, o.created_at
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.user_id = (SELECT id FROM users WHERE telegram_id = $1)
		ORDER BY o.created_at DESC
		LIMIT $2`, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		orders []domain.OrderSummary
		ids    []int64
	)
	for rows.Next() {
		var o domain.OrderSummary
		if err := rows.Scan(&o.ID, &o.RestaurantName, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, int64(o.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	itemRows, err := r.DB.QueryContext(ctx, `
		SELECT oi.order_id, oi.food_id, f.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN foods f ON oi.food_id = f.id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	byOrder := make(map[int][]domain.OrderItem, len(orders))
	for itemRows.Next() {
		var (
			orderID int
			item    domain.OrderItem
		)
		if err := itemRows.Scan(&orderID, &item.FoodID, &item.FoodName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		byOrder[orderID] = append(byOrder[orderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, itemRows.Err()
}

func statusStrings(statuses []domain.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
