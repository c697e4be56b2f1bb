package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"overcooked-bot/bot-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const historyLimit = 6

type OrderService struct {
	users     UserRepository
	carts     CartRepository
	addresses AddressRepository
	orders    OrderRepository
	publisher EventPublisher
}

func NewOrderService(users UserRepository, carts CartRepository, addresses AddressRepository, orders OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		users:     users,
		carts:     carts,
		addresses: addresses,
		orders:    orders,
		publisher: publisher,
	}
}

// CreateOrders turns the user's cart into one pending order per restaurant.
// The checkout is all-or-nothing: on any error no order exists and the cart
// is unchanged.
func (s *OrderService) CreateOrders(ctx context.Context, chatID int64, checkout domain.Checkout) ([]domain.PlacedOrder, error) {
	userID, err := s.users.UserID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	lines, err := s.carts.ListCartItems(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("read cart of %d: %w", chatID, err)
	}
	if len(GroupByRestaurant(lines)) == 0 {
		return nil, domain.ErrEmptyCart
	}

	addr, err := s.addresses.GetAddress(ctx, chatID, checkout.AddressID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrAddressMissing
	}
	if err != nil {
		return nil, fmt.Errorf("resolve address %d: %w", checkout.AddressID, err)
	}

	// the cart is re-read under lock inside the transaction, groups reflect that snapshot
	var groups []domain.CartGroup
	orders, err := s.orders.CreateOrders(ctx, userID, func(locked []domain.CartLine) ([]domain.OrderDraft, error) {
		groups = GroupByRestaurant(locked)
		if len(groups) == 0 {
			return nil, domain.ErrEmptyCart
		}
		return BuildDrafts(groups, checkout, *addr), nil
	})
	if errors.Is(err, domain.ErrEmptyCart) {
		return nil, err
	}
	if err != nil {
		log.Printf("[bot-svc] checkout of chat %d rolled back: %v", chatID, err)
		return nil, fmt.Errorf("%w: create orders: %v", domain.ErrTransientIO, err)
	}

	placed := make([]domain.PlacedOrder, len(orders))
	for i, o := range orders {
		g := groups[i]
		placed[i] = domain.PlacedOrder{
			Order:            o,
			RestaurantName:   g.RestaurantName,
			RestaurantChatID: g.RestaurantChatID,
			DeliveryCost:     g.DeliveryCost,
			Items:            itemsOf(g),
		}
		s.publish(ctx, domain.EventOrderCreated, o)
	}
	return placed, nil
}

func (s *OrderService) Details(ctx context.Context, orderID int) (*domain.OrderDetails, error) {
	return s.orders.OrderDetails(ctx, orderID)
}

func (s *OrderService) History(ctx context.Context, chatID int64) ([]domain.OrderSummary, error) {
	orders, err := s.orders.CustomerOrders(ctx, chatID, historyLimit)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNotFound
	}
	return orders, nil
}

// BuildDrafts prices every restaurant group: items at their current price plus
// the restaurant's delivery cost.
func BuildDrafts(groups []domain.CartGroup, checkout domain.Checkout, addr domain.Address) []domain.OrderDraft {
	drafts := make([]domain.OrderDraft, len(groups))
	for i, g := range groups {
		drafts[i] = domain.OrderDraft{
			RestaurantID:      g.RestaurantID,
			Total:             OrderTotal(g.Items, g.DeliveryCost),
			Phone:             checkout.Phone,
			Latitude:          addr.Latitude,
			Longitude:         addr.Longitude,
			RestaurantMessage: checkout.RestaurantMessage,
			DeliveryMessage:   checkout.DeliveryMessage,
			Items:             itemsOf(g),
		}
	}
	return drafts
}

func OrderTotal(lines []domain.CartLine, deliveryCost decimal.Decimal) decimal.Decimal {
	total := deliveryCost
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func itemsOf(g domain.CartGroup) []domain.OrderItem {
	items := make([]domain.OrderItem, len(g.Items))
	for i, l := range g.Items {
		items[i] = domain.OrderItem{FoodID: l.FoodID, FoodName: l.FoodName, Quantity: l.Quantity, Price: l.Price}
	}
	return items
}

func (s *OrderService) publish(ctx context.Context, kind string, o domain.Order) {
	publishEvent(ctx, s.publisher, kind, o.ID, o.RestaurantID, o.Status, o.Total)
}

func publishEvent(ctx context.Context, p EventPublisher, kind string, orderID, restaurantID int, status domain.OrderStatus, total decimal.Decimal) {
	if p == nil {
		return
	}
	err := p.PublishOrderEvent(ctx, domain.OrderEvent{
		ID:           uuid.NewString(),
		Type:         kind,
		OrderID:      orderID,
		RestaurantID: restaurantID,
		Status:       status,
		Total:        total.String(),
		Timestamp:    time.Now(),
	})
	if err != nil {
		log.Printf("[bot-svc] publish %s for order %d: %v", kind, orderID, err)
	}
}
