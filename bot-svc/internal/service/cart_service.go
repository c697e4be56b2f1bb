package service

import (
	"context"
	"fmt"

	"overcooked-bot/bot-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) Add(ctx context.Context, chatID int64, foodID, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity %d", domain.ErrValidation, qty)
	}
	return s.repo.AddCartItem(ctx, chatID, foodID, qty)
}

func (s *CartService) Remove(ctx context.Context, chatID int64, cartItemID int) error {
	return s.repo.RemoveCartItem(ctx, chatID, cartItemID)
}

func (s *CartService) List(ctx context.Context, chatID int64) ([]domain.CartLine, error) {
	return s.repo.ListCartItems(ctx, chatID)
}

func (s *CartService) Group(ctx context.Context, chatID int64) ([]domain.CartGroup, error) {
	lines, err := s.repo.ListCartItems(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return GroupByRestaurant(lines), nil
}

func (s *CartService) Clear(ctx context.Context, chatID int64) error {
	return s.repo.ClearCart(ctx, chatID)
}

// GroupByRestaurant partitions cart lines per restaurant, keeping the order in
// which restaurants first appear.
func GroupByRestaurant(lines []domain.CartLine) []domain.CartGroup {
	var groups []domain.CartGroup
	index := map[int]int{}
	for _, line := range lines {
		i, ok := index[line.RestaurantID]
		if !ok {
			groups = append(groups, domain.CartGroup{
				RestaurantID:     line.RestaurantID,
				RestaurantName:   line.RestaurantName,
				RestaurantChatID: line.RestaurantChatID,
				DeliveryCost:     line.DeliveryCost,
				Subtotal:         decimal.Zero,
			})
			i = len(groups) - 1
			index[line.RestaurantID] = i
		}
		groups[i].Items = append(groups[i].Items, line)
		groups[i].Subtotal = groups[i].Subtotal.Add(line.LineTotal())
	}
	return groups
}

// GrandTotal sums every group including delivery costs.
func GrandTotal(groups []domain.CartGroup) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Total())
	}
	return total
}
