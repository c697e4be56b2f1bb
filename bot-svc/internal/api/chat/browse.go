package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"overcooked-bot/bot-svc/internal/domain"
)

func browseRow() []domain.KeyButton {
	return domain.KeyRow(btnCart, btnBack)
}

func (c *Conversation) showRestaurants(ctx context.Context, ev domain.Event, sess domain.Session) error {
	restaurants, err := c.svc.Catalog.Restaurants(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return c.mainMenu(ctx, ev, msgNoRestaurants)
	}
	if err != nil {
		return err
	}

	names := make([]string, len(restaurants))
	for i, r := range restaurants {
		names[i] = r.Name
	}
	if err := c.save(ctx, ev, domain.Session{State: domain.StateSelectingRestaurant}); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgChooseRestaurant, listKeyboard(names, browseRow()))
}

func (c *Conversation) onSelectingRestaurant(ctx context.Context, ev domain.Event, sess domain.Session) error {
	text := textOf(ev)
	switch {
	case isBack(ev):
		return c.mainMenu(ctx, ev, msgMainMenu)
	case text == btnCart:
		return c.showCart(ctx, ev, sess)
	case text == "":
		return c.reply(ctx, ev, msgPickRestaurant, nil)
	}

	restaurants, err := c.svc.Catalog.Restaurants(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return c.mainMenu(ctx, ev, msgNoRestaurants)
	}
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(restaurants, func(r domain.Restaurant) bool { return r.Name == text })
	if idx < 0 {
		return c.reply(ctx, ev, msgPickRestaurant, nil)
	}
	restaurant := restaurants[idx]

	hours, err := c.svc.Catalog.Hours(ctx, restaurant.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if hours != nil {
		if now := c.now(); !hours.IsOpen(now) {
			return c.reply(ctx, ev, fmt.Sprintf(msgClosed, restaurant.Name, hours.NextOpening(now)), nil)
		}
	}

	sess.RestaurantID = restaurant.ID
	sess.RestaurantName = restaurant.Name
	sess.Category = ""
	return c.showCategories(ctx, ev, sess)
}

func (c *Conversation) showCategories(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if sess.RestaurantID == 0 {
		return c.mainMenu(ctx, ev, msgMainMenu)
	}
	categories, err := c.svc.Catalog.Categories(ctx, sess.RestaurantID)
	if errors.Is(err, domain.ErrNotFound) {
		if err := c.reply(ctx, ev, fmt.Sprintf(msgNoCategories, sess.RestaurantName), nil); err != nil {
			return err
		}
		return c.showRestaurants(ctx, ev, sess)
	}
	if err != nil {
		return err
	}

	sess.State = domain.StateSelectingCategory
	sess.Category = ""
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgChooseCategory, listKeyboard(categories, browseRow()))
}

func (c *Conversation) onSelectingCategory(ctx context.Context, ev domain.Event, sess domain.Session) error {
	text := textOf(ev)
	switch {
	case isBack(ev):
		return c.showRestaurants(ctx, ev, sess)
	case text == btnCart:
		return c.showCart(ctx, ev, sess)
	case text == "":
		return c.reply(ctx, ev, msgPickCategory, nil)
	}

	categories, err := c.svc.Catalog.Categories(ctx, sess.RestaurantID)
	if errors.Is(err, domain.ErrNotFound) {
		return c.showRestaurants(ctx, ev, sess)
	}
	if err != nil {
		return err
	}
	if !slices.Contains(categories, text) {
		return c.reply(ctx, ev, msgPickCategory, nil)
	}
	sess.Category = text
	return c.showFoods(ctx, ev, sess)
}

func (c *Conversation) showFoods(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if sess.RestaurantID == 0 || sess.Category == "" {
		return c.mainMenu(ctx, ev, msgMainMenu)
	}
	foods, err := c.svc.Catalog.Foods(ctx, sess.RestaurantID, sess.Category)
	if errors.Is(err, domain.ErrNotFound) {
		if err := c.reply(ctx, ev, msgNoFoods, nil); err != nil {
			return err
		}
		return c.showCategories(ctx, ev, sess)
	}
	if err != nil {
		return err
	}

	labels := make([]string, len(foods))
	for i, f := range foods {
		labels[i] = domain.FoodLabel(f.Name, f.ID)
	}
	sess.State = domain.StateSelectingFood
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, foodListText(foods), listKeyboard(labels, browseRow()))
}

func (c *Conversation) onSelectingFood(ctx context.Context, ev domain.Event, sess domain.Session) error {
	text := textOf(ev)
	switch {
	case isBack(ev):
		return c.showCategories(ctx, ev, sess)
	case text == btnCart:
		return c.showCart(ctx, ev, sess)
	}

	foodID, err := domain.ParseFoodLabel(text)
	if err != nil {
		return c.reply(ctx, ev, msgPickFood, nil)
	}
	food, err := c.svc.Catalog.Food(ctx, foodID)
	if errors.Is(err, domain.ErrNotFound) {
		return c.reply(ctx, ev, msgFoodGone, nil)
	}
	if err != nil {
		return err
	}
	return c.reply(ctx, ev, foodText(food), foodControls(food.ID, 1))
}

// showCart keeps the browsing context in the session so that back returns
// to the food list the cart was opened from.
func (c *Conversation) showCart(ctx context.Context, ev domain.Event, sess domain.Session) error {
	groups, err := c.svc.Cart.Group(ctx, ev.ChatID)
	if err != nil {
		return err
	}
	sess.State = domain.StateViewingCart
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	if len(groups) == 0 {
		return c.reply(ctx, ev, msgCartEmpty, backKeyboard())
	}
	if err := c.reply(ctx, ev, msgCartHeader, backKeyboard()); err != nil {
		return err
	}
	return c.reply(ctx, ev, cartText(groups), cartControls(groups))
}

func (c *Conversation) onViewingCart(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if !isBack(ev) {
		return c.reply(ctx, ev, msgUseCartButtons, nil)
	}
	if sess.RestaurantID != 0 && sess.Category != "" {
		return c.showFoods(ctx, ev, sess)
	}
	return c.mainMenu(ctx, ev, msgMainMenu)
}

// changeQuantity redraws the quantity picker under a food card.
func (c *Conversation) changeQuantity(ctx context.Context, ev domain.Event, ctl domain.Control) error {
	qty := ctl.Quantity + 1
	if ctl.Tag == domain.TagDecrease {
		qty = ctl.Quantity - 1
	}
	if qty < 1 {
		c.ack(ctx, ev, ackMinQuantity, false)
		return nil
	}
	c.ack(ctx, ev, "", false)
	return c.svc.Messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, ev.MessageText, foodControls(ctl.FoodID, qty))
}

func (c *Conversation) addToCart(ctx context.Context, ev domain.Event, ctl domain.Control) error {
	err := c.svc.Cart.Add(ctx, ev.ChatID, ctl.FoodID, ctl.Quantity)
	switch {
	case err == nil:
		c.ack(ctx, ev, ackAdded, false)
		return nil
	case errors.Is(err, domain.ErrItemUnavailable):
		c.ack(ctx, ev, ackUnavailable, true)
		return nil
	case errors.Is(err, domain.ErrUserUnknown):
		c.ack(ctx, ev, msgRegisterFirst, true)
		return nil
	case errors.Is(err, domain.ErrValidation):
		c.ack(ctx, ev, ackMinQuantity, false)
		return nil
	}
	return err
}

// removeFromCart deletes one line and redraws the cart message in place.
func (c *Conversation) removeFromCart(ctx context.Context, ev domain.Event, ctl domain.Control) error {
	err := c.svc.Cart.Remove(ctx, ev.ChatID, ctl.ItemID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	c.ack(ctx, ev, ackRemoved, false)

	groups, err := c.svc.Cart.Group(ctx, ev.ChatID)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return c.svc.Messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, msgCartEmpty, domain.NoControls())
	}
	return c.svc.Messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, cartText(groups), cartControls(groups))
}
