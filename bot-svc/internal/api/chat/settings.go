package chat

import (
	"context"
	"errors"
	"strings"

	"overcooked-bot/bot-svc/internal/domain"
)

const ordersPerPage = 3

func (c *Conversation) showOrders(ctx context.Context, ev domain.Event) error {
	orders, err := c.svc.Orders.History(ctx, ev.ChatID)
	if errors.Is(err, domain.ErrNotFound) {
		return c.reply(ctx, ev, msgNoOrders, mainMenuKeyboard())
	}
	if err != nil {
		return err
	}
	if err := c.save(ctx, ev, domain.Session{State: domain.StateViewingOrders}); err != nil {
		return err
	}
	page, pages := historyPage(orders, 1)
	if pages == 1 {
		return c.reply(ctx, ev, historyText(page, 1, 1), backKeyboard())
	}
	// the page buttons take the message markup, the main menu keyboard stays
	return c.reply(ctx, ev, historyText(page, 1, pages), historyControls(1, pages))
}

// turnOrdersPage redraws the history message with another page. It does not
// depend on the session so old history messages keep working.
func (c *Conversation) turnOrdersPage(ctx context.Context, ev domain.Event, page int) error {
	orders, err := c.svc.Orders.History(ctx, ev.ChatID)
	if errors.Is(err, domain.ErrNotFound) {
		c.ack(ctx, ev, msgNoOrders, false)
		return c.svc.Messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, msgNoOrders, domain.NoControls())
	}
	if err != nil {
		return err
	}
	shown, pages := historyPage(orders, page)
	page = min(page, pages)
	c.ack(ctx, ev, "", false)
	return c.svc.Messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, historyText(shown, page, pages), historyControls(page, pages))
}

// historyPage returns the orders shown on page, clamped to the last page.
func historyPage(orders []domain.OrderSummary, page int) ([]domain.OrderSummary, int) {
	pages := max(1, (len(orders)+ordersPerPage-1)/ordersPerPage)
	page = min(max(page, 1), pages)
	start := (page - 1) * ordersPerPage
	return orders[start:min(start+ordersPerPage, len(orders))], pages
}

func (c *Conversation) onViewingOrders(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		return c.mainMenu(ctx, ev, msgMainMenu)
	}
	// a paged history leaves the main menu keyboard on screen
	return c.onMainMenu(ctx, ev, domain.Session{})
}

func (c *Conversation) showSettings(ctx context.Context, ev domain.Event, _ domain.Session) error {
	user, err := c.svc.Users.Profile(ctx, ev.ChatID)
	if errors.Is(err, domain.ErrNotFound) {
		return c.mainMenu(ctx, ev, msgRegisterFirst)
	}
	if err != nil {
		return err
	}
	addresses, err := c.svc.Addresses.List(ctx, ev.ChatID)
	if err != nil {
		return err
	}
	if err := c.save(ctx, ev, domain.Session{State: domain.StateViewingSettings}); err != nil {
		return err
	}
	return c.reply(ctx, ev, settingsText(user, addresses),
		listKeyboard(addressLabels(addresses), domain.KeyRow(btnNewAddress), domain.KeyRow(btnBack)))
}

func (c *Conversation) onViewingSettings(ctx context.Context, ev domain.Event, sess domain.Session) error {
	text := textOf(ev)
	switch {
	case isBack(ev):
		return c.mainMenu(ctx, ev, msgMainMenu)
	case text == btnNewAddress:
		return c.askNewLocation(ctx, ev, domain.Session{FromSettings: true})
	case !strings.HasPrefix(text, addressPrefix):
		return c.reply(ctx, ev, msgUnknownAddress, nil)
	}

	addr, err := c.svc.Addresses.ByName(ctx, ev.ChatID, strings.TrimPrefix(text, addressPrefix))
	if errors.Is(err, domain.ErrNotFound) {
		return c.reply(ctx, ev, msgUnknownAddress, nil)
	}
	if err != nil {
		return err
	}
	if err := c.svc.Messenger.SendLocation(ctx, ev.ChatID, addr.Latitude, addr.Longitude); err != nil {
		return err
	}
	return c.reply(ctx, ev, addressPrefix+addr.Name, addressControls(addr.ID))
}

// editAddress opens the relocate or rename dialogue for a saved address.
func (c *Conversation) editAddress(ctx context.Context, ev domain.Event, ctl domain.Control) error {
	if _, err := c.svc.Addresses.Get(ctx, ev.ChatID, ctl.ItemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.ack(ctx, ev, ackAddressGone, true)
			return nil
		}
		return err
	}

	sess := domain.Session{FromSettings: true, EditingAddressID: ctl.ItemID}
	prompt, controls := msgAskLocation, locationKeyboard()
	sess.State = domain.StateEditingAddressLocation
	if ctl.Tag == domain.TagAddressName {
		sess.State = domain.StateEditingAddressName
		prompt, controls = msgAskNewName, backKeyboard()
	}
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	c.ack(ctx, ev, "", false)
	return c.reply(ctx, ev, prompt, controls)
}

func (c *Conversation) deleteAddress(ctx context.Context, ev domain.Event, ctl domain.Control) error {
	err := c.svc.Addresses.Delete(ctx, ev.ChatID, ctl.ItemID)
	if errors.Is(err, domain.ErrNotFound) {
		c.ack(ctx, ev, ackAddressGone, true)
		return nil
	}
	if err != nil {
		return err
	}
	c.ack(ctx, ev, "", false)
	if err := c.svc.Messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, msgAddressDeleted, domain.NoControls()); err != nil {
		return err
	}
	return c.showSettings(ctx, ev, domain.Session{})
}

func (c *Conversation) onEditingAddressLocation(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		return c.showSettings(ctx, ev, sess)
	}
	if ev.Kind != domain.EventLocation {
		return c.reply(ctx, ev, msgAskLocation, locationKeyboard())
	}
	err := c.svc.Addresses.Relocate(ctx, ev.ChatID, sess.EditingAddressID, ev.Latitude, ev.Longitude)
	if done, err := c.addressEdited(ctx, ev, err, msgLocationUpdated); !done {
		return c.rejectLocation(ctx, ev, err)
	} else if err != nil {
		return err
	}
	return nil
}

func (c *Conversation) onEditingAddressName(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		return c.showSettings(ctx, ev, sess)
	}
	name := textOf(ev)
	if name == "" {
		return c.reply(ctx, ev, msgAskNewName, backKeyboard())
	}
	err := c.svc.Addresses.Rename(ctx, ev.ChatID, sess.EditingAddressID, name)
	if done, err := c.addressEdited(ctx, ev, err, msgNameUpdated); !done {
		if errors.Is(err, domain.ErrValidation) {
			return c.reply(ctx, ev, msgBadAddressName, backKeyboard())
		}
		return err
	} else if err != nil {
		return err
	}
	return nil
}

// addressEdited finishes an address edit and returns to settings. done is
// false when err is left for the caller to answer.
func (c *Conversation) addressEdited(ctx context.Context, ev domain.Event, err error, confirmation string) (bool, error) {
	switch {
	case err == nil:
		if err := c.reply(ctx, ev, confirmation, nil); err != nil {
			return true, err
		}
	case errors.Is(err, domain.ErrNotFound):
		if err := c.reply(ctx, ev, msgAddressGone, nil); err != nil {
			return true, err
		}
	default:
		return false, err
	}
	return true, c.showSettings(ctx, ev, domain.Session{})
}
