package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"overcooked-bot/bot-svc/internal/domain"
)

// beginCheckout starts the checkout dialogue from the cart message. The
// browsing context is kept so that backing out of checkout lands on the cart
// and then on the food list.
func (c *Conversation) beginCheckout(ctx context.Context, ev domain.Event) error {
	groups, err := c.svc.Cart.Group(ctx, ev.ChatID)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		c.ack(ctx, ev, ackCartEmpty, true)
		return nil
	}
	sess, err := c.load(ctx, ev)
	if err != nil {
		return err
	}
	c.ack(ctx, ev, "", false)
	return c.askPhone(ctx, ev, browsingOnly(sess))
}

func browsingOnly(sess domain.Session) domain.Session {
	return domain.Session{
		RestaurantID:   sess.RestaurantID,
		RestaurantName: sess.RestaurantName,
		Category:       sess.Category,
	}
}

func (c *Conversation) askPhone(ctx context.Context, ev domain.Event, sess domain.Session) error {
	sess.State = domain.StateWaitingForPhone
	sess.AddressID = 0
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgAskPhone, phoneKeyboard())
}

func (c *Conversation) onWaitingForPhone(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		return c.showCart(ctx, ev, browsingOnly(sess))
	}

	var phone string
	switch ev.Kind {
	case domain.EventContact:
		phone = strings.ReplaceAll(ev.Phone, " ", "")
	case domain.EventText:
		phone = strings.ReplaceAll(textOf(ev), " ", "")
	default:
		return c.reply(ctx, ev, msgAskPhone, phoneKeyboard())
	}
	if ev.Kind == domain.EventContact && !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	err := c.svc.Users.SetPhone(ctx, ev.ChatID, phone)
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.reply(ctx, ev, msgBadPhone, phoneKeyboard())
	case errors.Is(err, domain.ErrNotFound):
		return c.mainMenu(ctx, ev, msgRegisterFirst)
	case err != nil:
		return err
	}
	sess.Phone = phone
	return c.askAddress(ctx, ev, sess)
}

// askAddress offers the saved addresses, or goes straight to a new location
// when there are none.
func (c *Conversation) askAddress(ctx context.Context, ev domain.Event, sess domain.Session) error {
	addresses, err := c.svc.Addresses.List(ctx, ev.ChatID)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return c.askNewLocation(ctx, ev, sess)
	}

	sess.State = domain.StateWaitingForAddress
	sess.AddressID = 0
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgChooseAddress,
		listKeyboard(addressLabels(addresses), domain.KeyRow(btnNewAddress), domain.KeyRow(btnBack)))
}

func (c *Conversation) onWaitingForAddress(ctx context.Context, ev domain.Event, sess domain.Session) error {
	text := textOf(ev)
	switch {
	case isBack(ev):
		return c.askPhone(ctx, ev, sess)
	case text == btnNewAddress:
		return c.askNewLocation(ctx, ev, sess)
	case text == "":
		return c.reply(ctx, ev, msgUnknownAddress, nil)
	}

	addr, err := c.svc.Addresses.ByName(ctx, ev.ChatID, strings.TrimPrefix(text, addressPrefix))
	if errors.Is(err, domain.ErrNotFound) {
		return c.reply(ctx, ev, msgUnknownAddress, nil)
	}
	if err != nil {
		return err
	}
	sess.AddressID = addr.ID
	return c.askRestaurantMessage(ctx, ev, sess)
}

func (c *Conversation) askNewLocation(ctx context.Context, ev domain.Event, sess domain.Session) error {
	sess.State = domain.StateAddingNewAddressLocation
	sess.HasNewLocation = false
	sess.NewLatitude, sess.NewLongitude = 0, 0
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgAskLocation, locationKeyboard())
}

func (c *Conversation) onAddingNewAddressLocation(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		if sess.FromSettings {
			return c.showSettings(ctx, ev, domain.Session{})
		}
		addresses, err := c.svc.Addresses.List(ctx, ev.ChatID)
		if err != nil {
			return err
		}
		if len(addresses) == 0 {
			return c.askPhone(ctx, ev, sess)
		}
		return c.askAddress(ctx, ev, sess)
	}
	if ev.Kind != domain.EventLocation {
		return c.reply(ctx, ev, msgAskLocation, locationKeyboard())
	}
	if ok, err := c.checkLocation(ctx, ev); !ok {
		return err
	}

	sess.State = domain.StateAddingNewAddressName
	sess.HasNewLocation = true
	sess.NewLatitude, sess.NewLongitude = ev.Latitude, ev.Longitude
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgAskAddressName, backKeyboard())
}

// checkLocation answers a rejected location and reports whether it was accepted.
func (c *Conversation) checkLocation(ctx context.Context, ev domain.Event) (bool, error) {
	err := c.svc.Addresses.CheckLocation(ev.Latitude, ev.Longitude)
	if err == nil {
		return true, nil
	}
	return false, c.rejectLocation(ctx, ev, err)
}

func (c *Conversation) rejectLocation(ctx context.Context, ev domain.Event, err error) error {
	var zoneErr *domain.OutOfZoneError
	if errors.As(err, &zoneErr) {
		return c.reply(ctx, ev, fmt.Sprintf(msgOutOfZone, zoneErr.MaxKm, zoneErr.DistanceKm), nil)
	}
	if errors.Is(err, domain.ErrValidation) {
		return c.reply(ctx, ev, msgBadLocation, nil)
	}
	return err
}

func (c *Conversation) onAddingNewAddressName(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		return c.askNewLocation(ctx, ev, sess)
	}
	name := textOf(ev)
	if name == "" {
		return c.reply(ctx, ev, msgAskAddressName, backKeyboard())
	}

	addr, err := c.svc.Addresses.Create(ctx, ev.ChatID, name, sess.NewLatitude, sess.NewLongitude)
	switch {
	case errors.Is(err, domain.ErrUserUnknown):
		return c.mainMenu(ctx, ev, msgRegisterFirst)
	case errors.Is(err, domain.ErrValidation):
		var zoneErr *domain.OutOfZoneError
		if errors.As(err, &zoneErr) {
			return c.askNewLocation(ctx, ev, sess)
		}
		return c.reply(ctx, ev, msgBadAddressName, backKeyboard())
	case err != nil:
		return err
	}

	if err := c.reply(ctx, ev, msgAddressSaved, nil); err != nil {
		return err
	}
	if sess.FromSettings {
		return c.showSettings(ctx, ev, domain.Session{})
	}
	sess.AddressID = addr.ID
	sess.HasNewLocation = false
	sess.NewLatitude, sess.NewLongitude = 0, 0
	return c.askRestaurantMessage(ctx, ev, sess)
}

func (c *Conversation) askRestaurantMessage(ctx context.Context, ev domain.Event, sess domain.Session) error {
	sess.State = domain.StateWaitingRestaurantMessage
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgAskRestaurantMsg, skipKeyboard())
}

func (c *Conversation) onWaitingRestaurantMessage(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		return c.askAddress(ctx, ev, sess)
	}
	text, ok := optionalText(ev)
	if !ok {
		return c.reply(ctx, ev, msgAskRestaurantMsg, skipKeyboard())
	}
	sess.RestaurantMessage = text
	sess.State = domain.StateWaitingDeliveryMessage
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgAskDeliveryMsg, skipKeyboard())
}

func (c *Conversation) onWaitingDeliveryMessage(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		return c.askRestaurantMessage(ctx, ev, sess)
	}
	text, ok := optionalText(ev)
	if !ok {
		return c.reply(ctx, ev, msgAskDeliveryMsg, skipKeyboard())
	}
	sess.DeliveryMessage = text
	return c.showConfirmation(ctx, ev, sess)
}

// optionalText reads a free-text answer where Skip stands for no message.
func optionalText(ev domain.Event) (string, bool) {
	text := textOf(ev)
	if text == "" {
		return "", false
	}
	if text == btnSkip {
		return "", true
	}
	return text, true
}

func (c *Conversation) showConfirmation(ctx context.Context, ev domain.Event, sess domain.Session) error {
	groups, err := c.svc.Cart.Group(ctx, ev.ChatID)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return c.mainMenu(ctx, ev, msgCartEmpty)
	}
	addr, err := c.svc.Addresses.Get(ctx, ev.ChatID, sess.AddressID)
	if errors.Is(err, domain.ErrNotFound) {
		if err := c.reply(ctx, ev, msgAddressMissing, nil); err != nil {
			return err
		}
		return c.askAddress(ctx, ev, sess)
	}
	if err != nil {
		return err
	}

	if err := c.reply(ctx, ev, msgCheckOrder, backKeyboard()); err != nil {
		return err
	}
	msgID, err := c.svc.Messenger.SendMessage(ctx, ev.ChatID, confirmationText(groups, sess, addr), confirmationControls())
	if err != nil {
		return err
	}
	sess.State = domain.StateConfirmingOrder
	sess.ConfirmMessageID = msgID
	return c.save(ctx, ev, sess)
}

func (c *Conversation) onConfirmingOrder(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if isBack(ev) {
		c.dropConfirmation(ctx, ev.ChatID, sess.ConfirmMessageID, "")
		sess.ConfirmMessageID = 0
		return c.askDeliveryMessageAgain(ctx, ev, sess)
	}
	return c.reply(ctx, ev, msgConfirmWithBtn, nil)
}

func (c *Conversation) askDeliveryMessageAgain(ctx context.Context, ev domain.Event, sess domain.Session) error {
	sess.State = domain.StateWaitingDeliveryMessage
	sess.DeliveryMessage = ""
	if err := c.save(ctx, ev, sess); err != nil {
		return err
	}
	return c.reply(ctx, ev, msgAskDeliveryMsg, skipKeyboard())
}

// confirmingSession returns the session when the control was pressed on the
// live confirmation message; stale confirmations are answered here.
func (c *Conversation) confirmingSession(ctx context.Context, ev domain.Event) (domain.Session, bool, error) {
	sess, err := c.load(ctx, ev)
	if err != nil {
		return domain.Session{}, false, err
	}
	if sess.State != domain.StateConfirmingOrder || sess.ConfirmMessageID != ev.MessageID {
		c.ack(ctx, ev, msgCheckoutExpired, true)
		c.dropConfirmation(ctx, ev.ChatID, ev.MessageID, ev.MessageText)
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

func (c *Conversation) confirmOrder(ctx context.Context, ev domain.Event) error {
	sess, ok, err := c.confirmingSession(ctx, ev)
	if !ok {
		return err
	}

	placed, err := c.svc.Orders.CreateOrders(ctx, ev.ChatID, sess.Checkout())
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		c.ack(ctx, ev, ackCartEmpty, true)
		c.dropConfirmation(ctx, ev.ChatID, ev.MessageID, ev.MessageText)
		return c.mainMenu(ctx, ev, msgCartEmpty)
	case errors.Is(err, domain.ErrAddressMissing):
		c.ack(ctx, ev, "", false)
		c.dropConfirmation(ctx, ev.ChatID, ev.MessageID, ev.MessageText)
		if err := c.reply(ctx, ev, msgAddressMissing, nil); err != nil {
			return err
		}
		return c.askAddress(ctx, ev, sess)
	case errors.Is(err, domain.ErrUserUnknown):
		c.ack(ctx, ev, "", false)
		return c.mainMenu(ctx, ev, msgRegisterFirst)
	case err != nil:
		// cart is untouched, the user may press confirm again
		log.Printf("[bot-svc] checkout of chat %d failed: %v", ev.ChatID, err)
		c.ack(ctx, ev, msgOrderFailed, true)
		return nil
	}

	c.ack(ctx, ev, "", false)
	c.dropConfirmation(ctx, ev.ChatID, ev.MessageID, ev.MessageText)
	if err := c.mainMenu(ctx, ev, placedText(placed)); err != nil {
		return err
	}
	if err := c.svc.Dispatch.AnnounceOrders(ctx, placed); err != nil {
		log.Printf("[bot-svc] announce orders of chat %d: %v", ev.ChatID, err)
		return c.reply(ctx, ev, msgNotifyLater, nil)
	}
	return nil
}

func (c *Conversation) cancelCheckout(ctx context.Context, ev domain.Event) error {
	_, ok, err := c.confirmingSession(ctx, ev)
	if !ok {
		return err
	}
	c.ack(ctx, ev, "", false)
	c.dropConfirmation(ctx, ev.ChatID, ev.MessageID, msgOrderCancelled)
	return c.mainMenu(ctx, ev, msgMainMenu)
}

// dropConfirmation strips the buttons from a confirmation message so it
// cannot be pressed again. An empty text leaves the message text as is.
func (c *Conversation) dropConfirmation(ctx context.Context, chatID int64, messageID int, text string) {
	if messageID == 0 {
		return
	}
	var err error
	if text == "" {
		err = c.svc.Messenger.DeleteMessage(ctx, chatID, messageID)
	} else {
		err = c.svc.Messenger.EditMessage(ctx, chatID, messageID, text, domain.NoControls())
	}
	if err != nil {
		log.Printf("[bot-svc] chat %d: close confirmation %d: %v", chatID, messageID, err)
	}
}
