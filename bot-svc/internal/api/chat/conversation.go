package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/service"
)

// Services groups what the conversation delegates to.
type Services struct {
	Users     service.UserServiceInterface
	Catalog   service.CatalogServiceInterface
	Cart      service.CartServiceInterface
	Addresses service.AddressServiceInterface
	Orders    service.OrderServiceInterface
	Dispatch  service.DispatchServiceInterface
	Sessions  service.SessionStore
	Messenger service.Messenger
}

// Conversation interprets inbound chat events against the session state of
// the chat they come from.
type Conversation struct {
	svc Services
	now func() time.Time
}

func NewConversation(svc Services, now func() time.Time) *Conversation {
	if now == nil {
		now = time.Now
	}
	return &Conversation{svc: svc, now: now}
}

type stateHandler func(c *Conversation, ctx context.Context, ev domain.Event, sess domain.Session) error

var stateHandlers = map[domain.State]stateHandler{
	domain.StateMainMenu:                 (*Conversation).onMainMenu,
	domain.StateSelectingRestaurant:      (*Conversation).onSelectingRestaurant,
	domain.StateSelectingCategory:        (*Conversation).onSelectingCategory,
	domain.StateSelectingFood:            (*Conversation).onSelectingFood,
	domain.StateViewingCart:              (*Conversation).onViewingCart,
	domain.StateWaitingForPhone:          (*Conversation).onWaitingForPhone,
	domain.StateWaitingForAddress:        (*Conversation).onWaitingForAddress,
	domain.StateAddingNewAddressLocation: (*Conversation).onAddingNewAddressLocation,
	domain.StateAddingNewAddressName:     (*Conversation).onAddingNewAddressName,
	domain.StateWaitingRestaurantMessage: (*Conversation).onWaitingRestaurantMessage,
	domain.StateWaitingDeliveryMessage:   (*Conversation).onWaitingDeliveryMessage,
	domain.StateConfirmingOrder:          (*Conversation).onConfirmingOrder,
	domain.StateViewingOrders:            (*Conversation).onViewingOrders,
	domain.StateViewingSettings:          (*Conversation).onViewingSettings,
	domain.StateEditingAddressLocation:   (*Conversation).onEditingAddressLocation,
	domain.StateEditingAddressName:       (*Conversation).onEditingAddressName,
}

// Handle processes one event. Returned errors have already been answered
// with a short message to the user and are meant for logging.
func (c *Conversation) Handle(ctx context.Context, ev domain.Event) error {
	if ev.Kind == domain.EventControl {
		return c.handleControl(ctx, ev)
	}
	// staff group chats interact through controls only
	if !ev.Private {
		return nil
	}

	if ev.Kind == domain.EventText && ev.Text != cmdStart {
		admin, err := c.svc.Sessions.Load(ctx, domain.CancelReasonSession(ev.SenderID))
		if err != nil {
			c.fail(ctx, ev, err)
			return err
		}
		if admin.State == domain.StateWaitingCancelReason {
			if err := c.svc.Dispatch.ApplyCancelReason(ctx, ev, admin); err != nil {
				return c.failUnlessNotify(ctx, ev, err)
			}
			return nil
		}
	}

	sess, err := c.load(ctx, ev)
	if err != nil {
		c.fail(ctx, ev, err)
		return err
	}

	if ev.Kind == domain.EventText && ev.Text == cmdStart {
		return c.start(ctx, ev)
	}

	handler, ok := stateHandlers[sess.State]
	if !ok {
		return c.mainMenu(ctx, ev, msgMainMenu)
	}
	if err := handler(c, ctx, ev, sess); err != nil {
		c.fail(ctx, ev, err)
		return err
	}
	return nil
}

// load returns the chat session, replacing one that lacks the context its
// state needs with the main menu.
func (c *Conversation) load(ctx context.Context, ev domain.Event) (domain.Session, error) {
	key := domain.ChatSession(ev.ChatID)
	sess, err := c.svc.Sessions.Load(ctx, key)
	if err != nil {
		return domain.Session{}, err
	}
	if err := sess.Validate(); err != nil {
		log.Printf("[bot-svc] chat %d: discarding session: %v", ev.ChatID, err)
		if err := c.svc.Sessions.Clear(ctx, key); err != nil {
			return domain.Session{}, err
		}
		return domain.Session{}, nil
	}
	return sess, nil
}

func (c *Conversation) save(ctx context.Context, ev domain.Event, sess domain.Session) error {
	if err := sess.Validate(); err != nil {
		return fmt.Errorf("refusing to enter %s: %w", sess.State, err)
	}
	return c.svc.Sessions.Save(ctx, domain.ChatSession(ev.ChatID), sess)
}

func (c *Conversation) start(ctx context.Context, ev domain.Event) error {
	if err := c.svc.Users.Register(ctx, ev.SenderID, ev.SenderName); err != nil {
		c.fail(ctx, ev, err)
		return err
	}
	return c.mainMenu(ctx, ev, msgWelcome)
}

// mainMenu clears the chat session: every terminal transition ends here.
func (c *Conversation) mainMenu(ctx context.Context, ev domain.Event, text string) error {
	if err := c.svc.Sessions.Clear(ctx, domain.ChatSession(ev.ChatID)); err != nil {
		return err
	}
	return c.reply(ctx, ev, text, mainMenuKeyboard())
}

func (c *Conversation) onMainMenu(ctx context.Context, ev domain.Event, sess domain.Session) error {
	switch ev.Text {
	case btnOrder:
		return c.showRestaurants(ctx, ev, domain.Session{})
	case btnCart:
		return c.showCart(ctx, ev, domain.Session{})
	case btnOrders:
		return c.showOrders(ctx, ev)
	case btnSettings:
		return c.showSettings(ctx, ev, domain.Session{})
	}
	return c.reply(ctx, ev, msgUseMenu, mainMenuKeyboard())
}

func (c *Conversation) reply(ctx context.Context, ev domain.Event, text string, controls *domain.Controls) error {
	_, err := c.svc.Messenger.SendMessage(ctx, ev.ChatID, text, controls)
	return err
}

func (c *Conversation) ack(ctx context.Context, ev domain.Event, text string, alert bool) {
	if ev.CallbackID == "" {
		return
	}
	if err := c.svc.Messenger.AnswerControl(ctx, ev.CallbackID, text, alert); err != nil {
		log.Printf("[bot-svc] answer control %q in chat %d: %v", ev.Data, ev.ChatID, err)
	}
}

// fail tells the user something went wrong without exposing the cause.
func (c *Conversation) fail(ctx context.Context, ev domain.Event, err error) {
	log.Printf("[bot-svc] chat %d (user %d): %v", ev.ChatID, ev.SenderID, err)
	if ev.Kind == domain.EventControl {
		c.ack(ctx, ev, msgFailure, true)
		return
	}
	if sendErr := c.reply(ctx, ev, msgFailure, nil); sendErr != nil {
		log.Printf("[bot-svc] chat %d: failure notice not delivered: %v", ev.ChatID, sendErr)
	}
}

// failUnlessNotify reports err to the user unless it is a notification
// failure, which dispatch has already surfaced to the acting party.
func (c *Conversation) failUnlessNotify(ctx context.Context, ev domain.Event, err error) error {
	if !errors.Is(err, domain.ErrNotifyFailed) {
		c.fail(ctx, ev, err)
	}
	return err
}

func isBack(ev domain.Event) bool {
	return ev.Kind == domain.EventText && ev.Text == btnBack
}

func textOf(ev domain.Event) string {
	if ev.Kind != domain.EventText {
		return ""
	}
	return strings.TrimSpace(ev.Text)
}
