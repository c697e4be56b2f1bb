package telegram

import (
	"context"
	"log"
	"strings"

	"overcooked-bot/bot-svc/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// EventSink accepts converted events, see chat.Router.
type EventSink interface {
	Submit(ev domain.Event) error
}

// UpdateSource is the long-polling side of *tgbotapi.BotAPI.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Poller struct {
	Source  UpdateSource
	Sink    EventSink
	Timeout int
}

func NewPoller(source UpdateSource, sink EventSink) *Poller {
	return &Poller{Source: source, Sink: sink, Timeout: 60}
}

// Run feeds updates into the sink until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = p.Timeout
	updates := p.Source.GetUpdatesChan(cfg)
	log.Printf("[bot-svc] polling Telegram updates")

	for {
		select {
		case <-ctx.Done():
			p.Source.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			ev, ok := ToEvent(update)
			if !ok {
				continue
			}
			if err := p.Sink.Submit(ev); err != nil {
				log.Printf("[bot-svc] drop update %d: %v", update.UpdateID, err)
			}
		}
	}
}

// ToEvent converts an update into a domain event. Updates the bot does not
// react to are reported with ok=false.
func ToEvent(update tgbotapi.Update) (domain.Event, bool) {
	if cb := update.CallbackQuery; cb != nil {
		if cb.Message == nil || cb.Message.Chat == nil || cb.From == nil {
			return domain.Event{}, false
		}
		ev := base(cb.Message.Chat, cb.From)
		ev.Kind = domain.EventControl
		ev.Data = cb.Data
		ev.CallbackID = cb.ID
		ev.MessageID = cb.Message.MessageID
		ev.MessageText = cb.Message.Text
		if ev.MessageText == "" {
			ev.MessageText = cb.Message.Caption
		}
		return ev, true
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.From == nil {
		return domain.Event{}, false
	}
	ev := base(msg.Chat, msg.From)
	switch {
	case msg.Contact != nil:
		// only the sender's own number is accepted as a contact
		if msg.Contact.UserID != 0 && msg.Contact.UserID != msg.From.ID {
			return domain.Event{}, false
		}
		ev.Kind = domain.EventContact
		ev.Phone = msg.Contact.PhoneNumber
	case msg.Location != nil:
		ev.Kind = domain.EventLocation
		ev.Latitude = msg.Location.Latitude
		ev.Longitude = msg.Location.Longitude
	case msg.Text != "":
		ev.Kind = domain.EventText
		ev.Text = msg.Text
	default:
		return domain.Event{}, false
	}
	return ev, true
}

func base(chat *tgbotapi.Chat, from *tgbotapi.User) domain.Event {
	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = from.UserName
	}
	return domain.Event{
		ChatID:     chat.ID,
		SenderID:   from.ID,
		SenderName: name,
		Private:    chat.IsPrivate(),
	}
}
