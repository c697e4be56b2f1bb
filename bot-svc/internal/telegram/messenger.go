package telegram

import (
	"context"
	"fmt"

	"overcooked-bot/bot-svc/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotClient is the part of *tgbotapi.BotAPI the messenger needs.
type BotClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Messenger sends domain messages through the Telegram Bot API. The client
// library is not context aware, so every call runs in its own goroutine and
// is abandoned once ctx is done.
type Messenger struct {
	Bot BotClient
}

func NewMessenger(bot BotClient) *Messenger {
	return &Messenger{Bot: bot}
}

func (m *Messenger) SendMessage(ctx context.Context, chatID int64, text string, controls *domain.Controls) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup := replyMarkup(controls); markup != nil {
		msg.ReplyMarkup = markup
	}
	sent, err := m.send(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return sent.MessageID, nil
}

func (m *Messenger) EditMessage(ctx context.Context, chatID int64, messageID int, text string, controls *domain.Controls) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	// no markup removes the inline keyboard
	if controls != nil && len(controls.Inline) > 0 {
		markup := inlineMarkup(controls.Inline)
		edit.ReplyMarkup = &markup
	}
	if _, err := m.request(ctx, edit); err != nil {
		return fmt.Errorf("edit message %d in %d: %w", messageID, chatID, err)
	}
	return nil
}

func (m *Messenger) SendLocation(ctx context.Context, chatID int64, lat, lon float64) error {
	if _, err := m.send(ctx, tgbotapi.NewLocation(chatID, lat, lon)); err != nil {
		return fmt.Errorf("send location to %d: %w", chatID, err)
	}
	return nil
}

func (m *Messenger) SendPhoto(ctx context.Context, chatID int64, photo []byte, caption string) error {
	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "photo.png", Bytes: photo})
	msg.Caption = caption
	if _, err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("send photo to %d: %w", chatID, err)
	}
	return nil
}

func (m *Messenger) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if _, err := m.request(ctx, tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("delete message %d in %d: %w", messageID, chatID, err)
	}
	return nil
}

func (m *Messenger) AnswerControl(ctx context.Context, callbackID, text string, alert bool) error {
	cb := tgbotapi.NewCallback(callbackID, text)
	if alert {
		cb = tgbotapi.NewCallbackWithAlert(callbackID, text)
	}
	if _, err := m.request(ctx, cb); err != nil {
		return fmt.Errorf("answer callback %s: %w", callbackID, err)
	}
	return nil
}

func (m *Messenger) send(ctx context.Context, c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return call(ctx, func() (tgbotapi.Message, error) { return m.Bot.Send(c) })
}

func (m *Messenger) request(ctx context.Context, c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return call(ctx, func() (*tgbotapi.APIResponse, error) { return m.Bot.Request(c) })
}

// call waits for fn until ctx is done. An abandoned request keeps running in
// the background until the HTTP client gives up on it.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()
	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// replyMarkup picks the Telegram markup for controls. Inline buttons win
// over a reply keyboard since a message carries only one markup.
func replyMarkup(controls *domain.Controls) any {
	switch {
	case controls == nil:
		return nil
	case len(controls.Inline) > 0:
		return inlineMarkup(controls.Inline)
	case len(controls.Keyboard) > 0:
		return keyboardMarkup(controls.Keyboard)
	case controls.RemoveReply:
		return tgbotapi.NewRemoveKeyboard(false)
	}
	return nil
}

func inlineMarkup(rows [][]domain.Button) tgbotapi.InlineKeyboardMarkup {
	markup := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL))
				continue
			}
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		markup = append(markup, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(markup...)
}

func keyboardMarkup(rows [][]domain.KeyButton) tgbotapi.ReplyKeyboardMarkup {
	markup := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, b := range row {
			switch {
			case b.RequestContact:
				buttons = append(buttons, tgbotapi.NewKeyboardButtonContact(b.Label))
			case b.RequestLocation:
				buttons = append(buttons, tgbotapi.NewKeyboardButtonLocation(b.Label))
			default:
				buttons = append(buttons, tgbotapi.NewKeyboardButton(b.Label))
			}
		}
		markup = append(markup, buttons)
	}
	keyboard := tgbotapi.NewReplyKeyboard(markup...)
	keyboard.ResizeKeyboard = true
	return keyboard
}
