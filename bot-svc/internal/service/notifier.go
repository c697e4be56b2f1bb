package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"overcooked-bot/bot-svc/internal/domain"
)

// RetryingMessenger bounds every outbound call with a timeout and retries it
// with linear backoff. The final failure is wrapped in domain.ErrNotifyFailed.
type RetryingMessenger struct {
	inner    Messenger
	attempts int
	timeout  time.Duration
	backoff  time.Duration
}

func NewRetryingMessenger(inner Messenger, attempts int, timeout, backoff time.Duration) *RetryingMessenger {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryingMessenger{inner: inner, attempts: attempts, timeout: timeout, backoff: backoff}
}

func (m *RetryingMessenger) do(ctx context.Context, op string, chatID int64, call func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, m.timeout)
		err = call(callCtx)
		cancel()
		if err == nil {
			return nil
		}
		log.Printf("[bot-svc] %s to chat %d failed (attempt %d/%d): %v", op, chatID, attempt, m.attempts, err)
		if attempt == m.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s to chat %d: %v", domain.ErrNotifyFailed, op, chatID, ctx.Err())
		case <-time.After(time.Duration(attempt) * m.backoff):
		}
	}
	return fmt.Errorf("%w: %s to chat %d: %v", domain.ErrNotifyFailed, op, chatID, err)
}

func (m *RetryingMessenger) SendMessage(ctx context.Context, chatID int64, text string, controls *domain.Controls) (int, error) {
	var id int
	err := m.do(ctx, "send message", chatID, func(ctx context.Context) error {
		var err error
		id, err = m.inner.SendMessage(ctx, chatID, text, controls)
		return err
	})
	return id, err
}

func (m *RetryingMessenger) EditMessage(ctx context.Context, chatID int64, messageID int, text string, controls *domain.Controls) error {
	return m.do(ctx, "edit message", chatID, func(ctx context.Context) error {
		return m.inner.EditMessage(ctx, chatID, messageID, text, controls)
	})
}

func (m *RetryingMessenger) SendLocation(ctx context.Context, chatID int64, lat, lon float64) error {
	return m.do(ctx, "send location", chatID, func(ctx context.Context) error {
		return m.inner.SendLocation(ctx, chatID, lat, lon)
	})
}

func (m *RetryingMessenger) SendPhoto(ctx context.Context, chatID int64, photo []byte, caption string) error {
	return m.do(ctx, "send photo", chatID, func(ctx context.Context) error {
		return m.inner.SendPhoto(ctx, chatID, photo, caption)
	})
}

func (m *RetryingMessenger) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return m.do(ctx, "delete message", chatID, func(ctx context.Context) error {
		return m.inner.DeleteMessage(ctx, chatID, messageID)
	})
}

// AnswerControl is not retried: callback answers expire within seconds.
func (m *RetryingMessenger) AnswerControl(ctx context.Context, callbackID, text string, alert bool) error {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.inner.AnswerControl(callCtx, callbackID, text, alert)
}
