package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/mocks"
	"overcooked-bot/bot-svc/internal/service"
	"overcooked-bot/bot-svc/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func privateChat() *tgbotapi.Chat { return &tgbotapi.Chat{ID: 42, Type: "private"} }

func sender() *tgbotapi.User { return &tgbotapi.User{ID: 42, FirstName: "Aziz", LastName: "Karimov"} }

func TestToEvent(t *testing.T) {
	tests := []struct {
		name   string
		update tgbotapi.Update
		want   domain.Event
		ok     bool
	}{
		{
			name:   "text",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: privateChat(), From: sender(), Text: "/start"}},
			want: domain.Event{Kind: domain.EventText, ChatID: 42, SenderID: 42, SenderName: "Aziz Karimov",
				Private: true, Text: "/start"},
			ok: true,
		},
		{
			name: "own contact",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: privateChat(), From: sender(),
				Contact: &tgbotapi.Contact{PhoneNumber: "998901234567", UserID: 42}}},
			want: domain.Event{Kind: domain.EventContact, ChatID: 42, SenderID: 42, SenderName: "Aziz Karimov",
				Private: true, Phone: "998901234567"},
			ok: true,
		},
		{
			name: "someone else's contact",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: privateChat(), From: sender(),
				Contact: &tgbotapi.Contact{PhoneNumber: "998900000000", UserID: 99}}},
		},
		{
			name: "location",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: privateChat(), From: sender(),
				Location: &tgbotapi.Location{Latitude: 38.28, Longitude: 67.9}}},
			want: domain.Event{Kind: domain.EventLocation, ChatID: 42, SenderID: 42, SenderName: "Aziz Karimov",
				Private: true, Latitude: 38.28, Longitude: 67.9},
			ok: true,
		},
		{
			name: "group callback",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:   "cb-1",
				From: &tgbotapi.User{ID: 7, UserName: "chef"},
				Data: "accept_order_5",
				Message: &tgbotapi.Message{MessageID: 10, Chat: &tgbotapi.Chat{ID: -100, Type: "supergroup"},
					Caption: "🆕 New order #5"},
			}},
			want: domain.Event{Kind: domain.EventControl, ChatID: -100, SenderID: 7, SenderName: "chef",
				Data: "accept_order_5", CallbackID: "cb-1", MessageID: 10, MessageText: "🆕 New order #5"},
			ok: true,
		},
		{
			name:   "sticker",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: privateChat(), From: sender()}},
		},
		{
			name:   "channel post",
			update: tgbotapi.Update{ChannelPost: &tgbotapi.Message{Chat: privateChat(), Text: "news"}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, ok := telegram.ToEvent(testCase.update)
			assert.Equal(t, testCase.ok, ok)
			if testCase.ok {
				assert.Equal(t, testCase.want, got)
			}
		})
	}
}

func TestMessenger_SendMessage(t *testing.T) {
	t.Run("inline controls win", func(t *testing.T) {
		bot := mocks.NewBotClient(t)
		bot.On("Send", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
			msg, ok := c.(tgbotapi.MessageConfig)
			if !ok || msg.ChatID != 42 || msg.Text != "hi" {
				return false
			}
			markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
			return ok && len(markup.InlineKeyboard) == 1 &&
				*markup.InlineKeyboard[0][0].CallbackData == "accept_order_5"
		})).Return(tgbotapi.Message{MessageID: 77}, nil).Once()

		m := telegram.NewMessenger(bot)
		id, err := m.SendMessage(context.Background(), 42, "hi", &domain.Controls{
			Inline:   [][]domain.Button{{{Label: "✅ Accept", Data: "accept_order_5"}}},
			Keyboard: [][]domain.KeyButton{domain.KeyRow("ignored")},
		})

		require.NoError(t, err)
		assert.Equal(t, 77, id)
	})

	t.Run("reply keyboard with contact request", func(t *testing.T) {
		bot := mocks.NewBotClient(t)
		bot.On("Send", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
			msg, ok := c.(tgbotapi.MessageConfig)
			if !ok {
				return false
			}
			markup, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
			return ok && markup.ResizeKeyboard && len(markup.Keyboard) == 2 &&
				markup.Keyboard[0][0].RequestContact && markup.Keyboard[1][0].Text == "⬅️ Back"
		})).Return(tgbotapi.Message{MessageID: 78}, nil).Once()

		m := telegram.NewMessenger(bot)
		_, err := m.SendMessage(context.Background(), 42, "phone?", &domain.Controls{Keyboard: [][]domain.KeyButton{
			{{Label: "📞 Share phone number", RequestContact: true}},
			domain.KeyRow("⬅️ Back"),
		}})
		assert.NoError(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		bot := mocks.NewBotClient(t)
		bot.On("Send", mock.Anything).Return(tgbotapi.Message{}, errors.New("Forbidden: bot was blocked by the user")).Once()

		_, err := telegram.NewMessenger(bot).SendMessage(context.Background(), 42, "hi", nil)
		assert.ErrorContains(t, err, "blocked")
	})

	t.Run("cancelled context skips the call", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := telegram.NewMessenger(mocks.NewBotClient(t)).SendMessage(ctx, 42, "hi", nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMessenger_EditAndAnswer(t *testing.T) {
	bot := mocks.NewBotClient(t)
	bot.On("Request", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		edit, ok := c.(tgbotapi.EditMessageTextConfig)
		return ok && edit.ChatID == -100 && edit.MessageID == 10 && edit.ReplyMarkup == nil
	})).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()
	bot.On("Request", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		cb, ok := c.(tgbotapi.CallbackConfig)
		return ok && cb.CallbackQueryID == "cb-1" && cb.ShowAlert
	})).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()
	bot.On("Request", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		del, ok := c.(tgbotapi.DeleteMessageConfig)
		return ok && del.ChatID == 500 && del.MessageID == 900
	})).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()

	m := telegram.NewMessenger(bot)
	ctx := context.Background()
	assert.NoError(t, m.EditMessage(ctx, -100, 10, "❌ Order #5 cancelled.", domain.NoControls()))
	assert.NoError(t, m.AnswerControl(ctx, "cb-1", "Not allowed", true))
	assert.NoError(t, m.DeleteMessage(ctx, 500, 900))
}

func TestMessenger_AbandonsSlowCalls(t *testing.T) {
	release := make(chan time.Time)
	bot := mocks.NewBotClient(t)
	bot.On("Send", mock.Anything).WaitUntil(release).Return(tgbotapi.Message{MessageID: 1}, nil)
	bot.On("Request", mock.Anything).WaitUntil(release).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	t.Cleanup(func() { close(release) })

	m := telegram.NewMessenger(bot)

	t.Run("send", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := m.SendMessage(ctx, 42, "hi", nil)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("request", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := m.EditMessage(ctx, -100, 10, "text", nil)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("retries are bounded by the notify timeout", func(t *testing.T) {
		retrying := service.NewRetryingMessenger(m, 2, 100*time.Millisecond, 10*time.Millisecond)

		start := time.Now()
		_, err := retrying.SendMessage(context.Background(), 42, "hi", nil)

		assert.ErrorIs(t, err, domain.ErrNotifyFailed)
		assert.Less(t, time.Since(start), time.Second)
	})
}

type channelSource struct {
	updates chan tgbotapi.Update
	stopped chan struct{}
}

func (s *channelSource) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return s.updates
}

func (s *channelSource) StopReceivingUpdates() { close(s.stopped) }

func TestPoller_ForwardsUntilCancelled(t *testing.T) {
	source := &channelSource{updates: make(chan tgbotapi.Update, 2), stopped: make(chan struct{})}
	sink := mocks.NewEventSink(t)
	submitted := make(chan domain.Event, 1)
	sink.On("Submit", mock.AnythingOfType("domain.Event")).
		Run(func(args mock.Arguments) { submitted <- args.Get(0).(domain.Event) }).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- telegram.NewPoller(source, sink).Run(ctx) }()

	source.updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: privateChat(), From: sender()}}
	source.updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: privateChat(), From: sender(), Text: "hi"}}

	select {
	case ev := <-submitted:
		assert.Equal(t, "hi", ev.Text)
	case <-time.After(time.Second):
		t.Fatal("update was not forwarded")
	}

	cancel()
	require.NoError(t, <-done)
	<-source.stopped
}
