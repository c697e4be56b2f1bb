package tests

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/mocks"
	"overcooked-bot/bot-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetryingMessenger_SendMessage(t *testing.T) {
	errTimeout := errors.New("i/o timeout")

	tests := []struct {
		name         string
		prepareMocks func(inner *mocks.Messenger)
		wantID       int
		wantErr      bool
	}{
		{
			name: "first_attempt",
			prepareMocks: func(inner *mocks.Messenger) {
				inner.On("SendMessage", mock.Anything, int64(42), "hi", (*domain.Controls)(nil)).Return(11, nil).Once()
			},
			wantID: 11,
		},
		{
			name: "recovers_after_failure",
			prepareMocks: func(inner *mocks.Messenger) {
				inner.On("SendMessage", mock.Anything, int64(42), "hi", (*domain.Controls)(nil)).Return(0, errTimeout).Twice()
				inner.On("SendMessage", mock.Anything, int64(42), "hi", (*domain.Controls)(nil)).Return(12, nil).Once()
			},
			wantID: 12,
		},
		{
			name: "gives_up",
			prepareMocks: func(inner *mocks.Messenger) {
				inner.On("SendMessage", mock.Anything, int64(42), "hi", (*domain.Controls)(nil)).Return(0, errTimeout).Times(3)
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			inner := mocks.NewMessenger(t)
			testCase.prepareMocks(inner)
			m := service.NewRetryingMessenger(inner, 3, time.Second, time.Millisecond)

			id, err := m.SendMessage(context.Background(), 42, "hi", nil)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrNotifyFailed)
				assert.Contains(t, err.Error(), "i/o timeout")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantID, id)
		})
	}
}

func TestRetryingMessenger_BoundsEachAttempt(t *testing.T) {
	inner := mocks.NewMessenger(t)
	inner.On("EditMessage", mock.Anything, int64(42), 7, "text", (*domain.Controls)(nil)).
		Return(func(ctx context.Context, _ int64, _ int, _ string, _ *domain.Controls) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
			return nil
		}).Once()

	m := service.NewRetryingMessenger(inner, 2, time.Second, time.Millisecond)
	assert.NoError(t, m.EditMessage(context.Background(), 42, 7, "text", nil))
}

func TestRetryingMessenger_StopsOnCancel(t *testing.T) {
	inner := mocks.NewMessenger(t)
	ctx, cancel := context.WithCancel(context.Background())
	inner.On("DeleteMessage", mock.Anything, int64(42), 7).
		Return(func(context.Context, int64, int) error {
			cancel()
			return errors.New("bad gateway")
		}).Once()

	m := service.NewRetryingMessenger(inner, 5, time.Second, time.Hour)
	err := m.DeleteMessage(ctx, 42, 7)

	assert.ErrorIs(t, err, domain.ErrNotifyFailed)
	inner.AssertNumberOfCalls(t, "DeleteMessage", 1)
}

func TestRetryingMessenger_AnswerControlIsNotRetried(t *testing.T) {
	inner := mocks.NewMessenger(t)
	inner.On("AnswerControl", mock.Anything, "cb", "ok", false).Return(errors.New("query is too old")).Once()

	m := service.NewRetryingMessenger(inner, 3, time.Second, time.Millisecond)
	assert.Error(t, m.AnswerControl(context.Background(), "cb", "ok", false))
}

func TestFeedbackQRGenerator(t *testing.T) {
	g := service.FeedbackQRGenerator{BaseURL: "https://example.com"}
	assert.Equal(t, "https://example.com/feedback?order_id=5", g.Link(5))

	png, err := g.Generate(5)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
