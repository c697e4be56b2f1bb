package chat

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"overcooked-bot/bot-svc/internal/domain"

	"golang.org/x/sync/semaphore"
)

type EventHandler interface {
	Handle(ctx context.Context, ev domain.Event) error
}

// Router feeds events to the handler one at a time per chat while different
// chats run concurrently, up to a fixed number of handlers in flight.
type Router struct {
	ctx     context.Context
	handler EventHandler
	sem     *semaphore.Weighted
	timeout time.Duration

	mu     sync.Mutex
	queues map[int64][]domain.Event // a key is present while its chat is being drained
	wg     sync.WaitGroup
}

func NewRouter(ctx context.Context, handler EventHandler, workers int, timeout time.Duration) *Router {
	if workers < 1 {
		workers = 1
	}
	return &Router{
		ctx:     ctx,
		handler: handler,
		sem:     semaphore.NewWeighted(int64(workers)),
		timeout: timeout,
		queues:  make(map[int64][]domain.Event),
	}
}

// Submit queues ev behind earlier events of the same chat.
func (r *Router) Submit(ev domain.Event) error {
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("router stopped: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	queue, draining := r.queues[ev.ChatID]
	r.queues[ev.ChatID] = append(queue, ev)
	if !draining {
		r.wg.Add(1)
		go r.drain(ev.ChatID)
	}
	return nil
}

// Wait blocks until every submitted event has been handled.
func (r *Router) Wait() {
	r.wg.Wait()
}

func (r *Router) drain(chatID int64) {
	defer r.wg.Done()
	for {
		r.mu.Lock()
		queue := r.queues[chatID]
		if len(queue) == 0 {
			delete(r.queues, chatID)
			r.mu.Unlock()
			return
		}
		ev := queue[0]
		r.queues[chatID] = queue[1:]
		r.mu.Unlock()

		r.process(ev)
	}
}

func (r *Router) process(ev domain.Event) {
	if err := r.sem.Acquire(r.ctx, 1); err != nil {
		log.Printf("[bot-svc] chat %d: dropping %s event: %v", ev.ChatID, ev.Kind, err)
		return
	}
	defer r.sem.Release(1)

	ctx := r.ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(r.ctx, r.timeout)
		defer cancel()
	}
	if err := r.handler.Handle(ctx, ev); err != nil {
		log.Printf("[bot-svc] chat %d: %s event failed: %v", ev.ChatID, ev.Kind, err)
	}
}
