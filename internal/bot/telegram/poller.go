package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/bot/dialog"
	"github.com/dmitrijs2005/holidaybot/internal/logging"
)

// Handler consumes normalized inbound events. Implemented by dialog.Engine.
type Handler interface {
	HandleEvent(ctx context.Context, ev dialog.Event) error
}

// queueCapacity bounds the per-chat backlog; a full queue blocks the poll
// loop until the chat's worker catches up.
const queueCapacity = 16

type queuedUpdate struct {
	ev         dialog.Event
	callbackID string
}

// Poller drives the long-poll loop. Updates are dispatched to one worker per
// conversation: events for the same chat are handled sequentially in arrival
// order, including the callback acknowledgement preceding a button turn,
// while different chats proceed concurrently.
type Poller struct {
	client      *Client
	handler     Handler
	logger      logging.Logger
	pollTimeout time.Duration

	// retryDelay spaces out polls after transport errors; a test seam.
	retryDelay time.Duration

	mu     sync.Mutex
	queues map[int64]chan queuedUpdate
	wg     sync.WaitGroup
}

func NewPoller(client *Client, handler Handler, pollTimeout time.Duration, logger logging.Logger) *Poller {
	return &Poller{
		client:      client,
		handler:     handler,
		logger:      logger.With("module", "poller"),
		pollTimeout: pollTimeout,
		retryDelay:  time.Second,
		queues:      make(map[int64]chan queuedUpdate),
	}
}

// Run polls until ctx is cancelled, then waits for the chat workers to stop.
func (p *Poller) Run(ctx context.Context) error {
	defer p.wg.Wait()

	var offset int64

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn(ctx, "poll failed", "error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.retryDelay):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			ev, callbackID, ok := normalize(u)
			if !ok {
				continue
			}
			p.dispatch(ctx, queuedUpdate{ev: ev, callbackID: callbackID})
		}
	}
}

// dispatch enqueues the update on its chat's queue, starting the chat worker
// on first use. Enqueueing from the poll loop preserves batch order within
// a chat.
func (p *Poller) dispatch(ctx context.Context, q queuedUpdate) {
	p.mu.Lock()
	ch, ok := p.queues[q.ev.ChatID]
	if !ok {
		ch = make(chan queuedUpdate, queueCapacity)
		p.queues[q.ev.ChatID] = ch
		p.wg.Add(1)
		go p.chatWorker(ctx, ch)
	}
	p.mu.Unlock()

	select {
	case ch <- q:
	case <-ctx.Done():
	}
}

// chatWorker drains one conversation's queue until ctx is cancelled.
func (p *Poller) chatWorker(ctx context.Context, ch chan queuedUpdate) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case q := <-ch:
			p.process(ctx, q)
		}
	}
}

func (p *Poller) process(ctx context.Context, q queuedUpdate) {
	if q.callbackID != "" {
		if err := p.client.AnswerCallbackQuery(ctx, q.callbackID); err != nil {
			p.logger.Warn(ctx, "answer callback failed", "error", err.Error())
		}
	}
	if err := p.handler.HandleEvent(ctx, q.ev); err != nil {
		p.logger.Error(ctx, "turn failed", "chat_id", q.ev.ChatID, "error", err.Error())
	}
}

// normalize maps one raw update onto an engine event. Updates without a
// usable message or callback are skipped.
func normalize(u Update) (dialog.Event, string, bool) {
	if u.Message != nil && u.Message.From != nil {
		return dialog.Event{
			ChatID:   u.Message.Chat.ID,
			UserID:   u.Message.From.ID,
			Username: u.Message.From.Username,
			Kind:     dialog.KindText,
			Text:     u.Message.Text,
		}, "", true
	}

	if u.CallbackQuery != nil && u.CallbackQuery.Message != nil {
		return dialog.Event{
			ChatID:   u.CallbackQuery.Message.Chat.ID,
			UserID:   u.CallbackQuery.From.ID,
			Username: u.CallbackQuery.From.Username,
			Kind:     dialog.KindButton,
			Token:    u.CallbackQuery.Data,
		}, u.CallbackQuery.ID, true
	}

	return dialog.Event{}, "", false
}
