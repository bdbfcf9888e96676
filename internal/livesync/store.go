package livesync

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/log"
)

// Config holds live subscription settings.
type Config struct {
	// PollInterval makes watchers reload periodically in addition to hub
	// signals. It picks up writes made by other processes. Zero disables it.
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// Store decorates a ticket store with change publication and watchers.
type Store struct {
	dependency.Tickets
	hub *Hub
	c   *Config
}

var _ dependency.LiveTickets = (*Store)(nil)

// New wraps tickets. A nil hub gets a private one.
func New(tickets dependency.Tickets, hub *Hub, c *Config) *Store {
	if hub == nil {
		hub = NewHub()
	}
	if c == nil {
		c = &Config{}
	}
	return &Store{
		Tickets: tickets,
		hub:     hub,
		c:       c,
	}
}

func (s *Store) Hub() *Hub {
	return s.hub
}

func (s *Store) CreateTicket(ctx context.Context, ticket entity.TicketInsert) (string, error) {
	id, err := s.Tickets.CreateTicket(ctx, ticket)
	if err != nil {
		return "", err
	}
	s.hub.Publish(TicketTopic(id))
	return id, nil
}

func (s *Store) UpdateTicket(ctx context.Context, id string, upd entity.TicketUpdate) error {
	if err := s.Tickets.UpdateTicket(ctx, id, upd); err != nil {
		return err
	}
	s.hub.Publish(TicketTopic(id))
	return nil
}

func (s *Store) DeleteTicket(ctx context.Context, id string) error {
	if err := s.Tickets.DeleteTicket(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(TicketTopic(id))
	return nil
}

func (s *Store) AddComment(ctx context.Context, c entity.CommentInsert) (*entity.Comment, error) {
	comment, err := s.Tickets.AddComment(ctx, c)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(CommentsTopic(comment.TicketId))
	s.hub.Publish(TicketTopic(comment.TicketId))
	return comment, nil
}

// WatchTicket pushes the current ticket snapshot and every change to it.
// A missing ticket is a snapshot without a ticket, not an error.
func (s *Store) WatchTicket(ctx context.Context, id string) (dependency.Subscription[entity.TicketSnapshot], error) {
	load := func(ctx context.Context) (entity.TicketSnapshot, error) {
		t, err := s.Tickets.GetTicketById(ctx, id)
		if err != nil {
			if errors.Is(err, entity.ErrTicketNotFound) {
				return entity.TicketSnapshot{}, nil
			}
			return entity.TicketSnapshot{}, err
		}
		return entity.TicketSnapshot{Ticket: t}, nil
	}
	return watch(ctx, s, load, TicketTopic(id)), nil
}

// WatchComments pushes the ordered comment list of a ticket and every change to it.
func (s *Store) WatchComments(ctx context.Context, ticketId string) (dependency.Subscription[[]entity.Comment], error) {
	load := func(ctx context.Context) ([]entity.Comment, error) {
		comments, err := s.Tickets.ListComments(ctx, ticketId)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []entity.Comment{}
		}
		return comments, nil
	}
	return watch(ctx, s, load, CommentsTopic(ticketId)), nil
}

type subscription[T any] struct {
	updates chan T
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

func (sub *subscription[T]) Updates() <-chan T {
	return sub.updates
}

// Unsubscribe stops the watcher and waits for it to exit. Updates is
// closed when it returns.
func (sub *subscription[T]) Unsubscribe() {
	sub.once.Do(sub.cancel)
	<-sub.done
}

func watch[T any](ctx context.Context, s *Store, load func(context.Context) (T, error), topics ...string) *subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	sub := &subscription[T]{
		updates: make(chan T, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	// listen before the first load so no write slips between the two
	l := s.hub.listen(topics...)

	go func() {
		defer close(sub.done)
		defer close(sub.updates)
		defer s.hub.forget(l, topics...)

		var tick <-chan time.Time
		if s.c.PollInterval > 0 {
			ticker := time.NewTicker(s.c.PollInterval)
			defer ticker.Stop()
			tick = ticker.C
		}

		var (
			last    T
			emitted bool
		)
		reload := func() {
			v, err := load(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Default().ErrorContext(ctx, "can't load live snapshot",
						log.Err(err),
						slog.Any("topics", topics),
					)
				}
				return
			}
			if emitted && reflect.DeepEqual(last, v) {
				return
			}
			last, emitted = v, true
			deliver(ctx, sub.updates, v)
		}

		reload()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.signal:
				reload()
			case <-tick:
				reload()
			}
		}
	}()

	return sub
}

// deliver replaces an undelivered value with v.
func deliver[T any](ctx context.Context, ch chan T, v T) {
	if ctx.Err() != nil {
		return
	}
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
