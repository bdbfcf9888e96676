// Package ticketview implements the ticket detail screen: it keeps a live
// copy of one ticket and its comments and runs the comment and admin actions.
package ticketview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCommentInFlight = errors.New("comment already being added")
	ErrForbidden       = errors.New("admin role required")
	ErrNotMounted      = errors.New("no ticket mounted")
	ErrDeleteCanceled  = errors.New("ticket deletion canceled")
)

const (
	AlertTitleError = "Error"

	MsgEmptyComment   = "Write a comment first."
	MsgCommentFailed  = "The comment could not be added."
	MsgUpdateFailed   = "The ticket could not be updated."
	MsgDeleteFailed   = "The ticket could not be deleted."
	ConfirmDeleteText = "Delete ticket"
	ConfirmDeleteBody = "This action cannot be undone. Delete the ticket?"
)

// View drives one ticket detail screen.
type View struct {
	store     dependency.LiveTickets
	session   entity.Session
	nav       dependency.Navigator
	presenter dependency.Presenter

	mu          sync.Mutex
	state       State
	m           *mount
	commentBusy bool
	watchers    map[*watcher]struct{}
}

type mount struct {
	id         string
	cancel     context.CancelFunc
	ticketSub  dependency.Subscription[entity.TicketSnapshot]
	commentSub dependency.Subscription[[]entity.Comment]
	wg         sync.WaitGroup
	left       bool
}

type watcher struct {
	ch chan State
}

func New(
	store dependency.LiveTickets,
	session entity.Session,
	nav dependency.Navigator,
	presenter dependency.Presenter,
) *View {
	return &View{
		store:     store,
		session:   session,
		nav:       nav,
		presenter: presenter,
		watchers:  make(map[*watcher]struct{}),
	}
}

// Mount subscribes to the ticket and its comments. Mounting the ticket
// already shown is a no-op; mounting another one replaces the subscriptions.
func (v *View) Mount(ctx context.Context, ticketId string) error {
	v.mu.Lock()
	if v.m != nil && v.m.id == ticketId {
		v.mu.Unlock()
		return nil
	}
	v.mu.Unlock()
	v.Unmount()

	ctx, cancel := context.WithCancel(ctx)
	m := &mount{id: ticketId, cancel: cancel}

	var g errgroup.Group
	g.Go(func() error {
		sub, err := v.store.WatchTicket(ctx, ticketId)
		if err != nil {
			return fmt.Errorf("can't watch ticket: %w", err)
		}
		m.ticketSub = sub
		return nil
	})
	g.Go(func() error {
		sub, err := v.store.WatchComments(ctx, ticketId)
		if err != nil {
			return fmt.Errorf("can't watch comments: %w", err)
		}
		m.commentSub = sub
		return nil
	})
	if err := g.Wait(); err != nil {
		m.stop()
		return err
	}

	// a concurrent Mount may have installed its own mount meanwhile; the
	// last one to get here wins and the replaced one is stopped
	v.mu.Lock()
	replaced := v.m
	v.m = m
	v.state = State{TicketId: ticketId, Comments: []entity.Comment{}}
	v.broadcastLocked()
	v.mu.Unlock()
	if replaced != nil {
		replaced.stop()
	}

	m.wg.Add(2)
	go func() {
		defer m.wg.Done()
		for snap := range m.ticketSub.Updates() {
			v.applyTicket(ctx, m, snap)
		}
	}()
	go func() {
		defer m.wg.Done()
		for comments := range m.commentSub.Updates() {
			v.applyComments(m, comments)
		}
	}()
	return nil
}

// Unmount tears both subscriptions down. No state change happens after it
// returns.
func (v *View) Unmount() {
	v.mu.Lock()
	m := v.m
	v.m = nil
	v.mu.Unlock()
	if m != nil {
		m.stop()
	}
}

func (m *mount) stop() {
	m.cancel()
	if m.ticketSub != nil {
		m.ticketSub.Unsubscribe()
	}
	if m.commentSub != nil {
		m.commentSub.Unsubscribe()
	}
	m.wg.Wait()
}

func (v *View) applyTicket(ctx context.Context, m *mount, snap entity.TicketSnapshot) {
	v.mu.Lock()
	if v.m != m {
		v.mu.Unlock()
		return
	}
	v.state.Loaded = true
	v.state.Ticket = snap.Ticket
	v.state.Display = displayOf(snap.Ticket)
	gone := !snap.Exists()
	if gone {
		v.state.Gone = true
	}
	v.broadcastLocked()
	v.mu.Unlock()

	if gone {
		slog.Default().InfoContext(ctx, "viewed ticket is gone", log.TicketId(m.id))
		v.leave(m)
	}
}

func (v *View) applyComments(m *mount, comments []entity.Comment) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.m != m {
		return
	}
	v.state.Comments = comments
	v.state.CommentsLoaded = true
	v.broadcastLocked()
}

// leave navigates back once per mount.
func (v *View) leave(m *mount) {
	v.mu.Lock()
	if m.left {
		v.mu.Unlock()
		return
	}
	m.left = true
	v.mu.Unlock()

	if v.nav.CanGoBack() {
		v.nav.GoBack()
	}
}

// State returns a copy of the current view state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

// Watch streams view states, starting with the current one. A slow reader
// only sees the newest state. The stream ends when ctx is done.
func (v *View) Watch(ctx context.Context) <-chan State {
	w := &watcher{ch: make(chan State, 1)}
	out := make(chan State)

	v.mu.Lock()
	v.watchers[w] = struct{}{}
	w.ch <- v.state.clone()
	v.mu.Unlock()

	go func() {
		defer close(out)
		defer func() {
			v.mu.Lock()
			delete(v.watchers, w)
			v.mu.Unlock()
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-w.ch:
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Loaded blocks until the first ticket snapshot and comment list of the
// mounted ticket arrived. A missing ticket yields entity.ErrTicketNotFound.
func (v *View) Loaded(ctx context.Context) (State, error) {
	if _, err := v.mounted(); err != nil {
		return State{}, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for st := range v.Watch(ctx) {
		if st.Gone {
			return st, entity.ErrTicketNotFound
		}
		if st.Loaded && st.CommentsLoaded {
			return st, nil
		}
	}
	return State{}, ctx.Err()
}

func (v *View) broadcastLocked() {
	for w := range v.watchers {
		s := v.state.clone()
		select {
		case <-w.ch:
		default:
		}
		w.ch <- s
	}
}

func (v *View) mounted() (*mount, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.m == nil {
		return nil, ErrNotMounted
	}
	return v.m, nil
}

// AddComment appends a comment as the session user. A nil error means the
// input can be cleared.
func (v *View) AddComment(ctx context.Context, content string) error {
	v.mu.Lock()
	if v.m == nil {
		v.mu.Unlock()
		return ErrNotMounted
	}
	if v.commentBusy {
		v.mu.Unlock()
		return ErrCommentInFlight
	}
	ticketId := v.m.id
	content = strings.TrimSpace(content)
	if content == "" {
		v.mu.Unlock()
		v.presenter.Alert(ctx, AlertTitleError, MsgEmptyComment)
		return &entity.ValidationError{Field: "content", Message: "comment is empty"}
	}
	v.commentBusy = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.commentBusy = false
		v.mu.Unlock()
	}()

	_, err := v.store.AddComment(ctx, entity.CommentInsert{
		TicketId:   ticketId,
		AuthorId:   v.session.UserId,
		AuthorName: v.session.Name(),
		Content:    content,
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't add comment",
			log.Err(err),
			log.TicketId(ticketId),
		)
		v.presenter.Alert(ctx, AlertTitleError, MsgCommentFailed)
		return err
	}
	return nil
}

// CommentBusy reports whether a comment is being added.
func (v *View) CommentBusy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.commentBusy
}

// Menu returns the admin menu for the current ticket. Non-admin sessions
// always get an empty menu.
func (v *View) Menu() []MenuItem {
	if !v.session.IsAdmin() {
		return nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.m == nil || v.state.Ticket == nil {
		return nil
	}
	return buildMenu(v.state.Ticket)
}

// Apply runs a menu item.
func (v *View) Apply(ctx context.Context, item MenuItem) error {
	switch item.Action {
	case ActionSetStatus:
		if item.Status == nil {
			return &entity.ValidationError{Field: "status", Message: "status is required"}
		}
		return v.SetStatus(ctx, *item.Status)
	case ActionSetPriority:
		if item.Priority == nil {
			return &entity.ValidationError{Field: "priority", Message: "priority is required"}
		}
		return v.SetPriority(ctx, *item.Priority)
	case ActionDelete:
		return v.Delete(ctx)
	}
	return &entity.ValidationError{Field: "action", Message: fmt.Sprintf("unknown action: %s", item.Action)}
}

func (v *View) SetStatus(ctx context.Context, status entity.TicketStatus) error {
	return v.update(ctx, entity.TicketUpdate{Status: &status})
}

func (v *View) SetPriority(ctx context.Context, priority entity.TicketPriority) error {
	return v.update(ctx, entity.TicketUpdate{Priority: &priority})
}

// Update applies a partial status/priority change.
func (v *View) Update(ctx context.Context, upd entity.TicketUpdate) error {
	return v.update(ctx, upd)
}

func (v *View) update(ctx context.Context, upd entity.TicketUpdate) error {
	if !v.session.IsAdmin() {
		return ErrForbidden
	}
	m, err := v.mounted()
	if err != nil {
		return err
	}
	if err := entity.ValidateTicketUpdate(upd); err != nil {
		return err
	}

	if err := v.store.UpdateTicket(ctx, m.id, upd); err != nil {
		slog.Default().ErrorContext(ctx, "can't update ticket",
			log.Err(err),
			log.TicketId(m.id),
		)
		v.presenter.Alert(ctx, AlertTitleError, MsgUpdateFailed)
		return err
	}
	return nil
}

// Delete asks for confirmation and deletes the ticket. Its comments stay.
func (v *View) Delete(ctx context.Context) error {
	if !v.session.IsAdmin() {
		return ErrForbidden
	}
	m, err := v.mounted()
	if err != nil {
		return err
	}

	if !v.presenter.Confirm(ctx, ConfirmDeleteText, ConfirmDeleteBody) {
		return ErrDeleteCanceled
	}

	if err := v.store.DeleteTicket(ctx, m.id); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete ticket",
			log.Err(err),
			log.TicketId(m.id),
		)
		v.presenter.Alert(ctx, AlertTitleError, MsgDeleteFailed)
		return err
	}

	slog.Default().InfoContext(ctx, "ticket deleted",
		log.TicketId(m.id),
		slog.String("user_id", v.session.UserId),
	)
	v.leave(m)
	return nil
}
