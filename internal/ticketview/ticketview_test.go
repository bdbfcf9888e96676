package ticketview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/livesync"
	"github.com/jekabolt/grbpwr-tickets/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

var (
	admin = entity.Session{UserId: "admin-1", DisplayName: "Soporte", Role: entity.RoleAdmin}
	user  = entity.Session{UserId: "u-1", DisplayName: "Ana", Role: entity.RoleUser}
)

type testView struct {
	v         *View
	live      *livesync.Store
	db        *store.SQLStore
	nav       *mocks.Navigator
	presenter *mocks.Presenter
}

func newTestView(t *testing.T, session entity.Session) *testView {
	t.Helper()
	db, err := store.New(context.Background(), store.Config{
		Driver:      store.DriverSQLite,
		DSN:         ":memory:",
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	tv := &testView{
		live:      livesync.New(db.Tickets(), nil, nil),
		db:        db,
		nav:       mocks.NewNavigator(t),
		presenter: mocks.NewPresenter(t),
	}
	tv.v = New(tv.live, session, tv.nav, tv.presenter)
	t.Cleanup(tv.v.Unmount)
	return tv
}

func (tv *testView) createTicket(t *testing.T) string {
	t.Helper()
	id, err := tv.live.CreateTicket(context.Background(), entity.TicketInsert{
		Title:         "PC no enciende",
		Description:   "No prende tras corte de luz",
		Category:      entity.CategoryHardware,
		Location:      "Oficina de Partes",
		CreatedBy:     user.UserId,
		CreatedByName: user.DisplayName,
	})
	require.NoError(t, err)
	return id
}

// expectLeave returns a channel closed when the view navigates back.
func (tv *testView) expectLeave() <-chan struct{} {
	left := make(chan struct{})
	tv.nav.EXPECT().CanGoBack().Return(true).Once()
	tv.nav.EXPECT().GoBack().Run(func() { close(left) }).Return().Once()
	return left
}

func (tv *testView) waitState(t *testing.T, cond func(State) bool) State {
	t.Helper()
	require.Eventually(t, func() bool { return cond(tv.v.State()) }, waitFor, tick)
	return tv.v.State()
}

func loaded(s State) bool { return s.Loaded && s.Ticket != nil }

func TestMountMirrorsSnapshots(t *testing.T) {
	tv := newTestView(t, admin)
	ctx := context.Background()
	id := tv.createTicket(t)

	require.NoError(t, tv.v.Mount(ctx, id))
	s := tv.waitState(t, loaded)
	assert.Equal(t, id, s.TicketId)
	assert.Equal(t, entity.TicketStatusOpen, s.Ticket.Status)
	assert.Empty(t, s.Comments)
	require.NotNil(t, s.Display)
	assert.Equal(t, "Open", s.Display.Status.Label)

	require.NoError(t, tv.v.SetStatus(ctx, entity.TicketStatusInProgress))
	s = tv.waitState(t, func(s State) bool {
		return s.Ticket != nil && s.Ticket.Status == entity.TicketStatusInProgress
	})
	assert.Equal(t, entity.TextBlack, s.Display.Status.TextColor)
	assert.Equal(t, entity.PriorityMedium, s.Ticket.Priority)

	require.NoError(t, tv.v.SetPriority(ctx, entity.PriorityHigh))
	tv.waitState(t, func(s State) bool {
		return s.Ticket != nil && s.Ticket.Priority == entity.PriorityHigh &&
			s.Ticket.Status == entity.TicketStatusInProgress
	})

	// mounting the same ticket again keeps the subscriptions
	require.NoError(t, tv.v.Mount(ctx, id))
	assert.True(t, tv.v.State().Loaded)
}

func TestComments(t *testing.T) {
	tv := newTestView(t, user)
	ctx := context.Background()
	id := tv.createTicket(t)

	assert.ErrorIs(t, tv.v.AddComment(ctx, "hola"), ErrNotMounted)

	require.NoError(t, tv.v.Mount(ctx, id))
	tv.waitState(t, loaded)

	tv.presenter.EXPECT().Alert(mock.Anything, AlertTitleError, MsgEmptyComment).Return().Once()
	var ve *entity.ValidationError
	assert.ErrorAs(t, tv.v.AddComment(ctx, "   "), &ve)

	require.NoError(t, tv.v.AddComment(ctx, " Ya lo reviso "))
	require.NoError(t, tv.v.AddComment(ctx, "Listo"))

	s := tv.waitState(t, func(s State) bool { return len(s.Comments) == 2 })
	assert.Equal(t, "Ya lo reviso", s.Comments[0].Content)
	assert.Equal(t, "Ana", s.Comments[0].AuthorName)
	assert.Equal(t, user.UserId, s.Comments[0].AuthorId)
	assert.Equal(t, "Listo", s.Comments[1].Content)
	assert.False(t, tv.v.CommentBusy())
}

func TestNonAdminHasNoMenu(t *testing.T) {
	tv := newTestView(t, user)
	ctx := context.Background()
	id := tv.createTicket(t)

	require.NoError(t, tv.v.Mount(ctx, id))
	tv.waitState(t, loaded)

	assert.Empty(t, tv.v.Menu())
	assert.ErrorIs(t, tv.v.SetStatus(ctx, entity.TicketStatusResolved), ErrForbidden)
	assert.ErrorIs(t, tv.v.SetPriority(ctx, entity.PriorityLow), ErrForbidden)
	assert.ErrorIs(t, tv.v.Delete(ctx), ErrForbidden)
}

func TestAdminMenu(t *testing.T) {
	tv := newTestView(t, admin)
	ctx := context.Background()
	id := tv.createTicket(t)

	assert.Empty(t, tv.v.Menu())

	require.NoError(t, tv.v.Mount(ctx, id))
	tv.waitState(t, loaded)

	menu := tv.v.Menu()
	require.Len(t, menu, 6)
	assert.Equal(t, entity.TicketStatusResolved, *menu[0].Status)
	assert.Equal(t, entity.TicketStatusInProgress, *menu[1].Status)
	assert.Equal(t, ActionDelete, menu[5].Action)

	require.NoError(t, tv.v.Apply(ctx, menu[1]))
	tv.waitState(t, func(s State) bool {
		return s.Ticket != nil && s.Ticket.Status == entity.TicketStatusInProgress
	})

	menu = tv.v.Menu()
	require.Len(t, menu, 5)
	assert.Equal(t, entity.TicketStatusResolved, *menu[0].Status)
	for _, item := range menu {
		if item.Status != nil {
			assert.NotEqual(t, entity.TicketStatusInProgress, *item.Status)
		}
	}
}

func TestDeleteKeepsComments(t *testing.T) {
	tv := newTestView(t, admin)
	ctx := context.Background()
	id := tv.createTicket(t)

	require.NoError(t, tv.v.Mount(ctx, id))
	tv.waitState(t, loaded)
	require.NoError(t, tv.v.AddComment(ctx, "antes de borrar"))

	tv.presenter.EXPECT().Confirm(mock.Anything, ConfirmDeleteText, ConfirmDeleteBody).Return(false).Once()
	assert.ErrorIs(t, tv.v.Delete(ctx), ErrDeleteCanceled)
	_, err := tv.db.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)

	tv.presenter.EXPECT().Confirm(mock.Anything, ConfirmDeleteText, ConfirmDeleteBody).Return(true).Once()
	left := tv.expectLeave()
	require.NoError(t, tv.v.Delete(ctx))

	select {
	case <-left:
	case <-time.After(waitFor):
		t.Fatal("view did not navigate back")
	}
	tv.waitState(t, func(s State) bool { return s.Gone })

	_, err = tv.db.Tickets().GetTicketById(ctx, id)
	assert.ErrorIs(t, err, entity.ErrTicketNotFound)

	comments, err := tv.db.Tickets().ListComments(ctx, id)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestRemoteDeleteNavigatesBack(t *testing.T) {
	tv := newTestView(t, user)
	ctx := context.Background()
	id := tv.createTicket(t)

	require.NoError(t, tv.v.Mount(ctx, id))
	tv.waitState(t, loaded)

	left := tv.expectLeave()
	require.NoError(t, tv.live.DeleteTicket(ctx, id))

	select {
	case <-left:
	case <-time.After(waitFor):
		t.Fatal("view did not navigate back")
	}
	s := tv.v.State()
	assert.True(t, s.Gone)
	assert.Nil(t, s.Ticket)
}

func TestUpdateFailureKeepsState(t *testing.T) {
	tv := newTestView(t, admin)
	ctx := context.Background()
	id := tv.createTicket(t)

	require.NoError(t, tv.v.Mount(ctx, id))
	tv.waitState(t, loaded)

	// removed behind the live store, so the view still shows it
	require.NoError(t, tv.db.Tickets().DeleteTicket(ctx, id))

	tv.presenter.EXPECT().Alert(mock.Anything, AlertTitleError, MsgUpdateFailed).Return().Once()
	err := tv.v.SetStatus(ctx, entity.TicketStatusResolved)
	assert.ErrorIs(t, err, entity.ErrTicketNotFound)

	s := tv.v.State()
	require.NotNil(t, s.Ticket)
	assert.Equal(t, entity.TicketStatusOpen, s.Ticket.Status)
}

func TestUnmountStopsUpdates(t *testing.T) {
	tv := newTestView(t, admin)
	ctx := context.Background()
	id := tv.createTicket(t)

	require.NoError(t, tv.v.Mount(ctx, id))
	tv.waitState(t, loaded)
	tv.v.Unmount()

	assert.Zero(t, tv.live.Hub().Listeners(livesync.TicketTopic(id)))
	assert.Zero(t, tv.live.Hub().Listeners(livesync.CommentsTopic(id)))

	resolved := entity.TicketStatusResolved
	require.NoError(t, tv.live.UpdateTicket(ctx, id, entity.TicketUpdate{Status: &resolved}))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, entity.TicketStatusOpen, tv.v.State().Ticket.Status)

	assert.ErrorIs(t, tv.v.SetPriority(ctx, entity.PriorityLow), ErrNotMounted)
}

func TestRemountSwitchesTicket(t *testing.T) {
	tv := newTestView(t, user)
	ctx := context.Background()
	first := tv.createTicket(t)
	second := tv.createTicket(t)

	require.NoError(t, tv.v.Mount(ctx, first))
	tv.waitState(t, loaded)
	require.NoError(t, tv.v.AddComment(ctx, "en el primero"))
	tv.waitState(t, func(s State) bool { return len(s.Comments) == 1 })

	require.NoError(t, tv.v.Mount(ctx, second))
	s := tv.waitState(t, func(s State) bool { return loaded(s) && s.TicketId == second })
	assert.Equal(t, second, s.Ticket.Id)
	assert.Empty(t, s.Comments)
	assert.Zero(t, tv.live.Hub().Listeners(livesync.TicketTopic(first)))
}

func TestConcurrentMountsLeaveNoListeners(t *testing.T) {
	tv := newTestView(t, user)
	ctx := context.Background()
	a := tv.createTicket(t)
	b := tv.createTicket(t)

	listeners := func() int {
		hub := tv.live.Hub()
		return hub.Listeners(livesync.TicketTopic(a)) + hub.Listeners(livesync.CommentsTopic(a)) +
			hub.Listeners(livesync.TicketTopic(b)) + hub.Listeners(livesync.CommentsTopic(b))
	}

	for i := 0; i < 20; i++ {
		var wg sync.WaitGroup
		for _, id := range []string{a, b} {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				assert.NoError(t, tv.v.Mount(ctx, id))
			}(id)
		}
		wg.Wait()

		// exactly one mount survives
		assert.Equal(t, 2, listeners())

		tv.v.Unmount()
		require.Zero(t, listeners(), "iteration %d", i)
	}
}

func TestWatchStreamsStates(t *testing.T) {
	tv := newTestView(t, user)
	id := tv.createTicket(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	states := tv.v.Watch(ctx)
	require.NoError(t, tv.v.Mount(ctx, id))

	deadline := time.After(waitFor)
	for {
		select {
		case s := <-states:
			if loaded(s) {
				assert.Equal(t, id, s.Ticket.Id)
				cancel()
				for range states {
				}
				return
			}
		case <-deadline:
			t.Fatal("no loaded state streamed")
		}
	}
}

type staticSub[T any] struct {
	ch chan T
}

func newStaticSub[T any](v T) *staticSub[T] {
	ch := make(chan T, 1)
	ch <- v
	return &staticSub[T]{ch: ch}
}

func (s *staticSub[T]) Updates() <-chan T { return s.ch }

func (s *staticSub[T]) Unsubscribe() {
	select {
	case <-s.ch:
	default:
	}
	defer func() { _ = recover() }()
	close(s.ch)
}

func TestCommentInFlight(t *testing.T) {
	live := mocks.NewLiveTickets(t)
	presenter := mocks.NewPresenter(t)
	v := New(live, user, mocks.NewNavigator(t), presenter)
	ctx := context.Background()

	ticket := &entity.Ticket{Id: "t-1", TicketInsert: entity.TicketInsert{Status: entity.TicketStatusOpen}}
	live.EXPECT().WatchTicket(mock.Anything, "t-1").
		Return(newStaticSub(entity.TicketSnapshot{Ticket: ticket}), nil).Once()
	live.EXPECT().WatchComments(mock.Anything, "t-1").
		Return(newStaticSub([]entity.Comment{}), nil).Once()

	started := make(chan struct{})
	release := make(chan struct{})
	live.EXPECT().AddComment(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, c entity.CommentInsert) (*entity.Comment, error) {
			close(started)
			<-release
			return nil, errors.New("offline")
		}).Once()
	presenter.EXPECT().Alert(mock.Anything, AlertTitleError, MsgCommentFailed).Return().Once()

	require.NoError(t, v.Mount(ctx, "t-1"))
	defer v.Unmount()

	done := make(chan error, 1)
	go func() { done <- v.AddComment(ctx, "primero") }()

	<-started
	assert.True(t, v.CommentBusy())
	assert.ErrorIs(t, v.AddComment(ctx, "segundo"), ErrCommentInFlight)

	close(release)
	assert.Error(t, <-done)
	assert.False(t, v.CommentBusy())
}

func TestLoaded(t *testing.T) {
	tv := newTestView(t, user)
	ctx := context.Background()

	_, err := tv.v.Loaded(ctx)
	assert.ErrorIs(t, err, ErrNotMounted)

	id := tv.createTicket(t)
	_, err = tv.live.AddComment(ctx, entity.CommentInsert{TicketId: id, AuthorId: user.UserId, AuthorName: "Ana", Content: "hola"})
	require.NoError(t, err)

	require.NoError(t, tv.v.Mount(ctx, id))
	s, err := tv.v.Loaded(ctx)
	require.NoError(t, err)
	require.NotNil(t, s.Ticket)
	assert.Equal(t, id, s.Ticket.Id)
	assert.Len(t, s.Comments, 1)
}

func TestLoadedMissingTicket(t *testing.T) {
	tv := newTestView(t, user)
	left := tv.expectLeave()

	require.NoError(t, tv.v.Mount(context.Background(), "missing"))
	_, err := tv.v.Loaded(context.Background())
	assert.ErrorIs(t, err, entity.ErrTicketNotFound)

	select {
	case <-left:
	case <-time.After(waitFor):
		t.Fatal("view did not navigate back")
	}
}
