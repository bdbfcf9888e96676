package store

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*SQLStore, func()) {
	t.Helper()
	db, err := New(context.Background(), Config{
		Driver:      DriverSQLite,
		DSN:         ":memory:",
		Automigrate: true,
	})
	require.NoError(t, err)
	return db, db.Close
}

func newTicket() entity.TicketInsert {
	return entity.TicketInsert{
		Title:         " PC no enciende ",
		Description:   "No prende tras corte de luz",
		Category:      entity.CategoryHardware,
		Location:      "Oficina de Partes",
		CreatedBy:     "u-1",
		CreatedByName: "Ana",
	}
}

func TestTicketStore_CreateAndGet(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	id, err := store.Tickets().CreateTicket(ctx, newTicket())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	ticket, err := store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, ticket.Id)
	assert.Equal(t, "PC no enciende", ticket.Title)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
	assert.Equal(t, entity.PriorityMedium, ticket.Priority)
	assert.Equal(t, entity.CategoryHardware, ticket.Category)
	assert.Equal(t, "Ana", ticket.CreatedByName)
	assert.Nil(t, ticket.ImageURL)
	assert.False(t, ticket.CreatedAt.IsZero())
	assert.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
}

func TestTicketStore_CreateWithImage(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	ti := newTicket()
	u := "https://files.example.com/tickets/1700000000000_ab12cd34.jpg"
	ti.ImageURL = &u

	id, err := store.Tickets().CreateTicket(ctx, ti)
	require.NoError(t, err)

	ticket, err := store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, ticket.ImageURL)
	assert.Equal(t, u, *ticket.ImageURL)
}

func TestTicketStore_CreateRejectsInvalid(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ti := newTicket()
	ti.Location = "  "
	_, err := store.Tickets().CreateTicket(context.Background(), ti)
	var ve *entity.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestTicketStore_GetMissing(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := store.Tickets().GetTicketById(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrTicketNotFound)
}

func TestTicketStore_UpdateTicket(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	id, err := store.Tickets().CreateTicket(ctx, newTicket())
	require.NoError(t, err)
	before, err := store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	resolved := entity.TicketStatusResolved
	require.NoError(t, store.Tickets().UpdateTicket(ctx, id, entity.TicketUpdate{Status: &resolved}))

	after, err := store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusResolved, after.Status)
	assert.Equal(t, entity.PriorityMedium, after.Priority)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.CreatedAt, after.CreatedAt)

	high := entity.PriorityHigh
	require.NoError(t, store.Tickets().UpdateTicket(ctx, id, entity.TicketUpdate{Priority: &high}))
	after, err = store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityHigh, after.Priority)
	assert.Equal(t, entity.TicketStatusResolved, after.Status)

	t.Run("missing ticket", func(t *testing.T) {
		err := store.Tickets().UpdateTicket(ctx, "missing", entity.TicketUpdate{Priority: &high})
		assert.ErrorIs(t, err, entity.ErrTicketNotFound)
	})

	t.Run("invalid value", func(t *testing.T) {
		bad := entity.TicketStatus("archived")
		err := store.Tickets().UpdateTicket(ctx, id, entity.TicketUpdate{Status: &bad})
		assert.Error(t, err)
	})
}

func TestTicketStore_Comments(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	id, err := store.Tickets().CreateTicket(ctx, newTicket())
	require.NoError(t, err)
	before, err := store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	contents := []string{"first", "second", "third"}
	for _, c := range contents {
		_, err := store.Tickets().AddComment(ctx, entity.CommentInsert{
			TicketId:   id,
			AuthorId:   "u-2",
			AuthorName: "Tech",
			Content:    "  " + c + " ",
		})
		require.NoError(t, err)
	}

	comments, err := store.Tickets().ListComments(ctx, id)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i, c := range comments {
		assert.Equal(t, contents[i], c.Content)
		assert.Equal(t, id, c.TicketId)
		assert.Equal(t, "Tech", c.AuthorName)
	}

	after, err := store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

	t.Run("empty content", func(t *testing.T) {
		_, err := store.Tickets().AddComment(ctx, entity.CommentInsert{TicketId: id, AuthorId: "u-2", Content: " "})
		assert.Error(t, err)
	})

	t.Run("missing ticket", func(t *testing.T) {
		_, err := store.Tickets().AddComment(ctx, entity.CommentInsert{TicketId: "missing", AuthorId: "u-2", Content: "hi"})
		assert.ErrorIs(t, err, entity.ErrTicketNotFound)
	})

	t.Run("no comments", func(t *testing.T) {
		comments, err := store.Tickets().ListComments(ctx, "other")
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestTicketStore_DeleteLeavesComments(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	id, err := store.Tickets().CreateTicket(ctx, newTicket())
	require.NoError(t, err)
	_, err = store.Tickets().AddComment(ctx, entity.CommentInsert{TicketId: id, AuthorId: "u-1", Content: "hola"})
	require.NoError(t, err)

	require.NoError(t, store.Tickets().DeleteTicket(ctx, id))

	_, err = store.Tickets().GetTicketById(ctx, id)
	assert.ErrorIs(t, err, entity.ErrTicketNotFound)

	comments, err := store.Tickets().ListComments(ctx, id)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	assert.ErrorIs(t, store.Tickets().DeleteTicket(ctx, id), entity.ErrTicketNotFound)

	n, err := store.Tickets().DeleteOrphanComments(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	comments, err = store.Tickets().ListComments(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestTicketStore_Tx(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var id string
	err := store.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		assert.True(t, rep.InTx())
		var err error
		id, err = rep.Tickets().CreateTicket(ctx, newTicket())
		if err != nil {
			return err
		}
		_, err = rep.Tickets().AddComment(ctx, entity.CommentInsert{TicketId: id, AuthorId: "u-1", Content: "in tx"})
		return err
	})
	require.NoError(t, err)

	comments, err := store.Tickets().ListComments(ctx, id)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestStore_Ping(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, store.Ping(context.Background()))
	assert.False(t, store.IsErrorRepeat(assert.AnError))
}

func TestBind(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	query, args, err := bind(store.DB(), `SELECT id FROM ticket_comment WHERE ticket_id = :ticketId AND author_id = :authorId`, map[string]any{
		"ticketId": "t-1",
		"authorId": "u-1",
	})
	require.NoError(t, err)
	assert.Equal(t, `SELECT id FROM ticket_comment WHERE ticket_id = ? AND author_id = ?`, query)
	assert.Equal(t, []any{"t-1", "u-1"}, args)
}

func TestTicketStore_RoundTripColumns(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	ti := newTicket()
	u := "https://files.example.com/tickets/1700000000000_ab12cd34.jpg"
	ti.ImageURL = &u
	ti.Description = "  Pantalla negra  "
	ti.Category = entity.CategoryNetwork

	id, err := store.Tickets().CreateTicket(ctx, ti)
	require.NoError(t, err)
	other, err := store.Tickets().CreateTicket(ctx, newTicket())
	require.NoError(t, err)

	ticket, err := store.Tickets().GetTicketById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, ticket.Id)
	assert.Equal(t, "PC no enciende", ticket.Title)
	assert.Equal(t, "Pantalla negra", ticket.Description)
	assert.Equal(t, entity.CategoryNetwork, ticket.Category)
	assert.Equal(t, entity.PriorityMedium, ticket.Priority)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "Oficina de Partes", ticket.Location)
	assert.Equal(t, "u-1", ticket.CreatedBy)
	assert.Equal(t, "Ana", ticket.CreatedByName)
	require.NotNil(t, ticket.ImageURL)
	assert.Equal(t, u, *ticket.ImageURL)
	assert.False(t, ticket.CreatedAt.IsZero())
	assert.False(t, ticket.UpdatedAt.IsZero())

	added, err := store.Tickets().AddComment(ctx, entity.CommentInsert{TicketId: id, AuthorId: "u-2", AuthorName: "Tech", Content: "revisando"})
	require.NoError(t, err)
	_, err = store.Tickets().AddComment(ctx, entity.CommentInsert{TicketId: other, AuthorId: "u-3", AuthorName: "Otro", Content: "no es mio"})
	require.NoError(t, err)

	comments, err := store.Tickets().ListComments(ctx, id)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	c := comments[0]
	assert.Equal(t, added.Id, c.Id)
	assert.Equal(t, id, c.TicketId)
	assert.Equal(t, "u-2", c.AuthorId)
	assert.Equal(t, "Tech", c.AuthorName)
	assert.Equal(t, "revisando", c.Content)
	assert.Equal(t, added.CreatedAt, c.CreatedAt)
}
