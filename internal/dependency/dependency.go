package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --name "Tickets|LiveTickets|FileStore|ImagePicker|Navigator|Presenter" --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	// Tickets is the document store for tickets and their comment subcollection.
	Tickets interface {
		// CreateTicket inserts a ticket and returns the store-assigned id.
		// Creation and update timestamps are assigned by the store.
		CreateTicket(ctx context.Context, ticket entity.TicketInsert) (string, error)
		// GetTicketById returns entity.ErrTicketNotFound when the ticket does not exist.
		GetTicketById(ctx context.Context, id string) (*entity.Ticket, error)
		// UpdateTicket applies a partial update and refreshes the update timestamp.
		UpdateTicket(ctx context.Context, id string, upd entity.TicketUpdate) error
		// DeleteTicket removes the ticket document only. Comments are left in place.
		DeleteTicket(ctx context.Context, id string) error
		// AddComment appends a comment and touches the ticket update timestamp.
		AddComment(ctx context.Context, c entity.CommentInsert) (*entity.Comment, error)
		// ListComments returns comments ordered by creation time ascending.
		ListComments(ctx context.Context, ticketId string) ([]entity.Comment, error)
		// DeleteOrphanComments removes comments whose ticket no longer exists.
		DeleteOrphanComments(ctx context.Context) (int64, error)
	}

	// Subscription is a live stream of immutable snapshots. Unsubscribe must be
	// called on teardown; Updates is closed afterwards.
	Subscription[T any] interface {
		Updates() <-chan T
		Unsubscribe()
	}

	// LiveTickets is the document store with real-time change subscriptions.
	LiveTickets interface {
		Tickets
		WatchTicket(ctx context.Context, id string) (Subscription[entity.TicketSnapshot], error)
		WatchComments(ctx context.Context, ticketId string) (Subscription[[]entity.Comment], error)
	}

	Repository interface {
		ContextStore
		Tickets() Tickets
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		Rebind(query string) string
	}

	// FileStore is the object storage for uploaded ticket images.
	FileStore interface {
		// Upload stores a blob under path.
		Upload(ctx context.Context, path string, blob []byte, contentType string) error
		// URL resolves a publicly fetchable URL for path.
		URL(path string) string
		// Delete removes objects by path.
		Delete(ctx context.Context, paths ...string) error
	}

	// ImagePicker is the platform capability to select a local image.
	ImagePicker interface {
		RequestPermission(ctx context.Context) error
		Pick(ctx context.Context) (*entity.PickedImage, error)
	}

	Navigator interface {
		GoBack()
		CanGoBack() bool
	}

	// Presenter surfaces user-visible messages and prompts.
	Presenter interface {
		Alert(ctx context.Context, title, message string)
		// Notify shows a transient notification; the returned channel is
		// closed when the user acknowledges it.
		Notify(ctx context.Context, message string) <-chan struct{}
		// Confirm blocks until the user answers a yes/no prompt.
		Confirm(ctx context.Context, title, message string) bool
	}
)
