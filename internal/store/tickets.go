package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

type ticketStore struct {
	*SQLStore
}

// Tickets returns an object implementing the ticket document store.
func (ms *SQLStore) Tickets() dependency.Tickets {
	return &ticketStore{
		SQLStore: ms,
	}
}

type ticketRow struct {
	Id            string         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Category      string         `db:"category"`
	Priority      string         `db:"priority"`
	Status        string         `db:"status"`
	Location      string         `db:"location"`
	CreatedBy     string         `db:"created_by"`
	CreatedByName string         `db:"created_by_name"`
	ImageURL      sql.NullString `db:"image_url"`
	CreatedAt     int64          `db:"created_at"`
	UpdatedAt     int64          `db:"updated_at"`
}

func (r ticketRow) toEntity() *entity.Ticket {
	t := &entity.Ticket{
		Id:        r.Id,
		CreatedAt: fromMillis(r.CreatedAt),
		UpdatedAt: fromMillis(r.UpdatedAt),
		TicketInsert: entity.TicketInsert{
			Title:         r.Title,
			Description:   r.Description,
			Category:      entity.TicketCategory(r.Category),
			Priority:      entity.TicketPriority(r.Priority),
			Status:        entity.TicketStatus(r.Status),
			Location:      r.Location,
			CreatedBy:     r.CreatedBy,
			CreatedByName: r.CreatedByName,
		},
	}
	if r.ImageURL.Valid {
		u := r.ImageURL.String
		t.ImageURL = &u
	}
	return t
}

type commentRow struct {
	Id         string `db:"id"`
	TicketId   string `db:"ticket_id"`
	AuthorId   string `db:"author_id"`
	AuthorName string `db:"author_name"`
	Content    string `db:"content"`
	CreatedAt  int64  `db:"created_at"`
}

func (r commentRow) toEntity() entity.Comment {
	return entity.Comment{
		Id:        r.Id,
		CreatedAt: fromMillis(r.CreatedAt),
		CommentInsert: entity.CommentInsert{
			TicketId:   r.TicketId,
			AuthorId:   r.AuthorId,
			AuthorName: r.AuthorName,
			Content:    r.Content,
		},
	}
}

// inTx runs f in the current transaction, or in a new one.
func (s *ticketStore) inTx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	if s.InTx() {
		return f(ctx, s.SQLStore)
	}
	return s.Tx(ctx, f)
}

func newId() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("can't generate id: %w", err)
	}
	return id.String(), nil
}

func (s *ticketStore) CreateTicket(ctx context.Context, ticket entity.TicketInsert) (string, error) {
	if err := entity.ValidateTicketInsert(&ticket); err != nil {
		return "", err
	}

	id, err := newId()
	if err != nil {
		return "", err
	}

	now := toMillis(s.Now())
	var imageURL sql.NullString
	if ticket.ImageURL != nil {
		imageURL = sql.NullString{String: *ticket.ImageURL, Valid: true}
	}

	query := `
		INSERT INTO ticket
			(id, title, description, category, priority, status, location,
			 created_by, created_by_name, image_url, created_at, updated_at)
		VALUES
			(:id, :title, :description, :category, :priority, :status, :location,
			 :createdBy, :createdByName, :imageUrl, :createdAt, :updatedAt)`

	_, err = ExecNamed(ctx, s.DB(), query, map[string]any{
		"id":            id,
		"title":         ticket.Title,
		"description":   ticket.Description,
		"category":      string(ticket.Category),
		"priority":      string(ticket.Priority),
		"status":        string(ticket.Status),
		"location":      ticket.Location,
		"createdBy":     ticket.CreatedBy,
		"createdByName": ticket.CreatedByName,
		"imageUrl":      imageURL,
		"createdAt":     now,
		"updatedAt":     now,
	})
	if err != nil {
		return "", fmt.Errorf("can't insert ticket: %w", err)
	}
	return id, nil
}

func (s *ticketStore) GetTicketById(ctx context.Context, id string) (*entity.Ticket, error) {
	query := `
		SELECT id, title, description, category, priority, status, location,
		       created_by, created_by_name, image_url, created_at, updated_at
		FROM ticket
		WHERE id = :id`

	row, err := QueryNamedOne[ticketRow](ctx, s.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrTicketNotFound
		}
		return nil, fmt.Errorf("can't get ticket: %w", err)
	}
	return row.toEntity(), nil
}

func (s *ticketStore) UpdateTicket(ctx context.Context, id string, upd entity.TicketUpdate) error {
	if err := entity.ValidateTicketUpdate(upd); err != nil {
		return err
	}

	set := []string{"updated_at = :updatedAt"}
	params := map[string]any{
		"id":        id,
		"updatedAt": toMillis(s.Now()),
	}
	if upd.Status != nil {
		set = append(set, "status = :status")
		params["status"] = string(*upd.Status)
	}
	if upd.Priority != nil {
		set = append(set, "priority = :priority")
		params["priority"] = string(*upd.Priority)
	}

	query := fmt.Sprintf(`UPDATE ticket SET %s WHERE id = :id`, strings.Join(set, ", "))
	n, err := ExecNamed(ctx, s.DB(), query, params)
	if err != nil {
		return fmt.Errorf("can't update ticket: %w", err)
	}
	if n == 0 {
		// mysql reports changed rows, so an identical update within the same
		// millisecond affects nothing even though the ticket exists
		if _, err := s.GetTicketById(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *ticketStore) DeleteTicket(ctx context.Context, id string) error {
	n, err := ExecNamed(ctx, s.DB(), `DELETE FROM ticket WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete ticket: %w", err)
	}
	if n == 0 {
		return entity.ErrTicketNotFound
	}
	return nil
}

func (s *ticketStore) AddComment(ctx context.Context, c entity.CommentInsert) (*entity.Comment, error) {
	if err := entity.ValidateCommentInsert(&c); err != nil {
		return nil, err
	}

	id, err := newId()
	if err != nil {
		return nil, err
	}

	var created time.Time
	err = s.inTx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		created = rep.Now()
		now := toMillis(created)

		// touching the parent doubles as an existence check
		n, err := ExecNamed(ctx, rep.DB(), `UPDATE ticket SET updated_at = :updatedAt WHERE id = :id`, map[string]any{
			"id":        c.TicketId,
			"updatedAt": now,
		})
		if err != nil {
			return fmt.Errorf("can't touch ticket: %w", err)
		}
		if n == 0 {
			if _, err := rep.Tickets().GetTicketById(ctx, c.TicketId); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO ticket_comment (id, ticket_id, author_id, author_name, content, created_at)
			VALUES (:id, :ticketId, :authorId, :authorName, :content, :createdAt)`
		_, err = ExecNamed(ctx, rep.DB(), query, map[string]any{
			"id":         id,
			"ticketId":   c.TicketId,
			"authorId":   c.AuthorId,
			"authorName": c.AuthorName,
			"content":    c.Content,
			"createdAt":  now,
		})
		if err != nil {
			return fmt.Errorf("can't insert comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entity.Comment{
		Id:            id,
		CreatedAt:     fromMillis(toMillis(created)),
		CommentInsert: c,
	}, nil
}

func (s *ticketStore) ListComments(ctx context.Context, ticketId string) ([]entity.Comment, error) {
	query := `
		SELECT id, ticket_id, author_id, author_name, content, created_at
		FROM ticket_comment
		WHERE ticket_id = :ticketId
		ORDER BY created_at ASC, id ASC`

	rows, err := QueryListNamed[commentRow](ctx, s.DB(), query, map[string]any{
		"ticketId": ticketId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list comments: %w", err)
	}

	comments := make([]entity.Comment, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, r.toEntity())
	}
	return comments, nil
}

func (s *ticketStore) DeleteOrphanComments(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM ticket_comment
		WHERE NOT EXISTS (SELECT 1 FROM ticket WHERE ticket.id = ticket_comment.ticket_id)`

	n, err := ExecNamed(ctx, s.DB(), query, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("can't delete orphan comments: %w", err)
	}
	return n, nil
}
