package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type Comment struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	CommentInsert
}

type CommentInsert struct {
	TicketId   string `db:"ticket_id" json:"ticketId"`
	AuthorId   string `db:"author_id" json:"authorId"`
	AuthorName string `db:"author_name" json:"authorName"`
	Content    string `db:"content" json:"content"`
}

func ValidateCommentInsert(c *CommentInsert) error {
	c.Content = strings.TrimSpace(c.Content)
	c.TicketId = strings.TrimSpace(c.TicketId)

	if c.TicketId == "" {
		return &ValidationError{Field: "ticketId", Message: "ticket id is required"}
	}
	if c.Content == "" {
		return &ValidationError{Field: "content", Message: "comment is empty"}
	}
	if utf8.RuneCountInString(c.Content) > MaxTextLength {
		return &ValidationError{Field: "content", Message: fmt.Sprintf("comment must be at most %d characters", MaxTextLength)}
	}
	if c.AuthorId == "" {
		return &ValidationError{Field: "authorId", Message: "author is required"}
	}
	return nil
}
