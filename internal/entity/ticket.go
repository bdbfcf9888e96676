package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketStatuses lists every status in lifecycle order.
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusPending,
	TicketStatusResolved,
	TicketStatusClosed,
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

var TicketPriorities = []TicketPriority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TicketCategory string

const (
	CategoryHardware    TicketCategory = "hardware"
	CategorySoftware    TicketCategory = "software"
	CategoryNetwork     TicketCategory = "network"
	CategoryPrinter     TicketCategory = "printer"
	CategoryUserSupport TicketCategory = "user_support"
	CategoryOther       TicketCategory = "other"
)

var TicketCategories = []TicketCategory{
	CategoryHardware,
	CategorySoftware,
	CategoryNetwork,
	CategoryPrinter,
	CategoryUserSupport,
	CategoryOther,
}

func (c TicketCategory) Valid() bool {
	switch c {
	case CategoryHardware, CategorySoftware, CategoryNetwork, CategoryPrinter, CategoryUserSupport, CategoryOther:
		return true
	}
	return false
}

const (
	MaxTitleLength = 200
	MaxTextLength  = 5000
)

// ErrTicketNotFound is returned by stores when the ticket document does not exist.
var ErrTicketNotFound = errors.New("ticket not found")

type Ticket struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	TicketInsert
}

type TicketInsert struct {
	Title         string         `db:"title" json:"title"`
	Description   string         `db:"description" json:"description"`
	Category      TicketCategory `db:"category" json:"category"`
	Priority      TicketPriority `db:"priority" json:"priority"`
	Status        TicketStatus   `db:"status" json:"status"`
	Location      string         `db:"location" json:"location"`
	CreatedBy     string         `db:"created_by" json:"createdBy"`
	CreatedByName string         `db:"created_by_name" json:"createdByName"`
	ImageURL      *string        `db:"image_url" json:"imageUrl"`
}

// TicketSnapshot is one live state of a ticket document. Ticket is nil
// when the document does not exist.
type TicketSnapshot struct {
	Ticket *Ticket
}

func (s TicketSnapshot) Exists() bool {
	return s.Ticket != nil
}

// TicketUpdate is a partial update; nil fields are left untouched.
type TicketUpdate struct {
	Status   *TicketStatus   `json:"status,omitempty"`
	Priority *TicketPriority `json:"priority,omitempty"`
}

func (u TicketUpdate) Empty() bool {
	return u.Status == nil && u.Priority == nil
}

// ValidateTicketInsert trims the free-text fields in place and checks
// the insert against the ticket rules. Empty status and priority
// fall back to open and medium.
func ValidateTicketInsert(ticket *TicketInsert) error {
	ticket.Title = strings.TrimSpace(ticket.Title)
	ticket.Description = strings.TrimSpace(ticket.Description)
	ticket.Location = strings.TrimSpace(ticket.Location)
	ticket.CreatedBy = strings.TrimSpace(ticket.CreatedBy)
	ticket.CreatedByName = strings.TrimSpace(ticket.CreatedByName)

	if ticket.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(ticket.Title) > MaxTitleLength {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength)}
	}
	if ticket.Description == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if utf8.RuneCountInString(ticket.Description) > MaxTextLength {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", MaxTextLength)}
	}
	if ticket.Location == "" {
		return &ValidationError{Field: "location", Message: "location is required"}
	}
	if utf8.RuneCountInString(ticket.Location) > MaxTitleLength {
		return &ValidationError{Field: "location", Message: fmt.Sprintf("location must be at most %d characters", MaxTitleLength)}
	}
	if !ticket.Category.Valid() {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("invalid category: %s", ticket.Category)}
	}

	if ticket.Priority == "" {
		ticket.Priority = PriorityMedium
	}
	if !ticket.Priority.Valid() {
		return &ValidationError{Field: "priority", Message: fmt.Sprintf("invalid priority: %s", ticket.Priority)}
	}
	if ticket.Status == "" {
		ticket.Status = TicketStatusOpen
	}
	if !ticket.Status.Valid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("invalid status: %s", ticket.Status)}
	}

	if ticket.ImageURL != nil && !govalidator.IsURL(*ticket.ImageURL) {
		return &ValidationError{Field: "imageUrl", Message: "image url is not a valid url"}
	}

	return nil
}

// ValidateTicketUpdate rejects empty updates and values outside the enumerations.
func ValidateTicketUpdate(u TicketUpdate) error {
	if u.Empty() {
		return &ValidationError{Message: "nothing to update"}
	}
	if u.Status != nil && !u.Status.Valid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("invalid status: %s", *u.Status)}
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return &ValidationError{Field: "priority", Message: fmt.Sprintf("invalid priority: %s", *u.Priority)}
	}
	return nil
}
