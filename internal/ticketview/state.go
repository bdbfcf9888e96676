package ticketview

import (
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

// State is the view state of the detail screen. It is replaced as a whole
// by every live snapshot.
type State struct {
	TicketId string           `json:"ticketId"`
	Ticket   *entity.Ticket   `json:"ticket,omitempty"`
	Comments []entity.Comment `json:"comments"`
	// Loaded is set once the first ticket snapshot arrived.
	Loaded bool `json:"loaded"`
	// CommentsLoaded is set once the first comment list arrived.
	CommentsLoaded bool `json:"commentsLoaded"`
	// Gone is set when the ticket disappeared while viewed.
	Gone    bool     `json:"gone"`
	Display *Display `json:"display,omitempty"`
}

// Display holds the derived badges of the viewed ticket.
type Display struct {
	Status   entity.Badge `json:"status"`
	Priority entity.Badge `json:"priority"`
	Category entity.Badge `json:"category"`
}

func displayOf(t *entity.Ticket) *Display {
	if t == nil {
		return nil
	}
	return &Display{
		Status:   entity.StatusBadge(t.Status),
		Priority: entity.PriorityBadge(t.Priority),
		Category: entity.CategoryBadge(t.Category),
	}
}

func (s State) clone() State {
	c := s
	if s.Ticket != nil {
		t := *s.Ticket
		c.Ticket = &t
	}
	c.Comments = append([]entity.Comment(nil), s.Comments...)
	if c.Comments == nil {
		c.Comments = []entity.Comment{}
	}
	if s.Display != nil {
		d := *s.Display
		c.Display = &d
	}
	return c
}

type MenuAction string

const (
	ActionSetStatus   MenuAction = "set_status"
	ActionSetPriority MenuAction = "set_priority"
	ActionDelete      MenuAction = "delete"
)

// MenuItem is one entry of the admin menu.
type MenuItem struct {
	Action   MenuAction             `json:"action"`
	Label    string                 `json:"label"`
	Status   *entity.TicketStatus   `json:"status,omitempty"`
	Priority *entity.TicketPriority `json:"priority,omitempty"`
}

// menuStatuses are the status transitions the admin menu offers.
var menuStatuses = []entity.TicketStatus{
	entity.TicketStatusResolved,
	entity.TicketStatusInProgress,
}

func buildMenu(t *entity.Ticket) []MenuItem {
	var items []MenuItem
	for _, s := range menuStatuses {
		if t.Status == s {
			continue
		}
		items = append(items, MenuItem{
			Action: ActionSetStatus,
			Label:  "Mark as " + entity.StatusBadge(s).Label,
			Status: &s,
		})
	}
	for _, p := range entity.TicketPriorities {
		items = append(items, MenuItem{
			Action:   ActionSetPriority,
			Label:    "Priority: " + entity.PriorityBadge(p).Label,
			Priority: &p,
		})
	}
	items = append(items, MenuItem{
		Action: ActionDelete,
		Label:  "Delete ticket",
	})
	return items
}
