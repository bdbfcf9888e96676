// Package termui renders ticket view state on a terminal and implements the
// terminal presenter and navigator.
package termui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketview"
)

const timeLayout = "2006-01-02 15:04"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	authorStyle = lipgloss.NewStyle().Bold(true)
	alertStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D32F2F")).
			Bold(true).
			Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#8BC34A")).
			Padding(0, 1)
)

// Badge renders a label on its background color with the derived text color.
func Badge(b entity.Badge) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(b.Color)).
		Foreground(lipgloss.Color(b.TextColor)).
		Bold(true).
		Padding(0, 1).
		Render(b.Label)
}

// RenderState renders the detail screen.
func RenderState(s ticketview.State) string {
	if s.Gone {
		return faintStyle.Render(fmt.Sprintf("ticket %s no longer exists", s.TicketId))
	}
	if !s.Loaded || s.Ticket == nil {
		return faintStyle.Render("loading ticket " + s.TicketId + "...")
	}

	t := s.Ticket
	d := s.Display
	if d == nil {
		d = &ticketview.Display{
			Status:   entity.StatusBadge(t.Status),
			Priority: entity.PriorityBadge(t.Priority),
			Category: entity.CategoryBadge(t.Category),
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(t.Title))
	sb.WriteString("\n")
	sb.WriteString(Badge(d.Status) + " " + Badge(d.Priority) + " " + Badge(d.Category))
	sb.WriteString("\n\n")
	sb.WriteString(t.Description)
	sb.WriteString("\n\n")
	sb.WriteString(faintStyle.Render("Location: ") + t.Location + "\n")
	sb.WriteString(faintStyle.Render("Created by: ") + t.CreatedByName + "\n")
	sb.WriteString(faintStyle.Render("Created: ") + t.CreatedAt.Local().Format(timeLayout) + "\n")
	sb.WriteString(faintStyle.Render("Updated: ") + t.UpdatedAt.Local().Format(timeLayout) + "\n")
	if t.ImageURL != nil {
		sb.WriteString(faintStyle.Render("Image: ") + *t.ImageURL + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Comments (%d)", len(s.Comments))))
	sb.WriteString("\n")
	for _, c := range s.Comments {
		sb.WriteString(authorStyle.Render(c.AuthorName))
		sb.WriteString(" " + faintStyle.Render(c.CreatedAt.Local().Format(timeLayout)) + "\n")
		sb.WriteString("  " + c.Content + "\n")
	}
	return sb.String()
}

// RenderMenu renders the admin menu as a numbered list.
func RenderMenu(items []ticketview.MenuItem) string {
	var sb strings.Builder
	for i, item := range items {
		fmt.Fprintf(&sb, "%d) %s\n", i+1, item.Label)
	}
	return sb.String()
}
