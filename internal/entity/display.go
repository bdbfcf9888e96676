package entity

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	TextBlack = "#000000"
	TextWhite = "#FFFFFF"

	// brightnessThreshold is the perceived brightness above which dark text is used.
	brightnessThreshold = 155
)

// Badge is the display metadata of an enumerated ticket field.
type Badge struct {
	Label     string `json:"label"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
	Icon      string `json:"icon"`
}

func newBadge(label, color, icon string) Badge {
	return Badge{
		Label:     label,
		Color:     color,
		TextColor: TextColor(color),
		Icon:      icon,
	}
}

func StatusBadge(s TicketStatus) Badge {
	switch s {
	case TicketStatusOpen:
		return newBadge("Open", "#2196F3", "alert-circle-outline")
	case TicketStatusInProgress:
		return newBadge("In progress", "#FF9800", "progress-clock")
	case TicketStatusPending:
		return newBadge("Pending", "#9C27B0", "clock-outline")
	case TicketStatusResolved:
		return newBadge("Resolved", "#1B5E20", "check-circle-outline")
	case TicketStatusClosed:
		return newBadge("Closed", "#616161", "lock-outline")
	}
	return newBadge(string(s), "#9E9E9E", "help-circle-outline")
}

func PriorityBadge(p TicketPriority) Badge {
	switch p {
	case PriorityLow:
		return newBadge("Low", "#8BC34A", "arrow-down")
	case PriorityMedium:
		return newBadge("Medium", "#FFC107", "minus")
	case PriorityHigh:
		return newBadge("High", "#D32F2F", "arrow-up")
	}
	return newBadge(string(p), "#9E9E9E", "help-circle-outline")
}

func CategoryBadge(c TicketCategory) Badge {
	switch c {
	case CategoryHardware:
		return newBadge("Hardware", "#795548", "desktop-classic")
	case CategorySoftware:
		return newBadge("Software", "#3F51B5", "application")
	case CategoryNetwork:
		return newBadge("Network", "#009688", "wifi")
	case CategoryPrinter:
		return newBadge("Printer", "#607D8B", "printer")
	case CategoryUserSupport:
		return newBadge("User support", "#E91E63", "account-question")
	case CategoryOther:
		return newBadge("Other", "#9E9E9E", "dots-horizontal")
	}
	return newBadge(string(c), "#9E9E9E", "help-circle-outline")
}

// Brightness returns the perceived brightness (0..255) of a #RRGGBB or #RGB color.
func Brightness(hex string) (float64, error) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return 0, err
	}
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b), nil
}

// TextColor picks black or white text for a background color.
// Unparseable colors get black text.
func TextColor(background string) string {
	br, err := Brightness(background)
	if err != nil {
		return TextBlack
	}
	if br > brightnessThreshold {
		return TextBlack
	}
	return TextWhite
}

func parseHexColor(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("bad color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
