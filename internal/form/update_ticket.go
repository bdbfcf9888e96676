package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

// UpdateTicketRequest is an admin status and/or priority change.
type UpdateTicketRequest struct {
	Status   *entity.TicketStatus   `json:"status"`
	Priority *entity.TicketPriority `json:"priority"`
}

func (r *UpdateTicketRequest) Validate() error {
	if r.Status == nil && r.Priority == nil {
		return &entity.ValidationError{Field: "status", Message: "Status or priority is required."}
	}
	return ValidateStruct(r,
		v.Field(&r.Status, v.In(oneOf(entity.TicketStatuses)...)),
		v.Field(&r.Priority, v.In(oneOf(entity.TicketPriorities)...)),
	)
}

func (r *UpdateTicketRequest) Update() entity.TicketUpdate {
	return entity.TicketUpdate{
		Status:   r.Status,
		Priority: r.Priority,
	}
}
