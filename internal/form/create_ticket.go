package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

// CreateTicketRequest is the text part of the multipart creation request.
// Required fields are checked by the creation flow after trimming.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    entity.TicketCategory `json:"category"`
	Location    string                `json:"location"`
}

func (r *CreateTicketRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Title, v.RuneLength(0, entity.MaxTitleLength)),
		v.Field(&r.Description, v.RuneLength(0, entity.MaxTextLength)),
		v.Field(&r.Category, v.Required, v.In(oneOf(entity.TicketCategories)...)),
		v.Field(&r.Location, v.RuneLength(0, entity.MaxTitleLength)),
	)
}
