package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

type AddCommentRequest struct {
	Content string `json:"content"`
}

func (r *AddCommentRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Content, v.Required, v.RuneLength(1, entity.MaxTextLength)),
	)
}
