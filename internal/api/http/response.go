package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/picker"
	"github.com/jekabolt/grbpwr-tickets/internal/ratelimit"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketform"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketview"
)

// errors

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	Field      string `json:"field,omitempty"` // offending input field
	ErrorText  string `json:"error,omitempty"` // application-level error message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErrResponse(err error, code int, text string) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
		ErrorText:      text,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return newErrResponse(err, http.StatusBadRequest, err.Error())
}

func ErrUnauthorized(err error) render.Renderer {
	return newErrResponse(err, http.StatusUnauthorized, "a valid session token is required")
}

func ErrUnavailable(err error) render.Renderer {
	return newErrResponse(err, http.StatusServiceUnavailable, "store is unreachable")
}

var ErrTooManyRequests = &ErrResponse{HTTPStatusCode: http.StatusTooManyRequests, StatusText: http.StatusText(http.StatusTooManyRequests)}

// errResponse maps a handler error to a response. alert is what the handler
// told the user; it wins over the raw error text for server side failures.
func errResponse(err error, alert string) render.Renderer {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := newErrResponse(err, http.StatusBadRequest, ve.Message)
		if alert != "" {
			resp.ErrorText = alert
		}
		resp.Field = ve.Field
		return resp
	case errors.Is(err, picker.ErrUnsupportedImage):
		return newErrResponse(err, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, entity.ErrTicketNotFound):
		return newErrResponse(err, http.StatusNotFound, err.Error())
	case errors.Is(err, ticketview.ErrForbidden):
		return newErrResponse(err, http.StatusForbidden, err.Error())
	case errors.Is(err, ticketform.ErrSubmitInFlight), errors.Is(err, ticketview.ErrCommentInFlight):
		return newErrResponse(err, http.StatusConflict, err.Error())
	case errors.Is(err, ticketview.ErrDeleteCanceled):
		return newErrResponse(err, http.StatusPreconditionRequired, "deletion must be confirmed with confirm=true")
	case errors.Is(err, ratelimit.ErrLimited):
		return newErrResponse(err, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ticketform.ErrUpload):
		return newErrResponse(err, http.StatusBadGateway, orDefault(alert, ticketform.MsgUploadFailed))
	}
	return newErrResponse(err, http.StatusInternalServerError, orDefault(alert, http.StatusText(http.StatusInternalServerError)))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// tickets

type TicketCreatedResponse struct {
	Id      string `json:"id"`
	Message string `json:"message,omitempty"`
}

func (rd *TicketCreatedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusCreated)
	return nil
}

// StateResponse is the detail screen state of a ticket.
type StateResponse struct {
	ticketview.State
	Menu []ticketview.MenuItem `json:"menu"`
}

func NewStateResponse(st ticketview.State, menu []ticketview.MenuItem) *StateResponse {
	if menu == nil {
		menu = []ticketview.MenuItem{}
	}
	return &StateResponse{State: st, Menu: menu}
}

func (rd *StateResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type MenuResponse struct {
	Items []ticketview.MenuItem `json:"items"`
}

func (rd *MenuResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
