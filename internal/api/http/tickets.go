package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/form"
	"github.com/jekabolt/grbpwr-tickets/internal/picker"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketform"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketview"
)

const imageField = "image"

func (s *Server) createTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFrom(ctx)

	if err := s.limiter.CheckTicketCreation(session.UserId); err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.c.maxUploadBytes())
	if err := r.ParseMultipartForm(s.c.maxUploadBytes()); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := &form.CreateTicketRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    entity.TicketCategory(r.FormValue("category")),
		Location:    r.FormValue("location"),
	}
	if err := req.Validate(); err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}

	presenter := &requestPresenter{}
	h := ticketform.New(s.form, session, s.store, s.files, picker.NewBrowser(r, imageField), newRequestNavigator(), presenter)

	if _, err := h.PickImage(ctx); err != nil && !errors.Is(err, picker.ErrPickCanceled) {
		render.Render(w, r, errResponse(err, presenter.lastAlert()))
		return
	}

	id, err := h.Submit(ctx, ticketform.Form{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
	})
	if err != nil {
		render.Render(w, r, errResponse(err, presenter.lastAlert()))
		return
	}
	h.Wait()

	render.Render(w, r, &TicketCreatedResponse{Id: id, Message: presenter.lastNotice()})
}

// viewRequest is a detail view mounted for the duration of one request.
type viewRequest struct {
	v         *ticketview.View
	nav       *requestNavigator
	presenter *requestPresenter
}

func (s *Server) mountView(ctx context.Context, r *http.Request) (*viewRequest, error) {
	vr := &viewRequest{
		nav:       newRequestNavigator(),
		presenter: &requestPresenter{confirm: r.URL.Query().Get("confirm") == "true"},
	}
	vr.v = ticketview.New(s.store, sessionFrom(ctx), vr.nav, vr.presenter)
	if err := vr.v.Mount(ctx, chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return vr, nil
}

func (s *Server) getTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vr, err := s.mountView(ctx, r)
	if err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}
	defer vr.v.Unmount()

	st, err := vr.v.Loaded(ctx)
	if err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}
	render.Render(w, r, NewStateResponse(st, vr.v.Menu()))
}

func (s *Server) ticketMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vr, err := s.mountView(ctx, r)
	if err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}
	defer vr.v.Unmount()

	if _, err := vr.v.Loaded(ctx); err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}
	items := vr.v.Menu()
	if items == nil {
		items = []ticketview.MenuItem{}
	}
	render.Render(w, r, &MenuResponse{Items: items})
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &form.AddCommentRequest{}
	if err := render.DecodeJSON(r.Body, req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}

	vr, err := s.mountView(ctx, r)
	if err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}
	defer vr.v.Unmount()

	if err := vr.v.AddComment(ctx, req.Content); err != nil {
		render.Render(w, r, errResponse(err, vr.presenter.lastAlert()))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) updateTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !sessionFrom(ctx).IsAdmin() {
		render.Render(w, r, errResponse(ticketview.ErrForbidden, ""))
		return
	}

	req := &form.UpdateTicketRequest{}
	if err := render.DecodeJSON(r.Body, req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}

	vr, err := s.mountView(ctx, r)
	if err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}
	defer vr.v.Unmount()

	if err := vr.v.Update(ctx, req.Update()); err != nil {
		render.Render(w, r, errResponse(err, vr.presenter.lastAlert()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vr, err := s.mountView(ctx, r)
	if err != nil {
		render.Render(w, r, errResponse(err, ""))
		return
	}
	defer vr.v.Unmount()

	if err := vr.v.Delete(ctx); err != nil {
		render.Render(w, r, errResponse(err, vr.presenter.lastAlert()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
