package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const (
	eventState = "state"
	eventGone  = "gone"
)

// ticketEvents streams the detail state of a ticket as server-sent events.
// The stream ends with a gone event once the ticket is deleted.
func (s *Server) ticketEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	flusher, ok := w.(http.Flusher)
	if !ok {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("streaming unsupported")))
		return
	}

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

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(s.c.heartbeatInterval())
	defer ticker.Stop()

	states := vr.v.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case st, ok := <-states:
			if !ok {
				return
			}
			if err := writeEvent(w, eventState, NewStateResponse(st, vr.v.Menu())); err != nil {
				return
			}
			flusher.Flush()
			if st.Gone {
				writeEvent(w, eventGone, map[string]string{"ticketId": st.TicketId})
				flusher.Flush()
				return
			}
		case <-vr.nav.Left():
			writeEvent(w, eventGone, map[string]string{"ticketId": chi.URLParam(r, "id")})
			flusher.Flush()
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
