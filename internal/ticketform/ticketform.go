// Package ticketform implements the ticket creation flow: validate the form,
// upload the optional photo, insert the ticket and leave the screen.
package ticketform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/picker"
	"github.com/jekabolt/grbpwr-tickets/log"
)

// ErrSubmitInFlight is returned when a submission is already running.
var ErrSubmitInFlight = errors.New("ticket submission already in progress")

// ErrUpload wraps every failure between picking the image and obtaining its URL.
var ErrUpload = errors.New("image upload failed")

const (
	AlertTitleError      = "Error"
	AlertTitlePermission = "Permission required"

	MsgRequiredFields   = "Please fill in title, description and location."
	MsgPermissionDenied = "Photo library access is needed to attach an image."
	MsgPickFailed       = "The image could not be loaded."
	MsgUploadFailed     = "The image could not be uploaded. Please try again."
	MsgCreateFailed     = "The ticket could not be created. Please try again."
	MsgCreated          = "Ticket created successfully"

	imageContentType = "image/jpeg"
)

type Config struct {
	// BackDelay is how long the success notification stays before leaving.
	BackDelay time.Duration `mapstructure:"back_delay"`
	// ImageFolder is the object storage folder for ticket images.
	ImageFolder string `mapstructure:"image_folder"`
}

func (c *Config) backDelay() time.Duration {
	if c == nil || c.BackDelay <= 0 {
		return 1500 * time.Millisecond
	}
	return c.BackDelay
}

func (c *Config) imageFolder() string {
	if c == nil || c.ImageFolder == "" {
		return "tickets"
	}
	return c.ImageFolder
}

// Form is what the user typed into the creation screen.
type Form struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    entity.TicketCategory `json:"category"`
	Location    string                `json:"location"`
}

// Handler drives one ticket creation screen.
type Handler struct {
	c         *Config
	session   entity.Session
	tickets   dependency.Tickets
	files     dependency.FileStore
	picker    dependency.ImagePicker
	nav       dependency.Navigator
	presenter dependency.Presenter
	now       func() time.Time

	mu    sync.Mutex
	busy  bool
	image *entity.PickedImage
	wg    sync.WaitGroup
}

// New creates a creation handler for the user of session.
func New(
	c *Config,
	session entity.Session,
	tickets dependency.Tickets,
	files dependency.FileStore,
	imagePicker dependency.ImagePicker,
	nav dependency.Navigator,
	presenter dependency.Presenter,
) *Handler {
	return &Handler{
		c:         c,
		session:   session,
		tickets:   tickets,
		files:     files,
		picker:    imagePicker,
		nav:       nav,
		presenter: presenter,
		now:       time.Now,
	}
}

// Busy reports whether a submission is in flight.
func (h *Handler) Busy() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.busy
}

// Image returns the preview of the attached image, or nil.
func (h *Handler) Image() *entity.ImagePreview {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.image == nil {
		return nil
	}
	p := h.image.Preview
	return &p
}

// PickImage asks for permission and lets the user choose an image. A
// canceled pick keeps the current selection.
func (h *Handler) PickImage(ctx context.Context) (*entity.ImagePreview, error) {
	if err := h.picker.RequestPermission(ctx); err != nil {
		if errors.Is(err, picker.ErrPermissionDenied) {
			h.presenter.Alert(ctx, AlertTitlePermission, MsgPermissionDenied)
		}
		return nil, err
	}

	img, err := h.picker.Pick(ctx)
	if err != nil {
		switch {
		case errors.Is(err, picker.ErrPickCanceled):
		case errors.Is(err, picker.ErrPermissionDenied):
			h.presenter.Alert(ctx, AlertTitlePermission, MsgPermissionDenied)
		default:
			slog.Default().ErrorContext(ctx, "can't pick image",
				log.Err(err),
			)
			h.presenter.Alert(ctx, AlertTitleError, MsgPickFailed)
		}
		return nil, err
	}

	h.mu.Lock()
	h.image = img
	h.mu.Unlock()

	p := img.Preview
	return &p, nil
}

// RemoveImage drops the attached image.
func (h *Handler) RemoveImage() {
	h.mu.Lock()
	h.image = nil
	h.mu.Unlock()
}

// Submit validates the form, uploads the attached image and inserts the
// ticket. On success it returns the new ticket id and leaves the screen
// once the success notification is acknowledged or BackDelay passed.
func (h *Handler) Submit(ctx context.Context, f Form) (string, error) {
	h.mu.Lock()
	if h.busy {
		h.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	h.busy = true
	img := h.image
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.busy = false
		h.mu.Unlock()
	}()

	ti := entity.TicketInsert{
		Title:         f.Title,
		Description:   f.Description,
		Category:      f.Category,
		Location:      f.Location,
		Priority:      entity.PriorityMedium,
		Status:        entity.TicketStatusOpen,
		CreatedBy:     h.session.UserId,
		CreatedByName: h.session.Name(),
	}
	if err := entity.ValidateTicketInsert(&ti); err != nil {
		h.presenter.Alert(ctx, AlertTitleError, validationMessage(err))
		return "", err
	}

	var uploaded string
	if img != nil {
		p, url, err := h.uploadImage(ctx, img)
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't upload ticket image",
				log.Err(err),
				slog.String("user_id", h.session.UserId),
			)
			h.presenter.Alert(ctx, AlertTitleError, MsgUploadFailed)
			return "", err
		}
		ti.ImageURL = &url
		uploaded = p
	}

	id, err := h.tickets.CreateTicket(ctx, ti)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't create ticket",
			log.Err(err),
			slog.String("user_id", h.session.UserId),
		)
		h.presenter.Alert(ctx, AlertTitleError, MsgCreateFailed)
		if uploaded != "" {
			h.discardUpload(ctx, uploaded)
		}
		return "", err
	}

	slog.Default().InfoContext(ctx, "ticket created",
		log.TicketId(id),
		slog.String("user_id", h.session.UserId),
	)

	h.mu.Lock()
	h.image = nil
	h.mu.Unlock()

	ack := h.presenter.Notify(ctx, MsgCreated)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.leaveAfter(ack)
	}()

	return id, nil
}

// Wait blocks until a pending navigation after a successful submit is done.
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) leaveAfter(ack <-chan struct{}) {
	t := time.NewTimer(h.c.backDelay())
	defer t.Stop()
	select {
	case <-ack:
	case <-t.C:
	}
	if h.nav.CanGoBack() {
		h.nav.GoBack()
	}
}

func (h *Handler) uploadImage(ctx context.Context, img *entity.PickedImage) (string, string, error) {
	blob, err := picker.JPEG(img)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	p := ImagePath(h.c.imageFolder(), h.now())
	if err := h.files.Upload(ctx, p, blob, imageContentType); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	return p, h.files.URL(p), nil
}

// discardUpload removes an image no ticket refers to.
func (h *Handler) discardUpload(ctx context.Context, p string) {
	if err := h.files.Delete(ctx, p); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete unused ticket image",
			log.Err(err),
			slog.String("path", p),
		)
	}
}

// ImagePath builds a collision resistant object path for an uploaded image.
func ImagePath(folder string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s/%d_%s.jpg", folder, now.UnixMilli(), suffix)
}

func validationMessage(err error) string {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		switch ve.Field {
		case "title", "description", "location":
			if strings.HasSuffix(ve.Message, "is required") {
				return MsgRequiredFields
			}
		}
		return ve.Message
	}
	return MsgCreateFailed
}
