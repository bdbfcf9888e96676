package ticketform

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	h         *Handler
	tickets   *mocks.Tickets
	files     *mocks.FileStore
	picker    *mocks.ImagePicker
	nav       *mocks.Navigator
	presenter *mocks.Presenter
}

func newTestForm(t *testing.T) *testForm {
	tf := &testForm{
		tickets:   mocks.NewTickets(t),
		files:     mocks.NewFileStore(t),
		picker:    mocks.NewImagePicker(t),
		nav:       mocks.NewNavigator(t),
		presenter: mocks.NewPresenter(t),
	}
	tf.h = New(&Config{BackDelay: 20 * time.Millisecond},
		entity.Session{UserId: "u-1", DisplayName: "Ana", Role: entity.RoleUser},
		tf.tickets, tf.files, tf.picker, tf.nav, tf.presenter,
	)
	tf.h.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return tf
}

func (tf *testForm) expectLeave() {
	tf.nav.EXPECT().CanGoBack().Return(true).Once()
	tf.nav.EXPECT().GoBack().Return().Once()
}

func acked() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func pickedImage(t *testing.T) *entity.PickedImage {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &entity.PickedImage{
		Name:        "foto.png",
		ContentType: "image/png",
		Data:        buf.Bytes(),
		Preview:     entity.ImagePreview{Width: 8, Height: 8, Blurhash: "LKO2?U%2Tw=w]~RBVZRi};RPxuwH"},
	}
}

func pcForm() Form {
	return Form{
		Title:       "  PC no enciende ",
		Description: "No prende tras corte de luz ",
		Category:    entity.CategoryHardware,
		Location:    " Oficina de Partes",
	}
}

func TestSubmitValidation(t *testing.T) {
	for _, blank := range []string{"title", "description", "location"} {
		t.Run(blank, func(t *testing.T) {
			tf := newTestForm(t)
			f := pcForm()
			switch blank {
			case "title":
				f.Title = "   "
			case "description":
				f.Description = ""
			case "location":
				f.Location = "\n"
			}
			tf.presenter.EXPECT().Alert(mock.Anything, AlertTitleError, MsgRequiredFields).Return().Once()

			_, err := tf.h.Submit(context.Background(), f)
			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, blank, ve.Field)
			assert.False(t, tf.h.Busy())
		})
	}
}

func TestSubmitWithoutImage(t *testing.T) {
	tf := newTestForm(t)

	tf.tickets.EXPECT().CreateTicket(mock.Anything, mock.MatchedBy(func(ti entity.TicketInsert) bool {
		return ti.Title == "PC no enciende" &&
			ti.Description == "No prende tras corte de luz" &&
			ti.Location == "Oficina de Partes" &&
			ti.Category == entity.CategoryHardware &&
			ti.Status == entity.TicketStatusOpen &&
			ti.Priority == entity.PriorityMedium &&
			ti.CreatedBy == "u-1" &&
			ti.CreatedByName == "Ana" &&
			ti.ImageURL == nil
	})).Return("t-1", nil).Once()
	tf.presenter.EXPECT().Notify(mock.Anything, MsgCreated).Return(acked()).Once()
	tf.expectLeave()

	id, err := tf.h.Submit(context.Background(), pcForm())
	require.NoError(t, err)
	assert.Equal(t, "t-1", id)
	tf.h.Wait()
	assert.False(t, tf.h.Busy())
}

func TestSubmitUploadsBeforeInsert(t *testing.T) {
	tf := newTestForm(t)
	tf.h.image = pickedImage(t)

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(step string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, step)
	}

	pathRe := regexp.MustCompile(`^tickets/1700000000000_[0-9a-f]{12}\.jpg$`)
	var uploaded string
	tf.files.EXPECT().Upload(mock.Anything, mock.MatchedBy(pathRe.MatchString), mock.Anything, "image/jpeg").
		Run(func(ctx context.Context, path string, blob []byte, contentType string) {
			record("upload")
			uploaded = path
			assert.Equal(t, []byte{0xff, 0xd8}, blob[:2])
		}).Return(nil).Once()
	tf.files.EXPECT().URL(mock.Anything).RunAndReturn(func(path string) string {
		record("url")
		return "https://files.example.com/" + path
	}).Once()
	tf.tickets.EXPECT().CreateTicket(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, ti entity.TicketInsert) (string, error) {
			record("insert")
			require.NotNil(t, ti.ImageURL)
			assert.Equal(t, "https://files.example.com/"+uploaded, *ti.ImageURL)
			return "t-2", nil
		}).Once()
	tf.presenter.EXPECT().Notify(mock.Anything, MsgCreated).Return(acked()).Once()
	tf.expectLeave()

	id, err := tf.h.Submit(context.Background(), pcForm())
	require.NoError(t, err)
	assert.Equal(t, "t-2", id)
	tf.h.Wait()

	assert.Equal(t, []string{"upload", "url", "insert"}, order)
	assert.Nil(t, tf.h.Image())
}

func TestSubmitUploadFailure(t *testing.T) {
	tf := newTestForm(t)
	tf.h.image = pickedImage(t)

	tf.files.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("network down")).Once()
	tf.presenter.EXPECT().Alert(mock.Anything, AlertTitleError, MsgUploadFailed).Return().Once()

	_, err := tf.h.Submit(context.Background(), pcForm())
	assert.ErrorIs(t, err, ErrUpload)
	assert.False(t, tf.h.Busy())
	assert.NotNil(t, tf.h.Image())
	tf.tickets.AssertNotCalled(t, "CreateTicket", mock.Anything, mock.Anything)
}

func TestSubmitInsertFailure(t *testing.T) {
	tf := newTestForm(t)

	tf.tickets.EXPECT().CreateTicket(mock.Anything, mock.Anything).Return("", errors.New("unavailable")).Once()
	tf.presenter.EXPECT().Alert(mock.Anything, AlertTitleError, MsgCreateFailed).Return().Once()

	_, err := tf.h.Submit(context.Background(), pcForm())
	assert.Error(t, err)
	assert.False(t, tf.h.Busy())
}

func TestSubmitInsertFailureDiscardsImage(t *testing.T) {
	tf := newTestForm(t)
	tf.h.image = pickedImage(t)

	var uploaded string
	tf.files.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Run(func(ctx context.Context, path string, blob []byte, contentType string) {
			uploaded = path
		}).Return(nil).Once()
	tf.files.EXPECT().URL(mock.Anything).Return("https://files.example.com/tickets/a.jpg").Once()
	tf.tickets.EXPECT().CreateTicket(mock.Anything, mock.Anything).Return("", errors.New("unavailable")).Once()
	tf.presenter.EXPECT().Alert(mock.Anything, AlertTitleError, MsgCreateFailed).Return().Once()
	tf.files.EXPECT().Delete(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, paths ...string) {
			assert.Equal(t, []string{uploaded}, paths)
		}).Return(nil).Once()

	_, err := tf.h.Submit(context.Background(), pcForm())
	assert.Error(t, err)
	assert.NotNil(t, tf.h.Image())
}

func TestSubmitInFlight(t *testing.T) {
	tf := newTestForm(t)

	started := make(chan struct{})
	release := make(chan struct{})
	tf.tickets.EXPECT().CreateTicket(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, ti entity.TicketInsert) (string, error) {
			close(started)
			<-release
			return "t-3", nil
		}).Once()
	tf.presenter.EXPECT().Notify(mock.Anything, MsgCreated).Return(acked()).Once()
	tf.expectLeave()

	done := make(chan error, 1)
	go func() {
		_, err := tf.h.Submit(context.Background(), pcForm())
		done <- err
	}()

	<-started
	assert.True(t, tf.h.Busy())
	_, err := tf.h.Submit(context.Background(), pcForm())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	tf.h.Wait()
}

func TestLeaveAfterDelay(t *testing.T) {
	tf := newTestForm(t)

	never := make(chan struct{})
	tf.tickets.EXPECT().CreateTicket(mock.Anything, mock.Anything).Return("t-4", nil).Once()
	tf.presenter.EXPECT().Notify(mock.Anything, MsgCreated).Return((<-chan struct{})(never)).Once()
	tf.expectLeave()

	start := time.Now()
	_, err := tf.h.Submit(context.Background(), pcForm())
	require.NoError(t, err)
	tf.h.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestPickImage(t *testing.T) {
	ctx := context.Background()

	t.Run("permission denied", func(t *testing.T) {
		tf := newTestForm(t)
		tf.picker.EXPECT().RequestPermission(mock.Anything).Return(picker.ErrPermissionDenied).Once()
		tf.presenter.EXPECT().Alert(mock.Anything, AlertTitlePermission, MsgPermissionDenied).Return().Once()

		_, err := tf.h.PickImage(ctx)
		assert.ErrorIs(t, err, picker.ErrPermissionDenied)
		assert.Nil(t, tf.h.Image())
	})

	t.Run("canceled keeps selection", func(t *testing.T) {
		tf := newTestForm(t)
		prev := pickedImage(t)
		tf.h.image = prev
		tf.picker.EXPECT().RequestPermission(mock.Anything).Return(nil).Once()
		tf.picker.EXPECT().Pick(mock.Anything).Return(nil, picker.ErrPickCanceled).Once()

		_, err := tf.h.PickImage(ctx)
		assert.ErrorIs(t, err, picker.ErrPickCanceled)
		assert.Equal(t, &prev.Preview, tf.h.Image())
	})

	t.Run("picked then removed", func(t *testing.T) {
		tf := newTestForm(t)
		img := pickedImage(t)
		tf.picker.EXPECT().RequestPermission(mock.Anything).Return(nil).Once()
		tf.picker.EXPECT().Pick(mock.Anything).Return(img, nil).Once()

		preview, err := tf.h.PickImage(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8, preview.Width)
		require.NotNil(t, tf.h.Image())

		tf.h.RemoveImage()
		assert.Nil(t, tf.h.Image())
	})
}

func TestImagePath(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	a := ImagePath("tickets", now)
	b := ImagePath("tickets", now)
	assert.Regexp(t, `^tickets/1700000000123_[0-9a-f]{12}\.jpg$`, a)
	assert.NotEqual(t, a, b)
}
