package picker

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

// Browser picks the image a browser submitted through a multipart file input.
type Browser struct {
	r        *http.Request
	field    string
	maxBytes int64
}

func NewBrowser(r *http.Request, field string) *Browser {
	return &Browser{r: r, field: field, maxBytes: DefaultMaxBytes}
}

// RequestPermission always succeeds: the browser asked the user already.
func (b *Browser) RequestPermission(ctx context.Context) error {
	return nil
}

func (b *Browser) Pick(ctx context.Context) (*entity.PickedImage, error) {
	f, hdr, err := b.r.FormFile(b.field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrPickCanceled
		}
		return nil, fmt.Errorf("can't read form file: %w", err)
	}
	defer f.Close()

	if hdr.Size == 0 {
		return nil, ErrPickCanceled
	}

	data, err := readLimited(f, b.maxBytes)
	if err != nil {
		return nil, err
	}
	return newPicked(hdr.Filename, data)
}
