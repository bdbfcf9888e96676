// Package picker provides the platform image pickers used by the ticket
// creation form and the image processing that goes with them.
package picker

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

var (
	// ErrPermissionDenied is returned when the platform refuses access to images.
	ErrPermissionDenied = errors.New("permission to access images denied")
	// ErrPickCanceled is returned when the user dismissed the picker.
	ErrPickCanceled = errors.New("image pick canceled")
	// ErrUnsupportedImage is returned for files that are not a decodable image.
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// DefaultMaxBytes bounds the size of a picked image.
const DefaultMaxBytes = 10 << 20

// newPicked sniffs the content type and builds the preview of a picked file.
func newPicked(name string, data []byte) (*entity.PickedImage, error) {
	contentType := http.DetectContentType(data)
	if !supportedContentType(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	preview, err := Preview(data)
	if err != nil {
		return nil, err
	}

	return &entity.PickedImage{
		Name:        name,
		ContentType: contentType,
		Data:        data,
		Preview:     *preview,
	}, nil
}

func supportedContentType(ct string) bool {
	switch ct {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
