package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

// Native picks an image from the local filesystem. An empty Path means the
// user did not choose a file.
type Native struct {
	Path     string
	MaxBytes int64
}

func NewNative(path string) *Native {
	return &Native{Path: path, MaxBytes: DefaultMaxBytes}
}

func (n *Native) RequestPermission(ctx context.Context) error {
	if n.Path == "" {
		return nil
	}
	f, err := os.Open(n.Path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrPermissionDenied, n.Path)
		}
		return nil
	}
	return f.Close()
}

func (n *Native) Pick(ctx context.Context) (*entity.PickedImage, error) {
	if n.Path == "" {
		return nil, ErrPickCanceled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(n.Path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, n.Path)
		}
		return nil, fmt.Errorf("can't open image: %w", err)
	}
	defer f.Close()

	data, err := readLimited(f, n.MaxBytes)
	if err != nil {
		return nil, err
	}
	return newPicked(filepath.Base(n.Path), data)
}

func readLimited(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("can't read image: %w", err)
	}
	if int64(len(data)) > max {
		return nil, fmt.Errorf("image is larger than %d bytes", max)
	}
	return data, nil
}
