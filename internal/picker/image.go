package picker

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	"github.com/bbrks/go-blurhash"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// maxDimension bounds the longest side of uploaded images.
	maxDimension = 2048
	jpegQuality  = 85

	thumbSize = 32
	hashX     = 4
	hashY     = 3
)

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return img, nil
}

// Preview returns the dimensions and a blurhash placeholder of an image.
func Preview(data []byte) (*entity.ImagePreview, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	hash, err := blurhash.Encode(hashX, hashY, fit(img, thumbSize))
	if err != nil {
		return nil, fmt.Errorf("can't compute blurhash: %w", err)
	}

	return &entity.ImagePreview{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Blurhash: hash,
	}, nil
}

// JPEG transforms a picked image into the JPEG blob that gets uploaded.
func JPEG(pi *entity.PickedImage) ([]byte, error) {
	img, err := decode(pi.Data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encodeJPG(&buf, fit(img, maxDimension), jpegQuality); err != nil {
		return nil, fmt.Errorf("failed to encode JPG: %w", err)
	}
	return buf.Bytes(), nil
}

// fit downscales img so that its longest side is at most max.
func fit(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}
	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func encodeJPG(w io.Writer, img image.Image, quality int) error {
	var rgba *image.RGBA
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Opaque() {
		rgba = &image.RGBA{
			Pix:    nrgba.Pix,
			Stride: nrgba.Stride,
			Rect:   nrgba.Rect,
		}
	}

	opts := &jpeg.Options{Quality: quality}
	if rgba != nil {
		return jpeg.Encode(w, rgba, opts)
	}
	return jpeg.Encode(w, img, opts)
}
