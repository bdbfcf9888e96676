package picker

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNativePick(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p := filepath.Join(dir, "foto.png")
	require.NoError(t, os.WriteFile(p, testPNG(t, 64, 48), 0o600))

	n := NewNative(p)
	require.NoError(t, n.RequestPermission(ctx))

	pi, err := n.Pick(ctx)
	require.NoError(t, err)
	assert.Equal(t, "foto.png", pi.Name)
	assert.Equal(t, "image/png", pi.ContentType)
	assert.Equal(t, 64, pi.Preview.Width)
	assert.Equal(t, 48, pi.Preview.Height)
	assert.NotEmpty(t, pi.Preview.Blurhash)

	t.Run("no file chosen", func(t *testing.T) {
		_, err := NewNative("").Pick(ctx)
		assert.ErrorIs(t, err, ErrPickCanceled)
	})

	t.Run("not an image", func(t *testing.T) {
		txt := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(txt, []byte("hola"), 0o600))
		_, err := NewNative(txt).Pick(ctx)
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("too large", func(t *testing.T) {
		n := NewNative(p)
		n.MaxBytes = 10
		_, err := n.Pick(ctx)
		assert.Error(t, err)
	})
}

func TestBrowserPick(t *testing.T) {
	ctx := context.Background()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "evidencia.png")
	require.NoError(t, err)
	_, err = fw.Write(testPNG(t, 20, 20))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("title", "PC no enciende"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest("POST", "/api/tickets", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	b := NewBrowser(r, "image")
	require.NoError(t, b.RequestPermission(ctx))
	pi, err := b.Pick(ctx)
	require.NoError(t, err)
	assert.Equal(t, "evidencia.png", pi.Name)
	assert.Equal(t, 20, pi.Preview.Width)

	_, err = NewBrowser(r, "missing").Pick(ctx)
	assert.ErrorIs(t, err, ErrPickCanceled)
}

func TestJPEG(t *testing.T) {
	data := testPNG(t, 3000, 1500)
	pi, err := newPicked("big.png", data)
	require.NoError(t, err)

	blob, err := JPEG(pi)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, maxDimension, img.Bounds().Dx())
	assert.Equal(t, 1024, img.Bounds().Dy())
}

func TestFitKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 400))
	out := fit(img, 100)
	assert.Equal(t, 2, out.Bounds().Dx())
	assert.Equal(t, 100, out.Bounds().Dy())

	assert.Same(t, img, fit(img, 400))
}
