package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWatermarkChangesImage(t *testing.T) {
	original := testPNG(t, 400, 300)

	marked := Watermark(original, "STARLINK JEWELS")
	require.NotEqual(t, original, marked)

	img, format, err := image.Decode(bytes.NewReader(marked))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestWatermarkPassesThroughGarbage(t *testing.T) {
	data := []byte("not an image at all")
	assert.Equal(t, data, Watermark(data, "STARLINK JEWELS"))
}

func TestWatermarkPassesThroughUnsupportedFormat(t *testing.T) {
	// GIFs are served as-is; only stills get the overlay.
	gif := []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")
	assert.Equal(t, gif, Watermark(gif, "STARLINK JEWELS"))
}

func TestStoreSkipsWatermarkWhenAsked(t *testing.T) {
	original := testPNG(t, 100, 100)
	var uploaded []byte
	svc := NewService(uploaderFunc(func(_ context.Context, _, _ string, data []byte) (string, error) {
		uploaded = data
		return "https://cdn/x.png", nil
	}), "STARLINK JEWELS")

	url, err := svc.Store(context.Background(), "products", "x.png", original, true)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.png", url)
	assert.Equal(t, original, uploaded)

	_, err = svc.Store(context.Background(), "products", "x.png", original, false)
	require.NoError(t, err)
	assert.NotEqual(t, original, uploaded)
}

func TestStoreValidatesPath(t *testing.T) {
	svc := NewService(PlaceholderUploader{}, "")

	_, err := svc.Store(context.Background(), "", "x.png", nil, true)
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = svc.Store(context.Background(), "../secrets", "x.png", nil, true)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

type uploaderFunc func(ctx context.Context, path, filename string, data []byte) (string, error)

func (f uploaderFunc) Upload(ctx context.Context, path, filename string, data []byte) (string, error) {
	return f(ctx, path, filename, data)
}
