package media

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Watermark draws translucent centered text over a PNG or JPEG. Any
// format or rendering problem returns the original bytes untouched;
// uploads must not fail over a watermark.
func Watermark(data []byte, text string) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	if format != "png" && format != "jpeg" {
		return data
	}

	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	size := float64(bounds.Dx()) / 20
	if size < 20 {
		size = 20
	}
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return data
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return data
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 51}),
		Face: face,
	}
	width := drawer.MeasureString(text)
	drawer.Dot = fixed.Point26_6{
		X: fixed.I(bounds.Min.X+bounds.Dx()/2) - width/2,
		Y: fixed.I(bounds.Min.Y + bounds.Dy()/2),
	}
	drawer.DrawString(text)

	var out bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&out, canvas)
	case "jpeg":
		err = jpeg.Encode(&out, canvas, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return data
	}
	return out.Bytes()
}
