package media

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/bmp"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
)

// DecodeImage decodes a PNG into a 4-channel (RGBA) carrier or a BMP into a
// 3-channel (RGB) one. Pixels are kept non-premultiplied so every channel
// byte survives a decode/encode cycle unchanged.
func DecodeImage(data []byte) (*carrier.Image, Format, error) {
	format := Sniff(data)

	var (
		img      image.Image
		channels int
		err      error
	)
	switch format {
	case FormatPNG:
		img, err = png.Decode(bytes.NewReader(data))
		channels = 4
	case FormatBMP:
		img, err = bmp.Decode(bytes.NewReader(data))
		channels = 3
	default:
		return nil, format, unsupported(format)
	}
	if err != nil {
		return nil, format, fmt.Errorf("decode %s: %w", format, err)
	}

	c, err := carrier.ImageFromNRGBA(toNRGBA(img), channels)
	if err != nil {
		return nil, format, err
	}
	return c, format, nil
}

// EncodeImage writes img as PNG (the default) or 24-bit BMP.
func EncodeImage(img *carrier.Image, format Format) ([]byte, error) {
	nrgba, err := img.NRGBA()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatPNG, FormatUnknown:
		err = png.Encode(&buf, nrgba)
	case FormatBMP:
		if img.Channels != 3 {
			return nil, fmt.Errorf("%w: BMP artifacts carry 3 channels, have %d", carrier.ErrInvalidShape, img.Channels)
		}
		err = bmp.Encode(&buf, opaqueRGBA(nrgba))
	default:
		return nil, unsupported(format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

// opaqueRGBA reinterprets a fully opaque NRGBA image; premultiplication is a
// no-op at alpha 255.
func opaqueRGBA(n *image.NRGBA) *image.RGBA {
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}
