package carrier

import (
	"fmt"
	"image"
)

// Image is a raw pixel buffer. Pix holds Width*Height*Channels bytes in
// row-major order without padding.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewImage validates the shape and copies pix.
func NewImage(width, height, channels int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 || channels < 1 || channels > 4 {
		return nil, fmt.Errorf("%w: %dx%d with %d channels", ErrInvalidShape, width, height, channels)
	}
	if len(pix) != width*height*channels {
		return nil, fmt.Errorf("%w: want %d pixel bytes, got %d", ErrInvalidShape, width*height*channels, len(pix))
	}

	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      append([]byte(nil), pix...),
	}, nil
}

// ImageFromRGBA flattens an [image.RGBA] into a 4-channel carrier,
// dropping any stride padding.
func ImageFromRGBA(img *image.RGBA) *Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		off := y * img.Stride
		pix = append(pix, img.Pix[off:off+w*4]...)
	}
	return &Image{Width: w, Height: h, Channels: 4, Pix: pix}
}

// ImageFromNRGBA flattens img keeping its first channels channels: 4 keeps
// alpha, 3 drops it.
func ImageFromNRGBA(img *image.NRGBA, channels int) (*Image, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: NRGBA source needs 3 or 4 channels, got %d", ErrInvalidShape, channels)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 0, w*h*channels)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		if channels == 4 {
			pix = append(pix, row...)
			continue
		}
		for x := 0; x < w; x++ {
			pix = append(pix, row[4*x:4*x+3]...)
		}
	}
	return &Image{Width: w, Height: h, Channels: channels, Pix: pix}, nil
}

// RGBA converts a 4-channel carrier back into an [image.RGBA], copying the
// bytes as they are.
func (m *Image) RGBA() (*image.RGBA, error) {
	if m.Channels != 4 {
		return nil, fmt.Errorf("%w: RGBA needs 4 channels, have %d", ErrInvalidShape, m.Channels)
	}
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	copy(img.Pix, m.Pix)
	return img, nil
}

// NRGBA converts a 3- or 4-channel carrier into an [image.NRGBA]. A missing
// alpha channel becomes fully opaque.
func (m *Image) NRGBA() (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	switch m.Channels {
	case 4:
		copy(img.Pix, m.Pix)
	case 3:
		for i, j := 0, 0; i < len(m.Pix); i, j = i+3, j+4 {
			copy(img.Pix[j:j+3], m.Pix[i:i+3])
			img.Pix[j+3] = 0xFF
		}
	default:
		return nil, fmt.Errorf("%w: NRGBA needs 3 or 4 channels, have %d", ErrInvalidShape, m.Channels)
	}
	return img, nil
}

func (m *Image) Kind() Kind {
	return KindImage
}

func (m *Image) Units() int {
	return len(m.Pix)
}

func (m *Image) Clone() Carrier {
	c := *m
	c.Pix = append([]byte(nil), m.Pix...)
	return &c
}

func (m *Image) unit(i int) (uint32, bool) {
	return uint32(m.Pix[i]), true
}

func (m *Image) setUnit(i int, v uint32) {
	m.Pix[i] = byte(v)
}

func (m *Image) maxBitsPerUnit() int {
	return MaxBitsPerUnit
}
