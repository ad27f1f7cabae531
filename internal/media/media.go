// Package media converts encoded files into carriers and back.
//
// Only lossless encodings are accepted: PNG and BMP images, 16-bit PCM WAV
// audio and UTF-8 text. Lossy or unknown formats fail with
// [carrier.ErrUnsupportedCarrierEncoding] because re-encoding them would
// destroy embedded bits.
package media

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
)

// Format is a sniffed file format.
type Format string

const (
	FormatUnknown Format = ""
	FormatPNG     Format = "png"
	FormatBMP     Format = "bmp"
	FormatWAV     Format = "wav"
	FormatJPEG    Format = "jpeg"
	FormatGIF     Format = "gif"
	FormatMP3     Format = "mp3"
	FormatOGG     Format = "ogg"
	FormatFLAC    Format = "flac"
	FormatText    Format = "text"
)

var signatures = []struct {
	format Format
	magic  []byte
	offset int
}{
	{FormatPNG, []byte("\x89PNG\r\n\x1a\n"), 0},
	{FormatBMP, []byte("BM"), 0},
	{FormatWAV, []byte("WAVE"), 8},
	{FormatJPEG, []byte{0xFF, 0xD8, 0xFF}, 0},
	{FormatGIF, []byte("GIF8"), 0},
	{FormatMP3, []byte("ID3"), 0},
	{FormatMP3, []byte{0xFF, 0xFB}, 0},
	{FormatOGG, []byte("OggS"), 0},
	{FormatFLAC, []byte("fLaC"), 0},
}

// Sniff identifies data by its magic bytes.
func Sniff(data []byte) Format {
	for _, s := range signatures {
		end := s.offset + len(s.magic)
		if len(data) >= end && bytes.Equal(data[s.offset:end], s.magic) {
			if s.format == FormatWAV && !bytes.HasPrefix(data, []byte("RIFF")) {
				continue
			}
			return s.format
		}
	}
	return FormatUnknown
}

// Decode turns data into a carrier of the requested kind. For images and
// audio the detected format is returned so the artifact can be written back
// the same way.
func Decode(kind carrier.Kind, data []byte) (carrier.Carrier, Format, error) {
	switch kind {
	case carrier.KindText:
		t, err := DecodeText(data)
		return t, FormatText, err
	case carrier.KindImage:
		return DecodeImage(data)
	case carrier.KindAudio:
		a, err := DecodeWAV(data)
		return a, FormatWAV, err
	default:
		return nil, FormatUnknown, fmt.Errorf("%w: %s", carrier.ErrUnknownKind, kind)
	}
}

// Encode writes c in format. Text ignores format.
func Encode(c carrier.Carrier, format Format) ([]byte, error) {
	switch v := c.(type) {
	case *carrier.Text:
		return []byte(v.String()), nil
	case *carrier.Image:
		return EncodeImage(v, format)
	case *carrier.Audio:
		return EncodeWAV(v)
	default:
		return nil, fmt.Errorf("%w: %T", carrier.ErrUnknownKind, c)
	}
}

// DecodeText parses UTF-8 text.
func DecodeText(data []byte) (*carrier.Text, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", carrier.ErrUnsupportedCarrierEncoding)
	}
	return carrier.NewText(string(data)), nil
}

func unsupported(f Format) error {
	if f == FormatUnknown {
		return fmt.Errorf("%w: unrecognized format", carrier.ErrUnsupportedCarrierEncoding)
	}
	return fmt.Errorf("%w: %s is lossy or not supported", carrier.ErrUnsupportedCarrierEncoding, f)
}
