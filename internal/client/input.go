package client

import (
	"io"
	"os"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
	"github.com/MKhiriev/go-stego-channel/internal/media"
)

// readInput reads path, or a.in when path is "-".
func (a *App) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(a.in)
	}
	return os.ReadFile(path)
}

// carrierKind returns the --kind flag, or the kind sniffed from data.
func carrierKind(flag string, data []byte) string {
	if flag != "" {
		return flag
	}

	switch media.Sniff(data) {
	case media.FormatPNG, media.FormatBMP, media.FormatJPEG, media.FormatGIF:
		return carrier.KindImage.String()
	case media.FormatWAV, media.FormatMP3, media.FormatOGG, media.FormatFLAC:
		return carrier.KindAudio.String()
	default:
		return carrier.KindText.String()
	}
}
