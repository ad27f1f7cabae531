package media

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
)

const (
	wavFormatPCM     = 1
	wavBitsPerSample = 16
	wavHeaderSize    = 44
)

// DecodeWAV reads a RIFF/WAVE file holding 16-bit PCM. Chunks other than
// "fmt " and "data" are skipped.
func DecodeWAV(data []byte) (*carrier.Audio, error) {
	if f := Sniff(data); f != FormatWAV {
		return nil, unsupported(f)
	}

	var (
		sampleRate, channels int
		haveFmt              bool
		pcm                  []byte
	)
	for off := 12; off+8 <= len(data); {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if size < 0 || body+size > len(data) {
			return nil, fmt.Errorf("%w: wav chunk %q overruns the file", carrier.ErrInvalidShape, id)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: wav fmt chunk of %d bytes", carrier.ErrInvalidShape, size)
			}
			chunk := data[body : body+size]
			format := binary.LittleEndian.Uint16(chunk[0:2])
			bits := binary.LittleEndian.Uint16(chunk[14:16])
			if format != wavFormatPCM || bits != wavBitsPerSample {
				return nil, fmt.Errorf("%w: wav format %d with %d bits per sample, want 16-bit PCM",
					carrier.ErrUnsupportedCarrierEncoding, format, bits)
			}
			channels = int(binary.LittleEndian.Uint16(chunk[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(chunk[4:8]))
			haveFmt = true
		case "data":
			pcm = data[body : body+size]
		}

		off = body + size + size%2
	}

	if !haveFmt || pcm == nil {
		return nil, fmt.Errorf("%w: wav without fmt or data chunk", carrier.ErrInvalidShape)
	}

	samples := make([]int16, len(pcm)/2)
	if err := binary.Read(bytes.NewReader(pcm[:2*len(samples)]), binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("read wav samples: %w", err)
	}
	return carrier.NewAudio(sampleRate, channels, samples)
}

// EncodeWAV writes a canonical 44-byte-header WAV file.
func EncodeWAV(a *carrier.Audio) ([]byte, error) {
	dataSize := 2 * len(a.Samples)
	blockAlign := a.Channels * 2

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+dataSize))
	buf.WriteString("RIFF")
	header := []any{
		uint32(36 + dataSize),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(wavFormatPCM),
		uint16(a.Channels),
		uint32(a.SampleRate),
		uint32(a.SampleRate * blockAlign),
		uint16(blockAlign),
		uint16(wavBitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(dataSize),
		a.Samples,
	}
	for _, v := range header {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("write wav: %w", err)
		}
	}
	return buf.Bytes(), nil
}
