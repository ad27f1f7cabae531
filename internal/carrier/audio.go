package carrier

import "fmt"

// Audio is 16-bit signed PCM. Samples are interleaved by channel.
type Audio struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// NewAudio validates the shape and copies samples.
func NewAudio(sampleRate, channels int, samples []int16) (*Audio, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidShape, sampleRate, channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not split into %d channels", ErrInvalidShape, len(samples), channels)
	}

	return &Audio{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    append([]int16(nil), samples...),
	}, nil
}

func (a *Audio) Kind() Kind {
	return KindAudio
}

func (a *Audio) Units() int {
	return len(a.Samples)
}

func (a *Audio) Clone() Carrier {
	c := *a
	c.Samples = append([]int16(nil), a.Samples...)
	return &c
}

// unit exposes the two's complement bit pattern so only magnitude LSBs move.
func (a *Audio) unit(i int) (uint32, bool) {
	return uint32(uint16(a.Samples[i])), true
}

func (a *Audio) setUnit(i int, v uint32) {
	a.Samples[i] = int16(uint16(v))
}

func (a *Audio) maxBitsPerUnit() int {
	return MaxBitsPerUnit
}
