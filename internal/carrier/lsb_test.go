package carrier

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 13), G: uint8(y * 7), B: uint8(x + y), A: 255})
		}
	}
	return ImageFromRGBA(img)
}

// ─────────────────────────────────────────────
// Bits
// ─────────────────────────────────────────────

func TestBits_MSBFirst(t *testing.T) {
	b := BitsFromBytes([]byte{0b1010_0001})

	require.Equal(t, 8, b.Len())
	got := make([]uint32, 0, 8)
	for i := 0; i < b.Len(); i++ {
		got = append(got, b.At(i))
	}
	assert.Equal(t, []uint32{1, 0, 1, 0, 0, 0, 0, 1}, got)
}

func TestBits_DoesNotAliasInput(t *testing.T) {
	src := []byte{0xFF}
	b := BitsFromBytes(src)
	src[0] = 0

	assert.Equal(t, []byte{0xFF}, b.Bytes())
}

// ─────────────────────────────────────────────
// Plan / CapacityBits
// ─────────────────────────────────────────────

func TestCapacityBits(t *testing.T) {
	img := gradient(4, 4)

	one, err := CapacityBits(img, 1)
	require.NoError(t, err)
	two, err := CapacityBits(img, 2)
	require.NoError(t, err)

	assert.Equal(t, 64, one)
	assert.Equal(t, 128, two)
}

func TestCapacityBits_ZeroMeansDefault(t *testing.T) {
	got, err := CapacityBits(NewText("abc"), 0)

	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestValidateBitsPerUnit_Rejects(t *testing.T) {
	audio, err := NewAudio(8000, 1, make([]int16, 10))
	require.NoError(t, err)

	cases := []struct {
		name string
		c    Carrier
		bpu  int
	}{
		{"text two bits", NewText("hello"), 2},
		{"image three bits", gradient(2, 2), 3},
		{"audio negative", audio, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateBitsPerUnit(tc.c, tc.bpu)
			assert.ErrorIs(t, err, ErrInvalidBitsPerUnit)
		})
	}
}

func TestPlan_ExactBoundary(t *testing.T) {
	img := gradient(4, 4) // 64 units

	plan, err := Plan(img, make([]byte, 8), 1)
	require.NoError(t, err)
	assert.Equal(t, 64, plan.RequiredBits)
	assert.Equal(t, 64, plan.AvailableBits)
	assert.Equal(t, 64, plan.UnitsTouched)
	assert.Equal(t, KindImage, plan.Kind)

	_, err = Plan(img, make([]byte, 9), 1)
	require.ErrorIs(t, err, ErrInsufficientCapacity)

	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 72, capErr.Required)
	assert.Equal(t, 64, capErr.Available)
}

func TestPlan_TwoBitsHalvesUnitsTouched(t *testing.T) {
	plan, err := Plan(gradient(4, 4), make([]byte, 3), 2)

	require.NoError(t, err)
	assert.Equal(t, 24, plan.RequiredBits)
	assert.Equal(t, 12, plan.UnitsTouched)
}

func TestPlan_DoesNotTouchCarrier(t *testing.T) {
	img := gradient(4, 4)
	before := append([]byte(nil), img.Pix...)

	_, _ = Plan(img, make([]byte, 100), 1)

	assert.Equal(t, before, img.Pix)
}

// ─────────────────────────────────────────────
// Embed / Extract: image
// ─────────────────────────────────────────────

func TestEmbedExtract_Image_RoundTrip(t *testing.T) {
	for _, bpu := range []int{1, 2} {
		img := gradient(8, 8)
		payload := []byte("secret bytes")

		out, err := Embed(img, BitsFromBytes(payload), bpu)
		require.NoError(t, err)

		bits, err := Extract(out, 8*len(payload), bpu)
		require.NoError(t, err)
		assert.Equal(t, payload, bits.Bytes(), "bpu=%d", bpu)
	}
}

func TestEmbed_Image_OnlyLowBitsChange(t *testing.T) {
	img := gradient(8, 8)
	payload := bytes.Repeat([]byte{0xA5}, 16)

	out, err := Embed(img, BitsFromBytes(payload), 2)
	require.NoError(t, err)

	got := out.(*Image)
	for i := range img.Pix {
		assert.Equal(t, img.Pix[i]&^0b11, got.Pix[i]&^0b11, "unit %d", i)
	}
}

func TestEmbed_DoesNotMutateInput(t *testing.T) {
	img := gradient(4, 4)
	before := append([]byte(nil), img.Pix...)

	_, err := Embed(img, BitsFromBytes([]byte{0xFF, 0x00, 0xFF}), 1)

	require.NoError(t, err)
	assert.Equal(t, before, img.Pix)
}

func TestEmbed_OverCapacity_NoClone(t *testing.T) {
	out, err := Embed(gradient(1, 1), BitsFromBytes([]byte{1}), 1)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestEmbed_TrailingGroupPaddedWithZero(t *testing.T) {
	pix := bytes.Repeat([]byte{0xFF}, 3)
	img, err := NewImage(1, 1, 3, pix)
	require.NoError(t, err)

	// 5 bits over 2-bit units: groups 10, 11, 1 + padding 0.
	bits := newBits(5)
	for i, v := range []uint32{1, 0, 1, 1, 1} {
		bits.set(i, v)
	}

	out, err := Embed(img, bits, 2)
	require.NoError(t, err)

	assert.Equal(t, []byte{0xFE, 0xFF, 0xFE}, out.(*Image).Pix)
}

func TestExtract_PastCapacity(t *testing.T) {
	_, err := Extract(gradient(1, 1), 5, 1)

	assert.ErrorIs(t, err, ErrMissingData)
}

func TestImage_RGBARoundTrip(t *testing.T) {
	img := gradient(3, 2)

	rgba, err := img.RGBA()
	require.NoError(t, err)

	assert.Equal(t, img.Pix, ImageFromRGBA(rgba).Pix)
}

func TestNewImage_InvalidShape(t *testing.T) {
	_, err := NewImage(2, 2, 3, make([]byte, 11))
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewImage(2, 2, 5, make([]byte, 20))
	assert.ErrorIs(t, err, ErrInvalidShape)
}

// ─────────────────────────────────────────────
// Embed / Extract: audio
// ─────────────────────────────────────────────

func TestEmbedExtract_Audio_NegativeSamples(t *testing.T) {
	samples := []int16{-32768, -1, 0, 1, 32767, -200, 200, -3, 3, -5, 5, -7, 7, -9, 9, -11}
	audio, err := NewAudio(44100, 2, samples)
	require.NoError(t, err)

	payload := []byte{0x5A, 0xC3}
	out, err := Embed(audio, BitsFromBytes(payload), 1)
	require.NoError(t, err)

	got := out.(*Audio)
	for i, s := range samples {
		diff := int(got.Samples[i]) - int(s)
		assert.LessOrEqual(t, diff*diff, 1, "sample %d moved by %d", i, diff)
	}

	bits, err := Extract(out, 16, 1)
	require.NoError(t, err)
	assert.Equal(t, payload, bits.Bytes())
}

func TestNewAudio_InvalidShape(t *testing.T) {
	_, err := NewAudio(44100, 2, make([]int16, 3))
	assert.ErrorIs(t, err, ErrInvalidShape)
}

// ─────────────────────────────────────────────
// Embed / Extract: text
// ─────────────────────────────────────────────

func TestEmbedExtract_Text_VisibleUnchanged(t *testing.T) {
	cover := NewText("The quick brown fox jumps over the lazy dog")
	payload := []byte("ok")

	out, err := Embed(cover, BitsFromBytes(payload), 1)
	require.NoError(t, err)

	stego := NewText(out.(*Text).String())
	assert.Equal(t, cover.Visible(), stego.Visible())
	assert.Equal(t, 16, stego.Marked())

	bits, err := Extract(stego, 16, 1)
	require.NoError(t, err)
	assert.Equal(t, payload, bits.Bytes())
}

func TestEmbed_Text_StripsExistingMarks(t *testing.T) {
	cover := NewText("a\u200cb\u200bc\u200cd")
	require.Equal(t, 3, cover.Marked())

	out, err := Embed(cover, newBits(1), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, out.(*Text).Marked())
	assert.Equal(t, "a\u200bbcd", out.(*Text).String())
}

func TestNewText_DropsLeadingAndDuplicateMarks(t *testing.T) {
	txt := NewText("\u200ca\u200b\u200cb")

	assert.Equal(t, "ab", txt.Visible())
	assert.Equal(t, "a\u200bb", txt.String())
}

func TestExtract_Text_UnmarkedUnit(t *testing.T) {
	_, err := Extract(NewText("plain"), 3, 1)

	assert.ErrorIs(t, err, ErrMissingData)
}

func TestText_MultiByteRunesAreUnits(t *testing.T) {
	assert.Equal(t, 4, NewText("日本語!").Units())
}

// ─────────────────────────────────────────────
// Kind
// ─────────────────────────────────────────────

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{"text": KindText, " IMAGE ": KindImage, "audio": KindAudio} {
		got, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, byte(want), got.Tag())
	}

	_, err := ParseKind("video")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
