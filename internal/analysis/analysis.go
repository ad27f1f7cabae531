// Package analysis estimates how detectable a carrier is with simple
// first-order statistics. The scores are heuristics, not a steganalysis
// attack.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
)

// Level names a security score.
type Level string

const (
	LevelVeryLow  Level = "VERY_LOW"
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelVeryHigh Level = "VERY_HIGH"
)

// Detail keys reported in [Report.Details].
const (
	DetailLSBUniformity          = "lsb_uniformity"
	DetailZeroWidth              = "zero_width_characters"
	DetailWhitespaceIrregularity = "whitespace_irregularity"
	DetailCharacterDistribution  = "character_distribution_anomaly"
)

// Report is the outcome of [Analyze].
type Report struct {
	Kind                 carrier.Kind
	DetectionProbability float64
	SecurityScore        int
	Level                Level
	Details              map[string]float64
	Recommendations      []string
}

// Analyze scores c.
func Analyze(c carrier.Carrier) (Report, error) {
	switch v := c.(type) {
	case *carrier.Text:
		return AnalyzeText(v.String()), nil
	case *carrier.Image:
		return lsbReport(carrier.KindImage, len(v.Pix), func(i int) bool { return v.Pix[i]&1 == 1 }), nil
	case *carrier.Audio:
		return lsbReport(carrier.KindAudio, len(v.Samples), func(i int) bool { return v.Samples[i]&1 != 0 }), nil
	default:
		return Report{}, fmt.Errorf("%w: %T", carrier.ErrUnknownKind, c)
	}
}

// AnalyzeText scores raw text, including any invisible characters.
func AnalyzeText(s string) Report {
	details := map[string]float64{
		DetailZeroWidth:              zeroWidthScore(s),
		DetailWhitespaceIrregularity: whitespaceScore(s),
		DetailCharacterDistribution:  distributionScore(s),
	}
	p := math.Max(details[DetailZeroWidth], details[DetailWhitespaceIrregularity])
	return newReport(carrier.KindText, p, details)
}

// lsbReport measures how far the low bit plane is from an even split.
func lsbReport(kind carrier.Kind, n int, one func(int) bool) Report {
	score := 0.0
	if n > 0 {
		ones := 0
		for i := 0; i < n; i++ {
			if one(i) {
				ones++
			}
		}
		score = 2 * math.Abs(float64(ones)/float64(n)-0.5)
	}
	return newReport(kind, score, map[string]float64{DetailLSBUniformity: score})
}

func newReport(kind carrier.Kind, p float64, details map[string]float64) Report {
	score, level := securityScore(p)
	r := Report{
		Kind:                 kind,
		DetectionProbability: p,
		SecurityScore:        score,
		Level:                level,
		Details:              details,
	}
	r.Recommendations = recommendations(r)
	return r
}

// securityScore maps 1-p onto five bands.
func securityScore(p float64) (int, Level) {
	switch v := 1 - p; {
	case v < 0.2:
		return 1, LevelVeryLow
	case v < 0.4:
		return 2, LevelLow
	case v < 0.6:
		return 3, LevelMedium
	case v < 0.8:
		return 4, LevelHigh
	default:
		return 5, LevelVeryHigh
	}
}

func recommendations(r Report) []string {
	var out []string
	if r.SecurityScore <= 2 {
		out = append(out,
			"Consider using a more secure steganography technique.",
			"Always use encryption with your hidden messages.")
	}
	if r.Details[DetailLSBUniformity] > 0.1 {
		out = append(out, "The LSB pattern is detectable. Try using a more random embedding pattern.")
	}
	if r.Details[DetailZeroWidth] > 0.5 {
		out = append(out, "Zero-width characters are present. Use a longer cover text to dilute them.")
	}
	return out
}

func isZeroWidth(r rune) bool {
	return (r >= 0x200B && r <= 0x200F) || (r >= 0x2060 && r <= 0x2064) || r == 0xFEFF
}

func zeroWidthScore(s string) float64 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	zw := 0
	for _, r := range s {
		if isZeroWidth(r) {
			zw++
		}
	}
	return math.Min(1, 100*float64(zw)/float64(n))
}

func whitespaceScore(s string) float64 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}

	spaces := strings.Count(s, " ")
	tabs := strings.Count(s, "\t")

	runs, trailing := 0, 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasSuffix(line, " ") {
			trailing++
		}
		inRun := false
		for i := 1; i < len(line); i++ {
			double := line[i] == ' ' && line[i-1] == ' '
			if double && !inRun {
				runs++
			}
			inRun = double
		}
	}

	ratio := float64(spaces+tabs) / float64(n)
	irregular := float64(runs+trailing) / float64(spaces+1)
	return math.Min(1, 0.3*ratio+0.7*irregular)
}

// distributionScore compares the Shannon entropy of s with the value typical
// for natural language.
func distributionScore(s string) float64 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}

	// sorted for a stable floating point sum
	freq := make([]int, 0, len(counts))
	for _, c := range counts {
		freq = append(freq, c)
	}
	sort.Ints(freq)

	entropy := 0.0
	for _, c := range freq {
		p := float64(c) / float64(n)
		entropy -= p * math.Log2(p)
	}
	return math.Min(1, 2*math.Abs(entropy/4.5-0.75))
}
