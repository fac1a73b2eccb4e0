package domain

import (
	"fmt"
	"math"
	"strings"
)

// Sign is one of the twelve 30° bins of ecliptic longitude.
type Sign int

// Signs in order of increasing longitude.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

const (
	signCount = 12

	// SignWidth is the width of every sign in degrees.
	SignWidth = 30
)

var signNames = [signCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signSymbols = [signCount]string{
	"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓",
}

// Element is the classical element of a sign.
type Element string

// Elements cycle fire, earth, air, water from Aries.
const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// Modality is the quality of a sign.
type Modality string

// Modalities cycle cardinal, fixed, mutable from Aries.
const (
	ModalityCardinal Modality = "cardinal"
	ModalityFixed    Modality = "fixed"
	ModalityMutable  Modality = "mutable"
)

// Range is a half-open interval of ecliptic longitude [Start, End).
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether longitude lies in the range.
func (r Range) Contains(longitude float64) bool {
	return longitude >= float64(r.Start) && longitude < float64(r.End)
}

// Signs returns all signs in order of increasing longitude.
func Signs() []Sign {
	signs := make([]Sign, signCount)
	for i := range signs {
		signs[i] = Sign(i)
	}
	return signs
}

// ClassifySign returns the sign containing longitude.
// Longitude must already be normalised into [0, 360); anything else
// (including NaN) is ErrLongitudeOutOfRange.
func ClassifySign(longitude float64) (Sign, error) {
	if math.IsNaN(longitude) || longitude < 0 || longitude >= 360 {
		return 0, fmt.Errorf("%w: %v", ErrLongitudeOutOfRange, longitude)
	}
	return Sign(int(longitude) / SignWidth), nil
}

// IsValid returns true if the sign is one of the twelve signs.
func (s Sign) IsValid() bool {
	return s >= Aries && s <= Pisces
}

// StartDegree returns the longitude at which the sign begins.
func (s Sign) StartDegree() int {
	return int(s) * SignWidth
}

// Range returns the half-open longitude interval covered by the sign.
func (s Sign) Range() Range {
	start := s.StartDegree()
	return Range{Start: start, End: start + SignWidth}
}

// Next returns the following sign, wrapping Pisces to Aries.
func (s Sign) Next() Sign {
	return Sign((int(s) + 1) % signCount)
}

// Element returns the sign's element.
func (s Sign) Element() Element {
	return [...]Element{ElementFire, ElementEarth, ElementAir, ElementWater}[int(s)%4]
}

// Modality returns the sign's modality.
func (s Sign) Modality() Modality {
	return [...]Modality{ModalityCardinal, ModalityFixed, ModalityMutable}[int(s)%3]
}

// String returns the sign's name.
func (s Sign) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Symbol returns the zodiac glyph for the sign.
func (s Sign) Symbol() string {
	if !s.IsValid() {
		return "?"
	}
	return signSymbols[s]
}

// MarshalText encodes the sign as its name.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: sign %d", ErrInvalidInput, int(s))
	}
	return []byte(signNames[s]), nil
}

// UnmarshalText decodes a sign from its name.
func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSign parses a sign name (case-insensitive) or glyph.
func ParseSign(str string) (Sign, error) {
	str = strings.TrimSpace(str)
	for i := range signNames {
		if strings.EqualFold(str, signNames[i]) || str == signSymbols[i] {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sign %q", ErrInvalidInput, str)
}
