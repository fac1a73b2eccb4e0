package domain

import (
	"fmt"
	"strings"
)

// Body identifies one of the ten charted celestial bodies.
// The set is closed; the declaration order is the chart order.
type Body int

// Charted bodies in chart order.
const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// bodyCount is the number of charted bodies.
const bodyCount = 10

var bodyNames = [bodyCount]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

var bodySymbols = [bodyCount]string{
	"☉", "☽", "☿", "♀", "♂", "♃", "♄", "⛢", "♆", "♇",
}

// Bodies returns all charted bodies in chart order.
func Bodies() []Body {
	bodies := make([]Body, bodyCount)
	for i := range bodies {
		bodies[i] = Body(i)
	}
	return bodies
}

// IsValid returns true if the body is one of the charted bodies.
func (b Body) IsValid() bool {
	return b >= Sun && b <= Pluto
}

// String returns the body's name.
func (b Body) String() string {
	if !b.IsValid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Symbol returns the astronomical glyph for the body.
func (b Body) Symbol() string {
	if !b.IsValid() {
		return "?"
	}
	return bodySymbols[b]
}

// MarshalText encodes the body as its name.
func (b Body) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBody, int(b))
	}
	return []byte(bodyNames[b]), nil
}

// UnmarshalText decodes a body from its name.
func (b *Body) UnmarshalText(text []byte) error {
	parsed, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBody parses a body name (case-insensitive) or glyph.
func ParseBody(s string) (Body, error) {
	s = strings.TrimSpace(s)
	for i := range bodyNames {
		if strings.EqualFold(s, bodyNames[i]) || s == bodySymbols[i] {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, s)
}
