package domain

import "fmt"

// Placement is a body's zodiacal state at one instant.
type Placement struct {
	Body Body `json:"body"`
	Sign Sign `json:"sign"`

	// Degrees is the offset into Sign, always in [0, 30).
	Degrees Degrees `json:"degrees"`

	// Longitude, Latitude and Distance are the geocentric ecliptic position
	// the placement was derived from. Distance is in AU.
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Distance  float64 `json:"distance"`

	// Retrograde is set when longitude decreases over the following minute.
	Retrograde bool `json:"retrograde"`
}

// NewPlacement classifies a geocentric position into a placement.
func NewPlacement(body Body, pos EclipticPosition, retrograde bool) (Placement, error) {
	if !body.IsValid() {
		return Placement{}, fmt.Errorf("%w: %d", ErrUnknownBody, int(body))
	}

	sign, err := ClassifySign(pos.Longitude)
	if err != nil {
		return Placement{}, fmt.Errorf("classifying %s: %w", body, err)
	}

	return Placement{
		Body:       body,
		Sign:       sign,
		Degrees:    Degrees(pos.Longitude - float64(sign.StartDegree())),
		Longitude:  pos.Longitude,
		Latitude:   pos.Latitude,
		Distance:   pos.Distance,
		Retrograde: retrograde,
	}, nil
}

// String formats the placement, e.g. "Mercury 8° 12' Scorpio (R)".
func (p Placement) String() string {
	s := fmt.Sprintf("%s %s %s", p.Body, p.Degrees, p.Sign)
	if p.Retrograde {
		s += " (R)"
	}
	return s
}

// SymbolString formats the placement with glyphs, e.g. "☿ 8° 12' ♏ ℞".
func (p Placement) SymbolString() string {
	s := fmt.Sprintf("%s %s %s", p.Body.Symbol(), p.Degrees, p.Sign.Symbol())
	if p.Retrograde {
		s += " ℞"
	}
	return s
}
