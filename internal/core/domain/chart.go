package domain

import (
	"encoding/json"
	"fmt"
)

// Chart holds one placement per charted body for a single instant.
// It is immutable once built; accessors return copies.
type Chart struct {
	date       Date
	dayCount   DayCount
	placements [bodyCount]Placement
}

// BodySign pairs a body with the sign it occupies.
type BodySign struct {
	Body Body `json:"body"`
	Sign Sign `json:"sign"`
}

// NewChart assembles a chart. Exactly one placement per body is required.
func NewChart(date Date, dayCount DayCount, placements []Placement) (*Chart, error) {
	if len(placements) != bodyCount {
		return nil, fmt.Errorf("%w: chart needs %d placements, got %d", ErrInvalidInput, bodyCount, len(placements))
	}

	c := &Chart{date: date, dayCount: dayCount}
	var seen [bodyCount]bool
	for _, p := range placements {
		if !p.Body.IsValid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownBody, int(p.Body))
		}
		if seen[p.Body] {
			return nil, fmt.Errorf("%w: duplicate placement for %s", ErrInvalidInput, p.Body)
		}
		seen[p.Body] = true
		c.placements[p.Body] = p
	}

	return c, nil
}

// Date returns the calendar date the chart was built for.
func (c *Chart) Date() Date {
	return c.date
}

// DayCount returns the Julian day count the chart was built for.
func (c *Chart) DayCount() DayCount {
	return c.dayCount
}

// Get returns the placement of a body.
func (c *Chart) Get(body Body) (Placement, bool) {
	if !body.IsValid() {
		return Placement{}, false
	}
	return c.placements[body], true
}

// Sign returns the sign a body occupies, or false for an unknown body.
func (c *Chart) Sign(body Body) (Sign, bool) {
	p, ok := c.Get(body)
	return p.Sign, ok
}

// Placements returns all placements in chart order.
func (c *Chart) Placements() []Placement {
	out := make([]Placement, bodyCount)
	copy(out, c.placements[:])
	return out
}

// Signs returns each body's sign in chart order.
func (c *Chart) Signs() []BodySign {
	out := make([]BodySign, bodyCount)
	for i, p := range c.placements {
		out[i] = BodySign{Body: p.Body, Sign: p.Sign}
	}
	return out
}

// Retrogrades returns the bodies flagged retrograde, in chart order.
func (c *Chart) Retrogrades() []Body {
	var bodies []Body
	for _, p := range c.placements {
		if p.Retrograde {
			bodies = append(bodies, p.Body)
		}
	}
	return bodies
}

// chartJSON is the wire form of a Chart.
type chartJSON struct {
	Date       Date        `json:"date"`
	DayCount   DayCount    `json:"day_count"`
	Placements []Placement `json:"placements"`
}

// MarshalJSON encodes the chart with placements in chart order.
func (c *Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartJSON{
		Date:       c.date,
		DayCount:   c.dayCount,
		Placements: c.Placements(),
	})
}

// UnmarshalJSON decodes a chart, enforcing the one-placement-per-body rule.
func (c *Chart) UnmarshalJSON(data []byte) error {
	var raw chartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewChart(raw.Date, raw.DayCount, raw.Placements)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}
