package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// ChartInput is the input schema for the chart tool.
type ChartInput struct {
	Date string `json:"date,omitempty" jsonschema:"UTC date as YYYY-MM-DD or YYYY-MM-DDTHH:MM[:SS] (default now)"`
}

// ChartOutput is the output schema for the chart tool.
type ChartOutput struct {
	Date        string            `json:"date"`
	DayCount    float64           `json:"day_count"`
	Placements  []PlacementOutput `json:"placements"`
	Retrogrades []string          `json:"retrogrades,omitempty"`
}

// PlacementInput is the input schema for the placement tool.
type PlacementInput struct {
	Body string `json:"body" jsonschema:"one of Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto"`
	Date string `json:"date,omitempty" jsonschema:"UTC date as YYYY-MM-DD or YYYY-MM-DDTHH:MM[:SS] (default now)"`
}

// PlacementOutput represents a single body's placement.
type PlacementOutput struct {
	Body       string  `json:"body"`
	Sign       string  `json:"sign"`
	Degrees    float64 `json:"degrees"`
	Position   string  `json:"position"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	Distance   float64 `json:"distance_au"`
	Retrograde bool    `json:"retrograde"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "chart",
		Description: "Compute the zodiac sign, degrees and retrograde state of every body for a date",
	}, s.handleChart)

	if s.ports.Placement != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "placement",
			Description: "Compute the zodiac placement of a single body for a date",
		}, s.handlePlacement)
	}
}

// handleChart handles the chart tool invocation.
func (s *Server) handleChart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChartInput,
) (*mcp.CallToolResult, ChartOutput, error) {
	if err := s.wait(ctx); err != nil {
		return nil, ChartOutput{}, err
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, ChartOutput{}, err
	}

	chart, err := s.ports.Chart.Build(ctx, date)
	if err != nil {
		return nil, ChartOutput{}, err
	}

	return nil, toChartOutput(chart), nil
}

// handlePlacement handles the placement tool invocation.
func (s *Server) handlePlacement(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlacementInput,
) (*mcp.CallToolResult, PlacementOutput, error) {
	if s.ports.Placement == nil {
		return nil, PlacementOutput{}, errors.New("placement service not configured")
	}
	if err := s.wait(ctx); err != nil {
		return nil, PlacementOutput{}, err
	}

	body, err := domain.ParseBody(input.Body)
	if err != nil {
		return nil, PlacementOutput{}, err
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, PlacementOutput{}, err
	}
	if err := date.Validate(); err != nil {
		return nil, PlacementOutput{}, err
	}

	placement, err := s.ports.Placement.Build(ctx, body, date.DayCount())
	if err != nil {
		return nil, PlacementOutput{}, fmt.Errorf("placing %s: %w", body, err)
	}

	return nil, toPlacementOutput(placement), nil
}

// parseDate reads an optional date argument, defaulting to now.
func (s *Server) parseDate(value string) (domain.Date, error) {
	if strings.TrimSpace(value) == "" {
		return domain.DateFromTime(s.now()), nil
	}
	return domain.ParseDate(value)
}

func toChartOutput(chart *domain.Chart) ChartOutput {
	placements := chart.Placements()
	output := ChartOutput{
		Date:       chart.Date().String(),
		DayCount:   chart.DayCount().Float(),
		Placements: make([]PlacementOutput, len(placements)),
	}

	for i, p := range placements {
		output.Placements[i] = toPlacementOutput(p)
	}
	for _, body := range chart.Retrogrades() {
		output.Retrogrades = append(output.Retrogrades, body.String())
	}

	return output
}

func toPlacementOutput(p domain.Placement) PlacementOutput {
	return PlacementOutput{
		Body:       p.Body.String(),
		Sign:       p.Sign.String(),
		Degrees:    float64(p.Degrees),
		Position:   p.String(),
		Longitude:  p.Longitude,
		Latitude:   p.Latitude,
		Distance:   p.Distance,
		Retrograde: p.Retrograde,
	}
}
