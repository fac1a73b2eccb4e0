package mcp

import "github.com/custodia-labs/astrolabe/internal/core/ports/driving"

// Ports are the services the MCP server calls into.
type Ports struct {
	Chart driving.ChartService

	// Placement backs the placement tool. Without it the tool reports an error.
	Placement driving.PlacementService

	// History backs the zodiac://history resources, which are only
	// registered when it is set.
	History driving.HistoryService
}

// Validate reports ErrMissingChartService when Chart is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Chart == nil {
		return ErrMissingChartService
	}
	return nil
}
