package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for astrolabe resources.
	uriScheme = "zodiac://"
)

// historyListLimit caps the history resource listing.
const historyListLimit = 50

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "signs",
		Name:        "signs",
		Description: "The twelve zodiac signs with their longitude ranges, elements and modalities",
		MIMEType:    "application/json",
	}, s.handleSignsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "bodies",
		Name:        "bodies",
		Description: "The charted bodies in chart order",
		MIMEType:    "application/json",
	}, s.handleBodiesResource)

	if s.ports.History == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recently saved charts",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{chartId}",
		Name:        "saved-chart",
		Description: "A saved chart with all placements",
		MIMEType:    "application/json",
	}, s.handleSavedChartResource)
}

// signInfo describes a sign for the signs resource.
type signInfo struct {
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Start    int             `json:"start"`
	End      int             `json:"end"`
	Element  domain.Element  `json:"element"`
	Modality domain.Modality `json:"modality"`
}

// handleSignsResource returns the sign table.
func (s *Server) handleSignsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	signs := domain.Signs()
	infos := make([]signInfo, len(signs))
	for i, sign := range signs {
		r := sign.Range()
		infos[i] = signInfo{
			Name:     sign.String(),
			Symbol:   sign.Symbol(),
			Start:    r.Start,
			End:      r.End,
			Element:  sign.Element(),
			Modality: sign.Modality(),
		}
	}
	return jsonResource(req.Params.URI, infos, "signs")
}

// handleBodiesResource returns the charted bodies.
func (s *Server) handleBodiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type bodyInfo struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	}

	bodies := domain.Bodies()
	infos := make([]bodyInfo, len(bodies))
	for i, body := range bodies {
		infos[i] = bodyInfo{Name: body.String(), Symbol: body.Symbol()}
	}
	return jsonResource(req.Params.URI, infos, "bodies")
}

// handleHistoryResource lists recently saved charts.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.History.List(ctx, domain.HistoryFilter{Limit: historyListLimit})
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type recordInfo struct {
		ID        string `json:"id"`
		Label     string `json:"label,omitempty"`
		Date      string `json:"date"`
		CreatedAt string `json:"created_at"`
		URI       string `json:"uri"`
	}

	infos := make([]recordInfo, len(records))
	for i := range records {
		infos[i] = recordInfo{
			ID:        records[i].ID,
			Label:     records[i].Label,
			Date:      records[i].Chart.Date().String(),
			CreatedAt: records[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			URI:       uriScheme + "history/" + records[i].ID,
		}
	}
	return jsonResource(req.Params.URI, infos, "history")
}

// handleSavedChartResource returns one saved chart.
func (s *Server) handleSavedChartResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract chartId from URI: zodiac://history/{chartId}
	id := extractChartID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.History.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting chart: %w", err)
	}

	return jsonResource(req.Params.URI, toChartOutput(record.Chart), "chart")
}

// jsonResource encodes v as a single JSON resource content.
func jsonResource(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractChartID extracts the chart ID from a URI like zodiac://history/{chartId}.
func extractChartID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
