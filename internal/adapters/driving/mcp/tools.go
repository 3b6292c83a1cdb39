package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// ExtractInput is the input schema for the extract_ingredients tool.
type ExtractInput struct {
	Text    string   `json:"text" jsonschema:"the screen or label text to search"`
	Anchors []string `json:"anchors,omitempty" jsonschema:"anchor phrases that start the block (default: configured anchors)"`
	Stops   []string `json:"stops,omitempty" jsonschema:"stop phrases that end the block (default: configured stops)"`
}

// ExtractOutput is the output schema for the extract_ingredients tool.
type ExtractOutput struct {
	Found  bool   `json:"found"`
	Block  string `json:"block"`
	Anchor string `json:"anchor,omitempty"`
	Stop   string `json:"stop,omitempty"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// ScanInput is the input schema for the scan tools.
type ScanInput struct{}

// ScanOutput is the output schema for the scan tools.
type ScanOutput struct {
	Scanning bool          `json:"scanning"`
	Ready    bool          `json:"ready"`
	Record   *RecordOutput `json:"record,omitempty"`
}

// RecordOutput represents a single scan record.
type RecordOutput struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Outcome   string `json:"outcome"`
	Anchor    string `json:"anchor,omitempty"`
	Text      string `json:"text"`
	RawLength int    `json:"raw_length"`
	CreatedAt string `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_ingredients",
		Description: "Find the ingredient list inside a block of product or label text",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "start_scan",
		Description: "Start a scan of the bound screen and return the result",
	}, s.handleStartScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "stop_scan",
		Description: "Cancel the pending scan",
	}, s.handleStopScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan_status",
		Description: "Report whether a scan is pending and a screen is bound",
	}, s.handleScanStatus)
}

// handleExtract handles the extract_ingredients tool invocation.
func (s *Server) handleExtract(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	block, err := s.ports.Extract.ExtractWith(input.Text, input.Anchors, input.Stops)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	return nil, ExtractOutput{
		Found:  block.Found(),
		Block:  block.Text,
		Anchor: block.Anchor,
		Stop:   block.Stop,
		Start:  block.Start,
		End:    block.End,
	}, nil
}

// handleStartScan handles the start_scan tool invocation.
func (s *Server) handleStartScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	if s.ports.Scan == nil {
		return nil, ScanOutput{}, ErrScanUnavailable
	}

	record, err := s.ports.Scan.Start(ctx)
	if err != nil {
		return nil, ScanOutput{}, err
	}

	output := s.status()
	if record != nil {
		out := toRecordOutput(*record)
		output.Record = &out
	}
	return nil, output, nil
}

// handleStopScan handles the stop_scan tool invocation.
func (s *Server) handleStopScan(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	if s.ports.Scan == nil {
		return nil, ScanOutput{}, ErrScanUnavailable
	}

	s.ports.Scan.Stop()
	return nil, s.status(), nil
}

// handleScanStatus handles the scan_status tool invocation.
func (s *Server) handleScanStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	if s.ports.Scan == nil {
		return nil, ScanOutput{}, ErrScanUnavailable
	}
	return nil, s.status(), nil
}

func (s *Server) status() ScanOutput {
	return ScanOutput{
		Scanning: s.ports.Scan.IsScanning(),
		Ready:    s.ports.Scan.IsReady(),
	}
}

func toRecordOutput(r domain.ScanRecord) RecordOutput {
	return RecordOutput{
		ID:        r.ID,
		Source:    r.Source,
		Outcome:   r.Outcome.String(),
		Anchor:    r.Anchor,
		Text:      r.Text,
		RawLength: r.RawLength,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
