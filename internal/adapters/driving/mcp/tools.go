package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

// LoadInput is the input schema for the load_document tool.
type LoadInput struct {
	Path   string `json:"path" jsonschema:"absolute path of the legal PDF to load"`
	Method string `json:"method,omitempty" jsonschema:"extraction strategy: ocrmypdf (default) or pdf2image"`
}

// LoadOutput is the output schema for the load_document tool.
type LoadOutput struct {
	Success  bool     `json:"success"`
	Statuses []string `json:"statuses"`
}

// AskInput is the input schema for the ask_document tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to ask about the loaded document"`
}

// AskOutput is the output schema for the ask_document tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// FAQOutput is the output schema for the run_faq tool.
type FAQOutput struct {
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
	Report    string   `json:"report"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_document",
		Description: "Load a legal PDF, validate it and index it for questions",
	}, s.handleLoad)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Ask a question about the currently loaded legal document",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_faq",
		Description: "Run the fixed FAQ question sequence against the loaded document",
	}, s.handleFAQ)
}

// handleLoad handles the load_document tool invocation.
func (s *Server) handleLoad(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadInput,
) (*mcp.CallToolResult, LoadOutput, error) {
	if input.Method != "" {
		if err := s.ports.Ingest.SetMethod(domain.ExtractionMethod(input.Method)); err != nil {
			return nil, LoadOutput{}, err
		}
	}

	output := LoadOutput{}
	for status := range s.ports.Ingest.Load(ctx, input.Path) {
		output.Statuses = append(output.Statuses, status.Message)
		if status.Done() {
			output.Success = true
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask_document tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Ask.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer}, nil
}

// handleFAQ handles the run_faq tool invocation.
func (s *Server) handleFAQ(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FAQOutput, error) {
	report, err := s.ports.FAQ.RunFAQ(ctx)
	if err != nil {
		return nil, FAQOutput{}, err
	}

	return nil, FAQOutput{
		Questions: report.Questions,
		Answers:   report.Answers,
		Report:    report.Format(),
	}, nil
}
