package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PathInput is the input schema for tools that take a single PDF.
type PathInput struct {
	Path string `json:"path" jsonschema:"absolute path of the PDF file"`
}

// ClassifyOutput is the output schema for the classify tool.
type ClassifyOutput struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
}

// WordsOutput is the output schema for the extract tool.
type WordsOutput struct {
	File     string   `json:"file"`
	Category string   `json:"category"`
	Kind     string   `json:"kind"`
	Pages    int      `json:"pages"`
	Words    []string `json:"words"`
	Count    int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_pdf",
		Description: "Report whether a PDF has a text layer (digital) or needs OCR (scanned)",
	}, s.handleClassify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_words",
		Description: "Extract the unique words of a PDF in first-seen order",
	}, s.handleExtract)
}

func (s *Server) handleClassify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if input.Path == "" {
		return nil, ClassifyOutput{}, fmt.Errorf("path is required")
	}

	kind, err := s.ports.Extraction.Classify(ctx, input.Path)
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	return nil, ClassifyOutput{Path: input.Path, Kind: kind.String()}, nil
}

func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, WordsOutput, error) {
	if input.Path == "" {
		return nil, WordsOutput{}, fmt.Errorf("path is required")
	}

	rec, err := s.ports.Extraction.ExtractFile(ctx, input.Path)
	if err != nil {
		return nil, WordsOutput{}, err
	}

	words := rec.Words()
	if words == nil {
		words = []string{}
	}

	return nil, WordsOutput{
		File:     rec.FileName,
		Category: rec.Category,
		Kind:     rec.Kind.String(),
		Pages:    rec.Pages,
		Words:    words,
		Count:    len(words),
	}, nil
}
