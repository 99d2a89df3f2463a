package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for pdfwords resources.
	uriScheme = "pdfwords://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "config",
		Name:        "config",
		Description: "Configuration values set in the config file",
		MIMEType:    "application/json",
	}, s.handleConfigResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{category}/{file}",
		Name:        "document-words",
		Description: "Unique words of a PDF under the input root",
		MIMEType:    "text/plain",
	}, s.handleDocumentWordsResource)
}

// configInfo is the JSON body of the config resource.
type configInfo struct {
	Path   string            `json:"path"`
	Values map[string]string `json:"values"`
}

func (s *Server) handleConfigResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info := configInfo{Values: make(map[string]string)}

	if s.ports.Config != nil {
		info.Path = s.ports.Config.Path()
		for _, key := range domain.ConfigKeys() {
			val, ok, err := s.ports.Config.Get(key.Name)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", key.Name, err)
			}
			if ok {
				info.Values[key.Name] = val
			}
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleDocumentWordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	category, file := parseDocumentURI(req.Params.URI)
	if category == "" || file == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Extraction.ExtractFile(ctx, filepath.Join(s.ports.Root, category, file))
	if err != nil {
		return nil, fmt.Errorf("extracting %s/%s: %w", category, file, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     rec.JoinedWords(),
		}},
	}, nil
}

// parseDocumentURI splits pdfwords://documents/{category}/{file} and
// unescapes both names. Empty
// strings are returned for anything else, including names that would leave
// the category folder.
func parseDocumentURI(uri string) (category, file string) {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	parts := strings.Split(strings.TrimPrefix(uri, prefix), "/")
	if len(parts) != 2 {
		return "", ""
	}
	for i, p := range parts {
		name, err := url.PathUnescape(p)
		if err != nil || name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return "", ""
		}
		parts[i] = name
	}

	return parts[0], parts[1]
}
