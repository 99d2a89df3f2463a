// Package filesystem enumerates PDFs from category folders on local disk.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.DocumentSource = (*Connector)(nil)

const pdfExt = ".pdf"

// Connector lists the PDFs directly inside root/<category> for each
// configured category. Subdirectories are not descended into.
type Connector struct {
	rootPath      string
	categories    []string
	ignoreCaseExt bool
}

// Option configures a Connector.
type Option func(*Connector)

// WithIgnoreCaseExt also matches extensions such as ".PDF".
func WithIgnoreCaseExt(ignore bool) Option {
	return func(c *Connector) {
		c.ignoreCaseExt = ignore
	}
}

// New creates a filesystem connector.
func New(rootPath string, categories []string, opts ...Option) *Connector {
	c := &Connector{
		rootPath:   rootPath,
		categories: append([]string(nil), categories...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// Validate checks that the root exists and is a directory.
func (c *Connector) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.rootPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: root %s does not exist", domain.ErrNotFound, c.rootPath)
		}
		return fmt.Errorf("cannot access root %s: %w", c.rootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: root %s is not a directory", domain.ErrInvalidInput, c.rootPath)
	}
	return nil
}

// List enumerates the documents category by category, in configured
// category order and lexical file name order within a category. Missing
// category folders are reported in the listing rather than as an error;
// a missing root means every category is missing.
func (c *Connector) List(ctx context.Context) (*driven.Listing, error) {
	listing := &driven.Listing{}
	if err := c.Validate(ctx); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		listing.MissingCategories = append(listing.MissingCategories, c.categories...)
		return listing, nil
	}

	for _, category := range c.categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := filepath.Join(c.rootPath, category)
		files, err := c.pdfFiles(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				listing.MissingCategories = append(listing.MissingCategories, category)
				continue
			}
			return nil, fmt.Errorf("list %s: %w", dir, err)
		}

		for _, fi := range files {
			listing.Documents = append(listing.Documents, domain.NewDocument(filepath.Join(dir, fi.Name()), category))
		}
	}
	return listing, nil
}

// pdfFiles returns the regular PDF files in dir sorted by name, with
// symlinks resolved. A path that exists but is not a directory counts as
// missing.
func (c *Connector) pdfFiles(dir string) ([]fs.FileInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, os.ErrNotExist
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []fs.FileInfo
	for _, entry := range entries {
		if !c.matches(entry.Name()) {
			continue
		}
		// Follow symlinks; only regular files are documents
		fi, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, fi)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files, nil
}

func (c *Connector) matches(name string) bool {
	if c.ignoreCaseExt {
		return strings.HasSuffix(strings.ToLower(name), pdfExt)
	}
	return strings.HasSuffix(name, pdfExt)
}

