// Package filesystem reads source documents from local files.
package filesystem

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
	"github.com/custodia-labs/xdxfgen/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

const defaultMIMEType = "text/html"

// Connector reads whole files from the local filesystem.
type Connector struct{}

// New creates a new filesystem connector.
func New() *Connector {
	return &Connector{}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// Fetch reads the file at uri. The MIME type comes from the extension and
// defaults to text/html. It never carries a charset: the document's own
// meta declaration decides.
func (c *Connector) Fetch(ctx context.Context, uri string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if uri == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	path := ResolvePath(uri)
	logger.Debug("reading %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	mimeType, _, err := mime.ParseMediaType(mime.TypeByExtension(filepath.Ext(path)))
	if err != nil {
		mimeType = defaultMIMEType
	}

	return &domain.RawDocument{
		URI:      path,
		MIMEType: mimeType,
		Content:  content,
	}, nil
}
