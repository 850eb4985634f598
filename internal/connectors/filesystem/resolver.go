package filesystem

import (
	"path/filepath"
	"strings"
)

// ResolvePath converts a filesystem URI to a local path for opening.
// Handles file:// URIs and bare paths.
func ResolvePath(uri string) string {
	// Strip file:// prefix for local paths
	if strings.HasPrefix(uri, "file://") {
		uri = strings.TrimPrefix(uri, "file://")
	}
	return filepath.Clean(uri)
}
