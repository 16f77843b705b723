package runner

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-id-lookup/internal/directory"
)

// normalizeDirectoryName returns a lower-cased directory name, deriving from instance when not explicitly configured.
func normalizeDirectoryName(raw string, dir directory.Directory) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if dir != nil {
		return strings.ToLower(fmt.Sprintf("%T", dir))
	}
	return "directory"
}
