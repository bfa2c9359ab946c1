package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters outside the filesystem-safe set for backup file names
	invalidTitleChars = regexp.MustCompile(`[^a-zA-Z0-9_\- ]`)
	// Runs of underscores and whitespace to collapse
	separatorRuns = regexp.MustCompile(`[_\s]+`)
)

const (
	// DefaultBackupBase is used when a sanitized title comes out empty
	DefaultBackupBase = "backup"
	// BackupExtension is appended to every suggested backup filename
	BackupExtension = ".json"
)

// BackupFilename derives a filesystem-safe output name from a project
// title. Characters outside [a-z0-9_- ] (case-insensitive) become
// underscores, separator runs collapse to a single underscore and the
// result is trimmed. An all-symbol title falls back to the default base.
func BackupFilename(title string) string {
	base := invalidTitleChars.ReplaceAllString(title, "_")
	base = separatorRuns.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")

	if base == "" {
		base = DefaultBackupBase
	}

	return base + BackupExtension
}
