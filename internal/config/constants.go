package config

const (
	// DefaultAuditDir is the default directory for conversion audit records
	DefaultAuditDir = "./audit"

	// DefaultMaxArchiveBytes caps uploaded chapter archives (50 MB)
	DefaultMaxArchiveBytes = 50 * 1024 * 1024
)
