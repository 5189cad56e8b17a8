package storage

// Config holds storage configuration
type Config struct {
	Dir     string // Root directory for stored files
	BaseURL string // Server base URL for generating download URLs
}
