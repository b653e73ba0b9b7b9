// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxJSONBodySize caps create and update payloads.
	MaxJSONBodySize = 1 << 20 // 1 MB
)
