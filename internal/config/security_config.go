// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Bearer access token required
)

// EndpointSecurityConfig maps "METHOD /path/template" and gRPC full method
// names to the required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Health - Public
	"GET /health": SecurityPublic,

	// gRPC health - Public
	"/grpc.health.v1.Health/Check": SecurityPublic,
	"/grpc.health.v1.Health/Watch": SecurityPublic,
	"/grpc.health.v1.Health/List":  SecurityPublic,

	// Print output - Public, keys are random uuids
	"GET /api/files": SecurityPublic,

	// Assets - Access Protected
	"GET /api/assets":                SecurityAccess,
	"POST /api/assets":               SecurityAccess,
	"GET /api/assets/{id}":           SecurityAccess,
	"DELETE /api/assets/{id}":        SecurityAccess,
	"GET /api/assets/{id}/label":     SecurityAccess,
	"POST /api/labels":               SecurityAccess,
	"DELETE /api/files":              SecurityAccess,
	"GET /api/scan":                  SecurityAccess,
	"GET /api/alerts":                SecurityAccess,
	"GET /api/reports/summary":       SecurityAccess,
	"GET /api/reports/subscriptions": SecurityAccess,
	"POST /api/assistant/query":      SecurityAccess,

	// Documents - Access Protected
	"GET /api/documents":              SecurityAccess,
	"POST /api/documents":             SecurityAccess,
	"POST /api/documents/import":      SecurityAccess,
	"POST /api/documents/{id}/import": SecurityAccess,
	"GET /api/documents/{id}":         SecurityAccess,
	"PUT /api/documents/{id}":         SecurityAccess,
	"DELETE /api/documents/{id}":      SecurityAccess,
	"POST /api/documents/{id}/draft":  SecurityAccess,
	"GET /api/documents/{id}/print":   SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
