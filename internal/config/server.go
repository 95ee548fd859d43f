package config

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	ListenAddr string

	// PresetDir is the badger directory for saved positions. Empty keeps
	// presets in memory.
	PresetDir string

	// Debug enables the /debug routes.
	Debug bool
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{ListenAddr: ":8080"}
}
