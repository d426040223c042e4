package core

// RuntimeConfig contains host settings passed down when a session starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal host only)
	ScreenH  int   // Terminal height in characters (terminal host only)
	TickRate int   // Rendered frames per second; the simulation updates twice per frame
	Seed     int64 // RNG seed for deterministic gameplay, 0 picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  32,
		TickRate: 30,
		Seed:     0,
	}
}

// Metadata describes a game to its host at load time.
type Metadata struct {
	Name         string
	Description  string
	ShortNames   []string
	VersionMajor int
	VersionMinor int
	APIMajor     int
	APIMinor     int
}

// Engine API version implemented by the hosts in this module.
const (
	APIMajor = 1
	APIMinor = 0
)
