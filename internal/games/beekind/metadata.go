package beekind

import "github.com/vovakirdan/beekind/internal/core"

// Metadata describes the game to hosts.
func Metadata() core.Metadata {
	return core.Metadata{
		Name:         "BeeKind",
		Description:  "Bee Kind platformer",
		ShortNames:   []string{"beekind"},
		VersionMajor: 1,
		VersionMinor: 0,
		APIMajor:     core.APIMajor,
		APIMinor:     core.APIMinor,
	}
}
