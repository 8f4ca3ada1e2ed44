// Package levels embeds the default level set.
package levels

import (
	"embed"

	"github.com/automoto/lavarun/shared/leveldata"
)

//go:embed levels.json
var FS embed.FS

// Default returns the embedded level set.
func Default() ([]leveldata.NamedPlan, error) {
	return leveldata.LoadAllLevels(FS, ".")
}
