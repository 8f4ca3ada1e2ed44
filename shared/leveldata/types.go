// Package leveldata turns textual level plans into worlds and loads plan
// sets from JSON or Tiled TMX files. Loading depends only on io/fs, so the
// terminal client can pass an embed.FS and the headless server os.DirFS.
package leveldata

// Plan is a level drawn as text, one string per row. 'x' is wall, '!' is
// lava; actor symbols come from the parser's dictionary.
type Plan []string

// NamedPlan is a plan with the name it was loaded under.
type NamedPlan struct {
	Name string
	Plan Plan
}
