package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// PlanLayer is the TMX tile layer read as a plan. Each tile's tileset entry
// carries its plan character in the "symbol" property.
const PlanLayer = "plan"

// LoadPlans reads a JSON array of plans. Plans are named after the file stem
// and their 1-based position, e.g. "levels-2".
func LoadPlans(fsys fs.FS, jsonPath string) ([]NamedPlan, error) {
	raw, err := fs.ReadFile(fsys, jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read levels %s: %w", jsonPath, err)
	}
	return ParsePlans(stem(jsonPath), raw)
}

// ParsePlans decodes a JSON array of plans, naming them prefix-1, prefix-2...
func ParsePlans(prefix string, raw []byte) ([]NamedPlan, error) {
	var plans []Plan
	if err := json.Unmarshal(raw, &plans); err != nil {
		return nil, fmt.Errorf("decode levels %s: %w", prefix, err)
	}
	named := make([]NamedPlan, 0, len(plans))
	for i, p := range plans {
		named = append(named, NamedPlan{Name: fmt.Sprintf("%s-%d", prefix, i+1), Plan: p})
	}
	return named, nil
}

// LoadTMXPlan reads the "plan" layer of a Tiled map. Empty tiles and tiles
// without a symbol property become spaces.
func LoadTMXPlan(fsys fs.FS, tmxPath string) (Plan, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != PlanLayer {
			continue
		}
		plan := make(Plan, 0, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			var row strings.Builder
			for x := 0; x < levelMap.Width; x++ {
				row.WriteRune(tileSymbol(layer.Tiles[y*levelMap.Width+x]))
			}
			plan = append(plan, row.String())
		}
		return plan, nil
	}
	return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, PlanLayer)
}

func tileSymbol(tile *tiled.LayerTile) rune {
	if tile == nil || tile.IsNil() {
		return ' '
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return ' '
	}
	for _, r := range tilesetTile.Properties.GetString("symbol") {
		return r
	}
	return ' '
}

// LoadAllLevels discovers every .json and .tmx file in levelsDir, in sorted
// path order. A JSON file contributes all of its plans; a TMX file one plan
// named after its stem.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]NamedPlan, error) {
	var matches []string
	for _, ext := range []string{"json", "tmx"} {
		pattern := path.Join(levelsDir, "*."+ext)
		found, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no level files found in %s", levelsDir)
	}
	sort.Strings(matches)

	var levels []NamedPlan
	for _, p := range matches {
		if strings.HasSuffix(p, ".tmx") {
			plan, err := LoadTMXPlan(fsys, p)
			if err != nil {
				return nil, err
			}
			levels = append(levels, NamedPlan{Name: stem(p), Plan: plan})
			continue
		}
		plans, err := LoadPlans(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, plans...)
	}
	return levels, nil
}

// IsLevelFile reports whether a path has a level file extension.
func IsLevelFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".tmx":
		return true
	}
	return false
}

func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
