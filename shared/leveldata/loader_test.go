package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="symbols" tilewidth="16" tileheight="16" tilecount="3" columns="3">
  <tile id="0">
   <properties>
    <property name="symbol" value="x"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="symbol" value="@"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="plan" width="3" height="2">
  <data encoding="csv">
1,2,3,
1,1,0
</data>
 </layer>
</map>
`

func TestParsePlans(t *testing.T) {
	plans, err := ParsePlans("set", []byte(`[["x@x","xxx"],["o"]]`))
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "set-1", plans[0].Name)
	assert.Equal(t, Plan{"x@x", "xxx"}, plans[0].Plan)
	assert.Equal(t, "set-2", plans[1].Name)

	_, err = ParsePlans("bad", []byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestLoadPlans(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/classic.json": {Data: []byte(`[["x@x"]]`)},
	}
	plans, err := LoadPlans(fsys, "levels/classic.json")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "classic-1", plans[0].Name)

	_, err = LoadPlans(fsys, "levels/missing.json")
	assert.Error(t, err)
}

func TestLoadTMXPlan(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tiled.tmx": {Data: []byte(tmxLevel)},
	}
	plan, err := LoadTMXPlan(fsys, "levels/tiled.tmx")
	require.NoError(t, err)
	assert.Equal(t, Plan{"x@ ", "xx "}, plan)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.json":   {Data: []byte(`[["x"],["xx"]]`)},
		"levels/a.tmx":    {Data: []byte(tmxLevel)},
		"levels/c.json":   {Data: []byte(`[["!"]]`)},
		"levels/notes.md": {Data: []byte("ignored")},
	}
	levels, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)

	names := make([]string, 0, len(levels))
	for _, l := range levels {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"a", "b-1", "b-2", "c-1"}, names)
}

func TestLoadAllLevelsEmpty(t *testing.T) {
	_, err := LoadAllLevels(fstest.MapFS{"levels/readme.txt": {}}, "levels")
	assert.Error(t, err)
}

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile("a/b.json"))
	assert.True(t, IsLevelFile("LEVEL.TMX"))
	assert.False(t, IsLevelFile("levels.yaml"))
}
