package levels

import (
	"math/rand"
	"testing"

	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	plans, err := Default()
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "levels-1", plans[0].Name)

	parser := leveldata.NewLevelParser(actor.DefaultDictionary(), rand.New(rand.NewSource(1)))
	for _, p := range plans {
		lvl := parser.Parse(p.Plan)
		assert.NotNil(t, lvl.Player, p.Name)
		assert.False(t, lvl.NoMoreActors(actor.KindCoin), p.Name)
		for _, row := range lvl.Grid {
			assert.Len(t, row, lvl.Width, p.Name)
		}
	}
}
