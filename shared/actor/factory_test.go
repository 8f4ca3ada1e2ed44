package actor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/lavarun/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dict := DefaultDictionary()

	want := map[rune]Variant{
		'@': VariantPlayer,
		'=': VariantHorizontalFireball,
		'|': VariantVerticalFireball,
		'v': VariantFireRain,
		'o': VariantCoin,
	}
	require.Len(t, dict, len(want))
	for sym, variant := range want {
		f, ok := dict[sym]
		require.True(t, ok, "symbol %q", sym)
		a := f(gamemath.Vec(2, 2), rng)
		require.NotNil(t, a)
		assert.Equal(t, variant, a.Variant(), "symbol %q", sym)
	}
}

func TestFactoryRejectsBadPosition(t *testing.T) {
	f, ok := FactoryByName("coin")
	require.True(t, ok)
	assert.Nil(t, f(gamemath.Vec(math.NaN(), 0), nil))
}

func TestFactoryNames(t *testing.T) {
	assert.Equal(t, []string{"coin", "fire-rain", "horizontal-fireball", "player", "vertical-fireball"}, FactoryNames())
}

func TestDictionaryFromSymbols(t *testing.T) {
	dict, err := DictionaryFromSymbols(map[string]string{"P": "player", "*": "coin"})
	require.NoError(t, err)
	require.Len(t, dict, 2)
	assert.Equal(t, VariantPlayer, dict['P'](gamemath.Vector{}, nil).Variant())

	_, err = DictionaryFromSymbols(map[string]string{"ab": "coin"})
	assert.Error(t, err)

	_, err = DictionaryFromSymbols(map[string]string{"d": "dragon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown actor "dragon"`)
	assert.Contains(t, err.Error(), "fire-rain, horizontal-fireball")
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "fire-rain", VariantFireRain.String())
	assert.Equal(t, "unknown", Variant(99).String())
}
