package actor

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/automoto/lavarun/shared/gamemath"
)

// Factory builds the actor for a plan character found at tile pos. A nil
// result means "no actor here".
type Factory func(pos gamemath.Vector, rng *rand.Rand) *Actor

// Dictionary maps plan characters to factories.
type Dictionary map[rune]Factory

func orNil(a *Actor, err error) *Actor {
	if err != nil {
		return nil
	}
	return a
}

var factories = map[string]Factory{
	VariantPlayer.String(): func(pos gamemath.Vector, _ *rand.Rand) *Actor {
		return orNil(NewPlayer(pos))
	},
	VariantHorizontalFireball.String(): func(pos gamemath.Vector, _ *rand.Rand) *Actor {
		return orNil(NewHorizontalFireball(pos))
	},
	VariantVerticalFireball.String(): func(pos gamemath.Vector, _ *rand.Rand) *Actor {
		return orNil(NewVerticalFireball(pos))
	},
	VariantFireRain.String(): func(pos gamemath.Vector, _ *rand.Rand) *Actor {
		return orNil(NewFireRain(pos))
	},
	VariantCoin.String(): func(pos gamemath.Vector, rng *rand.Rand) *Actor {
		return orNil(NewCoin(pos, RandomPhase(rng)))
	},
}

// FactoryByName returns the factory registered under a variant name such as
// "coin" or "fire-rain".
func FactoryByName(name string) (Factory, bool) {
	f, ok := factories[name]
	return f, ok
}

// FactoryNames lists the registered variant names in sorted order.
func FactoryNames() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultDictionary returns the classic symbol set: '@' player, '=' and '|'
// bouncing fireballs, 'v' fire rain and 'o' coins.
func DefaultDictionary() Dictionary {
	return Dictionary{
		'@': factories[VariantPlayer.String()],
		'=': factories[VariantHorizontalFireball.String()],
		'|': factories[VariantVerticalFireball.String()],
		'v': factories[VariantFireRain.String()],
		'o': factories[VariantCoin.String()],
	}
}

// DictionaryFromSymbols builds a dictionary from single-character symbols
// mapped to variant names.
func DictionaryFromSymbols(symbols map[string]string) (Dictionary, error) {
	dict := make(Dictionary, len(symbols))
	for sym, name := range symbols {
		runes := []rune(sym)
		if len(runes) != 1 {
			return nil, fmt.Errorf("symbol %q must be a single character", sym)
		}
		f, ok := FactoryByName(name)
		if !ok {
			return nil, fmt.Errorf("symbol %q: unknown actor %q (want one of %s)",
				sym, name, strings.Join(FactoryNames(), ", "))
		}
		dict[runes[0]] = f
	}
	return dict, nil
}
