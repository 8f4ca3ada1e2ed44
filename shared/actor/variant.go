package actor

// Variant identifies the concrete actor type.
type Variant int

const (
	VariantActor Variant = iota
	VariantFireball
	VariantHorizontalFireball
	VariantVerticalFireball
	VariantFireRain
	VariantCoin
	VariantPlayer
	variantCount
)

var variantNames = [variantCount]string{
	VariantActor:              "actor",
	VariantFireball:           "fireball",
	VariantHorizontalFireball: "horizontal-fireball",
	VariantVerticalFireball:   "vertical-fireball",
	VariantFireRain:           "fire-rain",
	VariantCoin:               "coin",
	VariantPlayer:             "player",
}

func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return "unknown"
	}
	return variantNames[v]
}

// behavior is the capability row of one variant.
type behavior struct {
	kind       Kind
	act        func(a *Actor, step float64, terrain Terrain) error
	onObstacle func(a *Actor)
}

// behaviors is filled in init: the fireball rule reaches back into the table
// through HandleObstacle.
var behaviors [variantCount]behavior

func init() {
	behaviors = [variantCount]behavior{
		VariantActor:              {kind: KindActor},
		VariantFireball:           {kind: KindFireball, act: actFireball, onObstacle: reverseSpeed},
		VariantHorizontalFireball: {kind: KindFireball, act: actFireball, onObstacle: reverseSpeed},
		VariantVerticalFireball:   {kind: KindFireball, act: actFireball, onObstacle: reverseSpeed},
		VariantFireRain:           {kind: KindFireball, act: actFireball, onObstacle: returnToStart},
		VariantCoin:               {kind: KindCoin, act: actCoin},
		VariantPlayer:             {kind: KindPlayer},
	}
}
