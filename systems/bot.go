package systems

import (
	"math"

	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/gamemath"
	"github.com/automoto/lavarun/shared/world"
	"github.com/yohamta/donburi/ecs"
)

// stuckJump is how long, in seconds, the bot pushes without progress before
// it tries jumping.
const stuckJump = 0.4

// UpdateBot generates input for a computer-controlled player: walk toward
// the nearest coin and jump over walls, lava and onto higher coins.
// Must run AFTER ApplyInput so it overrides it.
func UpdateBot(e *ecs.ECS) {
	entry, ok := components.Bot.First(e.World)
	if !ok {
		return
	}
	_, lvl := currentLevel(e)
	if lvl == nil || lvl.Player == nil || lvl.Status != world.StatusNone {
		return
	}
	bot := components.Bot.Get(entry)
	input := getOrCreateInput(e)
	input.Current = [cfg.ActionCount]bool{}

	p := lvl.Player
	px := p.Pos.X + p.Size.X/2
	py := p.Pos.Y + p.Size.Y/2

	target := nearestCoin(lvl, px, py)
	if target == nil {
		bot.HasTarget = false
		return
	}
	bot.TargetX = target.Pos.X + target.Size.X/2
	bot.TargetY = target.Pos.Y + target.Size.Y/2
	bot.HasTarget = true

	dx := bot.TargetX - px
	var dir float64
	switch {
	case dx > cfg.Bot.ArriveDistance:
		dir = 1
		input.Current[cfg.ActionMoveRight] = true
	case dx < -cfg.Bot.ArriveDistance:
		dir = -1
		input.Current[cfg.ActionMoveLeft] = true
	}

	step := Step(e)
	if dir != 0 && math.Abs(p.Pos.X-bot.LastX) < 1e-6 {
		bot.Stuck += step
	} else {
		bot.Stuck = 0
	}
	bot.LastX = p.Pos.X

	if shouldJump(lvl, p, dir, py-bot.TargetY, bot.Stuck) {
		input.Current[cfg.ActionJump] = true
	}
}

func nearestCoin(lvl *world.Level, x, y float64) *actor.Actor {
	var (
		best     *actor.Actor
		bestDist float64
	)
	for _, a := range lvl.Actors {
		if a.Kind() != actor.KindCoin {
			continue
		}
		d := math.Hypot(a.Pos.X+a.Size.X/2-x, a.Pos.Y+a.Size.Y/2-y)
		if best == nil || d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

func shouldJump(lvl *world.Level, p *actor.Actor, dir, rise, stuck float64) bool {
	if rise > cfg.Bot.JumpHeight || stuck > stuckJump {
		return true
	}
	if dir == 0 {
		return false
	}
	ahead := p.Pos.Plus(gamemath.Vec(dir*cfg.Bot.JumpLookAhead, 0))
	if o, err := lvl.ObstacleAt(ahead, p.Size); err == nil && o == world.ObstacleWall {
		return true
	}
	below := gamemath.Vec(ahead.X, p.Pos.Y+p.Size.Y+0.05)
	o, err := lvl.ObstacleAt(below, gamemath.Vec(p.Size.X, 0.1))
	return err == nil && o == world.ObstacleLava
}
