package systems

import (
	"math"

	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/gamemath"
	"github.com/automoto/lavarun/shared/world"
	"github.com/automoto/lavarun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// snapGap keeps a snapped player clear of the wall it was moved against.
const snapGap = 1e-9

// getPlayerBody returns the player's collision body data, or nil when the
// level has no player entity.
func getPlayerBody(e *ecs.ECS) *components.PlayerData {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	return components.Player.Get(entry)
}

// UpdatePlayer moves the player from input: horizontal run, gravity and
// jumping. Obstacles hit on the way are reported to the level.
func UpdatePlayer(e *ecs.ECS) {
	data, lvl := currentLevel(e)
	if lvl == nil || lvl.Player == nil {
		return
	}
	p := lvl.Player
	step := Step(e)
	body := getPlayerBody(e)

	if lvl.Status == world.StatusLost {
		// Sink into whatever killed the player.
		p.Pos.Y += step
		p.Size.Y = math.Max(0, p.Size.Y-step)
		syncBody(body, p)
		return
	}

	input := getOrCreateInput(e)
	if err := movePlayerX(lvl, body, input, step); err != nil {
		fail(data, err)
		return
	}
	if err := movePlayerY(lvl, body, input, step); err != nil {
		fail(data, err)
		return
	}
	syncBody(body, p)
}

func movePlayerX(lvl *world.Level, body *components.PlayerData, input *components.InputData, step float64) error {
	p := lvl.Player
	dir := gamemath.AxisDirection(
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
	)
	p.Speed.X = dir * cfg.Player.Speed
	if p.Speed.X == 0 {
		return nil
	}

	motion := gamemath.Vec(p.Speed.X*step, 0)
	next := p.Pos.Plus(motion)
	obstacle, err := lvl.ObstacleAt(next, p.Size)
	if err != nil {
		return err
	}
	if !obstacle.Solid() {
		p.Pos = next
		return nil
	}

	lvl.PlayerTouched(world.TouchOf(obstacle), nil)
	if obstacle == world.ObstacleWall {
		snapToWall(lvl, body, motion)
	}
	return nil
}

func movePlayerY(lvl *world.Level, body *components.PlayerData, input *components.InputData, step float64) error {
	p := lvl.Player
	p.Speed.Y += step * cfg.Player.Gravity
	if cfg.Player.MaxFallSpeed > 0 && p.Speed.Y > 0 {
		p.Speed.Y = gamemath.ClampSpeed(p.Speed.Y, cfg.Player.MaxFallSpeed)
	}

	motion := gamemath.Vec(0, p.Speed.Y*step)
	next := p.Pos.Plus(motion)
	obstacle, err := lvl.ObstacleAt(next, p.Size)
	if err != nil {
		return err
	}
	if !obstacle.Solid() {
		p.Pos = next
		if body != nil {
			body.OnGround = false
		}
		return nil
	}

	lvl.PlayerTouched(world.TouchOf(obstacle), nil)
	if obstacle == world.ObstacleWall {
		snapToWall(lvl, body, motion)
	}

	falling := p.Speed.Y > 0
	if body != nil {
		body.OnGround = falling
	}
	if falling && GetAction(input, cfg.ActionJump).Pressed {
		p.Speed.Y = -cfg.Player.JumpSpeed
	} else {
		p.Speed.Y = 0
	}
	return nil
}

// snapToWall closes the gap between the player and the wall it was blocked
// by, using the resolv space for the contact distance. The snap is only
// applied when the level agrees the snapped box is clear.
func snapToWall(lvl *world.Level, body *components.PlayerData, motion gamemath.Vector) bool {
	if body == nil || body.Body == nil {
		return false
	}
	p := lvl.Player
	ts := cfg.Sim.TileSize
	syncBody(body, p)

	// Look one pixel further so walls the move only grazes are found.
	dx, dy := motion.X*ts, motion.Y*ts
	check := body.Body.Check(reach(dx), reach(dy), tags.ResolvSolid)
	if check == nil {
		return false
	}

	var (
		best  gamemath.Vector
		found bool
	)
	for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
		if !facesMotion(body.Body, wall, dx, dy) {
			continue
		}
		c := check.ContactWithObject(wall)
		delta := gamemath.Vec(c.X()/ts, c.Y()/ts)
		if !withinMotion(delta, motion) {
			continue
		}
		if !found || math.Abs(delta.X)+math.Abs(delta.Y) < math.Abs(best.X)+math.Abs(best.Y) {
			best, found = delta, true
		}
	}
	if !found || best == (gamemath.Vector{}) {
		return false
	}

	gap := gamemath.Vec(-math.Copysign(snapGap, motion.X), -math.Copysign(snapGap, motion.Y))
	if motion.X == 0 {
		gap.X = 0
	}
	if motion.Y == 0 {
		gap.Y = 0
	}
	candidate := p.Pos.Plus(best).Plus(gap)
	if o, err := lvl.ObstacleAt(candidate, p.Size); err != nil || o.Solid() {
		return false
	}
	p.Pos = candidate
	body.Snaps++
	syncBody(body, p)
	return true
}

// facesMotion reports whether wall lies across the path of a move by (dx, dy).
func facesMotion(obj, wall *resolv.Object, dx, dy float64) bool {
	switch {
	case dx > 0:
		return wall.X >= obj.X+obj.W && overlaps(obj.Y, obj.H, wall.Y, wall.H)
	case dx < 0:
		return wall.X+wall.W <= obj.X && overlaps(obj.Y, obj.H, wall.Y, wall.H)
	case dy > 0:
		return wall.Y >= obj.Y+obj.H && overlaps(obj.X, obj.W, wall.X, wall.W)
	case dy < 0:
		return wall.Y+wall.H <= obj.Y && overlaps(obj.X, obj.W, wall.X, wall.W)
	}
	return false
}

func reach(d float64) float64 {
	switch {
	case d > 0:
		return d + 1
	case d < 0:
		return d - 1
	}
	return 0
}

func overlaps(a, aLen, b, bLen float64) bool {
	return a < b+bLen && b < a+aLen
}

// withinMotion reports whether delta points the same way as motion and is
// no longer than it.
func withinMotion(delta, motion gamemath.Vector) bool {
	within := func(d, m float64) bool {
		if m >= 0 {
			return d >= 0 && d <= m
		}
		return d <= 0 && d >= m
	}
	return within(delta.X, motion.X) && within(delta.Y, motion.Y)
}

// syncBody moves the collision body to the player's position and size.
func syncBody(body *components.PlayerData, p *actor.Actor) {
	if body == nil || body.Body == nil {
		return
	}
	ts := cfg.Sim.TileSize
	body.Body.X = p.Pos.X * ts
	body.Body.Y = p.Pos.Y * ts
	body.Body.W = p.Size.X * ts
	body.Body.H = p.Size.Y * ts
	body.Body.Update()
}
