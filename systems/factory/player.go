package factory

import (
	"github.com/automoto/lavarun/archetypes"
	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerBody spawns the player entity and adds a collision body
// mirroring p to the space.
func CreatePlayerBody(ecs *ecs.ECS, p *actor.Actor) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	ts := cfg.Sim.TileSize
	w, h := p.Size.X*ts, p.Size.Y*ts
	obj := resolv.NewObject(p.Pos.X*ts, p.Pos.Y*ts, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{Body: obj})
	return player
}

// CreateBot marks the level's player as computer controlled.
func CreateBot(ecs *ecs.ECS) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(components.Bot))
	components.Bot.SetValue(entry, components.BotData{})
	return entry
}
