package factory

import (
	"github.com/automoto/bloodduel/archetypes"
	"github.com/automoto/bloodduel/components"
	"github.com/automoto/bloodduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, object *resolv.Object) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	object.AddTags(tags.ResolvPlatform)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	arena := MustArena(w)
	arena.Space.Add(object)
	arena.Platforms = append(arena.Platforms, object)

	return platform
}
