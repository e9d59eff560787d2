package leveldata

import (
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/bloodduel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="100" height="50" tilewidth="8" tileheight="8" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="380" width="800" height="20"/>
  <object id="2" x="100" y="250" width="120" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="600" y="200">
   <properties><property name="spawnIndex" type="int" value="1"/></properties>
   <point/>
  </object>
  <object id="4" x="150" y="200">
   <properties><property name="spawnIndex" type="int" value="0"/></properties>
   <point/>
  </object>
 </objectgroup>
</map>`

const emptyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0" nextlayerid="1" nextobjectid="1">
</map>`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"levels/small.tmx": {Data: []byte(arenaTMX)}}

	arena, err := LoadArena(fsys, "levels/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", arena.Name)
	assert.Equal(t, 800.0, arena.Width)
	assert.Equal(t, 400.0, arena.Height)
	require.Len(t, arena.Platforms, 2)
	assert.Equal(t, cfg.Rect{X: 0, Y: 380, W: 800, H: 20}, arena.Platforms[0], "map order is kept")
	assert.Equal(t, cfg.Point{X: 150, Y: 200}, arena.Spawns[0], "spawns follow spawnIndex")
	assert.Equal(t, cfg.Point{X: 600, Y: 200}, arena.Spawns[1])
	assert.Equal(t, cfg.Arena.PowerupZone, arena.PowerupZone, "missing zone falls back to default")
}

func TestLoadArenaWithoutPlatforms(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyTMX)}}

	_, err := LoadArena(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoArena)
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(arenaTMX)},
		"levels/a.tmx": {Data: []byte(arenaTMX)},
	}

	arenas, names, err := LoadAllArenas(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)
}

func TestDefaultArenaIsACopy(t *testing.T) {
	a := DefaultArena()
	a.Platforms[0].W = 1

	assert.Equal(t, 1200.0, cfg.Arena.Platforms[0].W)
}
