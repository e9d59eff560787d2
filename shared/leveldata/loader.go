package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/automoto/bloodduel/config"
	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupPlatforms   = "Platforms"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupPowerupZone = "PowerupZone"
)

// LoadArena parses a TMX file into an arena. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Missing spawns and powerup zone fall back to the
// default arena's values.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	def := DefaultArena()
	arena := &Arena{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:       float64(levelMap.Width * levelMap.TileWidth),
		Height:      float64(levelMap.Height * levelMap.TileHeight),
		Spawns:      def.Spawns,
		PowerupZone: def.PowerupZone,
	}

	type spawn struct {
		index int
		pt    cfg.Point
	}
	var spawns []spawn

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Platforms = append(arena.Platforms, cfg.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				spawns = append(spawns, spawn{
					index: o.Properties.GetInt("spawnIndex"),
					pt:    cfg.Point{X: o.X, Y: o.Y},
				})
			}
		case GroupPowerupZone:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.PowerupZone = cfg.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		}
	}

	if len(arena.Platforms) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoArena)
	}

	// Sort spawns by index, then left-to-right for consistent assignment
	sort.SliceStable(spawns, func(i, j int) bool {
		if spawns[i].index != spawns[j].index {
			return spawns[i].index < spawns[j].index
		}
		return spawns[i].pt.X < spawns[j].pt.X
	})
	for i := 0; i < len(spawns) && i < len(arena.Spawns); i++ {
		arena.Spawns[i] = spawns[i].pt
	}

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
