package zone

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/game"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/terrain"
	"github.com/PRiewe/neon-sub000/pkg/pcg/themes"
)

// Atlas is the multi-zone dungeon under construction: the dungeon
// theme's connection graph plus the zones by index.
type Atlas struct {
	Theme *themes.DungeonTheme
	Zones []*game.Zone
}

// Zone returns the zone at the given index.
func (a *Atlas) Zone(index uint32) (*game.Zone, bool) {
	if int(index) >= len(a.Zones) || a.Zones[index] == nil {
		return nil, false
	}
	return a.Zones[index], true
}

// DungeonGenerator populates one zone of a dungeon and links its
// doors to the zone the player came from. All collaborators are
// explicit; the generator keeps no state between calls beyond its
// RandomSource stream.
type DungeonGenerator struct {
	rng      *pcg.RandomSource
	dice     *game.DiceRoller
	cfg      *config.GeneratorConfig
	tiles    *TileGenerator
	store    themes.ThemeStore
	entities game.EntityStore
	resolver game.ResourceResolver
	quests   game.QuestProvider
	names    *pcg.NameGenerator
	logger   *logrus.Logger
}

// NewDungeonGenerator creates a dungeon generator. Nil cfg or logger
// use defaults; store, entities, resolver, and quests are required.
func NewDungeonGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig,
	store themes.ThemeStore, entities game.EntityStore,
	resolver game.ResourceResolver, quests game.QuestProvider,
	logger *logrus.Logger) *DungeonGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &DungeonGenerator{
		rng:      rng,
		dice:     game.NewDiceRoller(rng),
		cfg:      cfg,
		tiles:    NewTileGenerator(rng, cfg),
		store:    store,
		entities: entities,
		resolver: resolver,
		quests:   quests,
		names:    pcg.NewNameGenerator(nil),
		logger:   logger,
	}
}

// Generate fully populates the zone the entry door leads to and links
// the doors: the entry door's destination position becomes the return
// door's position and vice versa.
func (dg *DungeonGenerator) Generate(entryDoor *game.Door, previousZone *game.Zone, atlas *Atlas) error {
	start := time.Now()
	err := dg.generate(entryDoor, previousZone, atlas)
	pcg.ObserveGeneration("dungeon", start, err)
	return err
}

func (dg *DungeonGenerator) generate(entryDoor *game.Door, previousZone *game.Zone, atlas *Atlas) error {
	target, ok := atlas.Zone(entryDoor.DestinationZoneIndex)
	if !ok {
		return fmt.Errorf("entry door targets zone %d: %w", entryDoor.DestinationZoneIndex, pcg.ErrDegenerate)
	}

	theme, err := dg.store.GetZoneTheme(target.ThemeID)
	if err != nil {
		return fmt.Errorf("zone %d: %w", target.Index, err)
	}

	dg.logger.WithFields(logrus.Fields{
		"zone":  target.Index,
		"theme": theme.ID,
		"type":  theme.Type,
		"seed":  dg.rng.Seed(),
	}).Info("generating dungeon zone")

	w := dg.rng.IntRange(theme.Min, theme.Max)
	h := dg.rng.IntRange(theme.Min, theme.Max)

	grid, err := dg.tiles.GenerateBaseTiles(theme.Type, w, h)
	if err != nil {
		return err
	}

	tg := dg.tilesToTerrain(grid, theme)
	dg.populate(grid, tg, theme)
	dg.injectQuestObject(grid, tg)
	dg.applyFeatures(tg, theme)

	returnDoor, err := dg.placeDoors(grid, target, previousZone, atlas)
	if err != nil {
		return err
	}
	dg.backfillTerrain(grid, tg, theme)

	target.Width = w
	target.Height = h
	target.Name = dg.names.Generate(dg.rng, 6)
	dg.emitRegions(target, tg)
	dg.copyAnnotations(target, tg)

	entryDoor.DestinationPosition = &game.Position{X: returnDoor.Position.X, Y: returnDoor.Position.Y}
	returnDoor.DestinationPosition = &game.Position{X: entryDoor.Position.X, Y: entryDoor.Position.Y}

	dg.logger.WithFields(logrus.Fields{
		"zone":    target.Index,
		"size":    fmt.Sprintf("%dx%d", w, h),
		"regions": len(target.Regions),
		"doors":   len(target.Doors),
	}).Info("dungeon zone generated")
	return nil
}

// tilesToTerrain maps walkable tiles to terrain cells with a base
// drawn uniformly from the theme's floor alternatives; walls stay void.
func (dg *DungeonGenerator) tilesToTerrain(grid *pcg.TileGrid, theme *themes.ZoneTheme) *terrain.Grid {
	tg := terrain.NewGrid(grid.Width(), grid.Height())
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if grid.Walkable(x, y) {
				tg.Set(x, y, &terrain.Cell{Base: dg.rng.PickString(theme.Floor)})
			}
		}
	}
	return tg
}

// populate rolls 1dN per theme entry and annotates random walkable
// cells. A cell takes at most one creature and one item; crowded
// grids under-place after a bounded number of attempts.
func (dg *DungeonGenerator) populate(grid *pcg.TileGrid, tg *terrain.Grid, theme *themes.ZoneTheme) {
	walkables := walkablePoints(grid)
	if len(walkables) == 0 {
		return
	}

	place := func(counts map[string]int, apply func(*terrain.Cell, string) bool) {
		ids := maps.Keys(counts)
		slices.Sort(ids)
		for _, id := range ids {
			n := dg.dice.Roll(1, counts[id], 0)
			for i := 0; i < n; i++ {
				for attempt := 0; attempt < 10; attempt++ {
					p := dg.rng.PickPoint(walkables)
					if cell := tg.Get(p.X, p.Y); cell != nil && apply(cell, id) {
						break
					}
				}
			}
		}
	}

	place(theme.Creatures, func(c *terrain.Cell, id string) bool {
		if c.Creature != "" {
			return false
		}
		c.Creature = id
		return true
	})
	place(theme.Items, func(c *terrain.Cell, id string) bool {
		if c.Item != "" {
			return false
		}
		c.Item = id
		return true
	})
}

// injectQuestObject asks the quest provider for the next requested
// object and places it on a random walkable cell, as a creature or an
// item per the resolver. Ids the resolver cannot classify are skipped
// with a warning; the skip draws nothing from the seed stream.
func (dg *DungeonGenerator) injectQuestObject(grid *pcg.TileGrid, tg *terrain.Grid) {
	id, ok := dg.quests.NextRequestedObject()
	if !ok {
		return
	}

	var apply func(*terrain.Cell) bool
	switch dg.resolver.Classify(id) {
	case game.ResourceCreature:
		apply = func(c *terrain.Cell) bool {
			if c.Creature != "" {
				return false
			}
			c.Creature = id
			return true
		}
	case game.ResourceItem:
		apply = func(c *terrain.Cell) bool {
			if c.Item != "" {
				return false
			}
			c.Item = id
			return true
		}
	default:
		dg.logger.WithField("id", id).Warn("quest object has unknown resource kind, skipping")
		return
	}

	walkables := walkablePoints(grid)
	for attempt := 0; attempt < 50; attempt++ {
		p := dg.rng.PickPoint(walkables)
		if cell := tg.Get(p.X, p.Y); cell != nil && apply(cell) {
			return
		}
	}
}

// applyFeatures paints the theme's declared lakes and rivers.
func (dg *DungeonGenerator) applyFeatures(tg *terrain.Grid, theme *themes.ZoneTheme) {
	f := theme.Features
	if f == nil || f.Water == "" {
		return
	}

	features := terrain.NewFeatureGenerator(dg.rng, dg.cfg)
	for i := 0; i < f.Lakes; i++ {
		side := dg.rng.IntRange(4, 8)
		bounds := pcg.Rectangle{
			X:      dg.rng.IntRange(1, maxInt(1, tg.Width()-side-1)),
			Y:      dg.rng.IntRange(1, maxInt(1, tg.Height()-side-1)),
			Width:  side,
			Height: side,
		}
		features.Lake(tg, f.Water, bounds)
	}
	for i := 0; i < f.Rivers; i++ {
		features.River(tg, f.Water, 1)
	}
}

// emitRegions partitions the walkable cells into maximal horizontal
// runs of identical base terrain, one region per run.
func (dg *DungeonGenerator) emitRegions(z *game.Zone, tg *terrain.Grid) {
	for y := 0; y < tg.Height(); y++ {
		runStart := -1
		runBase := ""
		flush := func(end int) {
			if runStart < 0 {
				return
			}
			z.AddRegion(game.Region{
				TerrainBase: game.TerrainID(runBase),
				Bounds:      pcg.Rectangle{X: runStart, Y: y, Width: end - runStart, Height: 1},
				ZLayer:      0,
			})
			runStart = -1
		}

		for x := 0; x < tg.Width(); x++ {
			cell := tg.Get(x, y)
			switch {
			case cell == nil:
				flush(x)
			case runStart < 0:
				runStart = x
				runBase = cell.Base
			case cell.Base != runBase:
				flush(x)
				runStart = x
				runBase = cell.Base
			}
		}
		flush(tg.Width())
	}
}

// copyAnnotations transfers creature and item annotations to the zone.
func (dg *DungeonGenerator) copyAnnotations(z *game.Zone, tg *terrain.Grid) {
	for x := 0; x < tg.Width(); x++ {
		for y := 0; y < tg.Height(); y++ {
			cell := tg.Get(x, y)
			if cell == nil {
				continue
			}
			pos := game.Position{X: x, Y: y}
			if cell.Creature != "" {
				z.Creatures[pos] = game.CreatureID(cell.Creature)
			}
			if cell.Item != "" {
				z.Items[pos] = game.ItemID(cell.Item)
			}
		}
	}
}

// backfillTerrain gives any tile the door carving opened a terrain
// cell; tiles that already had one keep it.
func (dg *DungeonGenerator) backfillTerrain(grid *pcg.TileGrid, tg *terrain.Grid, theme *themes.ZoneTheme) {
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if grid.Walkable(x, y) && tg.Get(x, y) == nil {
				tg.Set(x, y, &terrain.Cell{Base: dg.rng.PickString(theme.Floor)})
			}
		}
	}
}

// placeDoors opens one perimeter break-through per connected neighbor
// zone and returns the door that leads back to the previous zone.
func (dg *DungeonGenerator) placeDoors(grid *pcg.TileGrid,
	target *game.Zone, previousZone *game.Zone, atlas *Atlas) (*game.Door, error) {

	neighbors := atlas.Theme.ConnectedTo(target.Index)
	slices.Sort(neighbors)

	used := make(map[pcg.Point]bool)
	var returnDoor *game.Door
	for _, neighbor := range neighbors {
		p := dg.breakThrough(grid, used)
		used[p] = true
		grid.Set(p.X, p.Y, pcg.TileDoor)

		door := &game.Door{
			UID:                  dg.entities.NewEntityUID(),
			Position:             game.Position{X: p.X, Y: p.Y},
			DestinationZoneIndex: neighbor,
		}
		dg.entities.AddEntity(door)
		target.AddDoor(door)

		if neighbor == previousZone.Index && returnDoor == nil {
			returnDoor = door
		}
	}

	if returnDoor == nil {
		return nil, fmt.Errorf("zone %d: %w", target.Index, pcg.ErrMissingReturnDoor)
	}
	return returnDoor, nil
}

// breakThrough picks a walkable tile on the innermost ring, carving a
// reach corridor toward the ring when no walkable tile touches it.
// Tiles in used already hold a door and are never picked twice.
func (dg *DungeonGenerator) breakThrough(grid *pcg.TileGrid, used map[pcg.Point]bool) pcg.Point {
	w, h := grid.Width(), grid.Height()

	var ring []pcg.Point
	for x := 1; x < w-1; x++ {
		ring = append(ring, pcg.Point{X: x, Y: 1}, pcg.Point{X: x, Y: h - 2})
	}
	for y := 2; y < h-2; y++ {
		ring = append(ring, pcg.Point{X: 1, Y: y}, pcg.Point{X: w - 2, Y: y})
	}

	var candidates []pcg.Point
	for _, p := range ring {
		if grid.Walkable(p.X, p.Y) && !used[p] {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) > 0 {
		return dg.rng.PickPoint(candidates)
	}

	// No walkable tile touches the ring; carve toward a random ring tile.
	free := ring[:0:0]
	for _, q := range ring {
		if !used[q] {
			free = append(free, q)
		}
	}
	if len(free) == 0 {
		free = ring
	}
	p := dg.rng.PickPoint(free)
	walkables := walkablePoints(grid)
	from := walkables[0]
	best := manhattanDist(from, p)
	for _, q := range walkables[1:] {
		if d := manhattanDist(q, p); d < best {
			from = q
			best = d
		}
	}
	carve := dg.rng.Chance(50)
	carveReach(grid, from, p, carve)
	return p
}

// carveReach opens a 1-wide L-corridor from a walkable tile to the
// target ring tile.
func carveReach(grid *pcg.TileGrid, from, to pcg.Point, horizontalFirst bool) {
	step := func(x, y int) {
		if !grid.Walkable(x, y) {
			grid.Set(x, y, pcg.TileCorridor)
		}
	}
	if horizontalFirst {
		for x := minInt(from.X, to.X); x <= maxInt(from.X, to.X); x++ {
			step(x, from.Y)
		}
		for y := minInt(from.Y, to.Y); y <= maxInt(from.Y, to.Y); y++ {
			step(to.X, y)
		}
	} else {
		for y := minInt(from.Y, to.Y); y <= maxInt(from.Y, to.Y); y++ {
			step(from.X, y)
		}
		for x := minInt(from.X, to.X); x <= maxInt(from.X, to.X); x++ {
			step(x, to.Y)
		}
	}
}

func walkablePoints(grid *pcg.TileGrid) []pcg.Point {
	var pts []pcg.Point
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if grid.Walkable(x, y) {
				pts = append(pts, pcg.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

func manhattanDist(a, b pcg.Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
