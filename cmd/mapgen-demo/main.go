// Command mapgen-demo generates one dungeon zone and one town from a
// theme file and writes an SVG render of the dungeon zone's base tiles
// as dungeon.svg in the output directory. The town is not rendered.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/game"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/export"
	"github.com/PRiewe/neon-sub000/pkg/pcg/themes"
	"github.com/PRiewe/neon-sub000/pkg/pcg/zone"
)

// noQuests is the demo's empty quest provider.
type noQuests struct{}

func (noQuests) NextRequestedObject() (string, bool) { return "", false }

// demoResolver classifies everything as a creature, enough for a demo
// without a resource database.
type demoResolver struct{}

func (demoResolver) Classify(id string) game.ResourceKind { return game.ResourceCreature }

func main() {
	var (
		themePath = flag.String("themes", "themes.xml", "theme XML file")
		dungeonID = flag.String("dungeon", "", "dungeon theme id to generate")
		townID    = flag.String("town", "", "region theme id for the town demo")
		seed      = flag.Int64("seed", 42, "generation seed")
		outDir    = flag.String("out", ".", "output directory for SVG renders")
		cfgPath   = flag.String("config", "", "optional generator config YAML")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logger.WithError(err).Fatal("failed to load generator config")
		}
		cfg = loaded
	}

	store := themes.NewStore()
	if err := store.LoadFile(*themePath); err != nil {
		logger.WithError(err).Fatal("failed to load themes")
	}

	entities := &game.UUIDEntityStore{}

	if *dungeonID != "" {
		runDungeon(logger, cfg, store, entities, *dungeonID, *seed, *outDir)
	}
	if *townID != "" {
		runTown(logger, cfg, store, entities, *townID, *seed, *outDir)
	}
}

func runDungeon(logger *logrus.Logger, cfg *config.GeneratorConfig, store *themes.Store,
	entities *game.UUIDEntityStore, dungeonID string, seed int64, outDir string) {

	theme, err := store.GetDungeonTheme(dungeonID)
	if err != nil {
		logger.WithError(err).Fatal("unknown dungeon theme")
	}
	if len(theme.ZoneThemes) < 2 || len(theme.Connections) == 0 {
		logger.Fatal("dungeon theme needs at least two connected zones")
	}

	atlas := &zone.Atlas{Theme: theme}
	for i, zt := range theme.ZoneThemes {
		atlas.Zones = append(atlas.Zones, game.NewZone(uint32(i), zt))
	}

	// The player stands in zone 0 and walks through a door to zone 1.
	previous := atlas.Zones[0]
	previous.Width, previous.Height = 50, 50
	entryDoor := &game.Door{
		UID:                  entities.NewEntityUID(),
		Position:             game.Position{X: 25, Y: 25},
		DestinationZoneIndex: 1,
	}
	entities.AddEntity(entryDoor)
	previous.AddDoor(entryDoor)

	rng := pcg.NewRandomSource(seed)
	gen := zone.NewDungeonGenerator(rng, cfg, store, entities, demoResolver{}, noQuests{}, logger)
	if err := gen.Generate(entryDoor, previous, atlas); err != nil {
		logger.WithError(err).Fatal("dungeon generation failed")
	}

	target := atlas.Zones[1]
	logger.WithFields(logrus.Fields{
		"zone":    target.Index,
		"name":    target.Name,
		"size":    target.Width,
		"regions": len(target.Regions),
		"doors":   len(target.Doors),
	}).Info("dungeon zone ready")

	// Re-run the tile stage alone for the render; same seed, same grid.
	zt, err := store.GetZoneTheme(target.ThemeID)
	if err != nil {
		logger.WithError(err).Fatal("unknown zone theme")
	}
	renderRNG := pcg.NewRandomSource(seed)
	w := renderRNG.IntRange(zt.Min, zt.Max)
	h := renderRNG.IntRange(zt.Min, zt.Max)
	grid, err := zone.NewTileGenerator(renderRNG, cfg).GenerateBaseTiles(zt.Type, w, h)
	if err != nil {
		logger.WithError(err).Fatal("tile render failed")
	}

	path := filepath.Join(outDir, "dungeon.svg")
	opts := export.DefaultSVGOptions()
	opts.Title = target.Name
	if err := os.WriteFile(path, export.TileGridSVG(grid, opts), 0o644); err != nil {
		logger.WithError(err).Fatal("failed to write SVG")
	}
	logger.WithField("path", path).Info("dungeon render written")
}

func runTown(logger *logrus.Logger, cfg *config.GeneratorConfig, store *themes.Store,
	entities *game.UUIDEntityStore, townID string, seed int64, outDir string) {

	theme, err := store.GetRegionTheme(townID)
	if err != nil {
		logger.WithError(err).Fatal("unknown region theme")
	}

	z := game.NewZone(0, townID)
	rng := pcg.NewRandomSource(seed)
	gen := zone.NewTownGenerator(rng, cfg, entities, logger)
	houses, err := gen.Generate(0, 0, 150, 150, theme, 0, z)
	if err != nil {
		logger.WithError(err).Fatal("town generation failed")
	}

	logger.WithFields(logrus.Fields{
		"houses":  len(houses),
		"regions": len(z.Regions),
	}).Info("town ready")
}
