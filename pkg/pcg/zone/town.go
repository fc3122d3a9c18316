package zone

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/game"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/blocks"
	"github.com/PRiewe/neon-sub000/pkg/pcg/themes"
)

// townAspectLimit bounds house width/height ratios.
const townAspectLimit = 2.0

// House describes one generated house: its footprint and the
// door-floor tile on its perimeter.
type House struct {
	Bounds pcg.Rectangle
	Door   pcg.Point
}

// TownGenerator lays out houses inside a region: packed rectangles,
// interior floor, a one-tile wall perimeter, and a single door per
// house.
type TownGenerator struct {
	rng      *pcg.RandomSource
	cfg      *config.GeneratorConfig
	blocks   *blocks.Generator
	entities game.EntityStore
	logger   *logrus.Logger
}

// NewTownGenerator creates a town generator. Nil cfg or logger use
// defaults.
func NewTownGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig,
	entities game.EntityStore, logger *logrus.Logger) *TownGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &TownGenerator{
		rng:      rng,
		cfg:      cfg,
		blocks:   blocks.NewGenerator(rng, cfg),
		entities: entities,
		logger:   logger,
	}
}

// Generate lays out the town inside the (x0, y0, w, h) region of the
// zone. The town floor plan sits at baseLayer, houses at baseLayer+1,
// and each house's door-floor tile at baseLayer+2. House doors get a
// Door entity with its destination left unset; the caller links it,
// or the town is terminal.
func (tg *TownGenerator) Generate(x0, y0, w, h int, theme *themes.RegionTheme, baseLayer uint8, z *game.Zone) ([]House, error) {
	start := time.Now()
	houses, err := tg.generate(x0, y0, w, h, theme, baseLayer, z)
	pcg.ObserveGeneration("town", start, err)
	return houses, err
}

func (tg *TownGenerator) generate(x0, y0, w, h int, theme *themes.RegionTheme, baseLayer uint8, z *game.Zone) ([]House, error) {
	if len(theme.Floor) == 0 {
		return nil, fmt.Errorf("town theme %q has no floor terrain: %w", theme.ID, pcg.ErrDegenerate)
	}

	houseMin := theme.HouseMin
	if houseMin == 0 {
		houseMin = tg.cfg.TownHouseMin
	}
	houseMax := theme.HouseMax
	if houseMax == 0 {
		houseMax = tg.cfg.TownHouseMax
	}
	count := theme.HouseCount
	if count == 0 {
		count = maxInt(1, w*h/(houseMax*houseMax*4))
	}

	var rects []pcg.Rectangle
	switch theme.Type {
	case "town_small":
		rects = tg.blocks.Packed(w, h, houseMin, houseMax, townAspectLimit, count)
	case "town_big":
		for _, leaf := range tg.blocks.BSP(w, h, houseMin+2, houseMax+2) {
			inner := leaf.Inset(1)
			if inner.Width >= houseMin && inner.Height >= houseMin {
				rects = append(rects, inner)
			}
		}
	default:
		rects = tg.blocks.Sparse(w, h, houseMin, houseMax, townAspectLimit, count)
	}
	if len(rects) == 0 {
		return nil, fmt.Errorf("town theme %q placed no houses: %w", theme.ID, pcg.ErrQuotaExhausted)
	}

	// The town floor plan under everything.
	z.AddRegion(game.Region{
		TerrainBase: game.TerrainID(theme.Floor[0]),
		Bounds:      pcg.Rectangle{X: x0, Y: y0, Width: w, Height: h},
		ZLayer:      baseLayer,
	})

	houses := make([]House, 0, len(rects))
	for _, rect := range rects {
		bounds := pcg.Rectangle{X: x0 + rect.X, Y: y0 + rect.Y, Width: rect.Width, Height: rect.Height}
		door := tg.emitHouse(z, bounds, theme, baseLayer)
		houses = append(houses, House{Bounds: bounds, Door: door})
	}

	tg.logger.WithFields(logrus.Fields{
		"theme":  theme.ID,
		"houses": len(houses),
		"bounds": fmt.Sprintf("%dx%d", w, h),
	}).Info("town generated")
	return houses, nil
}

// emitHouse emits the interior floor region, the four wall-perimeter
// regions, and the door-floor region with its Door entity. Returns
// the door tile.
func (tg *TownGenerator) emitHouse(z *game.Zone, bounds pcg.Rectangle, theme *themes.RegionTheme, baseLayer uint8) pcg.Point {
	interior := bounds.Inset(1)
	floor := game.TerrainID(tg.rng.PickString(theme.Floor))
	walls := game.TerrainID(theme.Walls)

	z.AddRegion(game.Region{TerrainBase: floor, Bounds: interior, ZLayer: baseLayer + 1})

	top := pcg.Rectangle{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}
	bottom := pcg.Rectangle{X: bounds.X, Y: bounds.Y + bounds.Height - 1, Width: bounds.Width, Height: 1}
	left := pcg.Rectangle{X: bounds.X, Y: bounds.Y + 1, Width: 1, Height: bounds.Height - 2}
	right := pcg.Rectangle{X: bounds.X + bounds.Width - 1, Y: bounds.Y + 1, Width: 1, Height: bounds.Height - 2}
	for _, wall := range []pcg.Rectangle{top, bottom, left, right} {
		z.AddRegion(game.Region{TerrainBase: walls, Bounds: wall, ZLayer: baseLayer + 1})
	}

	door := tg.pickDoorTile(bounds)
	doorTerrain := game.TerrainID(theme.Doors)
	if theme.Doors == "" {
		doorTerrain = floor
	}
	z.AddRegion(game.Region{
		TerrainBase: doorTerrain,
		Bounds:      pcg.Rectangle{X: door.X, Y: door.Y, Width: 1, Height: 1},
		ZLayer:      baseLayer + 2,
	})

	entity := &game.Door{
		UID:      tg.entities.NewEntityUID(),
		Position: game.Position{X: door.X, Y: door.Y},
	}
	tg.entities.AddEntity(entity)
	z.AddDoor(entity)

	return door
}

// pickDoorTile chooses one perimeter tile uniformly, corners excluded.
func (tg *TownGenerator) pickDoorTile(bounds pcg.Rectangle) pcg.Point {
	var perimeter []pcg.Point
	for x := bounds.X + 1; x < bounds.X+bounds.Width-1; x++ {
		perimeter = append(perimeter,
			pcg.Point{X: x, Y: bounds.Y},
			pcg.Point{X: x, Y: bounds.Y + bounds.Height - 1})
	}
	for y := bounds.Y + 1; y < bounds.Y+bounds.Height-1; y++ {
		perimeter = append(perimeter,
			pcg.Point{X: bounds.X, Y: y},
			pcg.Point{X: bounds.X + bounds.Width - 1, Y: y})
	}
	return tg.rng.PickPoint(perimeter)
}
