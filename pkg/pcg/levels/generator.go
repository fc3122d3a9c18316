package levels

import (
	"github.com/sirupsen/logrus"

	"github.com/PRiewe/neon-sub000/pkg/config"
	"github.com/PRiewe/neon-sub000/pkg/pcg"
	"github.com/PRiewe/neon-sub000/pkg/pcg/blocks"
)

// roomAspectLimit bounds room width/height ratios in sparse and
// packed layouts.
const roomAspectLimit = 2.0

// ComplexGenerator builds multi-room dungeons from block layout, room
// carving, corridor carving, and connectivity repair.
type ComplexGenerator struct {
	rng    *pcg.RandomSource
	cfg    *config.GeneratorConfig
	blocks *blocks.Generator
	rooms  *RoomGenerator
	logger *logrus.Logger
}

// NewComplexGenerator creates a complex generator sharing one
// RandomSource across its stages. Nil cfg or logger use defaults.
func NewComplexGenerator(rng *pcg.RandomSource, cfg *config.GeneratorConfig, logger *logrus.Logger) *ComplexGenerator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &ComplexGenerator{
		rng:    rng,
		cfg:    cfg,
		blocks: blocks.NewGenerator(rng, cfg),
		rooms:  NewRoomGenerator(rng, cfg),
		logger: logger,
	}
}

// GenerateSparse lays out up to n well-separated rectangular rooms and
// repairs connectivity between them.
func (cg *ComplexGenerator) GenerateSparse(w, h, n, minSize, maxSize int) (*pcg.TileGrid, error) {
	rects := shift(cg.blocks.Sparse(w-2, h-2, minSize, maxSize, roomAspectLimit, n), 1, 1)
	if len(rects) == 0 {
		return nil, pcg.ErrQuotaExhausted
	}

	grid := pcg.NewTileGrid(w, h)
	for _, rect := range rects {
		cg.rooms.MakeRoom(grid, rect)
	}

	pcg.RepairConnectivity(grid, cg.rng)
	grid.EnforceBorder()
	return grid, nil
}

// GeneratePacked lays out up to n tightly packed rooms, each with a
// shape chosen uniformly over rectangular, polygonal, and cave.
func (cg *ComplexGenerator) GeneratePacked(w, h, n, minSize, maxSize int) (*pcg.TileGrid, error) {
	rects := shift(cg.blocks.Packed(w-2, h-2, minSize, maxSize, roomAspectLimit, n), 1, 1)
	if len(rects) == 0 {
		return nil, pcg.ErrQuotaExhausted
	}

	grid := pcg.NewTileGrid(w, h)
	for _, rect := range rects {
		switch cg.rng.Intn(3) {
		case 0:
			cg.rooms.MakeRoom(grid, rect)
		case 1:
			cg.rooms.MakePolyRoom(grid, rect)
		default:
			cg.rooms.MakeCaveRoom(grid, rect)
		}
	}

	pcg.RepairConnectivity(grid, cg.rng)
	grid.EnforceBorder()
	return grid, nil
}

// GenerateBSP partitions the area into leaves, carves one room per
// leaf, and opens a passage through each shared leaf boundary. The
// tiling makes corridor placement O(leaves); repair runs last as the
// connectivity guarantee and is a no-op when the passages suffice.
func (cg *ComplexGenerator) GenerateBSP(w, h, minSize, maxSize int) (*pcg.TileGrid, error) {
	leaves := shift(cg.blocks.BSP(w-2, h-2, minSize, maxSize), 1, 1)
	if len(leaves) == 0 {
		return nil, pcg.ErrQuotaExhausted
	}

	grid := pcg.NewTileGrid(w, h)
	for _, leaf := range leaves {
		cg.rooms.MakeRoom(grid, leaf)
	}

	for i := 1; i < len(leaves); i++ {
		for j := 0; j < i; j++ {
			cg.openSharedBoundary(grid, leaves[i], leaves[j])
		}
	}

	pcg.RepairConnectivity(grid, cg.rng)
	grid.EnforceBorder()

	cg.logger.WithFields(logrus.Fields{
		"leaves": len(leaves),
		"width":  w,
		"height": h,
	}).Debug("bsp dungeon generated")
	return grid, nil
}

// openSharedBoundary carves a 2-tile passage through the adjoining
// wall rings of two edge-adjacent leaves, at the middle of the shared
// segment. Leaves that only touch at a corner are left alone.
func (cg *ComplexGenerator) openSharedBoundary(grid *pcg.TileGrid, a, b pcg.Rectangle) {
	// Vertical boundary: a's right edge against b's left edge, or vice versa.
	if a.X+a.Width == b.X || b.X+b.Width == a.X {
		lo := maxInt(a.Y, b.Y) + 1
		hi := minInt(a.Y+a.Height, b.Y+b.Height) - 2
		if lo > hi {
			return
		}
		y := (lo + hi) / 2
		x := a.X + a.Width - 1
		if b.X+b.Width == a.X {
			x = b.X + b.Width - 1
		}
		grid.Set(x, y, pcg.TileCorridor)
		grid.Set(x+1, y, pcg.TileCorridor)
		return
	}

	// Horizontal boundary.
	if a.Y+a.Height == b.Y || b.Y+b.Height == a.Y {
		lo := maxInt(a.X, b.X) + 1
		hi := minInt(a.X+a.Width, b.X+b.Width) - 2
		if lo > hi {
			return
		}
		x := (lo + hi) / 2
		y := a.Y + a.Height - 1
		if b.Y+b.Height == a.Y {
			y = b.Y + b.Height - 1
		}
		grid.Set(x, y, pcg.TileCorridor)
		grid.Set(x, y+1, pcg.TileCorridor)
	}
}

func shift(rects []pcg.Rectangle, dx, dy int) []pcg.Rectangle {
	out := make([]pcg.Rectangle, len(rects))
	for i, r := range rects {
		out[i] = pcg.Rectangle{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
	}
	return out
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
