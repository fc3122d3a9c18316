package pcg

// TileGrid is a rectangular map of tile classes. X is the outer
// (column) axis. A new grid is solid wall; generators carve into it.
type TileGrid struct {
	width  int
	height int
	tiles  [][]TileClass
}

// NewTileGrid creates a width x height grid initialized to Wall.
func NewTileGrid(width, height int) *TileGrid {
	tiles := make([][]TileClass, width)
	for x := range tiles {
		tiles[x] = make([]TileClass, height)
	}
	return &TileGrid{width: width, height: height, tiles: tiles}
}

// Width returns the horizontal tile count.
func (g *TileGrid) Width() int { return g.width }

// Height returns the vertical tile count.
func (g *TileGrid) Height() int { return g.height }

// InBounds reports whether (x, y) is inside the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile class at (x, y). Out-of-bounds reads return Wall.
func (g *TileGrid) Get(x, y int) TileClass {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[x][y]
}

// Set writes the tile class at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, tc TileClass) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[x][y] = tc
}

// Walkable reports whether the tile at (x, y) can be entered.
func (g *TileGrid) Walkable(x, y int) bool {
	return g.Get(x, y).Walkable()
}

// EnforceBorder forces the outer ring of the grid to Wall.
func (g *TileGrid) EnforceBorder() {
	for x := 0; x < g.width; x++ {
		g.tiles[x][0] = TileWall
		g.tiles[x][g.height-1] = TileWall
	}
	for y := 0; y < g.height; y++ {
		g.tiles[0][y] = TileWall
		g.tiles[g.width-1][y] = TileWall
	}
}

// FindFirstWalkable returns the first walkable tile in column-major
// scan order, or false when the grid has none.
func (g *TileGrid) FindFirstWalkable() (Point, bool) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.tiles[x][y].Walkable() {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// WalkableCount returns the total number of walkable tiles.
func (g *TileGrid) WalkableCount() int {
	count := 0
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.tiles[x][y].Walkable() {
				count++
			}
		}
	}
	return count
}

// FloodFillCountWalkable counts the walkable tiles 4-connected to
// from. The fill is queue-based; a recursive fill overflows the stack
// on large maps.
func (g *TileGrid) FloodFillCountWalkable(from Point) int {
	if !g.Walkable(from.X, from.Y) {
		return 0
	}

	visited := make([]bool, g.width*g.height)
	queue := []Point{from}
	visited[from.X*g.height+from.Y] = true
	count := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++

		for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !g.InBounds(nx, ny) || !g.tiles[nx][ny].Walkable() {
				continue
			}
			idx := nx*g.height + ny
			if visited[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}

	return count
}

// Components returns the 4-connected walkable components of the grid,
// each as a slice of points in deterministic scan order.
func (g *TileGrid) Components() [][]Point {
	visited := make([]bool, g.width*g.height)
	var components [][]Point

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if visited[x*g.height+y] || !g.tiles[x][y].Walkable() {
				continue
			}

			var comp []Point
			queue := []Point{{X: x, Y: y}}
			visited[x*g.height+y] = true

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				comp = append(comp, p)

				for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := p.X+d.X, p.Y+d.Y
					if !g.InBounds(nx, ny) || !g.tiles[nx][ny].Walkable() {
						continue
					}
					idx := nx*g.height + ny
					if visited[idx] {
						continue
					}
					visited[idx] = true
					queue = append(queue, Point{X: nx, Y: ny})
				}
			}

			components = append(components, comp)
		}
	}

	return components
}

// Connected reports whether all walkable tiles form one 4-connected
// component. A grid with no walkable tiles is not connected.
func (g *TileGrid) Connected() bool {
	start, ok := g.FindFirstWalkable()
	if !ok {
		return false
	}
	return g.FloodFillCountWalkable(start) == g.WalkableCount()
}
