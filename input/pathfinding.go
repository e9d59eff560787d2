package input

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/shared/gamemath"
)

const navSolid = "nav-solid"

// NavGrid represents the places an actor can stand in an arena
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // nil where an actor cannot stand

	solid [][]bool
}

// NavNode is a standable cell. It implements astar.Pather; neighbours are the
// cells reachable by walking, jumping or dropping.
type NavNode struct {
	X, Y  int
	Floor float64 // y of the surface under the cell

	grid  *NavGrid
	edges []navEdge
}

type navEdge struct {
	to   *NavNode
	cost float64
}

// PathNeighbors returns nodes one move away (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	out := make([]astar.Pather, len(n.edges))
	for i, e := range n.edges {
		out[i] = e.to
	}
	return out
}

// PathNeighborCost returns the cost of the move to a neighbour (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	for _, e := range n.edges {
		if e.to == to {
			return e.cost
		}
	}
	return math.Inf(1)
}

// PathEstimatedCost returns the straight-line distance (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	m := to.(*NavNode)
	return n.grid.CellSize * math.Hypot(float64(m.X-n.X), float64(m.Y-n.Y))
}

// CenterX returns the world x of the middle of the cell.
func (n *NavNode) CenterX() float64 {
	return float64(n.X)*n.grid.CellSize + n.grid.CellSize/2
}

// MaxRise is the highest ledge a ground jump followed by a double jump clears,
// less the configured margin.
func MaxRise() float64 {
	g := cfg.Physics.Gravity
	jump := cfg.Actor.JumpForce * cfg.Actor.JumpForce / (2 * g)
	double := cfg.Actor.DoubleJumpForce * cfg.Actor.DoubleJumpForce / (2 * g)
	return jump + double - cfg.Pathfinding.JumpMargin
}

// NewNavGrid builds the grid for an arena of the given size from its platforms.
func NewNavGrid(width, height float64, platforms []gamemath.Rect) *NavGrid {
	cellSize := cfg.Pathfinding.CellSize
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))

	space := resolv.NewSpace(int(width), int(height), int(cellSize), int(cellSize))
	for _, p := range platforms {
		space.Add(resolv.NewObject(p.X, p.Y, p.W, p.H, navSolid))
	}

	g := &NavGrid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, gridH),
		solid:    make([][]bool, gridH),
	}

	// Mark cells that overlap solid geometry
	for y := 0; y < gridH; y++ {
		g.Nodes[y] = make([]*NavNode, gridW)
		g.solid[y] = make([]bool, gridW)
		for x := 0; x < gridW; x++ {
			g.solid[y][x], _ = overlapTop(space, g.cellRect(x, y))
		}
	}

	// A cell is standable with headroom above it and solid ground right below
	headroom := int(math.Ceil(cfg.Actor.Height / cellSize))
	for y := 0; y < gridH-1; y++ {
		for x := 0; x < gridW; x++ {
			if !g.clearColumn(x, y-headroom+1, y) || !g.solid[y+1][x] {
				continue
			}
			_, floor := overlapTop(space, g.cellRect(x, y+1))
			g.Nodes[y][x] = &NavNode{X: x, Y: y, Floor: floor, grid: g}
		}
	}

	maxRise := MaxRise()
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			if n := g.Nodes[y][x]; n != nil {
				g.link(n, headroom, maxRise)
			}
		}
	}

	return g
}

func (g *NavGrid) cellRect(x, y int) gamemath.Rect {
	return gamemath.Rect{
		X: float64(x)*g.CellSize + 2,
		Y: float64(y)*g.CellSize + 2,
		W: g.CellSize - 4,
		H: g.CellSize - 4,
	}
}

// overlapTop reports whether r overlaps any platform and the highest top among
// those it overlaps.
func overlapTop(space *resolv.Space, r gamemath.Rect) (bool, float64) {
	testObj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	space.Add(testObj)
	defer space.Remove(testObj)

	hit, top := false, math.Inf(1)
	if check := testObj.Check(0, 0, navSolid); check != nil {
		for _, o := range check.Objects {
			if gamemath.Overlaps(r, gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
				hit = true
				top = math.Min(top, o.Y)
			}
		}
	}
	return hit, top
}

// link adds every move out of n. Jumps rise straight up and then drift over
// the ledge; drops drift off the edge and then fall.
func (g *NavGrid) link(n *NavNode, headroom int, maxRise float64) {
	cs := g.CellSize

	for _, dx := range []int{-1, 1} {
		if m := g.node(n.X+dx, n.Y); m != nil {
			n.edges = append(n.edges, navEdge{to: m, cost: cs})
		}
	}

	for ty := 0; ty < g.Height; ty++ {
		if ty == n.Y {
			continue
		}
		up := ty < n.Y
		reach := cfg.Pathfinding.MaxDropReach
		if up {
			reach = cfg.Pathfinding.MaxJumpReach
		}
		for dx := -reach; dx <= reach; dx++ {
			if dx == 0 {
				continue
			}
			m := g.node(n.X+dx, ty)
			if m == nil {
				continue
			}
			rows := float64(absInt(ty - n.Y))
			cols := float64(absInt(dx))

			if up {
				rise := n.Floor - m.Floor
				if rise <= 0 || rise > maxRise {
					continue
				}
				if !g.clearColumn(n.X, ty-headroom+1, n.Y) || !g.clearRows(n.X, m.X, ty-headroom+1, ty) {
					continue
				}
				// Jumping is harder than walking
				n.edges = append(n.edges, navEdge{to: m, cost: cs * (cols + 1.5*rows)})
				continue
			}

			if !g.clearRows(n.X, m.X, n.Y-headroom+1, n.Y) || !g.clearColumn(m.X, n.Y-headroom+1, ty) {
				continue
			}
			n.edges = append(n.edges, navEdge{to: m, cost: cs * (cols + rows)})
		}
	}
}

func (g *NavGrid) node(x, y int) *NavNode {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// clearColumn reports whether rows y0..y1 of column x are free. Rows above the
// arena count as free.
func (g *NavGrid) clearColumn(x, y0, y1 int) bool {
	if x < 0 || x >= g.Width {
		return false
	}
	for y := max(y0, 0); y <= y1 && y < g.Height; y++ {
		if g.solid[y][x] {
			return false
		}
	}
	return true
}

func (g *NavGrid) clearRows(x0, x1, y0, y1 int) bool {
	for x := min(x0, x1); x <= max(x0, x1); x++ {
		if !g.clearColumn(x, y0, y1) {
			return false
		}
	}
	return true
}

// Nearest returns the standable node closest to an actor whose feet are at
// (x, feet). Floors below the feet are preferred over floors above them.
func (g *NavGrid) Nearest(x, feet float64) *NavNode {
	cx := clampInt(int(x/g.CellSize), 0, g.Width-1)
	cy := clampInt(int((feet-1)/g.CellSize), 0, g.Height-1)

	var best *NavNode
	bestScore := math.Inf(1)
	for y := max(cy-2, 0); y < g.Height; y++ {
		for dx := -2; dx <= 2; dx++ {
			n := g.node(cx+dx, y)
			if n == nil {
				continue
			}
			ddx := n.CenterX() - x
			ddy := n.Floor - feet
			if ddy < 0 {
				ddy *= 4
			}
			if score := ddx*ddx + ddy*ddy; score < bestScore {
				best, bestScore = n, score
			}
		}
	}
	return best
}

// FindPath uses go-astar to find a route between two actors' feet. The result
// runs from start to goal and is nil when no route exists.
func (g *NavGrid) FindPath(startX, startFeet, goalX, goalFeet float64) []*NavNode {
	start := g.Nearest(startX, startFeet)
	goal := g.Nearest(goalX, goalFeet)
	if start == nil || goal == nil {
		return nil
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}

	// go-astar returns the goal first
	result := make([]*NavNode, len(path))
	for i, p := range path {
		result[len(path)-1-i] = p.(*NavNode)
	}
	return result
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
