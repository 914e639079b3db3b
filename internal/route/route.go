// Package route finds the shortest slide sequence of a lone robot between
// two cells. Other robots are ignored, so a slide always ends at the next
// wall.
//
// The search runs breadth first from both ends and meets in the middle:
// forward from start over slide destinations and backward from end over
// slide origins, each bounded by the same number of moves.
package route

import (
	"github.com/go-ricrob/slidesolver/board"
	"golang.org/x/exp/slices"
)

// NotFound is the length of an unreachable route.
const NotFound = -1

// Route is a sequence of slides. Length is NotFound if no route exists
// within the move budget.
type Route struct {
	Length int
	Moves  []board.Direction
}

// Found reports whether r is a route.
func (r Route) Found() bool { return r.Length >= 0 }

// Reverse returns the time reversed route: the moves in reverse order, each
// pointing the other way. Replayed from the end cell it leads back to the
// start cell only if every cell of the route is a stop for the reversed
// slides, as on a border-only board.
func (r Route) Reverse() Route {
	if !r.Found() {
		return r
	}
	moves := make([]board.Direction, len(r.Moves))
	for i, d := range r.Moves {
		moves[len(moves)-1-i] = d.Opposite()
	}
	return Route{Length: r.Length, Moves: moves}
}

// cell is the per cell search record. next is the parent cell in the
// forward table and the successor cell in the backward table; dir is the
// slide between the two, always in forward time.
type cell struct {
	seen   bool
	length int
	next   int
	dir    board.Direction
}

type table []cell

func newTable(numCells, origin int) table {
	t := make(table, numCells)
	t[origin] = cell{seen: true, next: -1}
	return t
}

func (t table) mark(idx, next, length int, dir board.Direction) bool {
	if t[idx].seen {
		return false
	}
	t[idx] = cell{seen: true, length: length, next: next, dir: dir}
	return true
}

// forward records every cell reachable from start within maxMoves slides.
func forward(w *board.Walls, start, maxMoves int) table {
	t := newTable(w.NumCells(), start)
	frontier := []int{start}
	var next []int

	for level := 1; level <= maxMoves && len(frontier) > 0; level++ {
		next = next[:0]
		for _, idx := range frontier {
			p := w.PositionOf(idx)
			for _, d := range board.Directions {
				to := w.Index(w.Slide(p, d))
				if t.mark(to, idx, level, d) {
					next = append(next, to)
				}
			}
		}
		frontier, next = next, frontier
	}
	return t
}

// backward records every cell from which end is reachable within maxMoves
// slides. A slide in direction d can only stop at a cell walled in
// direction d; its origins are the cells reached by walking back against d
// until the first wall.
func backward(w *board.Walls, end, maxMoves int) table {
	t := newTable(w.NumCells(), end)
	frontier := []int{end}
	var next []int

	for level := 1; level <= maxMoves && len(frontier) > 0; level++ {
		next = next[:0]
		for _, idx := range frontier {
			p := w.PositionOf(idx)
			for _, d := range board.Directions {
				if !w.IsWall(p, d) {
					continue
				}
				back := d.Opposite()
				for cursor := p; !w.IsWall(cursor, back); {
					cursor = cursor.Step(back)
					from := w.Index(cursor)
					if t.mark(from, idx, level, d) {
						next = append(next, from)
					}
				}
			}
		}
		frontier, next = next, frontier
	}
	return t
}

// Find returns the shortest route from start to end using at most maxMoves
// slides on each side of the meeting cell. Positions must be on the board
// and the board must be enclosed.
func Find(w *board.Walls, start, end board.Position, maxMoves int) Route {
	if start == end {
		return Route{Length: 0, Moves: []board.Direction{}}
	}
	if !w.IsStop(end) {
		return Route{Length: NotFound}
	}

	from, to := w.Index(start), w.Index(end)
	fwd := forward(w, from, maxMoves)
	bwd := backward(w, to, maxMoves)

	best, meet := NotFound, -1
	for idx := range fwd {
		if !fwd[idx].seen || !bwd[idx].seen {
			continue
		}
		if length := fwd[idx].length + bwd[idx].length; best == NotFound || length < best {
			best, meet = length, idx
		}
	}
	if best == NotFound {
		return Route{Length: NotFound}
	}

	moves := make([]board.Direction, 0, best)
	for idx := meet; idx != from; idx = fwd[idx].next {
		moves = append(moves, fwd[idx].dir)
	}
	slices.Reverse(moves)
	for idx := meet; idx != to; idx = bwd[idx].next {
		moves = append(moves, bwd[idx].dir)
	}
	return Route{Length: best, Moves: moves}
}
