// Package board provides the wall model of a square sliding-robot board.
//
// Cells are addressed by Position{X, Y} with X growing to the right and Y
// growing downward. Walls sit on cell edges: Horz[y][x] is the edge above
// cell (x, y) and Vert[y][x] is the edge left of cell (x, y), so a board of
// width W has W+1 horizontal edge rows and W+1 vertical edge columns.
package board

import (
	"errors"
	"fmt"
)

// MaxWidth is the largest supported board width. Cell indices of a board
// must fit into an uint16.
const MaxWidth = 255

var (
	ErrWidth       = errors.New("board: invalid width")
	ErrShape       = errors.New("board: wall arrays do not match width")
	ErrNotEnclosed = errors.New("board: border is not fully walled")
	ErrParse       = errors.New("board: parse error")
)

// Direction is one of the four slide directions.
type Direction uint8

// Slide directions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all slide directions in move generation order.
var Directions = [4]Direction{Up, Down, Left, Right}

var bearings = [4][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Bearing returns the unit vector of d.
func (d Direction) Bearing() (dx, dy int) { return bearings[d][0], bearings[d][1] }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return d ^ 1 }

// Perpendicular returns the two directions at a right angle to d.
func (d Direction) Perpendicular() [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}
	return [2]Direction{Up, Down}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Position is a cell coordinate.
type Position struct {
	X, Y int
}

// Step returns the neighbour cell of p in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Bearing()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Walls is the immutable wall layout of a board.
type Walls struct {
	Width int
	Horz  [][]bool // Width+1 rows of Width edges
	Vert  [][]bool // Width rows of Width+1 edges
}

// NewWalls returns an empty board of the given width with a walled border.
func NewWalls(width int) *Walls {
	w := &Walls{
		Width: width,
		Horz:  make([][]bool, width+1),
		Vert:  make([][]bool, width),
	}
	for y := range w.Horz {
		w.Horz[y] = make([]bool, width)
	}
	for y := range w.Vert {
		w.Vert[y] = make([]bool, width+1)
	}
	for i := 0; i < width; i++ {
		w.Horz[0][i] = true
		w.Horz[width][i] = true
		w.Vert[i][0] = true
		w.Vert[i][width] = true
	}
	return w
}

// Validate checks the array shapes and that the border is walled, which
// guarantees every slide terminates inside the board.
func (w *Walls) Validate() error {
	if w.Width < 1 || w.Width > MaxWidth {
		return fmt.Errorf("%w: %d", ErrWidth, w.Width)
	}
	if len(w.Horz) != w.Width+1 || len(w.Vert) != w.Width {
		return fmt.Errorf("%w: %d horizontal rows, %d vertical rows", ErrShape, len(w.Horz), len(w.Vert))
	}
	for y, row := range w.Horz {
		if len(row) != w.Width {
			return fmt.Errorf("%w: horizontal row %d has %d edges", ErrShape, y, len(row))
		}
	}
	for y, row := range w.Vert {
		if len(row) != w.Width+1 {
			return fmt.Errorf("%w: vertical row %d has %d edges", ErrShape, y, len(row))
		}
	}
	for i := 0; i < w.Width; i++ {
		if !w.Horz[0][i] || !w.Horz[w.Width][i] {
			return fmt.Errorf("%w: column %d", ErrNotEnclosed, i)
		}
		if !w.Vert[i][0] || !w.Vert[i][w.Width] {
			return fmt.Errorf("%w: row %d", ErrNotEnclosed, i)
		}
	}
	return nil
}

// Contains reports whether p lies on the board.
func (w *Walls) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w.Width && p.Y < w.Width
}

// Index returns the row major cell index of p.
func (w *Walls) Index(p Position) int { return p.Y*w.Width + p.X }

// PositionOf is the inverse of Index.
func (w *Walls) PositionOf(idx int) Position { return Position{X: idx % w.Width, Y: idx / w.Width} }

// NumCells returns Width*Width.
func (w *Walls) NumCells() int { return w.Width * w.Width }

// IsWall reports whether a wall blocks leaving p in direction d.
func (w *Walls) IsWall(p Position, d Direction) bool {
	switch d {
	case Up:
		return w.Horz[p.Y][p.X]
	case Down:
		return w.Horz[p.Y+1][p.X]
	case Left:
		return w.Vert[p.Y][p.X]
	case Right:
		return w.Vert[p.Y][p.X+1]
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// IsWall reports whether a wall blocks leaving p in direction d.
func IsWall(w *Walls, p Position, d Direction) bool { return w.IsWall(p, d) }

// SetWall sets or clears the wall on the edge leaving p in direction d.
func (w *Walls) SetWall(p Position, d Direction, wall bool) {
	switch d {
	case Up:
		w.Horz[p.Y][p.X] = wall
	case Down:
		w.Horz[p.Y+1][p.X] = wall
	case Left:
		w.Vert[p.Y][p.X] = wall
	case Right:
		w.Vert[p.Y][p.X+1] = wall
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// IsStop reports whether a robot can come to rest at p, i.e. at least one
// of its edges is walled.
func (w *Walls) IsStop(p Position) bool {
	for _, d := range Directions {
		if w.IsWall(p, d) {
			return true
		}
	}
	return false
}

// Slide moves from p in direction d until the next edge is walled.
func (w *Walls) Slide(p Position, d Direction) Position {
	for !w.IsWall(p, d) {
		p = p.Step(d)
	}
	return p
}

// SlideBlocked moves from p in direction d until the next edge is walled or
// the next cell is blocked.
func (w *Walls) SlideBlocked(p Position, d Direction, blocked func(Position) bool) Position {
	for !w.IsWall(p, d) {
		next := p.Step(d)
		if blocked(next) {
			break
		}
		p = next
	}
	return p
}
