package solver

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/slidesolver/board"
)

// ErrInvalidMove is returned by Replay for a move that is not a slide of
// the given robot in the current position.
var ErrInvalidMove = errors.New("solver: invalid move")

// Replay applies moves to robots and returns the final positions. Every
// move must start at the robot's current cell and end where a slide in one
// of the four directions stops.
func Replay(w *board.Walls, robots []board.Position, moves []Move) ([]board.Position, error) {
	cur := append([]board.Position(nil), robots...)
	for i, m := range moves {
		if m.Robot < 0 || m.Robot >= len(cur) {
			return nil, fmt.Errorf("%w: move %d: %w", ErrInvalidMove, i, ErrRobotIndex)
		}
		if cur[m.Robot] != m.Start {
			return nil, fmt.Errorf("%w: move %d: robot %d is at %s, not %s", ErrInvalidMove, i, m.Robot, cur[m.Robot], m.Start)
		}
		blocked := func(p board.Position) bool {
			for j, r := range cur {
				if j != m.Robot && r == p {
					return true
				}
			}
			return false
		}
		ok := false
		for _, d := range board.Directions {
			if end := w.SlideBlocked(m.Start, d, blocked); end != m.Start && end == m.End {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("%w: move %d: robot %d cannot slide %s -> %s", ErrInvalidMove, i, m.Robot, m.Start, m.End)
		}
		cur[m.Robot] = m.End
	}
	return cur, nil
}

// ReplayRoute slides a lone robot from start along moves and returns the
// cell it stops at.
func ReplayRoute(w *board.Walls, start board.Position, moves []board.Direction) board.Position {
	for _, d := range moves {
		start = w.Slide(start, d)
	}
	return start
}
