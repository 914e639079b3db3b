// Package solver finds minimum move solutions of the sliding robot puzzle.
//
// FindRoute searches the slides of a single robot on an otherwise empty
// board. Solve searches the joint positions of all robots, so robots can
// serve as blockers for each other. Both validate their input first; an
// unreachable goal is not an error but a result with Length NotFound.
package solver

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/slidesolver/board"
	"github.com/go-ricrob/slidesolver/internal/route"
	joint "github.com/go-ricrob/slidesolver/internal/solver"
)

// NotFound is the length of a route or solution that does not exist within
// the budget.
const NotFound = -1

type (
	// Route is the result of FindRoute.
	Route = route.Route
	// Move is one robot slide of a Solution.
	Move = joint.Move
	// Solution is the result of Solve.
	Solution = joint.Solution
)

var (
	ErrConfig        = errors.New("solver: invalid config")
	ErrBoardWidth    = errors.New("solver: board width does not match config")
	ErrOutOfBounds   = errors.New("solver: position out of bounds")
	ErrRobotCount    = errors.New("solver: robot count does not match config")
	ErrRobotIndex    = errors.New("solver: robot index out of range")
	ErrRobotsOverlap = errors.New("solver: robots share a cell")
)

func checkBoard(cfg Config, w *board.Walls) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("%w: nil walls", ErrBoardWidth)
	}
	if w.Width != cfg.BoardWidth {
		return fmt.Errorf("%w: got %d, want %d", ErrBoardWidth, w.Width, cfg.BoardWidth)
	}
	return w.Validate()
}

func checkPosition(w *board.Walls, name string, p board.Position) error {
	if !w.Contains(p) {
		return fmt.Errorf("%w: %s %s on width %d", ErrOutOfBounds, name, p, w.Width)
	}
	return nil
}

// FindRoute returns the shortest slide sequence moving a lone robot from
// start to end, using at most cfg.MaxRouteMoves slides on either side of
// the meeting cell.
func FindRoute(cfg Config, w *board.Walls, start, end board.Position) (Route, error) {
	if err := checkBoard(cfg, w); err != nil {
		return Route{Length: NotFound}, err
	}
	if err := checkPosition(w, "start", start); err != nil {
		return Route{Length: NotFound}, err
	}
	if err := checkPosition(w, "end", end); err != nil {
		return Route{Length: NotFound}, err
	}

	r := route.Find(w, start, end, cfg.MaxRouteMoves)
	cfg.Logger.Debug().
		Stringer("start", start).
		Stringer("end", end).
		Int("length", r.Length).
		Msg("route search done")
	return r, nil
}

// Solve returns the fewest moves bringing robots[robot] onto goal, using at
// most cfg.MaxMoves moves and cfg.MaxStates visited states.
func Solve(cfg Config, w *board.Walls, robots []board.Position, robot int, goal board.Position) (Solution, error) {
	if err := checkBoard(cfg, w); err != nil {
		return Solution{Length: NotFound}, err
	}
	if len(robots) != cfg.RobotCount {
		return Solution{Length: NotFound}, fmt.Errorf("%w: got %d, want %d", ErrRobotCount, len(robots), cfg.RobotCount)
	}
	if robot < 0 || robot >= len(robots) {
		return Solution{Length: NotFound}, fmt.Errorf("%w: %d of %d", ErrRobotIndex, robot, len(robots))
	}
	if err := checkPosition(w, "goal", goal); err != nil {
		return Solution{Length: NotFound}, err
	}
	seen := make(map[board.Position]int, len(robots))
	for i, p := range robots {
		if err := checkPosition(w, fmt.Sprintf("robot %d", i), p); err != nil {
			return Solution{Length: NotFound}, err
		}
		if j, ok := seen[p]; ok {
			return Solution{Length: NotFound}, fmt.Errorf("%w: robots %d and %d at %s", ErrRobotsOverlap, j, i, p)
		}
		seen[p] = i
	}

	return joint.Solve(w, robots, robot, goal, joint.Options{
		MaxMoves:  cfg.MaxMoves,
		MaxStates: cfg.MaxStates,
		Workers:   cfg.Workers,
		Logger:    cfg.Logger,
	}), nil
}
