package solver

import (
	"errors"
	"sync/atomic"

	"github.com/go-ricrob/slidesolver/board"
	"github.com/go-ricrob/slidesolver/internal/packed"
	"github.com/go-ricrob/slidesolver/internal/partmap"
)

var errInconsistentState = errors.New("inconsistent state")

type states[P packed.Packable] struct {
	solutionCh  chan struct{}
	pm          *partmap.Map[P]
	hasSolution atomic.Bool
	solutionTo  P // solution to value
	robot       int
	goal        uint16
}

func newStates[P packed.Packable](start P, numPart int, robot int, goal uint16) *states[P] {
	return &states[P]{
		solutionCh: make(chan struct{}),
		pm:         partmap.New[P](start, numPart),
		robot:      robot,
		goal:       goal,
	}
}

// add records to as reached from from. The first new state with the target
// robot on the goal becomes the solution.
func (m *states[P]) add(from, to P) {
	if m.pm.StoreTarget(to, from) && to[m.robot] == m.goal {
		if m.hasSolution.CompareAndSwap(false, true) {
			m.solutionTo = to
			close(m.solutionCh)
		}
	}
}

func (m *states[P]) solved() bool { return m.hasSolution.Load() }

// moves rebuilds the move list by walking the parent chain back from the
// solution state.
func (m *states[P]) moves(w *board.Walls) []Move {
	path := m.pm.Path(m.solutionTo)
	moves := make([]Move, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		idx, ok := packed.Moved(from, to)
		if !ok {
			panic(errInconsistentState)
		}
		moves = append(moves, Move{
			Robot: idx,
			Start: w.PositionOf(int(from[idx])),
			End:   w.PositionOf(int(to[idx])),
		})
	}
	return moves
}
