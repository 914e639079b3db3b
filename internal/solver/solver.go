// Package solver implements a breadth first search over the joint
// positions of all robots. A move slides one robot until a wall or another
// robot stops it; the search returns the fewest moves that bring one robot
// onto a goal cell.
package solver

import (
	"fmt"
	"sync"

	"github.com/go-ricrob/slidesolver/board"
	"github.com/go-ricrob/slidesolver/internal/packed"
	"github.com/rs/zerolog"
)

const (
	numCh = 1000

	// partitions per worker of the visited map
	partsPerWorker = 64
)

// NotFound is the length of an unsolved solution.
const NotFound = -1

// Move is one full slide of a robot.
type Move struct {
	Robot      int
	Start, End board.Position
}

func (m Move) String() string { return fmt.Sprintf("%d:%s->%s", m.Robot, m.Start, m.End) }

// Solution is the result of a search. Length is NotFound if no solution
// exists within the move and state budgets.
type Solution struct {
	Length    int
	Moves     []Move
	NumStates int // visited states
	Capped    bool
}

// Found reports whether s holds a solution.
func (s Solution) Found() bool { return s.Length >= 0 }

// Options bound and tune a search.
type Options struct {
	MaxMoves  int // deepest level searched
	MaxStates int // visited states limit, 0 means unlimited
	Workers   int // 1 or less expands levels inline
	Logger    zerolog.Logger
}

// Runner runs one search.
type Runner interface {
	Run() Solution
}

var (
	_ Runner = (*solver[packed.P1])(nil)
	_ Runner = (*solver[packed.P4])(nil)
	_ Runner = (*solver[packed.P5])(nil)
)

type solver[P packed.Packable] struct {
	walls *board.Walls
	mask  []uint8 // walled directions per cell
	step  [4]int  // cell index offset per direction
	start P
	robot int
	goal  uint16
	opts  Options
	log   zerolog.Logger
}

// New returns a runner moving robot onto goal. The robot count must match
// P, positions must be on the enclosed board w and pairwise distinct.
func New[P packed.Packable](w *board.Walls, robots []board.Position, robot int, goal board.Position, opts Options) Runner {
	if len(robots) != packed.Len[P]() {
		panic(fmt.Sprintf("solver: %d robots for a tuple of %d", len(robots), packed.Len[P]()))
	}
	cells := make([]uint16, len(robots))
	for i, p := range robots {
		cells[i] = uint16(w.Index(p))
	}

	mask := make([]uint8, w.NumCells())
	for idx := range mask {
		p := w.PositionOf(idx)
		for _, d := range board.Directions {
			if w.IsWall(p, d) {
				mask[idx] |= 1 << d
			}
		}
	}

	return &solver[P]{
		walls: w,
		mask:  mask,
		step:  [4]int{board.Up: -w.Width, board.Down: w.Width, board.Left: -1, board.Right: 1},
		start: packed.Pack[P](cells),
		robot: robot,
		goal:  uint16(w.Index(goal)),
		opts:  opts,
		log:   opts.Logger.With().Str("engine", "joint").Int("robots", len(robots)).Logger(),
	}
}

// Solve dispatches to the tuple type matching the robot count.
func Solve(w *board.Walls, robots []board.Position, robot int, goal board.Position, opts Options) Solution {
	var r Runner
	switch len(robots) {
	case 1:
		r = New[packed.P1](w, robots, robot, goal, opts)
	case 2:
		r = New[packed.P2](w, robots, robot, goal, opts)
	case 3:
		r = New[packed.P3](w, robots, robot, goal, opts)
	case 4:
		r = New[packed.P4](w, robots, robot, goal, opts)
	case 5:
		r = New[packed.P5](w, robots, robot, goal, opts)
	default:
		panic(fmt.Sprintf("solver: unsupported robot count %d", len(robots)))
	}
	return r.Run()
}

// slide returns the cell robot idx of p reaches in direction d.
func (s *solver[P]) slide(p P, idx int, d board.Direction) uint16 {
	cell := int(p[idx])
	for s.mask[cell]&(1<<d) == 0 {
		next := cell + s.step[d]
		if packed.Occupied(p, idx, uint16(next)) {
			break
		}
		cell = next
	}
	return uint16(cell)
}

// expand adds all successors of p. Slides that do not move are skipped.
func (s *solver[P]) expand(states *states[P], p P) {
	for idx := 0; idx < len(p); idx++ {
		for _, d := range board.Directions {
			to := s.slide(p, idx, d)
			if to == p[idx] {
				continue
			}
			states.add(p, packed.With(p, idx, to))
			if states.solved() {
				return
			}
		}
	}
}

func (s *solver[P]) overLimit(states *states[P]) bool {
	return s.opts.MaxStates > 0 && states.pm.Size() >= s.opts.MaxStates
}

// Run searches level by level. Level n holds the states first reached with
// n moves, so the first goal state found has the fewest moves.
func (s *solver[P]) Run() Solution {
	if s.start[s.robot] == s.goal {
		return Solution{Length: 0, Moves: []Move{}, NumStates: 1}
	}

	workers := s.opts.Workers
	if workers < 1 {
		workers = 1
	}
	numPart := 1
	if workers > 1 {
		numPart = workers * partsPerWorker
	}
	states := newStates[P](s.start, numPart, s.robot, s.goal)

	var capped bool
	if workers == 1 {
		capped = s.runInline(states)
	} else {
		capped = s.runWorkers(states, workers)
	}

	if !states.solved() {
		s.log.Info().Int("states", states.pm.Size()).Bool("capped", capped).Msg("no solution")
		return Solution{Length: NotFound, NumStates: states.pm.Size(), Capped: capped}
	}
	moves := states.moves(s.walls)
	s.log.Info().Int("moves", len(moves)).Int("states", states.pm.Size()).Msg("solved")
	return Solution{Length: len(moves), Moves: moves, NumStates: states.pm.Size()}
}

func (s *solver[P]) runInline(states *states[P]) (capped bool) {
	for level := 0; level < s.opts.MaxMoves; level++ {
		s.log.Debug().Int("level", level).Int("frontier", states.pm.NumSource()).Int("states", states.pm.Size()).Msg("expanding level")

		for _, p := range states.pm.Source(0) {
			s.expand(states, p)
			if states.solved() {
				return false
			}
			if s.overLimit(states) {
				s.log.Warn().Int("level", level).Int("maxStates", s.opts.MaxStates).Msg("state limit reached")
				return true
			}
		}

		states.pm.Swap()
		if states.pm.NumSource() == 0 {
			return false
		}
	}
	return false
}

type nextLevel[P packed.Packable] struct {
	wg       *sync.WaitGroup
	workerCh <-chan P
}

func (s *solver[P]) worker(states *states[P], wg *sync.WaitGroup, nextLevelCh <-chan *nextLevel[P]) {
	defer wg.Done()

	for nextLevel := range nextLevelCh {
		for p := range nextLevel.workerCh {
			if states.solved() {
				continue // drain
			}
			s.expand(states, p)
		}
		nextLevel.wg.Done()
	}
}

func (s *solver[P]) runWorkers(states *states[P], numWorker int) (capped bool) {
	// spin up workers
	workerWg := new(sync.WaitGroup)
	workerWg.Add(numWorker)

	nextLevelChs := make([]chan *nextLevel[P], numWorker)
	for i := range nextLevelChs {
		nextLevelChs[i] = make(chan *nextLevel[P], 1)
		go s.worker(states, workerWg, nextLevelChs[i])
	}
	defer func() {
		for _, nextLevelCh := range nextLevelChs {
			close(nextLevelCh)
		}
		workerWg.Wait()
	}()

	for level := 0; level < s.opts.MaxMoves; level++ {
		s.log.Debug().Int("level", level).Int("frontier", states.pm.NumSource()).Int("states", states.pm.Size()).Msg("expanding level")

		workerCh := make(chan P, numCh)
		nextLevelWg := new(sync.WaitGroup)
		nextLevelWg.Add(numWorker)
		nl := &nextLevel[P]{wg: nextLevelWg, workerCh: workerCh}
		for _, nextLevelCh := range nextLevelChs {
			nextLevelCh <- nl
		}

	feed:
		for i := 0; i < states.pm.NumPart(); i++ {
			for _, p := range states.pm.Source(i) {
				if s.overLimit(states) {
					capped = true
					break feed
				}
				select {
				case <-states.solutionCh:
					break feed
				case workerCh <- p:
				}
			}
		}
		// wait for level to be finalized
		close(workerCh)
		nextLevelWg.Wait()

		if states.solved() {
			return false
		}
		if capped {
			s.log.Warn().Int("level", level).Int("maxStates", s.opts.MaxStates).Msg("state limit reached")
			return true
		}

		states.pm.Swap()
		if states.pm.NumSource() == 0 {
			return false
		}
	}
	return false
}
