package solver

import (
	"fmt"
	"runtime"

	"github.com/go-ricrob/slidesolver/board"
	"github.com/go-ricrob/slidesolver/internal/packed"
	"github.com/rs/zerolog"
)

// Default budgets.
const (
	DefaultBoardWidth    = 16
	DefaultRobotCount    = 4
	DefaultMaxRouteMoves = 6
	DefaultMaxMoves      = 20
	DefaultMaxStates     = 50_000_000
)

// Config carries the board size, robot count and search budgets of a
// query. The zero value is not usable, start from DefaultConfig.
type Config struct {
	BoardWidth    int
	RobotCount    int
	MaxRouteMoves int // slides per side of a route search
	MaxMoves      int // moves of a joint search
	MaxStates     int // visited joint states, 0 means unlimited
	Workers       int // joint search workers, 1 searches inline
	Logger        zerolog.Logger
}

// DefaultConfig returns the standard 16x16 board with 4 robots.
func DefaultConfig() Config {
	return Config{
		BoardWidth:    DefaultBoardWidth,
		RobotCount:    DefaultRobotCount,
		MaxRouteMoves: DefaultMaxRouteMoves,
		MaxMoves:      DefaultMaxMoves,
		MaxStates:     DefaultMaxStates,
		Workers:       1,
		Logger:        zerolog.Nop(),
	}
}

// ParallelConfig returns DefaultConfig with one joint search worker per CPU.
func ParallelConfig() Config {
	cfg := DefaultConfig()
	cfg.Workers = runtime.NumCPU()
	return cfg
}

// MaxRouteLength returns the longest route FindRoute can return.
func (c Config) MaxRouteLength() int { return 2 * c.MaxRouteMoves }

// Validate checks the configuration values.
func (c Config) Validate() error {
	switch {
	case c.BoardWidth < 1 || c.BoardWidth > board.MaxWidth:
		return fmt.Errorf("%w: board width %d not in [1,%d]", ErrConfig, c.BoardWidth, board.MaxWidth)
	case c.RobotCount < 1 || c.RobotCount > packed.MaxRobots:
		return fmt.Errorf("%w: robot count %d not in [1,%d]", ErrConfig, c.RobotCount, packed.MaxRobots)
	case c.MaxRouteMoves < 0:
		return fmt.Errorf("%w: negative route move budget %d", ErrConfig, c.MaxRouteMoves)
	case c.MaxMoves < 0:
		return fmt.Errorf("%w: negative move budget %d", ErrConfig, c.MaxMoves)
	case c.MaxStates < 0:
		return fmt.Errorf("%w: negative state budget %d", ErrConfig, c.MaxStates)
	}
	return nil
}
