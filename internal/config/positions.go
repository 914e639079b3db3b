package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-ricrob/slidesolver/board"
)

// ParsePosition parses "x,y".
func ParsePosition(s string) (board.Position, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return board.Position{}, fmt.Errorf("invalid position %q, want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid x in position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid y in position %q: %w", s, err)
	}
	return board.Position{X: x, Y: y}, nil
}

// ParsePositions parses a ';' separated list of positions, e.g. "0,0;15,3".
func ParsePositions(s string) ([]board.Position, error) {
	var positions []board.Position
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := ParsePosition(part)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}
