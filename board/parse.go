package board

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// wallChars may not be used as cell marks.
const wallChars = "+-|"

// Parse reads walls from their ASCII form. Edge rows alternate with cell
// rows; in an edge row "--" marks a horizontal wall, in a cell row "|"
// marks a vertical wall. Each cell is three characters wide:
//
//	+--+--+
//	|a    |
//	+  +--+
//	|  |  |
//	+--+--+
//
// Common indentation is ignored, so boards can be written inline in Go
// source.
func Parse(s string) (*Walls, error) {
	w, _, err := ParseMarked(s)
	return w, err
}

// ReadFile parses the board stored in the named file.
func ReadFile(name string) (*Walls, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	w, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return w, nil
}

// ParseMarked is Parse that also returns the non-blank characters found
// inside cells, keyed by character. Wall characters inside a cell are an
// error. Tests use them to place robots and
// goals.
func ParseMarked(s string) (*Walls, map[rune]Position, error) {
	lines := trimBlock(s)
	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, nil, fmt.Errorf("%w: %d lines, want an odd number >= 3", ErrParse, len(lines))
	}
	width := (len(lines) - 1) / 2
	if width > MaxWidth {
		return nil, nil, fmt.Errorf("%w: width %d", ErrWidth, width)
	}
	lineLen := 3*width + 1

	w := &Walls{Width: width, Horz: make([][]bool, width+1), Vert: make([][]bool, width)}
	marks := make(map[rune]Position)

	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > lineLen {
			return nil, nil, fmt.Errorf("%w: line %d has %d characters, want %d", ErrParse, i, len(runes), lineLen)
		}
		for len(runes) < lineLen {
			runes = append(runes, ' ')
		}

		y := i / 2
		if i%2 == 0 {
			for x := 0; x <= width; x++ {
				if c := runes[3*x]; c != '+' {
					return nil, nil, fmt.Errorf("%w: line %d column %d: unexpected %q, want corner '+'", ErrParse, i, 3*x, c)
				}
			}
			row := make([]bool, width)
			for x := range row {
				switch edge := string(runes[3*x+1 : 3*x+3]); edge {
				case "--":
					row[x] = true
				case "  ":
				default:
					return nil, nil, fmt.Errorf("%w: line %d column %d: unexpected %q in edge row", ErrParse, i, 3*x+1, edge)
				}
			}
			w.Horz[y] = row
			continue
		}

		row := make([]bool, width+1)
		for x := range row {
			switch c := runes[3*x]; c {
			case '|':
				row[x] = true
			case ' ':
			default:
				return nil, nil, fmt.Errorf("%w: line %d: unexpected %q in cell row", ErrParse, i, c)
			}
			if x == width {
				break
			}
			for _, c := range runes[3*x+1 : 3*x+3] {
				if unicode.IsSpace(c) {
					continue
				}
				if strings.ContainsRune(wallChars, c) {
					return nil, nil, fmt.Errorf("%w: line %d: wall character %q inside cell %s", ErrParse, i, c, Position{X: x, Y: y})
				}
				if p, ok := marks[c]; ok {
					return nil, nil, fmt.Errorf("%w: mark %q used at %s and %s", ErrParse, c, p, Position{X: x, Y: y})
				}
				marks[c] = Position{X: x, Y: y}
			}
		}
		w.Vert[y] = row
	}
	return w, marks, nil
}

// trimBlock drops surrounding blank lines, trailing blanks and the common
// indentation of s.
func trimBlock(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	indent := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		}
	}
	return lines
}

// String renders w in the format read by Parse.
func (w *Walls) String() string {
	var b strings.Builder
	for y := 0; y <= w.Width; y++ {
		b.WriteByte('+')
		for x := 0; x < w.Width; x++ {
			if w.Horz[y][x] {
				b.WriteString("--")
			} else {
				b.WriteString("  ")
			}
			b.WriteByte('+')
		}
		b.WriteByte('\n')
		if y == w.Width {
			break
		}
		for x := 0; x <= w.Width; x++ {
			if w.Vert[y][x] {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			if x < w.Width {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
