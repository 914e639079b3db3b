// Package packed provides fixed size, comparable representations of all
// robot positions of a board. Each robot is stored as its row major cell
// index, ordered by robot index, so two tuples are equal iff every robot is
// on the same cell.
package packed

import "hash/maphash"

// MaxRobots is the largest supported robot count.
const MaxRobots = 5

// Packable constrains the tuple types P1 to P5.
type Packable interface {
	P1 | P2 | P3 | P4 | P5
	Hash(seed maphash.Seed) uint64
}

// P1 is a packed representation of 1 robot.
type P1 [1]uint16

// Hash returns a hash value of P1.
func (p P1) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, p) }

// P2 is a packed representation of 2 robots.
type P2 [2]uint16

// Hash returns a hash value of P2.
func (p P2) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, p) }

// P3 is a packed representation of 3 robots.
type P3 [3]uint16

// Hash returns a hash value of P3.
func (p P3) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, p) }

// P4 is a packed representation of 4 robots.
type P4 [4]uint16

// Hash returns a hash value of P4.
func (p P4) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, p) }

// P5 is a packed representation of 5 robots.
type P5 [5]uint16

// Hash returns a hash value of P5.
func (p P5) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, p) }

// Len returns the number of robots held by P.
func Len[P Packable]() int {
	var p P
	return len(p)
}

// Pack returns the packed representation of the robot cells. cells must
// hold exactly Len[P]() entries.
func Pack[P Packable](cells []uint16) P {
	var p P
	for i := 0; i < len(p); i++ {
		p[i] = cells[i]
	}
	return p
}

// With returns p with robot moved to cell.
func With[P Packable](p P, robot int, cell uint16) P { p[robot] = cell; return p }

// Occupied reports whether any robot of p other than robot is on cell.
func Occupied[P Packable](p P, robot int, cell uint16) bool {
	for i := 0; i < len(p); i++ {
		if i != robot && p[i] == cell {
			return true
		}
	}
	return false
}

// Moved returns the index of the single robot whose cell differs between
// from and to. ok is false if no robot or more than one robot moved.
func Moved[P Packable](from, to P) (robot int, ok bool) {
	robot = -1
	for i := 0; i < len(from); i++ {
		if from[i] != to[i] {
			if robot >= 0 {
				return 0, false
			}
			robot = i
		}
	}
	return robot, robot >= 0
}
