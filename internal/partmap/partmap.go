// Package partmap provides a partitioned visited map for level by level
// breadth first search. Every key maps to the key it was reached from, and
// every partition keeps the keys of the current level (source) and of the
// level being built (target).
package partmap

import (
	"hash/maphash"
	"sync/atomic"

	"github.com/go-ricrob/slidesolver/internal/packed"
	"github.com/go-ricrob/slidesolver/internal/spinlock"
	"golang.org/x/exp/slices"
)

type part[P packed.Packable] struct {
	mu             spinlock.Mutex
	m              map[P]P // to/from map
	source, target []P
}

// Map is safe for concurrent StoreTarget and Load calls. Swap must not run
// concurrently with anything else.
type Map[P packed.Packable] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[P]
	size    atomic.Int64
	root    P
}

// New returns a map holding root as the only key of the first level. root
// is its own parent.
func New[P packed.Packable](root P, numPart int) *Map[P] {
	if numPart < 1 {
		numPart = 1
	}
	pm := &Map[P]{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[P], numPart),
		root:    root,
	}
	for i := range pm.parts {
		pm.parts[i] = &part[P]{m: make(map[P]P)}
	}
	part := pm.part(root)
	part.m[root] = root
	part.source = append(part.source, root)
	pm.size.Store(1)
	return pm
}

func (pm *Map[P]) part(k P) *part[P] {
	if pm.numPart == 1 {
		return pm.parts[0]
	}
	return pm.parts[k.Hash(pm.seed)%pm.numPart]
}

// Load returns the parent of k.
func (pm *Map[P]) Load(k P) (P, bool) {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.mu.Unlock()
	return v, ok
}

// StoreTarget records k with parent v and queues k for the next level. It
// returns false and leaves the map unchanged if k is already known.
func (pm *Map[P]) StoreTarget(k, v P) bool {
	part := pm.part(k)
	part.mu.Lock()
	if _, ok := part.m[k]; ok {
		part.mu.Unlock()
		return false
	}
	part.m[k] = v
	part.target = append(part.target, k)
	part.mu.Unlock()
	pm.size.Add(1)
	return true
}

// Size returns the number of known keys.
func (pm *Map[P]) Size() int { return int(pm.size.Load()) }

// NumPart returns the number of partitions.
func (pm *Map[P]) NumPart() int { return int(pm.numPart) }

// Source returns the current level keys of partition idx.
func (pm *Map[P]) Source(idx int) []P { return pm.parts[idx].source }

// NumSource returns the number of current level keys.
func (pm *Map[P]) NumSource() int {
	n := 0
	for _, part := range pm.parts {
		n += len(part.source)
	}
	return n
}

// Swap makes the level built by StoreTarget the current level.
func (pm *Map[P]) Swap() {
	for _, part := range pm.parts {
		part.source, part.target = part.target, nil
	}
}

// Path returns the keys from the root to k, both included. It panics if the
// parent chain of k is broken.
func (pm *Map[P]) Path(k P) []P {
	var path []P
	for {
		path = append(path, k)
		if k == pm.root {
			break
		}
		parent, ok := pm.Load(k)
		if !ok {
			panic("partmap: broken parent chain")
		}
		k = parent
	}
	slices.Reverse(path)
	return path
}
