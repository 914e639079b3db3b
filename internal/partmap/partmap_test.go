package partmap

import (
	"sync"
	"testing"

	"github.com/go-ricrob/slidesolver/internal/packed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	root := packed.P2{0, 1}
	pm := New(root, 4)

	assert.Equal(t, 1, pm.Size())
	assert.Equal(t, 1, pm.NumSource())
	assert.Equal(t, []packed.P2{root}, pm.Path(root))

	a := packed.P2{2, 1}
	b := packed.P2{0, 3}
	assert.True(t, pm.StoreTarget(a, root))
	assert.True(t, pm.StoreTarget(b, root))
	assert.False(t, pm.StoreTarget(a, b), "known key must not be overwritten")
	assert.False(t, pm.StoreTarget(root, a), "root must not be re-queued")
	assert.Equal(t, 3, pm.Size())

	pm.Swap()
	assert.Equal(t, 2, pm.NumSource())

	var sources []packed.P2
	for i := 0; i < pm.NumPart(); i++ {
		sources = append(sources, pm.Source(i)...)
	}
	assert.ElementsMatch(t, []packed.P2{a, b}, sources)

	parent, ok := pm.Load(a)
	require.True(t, ok)
	assert.Equal(t, root, parent)

	pm.Swap()
	assert.Zero(t, pm.NumSource())
}

func TestPath(t *testing.T) {
	root := packed.P1{0}
	pm := New(root, 1)
	pm.StoreTarget(packed.P1{5}, root)
	pm.StoreTarget(packed.P1{7}, packed.P1{5})

	assert.Equal(t, []packed.P1{{0}, {5}, {7}}, pm.Path(packed.P1{7}))
	assert.Equal(t, []packed.P1{{0}}, pm.Path(root))
	assert.Panics(t, func() { pm.Path(packed.P1{9}) })
}

func TestConcurrentStore(t *testing.T) {
	root := packed.P1{0}
	pm := New(root, 16)

	var wg sync.WaitGroup
	var mu sync.Mutex
	stored := 0
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := 0
			for i := 1; i <= 1000; i++ {
				if pm.StoreTarget(packed.P1{uint16(i)}, root) {
					n++
				}
			}
			mu.Lock()
			stored += n
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, stored)
	assert.Equal(t, 1001, pm.Size())
}
