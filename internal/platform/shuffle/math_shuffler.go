package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

// MathShuffler implements the shuffle port on math/rand, which performs an
// unbiased Fisher-Yates permutation.
type MathShuffler struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewMathShuffler() *MathShuffler {
	return &MathShuffler{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *MathShuffler) Shuffle(names []string, seed *int64) {
	swap := func(i, j int) { names[i], names[j] = names[j], names[i] }
	if seed != nil {
		rand.New(rand.NewSource(*seed)).Shuffle(len(names), swap)
		return
	}
	// The shared source is not safe for concurrent use; the HTTP surface
	// can generate rounds concurrently.
	m.mu.Lock()
	defer m.mu.Unlock()
	m.r.Shuffle(len(names), swap)
}
