// File: game/rng.go
package game

import "math/rand"

// PieceSource feeds the session with upcoming shapes. Implementations
// must return without blocking; the session pulls the next shape inside
// its own event processing.
type PieceSource interface {
	Next() Shape
}

// BagSource deals shapes with the 7-bag system: every run of seven
// contains each shape exactly once, in shuffled order. Two sources built
// from the same seed produce identical sequences, which keeps sessions
// reproducible under test.
type BagSource struct {
	rng *rand.Rand
	bag []Shape
}

func NewBagSource(seed int64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewSource(seed))}
}

func (b *BagSource) Next() Shape {
	if len(b.bag) == 0 {
		b.refill()
	}
	shape := b.bag[0]
	b.bag = b.bag[1:]
	return shape
}

func (b *BagSource) refill() {
	b.bag = make([]Shape, len(AllShapes))
	copy(b.bag, AllShapes)
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

// FixedSource always deals the same shape. Used by tests that need full
// control over what spawns next.
type FixedSource struct {
	Shape Shape
}

func (f FixedSource) Next() Shape { return f.Shape }
