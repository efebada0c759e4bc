// File: game/rng_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagSourceCoversAllShapesPerBag(t *testing.T) {
	source := NewBagSource(42)
	for bag := 0; bag < 5; bag++ {
		seen := map[Shape]int{}
		for i := 0; i < len(AllShapes); i++ {
			seen[source.Next()]++
		}
		for _, shape := range AllShapes {
			assert.Equal(t, 1, seen[shape], "bag %d: shape %s", bag, shape)
		}
	}
}

func TestBagSourceDeterministicForSeed(t *testing.T) {
	a := NewBagSource(7)
	b := NewBagSource(7)
	for i := 0; i < 35; i++ {
		assert.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestBagSourceSeedsDiffer(t *testing.T) {
	a := NewBagSource(1)
	b := NewBagSource(2)
	same := true
	for i := 0; i < 14; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	assert.False(t, same, "two seeds produced identical draws over two bags")
}

func TestFixedSource(t *testing.T) {
	source := FixedSource{Shape: ShapeT}
	for i := 0; i < 3; i++ {
		assert.Equal(t, ShapeT, source.Next())
	}
}
