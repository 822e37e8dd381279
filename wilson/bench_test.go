package wilson_test

import (
	"math/rand"
	"testing"

	"github.com/mbrooker/maze-maker/cylgrid"
	"github.com/mbrooker/maze-maker/wilson"
)

// BenchmarkGenerate_Small measures Wilson's algorithm on the default CLI
// grid size (10×20).
func BenchmarkGenerate_Small(b *testing.B) {
	g, err := cylgrid.New(10, 20)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wilson.Generate(g, wilson.WithRand(rng)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Large measures a 50×50 grid, the largest size the
// original tool exercised.
func BenchmarkGenerate_Large(b *testing.B) {
	g, err := cylgrid.New(50, 50)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wilson.Generate(g, wilson.WithRand(rng)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
