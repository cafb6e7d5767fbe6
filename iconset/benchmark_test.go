package iconset

import (
	"context"
	"testing"
)

// BenchmarkRender benchmarks rasterizing every icon once
func BenchmarkRender(b *testing.B) {
	opts := DefaultOptions()
	for i := 0; i < b.N; i++ {
		for _, icon := range icons {
			if _, err := Render(icon, opts); err != nil {
				b.Fatalf("Render failed: %v", err)
			}
		}
	}
}

// BenchmarkRenderScaledAntialias benchmarks the 3x antialiased path
func BenchmarkRenderScaledAntialias(b *testing.B) {
	opts := Options{Scale: 3, Antialias: true}
	for i := 0; i < b.N; i++ {
		for _, icon := range icons {
			if _, err := Render(icon, opts); err != nil {
				b.Fatalf("Render failed: %v", err)
			}
		}
	}
}

// BenchmarkGenerate benchmarks a full run including PNG writes
func BenchmarkGenerate(b *testing.B) {
	dir := b.TempDir()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(context.Background(), dir, DefaultOptions(), nil); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
