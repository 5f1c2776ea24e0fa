package utils

import "testing"

func TestPRNGIsReproducible(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	a.Reseed()
	c := NewPRNGService(42)
	if a.Float64() != c.Float64() {
		t.Fatal("Reseed must restart the sequence")
	}
}

func TestRangeAndSpreadBounds(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := r.Range(30, 20); v < 30 || v >= 50 {
			t.Fatalf("Range = %f", v)
		}
		if v := r.Spread(2); v <= -2 || v >= 2 {
			t.Fatalf("Spread = %f", v)
		}
	}
}

func TestMathHelpers(t *testing.T) {
	ratio, invested := 0.7, 350
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"clamp low", Clamp(-1, 0, 3), 0},
		{"clamp high", Clamp(9, 0, 3), 3},
		{"floor refund", float64(FloorInt(ratio * float64(invested))), 244},
		{"floor exact", float64(FloorInt(140)), 140},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
