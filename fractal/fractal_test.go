package fractal

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"
)

func TestInstability_KnownPoints(t *testing.T) {
	tests := []struct {
		name  string
		c     Point
		iters uint32
		want  Value
	}{
		{"origin never escapes", Point{0, 0}, 50, Bounded},
		{"origin with budget 1", Point{0, 0}, 1, Bounded},
		{"origin with large budget", Point{0, 0}, 10000, Bounded},
		{"far point escapes first step", Point{2, 2}, 1, 1},
		{"far point escapes first step large budget", Point{2, 2}, 500, 1},
		{"minus one is periodic", Point{-1, 0}, 200, Bounded},
		{"minus two stays on the boundary", Point{-2, 0}, 200, Bounded},
		{"one escapes at third step", Point{1, 0}, 50, 3},
		{"one bounded under tight budget", Point{1, 0}, 2, Bounded},
		{"i is preperiodic", Point{0, 1}, 100, Bounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Instability(tt.c, tt.iters); got != tt.want {
				t.Errorf("Instability(%v, %d) = %d, want %d", tt.c, tt.iters, got, tt.want)
			}
		})
	}
}

func TestInstability_ZeroBudget(t *testing.T) {
	if got := Instability(Point{2, 2}, 0); got != Bounded {
		t.Errorf("zero budget should report Bounded, got %d", got)
	}
}

func TestInstability_Range(t *testing.T) {
	budgets := []uint32{1, 2, 7, 50, 300}
	for _, maxIter := range budgets {
		for re := -2.5; re <= 1.0; re += 0.173 {
			for im := -1.5; im <= 1.5; im += 0.131 {
				v := Instability(Point{re, im}, maxIter)
				if v > maxIter {
					t.Fatalf("Instability(%v,%v) with budget %d = %d, exceeds budget", re, im, maxIter, v)
				}
			}
		}
	}
}

func TestGenerate_LengthAndMax(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		iters         uint32
	}{
		{"single cell", 1, 1, 50},
		{"wide", 37, 3, 80},
		{"tall", 4, 29, 20},
		{"terminal", 80, 24, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Generate(-2.0, 1.0, -1.2, 1.2, tt.width, tt.height, tt.iters)
			if len(g.Values) != tt.width*tt.height {
				t.Fatalf("len = %d, want %d", len(g.Values), tt.width*tt.height)
			}
			if g.Width != tt.width || g.Height != tt.height {
				t.Errorf("dims = %dx%d, want %dx%d", g.Width, g.Height, tt.width, tt.height)
			}
			var want Value
			for _, v := range g.Values {
				if v > want {
					want = v
				}
			}
			if g.Max != want {
				t.Errorf("Max = %d, brute force max = %d", g.Max, want)
			}
		})
	}
}

func TestGenerate_SamplesCellCenters(t *testing.T) {
	// Two columns over [-3,1]: centers at -2 and 0
	g := Generate(-3, 1, -0.5, 0.5, 2, 1, 100)
	if got := g.At(0, 0); got != Instability(Point{-2, 0}, 100) {
		t.Errorf("left cell = %d, want value at -2", got)
	}
	if got := g.At(0, 1); got != Bounded {
		t.Errorf("right cell = %d, want Bounded at origin", got)
	}
}

func TestGenerate_RowMajor(t *testing.T) {
	g := Generate(-2, 1, -1, 1, 5, 4, 30)
	dx := 3.0 / 5
	dy := 2.0 / 4
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			c := Point{-2 + dx/2 + offset(col, dx), -1 + dy/2 + offset(row, dy)}
			if got, want := g.Values[row*5+col], Instability(c, 30); got != want {
				t.Errorf("cell (%d,%d) = %d, want %d", row, col, got, want)
			}
		}
	}
}

func TestGenerate_AllBounded(t *testing.T) {
	g := Generate(-0.1, 0.1, -0.1, 0.1, 6, 6, 40)
	if g.Max != 0 {
		t.Errorf("Max = %d, want 0 for interior region", g.Max)
	}
	if g.BoundedCount() != 36 {
		t.Errorf("BoundedCount = %d, want 36", g.BoundedCount())
	}
}

func TestGenerate_Degenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 10}, {10, 0}, {-3, 4}} {
		g := Generate(-2, 1, -1, 1, dims[0], dims[1], 50)
		if len(g.Values) != 0 {
			t.Errorf("%v: len = %d, want 0", dims, len(g.Values))
		}
		if g.Max != 0 {
			t.Errorf("%v: Max = %d, want 0", dims, g.Max)
		}
	}
}

func TestGrid_AtOutOfRange(t *testing.T) {
	g := Generate(1, 2, 1, 2, 3, 3, 10)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if got := g.At(rc[0], rc[1]); got != Bounded {
			t.Errorf("At(%d,%d) = %d, want Bounded", rc[0], rc[1], got)
		}
	}
}

// TestGenerate_GoldenDefaultView renders the startup view of an 80x24 terminal
// The bounds are the aspect-corrected startup bounds for that size
func TestGenerate_GoldenDefaultView(t *testing.T) {
	want := readGolden(t, "testdata/mandelbrot_80x24_i50.golden")

	g := Generate(-4.25, 2.75, -1.5, 1.5, 80, 24, 50)
	if len(g.Values) != len(want) {
		t.Fatalf("len = %d, golden has %d", len(g.Values), len(want))
	}
	mismatches := 0
	for i := range want {
		if g.Values[i] != want[i] {
			if mismatches < 10 {
				t.Errorf("cell (%d,%d) = %d, golden %d", i/80, i%80, g.Values[i], want[i])
			}
			mismatches++
		}
	}
	if mismatches > 0 {
		t.Fatalf("%d cells differ from golden render", mismatches)
	}
	if g.Max != 28 {
		t.Errorf("Max = %d, want 28", g.Max)
	}
}

func readGolden(t *testing.T, path string) []Value {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open golden: %v", err)
	}
	defer f.Close()

	var out []Value
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		for _, field := range strings.Fields(sc.Text()) {
			n, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				t.Fatalf("parse golden %q: %v", field, err)
			}
			out = append(out, Value(n))
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan golden: %v", err)
	}
	return out
}

func BenchmarkGenerate_Terminal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Generate(-4.25, 2.75, -1.5, 1.5, 200, 60, 500)
	}
}
