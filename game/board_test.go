package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewBoard_Dimensions(t *testing.T) {
	b := MustNewBoard([2]int{-10, 10}, [2]int{-5, 5})
	if b.Width() != 20 {
		t.Fatalf("width=%d want=20", b.Width())
	}
	if b.Height() != 10 {
		t.Fatalf("height=%d want=10", b.Height())
	}
	if lo, hi := b.XRange(); lo != -10 || hi != 10 {
		t.Fatalf("x range=[%d,%d) want=[-10,10)", lo, hi)
	}
	if lo, hi := b.YRange(); lo != -5 || hi != 5 {
		t.Fatalf("y range=[%d,%d) want=[-5,5)", lo, hi)
	}
	if b.Area() != 200 {
		t.Fatalf("area=%d want=200", b.Area())
	}
}

func TestNewBoard_RejectsEmptyRanges(t *testing.T) {
	cases := []struct {
		x, y [2]int
	}{
		{[2]int{0, 0}, [2]int{0, 5}},
		{[2]int{5, 0}, [2]int{0, 5}},
		{[2]int{0, 5}, [2]int{3, 3}},
		{[2]int{0, 5}, [2]int{4, -4}},
	}
	for _, c := range cases {
		_, err := NewBoard(c.x, c.y)
		if !errors.Is(err, ErrInvalidBounds) {
			t.Fatalf("NewBoard(%v, %v) err=%v want ErrInvalidBounds", c.x, c.y, err)
		}
	}
}

func TestMustNewBoard_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustNewBoard([2]int{1, 1}, [2]int{0, 1})
}

func TestBoard_Contains(t *testing.T) {
	b := MustNewBoard([2]int{-10, 10}, [2]int{-5, 5})
	in := []Point{Pt(9, 4), Pt(-10, -5), Pt(0, 0)}
	out := []Point{Pt(10, 5), Pt(10, 0), Pt(0, 5), Pt(-11, 0), Pt(0, -6)}
	for _, p := range in {
		if !b.Contains(p) {
			t.Fatalf("Contains(%v)=false want=true", p)
		}
	}
	for _, p := range out {
		if b.Contains(p) {
			t.Fatalf("Contains(%v)=true want=false", p)
		}
	}
}

func TestBoard_CellsRowMajorAndRestartable(t *testing.T) {
	b := MustNewBoard([2]int{1, 4}, [2]int{2, 4})
	want := []Point{Pt(1, 2), Pt(2, 2), Pt(3, 2), Pt(1, 3), Pt(2, 3), Pt(3, 3)}

	for pass := 0; pass < 2; pass++ {
		i := 0
		for c := range b.Cells() {
			if i >= len(want) || c != want[i] {
				t.Fatalf("pass %d cell %d=%v want=%v", pass, i, c, want)
			}
			i++
		}
		if i != len(want) {
			t.Fatalf("pass %d yielded %d cells want=%d", pass, i, len(want))
		}
	}

	// Early break must stop the sequence.
	n := 0
	for range b.Cells() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("break yielded %d", n)
	}
}

func TestBoard_RandomFreeCell_OnlyFreeAndUniformCoverage(t *testing.T) {
	b := MustNewBoard([2]int{0, 4}, [2]int{0, 4})
	taken := map[Point]bool{Pt(0, 0): true, Pt(1, 1): true, Pt(2, 2): true, Pt(3, 3): true, Pt(3, 0): true}
	isTaken := func(p Point) bool { return taken[p] }

	rng := rand.New(rand.NewSource(7))
	seen := map[Point]int{}
	const draws = 5000
	for i := 0; i < draws; i++ {
		c, ok := b.RandomFreeCell(rng, len(taken), isTaken)
		if !ok {
			t.Fatalf("draw %d: no cell returned", i)
		}
		if taken[c] {
			t.Fatalf("draw %d: returned taken cell %v", i, c)
		}
		if !b.Contains(c) {
			t.Fatalf("draw %d: returned out of bounds cell %v", i, c)
		}
		seen[c]++
	}

	free := b.Area() - len(taken)
	if len(seen) != free {
		t.Fatalf("saw %d distinct cells want=%d", len(seen), free)
	}
	// Loose uniformity check: every cell within 50% of the mean.
	mean := draws / free
	for c, n := range seen {
		if n < mean/2 || n > mean*3/2 {
			t.Fatalf("cell %v drawn %d times, mean %d", c, n, mean)
		}
	}
}

func TestBoard_RandomFreeCell_FullBoard(t *testing.T) {
	b := MustNewBoard([2]int{0, 3}, [2]int{0, 3})
	rng := rand.New(rand.NewSource(1))
	if c, ok := b.RandomFreeCell(rng, b.Area(), func(Point) bool { return true }); ok {
		t.Fatalf("full board returned %v", c)
	}
	if c, ok := b.RandomFreeCell(rng, b.Area()+3, func(Point) bool { return true }); ok {
		t.Fatalf("overcounted board returned %v", c)
	}
}

func TestBoard_RandomFreeCell_SingleFreeCell(t *testing.T) {
	b := MustNewBoard([2]int{0, 3}, [2]int{0, 3})
	hole := Pt(2, 1)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		c, ok := b.RandomFreeCell(rng, b.Area()-1, func(p Point) bool { return p != hole })
		if !ok || c != hole {
			t.Fatalf("got %v,%v want %v", c, ok, hole)
		}
	}
}

func TestBoard_RandomFreeCell_UndercountCanMiss(t *testing.T) {
	// Caller claims nothing is taken but every cell but one is. Only draws
	// of index 0 can succeed; the rest exhaust the scan.
	b := MustNewBoard([2]int{0, 10}, [2]int{0, 10})
	hole := Pt(9, 9)
	rng := rand.New(rand.NewSource(11))
	misses := 0
	for i := 0; i < 50; i++ {
		c, ok := b.RandomFreeCell(rng, 0, func(p Point) bool { return p != hole })
		if ok && c != hole {
			t.Fatalf("returned taken cell %v", c)
		}
		if !ok {
			misses++
		}
	}
	if misses == 0 {
		t.Fatalf("expected undercount to miss at least once")
	}
}
