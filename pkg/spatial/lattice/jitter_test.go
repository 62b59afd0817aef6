package lattice

import (
	"math"
	"testing"

	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

func TestAddJitterBounds(t *testing.T) {
	base := Distribute(37, 100)
	const maxJitter = 20.0

	jittered := AddJitter(base, maxJitter, 7)
	if len(jittered) != len(base) {
		t.Fatalf("len = %d, want %d", len(jittered), len(base))
	}

	moved := 0
	for i := range base {
		dx := math.Abs(jittered[i].X - base[i].X)
		dy := math.Abs(jittered[i].Y - base[i].Y)
		if dx > maxJitter/2 || dy > maxJitter/2 {
			t.Errorf("point %d moved (%v, %v), want within %v", i, dx, dy, maxJitter/2)
		}
		if dx > 0 || dy > 0 {
			moved++
		}
	}
	if moved == 0 {
		t.Error("no point was jittered")
	}
}

func TestAddJitterDoesNotMutateInput(t *testing.T) {
	base := []geom.Position2D{{X: 1, Y: 1}, {X: 2, Y: 2}}
	snapshot := append([]geom.Position2D(nil), base...)

	_ = AddJitter(base, 50, 1)

	for i := range base {
		if base[i] != snapshot[i] {
			t.Errorf("input[%d] changed to %+v", i, base[i])
		}
	}
}

func TestAddJitterDeterministic(t *testing.T) {
	base := Distribute(10, 30)
	a := AddJitter(base, 10, 42)
	b := AddJitter(base, 10, 42)
	c := AddJitter(base, 10, 43)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different output at %d", i)
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical output")
	}
}

func TestAddJitterZero(t *testing.T) {
	base := Distribute(5, 30)
	got := AddJitter(base, 0, 3)
	for i := range base {
		if got[i] != base[i] {
			t.Errorf("zero jitter moved point %d", i)
		}
	}
}
