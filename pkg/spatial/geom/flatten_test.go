package geom

import "testing"

func TestFlatten3DTo2D(t *testing.T) {
	tests := []struct {
		name string
		in   Position3D
		want Position2D
	}{
		{name: "origin", in: Position3D{}, want: Position2D{}},
		{name: "drops vertical axis", in: Position3D{X: 1, Y: 99, Z: 2}, want: Position2D{X: 1, Y: 2}},
		{name: "negative depth", in: Position3D{X: -4, Y: 0, Z: -8}, want: Position2D{X: -4, Y: -8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten3DTo2D(tt.in); got != tt.want {
				t.Errorf("Flatten3DTo2D() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFlattenPositions(t *testing.T) {
	in := []Position3D{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}, {X: 7, Y: 8, Z: 9}}
	got := FlattenPositions(in)

	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i, p := range in {
		if got[i] != (Position2D{X: p.X, Y: p.Z}) {
			t.Errorf("got[%d] = %+v, want {%v %v}", i, got[i], p.X, p.Z)
		}
	}

	if empty := FlattenPositions(nil); empty == nil || len(empty) != 0 {
		t.Errorf("FlattenPositions(nil) = %#v, want empty non-nil slice", empty)
	}
}
