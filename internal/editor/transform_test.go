package editor

import "testing"

func TestTranslatePath(t *testing.T) {
	cases := []struct {
		name   string
		d      string
		dx, dy float64
		want   string
	}{
		{"basic", "M 10 10 L 20 20", 5, -5, "M 15 5 L 25 15"},
		{"negative coords", "M -3 4 L -10 -20", 3, 20, "M 0 24 L -7 0"},
		{"fractional", "M 1.5 2.25 L 3.75 4.5", 0.5, 0.75, "M 2 3 L 4.25 5.25"},
		{"comma separated", "M 10,10 L 20,20", 1, 1, "M 11 11 L 21 21"},
		{"zero delta", "M 10 10 L 20 20", 0, 0, "M 10 10 L 20 20"},
		{"long stroke", "M 0 0 L 1 1 L 2 2 L 3 3", 10, 10, "M 10 10 L 11 11 L 12 12 L 13 13"},
		{"unsupported commands pass through", "M 10 10 C 1 2 3 4 5 6 L 20 20", 5, 5, "M 15 15 C 1 2 3 4 5 6 L 25 25"},
		{"malformed untouched", "garbage", 5, 5, "garbage"},
		{"empty", "", 5, 5, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TranslatePath(tc.d, tc.dx, tc.dy); got != tc.want {
				t.Errorf("TranslatePath(%q, %v, %v) = %q, want %q", tc.d, tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestPathPoints(t *testing.T) {
	pts := pathPoints("M 1 2 L 3 4 L 5 6")
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	want := []Point{{1, 2}, {3, 4}, {5, 6}}
	for i, p := range pts {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestPathDataAlternatesMoveAndLine(t *testing.T) {
	got := pathData([]Point{{1, 2}})
	if got != "M 1 2" {
		t.Errorf("single point path %q, want %q", got, "M 1 2")
	}
	got = pathData([]Point{{1, 2}, {3.5, -4}})
	if got != "M 1 2 L 3.5 -4" {
		t.Errorf("two point path %q, want %q", got, "M 1 2 L 3.5 -4")
	}
}
