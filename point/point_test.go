package point_test

import (
	"testing"

	"github.com/ddt-go/ddt/point"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		p, q point.Point
		eps  float64
		want bool
	}{
		{"exact", point.Point{1, 2}, point.Point{1, 2}, 0, true},
		{"diff-dim", point.Point{1, 2}, point.Point{1, 2, 3}, 0, false},
		{"within-eps", point.Point{1, 2}, point.Point{1.0001, 2}, 1e-3, true},
		{"outside-eps", point.Point{1, 2}, point.Point{1.1, 2}, 1e-3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := point.Equal(tc.p, tc.q, tc.eps); got != tc.want {
				t.Errorf("Equal(%v,%v,%v) = %v; want %v", tc.p, tc.q, tc.eps, got, tc.want)
			}
		})
	}
}

func TestBboxExtendUnion(t *testing.T) {
	b := point.NewBbox(point.Point{0, 0})
	b = b.Extend(point.Point{2, -1})
	if !point.Equal(b.Lo, point.Point{0, -1}, 0) || !point.Equal(b.Hi, point.Point{2, 0}, 0) {
		t.Fatalf("unexpected bbox after Extend: %+v", b)
	}
	other := point.NewBbox(point.Point{-3, 5})
	u := point.Union(b, other)
	if !point.Equal(u.Lo, point.Point{-3, -1}, 0) || !point.Equal(u.Hi, point.Point{2, 5}, 0) {
		t.Fatalf("unexpected bbox after Union: %+v", u)
	}
}
