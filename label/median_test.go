package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddt-go/ddt/label"
)

func TestMedianOdd(t *testing.T) {
	require.Equal(t, label.Index(2), label.Median([]label.Index{3, 1, 2}))
}

func TestMedianEvenPicksLower(t *testing.T) {
	// four labels 1,2,3,4: lower-middle position (n-1)/2 = 1 -> value 2.
	require.Equal(t, label.Index(2), label.Median([]label.Index{4, 2, 1, 3}))
}

func TestMedianSingleton(t *testing.T) {
	require.Equal(t, label.Index(7), label.Median([]label.Index{7}))
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	in := []label.Index{5, 1, 3}
	cp := append([]label.Index(nil), in...)
	label.Median(in)
	require.Equal(t, cp, in)
}

func TestMedianEmptyPanics(t *testing.T) {
	require.Panics(t, func() { label.Median(nil) })
}
