package label

import "sort"

// Median implements the canonical-owner rule shared by cells and facets: the
// main tile of a simplex is the median of its finite incident vertices'
// labels, ties broken toward the lower index. Median does not mutate labels;
// it sorts a private copy.
//
// Median panics on an empty slice: callers (tile.CellIsMain, tile.FacetIsMain)
// only ever call it with at least one finite incident vertex, since a
// simplex with zero finite vertices has no meaningful main tile.
func Median(labels []Index) Index {
	if len(labels) == 0 {
		panic("label: Median called with no labels")
	}
	sorted := make([]Index, len(labels))
	copy(sorted, labels)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// Lower-middle element: for n labels the median position is (n-1)/2,
	// which for even n picks the lower of the two central values — the
	// tie-break spec.md §3 mandates ("tie-broken by the lower index").
	return sorted[(len(sorted)-1)/2]
}
