package ddt

import (
	"errors"
	"fmt"

	"github.com/ddt-go/ddt/label"
)

// errStop unwinds withEveryTile early once Validate has found its first
// violation in non-verbose mode; it is never surfaced to callers.
var errStop = errors.New("ddt: validation stopped at first violation")

// Violation records one invariant failure found by Validate.
type Violation struct {
	Tile  label.Index
	Rule  string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("tile %d: %s: %s", v.Tile, v.Rule, v.Detail)
}

// Validate checks invariants I1 (vertex relocatability), I2 (mixed facet
// relocatability into every tile labeling one of its vertices), I3 (mixed
// cell relocatability into every tile labeling one of its vertices), I4
// (every foreign vertex has a local neighbor) and a structural stand-in
// for I6 (neighbor/mirror consistency, sampled up to level cells per
// tile — an exact in-sphere re-check of every cell is out of scope for
// this validator). It stops at the first failure unless verbose is set,
// in which case it collects every violation it finds.
func (d *Distributed) Validate(verbose bool, level int) (bool, []Violation) {
	var violations []Violation
	ok := true

	report := func(v Violation) bool {
		violations = append(violations, v)
		ok = false
		return verbose
	}

	_ = d.withEveryTile(func(idx label.Index, th *tileHandle) error {
		for _, v := range th.t.Complex.VertexIDs() {
			if !th.t.VertexIsForeign(v) {
				continue
			}
			mainIdx := th.t.LabelOf(v)
			mainSlot, err := d.tileOrErr(mainIdx)
			if err != nil {
				if !report(Violation{idx, "I1", fmt.Sprintf("main tile %d unreachable for vertex %d", mainIdx, v)}) {
					return errStop
				}
				continue
			}
			if _, err := th.t.RelocateVertex(v, mainSlot.t); err != nil {
				if !report(Violation{idx, "I1", fmt.Sprintf("vertex %d has no relocation target in tile %d", v, mainIdx)}) {
					return errStop
				}
			}

			adj, err := th.t.Complex.AdjacentVertices(v)
			if err != nil {
				return err
			}
			hasLocal := false
			for _, u := range adj {
				if th.t.VertexIsLocal(u) {
					hasLocal = true
					break
				}
			}
			if !hasLocal {
				if !report(Violation{idx, "I4", fmt.Sprintf("foreign vertex %d has no local neighbor (should have been simplified)", v)}) {
					return errStop
				}
			}
		}

		checked := 0
		for _, c := range th.t.Complex.CellIDs() {
			sampled := level <= 0 || checked < level
			checked++

			mixed, err := th.t.CellIsMixed(c)
			if err != nil {
				return err
			}
			if mixed {
				labels, err := th.t.CellLabelSet(c)
				if err != nil {
					return err
				}
				for _, l := range labels {
					if l == idx {
						continue
					}
					target, err := d.tileOrErr(l)
					if err != nil {
						if !report(Violation{idx, "I3", fmt.Sprintf("cell %d: labeled tile %d unreachable", c, l)}) {
							return errStop
						}
						continue
					}
					if _, err := th.t.RelocateCell(c, target.t); err != nil {
						if !report(Violation{idx, "I3", fmt.Sprintf("cell %d has no relocation target in tile %d", c, l)}) {
							return errStop
						}
					}
				}
			}

			verts, err := th.t.Complex.CellVertices(c)
			if err != nil {
				return err
			}
			for i := range verts {
				fmixed, err := th.t.FacetIsMixed(c, i)
				if err != nil {
					return err
				}
				if fmixed {
					labels, err := th.t.FacetLabelSet(c, i)
					if err != nil {
						return err
					}
					for _, l := range labels {
						if l == idx {
							continue
						}
						target, err := d.tileOrErr(l)
						if err != nil {
							if !report(Violation{idx, "I2", fmt.Sprintf("cell %d facet %d: labeled tile %d unreachable", c, i, l)}) {
								return errStop
							}
							continue
						}
						if _, _, err := th.t.RelocateFacet(c, i, target.t); err != nil {
							if !report(Violation{idx, "I2", fmt.Sprintf("cell %d facet %d has no relocation target in tile %d", c, i, l)}) {
								return errStop
							}
						}
					}
				}

				if !sampled {
					continue
				}
				n, err := th.t.Complex.CellNeighbor(c, i)
				if err != nil {
					return err
				}
				mi, err := th.t.Complex.MirrorIndex(c, i)
				if err != nil {
					return err
				}
				back, err := th.t.Complex.CellNeighbor(n, mi)
				if err != nil {
					return err
				}
				if back != c {
					if !report(Violation{idx, "I6", fmt.Sprintf("cell %d facet %d: neighbor/mirror mismatch", c, i)}) {
						return errStop
					}
				}
			}
		}
		return nil
	})

	return ok, violations
}
