package ddt

import (
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/serialize"
)

// Write persists every known tile through ser, in parallel via Sched.
func (d *Distributed) Write(ser serialize.Serializer) error {
	tiles := d.Tiles()
	return d.Sched.RangesTransform(tiles, func(idx label.Index) error {
		th, err := d.tileOrErr(idx)
		if err != nil {
			return err
		}
		_, err = ser.Save(th.t)
		return err
	})
}

// Read loads, for every index in indices, the tile ser has persisted (if
// any) into this triangulation, in parallel via Sched. Only the given
// indices are probed; the caller supplies them.
func (d *Distributed) Read(ser serialize.Serializer, indices []label.Index) error {
	return d.Sched.RangesTransform(indices, func(idx label.Index) error {
		d.noteTile(idx)
		slot, err := d.Container.TryEmplace(idx)
		if err != nil {
			return err
		}
		if ser.HasTile(idx) {
			if _, err := ser.Load(slot.Tile); err != nil {
				return err
			}
		}
		return nil
	})
}
