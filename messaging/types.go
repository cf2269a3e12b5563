package messaging

import (
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/point"
)

// Item is one point travelling to a tile, paired with the label of the
// tile it originated from (so the receiving tile can tell local insertions
// from foreign ones once it labels the new vertex).
type Item struct {
	P     point.Point
	Label label.Index
}

// key turns an Item into a comparable map key. point.Point is a slice and
// therefore not directly comparable; Items are deduped on coordinates plus
// origin label via an explicit string key instead of using Item itself as
// a map key.
type key string

func itemKey(it Item) key {
	b := make([]byte, 0, 32)
	for _, c := range it.P {
		b = appendFloat(b, c)
	}
	b = appendInt(b, int(it.Label))
	return key(b)
}
