package container

import (
	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/tile"
)

// TryEmplace returns the in-memory Slot for idx, creating a fresh empty
// tile (or loading a persisted one) if it is not already resident,
// evicting another tile first if the container is at capacity.
func (c *Container) TryEmplace(idx label.Index) (*Slot, error) {
	c.mu.Lock()
	if s, ok := c.slots[idx]; ok && s.InMemory {
		s.UseCount++
		c.mu.Unlock()
		return s, nil
	}
	c.mu.Unlock()
	return c.Load(idx)
}

// Find returns idx's slot without creating or loading it. ok is false if
// this container has never seen idx.
func (c *Container) Find(idx label.Index) (*Slot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[idx]
	return s, ok
}

// Erase drops idx's bookkeeping entirely, without persisting it first.
// Callers that want the content kept should Save via the Serializer
// themselves before calling Erase.
func (c *Container) Erase(idx label.Index) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.slots[idx]; !ok {
		return ErrNotFound
	}
	delete(c.slots, idx)
	return nil
}

// Range calls fn for every known tile index, in-memory or not, stopping
// early if fn returns false. fn is called with the container's mutex
// held, matching the "global mutex guards the slot map" shape; fn must
// not call back into the Container.
func (c *Container) Range(fn func(label.Index, *Slot) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx, s := range c.slots {
		if !fn(idx, s) {
			return
		}
	}
}

// Load ensures idx's tile is resident in memory, evicting and
// loading/creating as needed, and returns its Slot.
func (c *Container) Load(idx label.Index) (*Slot, error) {
	slot, mustLoad, err := c.PrepareLoad(idx)
	if err != nil {
		return nil, err
	}
	if !mustLoad {
		return slot, nil
	}

	t := tile.New(idx, c.kern)
	if c.ser != nil && c.ser.HasTile(idx) {
		if _, err := c.ser.Load(t); err != nil {
			return nil, err
		}
	}
	return c.SafeLoad(idx, t)
}

// PrepareLoad arbitrates capacity under the global mutex and reserves a
// slot for idx, returning (slot, false, nil) immediately if idx is
// already resident, or (slot, true, nil) with the slot locked and empty
// if the caller must now perform the actual Serializer I/O and commit it
// via SafeLoad. Splitting these two steps keeps Serializer.Load off the
// global mutex.
func (c *Container) PrepareLoad(idx label.Index) (*Slot, bool, error) {
	c.mu.Lock()
	if s, ok := c.slots[idx]; ok && s.InMemory {
		s.UseCount++
		c.mu.Unlock()
		return s, false, nil
	}
	c.mu.Unlock()

	if err := c.ensureCapacityRetrying(); err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[idx]
	if !ok {
		s = &Slot{}
		c.slots[idx] = s
	}
	s.Locked = true
	return s, true, nil
}

// SafeLoad commits a tile loaded outside the global mutex into idx's
// reserved slot.
func (c *Container) SafeLoad(idx label.Index, t *tile.Triangulation) (*Slot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[idx]
	if !ok {
		s = &Slot{}
		c.slots[idx] = s
	}
	s.Tile = t
	s.InMemory = true
	s.Locked = false
	s.UseCount++
	return s, nil
}
