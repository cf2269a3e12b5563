package container

import (
	"runtime"

	"github.com/ddt-go/ddt/label"
)

func (c *Container) inMemoryCountLocked() int {
	n := 0
	for _, s := range c.slots {
		if s.InMemory {
			n++
		}
	}
	return n
}

// ensureCapacity evicts one unlocked in-memory slot if the container is
// at capacity. It takes the lock itself and releases it around the
// actual Save call, per the "serializer I/O runs outside the global
// mutex" requirement.
func (c *Container) ensureCapacity() error {
	c.mu.Lock()
	if c.inMemoryCountLocked() < c.capacity {
		c.mu.Unlock()
		return nil
	}

	var candidates []label.Index
	for idx, s := range c.slots {
		if s.InMemory && !s.Locked {
			candidates = append(candidates, idx)
		}
	}
	if len(candidates) == 0 {
		c.mu.Unlock()
		return ErrCapacity
	}
	victimIdx := candidates[c.rnd.Intn(len(candidates))]
	victim := c.slots[victimIdx]
	victim.Locked = true
	victimTile := victim.Tile
	c.mu.Unlock()

	var saveErr error
	if c.ser != nil {
		_, saveErr = c.ser.Save(victimTile)
	}

	c.mu.Lock()
	victim.Locked = false
	if saveErr == nil {
		victim.InMemory = false
		victim.Tile = nil
		victim.UseCount = 0
	}
	c.mu.Unlock()
	return saveErr
}

// ensureCapacityRetrying busy-retries ensureCapacity up to retryBudget
// times when every in-memory slot is momentarily locked, yielding the
// goroutine between attempts.
func (c *Container) ensureCapacityRetrying() error {
	var err error
	for i := 0; i < c.retryBudget; i++ {
		err = c.ensureCapacity()
		if err != ErrCapacity {
			return err
		}
		runtime.Gosched()
	}
	return err
}
