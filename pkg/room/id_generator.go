package room

import "sync"

// IDGenerator hands out increasing game IDs, starting at 1
type IDGenerator struct {
	lock sync.Mutex
	last int
}

// NewIDGenerator returns a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next ID
func (i *IDGenerator) Next() int {
	i.lock.Lock()
	defer i.lock.Unlock()

	i.last++
	return i.last
}
