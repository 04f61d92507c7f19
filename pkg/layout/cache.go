package layout

import "sync"

// Reflow creates and discards float managers densely, one per block
// formatting context per pass, so a small free list of instances pays
// for itself. The cache has no observable effect beyond allocation:
// NewFloatManager fully resets whatever it hands out.
const floatManagerCacheSize = 4

var managerCache = &floatManagerCache{}

type floatManagerCache struct {
	mu       sync.Mutex
	items    []*FloatManager
	shutDown bool
}

func (c *floatManagerCache) take() *FloatManager {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil
	}
	m := c.items[len(c.items)-1]
	c.items = c.items[:len(c.items)-1]
	return m
}

func (c *floatManagerCache) put(m *FloatManager) {
	if m == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.shutDown || len(c.items) >= floatManagerCacheSize {
		return
	}
	c.items = append(c.items, m)
}

// ShutdownFloatManagerCache drains the instance cache and refuses
// further caching. Called when the layout module shuts down.
func ShutdownFloatManagerCache() {
	managerCache.mu.Lock()
	defer managerCache.mu.Unlock()
	managerCache.items = nil
	managerCache.shutDown = true
}
