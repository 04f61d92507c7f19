package layout

import "testing"

func TestFloatManagerCache_Bounded(t *testing.T) {
	c := &floatManagerCache{}
	managers := make([]*FloatManager, 0, floatManagerCacheSize+2)
	for i := 0; i < floatManagerCacheSize+2; i++ {
		managers = append(managers, &FloatManager{})
	}
	for _, m := range managers {
		c.put(m)
	}
	if len(c.items) != floatManagerCacheSize {
		t.Errorf("Expected cache capped at %d, got %d",
			floatManagerCacheSize, len(c.items))
	}

	for i := 0; i < floatManagerCacheSize; i++ {
		if c.take() == nil {
			t.Fatalf("Expected cached instance at %d", i)
		}
	}
	if c.take() != nil {
		t.Error("Expected empty cache to return nil")
	}
}

func TestFloatManagerCache_ShutdownRefusesCaching(t *testing.T) {
	c := &floatManagerCache{}
	c.put(&FloatManager{})
	c.shutDown = true
	c.items = nil
	c.put(&FloatManager{})
	if len(c.items) != 0 {
		t.Error("Expected no caching after shutdown")
	}
}
