package gcollector

import (
	"testing"
	"time"
)

func TestMallocFreeForceCollect(t *testing.T) {
	c := New(WithTickPeriod(time.Hour))
	defer c.Shutdown()

	addr, err := c.Malloc(64, true, 0)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	if addr == 0 {
		t.Fatal("Malloc returned zero address")
	}

	c.Free(addr)
	c.ForceCollect(true)

	if got := c.CollectionsCount(); got < 1 {
		t.Errorf("CollectionsCount = %d, want >= 1", got)
	}
}

func TestConfigureThresholds(t *testing.T) {
	c := New(WithTickPeriod(time.Hour))
	defer c.Shutdown()

	c.ConfigureThresholds(1024, 4096, 0.1, 0.2)

	if _, err := c.Malloc(2048, true, 0); err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	if got := c.YoungGenSize(); got != 2048 {
		t.Errorf("YoungGenSize = %d, want 2048", got)
	}
}

func TestReparentAcrossObjects(t *testing.T) {
	c := New(WithTickPeriod(time.Hour))
	defer c.Shutdown()

	root, err := c.Malloc(32, true, 0)
	if err != nil {
		t.Fatalf("Malloc root: %v", err)
	}
	other, err := c.Malloc(32, true, 0)
	if err != nil {
		t.Fatalf("Malloc other: %v", err)
	}
	child, err := c.Malloc(32, false, root)
	if err != nil {
		t.Fatalf("Malloc child: %v", err)
	}

	c.Reparent(child, other)
	c.Free(root)
	c.ForceCollect(true)

	if got, want := c.YoungGenSize()+c.OldGenSize(), uint64(64); got != want {
		t.Errorf("surviving bytes = %d, want %d (root's 32 bytes reclaimed)", got, want)
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	c := New(WithTickPeriod(time.Hour))
	c.Shutdown()
	c.Shutdown()
}

func TestSingletonShutdown(t *testing.T) {
	if _, err := Malloc(16, true, 0); err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	ForceCollect(false)
	if got := CollectionsCount(); got < 1 {
		t.Errorf("CollectionsCount = %d, want >= 1", got)
	}
	Shutdown()
}
