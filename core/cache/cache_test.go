package cache

import (
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("test-set-get", "val", 0, nil)
	got, ok := c.Get("test-set-get")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nonexistent-key-xyz"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("test-delete", "x", 0, nil)
	c.Delete("test-delete")
	if _, ok := c.Get("test-delete"); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestTTL_Expiration(t *testing.T) {
	c := NewCache()
	c.Set("ttl-key", "v", 1, nil)
	if _, ok := c.Get("ttl-key"); !ok {
		t.Fatal("value should be present before expiry")
	}
	time.Sleep(1100 * time.Millisecond)
	if _, ok := c.Get("ttl-key"); ok {
		t.Error("value should have expired")
	}
}

func TestInvalidateTags(t *testing.T) {
	c := NewCache()
	c.Set("p1", "a", 0, []string{"products"})
	c.Set("p2", "b", 0, []string{"products", "other"})
	c.Set("u1", "c", 0, []string{"users"})

	c.InvalidateTags([]string{"products"})

	if _, ok := c.Get("p1"); ok {
		t.Error("p1 should be invalidated")
	}
	if _, ok := c.Get("p2"); ok {
		t.Error("p2 should be invalidated")
	}
	if _, ok := c.Get("u1"); !ok {
		t.Error("u1 should survive")
	}
}

func TestInvalidateTags_UnknownTag(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, nil)
	c.InvalidateTags([]string{"no-such-tag"})
	if _, ok := c.Get("k"); !ok {
		t.Error("untagged key should survive")
	}
}

func TestPruneExpired(t *testing.T) {
	c := NewCache()
	c.Set("stays", "v", 0, nil)
	c.Set("goes", "v", 1, nil)
	time.Sleep(1100 * time.Millisecond)

	pruned := c.PruneExpired()
	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}
	if _, ok := c.Get("stays"); !ok {
		t.Error("non-expiring key should survive prune")
	}
}
