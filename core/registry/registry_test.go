package registry

import "testing"

func TestSetGet(t *testing.T) {
	r := New()
	if _, ok := r.GetGlobal("missing"); ok {
		t.Error("missing key should not resolve")
	}
	r.SetGlobal("k", 42)
	v, ok := r.GetGlobal("k")
	if !ok || v.(int) != 42 {
		t.Errorf("GetGlobal = %v, %v", v, ok)
	}
}

func TestLock(t *testing.T) {
	r := New()
	r.SetGlobal("k", "before")
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Fatal("IsLocked = false after Lock")
	}
	r.SetGlobal("k", "after")
	if v, _ := r.GetGlobal("k"); v != "before" {
		t.Errorf("locked key mutated: %v", v)
	}

	r.UnlockForTesting("k")
	r.SetGlobal("k", "after")
	if v, _ := r.GetGlobal("k"); v != "after" {
		t.Errorf("unlocked key not writable: %v", v)
	}
}
