package eval

import "testing"

func TestEnv_SetMutatesInPlace(t *testing.T) {
	e := NewEnv()
	alias := e
	e.Set("x", 1)
	if v, ok := alias.Get("x"); !ok || v != 1 {
		t.Errorf("binding not visible through aliased reference: got %v, %v", v, ok)
	}
}

func TestEnv_CloneIsIndependent(t *testing.T) {
	e := NewEnv()
	e.Set("x", 1)

	c := e.Clone()
	if v, ok := c.Get("x"); !ok || v != 1 {
		t.Fatalf("clone does not see existing binding: got %v, %v", v, ok)
	}

	// Mutations after the clone are invisible in both directions.
	c.Set("y", 2)
	if _, ok := e.Get("y"); ok {
		t.Error("mutation of clone leaked into original")
	}
	e.Set("z", 3)
	if _, ok := c.Get("z"); ok {
		t.Error("mutation of original leaked into clone")
	}

	c.Set("x", 99)
	if v, _ := e.Get("x"); v != 1 {
		t.Errorf("rebinding in clone changed original: got %v, want 1", v)
	}
}

func TestEnv_Len(t *testing.T) {
	e := NewEnv()
	if e.Len() != 0 {
		t.Errorf("empty env has length %d, want 0", e.Len())
	}
	e.Set("x", 1)
	e.Set("x", 2)
	e.Set("y", 3)
	if e.Len() != 2 {
		t.Errorf("env has length %d, want 2", e.Len())
	}
}
