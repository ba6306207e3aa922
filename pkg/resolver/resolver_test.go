package resolver

import "testing"

func TestResolveNotImplemented(t *testing.T) {
	r := New(nil)
	if err := r.Resolve("/some/path", "field"); err != ErrNotImplemented {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}
