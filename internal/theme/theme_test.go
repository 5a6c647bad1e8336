package theme

import "testing"

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()
	cur := r.Current()
	if cur == nil {
		t.Fatal("Current returned nil")
	}
	if cur.Name != "matrix" {
		t.Errorf("default theme: want matrix, got %q", cur.Name)
	}
}

func TestRegistrySetCurrent(t *testing.T) {
	r := NewRegistry()
	if err := r.SetCurrent("amber"); err != nil {
		t.Fatalf("SetCurrent(amber): %v", err)
	}
	if r.Current().Name != "amber" {
		t.Errorf("Current: want amber, got %q", r.Current().Name)
	}

	if err := r.SetCurrent("nonexistent"); err == nil {
		t.Error("SetCurrent with unknown theme should fail")
	}
	if r.Current().Name != "amber" {
		t.Error("failed SetCurrent must not change the current theme")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	if len(names) != 3 {
		t.Fatalf("List: want 3 themes, got %d", len(names))
	}
	want := map[string]bool{"matrix": true, "amber": true, "light": true}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected theme %q", n)
		}
	}
}
