package hash32

import "testing"

func TestRegistryFirstWins(t *testing.T) {
	r := NewRegistry()
	if !r.Register("alpha") {
		t.Fatal("first registration should succeed")
	}
	// Force a collision: register a different string under the same hash.
	h := Hash("alpha")
	if r.RegisterHash(h, "beta") {
		t.Fatal("second registration for an already-registered hash should report false")
	}
	got, ok := r.Lookup(h)
	if !ok || got != "alpha" {
		t.Fatalf("Lookup(%#x) = %q, %v; want %q, true", h, got, ok, "alpha")
	}
}

func TestRegistryIdempotence(t *testing.T) {
	r := NewRegistry()
	r.Register("input_pins")
	before := r.Len()
	r.Register("input_pins")
	if r.Len() != before {
		t.Fatalf("registering the same string twice changed Len: %d -> %d", before, r.Len())
	}
	if got, _ := r.Lookup(Hash("output_pins")); got != "" {
		t.Fatalf("registering input_pins twice affected an unrelated hash: got %q", got)
	}
}

func TestRegistryResolveFallback(t *testing.T) {
	r := NewRegistry()
	h := Hash("never_registered")
	if got := r.Resolve(h); got != Fallback(h) {
		t.Fatalf("Resolve of unregistered hash = %q, want %q", got, Fallback(h))
	}
	r.Register("now_registered")
	if got := r.Resolve(Hash("now_registered")); got != "now_registered" {
		t.Fatalf("Resolve after registration = %q, want %q", got, "now_registered")
	}
}

func TestInitPopulatesCuratedNames(t *testing.T) {
	Init(nil)
	for _, name := range []string{"input_pins", "output_pins", "variable_pins", "bool", "VariableFloat"} {
		if got := Resolve(Hash(name)); got != name {
			t.Fatalf("Resolve(Hash(%q)) = %q after Init", name, got)
		}
	}
}
