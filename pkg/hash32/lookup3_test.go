package hash32

import "testing"

// TestHashDeterminism checks's hash determinism property: hashing
// the same string twice yields the same value, and the three well-known pin
// category names are pairwise distinct.
func TestHashDeterminism(t *testing.T) {
	for _, s := range []string{"input_pins", "output_pins", "variable_pins", "", "a", "Name", "VariableFloat"} {
		a, b := Hash(s), Hash(s)
		if a != b {
			t.Fatalf("Hash(%q) not deterministic: %#x vs %#x", s, a, b)
		}
	}

	in, out, vr := Hash("input_pins"), Hash("output_pins"), Hash("variable_pins")
	if in == out || out == vr || in == vr {
		t.Fatalf("pin category hashes collided: input=%#x output=%#x variable=%#x", in, out, vr)
	}
}

// TestHashKnownVectors pins Hash against literal 32-bit constants for the
// engine's own class names, computed independently from the published
// lookup3 mixing/finalization schedule. "VariableBool", "VariableEnum", and
// "VariableHash" are each exactly 12 bytes, the length at which a wrong loop
// bound would route the final block through mix() instead of the
// finalization switch; "VariableInt" is 11 bytes, the tail length most
// likely to get its byte-weighting wrong in the switch's fallthrough chain.
func TestHashKnownVectors(t *testing.T) {
	cases := []struct {
		s    string
		want uint32
	}{
		{"", 0xDEADBEEF},
		{"VariableBool", 0xACE03994},
		{"VariableEnum", 0x08D2D6E3},
		{"VariableHash", 0xFC38B001},
		{"VariableInt", 0x19686D3F},
	}
	for _, c := range cases {
		if got := Hash(c.s); got != c.want {
			t.Errorf("Hash(%q) = %#08X, want %#08X", c.s, got, c.want)
		}
	}
}

// TestHashEmpty exercises the zero-length fast path.
func TestHashEmpty(t *testing.T) {
	if Hash("") == 0 {
		// Not a correctness requirement, just a reasonable smoke check:
		// an all-zero digest for the empty string would be suspicious.
		t.Log("Hash(\"\") is zero; unusual but not necessarily wrong")
	}
}

// TestHashLengthBoundaries exercises every tail-length branch (0-12 bytes
// left after the block loop), since lookup3's fallthrough switch
// is the easiest part of the algorithm to get subtly wrong.
func TestHashLengthBoundaries(t *testing.T) {
	seen := make(map[uint32]string)
	for n := 0; n <= 26; n++ {
		s := make([]byte, n)
		for i := range s {
			s[i] = byte('a' + i%26)
		}
		h := Hash(string(s))
		if prev, ok := seen[h]; ok && prev != string(s) {
			t.Fatalf("unexpected collision between %q and %q", prev, string(s))
		}
		seen[h] = string(s)
	}
}

func TestFallbackRoundTrip(t *testing.T) {
	h := Hash("totally_unregistered_identifier_xyz")
	fb := Fallback(h)
	if !IsFallback(fb) {
		t.Fatalf("Fallback(%#x) = %q, IsFallback reports false", h, fb)
	}
	if IsFallback("VariableFloat") {
		t.Fatal("IsFallback should reject a resolved-looking identifier")
	}
	if IsFallback("0xZZZZZZZZ") {
		t.Fatal("IsFallback should reject non-hex digits")
	}
}
