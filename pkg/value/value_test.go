package value

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/avnlabs/gsgraph/pkg/gs"
	"github.com/avnlabs/gsgraph/pkg/hash32"
)

func init() {
	hash32.Init(nil)
}

func dataOf(typeName string, b []byte) gs.Data {
	return gs.Data{TypeHash: hash32.Hash(typeName), ValueBytes: b, ByteCount: uint32(len(b))}
}

func TestDisplayBool(t *testing.T) {
	if got := Display(dataOf("bool", []byte{1}), binary.LittleEndian); got != "true" {
		t.Fatalf("bool(1) = %q, want true", got)
	}
	if got := Display(dataOf("bool", []byte{0}), binary.LittleEndian); got != "false" {
		t.Fatalf("bool(0) = %q, want false", got)
	}
}

func TestDisplayInt(t *testing.T) {
	b := make([]byte, 4)
	n := int32(-7)
	binary.LittleEndian.PutUint32(b, uint32(n))
	if got := Display(dataOf("int", b), binary.LittleEndian); got != "-7" {
		t.Fatalf("int = %q, want -7", got)
	}
}

func TestDisplayUint32ResolvedName(t *testing.T) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, hash32.Hash("output_pins"))
	got := Display(dataOf("uint32", b), binary.LittleEndian)
	want := "(output_pins)"
	if !strings.HasSuffix(got, want) {
		t.Fatalf("uint32 resolved = %q, want suffix %s", got, want)
	}
}

func TestDisplayUint32Unresolved(t *testing.T) {
	b := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	got := Display(dataOf("uint32", b), binary.LittleEndian)
	if got != "4294967295" {
		t.Fatalf("unresolved uint32 = %q, want plain decimal", got)
	}
}

func TestDisplayFloat(t *testing.T) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(0.5))
	if got := Display(dataOf("float", b), binary.LittleEndian); got != "0.5000" {
		t.Fatalf("float = %q, want 0.5000", got)
	}
}

func TestDisplayVector(t *testing.T) {
	b := make([]byte, 16)
	for i, v := range []float32{1, 2, 3, 4} {
		binary.LittleEndian.PutUint32(b[i*4:i*4+4], math.Float32bits(v))
	}
	got := Display(dataOf("vector", b), binary.LittleEndian)
	want := "(1.00, 2.00, 3.00, 4.00)"
	if got != want {
		t.Fatalf("vector = %q, want %q", got, want)
	}
}

func TestDisplayString(t *testing.T) {
	if got := Display(dataOf("string", []byte("hello")), binary.LittleEndian); got != "hello" {
		t.Fatalf("string = %q, want hello", got)
	}
}

func TestDisplayFallbackEmpty(t *testing.T) {
	d := gs.Data{TypeHash: 0xDEAD, ValueBytes: nil}
	if got := Display(d, binary.LittleEndian); got != "(empty)" {
		t.Fatalf("empty fallback = %q, want (empty)", got)
	}
}

func TestDisplayFallbackHexTruncation(t *testing.T) {
	b := make([]byte, 20)
	for i := range b {
		b[i] = byte(i)
	}
	d := gs.Data{TypeHash: 0xDEAD, ValueBytes: b}
	got := Display(d, binary.LittleEndian)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncated fallback = %q, want trailing ellipsis", got)
	}
}

func TestIsVariableNode(t *testing.T) {
	cases := map[string]bool{
		"VariableFloat":         true,
		"ExternalVariableInt":   true,
		"GlobalVariableBool":    true,
		"MathAdd":               false,
	}
	for class, want := range cases {
		if got := IsVariableNode(class); got != want {
			t.Fatalf("IsVariableNode(%q) = %v, want %v", class, got, want)
		}
	}
}

func TestValueTypeForClass(t *testing.T) {
	cases := map[string]ValueType{
		"VariableFloat":           ValueFloat,
		"ExternalVariableFloat":   ValueFloat,
		"VariableInt32":           ValueInt,
		"VariableBool":            ValueBool,
		"VariableUint32":          ValueUint32,
		"VariableObjectRef":       ValueUint64,
		"VariableStringHash":      ValueStringHash,
		"GlobalVariableString":    ValueStringHash,
		"VariableVector3":         ValueVector,
		"VariableEnum":            ValueEnum,
		"VariableEventSend":       ValueEvent,
		"SomethingElseEntirely":   ValueUint32,
	}
	for class, want := range cases {
		if got := ValueTypeForClass(class); got != want {
			t.Fatalf("ValueTypeForClass(%q) = %v, want %v", class, got, want)
		}
	}
}

// TestResolveVariableHealthMult is boundary scenario 5: a
// VariableFloat node named via a Name-hash resolving to "HealthMult", with
// its Value offset pointing at IEEE-754 bytes for 0.5.
func TestResolveVariableHealthMult(t *testing.T) {
	hash32.Register("HealthMult")
	order := binary.LittleEndian

	blob := make([]byte, 32)
	binary.LittleEndian.PutUint32(blob[0:4], hash32.Hash("HealthMult"))
	binary.LittleEndian.PutUint32(blob[16:20], math.Float32bits(0.5))

	nameOffset := make([]byte, 4)
	binary.LittleEndian.PutUint32(nameOffset, 0)
	valueOffset := make([]byte, 4)
	binary.LittleEndian.PutUint32(valueOffset, 16)

	root := &gs.DataSet{
		Data: []gs.Data{
			{NameHash: hash32.Hash("Name"), ValueBytes: nameOffset},
			{NameHash: hash32.Hash("Value"), ValueBytes: valueOffset, IsReference: true},
		},
	}
	n := &gs.Node{Index: 0, Dataset: root}

	fields := ResolveVariable(n, "VariableFloat", blob, order)
	if fields.Name != "HealthMult" {
		t.Fatalf("Name = %q, want HealthMult", fields.Name)
	}
	if fields.Value != "0.5000" {
		t.Fatalf("Value = %q, want 0.5000", fields.Value)
	}
}
