package value

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/avnlabs/gsgraph/pkg/gs"
	"github.com/avnlabs/gsgraph/pkg/hash32"
)

// ValueType is the value-type family a variable node's class name implies,
// per the class-suffix table.
type ValueType int

const (
	ValueUint32 ValueType = iota
	ValueFloat
	ValueInt
	ValueBool
	ValueUint64
	ValueStringHash
	ValueVector
	ValueEnum
	ValueEvent
)

// ValueTypeForClass derives a variable node's value type from its resolved
// class name, stripping the External/Global prefix before matching the
// suffix table. Unrecognized suffixes default to uint32.
func ValueTypeForClass(className string) ValueType {
	suffix := strings.TrimPrefix(className, "External")
	suffix = strings.TrimPrefix(suffix, "Global")

	switch {
	case strings.HasPrefix(suffix, "VariableFloat"):
		return ValueFloat
	case strings.HasPrefix(suffix, "VariableInt"):
		return ValueInt
	case strings.HasPrefix(suffix, "VariableBool"):
		return ValueBool
	case strings.HasPrefix(suffix, "VariableUint32"):
		return ValueUint32
	case strings.HasPrefix(suffix, "VariableUint64"),
		strings.HasPrefix(suffix, "VariableObject"),
		strings.HasPrefix(suffix, "VariableFile"),
		strings.HasPrefix(suffix, "VariableGraphFile"),
		strings.HasPrefix(suffix, "VariableGlobalRef"):
		return ValueUint64
	case strings.HasPrefix(suffix, "VariableString"),
		strings.HasPrefix(suffix, "VariableHash"),
		suffix == "VariableStringHash":
		return ValueStringHash
	case strings.HasPrefix(suffix, "VariableVector"),
		strings.HasPrefix(suffix, "VariableTransform"):
		return ValueVector
	case strings.HasPrefix(suffix, "VariableEnum"):
		return ValueEnum
	case suffix == "VariableEventSend", suffix == "VariableEventReceive":
		return ValueEvent
	default:
		return ValueUint32
	}
}

// VariableFields is the pair of display strings a variable node surfaces in
// place of its raw Data records: the variable's identity name (from its
// "Name" field) and its dereferenced value (from its "Value" field, when
// is_reference is set).
type VariableFields struct {
	Name  string
	Value string
}

// ResolveVariable scans n's root-DataSet Data records for the "Name" and
// "Value" fields and dereferences each through blob. A field that isn't
// present, a Name that doesn't dereference, or a Value that is not a
// reference is left as the zero value (an empty string); a referenced Value
// that doesn't dereference cleanly falls back as [derefTypedValue]
// describes. Neither case is an error.
func ResolveVariable(n *gs.Node, className string, blob []byte, order binary.ByteOrder) VariableFields {
	var out VariableFields
	nameHash := hash32.Hash("Name")
	valueHash := hash32.Hash("Value")
	valueType := ValueTypeForClass(className)

	for _, d := range n.Parameters() {
		switch d.NameHash {
		case nameHash:
			out.Name = derefIdentity(d.ValueBytes, blob, order)
		case valueHash:
			if d.IsReference {
				out.Value = derefTypedValue(d.ValueBytes, blob, order, valueType)
			}
		}
	}
	return out
}

// derefIdentity reads a 4-byte offset from raw, then a 4-byte identity hash
// at that offset in blob, and resolves it through the hash registry.
func derefIdentity(raw, blob []byte, order binary.ByteOrder) string {
	offset, ok := readOffset(raw, order)
	if !ok || offset+4 > len(blob) {
		return ""
	}
	return hash32.Resolve(order.Uint32(blob[offset : offset+4]))
}

// derefTypedValue reads a 4-byte offset from raw, then decodes the bytes at
// that offset in blob according to vt. If the blob is too short at offset
// for vt's width, it falls back to the raw 4-byte hex form, or "??" if even
// that much isn't available.
func derefTypedValue(raw, blob []byte, order binary.ByteOrder, vt ValueType) string {
	offset, ok := readOffset(raw, order)
	if !ok {
		return "??"
	}

	width := widthFor(vt)
	if offset+width > len(blob) {
		if offset+4 <= len(blob) {
			return fmt.Sprintf("0x%08X", order.Uint32(blob[offset:offset+4]))
		}
		return "??"
	}

	switch vt {
	case ValueFloat:
		return displayFloat(order.Uint32(blob[offset : offset+4]))
	case ValueInt:
		return fmt.Sprintf("%d", int32(order.Uint32(blob[offset:offset+4])))
	case ValueBool:
		if blob[offset] != 0 {
			return "true"
		}
		return "false"
	case ValueUint64:
		return fmt.Sprintf("%d", order.Uint64(blob[offset:offset+8]))
	case ValueStringHash:
		return hash32.Resolve(order.Uint32(blob[offset : offset+4]))
	case ValueVector:
		return displayVector(blob[offset:offset+16], order)
	case ValueEnum:
		return fmt.Sprintf("%d", int32(order.Uint32(blob[offset:offset+4])))
	case ValueEvent:
		return "(event)"
	default: // ValueUint32
		return displayUint32(order.Uint32(blob[offset : offset+4]))
	}
}

func widthFor(vt ValueType) int {
	switch vt {
	case ValueUint64:
		return 8
	case ValueVector:
		return 16
	case ValueBool:
		return 1
	case ValueEvent:
		return 0
	default:
		return 4
	}
}

func readOffset(raw []byte, order binary.ByteOrder) (int, bool) {
	if len(raw) < 4 {
		return 0, false
	}
	return int(order.Uint32(raw[0:4])), true
}
