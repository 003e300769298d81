// Package value turns a decoded GraphScript Data record into the canonical
// display string a node-editor viewport would show, and resolves the extra
// indirection that variable nodes store through the graph's global data
// blob.
package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/avnlabs/gsgraph/pkg/gs"
	"github.com/avnlabs/gsgraph/pkg/hash32"
)

// Display renders d's value_bytes as the canonical string for its resolved
// type name, per the decoding table. order is the file's
// endianness, as chosen by the container reader. Any type whose name the
// registry can't resolve, or whose bytes are too short for its type, falls
// through to the generic hex-or-empty rendering (tier 3: cosmetic
// fallback only, never an error).
func Display(d gs.Data, order binary.ByteOrder) string {
	typeName := hash32.Resolve(d.TypeHash)
	switch typeName {
	case "bool":
		if len(d.ValueBytes) >= 1 {
			if d.ValueBytes[0] != 0 {
				return "true"
			}
			return "false"
		}
	case "int", "enum":
		if len(d.ValueBytes) >= 4 {
			return fmt.Sprintf("%d", int32(order.Uint32(d.ValueBytes[0:4])))
		}
	case "uint32":
		if len(d.ValueBytes) >= 4 {
			return displayUint32(order.Uint32(d.ValueBytes[0:4]))
		}
	case "int64":
		if len(d.ValueBytes) >= 8 {
			return fmt.Sprintf("%d", int64(order.Uint64(d.ValueBytes[0:8])))
		}
	case "uint64":
		if len(d.ValueBytes) >= 8 {
			return fmt.Sprintf("%d", order.Uint64(d.ValueBytes[0:8]))
		}
	case "float":
		if len(d.ValueBytes) >= 4 {
			return displayFloat(order.Uint32(d.ValueBytes[0:4]))
		}
	case "vector":
		if len(d.ValueBytes) >= 16 {
			return displayVector(d.ValueBytes[0:16], order)
		}
	case "string", "string_ptr":
		return string(d.ValueBytes)
	}
	return fallbackHex(d.ValueBytes)
}

func displayUint32(v uint32) string {
	name := hash32.Resolve(v)
	if hash32.IsFallback(name) {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d (%s)", v, name)
}

func displayFloat(bits uint32) string {
	return fmt.Sprintf("%.4f", math.Float32frombits(bits))
}

func displayVector(b []byte, order binary.ByteOrder) string {
	var parts [4]string
	for i := 0; i < 4; i++ {
		bits := order.Uint32(b[i*4 : i*4+4])
		parts[i] = fmt.Sprintf("%.2f", math.Float32frombits(bits))
	}
	return "(" + strings.Join(parts[:], ", ") + ")"
}

const maxFallbackBytes = 16

// fallbackHex renders up to 16 bytes as space-separated hex pairs, with a
// trailing ellipsis if there were more, or "(empty)" for a zero-length
// value.
func fallbackHex(b []byte) string {
	if len(b) == 0 {
		return "(empty)"
	}
	n := len(b)
	truncated := false
	if n > maxFallbackBytes {
		n = maxFallbackBytes
		truncated = true
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%02X", b[i])
	}
	out := strings.Join(parts, " ")
	if truncated {
		out += " …"
	}
	return out
}

// variableClassPattern matches the well-known variable class family: a node
// whose resolved class name starts with Variable, ExternalVariable, or
// GlobalVariable encodes its payload indirectly through the graph's global
// data blob rather than directly in its own Data records.
var variableClassPattern = regexp.MustCompile(`^(Variable|ExternalVariable|GlobalVariable)`)

// IsVariableNode reports whether className names a variable-family node.
func IsVariableNode(className string) bool {
	return variableClassPattern.MatchString(className)
}
