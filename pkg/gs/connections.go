package gs

import "encoding/binary"

// Kind distinguishes a flow connection (control/data flow between
// functional nodes, discovered under output_pins) from a variable
// connection (a variable-producing node feeding a functional node's slot,
// discovered under variable_pins with source and target reversed).
type Kind int

const (
	Flow Kind = iota
	Variable
)

func (k Kind) String() string {
	if k == Variable {
		return "variable"
	}
	return "flow"
}

// Connection is a derived edge; it has no direct representation in the
// file (GLOSSARY "Connection").
type Connection struct {
	SourceIndex  int
	SourcePinHash uint32
	TargetIndex  int
	TargetPinHash uint32
	Kind         Kind
}

// Connections extracts every flow and variable connection from g.
// A descriptor that fails to resolve — too few value bytes,
// an out-of-blob offset, or an out-of-range node index — is silently
// skipped; the rest of the graph is still emitted.
func Connections(g *Graph, order binary.ByteOrder, outputPinsHash, variablePinsHash uint32) []Connection {
	var out []Connection
	blob := g.GlobalBlob()
	nodeCount := len(g.Nodes)

	for _, n := range g.Nodes {
		if role, ok := n.Dataset.Child(outputPinsHash); ok {
			for _, pin := range role.Children {
				for _, d := range pin.Data {
					target, ok := derefNodeIndex(blob, order, d.ValueBytes)
					if !ok || target < 0 || target >= nodeCount {
						continue
					}
					out = append(out, Connection{
						SourceIndex:   n.Index,
						SourcePinHash: pin.NameHash,
						TargetIndex:   target,
						TargetPinHash: d.NameHash,
						Kind:          Flow,
					})
				}
			}
		}

		if role, ok := n.Dataset.Child(variablePinsHash); ok {
			for _, pin := range role.Children {
				for _, d := range pin.Data {
					source, ok := derefNodeIndex(blob, order, d.ValueBytes)
					if !ok || source < 0 || source >= nodeCount {
						continue
					}
					out = append(out, Connection{
						SourceIndex:   source,
						SourcePinHash: pin.NameHash,
						TargetIndex:   n.Index,
						TargetPinHash: pin.NameHash,
						Kind:          Variable,
					})
				}
			}
		}
	}

	return out
}

// derefNodeIndex interprets value as a 4-byte little/big-endian (per order)
// offset into blob, then reads a 4-byte node index at that offset. Returns
// false if value is short, the offset is negative, or the read would run
// past blob.
func derefNodeIndex(blob []byte, order binary.ByteOrder, value []byte) (int, bool) {
	if len(value) < 4 {
		return 0, false
	}
	offset := int(order.Uint32(value[0:4]))
	if !inBounds(blob, offset, 4) {
		return 0, false
	}
	return int(order.Uint32(blob[offset : offset+4])), true
}
