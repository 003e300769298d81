package gsdoc

import (
	"encoding/binary"

	"github.com/avnlabs/gsgraph/pkg/gs"
	"github.com/avnlabs/gsgraph/pkg/hash32"
	"github.com/avnlabs/gsgraph/pkg/layout"
	"github.com/avnlabs/gsgraph/pkg/value"
)

// RoleHashes carries the three well-known pin-category hashes a graph is
// walked against. Callers normally build this once via [DefaultRoles] and
// reuse it across every decode.
type RoleHashes struct {
	InputPins    uint32
	OutputPins   uint32
	VariablePins uint32
}

// DefaultRoles hashes the three canonical pin-category names.
func DefaultRoles() RoleHashes {
	return RoleHashes{
		InputPins:    hash32.Hash("input_pins"),
		OutputPins:   hash32.Hash("output_pins"),
		VariablePins: hash32.Hash("variable_pins"),
	}
}

// Build assembles the caller-facing Document from a decoded graph: it
// resolves every hash to a display name, renders every Data record's
// canonical display string (substituting the dereferenced Name/Value pair
// for variable-family nodes), computes node positions via pkg/layout, and
// emits the flow and variable connections as Edges.
func Build(g *gs.Graph, order binary.ByteOrder, roles RoleHashes) Document {
	conns := gs.Connections(g, order, roles.OutputPins, roles.VariablePins)
	positions := layout.Compute(len(g.Nodes), conns)
	blob := g.GlobalBlob()

	doc := Document{
		Nodes: make([]Node, 0, len(g.Nodes)),
		Edges: make([]Edge, 0, len(conns)),
	}

	for _, n := range g.Nodes {
		doc.Nodes = append(doc.Nodes, buildNode(n, order, roles, blob, positions[n.Index]))
	}
	for _, c := range conns {
		doc.Edges = append(doc.Edges, Edge{
			SourceIndex:   c.SourceIndex,
			SourcePinHash: c.SourcePinHash,
			TargetIndex:   c.TargetIndex,
			TargetPinHash: c.TargetPinHash,
			Kind:          c.Kind.String(),
		})
	}
	return doc
}

func buildNode(n *gs.Node, order binary.ByteOrder, roles RoleHashes, blob []byte, pos layout.Point) Node {
	className := hash32.Resolve(n.ClassHash)
	isVariable := value.IsVariableNode(className)

	var fields value.VariableFields
	if isVariable {
		fields = value.ResolveVariable(n, className, blob, order)
	}

	return Node{
		Index:        n.Index,
		ClassHash:    n.ClassHash,
		ClassName:    className,
		Parameters:   buildData(n.Parameters(), order, isVariable, fields),
		InputPins:    buildPins(n, roles.InputPins, order),
		OutputPins:   buildPins(n, roles.OutputPins, order),
		VariablePins: buildPins(n, roles.VariablePins, order),
		Position:     Position{X: pos.X, Y: pos.Y},
	}
}

func buildPins(n *gs.Node, roleHash uint32, order binary.ByteOrder) []Pin {
	children := n.Pins(roleHash)
	if children == nil {
		return nil
	}
	pins := make([]Pin, 0, len(children))
	for _, c := range children {
		pins = append(pins, Pin{
			Hash: c.NameHash,
			Name: hash32.Resolve(c.NameHash),
			Data: buildData(c.Data, order, false, value.VariableFields{}),
		})
	}
	return pins
}

var (
	nameFieldHash  = hash32.Hash("Name")
	valueFieldHash = hash32.Hash("Value")
)

// buildData renders each raw Data record's display string. For a variable
// node's root-level Name/Value fields, the dereferenced fields computed by
// [value.ResolveVariable] replace the normal (and, for these indirect
// fields, meaningless) direct-bytes rendering.
func buildData(records []gs.Data, order binary.ByteOrder, isVariable bool, fields value.VariableFields) []Data {
	if records == nil {
		return nil
	}
	out := make([]Data, 0, len(records))
	for _, d := range records {
		display := value.Display(d, order)
		if isVariable {
			switch d.NameHash {
			case nameFieldHash:
				display = fields.Name
			case valueFieldHash:
				if d.IsReference {
					display = fields.Value
				}
			}
		}
		out = append(out, Data{
			Name:      hash32.Resolve(d.NameHash),
			Type:      hash32.Resolve(d.TypeHash),
			Bytes:     d.ValueBytes,
			Reference: d.IsReference,
			Display:   display,
		})
	}
	return out
}
