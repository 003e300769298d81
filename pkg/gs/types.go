// Package gs decodes a GraphScript payload — the tree of offset-relative
// records (Graph → Node → DataSet → Data) that an ADF instance's payload
// holds — into an owned, acyclic Go value tree. Every relative offset
// encountered while walking the tree is resolved against the payload's own
// base address and range-checked before use; an offset that would read
// past the payload is treated as absent rather than followed.
package gs

// Data is a leaf value record. ValueBytes is always a copy, decoupled from
// the lifetime of the input buffer. ByteCount is set to len(ValueBytes)
// after any payload-bounds clipping, so the invariant
// ByteCount == len(ValueBytes) always holds by construction.
type Data struct {
	NameHash    uint32
	TypeHash    uint32
	ValueBytes  []byte
	ByteCount   uint32
	IsReference bool
}

// DataSet is a named container of Data records and child DataSets. Pin
// categories (input_pins, output_pins, variable_pins) and individual pins
// are DataSets identified by role through NameHash, not a distinct type.
type DataSet struct {
	NameHash uint32
	Data     []Data
	Children []*DataSet
}

// Child returns the first direct child DataSet whose NameHash equals h, and
// true, or nil and false if none matches. Used to locate well-known role
// DataSets (input_pins, output_pins, variable_pins) under a node's root
// DataSet.
func (ds *DataSet) Child(h uint32) (*DataSet, bool) {
	if ds == nil {
		return nil, false
	}
	for _, c := range ds.Children {
		if c.NameHash == h {
			return c, true
		}
	}
	return nil, false
}

// Node is a graph vertex: a class, an opaque function reference, and the
// root DataSet holding all of its per-node data (parameters and pins).
// Index is assigned by the decoder in file order, starting at zero.
type Node struct {
	Index        int
	ClassHash    uint32
	FunctionHash uint32
	Dataset      *DataSet
}

// Parameters returns the node's own Data records — everything in the root
// DataSet that is not grouped under a pin-category child.
func (n *Node) Parameters() []Data {
	if n.Dataset == nil {
		return nil
	}
	return n.Dataset.Data
}

// Pins returns the child pin DataSets under the role DataSet named by
// roleHash (e.g. the hash of "output_pins"), or nil if the node has no
// such role DataSet.
func (n *Node) Pins(roleHash uint32) []*DataSet {
	if n.Dataset == nil {
		return nil
	}
	role, ok := n.Dataset.Child(roleHash)
	if !ok {
		return nil
	}
	return role.Children
}

// Graph is the decoded top-level container: every node in file order, plus
// the single global Data record whose ValueBytes is the indirection pool
// (the "global data blob") referenced by variable-node fields and
// connection descriptors.
type Graph struct {
	Nodes      []*Node
	GlobalData Data
}

// GlobalBlob returns the global data blob bytes that variable dereferences
// and connection offsets index into.
func (g *Graph) GlobalBlob() []byte {
	return g.GlobalData.ValueBytes
}
