package gs

import "encoding/binary"

// Record strides and field offsets, all in bytes. Every offset below is
// measured from the start of the record it names, except where a record
// stores a *relative offset value* — those are measured against the
// payload's own base address (offset zero of the slice passed to
// [Decode]).
const (
	graphNodesOffsetField = 0x00
	graphNodeCountField   = 0x08
	graphGlobalDataField  = 0x10
	nodeStride            = 0x40

	nodeClassHashField    = 0x00
	nodeFunctionHashField = 0x08
	nodeDatasetField      = 0x10

	datasetNameHashField    = 0x00
	datasetDataOffsetField  = 0x08
	datasetDataCountField   = 0x10
	datasetChildOffsetField = 0x18
	datasetChildCountField  = 0x20
	datasetStride           = 0x30

	dataNameHashField  = 0x00
	dataTypeHashField  = 0x04
	dataValueOffset    = 0x08
	dataByteCountField = 0x10
	dataRefFlagField   = 0x18
	dataStride         = 0x20
)

// Decode walks payload as a Graph. It never returns an error: a payload too
// short to hold even the Graph record's own fixed header decodes as an
// empty graph (zero nodes), matching boundary scenario 1 and the
// "layout never fails" posture carried through every stage downstream of
// container parsing.
func Decode(payload []byte, order binary.ByteOrder) *Graph {
	globalData := decodeDataAt(payload, order, graphGlobalDataField)
	g := &Graph{}
	if globalData != nil {
		g.GlobalData = *globalData
	}

	nodesOffset, ok1 := readU32(payload, order, graphNodesOffsetField)
	nodeCount, ok2 := readU32(payload, order, graphNodeCountField)
	if !ok1 || !ok2 || nodesOffset == 0 || nodeCount == 0 {
		return g
	}

	g.Nodes = make([]*Node, 0, nodeCount)
	for i := uint32(0); i < nodeCount; i++ {
		addr := int(nodesOffset) + int(i)*nodeStride
		n := decodeNodeAt(payload, order, addr, int(i))
		if n == nil {
			break
		}
		g.Nodes = append(g.Nodes, n)
	}
	return g
}

func decodeNodeAt(payload []byte, order binary.ByteOrder, addr, index int) *Node {
	if !inBounds(payload, addr, nodeStride) {
		return nil
	}
	classHash, _ := readU32(payload, order, addr+nodeClassHashField)
	functionHash, _ := readU32(payload, order, addr+nodeFunctionHashField)
	ds := decodeDataSetAt(payload, order, addr+nodeDatasetField)
	return &Node{Index: index, ClassHash: classHash, FunctionHash: functionHash, Dataset: ds}
}

func decodeDataSetAt(payload []byte, order binary.ByteOrder, addr int) *DataSet {
	if !inBounds(payload, addr, datasetStride) {
		return nil
	}

	nameHash, _ := readU32(payload, order, addr+datasetNameHashField)
	dataOffset, _ := readU32(payload, order, addr+datasetDataOffsetField)
	dataCount, _ := readU32(payload, order, addr+datasetDataCountField)
	childOffset, _ := readU32(payload, order, addr+datasetChildOffsetField)
	childCount, _ := readU32(payload, order, addr+datasetChildCountField)

	ds := &DataSet{NameHash: nameHash}

	if dataOffset != 0 && dataCount != 0 {
		ds.Data = make([]Data, 0, dataCount)
		for i := uint32(0); i < dataCount; i++ {
			d := decodeDataAt(payload, order, int(dataOffset)+int(i)*dataStride)
			if d == nil {
				break
			}
			ds.Data = append(ds.Data, *d)
		}
	}

	if childOffset != 0 && childCount != 0 {
		ds.Children = make([]*DataSet, 0, childCount)
		for i := uint32(0); i < childCount; i++ {
			child := decodeDataSetAt(payload, order, int(childOffset)+int(i)*datasetStride)
			if child == nil {
				break
			}
			ds.Children = append(ds.Children, child)
		}
	}

	return ds
}

func decodeDataAt(payload []byte, order binary.ByteOrder, addr int) *Data {
	if !inBounds(payload, addr, dataStride) {
		return nil
	}

	nameHash, _ := readU32(payload, order, addr+dataNameHashField)
	typeHash, _ := readU32(payload, order, addr+dataTypeHashField)
	valueOffset, _ := readU32(payload, order, addr+dataValueOffset)
	declaredCount, _ := readU32(payload, order, addr+dataByteCountField)
	isRef := addr+dataRefFlagField < len(payload) && payload[addr+dataRefFlagField] != 0

	var value []byte
	if valueOffset != 0 && declaredCount != 0 {
		start := int(valueOffset)
		end := start + int(declaredCount)
		if start >= 0 && start <= len(payload) {
			if end > len(payload) {
				end = len(payload)
			}
			if end > start {
				value = append([]byte(nil), payload[start:end]...)
			}
		}
	}

	return &Data{
		NameHash:    nameHash,
		TypeHash:    typeHash,
		ValueBytes:  value,
		ByteCount:   uint32(len(value)),
		IsReference: isRef,
	}
}

func inBounds(buf []byte, offset, width int) bool {
	return offset >= 0 && width >= 0 && offset+width <= len(buf)
}

func readU32(buf []byte, order binary.ByteOrder, offset int) (uint32, bool) {
	if !inBounds(buf, offset, 4) {
		return 0, false
	}
	return order.Uint32(buf[offset : offset+4]), true
}
