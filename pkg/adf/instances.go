package adf

import (
	"encoding/binary"
	"fmt"
)

// Instance directory entry strides by version: version 4 packs
// entries into 24 bytes and resolves the instance name through the string
// data table by index; versions 2 and 3 use 48-byte entries and have no
// string table to resolve a name from, so the reader synthesizes one.
const (
	instanceStrideV4  = 24
	instanceStridePre = 48
)

// Instance is one entry of the instance directory.
type Instance struct {
	Name          string
	NameHash      uint32
	TypeHash      uint32
	PayloadOffset uint32
	PayloadSize   uint32
}

func parseInstanceDirectory(buf []byte, order binary.ByteOrder, hdr Header) ([]Instance, error) {
	stride := instanceStridePre
	if hdr.Version >= Version4 {
		stride = instanceStrideV4
	}

	insts := make([]Instance, 0, hdr.InstanceCount)
	pos := int(hdr.InstanceOffset)

	for i := uint32(0); i < hdr.InstanceCount; i++ {
		if err := checkBounds("instanceDirectory", pos, stride, len(buf)); err != nil {
			return nil, err
		}

		nameHash := order.Uint32(buf[pos+0 : pos+4])
		typeHash := order.Uint32(buf[pos+4 : pos+8])
		payloadOffset := order.Uint32(buf[pos+8 : pos+12])
		payloadSize := order.Uint32(buf[pos+12 : pos+16])

		var name string
		if hdr.Version >= Version4 {
			strIdx := order.Uint32(buf[pos+16 : pos+20])
			name = stringDataAt(buf, hdr, order, strIdx)
		}
		if name == "" {
			name = fmt.Sprintf("instance_%d", i)
		}

		insts = append(insts, Instance{
			Name:          name,
			NameHash:      nameHash,
			TypeHash:      typeHash,
			PayloadOffset: payloadOffset,
			PayloadSize:   payloadSize,
		})

		pos += stride
	}

	return insts, nil
}
