package adf

import (
	"encoding/binary"
)

// Kind enumerates the closed set of type-directory record kinds.
type Kind uint32

const (
	KindScalar Kind = iota
	KindStruct
	KindPointer
	KindArray
	KindInlineArray
	KindString
	KindEnum
	KindStringHash
)

// memberRecordSize is the fixed size of one Member record (8 u32 fields).
const memberRecordSize = 32

// typeHeaderSize is the fixed size of a Type record's own 8-u32 header,
// before its inline member records.
const typeHeaderSize = 32

// Member describes one field of a Struct (or similarly composite) type.
type Member struct {
	NameHash    uint32
	TypeHash    uint32
	ByteOffset  uint32 // low 24 bits only; upper 8 bits are undocumented flags, masked away
	ByteSize    uint32
	BitOffset   uint32
	DefaultVal  uint32
	NameOffset  uint32
	Flags       uint32
}

// byteOffsetMask keeps the low 24 bits of a member's stored byte offset;
// the upper 8 bits are flags the source format never documents the meaning
// of and this reader discards rather than guesses.
const byteOffsetMask = 0x00FFFFFF

// Type describes one type-directory entry: its kind, size/alignment,
// resolvable name hash, flags, and (for composite kinds) its members.
type Type struct {
	Kind       Kind
	Size       uint32
	Alignment  uint32
	NameHash   uint32
	Flags      uint32
	Members    []Member
}

// parseTypeDirectory walks hdr.TypeCount variable-size type records
// starting at hdr.TypeOffset, each followed immediately by its own member
// records.
func parseTypeDirectory(buf []byte, order binary.ByteOrder, hdr Header) (map[uint32]Type, error) {
	types := make(map[uint32]Type, hdr.TypeCount)
	pos := int(hdr.TypeOffset)

	for i := uint32(0); i < hdr.TypeCount; i++ {
		if err := checkBounds("typeDirectory", pos, typeHeaderSize, len(buf)); err != nil {
			return nil, err
		}

		kind := Kind(order.Uint32(buf[pos+0 : pos+4]))
		size := order.Uint32(buf[pos+4 : pos+8])
		alignment := order.Uint32(buf[pos+8 : pos+12])
		nameHash := order.Uint32(buf[pos+12 : pos+16])
		// nameOffset at pos+16 (relative to pos) is resolved lazily by
		// callers that need the literal string; the hash is normally enough.
		flags := order.Uint32(buf[pos+20 : pos+24])
		memberCount := order.Uint32(buf[pos+24 : pos+28])
		membersOffset := order.Uint32(buf[pos+28 : pos+32])

		membersStart := pos + int(membersOffset)
		members := make([]Member, 0, memberCount)
		for m := uint32(0); m < memberCount; m++ {
			mpos := membersStart + int(m)*memberRecordSize
			if err := checkBounds("typeDirectory.member", mpos, memberRecordSize, len(buf)); err != nil {
				return nil, err
			}
			members = append(members, Member{
				NameHash:   order.Uint32(buf[mpos+0 : mpos+4]),
				TypeHash:   order.Uint32(buf[mpos+4 : mpos+8]),
				ByteOffset: order.Uint32(buf[mpos+8:mpos+12]) & byteOffsetMask,
				ByteSize:   order.Uint32(buf[mpos+12 : mpos+16]),
				BitOffset:  order.Uint32(buf[mpos+16 : mpos+20]),
				DefaultVal: order.Uint32(buf[mpos+20 : mpos+24]),
				NameOffset: order.Uint32(buf[mpos+24 : mpos+28]),
				Flags:      order.Uint32(buf[mpos+28 : mpos+32]),
			})
		}

		types[nameHash] = Type{
			Kind:      kind,
			Size:      size,
			Alignment: alignment,
			NameHash:  nameHash,
			Flags:     flags,
			Members:   members,
		}

		pos += typeHeaderSize + int(memberCount)*memberRecordSize
	}

	return types, nil
}
