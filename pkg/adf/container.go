// Package adf decodes the Avalanche Data Format container: a self-
// describing binary envelope with a header, a type directory, an instance
// directory, and (from version 3 onward) string tables. Parsing an ADF
// buffer never allocates more than the directories and header fields
// themselves — instance payloads are exposed as slice windows over the
// caller's buffer, not copies, since the container reader's job ends where
// the GraphScript decoder (package gs) begins walking a payload.
package adf

import (
	"encoding/binary"

	"github.com/avnlabs/gsgraph/pkg/gserrors"
)

// Magic values for the first four bytes of the buffer, always read as a
// little-endian uint32 regardless of the file's own endianness — the magic
// value itself is what tells the reader which endianness to use for
// everything that follows.
const (
	magicLittleEndian uint32 = 0x41444620
	magicBigEndian    uint32 = 0x20464441
)

// Supported header versions.
const (
	Version2 = 2
	Version3 = 3
	Version4 = 4
)

// descriptionOffset is the fixed byte offset of the version-4 null-
// terminated description string.
const descriptionOffset = 64

// maxDescriptionLen bounds the scan for the description string's NUL
// terminator so a corrupt version-4 file can't force an unbounded scan.
const maxDescriptionLen = 256

// Header holds the fixed-offset fields common to all three supported ADF
// versions, with later-version fields left at their zero value when absent.
type Header struct {
	Version int

	InstanceCount  uint32
	InstanceOffset uint32
	TypeCount      uint32
	TypeOffset     uint32

	// Present from version 3.
	StringHashCount  uint32
	StringHashOffset uint32

	// Present from version 4.
	StringDataCount  uint32
	StringDataOffset uint32
	DeclaredSize     uint32
	Description      string
}

// Container is the parsed ADF envelope: the buffer, the chosen byte order,
// the header, the type directory (by hash), and the instance directory.
// Payload bytes for any instance are obtained via [Container.Payload].
type Container struct {
	Buf    []byte
	Order  binary.ByteOrder
	Header Header
	Types  map[uint32]Type
	Insts  []Instance
}

// Parse decodes the ADF header, type directory, instance directory, and (if
// present) string tables from buf. It returns a *gserrors.Error wrapping one
// of CodeBadMagic, CodeUnsupportedVersion, or CodeTruncated on failure;
// every other inconsistency inside a payload is the GraphScript decoder's
// concern, not this reader's.
func Parse(buf []byte) (*Container, error) {
	if len(buf) < 4 {
		return nil, gserrors.Truncated("magic", 0, 4, len(buf))
	}

	magic := binary.LittleEndian.Uint32(buf[0:4])
	var order binary.ByteOrder
	switch magic {
	case magicLittleEndian:
		order = binary.LittleEndian
	case magicBigEndian:
		order = binary.BigEndian
	default:
		return nil, gserrors.BadMagic(magic)
	}

	hdr, err := parseHeader(buf, order)
	if err != nil {
		return nil, err
	}

	types, err := parseTypeDirectory(buf, order, hdr)
	if err != nil {
		return nil, err
	}

	insts, err := parseInstanceDirectory(buf, order, hdr)
	if err != nil {
		return nil, err
	}

	return &Container{Buf: buf, Order: order, Header: hdr, Types: types, Insts: insts}, nil
}

func parseHeader(buf []byte, order binary.ByteOrder) (Header, error) {
	if err := checkBounds("header", 0, 24, len(buf)); err != nil {
		return Header{}, err
	}

	version := order.Uint32(buf[4:8])
	if version != Version2 && version != Version3 && version != Version4 {
		return Header{}, gserrors.UnsupportedVersion(version)
	}

	hdr := Header{
		Version:        int(version),
		InstanceCount:  order.Uint32(buf[8:12]),
		InstanceOffset: order.Uint32(buf[12:16]),
		TypeCount:      order.Uint32(buf[16:20]),
		TypeOffset:     order.Uint32(buf[20:24]),
	}

	if version >= Version3 {
		if err := checkBounds("header.stringHash", 24, 8, len(buf)); err != nil {
			return Header{}, err
		}
		hdr.StringHashCount = order.Uint32(buf[24:28])
		hdr.StringHashOffset = order.Uint32(buf[28:32])
	}

	if version >= Version4 {
		if err := checkBounds("header.stringData", 32, 12, len(buf)); err != nil {
			return Header{}, err
		}
		hdr.StringDataCount = order.Uint32(buf[32:36])
		hdr.StringDataOffset = order.Uint32(buf[36:40])
		hdr.DeclaredSize = order.Uint32(buf[40:44])

		if err := checkBounds("header.description", descriptionOffset, 1, len(buf)); err != nil {
			return Header{}, err
		}
		hdr.Description = readCString(buf, descriptionOffset, maxDescriptionLen)
	}

	return hdr, nil
}

// checkBounds returns a Truncated error unless [offset, offset+width) lies
// within a buffer of length bufLen. Every directory and table reader in
// this package funnels its range checks through this one helper so the
// error message format stays consistent.
func checkBounds(field string, offset, width, bufLen int) error {
	if offset < 0 || width < 0 || offset+width > bufLen {
		return gserrors.Truncated(field, offset, width, bufLen)
	}
	return nil
}

func readCString(buf []byte, offset, maxLen int) string {
	end := offset
	limit := offset + maxLen
	if limit > len(buf) {
		limit = len(buf)
	}
	for end < limit && buf[end] != 0 {
		end++
	}
	return string(buf[offset:end])
}

// Payload returns the byte slice window for the named instance's payload,
// clipped to the buffer. It is the window the GraphScript decoder walks as
// a Graph tree; callers must not assume exclusive ownership of the returned
// slice, since it aliases c.Buf.
func (c *Container) Payload(inst Instance) []byte {
	start := int(inst.PayloadOffset)
	end := start + int(inst.PayloadSize)
	if start < 0 || start > len(c.Buf) {
		return nil
	}
	if end > len(c.Buf) {
		end = len(c.Buf)
	}
	if end < start {
		return nil
	}
	return c.Buf[start:end]
}

// FirstInstance returns the first instance in the directory and true, or
// a zero Instance and false if the directory is empty (CodeNoInstance).
func (c *Container) FirstInstance() (Instance, bool) {
	if len(c.Insts) == 0 {
		return Instance{}, false
	}
	return c.Insts[0], true
}
