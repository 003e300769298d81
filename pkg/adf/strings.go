package adf

import "encoding/binary"

// stringDataAt resolves index i into the version-4 string data table: a
// packed sequence of null-terminated strings located at
// hdr.StringDataOffset, where entry i begins immediately after the i'th
// NUL byte counted from the table's base. Returns "" if the table is
// absent, the index is out of range, or the buffer is too short to find i
// NULs (a recoverable condition — the caller falls back to a
// synthesized name).
func stringDataAt(buf []byte, hdr Header, order binary.ByteOrder, i uint32) string {
	if hdr.Version < Version4 || i >= hdr.StringDataCount {
		return ""
	}

	pos := int(hdr.StringDataOffset)
	if pos < 0 || pos > len(buf) {
		return ""
	}

	nulsToSkip := int(i)
	for nulsToSkip > 0 {
		end := indexNUL(buf, pos)
		if end < 0 {
			return ""
		}
		pos = end + 1
		nulsToSkip--
	}

	end := indexNUL(buf, pos)
	if end < 0 {
		return ""
	}
	return string(buf[pos:end])
}

func indexNUL(buf []byte, from int) int {
	for i := from; i < len(buf); i++ {
		if buf[i] == 0 {
			return i
		}
	}
	return -1
}

// StringHashEntry is one entry of the version-3+ string-hash table: a hash
// paired with the byte offset of its literal string, used by tooling that
// wants to recover names the hash registry doesn't already know.
type StringHashEntry struct {
	Hash   uint32
	Offset uint32
}

// StringHashTable reads the version-3+ string-hash table, if present. Each
// entry is an (hash, offset) pair of two u32 fields; Offset is relative to
// the start of the buffer.
func (c *Container) StringHashTable() []StringHashEntry {
	hdr := c.Header
	if hdr.Version < Version3 || hdr.StringHashCount == 0 {
		return nil
	}

	const entryStride = 8
	entries := make([]StringHashEntry, 0, hdr.StringHashCount)
	pos := int(hdr.StringHashOffset)
	for i := uint32(0); i < hdr.StringHashCount; i++ {
		if checkBounds("stringHashTable", pos, entryStride, len(c.Buf)) != nil {
			break
		}
		entries = append(entries, StringHashEntry{
			Hash:   c.Order.Uint32(c.Buf[pos : pos+4]),
			Offset: c.Order.Uint32(c.Buf[pos+4 : pos+8]),
		})
		pos += entryStride
	}
	return entries
}
