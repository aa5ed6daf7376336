// Package bytebuf implements a sequential reader/writer over a caller-supplied
// byte slice with explicit little- and big-endian scalar accessors.
//
// A Buffer never allocates, copies, or grows: it is a borrowed view intended
// for fixed storage on constrained targets (LoRa/BLE/UART packet staging and
// similar). Every operation is O(1), bounds-checked before any mutation, and
// signals failure with a boolean instead of an error value, so it is safe to
// call from hot or interrupt-adjacent paths without policy decisions baked in.
package bytebuf

import "encoding/binary"

// Buffer is a non-owning view over a byte slice with independent, forward-only
// read and write cursors. Bytes in [0, WritePosition()) are defined content;
// bytes past the write cursor are unwritten.
//
// The caller must keep the backing slice alive for the Buffer's lifetime.
// Not safe for concurrent use; one logical owner per instance.
type Buffer struct {
	data []byte
	head int // next index to write
	tail int // next index to read, tail <= head always
}

// New returns a Buffer over buf. Capacity is len(buf); the slice is borrowed,
// never copied.
func New(buf []byte) *Buffer {
	return &Buffer{data: buf}
}

// Capacity returns the total size of the backing slice in bytes.
func (b *Buffer) Capacity() int { return len(b.data) }

//------------------------------------------------------------------------------
// Write side
//------------------------------------------------------------------------------

// ResetWrite moves the write cursor back to the start, logically discarding
// all written content. The read cursor is reset with it so no stale bytes
// remain readable.
func (b *Buffer) ResetWrite() {
	b.head = 0
	b.tail = 0
}

// WritePosition returns the index at which the next write occurs.
func (b *Buffer) WritePosition() int { return b.head }

// WriteRemaining returns how many bytes can still be written.
func (b *Buffer) WriteRemaining() int { return len(b.data) - b.head }

// WriteUint8 appends one byte. Returns false, without mutating anything, when
// the buffer is full.
func (b *Buffer) WriteUint8(v uint8) bool {
	if b.WriteRemaining() < 1 {
		return false
	}
	b.data[b.head] = v
	b.head++
	return true
}

// WriteUint16LE appends v least-significant byte first.
func (b *Buffer) WriteUint16LE(v uint16) bool {
	if b.WriteRemaining() < 2 {
		return false
	}
	binary.LittleEndian.PutUint16(b.data[b.head:], v)
	b.head += 2
	return true
}

// WriteUint16BE appends v most-significant byte first.
func (b *Buffer) WriteUint16BE(v uint16) bool {
	if b.WriteRemaining() < 2 {
		return false
	}
	binary.BigEndian.PutUint16(b.data[b.head:], v)
	b.head += 2
	return true
}

// WriteUint32LE appends v least-significant byte first.
func (b *Buffer) WriteUint32LE(v uint32) bool {
	if b.WriteRemaining() < 4 {
		return false
	}
	binary.LittleEndian.PutUint32(b.data[b.head:], v)
	b.head += 4
	return true
}

// WriteUint32BE appends v most-significant byte first.
func (b *Buffer) WriteUint32BE(v uint32) bool {
	if b.WriteRemaining() < 4 {
		return false
	}
	binary.BigEndian.PutUint32(b.data[b.head:], v)
	b.head += 4
	return true
}

//------------------------------------------------------------------------------
// Read side
//------------------------------------------------------------------------------

// ResetRead moves the read cursor back to the start without touching content,
// so previously written bytes can be read again.
func (b *Buffer) ResetRead() { b.tail = 0 }

// ReadPosition returns the index at which the next read occurs.
func (b *Buffer) ReadPosition() int { return b.tail }

// ReadRemaining returns how many written bytes are still unread.
func (b *Buffer) ReadRemaining() int { return b.head - b.tail }

// ReadUint8 consumes one byte. The second result is false, and the cursor is
// left untouched, when no unread data remains.
func (b *Buffer) ReadUint8() (uint8, bool) {
	if b.ReadRemaining() < 1 {
		return 0, false
	}
	v := b.data[b.tail]
	b.tail++
	return v, true
}

// ReadUint16LE consumes two bytes, least-significant first.
func (b *Buffer) ReadUint16LE() (uint16, bool) {
	if b.ReadRemaining() < 2 {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(b.data[b.tail:])
	b.tail += 2
	return v, true
}

// ReadUint16BE consumes two bytes, most-significant first.
func (b *Buffer) ReadUint16BE() (uint16, bool) {
	if b.ReadRemaining() < 2 {
		return 0, false
	}
	v := binary.BigEndian.Uint16(b.data[b.tail:])
	b.tail += 2
	return v, true
}

// ReadUint32LE consumes four bytes, least-significant first.
func (b *Buffer) ReadUint32LE() (uint32, bool) {
	if b.ReadRemaining() < 4 {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(b.data[b.tail:])
	b.tail += 4
	return v, true
}

// ReadUint32BE consumes four bytes, most-significant first.
func (b *Buffer) ReadUint32BE() (uint32, bool) {
	if b.ReadRemaining() < 4 {
		return 0, false
	}
	v := binary.BigEndian.Uint32(b.data[b.tail:])
	b.tail += 4
	return v, true
}

// Bytes returns the written region [0, WritePosition()) of the backing slice.
// The view aliases caller storage; it stays valid only while the backing
// slice does and is invalidated by ResetWrite.
func (b *Buffer) Bytes() []byte { return b.data[:b.head] }
