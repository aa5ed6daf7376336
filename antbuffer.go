// Package antbuffer bundles three allocation-free buffer primitives for
// resource-constrained, real-time environments such as microcontroller
// firmware talking over LoRa, BLE, or UART:
//
//   - bytebuf.Buffer: a cursor-based byte reader/writer with explicit
//     little- and big-endian scalar accessors over caller-owned storage.
//   - framing.Message: a minimal framed message codec (1-byte type, 1-byte
//     length, up to 255 payload bytes) over the same kind of storage.
//   - ringq.Queue: a fixed-capacity generic FIFO with inline element storage.
//
// The byte buffer and message codec borrow storage from the caller and never
// allocate, copy, or grow it; the ring queue allocates its storage exactly
// once at construction. All three are single-owner and non-blocking.
//
// This package re-exports the storage-borrowing types and their constructors
// for callers that want a single import; the subpackages are the canonical
// homes.
package antbuffer

import (
	"github.com/Allie-Leth/ant-buffer/pkg/bytebuf"
	"github.com/Allie-Leth/ant-buffer/pkg/framing"
)

// ByteBuffer is a cursor-based reader/writer over caller-owned storage.
type ByteBuffer = bytebuf.Buffer

// Message is a framed message codec over caller-owned storage.
type Message = framing.Message

// NewByteBuffer returns a ByteBuffer over buf. The slice is borrowed, never
// copied; keep it alive for the buffer's lifetime.
func NewByteBuffer(buf []byte) *ByteBuffer {
	return bytebuf.New(buf)
}

// NewMessage returns a Message codec over buf, under the same borrowing
// contract as NewByteBuffer.
func NewMessage(buf []byte) *Message {
	return framing.NewMessage(buf)
}

// There is no queue factory here: ringq.Queue is generic, so construct it
// directly with ringq.New[T](capacity).
