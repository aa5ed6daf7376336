// Package framing implements a minimal framed message codec over a
// caller-supplied byte slice, for packetized links that already delimit
// message boundaries (fixed-size LoRa packets, BLE characteristics, UART
// framing hardware).
//
// Wire format, the one bit-exact contract of this package:
//
//	byte 0              : type    (caller-defined tag)
//	byte 1              : length  (payload byte count, 0-255, clamped)
//	bytes 2..2+length-1 : payload (raw bytes, meaning caller-defined)
//
// There is no checksum, no multi-byte length, and no escaping; the transport
// is expected to hand the exact received byte count to BeginRead. A Message
// holds exactly one in-flight frame at a time: calling BeginMessage or
// BeginRead discards any prior state, so a single instance can be reused for
// every frame on a link.
package framing

const (
	// HeaderSize is the number of bytes reserved for the type and length
	// fields at the front of every frame.
	HeaderSize = 2

	// MaxPayloadLength is the largest payload byte count the one-byte length
	// field can declare. FinalizeMessage clamps to this value.
	MaxPayloadLength = 255
)

// Message reads and writes one frame over borrowed storage. The caller must
// keep the backing slice alive for the Message's lifetime and must not size
// it smaller than the capacity it was constructed with.
//
// Not safe for concurrent use.
type Message struct {
	data []byte
	head int // write cursor; after BeginRead, the received byte count
	tail int // payload read cursor
}

// NewMessage returns a Message over buf. The slice is borrowed, never copied;
// a transport receiving bytes directly into buf can parse them in place via
// BeginRead.
func NewMessage(buf []byte) *Message {
	return &Message{data: buf}
}

// Capacity returns the total size of the backing slice in bytes.
func (m *Message) Capacity() int { return len(m.data) }

//------------------------------------------------------------------------------
// Write side
//------------------------------------------------------------------------------

// BeginMessage starts a new outgoing frame with the given type tag, reserving
// the header region and discarding any prior in-flight state. Returns false,
// without mutating anything, when the backing slice cannot hold a header.
func (m *Message) BeginMessage(msgType uint8) bool {
	if len(m.data) < HeaderSize {
		return false
	}
	m.head = HeaderSize
	m.tail = 0
	m.data[0] = msgType
	m.data[1] = 0 // length placeholder, committed by FinalizeMessage
	return true
}

// AppendByte appends one payload byte. Returns false, without mutating
// anything, when the backing slice is full.
//
// Calling AppendByte outside a BeginMessage/FinalizeMessage session is an
// unchecked precondition violation; the codec does not guard call order.
func (m *Message) AppendByte(v uint8) bool {
	if m.head >= len(m.data) {
		return false
	}
	m.data[m.head] = v
	m.head++
	return true
}

// FinalizeMessage commits the payload length into the header, completing the
// frame for transmission. A payload longer than MaxPayloadLength is clamped
// in the declared length only: the extra bytes stay in the backing slice and
// in Data(), but receivers honoring the header will not see them. The clamp
// never fails; do not change it to an error, peers depend on it.
func (m *Message) FinalizeMessage() {
	n := m.head - HeaderSize
	if n > MaxPayloadLength {
		n = MaxPayloadLength
	}
	m.data[1] = uint8(n)
}

// Data returns the transmit-ready frame region, header plus payload. The view
// aliases the backing slice.
func (m *Message) Data() []byte { return m.data[:m.head] }

// Size returns the on-wire frame size in bytes, header included.
func (m *Message) Size() int { return m.head }

//------------------------------------------------------------------------------
// Read side
//------------------------------------------------------------------------------

// BeginRead positions the codec over a frame a transport has already received
// into the backing slice, where size is the exact received byte count, header
// included. Returns false, without mutating anything, for sizes that cannot
// hold a header or exceed the backing slice.
func (m *Message) BeginRead(size int) bool {
	if size < HeaderSize || size > len(m.data) {
		return false
	}
	m.head = size
	m.tail = HeaderSize
	return true
}

// MessageType returns the frame's type tag from header byte 0.
func (m *Message) MessageType() uint8 { return m.data[0] }

// PayloadLength returns the declared payload byte count from header byte 1.
func (m *Message) PayloadLength() uint8 { return m.data[1] }

// NextByte consumes one payload byte. The second result is false, and the
// cursor is left untouched, once the received byte count is exhausted. The
// bound is the bytes actually received, not the declared length, so a frame
// truncated in transit can never be read past its real end.
func (m *Message) NextByte() (uint8, bool) {
	if m.tail >= m.head {
		return 0, false
	}
	v := m.data[m.tail]
	m.tail++
	return v, true
}

// ReadRemaining returns how many payload bytes are still expected per the
// header's declared length, clamped to zero once the cursor passes it.
func (m *Message) ReadRemaining() int {
	end := HeaderSize + int(m.PayloadLength())
	if m.tail >= end {
		return 0
	}
	return end - m.tail
}
