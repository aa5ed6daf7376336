package framing

import (
	"io"

	"github.com/pkg/errors"
)

// ErrFrameTooLarge reports a received header declaring a payload that does
// not fit the destination message's backing storage.
var ErrFrameTooLarge = errors.New("framing: frame exceeds buffer capacity")

// ErrNotFinalized reports an attempt to send a frame whose declared length
// does not cover the appended payload, i.e. FinalizeMessage was skipped.
var ErrNotFinalized = errors.New("framing: message not finalized")

// StreamWriter sends finalized frames over a byte stream. It performs no
// buffering and no allocation; each Send hands the frame's storage straight
// to the underlying writer.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter returns a StreamWriter on w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// Send transmits the frame built in m, retrying short writes until the whole
// frame is on the wire. Exactly HeaderSize plus the declared length goes out:
// payload bytes beyond a clamped length stay local, since a receiver honors
// the header and stray bytes would shift every later frame on the stream.
// m must have been finalized; an unfinalized frame returns ErrNotFinalized.
func (sw *StreamWriter) Send(m *Message) error {
	if m.Size() < HeaderSize {
		return ErrNotFinalized
	}
	declared := int(m.data[1])
	payload := m.Size() - HeaderSize
	if payload > MaxPayloadLength {
		payload = MaxPayloadLength
	}
	if declared != payload {
		return ErrNotFinalized
	}
	buf := m.data[:HeaderSize+declared]
	for len(buf) > 0 {
		n, err := sw.w.Write(buf)
		if err != nil {
			return errors.Wrap(err, "framing: send")
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		buf = buf[n:]
	}
	return nil
}

// StreamReader reassembles frames from a byte stream. Because the wire format
// carries its own length, the reader needs no state between frames; it reads
// a header, then exactly the declared payload.
type StreamReader struct {
	r io.Reader
}

// NewStreamReader returns a StreamReader on r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

// Receive reads one frame directly into m's backing storage and positions m
// for payload reads, exactly as a packet transport would by filling the
// storage and calling BeginRead with the received byte count.
//
// Returns ErrFrameTooLarge when the declared payload does not fit m. The
// header bytes have been consumed from the stream in that case; the stream is
// no longer frame-aligned and should be abandoned.
func (sr *StreamReader) Receive(m *Message) error {
	if len(m.data) < HeaderSize {
		return ErrFrameTooLarge
	}
	if _, err := io.ReadFull(sr.r, m.data[:HeaderSize]); err != nil {
		return errors.Wrap(err, "framing: receive header")
	}
	total := HeaderSize + int(m.data[1])
	if total > len(m.data) {
		return ErrFrameTooLarge
	}
	if _, err := io.ReadFull(sr.r, m.data[HeaderSize:total]); err != nil {
		return errors.Wrap(err, "framing: receive payload")
	}
	m.BeginRead(total)
	return nil
}
