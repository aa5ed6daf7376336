package framing

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func buildFrame(t *testing.T, m *Message, msgType uint8, payload []byte) {
	t.Helper()
	require.True(t, m.BeginMessage(msgType))
	for _, v := range payload {
		require.True(t, m.AppendByte(v))
	}
	m.FinalizeMessage()
}

func TestStreamRoundTrip(t *testing.T) {
	var wire bytes.Buffer

	out := NewMessage(make([]byte, 16))
	buildFrame(t, out, 0x42, []byte{0x11, 0x22})
	require.NoError(t, NewStreamWriter(&wire).Send(out))
	assert.Equal(t, []byte{0x42, 2, 0x11, 0x22}, wire.Bytes())

	in := NewMessage(make([]byte, 16))
	require.NoError(t, NewStreamReader(&wire).Receive(in))
	assert.Equal(t, uint8(0x42), in.MessageType())
	assert.Equal(t, uint8(2), in.PayloadLength())

	v, ok := in.NextByte()
	require.True(t, ok)
	assert.Equal(t, uint8(0x11), v)
	v, ok = in.NextByte()
	require.True(t, ok)
	assert.Equal(t, uint8(0x22), v)
	_, ok = in.NextByte()
	require.False(t, ok)
}

func TestStreamBackToBackFrames(t *testing.T) {
	var wire bytes.Buffer
	sw := NewStreamWriter(&wire)

	out := NewMessage(make([]byte, 16))
	buildFrame(t, out, 0x01, []byte{0xAA})
	require.NoError(t, sw.Send(out))
	buildFrame(t, out, 0x02, nil)
	require.NoError(t, sw.Send(out))
	buildFrame(t, out, 0x03, []byte{0x01, 0x02, 0x03})
	require.NoError(t, sw.Send(out))

	sr := NewStreamReader(&wire)
	in := NewMessage(make([]byte, 16))

	require.NoError(t, sr.Receive(in))
	assert.Equal(t, uint8(0x01), in.MessageType())
	assert.Equal(t, uint8(1), in.PayloadLength())

	require.NoError(t, sr.Receive(in))
	assert.Equal(t, uint8(0x02), in.MessageType())
	assert.Equal(t, uint8(0), in.PayloadLength())

	require.NoError(t, sr.Receive(in))
	assert.Equal(t, uint8(0x03), in.MessageType())
	assert.Equal(t, uint8(3), in.PayloadLength())

	err := sr.Receive(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSendRejectsUnfinalizedFrame(t *testing.T) {
	var wire bytes.Buffer
	m := NewMessage(make([]byte, 16))
	require.True(t, m.BeginMessage(0x42))
	require.True(t, m.AppendByte(0x11))

	err := NewStreamWriter(&wire).Send(m)
	require.ErrorIs(t, err, ErrNotFinalized)
	assert.Zero(t, wire.Len())
}

func TestSendClampedFrameStaysAligned(t *testing.T) {
	var wire bytes.Buffer
	m := NewMessage(make([]byte, 512))
	require.True(t, m.BeginMessage(0x77))
	for i := 0; i < 300; i++ {
		require.True(t, m.AppendByte(uint8(i)))
	}
	m.FinalizeMessage()
	require.NoError(t, NewStreamWriter(&wire).Send(m))

	// only the declared region goes out
	require.Equal(t, HeaderSize+MaxPayloadLength, wire.Len())

	in := NewMessage(make([]byte, 512))
	sr := NewStreamReader(&wire)
	require.NoError(t, sr.Receive(in))
	assert.Equal(t, uint8(MaxPayloadLength), in.PayloadLength())
	assert.ErrorIs(t, errors.Cause(sr.Receive(in)), io.EOF)
}

func TestReceiveRejectsOversizedFrame(t *testing.T) {
	wire := bytes.NewBuffer([]byte{0x01, 200}) // declares 200 payload bytes
	in := NewMessage(make([]byte, 16))
	err := NewStreamReader(wire).Receive(in)
	require.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestReceiveTruncatedPayload(t *testing.T) {
	wire := bytes.NewBuffer([]byte{0x01, 4, 0xAA, 0xBB}) // payload cut short
	in := NewMessage(make([]byte, 16))
	err := NewStreamReader(wire).Receive(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// Drives a writer and reader concurrently over an in-process pipe, the way a
// UART bridge would pump frames between two owners.
func TestStreamPipeConcurrent(t *testing.T) {
	pr, pw := io.Pipe()
	const frames = 64

	group, _ := errgroup.WithContext(context.Background())
	group.Go(func() error {
		defer pw.Close()
		sw := NewStreamWriter(pw)
		m := NewMessage(make([]byte, 64))
		for i := 0; i < frames; i++ {
			if !m.BeginMessage(uint8(i)) {
				return errors.New("begin failed")
			}
			for j := 0; j <= i%5; j++ {
				if !m.AppendByte(uint8(j)) {
					return errors.New("append failed")
				}
			}
			m.FinalizeMessage()
			if err := sw.Send(m); err != nil {
				return err
			}
		}
		return nil
	})

	received := 0
	group.Go(func() error {
		sr := NewStreamReader(pr)
		m := NewMessage(make([]byte, 64))
		for {
			if err := sr.Receive(m); err != nil {
				if errors.Cause(err) == io.EOF {
					return nil
				}
				return err
			}
			if m.MessageType() != uint8(received) {
				return errors.Errorf("frame %d: got type %d", received, m.MessageType())
			}
			if int(m.PayloadLength()) != received%5+1 {
				return errors.Errorf("frame %d: got length %d", received, m.PayloadLength())
			}
			received++
		}
	})

	require.NoError(t, group.Wait())
	require.Equal(t, frames, received)
}

func BenchmarkFrameBuildParse(b *testing.B) {
	m := NewMessage(make([]byte, 64))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.BeginMessage(0x42)
		for j := 0; j < 16; j++ {
			m.AppendByte(uint8(j))
		}
		m.FinalizeMessage()
		m.BeginRead(m.Size())
		for {
			if _, ok := m.NextByte(); !ok {
				break
			}
		}
	}
}
