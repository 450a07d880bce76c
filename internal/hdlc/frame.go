package hdlc

import "bytes"

// MaxInfoLen is the hard ceiling on the information field. The wire format
// tracks the field with a single-byte count, so it cannot exceed 255.
const MaxInfoLen = 255

// Frame is one logical HDLC frame: a one-byte address, a one-byte control
// field, and up to MaxInfoLen information bytes. The zero value is a valid
// empty frame. Info bytes beyond the tracked length are not meaningful and
// are never exposed.
type Frame struct {
	Address byte
	Control byte

	info    [MaxInfoLen]byte
	infoLen int
}

// Info returns the valid prefix of the information field. The returned slice
// aliases the frame's storage and stays valid until the frame is mutated.
func (f *Frame) Info() []byte {
	return f.info[:f.infoLen]
}

// InfoLen reports the number of valid information bytes.
func (f *Frame) InfoLen() int {
	return f.infoLen
}

// SetInfo replaces the information field with a copy of p.
func (f *Frame) SetInfo(p []byte) error {
	if len(p) > MaxInfoLen {
		return ErrBufferTooSmall
	}
	copy(f.info[:], p)
	f.infoLen = len(p)
	return nil
}

// AppendInfo appends a single information byte.
func (f *Frame) AppendInfo(b byte) error {
	if f.infoLen >= MaxInfoLen {
		return ErrBufferTooSmall
	}
	f.info[f.infoLen] = b
	f.infoLen++
	return nil
}

// Equal reports whether two frames carry the same address, control byte, and
// information bytes.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Address != other.Address || f.Control != other.Control {
		return false
	}
	return bytes.Equal(f.Info(), other.Info())
}
