package hdlc

// Wire-level byte alphabet.
const (
	// FlagByte delimits frame start and end and is never stuffed in that role.
	FlagByte = 0x7E
	// EscapeByte introduces a transparency-encoded byte.
	EscapeByte = 0x7D

	escapeXor = 0x20
)

// stuffByte writes the transparency encoding of b into dst: the flag and
// escape values become the two-byte sequence EscapeByte, b^0x20; everything
// else passes through unchanged. It returns the number of bytes written.
// Nothing is written when dst lacks the room.
func stuffByte(dst []byte, b byte) (int, error) {
	if b == FlagByte || b == EscapeByte {
		if len(dst) < 2 {
			return 0, ErrBufferTooSmall
		}
		dst[0] = EscapeByte
		dst[1] = b ^ escapeXor
		return 2, nil
	}
	if len(dst) < 1 {
		return 0, ErrBufferTooSmall
	}
	dst[0] = b
	return 1, nil
}

// unstuffByte reads one logical byte from the head of src, undoing the
// transparency encoding. It returns the decoded value and how many wire
// bytes it consumed (1 or 2). An escape byte with no follower is malformed;
// an empty src means the stream ended mid-frame.
func unstuffByte(src []byte) (byte, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrIncompleteFrame
	}
	if src[0] == EscapeByte {
		if len(src) < 2 {
			return 0, 0, ErrMalformedStream
		}
		return src[1] ^ escapeXor, 2, nil
	}
	return src[0], 1, nil
}
