package hdlc

import (
	"errors"
	"testing"
)

func TestStuffUnstuffAllBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		var buf [2]byte
		written, err := stuffByte(buf[:], byte(b))
		if err != nil {
			t.Fatalf("stuff 0x%02X: %v", b, err)
		}

		wantWritten := 1
		if b == FlagByte || b == EscapeByte {
			wantWritten = 2
		}
		if written != wantWritten {
			t.Fatalf("stuff 0x%02X: wrote %d bytes, want %d", b, written, wantWritten)
		}

		got, consumed, err := unstuffByte(buf[:written])
		if err != nil {
			t.Fatalf("unstuff 0x%02X: %v", b, err)
		}
		if got != byte(b) {
			t.Fatalf("unstuff 0x%02X: got 0x%02X", b, got)
		}
		if consumed != written {
			t.Fatalf("unstuff 0x%02X: consumed %d, want %d", b, consumed, written)
		}
	}
}

func TestStuffEscapedValues(t *testing.T) {
	var buf [2]byte
	if _, err := stuffByte(buf[:], FlagByte); err != nil {
		t.Fatalf("stuff flag: %v", err)
	}
	if buf[0] != EscapeByte || buf[1] != 0x5E {
		t.Fatalf("stuffed flag: got % X, want 7D 5E", buf)
	}

	if _, err := stuffByte(buf[:], EscapeByte); err != nil {
		t.Fatalf("stuff escape: %v", err)
	}
	if buf[0] != EscapeByte || buf[1] != 0x5D {
		t.Fatalf("stuffed escape: got % X, want 7D 5D", buf)
	}
}

func TestStuffBufferTooSmall(t *testing.T) {
	if _, err := stuffByte(nil, 0x42); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}

	one := make([]byte, 1)
	if _, err := stuffByte(one, FlagByte); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall for escaped byte, got %v", err)
	}
	if one[0] != 0 {
		t.Fatalf("failed stuff wrote a byte: 0x%02X", one[0])
	}
}

func TestUnstuffDanglingEscape(t *testing.T) {
	if _, _, err := unstuffByte([]byte{EscapeByte}); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("expected ErrMalformedStream, got %v", err)
	}
}

func TestUnstuffEmptyInput(t *testing.T) {
	if _, _, err := unstuffByte(nil); !errors.Is(err, ErrIncompleteFrame) {
		t.Fatalf("expected ErrIncompleteFrame, got %v", err)
	}
}
