package hdlc

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameSetInfo(t *testing.T) {
	var f Frame
	if err := f.SetInfo([]byte{0x01, 0x02, 0x03}); err != nil {
		t.Fatalf("set info: %v", err)
	}
	if f.InfoLen() != 3 {
		t.Fatalf("info len = %d, want 3", f.InfoLen())
	}
	if !bytes.Equal(f.Info(), []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("info = % X", f.Info())
	}

	// Shrinking replaces the tracked prefix entirely.
	if err := f.SetInfo([]byte{0xAA}); err != nil {
		t.Fatalf("set info: %v", err)
	}
	if !bytes.Equal(f.Info(), []byte{0xAA}) {
		t.Fatalf("info after shrink = % X", f.Info())
	}
}

func TestFrameSetInfoTooLong(t *testing.T) {
	var f Frame
	err := f.SetInfo(make([]byte, MaxInfoLen+1))
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}
	if f.InfoLen() != 0 {
		t.Fatalf("failed SetInfo changed length: %d", f.InfoLen())
	}
}

func TestFrameAppendInfo(t *testing.T) {
	var f Frame
	for i := 0; i < MaxInfoLen; i++ {
		if err := f.AppendInfo(byte(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if err := f.AppendInfo(0xFF); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall at capacity, got %v", err)
	}
	if f.InfoLen() != MaxInfoLen {
		t.Fatalf("info len = %d, want %d", f.InfoLen(), MaxInfoLen)
	}
}

func TestFrameEqual(t *testing.T) {
	a := &Frame{Address: 0x03, Control: 0x51}
	b := &Frame{Address: 0x03, Control: 0x51}
	if err := a.SetInfo([]byte{0x04, 0x05}); err != nil {
		t.Fatal(err)
	}
	if err := b.SetInfo([]byte{0x04, 0x05}); err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Fatalf("equal frames reported unequal")
	}

	b.Address = 0x04
	if a.Equal(b) {
		t.Fatalf("address mismatch not detected")
	}
	b.Address = 0x03

	if err := b.SetInfo([]byte{0x04, 0x06}); err != nil {
		t.Fatal(err)
	}
	if a.Equal(b) {
		t.Fatalf("info mismatch not detected")
	}

	if a.Equal(nil) {
		t.Fatalf("nil comparison reported equal")
	}
}
