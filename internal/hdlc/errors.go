package hdlc

import "errors"

var (
	ErrInvalidArgument     = errors.New("hdlc: invalid argument")
	ErrBufferTooSmall      = errors.New("hdlc: buffer too small")
	ErrMalformedStream     = errors.New("hdlc: malformed stream")
	ErrChecksumMismatch    = errors.New("hdlc: checksum mismatch")
	ErrIncompleteFrame     = errors.New("hdlc: incomplete frame")
	ErrUnknownModifierCode = errors.New("hdlc: unknown modifier code")
)
