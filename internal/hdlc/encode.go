package hdlc

// Encode serializes f into dst: opening flag, stuffed address, stuffed
// control, stuffed information bytes, stuffed FCS (high byte first), closing
// flag. The FCS covers the stuffed wire bytes between the opening flag and
// the FCS field. It returns the number of bytes written.
//
// On ErrBufferTooSmall the contents of dst are undefined; a partial write is
// not a resumable frame. The smallest successful encoding is 6 bytes.
func (c *Codec) Encode(f *Frame, dst []byte) (int, error) {
	if f == nil || dst == nil {
		return 0, ErrInvalidArgument
	}
	if f.infoLen > c.maxInfo {
		return 0, ErrInvalidArgument
	}
	if len(dst) < 1 {
		return 0, ErrBufferTooSmall
	}

	dst[0] = FlagByte
	n := 1

	put := func(b byte) error {
		w, err := stuffByte(dst[n:], b)
		if err != nil {
			return err
		}
		n += w
		return nil
	}

	if err := put(f.Address); err != nil {
		return 0, err
	}
	if err := put(f.Control); err != nil {
		return 0, err
	}
	for _, b := range f.Info() {
		if err := put(b); err != nil {
			return 0, err
		}
	}

	fcs := fcs16(dst[1:n])
	if err := put(byte(fcs >> 8)); err != nil {
		return 0, err
	}
	if err := put(byte(fcs)); err != nil {
		return 0, err
	}

	if n >= len(dst) {
		return 0, ErrBufferTooSmall
	}
	dst[n] = FlagByte
	n++

	c.log.Debug().
		Int("encoded_len", n).
		Int("info_len", f.infoLen).
		Hex("fcs", []byte{byte(fcs >> 8), byte(fcs)}).
		Msg("frame encoded")
	return n, nil
}
