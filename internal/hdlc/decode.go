package hdlc

// decodeState names the decoder's position within a frame.
type decodeState int

const (
	stateStartFlag decodeState = iota
	stateAddress
	stateControl
	stateInfo
	stateFCS
	stateStopFlag
)

func (s decodeState) String() string {
	switch s {
	case stateStartFlag:
		return "start-flag"
	case stateAddress:
		return "address"
	case stateControl:
		return "control"
	case stateInfo:
		return "info"
	case stateFCS:
		return "fcs"
	case stateStopFlag:
		return "stop-flag"
	}
	return "unknown"
}

// Decode parses exactly one frame from src, validating flags and the FCS.
// There is no resynchronization: any structural or checksum failure rejects
// the whole call, and the caller must discard the partially populated result.
// The input must end at the closing flag; the info/FCS boundary is measured
// from the end of the buffer, so trailing bytes corrupt parsing.
//
// The decoder leaves the info state once three or fewer raw bytes remain,
// which assumes the two FCS bytes and the closing flag are never escaped on
// the wire. A frame whose computed FCS contains the flag or escape value
// encodes to more than three trailing bytes, misaligns that boundary, and is
// rejected here even though Encode produced it.
func (c *Codec) Decode(src []byte) (*Frame, error) {
	if src == nil {
		return nil, ErrInvalidArgument
	}

	f := &Frame{}
	state := stateStartFlag
	i := 0

	for {
		switch state {
		case stateStartFlag:
			if i >= len(src) {
				return nil, c.decodeErr(state, i, ErrIncompleteFrame)
			}
			if src[i] != FlagByte {
				return nil, c.decodeErr(state, i, ErrMalformedStream)
			}
			i++
			state = stateAddress

		case stateAddress:
			b, w, err := unstuffByte(src[i:])
			if err != nil {
				return nil, c.decodeErr(state, i, err)
			}
			f.Address = b
			i += w
			state = stateControl

		case stateControl:
			b, w, err := unstuffByte(src[i:])
			if err != nil {
				return nil, c.decodeErr(state, i, err)
			}
			f.Control = b
			i += w
			state = stateInfo

		case stateInfo:
			// Three raw bytes are reserved for the FCS pair and the closing
			// flag; everything before that boundary is information.
			if len(src)-i <= 3 {
				state = stateFCS
				continue
			}
			if f.infoLen >= c.maxInfo {
				return nil, c.decodeErr(state, i, ErrMalformedStream)
			}
			b, w, err := unstuffByte(src[i:])
			if err != nil {
				return nil, c.decodeErr(state, i, err)
			}
			f.info[f.infoLen] = b
			f.infoLen++
			i += w

		case stateFCS:
			content := src[1:i]

			hi, w, err := unstuffByte(src[i:])
			if err != nil {
				return nil, c.decodeErr(state, i, err)
			}
			i += w
			lo, w, err := unstuffByte(src[i:])
			if err != nil {
				return nil, c.decodeErr(state, i, err)
			}
			i += w

			want := uint16(hi)<<8 | uint16(lo)
			if got := fcs16(content); got != want {
				c.log.Debug().
					Uint16("want", want).
					Uint16("got", got).
					Msg("fcs mismatch")
				return nil, ErrChecksumMismatch
			}
			state = stateStopFlag

		case stateStopFlag:
			if i >= len(src) {
				return nil, c.decodeErr(state, i, ErrIncompleteFrame)
			}
			if src[i] != FlagByte {
				return nil, c.decodeErr(state, i, ErrMalformedStream)
			}
			c.log.Debug().
				Int("decoded_len", i+1).
				Int("info_len", f.infoLen).
				Msg("frame decoded")
			return f, nil
		}
	}
}

func (c *Codec) decodeErr(state decodeState, offset int, err error) error {
	c.log.Debug().
		Stringer("state", state).
		Int("offset", offset).
		Err(err).
		Msg("decode failed")
	return err
}
