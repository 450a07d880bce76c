package hdlc

// Control field bit layout, bit 0 = LSB. All three variants keep the low
// reserved bit set, so a raw control byte is not self-describing: callers
// must know which variant they expect when parsing.
//
//	I-frame: res(1) | N(S) x3 | P/F | N(R) x3
//	S-frame: res(1) | res(0) | S x2 | P/F | N(R) x3
//	U-frame: res(1) | res(1) | M1 x2 | P/F | M2 x3

// SFunction selects the supervisory frame function.
type SFunction byte

const (
	SCodeRR   SFunction = 0x00 // receive ready
	SCodeREJ  SFunction = 0x01 // reject from N(R)
	SCodeRNR  SFunction = 0x02 // receive not ready
	SCodeSREJ SFunction = 0x03 // selective reject of N(R)
)

// UFunction selects the unnumbered frame modifier function.
type UFunction int

const (
	UCodeSNRM  UFunction = iota // set normal response mode
	UCodeSABM                   // set asynchronous balanced mode
	UCodeSABME                  // set asynchronous balanced mode extended
	UCodeDISC                   // disconnect
	UCodeUA                     // unnumbered acknowledgement
	UCodeRSET                   // reset send and receive sequence numbers
	UCodeFRMR                   // frame reject
)

// Modifier bit pairs (M1, M2) for each unnumbered function.
var uModifiers = [...]struct{ m1, m2 byte }{
	UCodeSNRM:  {0x00, 0x01},
	UCodeSABM:  {0x03, 0x04},
	UCodeSABME: {0x03, 0x06},
	UCodeDISC:  {0x00, 0x02},
	UCodeUA:    {0x00, 0x06},
	UCodeRSET:  {0x03, 0x01},
	UCodeFRMR:  {0x02, 0x01},
}

// NewIFrameControl packs an information-frame control byte. ns and nr are
// 3-bit sequence numbers and pf a single bit; wider values silently truncate
// to their low bits.
func NewIFrameControl(ns, pf, nr byte) byte {
	return 0x01 | (ns&0x07)<<1 | (pf&0x01)<<4 | (nr&0x07)<<5
}

// NewSFrameControl packs a supervisory-frame control byte. Truncation
// behaves as in NewIFrameControl.
func NewSFrameControl(code SFunction, pf, nr byte) byte {
	return 0x01 | (byte(code)&0x03)<<2 | (pf&0x01)<<4 | (nr&0x07)<<5
}

// NewUFrameControl packs an unnumbered-frame control byte for one of the
// seven known modifier functions.
func NewUFrameControl(code UFunction, pf byte) (byte, error) {
	if code < 0 || int(code) >= len(uModifiers) {
		return 0, ErrUnknownModifierCode
	}
	m := uModifiers[code]
	return 0x03 | m.m1<<2 | (pf&0x01)<<4 | m.m2<<5, nil
}

// IControl is the unpacked information-frame control field.
type IControl struct {
	NS byte
	PF byte
	NR byte
}

// Byte serializes the control field, truncating each value to its bit width.
func (c IControl) Byte() byte {
	return NewIFrameControl(c.NS, c.PF, c.NR)
}

// IControlFromByte interprets b as an information-frame control byte.
func IControlFromByte(b byte) IControl {
	return IControl{
		NS: b >> 1 & 0x07,
		PF: b >> 4 & 0x01,
		NR: b >> 5 & 0x07,
	}
}

// SControl is the unpacked supervisory-frame control field.
type SControl struct {
	Code SFunction
	PF   byte
	NR   byte
}

func (c SControl) Byte() byte {
	return NewSFrameControl(c.Code, c.PF, c.NR)
}

// SControlFromByte interprets b as a supervisory-frame control byte.
func SControlFromByte(b byte) SControl {
	return SControl{
		Code: SFunction(b >> 2 & 0x03),
		PF:   b >> 4 & 0x01,
		NR:   b >> 5 & 0x07,
	}
}

// UControl is the unpacked unnumbered-frame control field.
type UControl struct {
	Code UFunction
	PF   byte
}

func (c UControl) Byte() (byte, error) {
	return NewUFrameControl(c.Code, c.PF)
}

// UControlFromByte interprets b as an unnumbered-frame control byte, mapping
// its (M1, M2) bits back to a modifier function. Bit pairs outside the known
// table fail with ErrUnknownModifierCode.
func UControlFromByte(b byte) (UControl, error) {
	m1 := b >> 2 & 0x03
	m2 := b >> 5 & 0x07
	for code, m := range uModifiers {
		if m.m1 == m1 && m.m2 == m2 {
			return UControl{Code: UFunction(code), PF: b >> 4 & 0x01}, nil
		}
	}
	return UControl{}, ErrUnknownModifierCode
}
