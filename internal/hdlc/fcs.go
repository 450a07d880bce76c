package hdlc

// fcs16 implements CRC-16/ISO-HDLC (also published as CRC-16/X-25):
// polynomial 0x1021 with reflected input and output, initial register 0xFFFF,
// final XOR 0xFFFF. The reflection is folded into the table, so the update
// loop runs LSB-first over the reversed polynomial.
//
// Check value: fcs16([]byte("123456789")) == 0x906E.
func fcs16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = (crc >> 8) ^ fcsTable[byte(crc)^b]
	}
	return crc ^ 0xFFFF
}

// 0x8408 is 0x1021 bit-reversed.
var fcsTable = func() [256]uint16 {
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0x8408
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}()
