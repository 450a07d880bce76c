// Package hdlc owns HDLC frame encode/decode primitives.
//
// Ownership boundary:
// - flag-delimited wire framing with byte stuffing
// - CRC-16/ISO-HDLC frame check sequence
// - I/S/U control field packing
//
// Link management (connection sequencing, windowing, retransmission) is a
// caller concern; the package never performs I/O.
package hdlc
