package encoding

// Textual headers in the wild predate the rev-1 "ASCII allowed" note and
// are frequently EBCDIC (code page 037). Only the printable ASCII subset
// round-trips; everything else decodes to a space.

// ebcdicToASCII maps cp037 bytes to printable ASCII. Control characters
// and glyphs outside ASCII map to 0x20.
var ebcdicToASCII = [256]byte{
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 00-07
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 08-0F
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 10-17
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 18-1F
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 20-27
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 28-2F
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 30-37
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 38-3F
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 40-47
	0x20, 0x20, 0x20, 0x2E, 0x3C, 0x28, 0x2B, 0x7C, // 48-4F
	0x26, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 50-57
	0x20, 0x20, 0x21, 0x24, 0x2A, 0x29, 0x3B, 0x20, // 58-5F
	0x2D, 0x2F, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 60-67
	0x20, 0x20, 0x20, 0x2C, 0x25, 0x5F, 0x3E, 0x3F, // 68-6F
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 70-77
	0x20, 0x60, 0x3A, 0x23, 0x40, 0x27, 0x3D, 0x22, // 78-7F
	0x20, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, // 80-87
	0x68, 0x69, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 88-8F
	0x20, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F, 0x70, // 90-97
	0x71, 0x72, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // 98-9F
	0x20, 0x7E, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, // A0-A7
	0x79, 0x7A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // A8-AF
	0x5E, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // B0-B7
	0x20, 0x20, 0x5B, 0x5D, 0x20, 0x20, 0x20, 0x20, // B8-BF
	0x7B, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, // C0-C7
	0x48, 0x49, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // C8-CF
	0x7D, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F, 0x50, // D0-D7
	0x51, 0x52, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // D8-DF
	0x5C, 0x20, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, // E0-E7
	0x59, 0x5A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // E8-EF
	0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, // F0-F7
	0x38, 0x39, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, // F8-FF
}

// asciiToEBCDIC maps printable ASCII to cp037. Non-printable input maps
// to the EBCDIC space 0x40.
var asciiToEBCDIC = [128]byte{
	0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, // 00-07
	0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, // 08-0F
	0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, // 10-17
	0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, // 18-1F
	0x40, 0x5A, 0x7F, 0x7B, 0x5B, 0x6C, 0x50, 0x7D, // 20-27
	0x4D, 0x5D, 0x5C, 0x4E, 0x6B, 0x60, 0x4B, 0x61, // 28-2F
	0xF0, 0xF1, 0xF2, 0xF3, 0xF4, 0xF5, 0xF6, 0xF7, // 30-37
	0xF8, 0xF9, 0x7A, 0x5E, 0x4C, 0x7E, 0x6E, 0x6F, // 38-3F
	0x7C, 0xC1, 0xC2, 0xC3, 0xC4, 0xC5, 0xC6, 0xC7, // 40-47
	0xC8, 0xC9, 0xD1, 0xD2, 0xD3, 0xD4, 0xD5, 0xD6, // 48-4F
	0xD7, 0xD8, 0xD9, 0xE2, 0xE3, 0xE4, 0xE5, 0xE6, // 50-57
	0xE7, 0xE8, 0xE9, 0xBA, 0xE0, 0xBB, 0xB0, 0x6D, // 58-5F
	0x79, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, // 60-67
	0x88, 0x89, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, // 68-6F
	0x97, 0x98, 0x99, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, // 70-77
	0xA7, 0xA8, 0xA9, 0xC0, 0x4F, 0xD0, 0xA1, 0x40, // 78-7F
}

// DecodeEBCDIC converts cp037 bytes to ASCII in place.
func DecodeEBCDIC(b []byte) {
	for i, c := range b {
		b[i] = ebcdicToASCII[c]
	}
}

// EncodeEBCDIC converts ASCII bytes to cp037 in place.
func EncodeEBCDIC(b []byte) {
	for i, c := range b {
		if c < 0x80 {
			b[i] = asciiToEBCDIC[c]
		} else {
			b[i] = 0x40
		}
	}
}

// LooksEBCDIC reports whether a textual header line is likely EBCDIC
// rather than ASCII. ASCII text is printable bytes in 0x20..0x7E, while
// cp037 puts letters and digits at 0x81 and above with 0x40 as space.
// Each interpretation is scored by how much of the line it renders
// printable; EBCDIC wins only on a strictly better score, so an
// ambiguous line stays ASCII.
func LooksEBCDIC(line []byte) bool {
	ascii, ebcdic := 0, 0
	for _, c := range line {
		if c >= 0x20 && c <= 0x7E {
			ascii++
		}
		if c == 0x40 || ebcdicToASCII[c] != 0x20 {
			ebcdic++
		}
	}
	return ebcdic > ascii
}
