package segy

import "github.com/seisio/segy/internal/encoding"

// SampleFormat is an alias to encoding.SampleFormat.
// Re-exported from internal/encoding to keep the codec logic in one place.
type SampleFormat = encoding.SampleFormat

// Re-export the recognized sample format codes.
const (
	// SampleFormatIBMFloat is 4-byte IBM floating point (code 1).
	SampleFormatIBMFloat = encoding.FormatIBMFloat
	// SampleFormatInt32 is 4-byte two's complement integer (code 2).
	SampleFormatInt32 = encoding.FormatInt32
	// SampleFormatInt16 is 2-byte two's complement integer (code 3).
	SampleFormatInt16 = encoding.FormatInt16
	// SampleFormatIEEEFloat is 4-byte IEEE-754 binary32 (code 5).
	SampleFormatIEEEFloat = encoding.FormatIEEEFloat
	// SampleFormatInt8 is 1-byte two's complement integer (code 8).
	SampleFormatInt8 = encoding.FormatInt8
)

// ByteOrder is an alias to encoding.ByteOrder.
// Re-exported from internal/encoding to keep the codec logic in one place.
type ByteOrder = encoding.ByteOrder

// Re-export the byte orders.
const (
	// BigEndian is the on-disk byte order mandated by the rev-1 standard.
	BigEndian = encoding.BigEndian
	// LittleEndian covers non-standard files written without byte swapping.
	LittleEndian = encoding.LittleEndian
)

// Fixed region sizes of the SEG-Y layout.
const (
	// TextualHeaderSize is the byte length of the textual file header.
	TextualHeaderSize = 3200
	// BinaryHeaderSize is the byte length of the binary file header.
	BinaryHeaderSize = 400
	// HeaderPrologueSize is the combined length of the two file headers
	// preceding the first trace.
	HeaderPrologueSize = TextualHeaderSize + BinaryHeaderSize
	// TraceHeaderSize is the byte length of each per-trace header.
	TraceHeaderSize = 240
)
