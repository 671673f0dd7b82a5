package encoding

import (
	"errors"
	"math"
)

// SampleFormat is the data sample format code declared in the binary
// file header (bytes 25-26 of the block).
type SampleFormat uint16

const (
	// FormatIBMFloat is 4-byte IBM System/360 floating point (code 1).
	FormatIBMFloat SampleFormat = 1
	// FormatInt32 is 4-byte two's complement integer (code 2).
	FormatInt32 SampleFormat = 2
	// FormatInt16 is 2-byte two's complement integer (code 3).
	FormatInt16 SampleFormat = 3
	// FormatIEEEFloat is 4-byte IEEE-754 binary32 (code 5).
	FormatIEEEFloat SampleFormat = 5
	// FormatInt8 is 1-byte two's complement integer (code 8).
	FormatInt8 SampleFormat = 8
)

var (
	// ErrUnknownSampleFormat indicates a sample format code outside the
	// five recognized values.
	ErrUnknownSampleFormat = errors.New("unknown sample format code")
	// ErrShortBuffer indicates a raw sample buffer whose length does not
	// match count * bytes-per-sample.
	ErrShortBuffer = errors.New("sample buffer length mismatch")
)

// Valid reports whether f is one of the recognized format codes.
func (f SampleFormat) Valid() bool {
	switch f {
	case FormatIBMFloat, FormatInt32, FormatInt16, FormatIEEEFloat, FormatInt8:
		return true
	default:
		return false
	}
}

// Size returns the on-disk width of one sample in bytes, or 0 for an
// unrecognized code.
func (f SampleFormat) Size() int {
	switch f {
	case FormatIBMFloat, FormatInt32, FormatIEEEFloat:
		return 4
	case FormatInt16:
		return 2
	case FormatInt8:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable name for the format.
func (f SampleFormat) String() string {
	switch f {
	case FormatIBMFloat:
		return "IBM float"
	case FormatInt32:
		return "int32"
	case FormatInt16:
		return "int16"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatInt8:
		return "int8"
	default:
		return "unknown"
	}
}

// DecodeSamples decodes raw on-disk sample bytes into dst. Integer
// formats are promoted to float32; IBM floats are converted through
// IBMToIEEE. The raw buffer must hold exactly len(dst) samples.
func DecodeSamples(dst []float32, raw []byte, f SampleFormat, o ByteOrder) error {
	width := f.Size()
	if width == 0 {
		return ErrUnknownSampleFormat
	}
	if len(raw) != len(dst)*width {
		return ErrShortBuffer
	}

	switch f {
	case FormatIBMFloat:
		for i := range dst {
			dst[i] = IBMToIEEE(o.Uint32(raw[i*4:]))
		}
	case FormatIEEEFloat:
		for i := range dst {
			dst[i] = o.Float32(raw[i*4:])
		}
	case FormatInt32:
		for i := range dst {
			dst[i] = float32(o.Int32(raw[i*4:]))
		}
	case FormatInt16:
		for i := range dst {
			dst[i] = float32(o.Int16(raw[i*2:]))
		}
	case FormatInt8:
		for i := range dst {
			dst[i] = float32(int8(raw[i]))
		}
	}
	return nil
}

// EncodeSamples encodes samples into dst as on-disk bytes, the inverse
// of DecodeSamples. Values outside an integer format's range clamp to
// that format's extremes; fractional parts round to nearest.
func EncodeSamples(dst []byte, samples []float32, f SampleFormat, o ByteOrder) error {
	width := f.Size()
	if width == 0 {
		return ErrUnknownSampleFormat
	}
	if len(dst) != len(samples)*width {
		return ErrShortBuffer
	}

	switch f {
	case FormatIBMFloat:
		for i, s := range samples {
			o.PutUint32(dst[i*4:], IEEEToIBM(s))
		}
	case FormatIEEEFloat:
		for i, s := range samples {
			o.PutFloat32(dst[i*4:], s)
		}
	case FormatInt32:
		for i, s := range samples {
			o.PutInt32(dst[i*4:], int32(clampRound(s, math.MinInt32, math.MaxInt32)))
		}
	case FormatInt16:
		for i, s := range samples {
			o.PutInt16(dst[i*2:], int16(clampRound(s, math.MinInt16, math.MaxInt16)))
		}
	case FormatInt8:
		for i, s := range samples {
			dst[i] = byte(int8(clampRound(s, math.MinInt8, math.MaxInt8)))
		}
	}
	return nil
}

// clampRound rounds s to the nearest integer and clamps it to [lo, hi].
// NaN maps to zero.
func clampRound(s float32, lo, hi float64) float64 {
	v := math.Round(float64(s))
	switch {
	case math.IsNaN(v):
		return 0
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
