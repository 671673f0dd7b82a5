// Package encoding provides the low-level byte codecs for SEG-Y files:
// byte-order aware integer access, IBM/IEEE floating-point conversion,
// sample buffer encoding and decoding, and EBCDIC text handling.
package encoding

import (
	"encoding/binary"
	"math"
)

// ByteOrder represents the on-disk byte order of multi-byte values.
type ByteOrder int

const (
	// BigEndian is the byte order mandated by the SEG-Y rev-1 standard.
	BigEndian ByteOrder = iota

	// LittleEndian covers the little-endian deviations seen in practice,
	// typically files produced by x86 workstation software that skipped
	// the byte swap.
	LittleEndian
)

// String returns a human-readable name for the byte order.
func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// impl returns the stdlib implementation for this order.
func (o ByteOrder) impl() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Uint16 decodes an unsigned 16-bit integer from b.
func (o ByteOrder) Uint16(b []byte) uint16 {
	return o.impl().Uint16(b)
}

// Uint32 decodes an unsigned 32-bit integer from b.
func (o ByteOrder) Uint32(b []byte) uint32 {
	return o.impl().Uint32(b)
}

// Int16 decodes a signed 16-bit integer from b.
func (o ByteOrder) Int16(b []byte) int16 {
	return int16(o.impl().Uint16(b))
}

// Int32 decodes a signed 32-bit integer from b.
func (o ByteOrder) Int32(b []byte) int32 {
	return int32(o.impl().Uint32(b))
}

// PutUint16 encodes an unsigned 16-bit integer into b.
func (o ByteOrder) PutUint16(b []byte, v uint16) {
	o.impl().PutUint16(b, v)
}

// PutUint32 encodes an unsigned 32-bit integer into b.
func (o ByteOrder) PutUint32(b []byte, v uint32) {
	o.impl().PutUint32(b, v)
}

// PutInt16 encodes a signed 16-bit integer into b.
func (o ByteOrder) PutInt16(b []byte, v int16) {
	o.impl().PutUint16(b, uint16(v))
}

// PutInt32 encodes a signed 32-bit integer into b.
func (o ByteOrder) PutInt32(b []byte, v int32) {
	o.impl().PutUint32(b, uint32(v))
}

// Float32 decodes an IEEE-754 binary32 value from b.
func (o ByteOrder) Float32(b []byte) float32 {
	return math.Float32frombits(o.impl().Uint32(b))
}

// PutFloat32 encodes an IEEE-754 binary32 value into b.
func (o ByteOrder) PutFloat32(b []byte, v float32) {
	o.impl().PutUint32(b, math.Float32bits(v))
}
