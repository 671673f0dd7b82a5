package encoding

import "math"

// IBM System/360 single precision layout: 1 sign bit, 7-bit excess-64
// base-16 exponent, 24-bit fraction. The value is
//
//	(-1)^sign * 0.fraction * 16^(exponent-64)
//
// with the fraction interpreted as a 24-bit binary fraction. Unlike
// IEEE-754 there is no implicit leading bit, so up to three leading
// fraction bits may be zero for a normalized value.

const (
	ibmSignMask = 0x80000000
	ibmExpMask  = 0x7F000000
	ibmFracMask = 0x00FFFFFF

	// ibmMaxMagnitude is the largest positive IBM float, sign clear,
	// exponent field 127, fraction all ones.
	ibmMaxMagnitude = 0x7FFFFFFF
)

// IBMToIEEE converts a 32-bit IBM float (given as its raw bits) to an
// IEEE-754 binary32 value.
//
// The IBM format spans roughly 16^-65 to 16^63, which exceeds the IEEE
// binary32 range on both ends. Out-of-range magnitudes do not raise an
// error: values above the IEEE maximum clamp to ±math.MaxFloat32 and
// values below the smallest subnormal flush to signed zero. This lossy
// behavior matches legacy SEG-Y tooling.
func IBMToIEEE(bits uint32) float32 {
	frac := bits & ibmFracMask
	if frac == 0 {
		// True zero regardless of exponent field. Preserve the sign.
		if bits&ibmSignMask != 0 {
			return float32(math.Copysign(0, -1))
		}
		return 0
	}

	exp := int((bits&ibmExpMask)>>24) - 64

	// 0.frac * 16^exp == frac * 2^(4*exp - 24). The 24-bit fraction is
	// exact in float64, and Ldexp only shifts the exponent, so the
	// intermediate is exact.
	v := math.Ldexp(float64(frac), 4*exp-24)
	if v > math.MaxFloat32 {
		v = math.MaxFloat32
	}
	if bits&ibmSignMask != 0 {
		v = -v
	}
	return float32(v)
}

// IEEEToIBM converts an IEEE-754 binary32 value to 32-bit IBM float bits.
//
// Every finite binary32 magnitude fits inside the IBM range, so the only
// loss is rounding: base-16 normalization can sacrifice up to three low
// fraction bits. Infinities clamp to the largest IBM magnitude and NaN
// encodes as zero, mirroring the clamp-don't-raise contract of IBMToIEEE.
func IEEEToIBM(f float32) uint32 {
	var sign uint32
	if math.Signbit(float64(f)) {
		sign = ibmSignMask
	}

	v := math.Abs(float64(f))
	switch {
	case v == 0 || math.IsNaN(v):
		return sign
	case math.IsInf(v, 0):
		return sign | ibmMaxMagnitude
	}

	// v = m * 2^e with m in [0.5, 1). Re-normalize to base 16:
	// v = (m / 2^shift) * 16^e16 where shift = 4*e16 - e in 0..3.
	m, e := math.Frexp(v)
	e16 := (e + 3) >> 2
	shift := uint(4*e16 - e)

	frac := uint32(math.Round(math.Ldexp(m, 24-int(shift))))
	if frac > ibmFracMask {
		// Rounding carried past the fraction width.
		frac >>= 4
		e16++
	}

	expField := e16 + 64
	switch {
	case frac == 0 || expField < 0:
		return sign
	case expField > 127:
		return sign | ibmMaxMagnitude
	}

	return sign | uint32(expField)<<24 | frac
}
