//go:build !rsn_large128

package rsnint

import "strconv"

// Large is the wide unsigned accumulator type. Without the rsn_large128
// build tag it is 64 bits wide — the same width as the machine-word
// accumulator — so on this build the large tag only ever arises for
// literals that overflow 64 bits outright, which then fail with
// IntegerTooLarge rather than silently truncating (see MulAddDigit).
type Large = uint64

// SignedLarge is the signed counterpart of Large.
type SignedLarge = int64

// LargeBits reports the configured width of the wide accumulator.
const LargeBits = 64

// WidenFromUint64 promotes a machine-word accumulator to the wide type.
func WidenFromUint64(v uint64) Large {
	return v
}

// MulAddDigit computes acc*base+digit with overflow detection.
func MulAddDigit(acc Large, base, digit uint64) (Large, bool) {
	if acc > (1<<64-1-digit)/base {
		return 0, true
	}
	result := acc*base + digit
	return result, false
}

// LargeIsZero reports whether the wide value is zero.
func LargeIsZero(v Large) bool {
	return v == 0
}

// LargeString renders the wide value in decimal.
func LargeString(v Large) string {
	return strconv.FormatUint(v, 10)
}

// LargeFloat64 converts the wide value to the nearest float64.
func LargeFloat64(v Large) float64 {
	return float64(v)
}

// LargeUint64 fallibly narrows the wide value to uint64 (always succeeds
// on this build, since Large already is uint64).
func LargeUint64(v Large) (uint64, bool) {
	return v, true
}

// NegateToSigned negates a non-negative wide magnitude into the signed
// wide type, failing if the magnitude cannot be represented.
func NegateToSigned(mag Large) (SignedLarge, bool) {
	if mag > 1<<63 {
		return 0, false
	}
	return -int64(mag), true
}

// SignedFromLarge converts a non-negative wide magnitude into the signed
// wide type without negation.
func SignedFromLarge(mag Large) (SignedLarge, bool) {
	if mag > 1<<63-1 {
		return 0, false
	}
	return int64(mag), true
}

// SignedLargeString renders the signed wide value in decimal.
func SignedLargeString(v SignedLarge) string {
	return strconv.FormatInt(v, 10)
}

// SignedLargeIsZero reports whether the signed wide value is zero.
func SignedLargeIsZero(v SignedLarge) bool {
	return v == 0
}

// SignedLargeFloat64 converts the signed wide value to the nearest float64.
func SignedLargeFloat64(v SignedLarge) float64 {
	return float64(v)
}

// SignedLargeToI64 narrows the signed wide value to int64 (always succeeds
// on this build, since SignedLarge already is int64).
func SignedLargeToI64(v SignedLarge) (int64, bool) {
	return v, true
}
