package token

import (
	"math"

	"github.com/cwbudde/go-rsn/internal/rsnint"
)

// IntegerKind tags which of the four representations an Integer holds.
type IntegerKind int

const (
	// Isize is a signed machine-word value.
	Isize IntegerKind = iota
	// Usize is an unsigned machine-word value.
	Usize
	// SignedLarge is a signed wide value (64 or 128 bits, see
	// internal/rsnint; selected at build time by the rsn_large128 tag).
	SignedLarge
	// UnsignedLarge is an unsigned wide value.
	UnsignedLarge
)

func (k IntegerKind) String() string {
	switch k {
	case Isize:
		return "Isize"
	case Usize:
		return "Usize"
	case SignedLarge:
		return "SignedLarge"
	case UnsignedLarge:
		return "UnsignedLarge"
	default:
		return "Integer(?)"
	}
}

// Integer is the tagged numeric literal representation described in
// spec.md §3: a machine-word signed or unsigned value, or a wide signed or
// unsigned value once the literal's magnitude overflows a machine word.
// Widening never changes the represented mathematical value (P6) — only
// the tag.
type Integer struct {
	Kind     IntegerKind
	isize    int64
	usize    uint64
	signedL  rsnint.SignedLarge
	unsignL  rsnint.Large
}

// NewIsize builds a signed machine-word Integer.
func NewIsize(v int64) Integer { return Integer{Kind: Isize, isize: v} }

// NewUsize builds an unsigned machine-word Integer.
func NewUsize(v uint64) Integer { return Integer{Kind: Usize, usize: v} }

// NewSignedLarge builds a signed wide Integer.
func NewSignedLarge(v rsnint.SignedLarge) Integer {
	return Integer{Kind: SignedLarge, signedL: v}
}

// NewUnsignedLarge builds an unsigned wide Integer.
func NewUnsignedLarge(v rsnint.Large) Integer {
	return Integer{Kind: UnsignedLarge, unsignL: v}
}

// IsZero reports whether the integer's value is zero, regardless of tag.
func (i Integer) IsZero() bool {
	switch i.Kind {
	case Isize:
		return i.isize == 0
	case Usize:
		return i.usize == 0
	case SignedLarge:
		return rsnint.SignedLargeIsZero(i.signedL)
	case UnsignedLarge:
		return rsnint.LargeIsZero(i.unsignL)
	default:
		return false
	}
}

// Float64 lossily converts the integer to the nearest representable
// float64.
func (i Integer) Float64() float64 {
	switch i.Kind {
	case Isize:
		return float64(i.isize)
	case Usize:
		return float64(i.usize)
	case SignedLarge:
		return rsnint.SignedLargeFloat64(i.signedL)
	case UnsignedLarge:
		return rsnint.LargeFloat64(i.unsignL)
	default:
		return 0
	}
}

// String renders the integer in decimal, matching the writer's plain
// base-10 rendering of numeric primitives.
func (i Integer) String() string {
	switch i.Kind {
	case Isize:
		return int64ToString(i.isize)
	case Usize:
		return uint64ToString(i.usize)
	case SignedLarge:
		return rsnint.SignedLargeString(i.signedL)
	case UnsignedLarge:
		return rsnint.LargeString(i.unsignL)
	default:
		return "0"
	}
}

// IntoI64 fallibly narrows the integer to an int64, rejecting values
// outside its range regardless of the source tag.
func (i Integer) IntoI64() (int64, bool) {
	switch i.Kind {
	case Isize:
		return i.isize, true
	case Usize:
		if i.usize > math.MaxInt64 {
			return 0, false
		}
		return int64(i.usize), true
	case SignedLarge:
		return rsnint.SignedLargeToI64(i.signedL)
	case UnsignedLarge:
		v, ok := rsnint.LargeUint64(i.unsignL)
		if !ok || v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

// IntoU64 fallibly narrows the integer to a uint64, rejecting negative
// values and values outside range.
func (i Integer) IntoU64() (uint64, bool) {
	switch i.Kind {
	case Isize:
		if i.isize < 0 {
			return 0, false
		}
		return uint64(i.isize), true
	case Usize:
		return i.usize, true
	case SignedLarge:
		v, ok := i.IntoI64()
		if !ok || v < 0 {
			return 0, false
		}
		return uint64(v), true
	case UnsignedLarge:
		return rsnint.LargeUint64(i.unsignL)
	default:
		return 0, false
	}
}

func int64ToString(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	s := uint64ToString(u)
	if neg {
		return "-" + s
	}
	return s
}

func uint64ToString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
