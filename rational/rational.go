// Package rational implements the 8 byte fraction types found in TIFF and EXIF
// directories. A denominator of zero is representable and reported as undefined
// instead of failing, since real camera output contains 0/0 values.
package rational

import (
	"encoding/binary"
	"errors"
	"math"
	"strconv"
)

// Rational is implemented by rational numbers in this package.
type Rational interface {
	Fraction() (numerator, denominator int64)
	Float() float64
	Defined() bool
}

var errShortBuf = errors.New("buffer too short")

// NewI64 returns the signed fraction numerator/denominator.
func NewI64(numerator, denominator int32) I64 {
	return I64{num: numerator, denMinusOne: denominator - 1}
}

// NewU64 returns the unsigned fraction numerator/denominator.
func NewU64(numerator, denominator uint32) U64 {
	return U64{num: numerator, denMinusOne: denominator - 1}
}

// I64 is a signed rational. The zero value is 0/1.
type I64 struct {
	num         int32
	denMinusOne int32
}

// U64 is an unsigned rational. The zero value is 0/1.
type U64 struct {
	num         uint32
	denMinusOne uint32
}

// Defined reports whether the denominator is non-zero.
func (u U64) Defined() bool { return u.denMinusOne+1 != 0 }

// Defined reports whether the denominator is non-zero.
func (i I64) Defined() bool { return i.denMinusOne+1 != 0 }

// Float returns the value of the fraction or NaN if it is undefined.
func (u U64) Float() float64 {
	if !u.Defined() {
		return math.NaN()
	}
	return float64(u.num) / float64(u.denMinusOne+1)
}

// Float returns the value of the fraction or NaN if it is undefined.
func (i I64) Float() float64 {
	if !i.Defined() {
		return math.NaN()
	}
	return float64(i.num) / float64(i.denMinusOne+1)
}

// DecodeU64 reads a numerator and denominator pair of uint32s from b.
func DecodeU64(order binary.ByteOrder, b []byte) (U64, error) {
	if len(b) < 8 {
		return U64{}, errShortBuf
	}
	numerator := order.Uint32(b)
	denominator := order.Uint32(b[4:])
	return U64{denMinusOne: denominator - 1, num: numerator}, nil
}

// DecodeI64 reads a numerator and denominator pair of int32s from b.
func DecodeI64(order binary.ByteOrder, b []byte) (I64, error) {
	if len(b) < 8 {
		return I64{}, errShortBuf
	}
	numerator := int32(order.Uint32(b))
	denominator := int32(order.Uint32(b[4:]))
	return I64{denMinusOne: denominator - 1, num: numerator}, nil
}

func (i I64) Fraction() (numerator, denominator int64) {
	return int64(i.num), int64(i.denMinusOne + 1)
}

func (u U64) Fraction() (numerator, denominator int64) {
	return int64(u.num), int64(u.denMinusOne + 1)
}

func (i I64) String() string {
	num, den := i.Fraction()
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}

func (u U64) String() string {
	num, den := u.Fraction()
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}
