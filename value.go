package exif

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/soypat/exifmeta/rational"
)

// Kind enumerates the shapes a decoded tag value can take.
type Kind uint8

const (
	// KindUnsupported marks a value whose TIFF type is not modelled. It is
	// the kind of the zero Value.
	KindUnsupported Kind = iota
	// KindInt holds one or more signed or unsigned integers.
	KindInt
	// KindFloat holds one or more float32 or float64 values.
	KindFloat
	// KindString holds ASCII text.
	KindString
	// KindRational holds one or more numerator/denominator pairs.
	KindRational
	// KindBytes holds opaque bytes of the undefined TIFF type.
	KindBytes
	// KindUndefined marks a single rational with a zero denominator.
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRational:
		return "rational"
	case KindBytes:
		return "bytes"
	case KindUndefined:
		return "undefined"
	}
	return "<unknown kind>"
}

// Value is a decoded tag value. Only the field matching Kind is populated.
// Values are immutable: slices returned by accessors must not be modified.
type Value struct {
	kind   Kind
	ints   []int64
	floats []float64
	rats   []rational.Rational
	str    string
	raw    []byte
}

// IntValue returns a KindInt value.
func IntValue(v ...int64) Value { return Value{kind: KindInt, ints: v} }

// FloatValue returns a KindFloat value.
func FloatValue(v ...float64) Value { return Value{kind: KindFloat, floats: v} }

// StringValue returns a KindString value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// RationalValue returns a KindRational value. A single undefined rational
// yields a KindUndefined value.
func RationalValue(v ...rational.Rational) Value {
	if len(v) == 1 && !v[0].Defined() {
		return Value{kind: KindUndefined}
	}
	return Value{kind: KindRational, rats: v}
}

// BytesValue returns a KindBytes value.
func BytesValue(b []byte) Value { return Value{kind: KindBytes, raw: b} }

// Undefined returns the value of a rational with a zero denominator.
func Undefined() Value { return Value{kind: KindUndefined} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Len returns the number of elements held by the value. Strings and bytes
// count as a single element.
func (v Value) Len() int {
	switch v.kind {
	case KindInt:
		return len(v.ints)
	case KindFloat:
		return len(v.floats)
	case KindRational:
		return len(v.rats)
	case KindString, KindBytes:
		return 1
	}
	return 0
}

// Int returns the i'th integer of a KindInt value.
func (v Value) Int(i int) (int64, bool) {
	if v.kind != KindInt || i < 0 || i >= len(v.ints) {
		return 0, false
	}
	return v.ints[i], true
}

// Ints returns the integers of a KindInt value.
func (v Value) Ints() []int64 {
	if v.kind != KindInt {
		return nil
	}
	return v.ints
}

// Float returns the i'th float of a KindFloat value.
func (v Value) Float(i int) (float64, bool) {
	if v.kind != KindFloat || i < 0 || i >= len(v.floats) {
		return 0, false
	}
	return v.floats[i], true
}

// Rational returns the i'th rational of a KindRational value.
func (v Value) Rational(i int) (rational.Rational, bool) {
	if v.kind != KindRational || i < 0 || i >= len(v.rats) {
		return nil, false
	}
	return v.rats[i], true
}

// Rationals returns the rationals of a KindRational value.
func (v Value) Rationals() []rational.Rational {
	if v.kind != KindRational {
		return nil
	}
	return v.rats
}

// Number returns the i'th element of any numeric kind as a float64.
// Undefined rationals are reported as not ok.
func (v Value) Number(i int) (float64, bool) {
	switch v.kind {
	case KindInt:
		n, ok := v.Int(i)
		return float64(n), ok
	case KindFloat:
		return v.Float(i)
	case KindRational:
		r, ok := v.Rational(i)
		if !ok || !r.Defined() {
			return 0, false
		}
		return r.Float(), true
	}
	return 0, false
}

// Text returns the text of a KindString value.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Bytes returns the bytes of a KindBytes value.
func (v Value) Bytes() ([]byte, bool) {
	return v.raw, v.kind == KindBytes
}

// Equal reports whether v and u hold the same kind and elements.
// Floats are compared by their bits so NaN equals NaN.
func (v Value) Equal(u Value) bool {
	if v.kind != u.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		if len(v.ints) != len(u.ints) {
			return false
		}
		for i := range v.ints {
			if v.ints[i] != u.ints[i] {
				return false
			}
		}
	case KindFloat:
		if len(v.floats) != len(u.floats) {
			return false
		}
		for i := range v.floats {
			if math.Float64bits(v.floats[i]) != math.Float64bits(u.floats[i]) {
				return false
			}
		}
	case KindRational:
		if len(v.rats) != len(u.rats) {
			return false
		}
		for i := range v.rats {
			vn, vd := v.rats[i].Fraction()
			un, ud := u.rats[i].Fraction()
			if vn != un || vd != ud {
				return false
			}
		}
	case KindString:
		return v.str == u.str
	case KindBytes:
		return bytes.Equal(v.raw, u.raw)
	}
	return true
}

// String returns a human readable representation of the value.
func (v Value) String() string {
	var sb strings.Builder
	switch v.kind {
	case KindInt:
		for i, n := range v.ints {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(n, 10))
		}
	case KindFloat:
		for i, f := range v.floats {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
	case KindRational:
		for i, r := range v.rats {
			if i > 0 {
				sb.WriteByte(' ')
			}
			num, den := r.Fraction()
			sb.WriteString(strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10))
		}
	case KindString:
		return v.str
	case KindBytes:
		return strconv.Quote(string(v.raw))
	case KindUndefined:
		return "<undefined>"
	default:
		return "<unsupported>"
	}
	return sb.String()
}

// MarshalJSON encodes single element values as scalars and longer values as
// arrays. Rationals are [numerator, denominator] pairs, or null when the
// denominator is zero. Undefined and unsupported values encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	var elems []any
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindBytes:
		ints := make([]int, len(v.raw))
		for i, b := range v.raw {
			ints[i] = int(b)
		}
		return json.Marshal(ints)
	case KindInt:
		for _, n := range v.ints {
			elems = append(elems, n)
		}
	case KindFloat:
		for _, f := range v.floats {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				elems = append(elems, nil)
			} else {
				elems = append(elems, f)
			}
		}
	case KindRational:
		for _, r := range v.rats {
			if !r.Defined() {
				elems = append(elems, nil)
				continue
			}
			num, den := r.Fraction()
			elems = append(elems, [2]int64{num, den})
		}
	default:
		return []byte("null"), nil
	}
	if len(elems) == 1 {
		return json.Marshal(elems[0])
	}
	return json.Marshal(elems)
}

var errBadSize = errors.New("bad byte buffer size for type")

// DecodeTypeData takes raw EXIF byte slice data and interprets it according to
// the Type tp and the byte order. Every element of data is decoded, so
// len(data) must be a multiple of the type's size.
//   - Integer types decode to KindInt.
//   - Float types decode to KindFloat.
//   - Rational types decode to KindRational, or KindUndefined for a single
//     rational with a zero denominator.
//   - String (ASCII) decodes to KindString, trimmed at the first NUL byte.
//   - Undefined decodes to KindBytes holding a copy of data.
//
// Types this package does not model return the zero (unsupported) Value and
// ErrUnsupportedType.
func DecodeTypeData(tp Type, order binary.ByteOrder, data []byte) (v Value, err error) {
	sz := int(tp.Size())
	if sz == 0 {
		return Value{}, ErrUnsupportedType
	}
	count := len(data) / sz
	if count == 0 || len(data)%sz != 0 {
		return Value{}, errBadSize
	}
	switch tp {
	case TypeString:
		if i := bytes.IndexByte(data, 0); i >= 0 {
			data = data[:i]
		}
		return StringValue(string(data)), nil
	case TypeUndefined:
		return BytesValue(append([]byte(nil), data...)), nil
	case TypeFloat32, TypeFloat64:
		floats := make([]float64, count)
		for i := range floats {
			elem := data[i*sz:]
			if tp == TypeFloat32 {
				floats[i] = float64(math.Float32frombits(order.Uint32(elem)))
			} else {
				floats[i] = math.Float64frombits(order.Uint64(elem))
			}
		}
		return FloatValue(floats...), nil
	case TypeURational64, TypeRational64:
		rats := make([]rational.Rational, count)
		for i := range rats {
			elem := data[i*sz : i*sz+sz]
			if tp == TypeURational64 {
				rats[i], err = rational.DecodeU64(order, elem)
			} else {
				rats[i], err = rational.DecodeI64(order, elem)
			}
			if err != nil {
				return Value{}, err
			}
		}
		return RationalValue(rats...), nil
	}
	ints := make([]int64, count)
	for i := range ints {
		elem := data[i*sz:]
		switch tp {
		case TypeUint8:
			ints[i] = int64(elem[0])
		case TypeUint16:
			ints[i] = int64(order.Uint16(elem))
		case TypeUint32:
			ints[i] = int64(order.Uint32(elem))
		case TypeInt8:
			ints[i] = int64(int8(elem[0]))
		case TypeInt16:
			ints[i] = int64(int16(order.Uint16(elem)))
		case TypeInt32:
			ints[i] = int64(int32(order.Uint32(elem)))
		}
	}
	return IntValue(ints...), nil
}
