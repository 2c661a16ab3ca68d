package exif

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soypat/exifmeta/rational"
)

func TestDecodeTypeData_integers(t *testing.T) {
	testCases := []struct {
		desc     string
		data     []byte
		tp       Type
		order    binary.ByteOrder
		expected []int64
	}{
		{
			desc:     "int8",
			data:     []byte{0x7f},
			tp:       TypeInt8,
			order:    binary.LittleEndian,
			expected: []int64{0x7f},
		},
		{
			desc:     "negative int8",
			data:     []byte{0xff},
			tp:       TypeInt8,
			order:    binary.LittleEndian,
			expected: []int64{-1},
		},
		{
			desc:     "byte",
			data:     []byte{0x7f},
			tp:       TypeUint8,
			order:    binary.LittleEndian,
			expected: []int64{0x7f},
		},
		{
			desc:     "uint32",
			data:     []byte{0xfe, 0xed, 0xbe, 0xad},
			tp:       TypeUint32,
			order:    binary.BigEndian,
			expected: []int64{0xfeedbead},
		},
		{
			desc:     "uint16 list",
			data:     []byte{0x20, 0x03, 0x58, 0x02},
			tp:       TypeUint16,
			order:    binary.LittleEndian,
			expected: []int64{800, 600},
		},
		{
			desc:     "int32",
			data:     []byte{0xff, 0xff, 0xff, 0xfe},
			tp:       TypeInt32,
			order:    binary.BigEndian,
			expected: []int64{-2},
		},
		{
			desc:     "int16",
			data:     []byte{0x00, 0x80},
			tp:       TypeInt16,
			order:    binary.LittleEndian,
			expected: []int64{math.MinInt16},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			v, err := DecodeTypeData(tC.tp, tC.order, tC.data)
			if err != nil {
				t.Fatal(err)
			}
			if v.Kind() != KindInt {
				t.Fatalf("want int kind, got %s", v.Kind())
			}
			if diff := cmp.Diff(tC.expected, v.Ints()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeTypeData_kinds(t *testing.T) {
	le := binary.LittleEndian
	testCases := []struct {
		desc     string
		data     []byte
		tp       Type
		expected Value
	}{
		{
			desc:     "ascii trimmed at NUL",
			data:     []byte("Canon\x00\x00\x00"),
			tp:       TypeString,
			expected: StringValue("Canon"),
		},
		{
			desc:     "ascii without NUL",
			data:     []byte("ab"),
			tp:       TypeString,
			expected: StringValue("ab"),
		},
		{
			desc:     "undefined bytes",
			data:     []byte("0230"),
			tp:       TypeUndefined,
			expected: BytesValue([]byte("0230")),
		},
		{
			desc:     "urational list",
			data:     []byte{40, 0, 0, 0, 1, 0, 0, 0, 26, 0, 0, 0, 1, 0, 0, 0},
			tp:       TypeURational64,
			expected: RationalValue(rational.NewU64(40, 1), rational.NewU64(26, 1)),
		},
		{
			desc:     "srational",
			data:     []byte{0xfd, 0xff, 0xff, 0xff, 3, 0, 0, 0},
			tp:       TypeRational64,
			expected: RationalValue(rational.NewI64(-3, 3)),
		},
		{
			desc:     "single zero denominator rational",
			data:     []byte{5, 0, 0, 0, 0, 0, 0, 0},
			tp:       TypeURational64,
			expected: Undefined(),
		},
		{
			desc:     "zero denominator kept inside list",
			data:     []byte{1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			tp:       TypeURational64,
			expected: RationalValue(rational.NewU64(1, 1), rational.NewU64(0, 0)),
		},
		{
			desc:     "float32",
			data:     []byte{0, 0, 0xc0, 0x3f},
			tp:       TypeFloat32,
			expected: FloatValue(1.5),
		},
		{
			desc:     "float64",
			data:     []byte{0, 0, 0, 0, 0, 0, 0x04, 0xc0},
			tp:       TypeFloat64,
			expected: FloatValue(-2.5),
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			v, err := DecodeTypeData(tC.tp, le, tC.data)
			if err != nil {
				t.Fatal(err)
			}
			if !v.Equal(tC.expected) {
				t.Errorf("got %s %v, want %s %v", v.Kind(), v, tC.expected.Kind(), tC.expected)
			}
		})
	}
}

func TestDecodeTypeData_errors(t *testing.T) {
	v, err := DecodeTypeData(Type(0x55), binary.LittleEndian, []byte{1, 2})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("want ErrUnsupportedType, got %v", err)
	}
	if v.Kind() != KindUnsupported {
		t.Errorf("want unsupported kind, got %s", v.Kind())
	}
	if _, err := DecodeTypeData(TypeUint32, binary.LittleEndian, []byte{1, 2, 3}); err == nil {
		t.Error("expected error for 3 byte uint32")
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	testCases := []struct {
		v    Value
		want string
	}{
		{IntValue(800), `800`},
		{IntValue(2, 2, 0, 0), `[2,2,0,0]`},
		{StringValue("2023:05:01 10:00:00"), `"2023:05:01 10:00:00"`},
		{RationalValue(rational.NewU64(72, 1)), `[72,1]`},
		{RationalValue(rational.NewU64(40, 1), rational.NewU64(2646, 100)), `[[40,1],[2646,100]]`},
		{RationalValue(rational.NewI64(1, 1), rational.NewI64(1, 0)), `[[1,1],null]`},
		{RationalValue(rational.NewU64(40, 1), rational.NewU64(26, 1), rational.NewU64(0, 0)), `[[40,1],[26,1],null]`},
		{BytesValue([]byte{0, 2, 3, 0}), `[0,2,3,0]`},
		{FloatValue(math.NaN()), `null`},
		{Undefined(), `null`},
		{Value{}, `null`},
	}
	for _, tC := range testCases {
		t.Run(tC.v.Kind().String(), func(t *testing.T) {
			b, err := json.Marshal(tC.v)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tC.want {
				t.Errorf("got %s, want %s", b, tC.want)
			}
		})
	}
}

func TestValue_Number(t *testing.T) {
	v := RationalValue(rational.NewU64(1, 2), rational.NewU64(1, 0))
	if n, ok := v.Number(0); !ok || n != 0.5 {
		t.Errorf("got %v %v", n, ok)
	}
	if _, ok := v.Number(1); ok {
		t.Error("undefined rational reported as number")
	}
	if _, ok := StringValue("12").Number(0); ok {
		t.Error("string reported as number")
	}
	if n, ok := IntValue(3).Number(0); !ok || n != 3 {
		t.Errorf("got %v %v", n, ok)
	}
}

func TestTypeString(t *testing.T) {
	for tp, want := range map[Type]string{
		TypeURational64: "urational",
		TypeRational64:  "rational",
		TypeUndefined:   "undefined",
		Type(99):        "unknown(99)",
	} {
		if got := tp.String(); got != want {
			t.Errorf("%d: got %q, want %q", tp, got, want)
		}
	}
}

func TestIDName(t *testing.T) {
	if got := ID(0x0002).Name(GroupGPS); got != "GPSLatitude" {
		t.Errorf("got %q", got)
	}
	if got := ID(0x0100).Name(GroupIFD1); got != "ImageWidth" {
		t.Errorf("thumbnail directory should share IFD0 names, got %q", got)
	}
	if got := ID(0xc4a5).Name(GroupExif); got != "ExifIFD.0xc4a5" {
		t.Errorf("got %q", got)
	}
	if got := ID(0x9003).String(); got != "DateTimeOriginal" {
		t.Errorf("got %q", got)
	}
}
