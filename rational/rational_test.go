package rational

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		desc     string
		data     []byte
		order    binary.ByteOrder
		signed   bool
		num, den int64
	}{
		{
			desc:  "unsigned little endian",
			data:  []byte{72, 0, 0, 0, 1, 0, 0, 0},
			order: binary.LittleEndian,
			num:   72, den: 1,
		},
		{
			desc:  "unsigned big endian",
			data:  []byte{0, 0, 0x0b, 0xb8, 0, 0, 0, 0x64},
			order: binary.BigEndian,
			num:   3000, den: 100,
		},
		{
			desc:   "signed negative",
			data:   []byte{0xff, 0xff, 0xff, 0xfd, 0, 0, 0, 2},
			order:  binary.BigEndian,
			signed: true,
			num:    -3, den: 2,
		},
		{
			desc:  "zero denominator",
			data:  []byte{0, 0, 0, 0, 0, 0, 0, 0},
			order: binary.LittleEndian,
			num:   0, den: 0,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var (
				r   Rational
				err error
			)
			if tC.signed {
				r, err = DecodeI64(tC.order, tC.data)
			} else {
				r, err = DecodeU64(tC.order, tC.data)
			}
			if err != nil {
				t.Fatal(err)
			}
			num, den := r.Fraction()
			if num != tC.num || den != tC.den {
				t.Errorf("got %d/%d, want %d/%d", num, den, tC.num, tC.den)
			}
			if r.Defined() != (tC.den != 0) {
				t.Errorf("Defined()=%v for denominator %d", r.Defined(), den)
			}
		})
	}
}

func TestDecode_short(t *testing.T) {
	if _, err := DecodeU64(binary.LittleEndian, make([]byte, 7)); err == nil {
		t.Error("expected error for 7 byte buffer")
	}
	if _, err := DecodeI64(binary.LittleEndian, nil); err == nil {
		t.Error("expected error for nil buffer")
	}
}

func TestZeroValue(t *testing.T) {
	var u U64
	if !u.Defined() || u.Float() != 0 {
		t.Errorf("zero U64 should be 0/1, got %v", u)
	}
	var i I64
	if n, d := i.Fraction(); n != 0 || d != 1 {
		t.Errorf("zero I64 should be 0/1, got %d/%d", n, d)
	}
}

func TestFloat(t *testing.T) {
	if got := NewU64(4644, 100).Float(); math.Abs(got-46.44) > 1e-9 {
		t.Errorf("got %v", got)
	}
	if got := NewI64(-1, 4).Float(); got != -0.25 {
		t.Errorf("got %v", got)
	}
	if got := NewU64(1, 0).Float(); !math.IsNaN(got) {
		t.Errorf("undefined rational should be NaN, got %v", got)
	}
	if s := NewU64(3, 0).String(); s != "3/0" {
		t.Errorf("got %q", s)
	}
}
