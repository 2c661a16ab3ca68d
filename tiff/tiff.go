// Package tiff reads the 8 byte header that starts every TIFF structure,
// including the one embedded in EXIF segments.
package tiff

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the size in bytes of a TIFF header.
const HeaderSize = 8

// Magic is the special marker that follows the byte order mark.
const Magic = 42

// ErrMalformedHeader is returned when the byte order mark or magic marker
// do not identify a TIFF structure.
var ErrMalformedHeader = errors.New("tiff: malformed header")

// Header is the decoded TIFF header.
type Header struct {
	Order binary.ByteOrder
	// Offset of IFD0 relative to the start of the TIFF structure.
	IFD0 uint32
}

// ReadHeader decodes the header at the start of b.
func ReadHeader(b []byte) (h Header, err error) {
	if len(b) < HeaderSize {
		return h, fmt.Errorf("%w: wanted %d header bytes, have %d", ErrMalformedHeader, HeaderSize, len(b))
	}
	order, ok := ByteOrder(b)
	if !ok {
		return h, ErrMalformedHeader
	}
	if order.Uint16(b[2:]) != Magic {
		return h, ErrMalformedHeader
	}
	h.Order = order
	h.IFD0 = order.Uint32(b[4:])
	return h, nil
}

// ByteOrder returns the byte order given by the "II" or "MM" mark at the start of b.
func ByteOrder(b []byte) (binary.ByteOrder, bool) {
	if len(b) < 2 {
		return nil, false
	}
	switch string(b[:2]) {
	case "II":
		return binary.LittleEndian, true
	case "MM":
		return binary.BigEndian, true
	}
	return nil, false
}

// IsHeader reports whether b starts with a complete TIFF header.
func IsHeader(b []byte) bool {
	_, err := ReadHeader(b)
	return err == nil
}
