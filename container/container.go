// Package container finds the TIFF structure holding EXIF metadata inside
// image files. It understands JPEG APP1 segments, bare TIFF files, HEIF/HEIC
// items, PNG eXIf chunks and WebP EXIF chunks.
package container

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/soypat/exifmeta/tiff"
)

// ErrNotFound is returned when no EXIF structure could be located. Callers
// should treat it as "no metadata" and not as a failure.
var ErrNotFound = errors.New("exif data not found")

// Format names the container the EXIF data was found in.
type Format string

const (
	FormatUnknown Format = ""
	FormatJPEG    Format = "jpeg"
	FormatTIFF    Format = "tiff"
	FormatHEIF    Format = "heif"
	FormatPNG     Format = "png"
	FormatWebP    Format = "webp"
)

// Range is a span of bytes in the scanned buffer.
type Range struct {
	Start  int
	Length int
}

// End returns the index one past the last byte of the range.
func (r Range) End() int { return r.Start + r.Length }

// Bytes returns the bytes of b covered by the range.
func (r Range) Bytes(b []byte) []byte { return b[r.Start:r.End()] }

// exifHeader precedes the TIFF structure in APP1 segments and some other containers.
var exifHeader = []byte("Exif\x00\x00")

// Sniff returns the container format of b judging by its leading bytes.
func Sniff(b []byte) Format {
	switch {
	case len(b) >= 3 && b[0] == 0xff && b[1] == markerSOI && b[2] == 0xff:
		return FormatJPEG
	case tiff.IsHeader(b):
		return FormatTIFF
	case bytes.HasPrefix(b, pngSignature):
		return FormatPNG
	case len(b) >= 12 && string(b[:4]) == "RIFF" && string(b[8:12]) == "WEBP":
		return FormatWebP
	case isHEIF(b):
		return FormatHEIF
	}
	return FormatUnknown
}

// Locate returns the range of the TIFF structure that holds the EXIF
// directories of b. The returned error is ErrNotFound when the container is
// not recognized, is malformed or holds no EXIF.
func Locate(b []byte) (Range, Format, error) {
	format := Sniff(b)
	var (
		r   Range
		err error
	)
	switch format {
	case FormatJPEG:
		r, err = locateJPEG(b)
	case FormatTIFF:
		r = Range{Start: 0, Length: len(b)}
	case FormatPNG:
		r, err = locatePNG(b)
	case FormatWebP:
		r, err = locateWebP(b)
	case FormatHEIF:
		r, err = locateHEIF(b)
	default:
		err = ErrNotFound
	}
	if err != nil {
		return Range{}, format, err
	}
	if r.Start < 0 || r.Length < 0 || r.End() > len(b) {
		return Range{}, format, ErrNotFound
	}
	return r, format, nil
}

// trimExifHeader advances r past a leading "Exif\0\0" signature, if present.
func trimExifHeader(b []byte, r Range) Range {
	if bytes.HasPrefix(r.Bytes(b), exifHeader) {
		r.Start += len(exifHeader)
		r.Length -= len(exifHeader)
	}
	return r
}

func be16(b []byte) int { return int(binary.BigEndian.Uint16(b)) }
