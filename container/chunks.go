package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"go4.org/media/heif"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// locatePNG returns the payload of the eXIf chunk.
func locatePNG(b []byte) (Range, error) {
	i := len(pngSignature)
	// Chunk: length(4) type(4) data(length) crc(4).
	for i+8 <= len(b) {
		length := int(binary.BigEndian.Uint32(b[i:]))
		typ := string(b[i+4 : i+8])
		start := i + 8
		if length < 0 || start+length+4 > len(b) || start+length+4 < start {
			return Range{}, ErrNotFound
		}
		switch typ {
		case "eXIf":
			return trimExifHeader(b, Range{Start: start, Length: length}), nil
		case "IDAT", "IEND":
			// eXIf must precede image data.
			return Range{}, ErrNotFound
		}
		i = start + length + 4
	}
	return Range{}, ErrNotFound
}

// locateWebP returns the payload of the RIFF EXIF chunk.
func locateWebP(b []byte) (Range, error) {
	i := 12 // "RIFF" size "WEBP".
	for i+8 <= len(b) {
		fourcc := string(b[i : i+4])
		length := int(binary.LittleEndian.Uint32(b[i+4:]))
		start := i + 8
		if length < 0 || start+length > len(b) || start+length < start {
			return Range{}, ErrNotFound
		}
		if fourcc == "EXIF" {
			return trimExifHeader(b, Range{Start: start, Length: length}), nil
		}
		i = start + length + length&1 // Chunks are padded to even sizes.
	}
	return Range{}, ErrNotFound
}

var heifBrands = []string{"heic", "heix", "heim", "heis", "hevc", "mif1", "msf1", "avif"}

func isHEIF(b []byte) bool {
	if len(b) < 12 || string(b[4:8]) != "ftyp" {
		return false
	}
	brand := string(b[8:12])
	for _, want := range heifBrands {
		if brand == want {
			return true
		}
	}
	return false
}

// locateHEIF uses the HEIF item tables to find the EXIF item and maps its
// payload back onto b.
func locateHEIF(b []byte) (r Range, err error) {
	defer func() {
		// The box parser is not hardened against hostile item tables.
		if rec := recover(); rec != nil {
			r, err = Range{}, fmt.Errorf("%w: heif: %v", ErrNotFound, rec)
		}
	}()
	f := heif.Open(readerAt(b))
	ex, err := f.EXIF()
	if err != nil {
		return Range{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if bytes.HasPrefix(ex, exifHeader) {
		ex = ex[len(exifHeader):]
	}
	if len(ex) == 0 {
		return Range{}, ErrNotFound
	}
	idx := bytes.Index(b, ex)
	if idx < 0 {
		return Range{}, ErrNotFound
	}
	return Range{Start: idx, Length: len(ex)}, nil
}

func readerAt(b []byte) io.ReaderAt { return bytes.NewReader(b) }
