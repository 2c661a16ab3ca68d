package container

import "bytes"

// JPEG marker second bytes. Every marker is preceded by 0xff.
const (
	markerSOI  = 0xd8
	markerEOI  = 0xd9
	markerSOS  = 0xda
	markerAPP1 = 0xe1
	markerTEM  = 0x01
	markerRST0 = 0xd0
	markerRST7 = 0xd7
)

// locateJPEG walks the marker segments that precede the scan data and returns
// the TIFF structure of the first APP1 segment carrying the EXIF signature.
func locateJPEG(b []byte) (Range, error) {
	i := 2 // Skip SOI.
	for i+2 <= len(b) {
		if b[i] != 0xff {
			return Range{}, ErrNotFound // Lost sync with segment structure.
		}
		marker := b[i+1]
		if marker == 0xff {
			i++ // Fill byte.
			continue
		}
		i += 2
		switch {
		case marker == markerSOS || marker == markerEOI:
			return Range{}, ErrNotFound
		case marker == markerTEM || marker == markerSOI ||
			(marker >= markerRST0 && marker <= markerRST7):
			continue // Standalone markers carry no length.
		}
		if i+2 > len(b) {
			break
		}
		// Segment length includes the two length bytes.
		segLen := be16(b[i:])
		if segLen < 2 || i+segLen > len(b) {
			return Range{}, ErrNotFound
		}
		payload := b[i+2 : i+segLen]
		if marker == markerAPP1 && bytes.HasPrefix(payload, exifHeader) {
			start := i + 2 + len(exifHeader)
			return Range{Start: start, Length: i + segLen - start}, nil
		}
		i += segLen
	}
	return Range{}, ErrNotFound
}
