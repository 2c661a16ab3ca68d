package container

import (
	"bytes"
	"errors"
	"testing"

	"github.com/soypat/exifmeta/internal/exiftest"
)

func TestLocate(t *testing.T) {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{exiftest.Long(0x0100, 800), exiftest.Long(0x0101, 600)}
	tiffData := b.Bytes()
	testCases := []struct {
		desc   string
		data   []byte
		format Format
	}{
		{desc: "jpeg", data: exiftest.JPEG(tiffData, 16, 8), format: FormatJPEG},
		{desc: "tiff", data: tiffData, format: FormatTIFF},
		{desc: "png", data: exiftest.PNG(tiffData, 4, 4), format: FormatPNG},
		{desc: "webp", data: exiftest.WebP(tiffData), format: FormatWebP},
		{desc: "heif", data: exiftest.HEIF(tiffData), format: FormatHEIF},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			r, format, err := Locate(tC.data)
			if err != nil {
				t.Fatal(err)
			}
			if format != tC.format {
				t.Errorf("format mismatch: got %q, want %q", format, tC.format)
			}
			if got := r.Bytes(tC.data); !bytes.Equal(got, tiffData) {
				t.Errorf("range [%d,%d) does not hold the TIFF structure", r.Start, r.End())
			}
		})
	}
}

func TestLocate_notFound(t *testing.T) {
	truncated := exiftest.JPEG(exiftest.LittleEndian().Bytes(), 8, 8)
	testCases := []struct {
		desc string
		data []byte
	}{
		{desc: "empty", data: nil},
		{desc: "text", data: []byte("definitely not an image")},
		{desc: "jpeg without exif", data: exiftest.JPEG(nil, 8, 8)},
		// APP1 segment claims more bytes than available.
		{desc: "truncated jpeg", data: truncated[:8]},
		{desc: "png without exif", data: exiftest.PNG(nil, 2, 2)[:33]},
		{desc: "heif without meta", data: []byte("\x00\x00\x00\x10ftypheic\x00\x00\x00\x00")},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			_, _, err := Locate(tC.data)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("want ErrNotFound, got %v", err)
			}
		})
	}
}

func TestLocateJPEG_skipsOtherSegments(t *testing.T) {
	tiffData := exiftest.LittleEndian().Bytes()
	img := exiftest.JPEG(tiffData, 8, 8)
	// Insert fill bytes, an APP0 segment and an APP1 segment holding XMP
	// before the EXIF segment.
	var prefix []byte
	prefix = append(prefix, 0xff, 0xd8, 0xff)
	prefix = append(prefix, 0xff, 0xe0, 0x00, 0x06, 'J', 'F', 'I', 'F')
	xmp := []byte("http://ns.adobe.com/xap/1.0/\x00")
	prefix = append(prefix, 0xff, 0xe1, 0x00, byte(len(xmp)+2))
	prefix = append(prefix, xmp...)
	data := append(prefix, img[2:]...)

	r, format, err := Locate(data)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatJPEG {
		t.Errorf("got format %q", format)
	}
	if !bytes.Equal(r.Bytes(data), tiffData) {
		t.Error("located range does not hold the TIFF structure")
	}
}

func TestSniff(t *testing.T) {
	if got := Sniff([]byte("GIF89a")); got != FormatUnknown {
		t.Errorf("gif sniffed as %q", got)
	}
	if got := Sniff([]byte("MM\x00\x2a\x00\x00\x00\x08")); got != FormatTIFF {
		t.Errorf("big endian tiff sniffed as %q", got)
	}
}
