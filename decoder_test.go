package exif

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/soypat/exifmeta/exifid"
	"github.com/soypat/exifmeta/internal/exiftest"
	"github.com/soypat/exifmeta/rational"
)

func tiffBlock(data []byte) Block {
	order := binary.ByteOrder(binary.LittleEndian)
	if data[0] == 'M' {
		order = binary.BigEndian
	}
	return Block{Start: 0, Length: len(data), Order: order}
}

func TestWalk_subDirectories(t *testing.T) {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{exiftest.ASCII(exifid.Make, "Acme")}
	b.Exif = []exiftest.Field{exiftest.Long(exifid.PixelXDimension, 800)}
	b.GPS = []exiftest.Field{exiftest.ASCII(exifid.GPSLatitudeRef, "N")}
	b.Interop = []exiftest.Field{exiftest.ASCII(exifid.InteropIndex, "R98")}
	data := b.Bytes()

	var d Decoder
	entries, err := d.Walk(data, tiffBlock(data))
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		g  Group
		id ID
	}{
		{GroupIFD0, exifid.Make},
		{GroupIFD0, exifid.ExifOffset},
		{GroupIFD0, exifid.GPSInfo},
		{GroupExif, exifid.PixelXDimension},
		{GroupExif, exifid.InteropOffset},
		{GroupGPS, exifid.GPSLatitudeRef},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i, e := range entries {
		if e.Group != want[i].g || e.ID != want[i].id {
			t.Errorf("entry %d: got %s %s, want %s %s", i, e.Group, e.ID.Name(e.Group), want[i].g, want[i].id.Name(want[i].g))
		}
	}

	d.Interop = true
	entries, err = d.Walk(data, tiffBlock(data))
	if err != nil {
		t.Fatal(err)
	}
	last := entries[len(entries)-1]
	if last.Group != GroupInterop || last.ID != exifid.InteropIndex {
		t.Errorf("interop directory not followed, last entry %s %s", last.Group, last.ID.Name(last.Group))
	}
}

func TestWalk_thumbnail(t *testing.T) {
	b := exiftest.BigEndian()
	b.IFD0 = []exiftest.Field{exiftest.Long(exifid.ImageWidth, 4000)}
	b.IFD1 = []exiftest.Field{exiftest.Long(exifid.ImageWidth, 160)}
	b.Thumbnail = []byte{0xff, 0xd8, 0xff, 0xd9}
	data := b.Bytes()

	var d Decoder
	tags, err := d.Decode(data, tiffBlock(data))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tags.Lookup(GroupIFD1, exifid.ImageWidth); ok {
		t.Error("thumbnail directory followed without Decoder.Thumbnail")
	}

	d.Thumbnail = true
	tags, err = d.Decode(data, tiffBlock(data))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := tags.Lookup(GroupIFD1, exifid.ImageWidth)
	if n, _ := v.Int(0); !ok || n != 160 {
		t.Errorf("thumbnail width: got %v", v)
	}
	thumb, ok := tags.Thumbnail(data)
	if !ok || string(thumb) != string(b.Thumbnail) {
		t.Errorf("thumbnail: got %x %v", thumb, ok)
	}
	// Primary directory stays authoritative for normalized values.
	if w := tags.Map()[exifid.ImageWidth]; !w.Equal(IntValue(4000)) {
		t.Errorf("map width: got %v", w)
	}
}

func TestWalk_loopAndCap(t *testing.T) {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{exiftest.Long(exifid.ImageWidth, 1)}
	b.IFD0Next = 8 // IFD0 links to itself.
	data := b.Bytes()

	d := Decoder{Thumbnail: true}
	entries, err := d.Walk(data, tiffBlock(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("self linked directory walked %d entries", len(entries))
	}

	b = exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{exiftest.Long(exifid.ImageWidth, 1)}
	b.Exif = []exiftest.Field{exiftest.Long(exifid.PixelXDimension, 2)}
	b.GPS = []exiftest.Field{exiftest.ASCII(exifid.GPSLatitudeRef, "S")}
	data = b.Bytes()
	d = Decoder{MaxDirs: 2}
	entries, err = d.Walk(data, tiffBlock(data))
	if err == nil {
		t.Error("expected directory limit warning")
	}
	for _, e := range entries {
		if e.Group == GroupGPS {
			t.Error("walked past directory limit")
		}
	}
}

func TestWalk_outOfBounds(t *testing.T) {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{
		exiftest.Long(exifid.ImageWidth, 800),
		exiftest.AtOffset(exiftest.ASCII(exifid.Make, "Out of range maker"), 0xfff0),
		exiftest.Long(exifid.ImageHeight, 600),
	}
	data := b.Bytes()

	var d Decoder
	tags, err := d.Decode(data, tiffBlock(data))
	if !errors.Is(err, ErrOffsetOutOfBounds) {
		t.Fatalf("want ErrOffsetOutOfBounds, got %v", err)
	}
	var entryErr *EntryError
	if !errors.As(err, &entryErr) || entryErr.ID != exifid.Make || entryErr.Group != GroupIFD0 {
		t.Errorf("want entry error for Make, got %#v", entryErr)
	}
	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) != 1 {
		t.Errorf("want 1 warning, got %d: %v", len(merr.Errors), err)
	}
	if len(tags) != 2 {
		t.Fatalf("want the 2 valid tags, got %v", tags)
	}
	if _, ok := tags.Lookup(GroupIFD0, exifid.Make); ok {
		t.Error("out of range entry decoded")
	}
}

func TestWalk_truncatedDirectory(t *testing.T) {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{exiftest.Short(exifid.Orientation, 6), exiftest.Short(exifid.ResolutionUnit, 2)}
	data := b.Bytes()
	data = data[:8+2+12+6] // Second entry cut short.

	var d Decoder
	entries, err := d.Walk(data, tiffBlock(data))
	if !errors.Is(err, ErrOffsetOutOfBounds) {
		t.Errorf("want ErrOffsetOutOfBounds, got %v", err)
	}
	if len(entries) != 1 || entries[0].ID != exifid.Orientation {
		t.Errorf("want the first entry only, got %v", entries)
	}
}

func TestWalk_malformedHeader(t *testing.T) {
	data := []byte("XX\x2a\x00\x08\x00\x00\x00")
	var d Decoder
	entries, err := d.Walk(data, Block{Length: len(data)})
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("want ErrMalformedHeader, got %v", err)
	}
	if entries != nil {
		t.Error("entries returned for malformed header")
	}
	_, err = d.Walk(data, Block{Start: 4, Length: len(data)})
	if !errors.Is(err, ErrOffsetOutOfBounds) {
		t.Errorf("block past end of input: got %v", err)
	}
}

func TestWalk_badPointer(t *testing.T) {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{
		exiftest.Short(exifid.ExifOffset, 0x40), // Pointers must be Long.
		exiftest.Long(exifid.GPSInfo, 0xffff),
	}
	data := b.Bytes()
	var d Decoder
	entries, err := d.Walk(data, tiffBlock(data))
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 2 {
		t.Fatalf("want 2 warnings, got %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("pointer entries should be kept, got %d", len(entries))
	}
	for i, want := range []ID{exifid.ExifOffset, exifid.GPSInfo} {
		var entryErr *EntryError
		if !errors.As(merr.Errors[i], &entryErr) || entryErr.Group != GroupIFD0 || entryErr.ID != want {
			t.Errorf("warning %d: want entry error for %s, got %v", i, want.Name(GroupIFD0), merr.Errors[i])
		}
	}
	if !errors.Is(merr.Errors[1], ErrOffsetOutOfBounds) {
		t.Errorf("want ErrOffsetOutOfBounds for GPSInfo, got %v", merr.Errors[1])
	}
	if msg := merr.Errors[1].Error(); !strings.Contains(msg, "GPSInfo") || strings.Contains(msg, "0x0000") {
		t.Errorf("warning should name the pointer tag: %q", msg)
	}
}

func TestWalk_thumbnailOutOfBounds(t *testing.T) {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{exiftest.Long(exifid.ImageWidth, 800)}
	b.IFD0Next = 0xfff0
	data := b.Bytes()
	d := Decoder{Thumbnail: true}
	entries, err := d.Walk(data, tiffBlock(data))
	var dirErr *DirError
	if !errors.As(err, &dirErr) || dirErr.Group != GroupIFD1 || dirErr.Offset != 0xfff0 {
		t.Fatalf("want directory error for IFD1, got %v", err)
	}
	if !errors.Is(err, ErrOffsetOutOfBounds) {
		t.Errorf("want ErrOffsetOutOfBounds, got %v", err)
	}
	if want := "exif: IFD1 directory at 0xfff0: offset out of bounds"; dirErr.Error() != want {
		t.Errorf("got %q, want %q", dirErr.Error(), want)
	}
	if len(entries) != 1 {
		t.Errorf("want the IFD0 entry, got %v", entries)
	}
}

func TestDecodeEntry(t *testing.T) {
	b := exiftest.BigEndian()
	b.IFD0 = []exiftest.Field{
		exiftest.Short(exifid.Orientation, 3),
		exiftest.Rational(exifid.XResolution, 72, 1),
		exiftest.ASCII(exifid.Make, "ABC"),
		exiftest.Raw(0x9999, 0x55, 1, []byte{1, 2, 3, 4}),
	}
	data := b.Bytes()
	var d Decoder
	entries, err := d.Walk(data, tiffBlock(data))
	if err != nil {
		t.Fatal(err)
	}
	want := []Value{IntValue(3), RationalValue(rational.NewU64(72, 1)), StringValue("ABC")}
	for i, w := range want {
		if !entries[i].IsInline() != (i == 1) {
			t.Errorf("entry %d inline mismatch", i)
		}
		tag, err := DecodeEntry(entries[i], binary.BigEndian, data)
		if err != nil {
			t.Fatal(err)
		}
		if !tag.Value.Equal(w) {
			t.Errorf("entry %d: got %v, want %v", i, tag.Value, w)
		}
	}
	tag, err := DecodeEntry(entries[3], binary.BigEndian, data)
	if !errors.Is(err, ErrUnsupportedType) || tag.Value.Kind() != KindUnsupported {
		t.Errorf("unknown type: got %v %v", tag.Value.Kind(), err)
	}
	// Value offsets are resolved against the given TIFF data.
	_, err = DecodeEntry(entries[1], binary.BigEndian, data[:20])
	if !errors.Is(err, ErrOffsetOutOfBounds) {
		t.Errorf("want ErrOffsetOutOfBounds, got %v", err)
	}
}
