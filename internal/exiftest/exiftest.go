// Package exiftest builds synthetic EXIF structures and images carrying
// them for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
)

// TIFF field types.
const (
	TypeByte      = 1
	TypeASCII     = 2
	TypeShort     = 3
	TypeLong      = 4
	TypeRational  = 5
	TypeUndefined = 7
	TypeSLong     = 9
	TypeSRational = 10
	TypeDouble    = 12
)

// Pointer tag IDs inserted automatically by the Builder.
const (
	tagExifOffset      = 0x8769
	tagGPSInfo         = 0x8825
	tagInteropOffset   = 0xa005
	tagThumbnailOffset = 0x0201
	tagThumbnailLength = 0x0202
)

// Field is a directory entry to be encoded.
type Field struct {
	ID    uint16
	Type  uint16
	Count uint32
	// encode returns the value bytes in the given order.
	encode func(order binary.ByteOrder) []byte
	// offset, when set, replaces the value offset of an out-of-line value.
	offset *uint32
}

// Long returns a field of unsigned 32 bit integers.
func Long(id uint16, v ...uint32) Field {
	return Field{ID: id, Type: TypeLong, Count: uint32(len(v)), encode: func(o binary.ByteOrder) []byte {
		b := make([]byte, 4*len(v))
		for i, n := range v {
			o.PutUint32(b[4*i:], n)
		}
		return b
	}}
}

// SLong returns a field of signed 32 bit integers.
func SLong(id uint16, v ...int32) Field {
	f := Long(id)
	f.Type, f.Count = TypeSLong, uint32(len(v))
	f.encode = func(o binary.ByteOrder) []byte {
		b := make([]byte, 4*len(v))
		for i, n := range v {
			o.PutUint32(b[4*i:], uint32(n))
		}
		return b
	}
	return f
}

// Short returns a field of unsigned 16 bit integers.
func Short(id uint16, v ...uint16) Field {
	return Field{ID: id, Type: TypeShort, Count: uint32(len(v)), encode: func(o binary.ByteOrder) []byte {
		b := make([]byte, 2*len(v))
		for i, n := range v {
			o.PutUint16(b[2*i:], n)
		}
		return b
	}}
}

// ASCII returns a NUL terminated string field.
func ASCII(id uint16, s string) Field {
	return Raw(id, TypeASCII, uint32(len(s)+1), append([]byte(s), 0))
}

// Rational returns an unsigned rational field from numerator, denominator pairs.
func Rational(id uint16, pairs ...uint32) Field {
	f := Long(id, pairs...)
	f.Type, f.Count = TypeRational, uint32(len(pairs)/2)
	return f
}

// SRational returns a signed rational field from numerator, denominator pairs.
func SRational(id uint16, pairs ...int32) Field {
	f := SLong(id, pairs...)
	f.Type, f.Count = TypeSRational, uint32(len(pairs)/2)
	return f
}

// Undefined returns a field of opaque bytes.
func Undefined(id uint16, b []byte) Field {
	return Raw(id, TypeUndefined, uint32(len(b)), b)
}

// Raw returns a field whose value bytes are written verbatim regardless of
// byte order. Count and type need not agree with len(data).
func Raw(id, typ uint16, count uint32, data []byte) Field {
	return Field{ID: id, Type: typ, Count: count, encode: func(binary.ByteOrder) []byte { return data }}
}

// AtOffset returns f with its value offset replaced by off. The value bytes
// are not written. Only meaningful for values larger than 4 bytes.
func AtOffset(f Field, off uint32) Field {
	f.offset = &off
	return f
}

// Builder lays out a TIFF structure: header, then the directories in the
// order IFD0, Exif, GPS, Interop, IFD1, then the out-of-line values.
// Pointer tags are added for non-empty sub-directories.
type Builder struct {
	Order   binary.ByteOrder
	IFD0    []Field
	Exif    []Field
	GPS     []Field
	Interop []Field
	IFD1    []Field
	// Thumbnail, if set, is stored in the value area and referenced from IFD1.
	Thumbnail []byte
	// IFD0Next, if non-zero, replaces IFD0's next link.
	IFD0Next uint32
}

// LittleEndian returns a Builder with Intel byte order.
func LittleEndian() *Builder { return &Builder{Order: binary.LittleEndian} }

// BigEndian returns a Builder with Motorola byte order.
func BigEndian() *Builder { return &Builder{Order: binary.BigEndian} }

// Bytes encodes the TIFF structure.
func (b *Builder) Bytes() []byte {
	order := b.Order
	if order == nil {
		order = binary.LittleEndian
	}
	ifd0 := append([]Field(nil), b.IFD0...)
	exif := append([]Field(nil), b.Exif...)
	ifd1 := append([]Field(nil), b.IFD1...)
	thumbIdx := -1
	if len(b.Thumbnail) > 0 {
		thumbIdx = len(ifd1)
		ifd1 = append(ifd1, Long(tagThumbnailOffset, 0), Long(tagThumbnailLength, uint32(len(b.Thumbnail))))
	}
	// Pointer placeholders, values patched once directory offsets are known.
	var exifPtr, gpsPtr, interopPtr = -1, -1, -1
	if len(exif) > 0 || len(b.Interop) > 0 {
		exifPtr = len(ifd0)
		ifd0 = append(ifd0, Long(tagExifOffset, 0))
	}
	if len(b.GPS) > 0 {
		gpsPtr = len(ifd0)
		ifd0 = append(ifd0, Long(tagGPSInfo, 0))
	}
	if len(b.Interop) > 0 {
		interopPtr = len(exif)
		exif = append(exif, Long(tagInteropOffset, 0))
	}
	dirs := [][]Field{ifd0, exif, b.GPS, b.Interop, ifd1}
	offsets := make([]uint32, len(dirs))
	pos := uint32(8)
	for i, d := range dirs {
		if len(d) == 0 {
			continue
		}
		offsets[i] = pos
		pos += 2 + 12*uint32(len(d)) + 4
	}
	dataStart := pos
	if exifPtr >= 0 {
		ifd0[exifPtr] = Long(tagExifOffset, offsets[1])
	}
	if gpsPtr >= 0 {
		ifd0[gpsPtr] = Long(tagGPSInfo, offsets[2])
	}
	if interopPtr >= 0 {
		exif[interopPtr] = Long(tagInteropOffset, offsets[3])
	}
	dirs[0], dirs[1] = ifd0, exif

	data := new(bytes.Buffer)
	if thumbIdx >= 0 {
		ifd1[thumbIdx] = Long(tagThumbnailOffset, dataStart)
		data.Write(b.Thumbnail)
		if data.Len()%2 == 1 {
			data.WriteByte(0)
		}
		dirs[4] = ifd1
	}

	out := make([]byte, dataStart)
	switch order {
	case binary.BigEndian:
		copy(out, "MM")
	default:
		copy(out, "II")
	}
	order.PutUint16(out[2:], 42)
	if offsets[0] != 0 {
		order.PutUint32(out[4:], offsets[0])
	}
	for i, d := range dirs {
		if len(d) == 0 {
			continue
		}
		p := offsets[i]
		order.PutUint16(out[p:], uint16(len(d)))
		p += 2
		for _, f := range d {
			order.PutUint16(out[p:], f.ID)
			order.PutUint16(out[p+2:], f.Type)
			order.PutUint32(out[p+4:], f.Count)
			val := f.encode(order)
			switch {
			case f.offset != nil:
				order.PutUint32(out[p+8:], *f.offset)
			case len(val) <= 4:
				copy(out[p+8:p+12], val)
			default:
				order.PutUint32(out[p+8:], dataStart+uint32(data.Len()))
				data.Write(val)
				if data.Len()%2 == 1 {
					data.WriteByte(0)
				}
			}
			p += 12
		}
		var next uint32
		if i == 0 {
			next = offsets[4]
			if b.IFD0Next != 0 {
				next = b.IFD0Next
			}
		}
		order.PutUint32(out[p:], next)
	}
	return append(out, data.Bytes()...)
}

// Image returns a w by h gradient image.
func Image(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

// JPEG returns a w by h JPEG image whose APP1 segment carries tiff.
// A nil tiff returns an image without EXIF.
func JPEG(tiff []byte, w, h int) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, Image(w, h), nil); err != nil {
		panic(err)
	}
	img := buf.Bytes()
	if tiff == nil {
		return img
	}
	payload := append([]byte("Exif\x00\x00"), tiff...)
	seg := []byte{0xff, 0xe1, 0, 0}
	binary.BigEndian.PutUint16(seg[2:], uint16(len(payload)+2))
	seg = append(seg, payload...)
	out := append([]byte{}, img[:2]...) // SOI.
	out = append(out, seg...)
	return append(out, img[2:]...)
}

// PNG returns a w by h PNG image with an eXIf chunk carrying tiff inserted
// before the image data. A nil tiff returns an image without EXIF.
func PNG(tiff []byte, w, h int) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Image(w, h)); err != nil {
		panic(err)
	}
	img := buf.Bytes()
	if tiff == nil {
		return img
	}
	// Signature(8) followed by the IHDR chunk: length(4) type(4) data(13) crc(4).
	ihdrEnd := 8 + 4 + 4 + 13 + 4
	out := append([]byte{}, img[:ihdrEnd]...)
	out = append(out, pngChunk("eXIf", tiff)...)
	return append(out, img[ihdrEnd:]...)
}

func pngChunk(typ string, data []byte) []byte {
	c := make([]byte, 8, 12+len(data))
	binary.BigEndian.PutUint32(c, uint32(len(data)))
	copy(c[4:], typ)
	c = append(c, data...)
	return binary.BigEndian.AppendUint32(c, crc32.ChecksumIEEE(c[4:]))
}

// WebP returns a RIFF WebP container holding an opaque VP8L chunk and an
// EXIF chunk carrying tiff.
func WebP(tiff []byte) []byte {
	var chunks []byte
	chunks = append(chunks, riffChunk("VP8L", []byte{0x2f, 0, 0, 0, 0})...)
	chunks = append(chunks, riffChunk("EXIF", tiff)...)
	out := []byte("RIFF\x00\x00\x00\x00WEBP")
	binary.LittleEndian.PutUint32(out[4:], uint32(4+len(chunks)))
	return append(out, chunks...)
}

func riffChunk(fourcc string, data []byte) []byte {
	c := []byte(fourcc + "\x00\x00\x00\x00")
	binary.LittleEndian.PutUint32(c[4:], uint32(len(data)))
	c = append(c, data...)
	if len(data)%2 == 1 {
		c = append(c, 0)
	}
	return c
}

// HEIF returns a minimal HEIC file with an Exif item carrying tiff. The
// file has no image items.
func HEIF(tiff []byte) []byte {
	ftyp := box("ftyp", []byte("heic\x00\x00\x00\x00mif1heic"))
	// Exif item payload: 4 byte offset to the TIFF header, then "Exif\0\0".
	item := append([]byte{0, 0, 0, 6}, "Exif\x00\x00"...)
	item = append(item, tiff...)

	infe := box("infe", append([]byte{2, 0, 0, 0, 0, 1, 0, 0}, "Exif\x00"...))
	iinf := box("iinf", append([]byte{0, 0, 0, 0, 0, 1}, infe...))
	// iloc version 0: offset and length sizes of 4 bytes, no base offset.
	ilocBody := []byte{0, 0, 0, 0, 0x44, 0x00, 0, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}
	binary.BigEndian.PutUint32(ilocBody[18:], uint32(len(item)))
	iloc := box("iloc", ilocBody)
	meta := box("meta", append(append([]byte{0, 0, 0, 0}, iinf...), iloc...))

	itemOffset := len(ftyp) + len(meta) + 8 // After the mdat box header.
	binary.BigEndian.PutUint32(meta[len(meta)-8:], uint32(itemOffset))

	out := append(ftyp, meta...)
	return append(out, box("mdat", item)...)
}

func box(typ string, body []byte) []byte {
	b := make([]byte, 8, 8+len(body))
	binary.BigEndian.PutUint32(b, uint32(8+len(body)))
	copy(b[4:], typ)
	return append(b, body...)
}
