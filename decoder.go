package exif

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/soypat/exifmeta/container"
	"github.com/soypat/exifmeta/exifid"
	"github.com/soypat/exifmeta/tiff"
)

// DefaultMaxDirs is the directory cap used when Decoder.MaxDirs is zero.
const DefaultMaxDirs = 8

// entrySize is the size of a directory entry: ID(2) type(2) count(4) value(4).
const entrySize = 12

// Block locates the TIFF structure of an EXIF segment inside the raw input.
// All value offsets in the structure are relative to Start.
type Block struct {
	Start  int
	Length int
	Order  binary.ByteOrder
}

// End returns the index one past the last byte of the block.
func (b Block) End() int { return b.Start + b.Length }

// Data returns the TIFF structure of raw. It returns nil if the block does
// not lie within raw.
func (b Block) Data(raw []byte) []byte {
	if b.Start < 0 || b.Length < 0 || b.End() > len(raw) || b.End() < b.Start {
		return nil
	}
	return raw[b.Start:b.End():b.End()]
}

// Locate finds the EXIF block in raw and the container format it was found in.
// The error is ErrNotFound when there is no EXIF block and ErrMalformedHeader
// when the block does not start with a valid TIFF byte order mark.
func Locate(raw []byte) (Block, container.Format, error) {
	r, format, err := container.Locate(raw)
	if err != nil {
		return Block{}, format, err
	}
	blk := Block{Start: r.Start, Length: r.Length}
	order, ok := tiff.ByteOrder(blk.Data(raw))
	if !ok {
		return Block{}, format, ErrMalformedHeader
	}
	blk.Order = order
	return blk, format, nil
}

// Entry is a directory entry as stored in the TIFF structure, before its
// value is interpreted.
type Entry struct {
	ID    ID
	Type  Type
	Count uint32
	// ValueOffset is the value field interpreted as an offset relative to
	// the start of the TIFF structure. It is meaningless for inline values.
	ValueOffset uint32
	// Group is the directory the entry was found in.
	Group Group
	// inline is the value field as stored.
	inline [4]byte
}

// Size returns the size in bytes of the entry's value. It is zero for
// unknown types.
func (e Entry) Size() uint64 { return uint64(e.Type.Size()) * uint64(e.Count) }

// IsInline reports whether the value is stored in the entry itself.
func (e Entry) IsInline() bool { return e.Size() <= 4 }

// pointer returns the offset of the sub-directory e points to within a TIFF
// structure of size bytes.
func (e Entry) pointer(size int) (uint32, error) {
	if (e.Type != TypeUint32 && e.Type != typeIFD) || e.Count != 1 {
		return 0, fmt.Errorf("sub-directory pointer of type %s and count %d", e.Type, e.Count)
	}
	if e.ValueOffset < tiff.HeaderSize || uint64(e.ValueOffset)+2 > uint64(size) {
		return 0, fmt.Errorf("sub-directory at %#x: %w", e.ValueOffset, ErrOffsetOutOfBounds)
	}
	return e.ValueOffset, nil
}

// Decoder walks the directories of an EXIF block. The zero value is ready to
// use and follows the primary, Exif and GPS directories. A Decoder is not
// modified by its methods so it may be shared between goroutines.
type Decoder struct {
	// MaxDirs caps the number of directories visited. Zero means DefaultMaxDirs.
	MaxDirs int
	// Thumbnail enables following IFD0's next link to the thumbnail directory (IFD1).
	Thumbnail bool
	// Interop enables following the interoperability pointer of the Exif directory.
	Interop bool
}

type pendingDir struct {
	offset uint32
	group  Group
}

// Walk returns the entries of the directories of the EXIF block blk in raw.
// Entries of IFD0 come first, followed by the sub-directories in the order
// they are referenced.
//
// A malformed TIFF header aborts the walk and returns ErrMalformedHeader.
// Entries and directories lying outside the block are skipped and reported
// in the returned error as *EntryError values, or *DirError values for
// directories not reached through a pointer tag. The remaining entries are
// still returned.
func (d *Decoder) Walk(raw []byte, blk Block) ([]Entry, error) {
	entries, warnings, err := d.walk(raw, blk)
	if err != nil {
		return nil, err
	}
	return entries, warnings.ErrorOrNil()
}

func (d *Decoder) walk(raw []byte, blk Block) (entries []Entry, errs *multierror.Error, err error) {
	data := blk.Data(raw)
	if data == nil {
		return nil, nil, fmt.Errorf("block [%d,%d) of %d byte input: %w", blk.Start, blk.End(), len(raw), ErrOffsetOutOfBounds)
	}
	hdr, err := tiff.ReadHeader(data)
	if err != nil {
		return nil, nil, err
	}
	maxDirs := d.MaxDirs
	if maxDirs <= 0 {
		maxDirs = DefaultMaxDirs
	}
	work := []pendingDir{{offset: hdr.IFD0, group: GroupIFD0}}
	visited := make(map[uint32]bool)
	for len(work) > 0 {
		dir := work[0]
		work = work[1:]
		if visited[dir.offset] {
			continue // Directory loop.
		}
		if len(visited) >= maxDirs {
			errs = multierror.Append(errs, fmt.Errorf("exif: directory limit of %d reached, skipping %s", maxDirs, dir.group))
			break
		}
		visited[dir.offset] = true
		dirEntries, next, err := decodeDir(data, dir.offset, hdr.Order, dir.group)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		for _, e := range dirEntries {
			entries = append(entries, e)
			sub, ok := d.subDir(e)
			if !ok {
				continue
			}
			off, err := e.pointer(len(data))
			if err != nil {
				errs = multierror.Append(errs, &EntryError{Group: e.Group, ID: e.ID, Err: err})
				continue
			}
			work = append(work, pendingDir{offset: off, group: sub})
		}
		if dir.group == GroupIFD0 && next != 0 && d.Thumbnail {
			work = append(work, pendingDir{offset: next, group: GroupIFD1})
		}
	}
	return entries, errs, nil
}

// subDir returns the directory group e points to, if e is a followed pointer.
func (d *Decoder) subDir(e Entry) (Group, bool) {
	switch {
	case e.Group == GroupIFD0 && e.ID == exifid.ExifOffset:
		return GroupExif, true
	case e.Group == GroupIFD0 && e.ID == exifid.GPSInfo:
		return GroupGPS, true
	case e.Group == GroupExif && e.ID == exifid.InteropOffset && d.Interop:
		return GroupInterop, true
	}
	return GroupNone, false
}

// Decode walks blk and decodes the value of every entry. Entries that fail to
// decode are left out of the returned TagSet and reported in the error.
// Entries of unknown type are kept with the unsupported Value.
// Like Walk, only a malformed header or a block outside raw returns no tags.
func (d *Decoder) Decode(raw []byte, blk Block) (TagSet, error) {
	entries, errs, err := d.walk(raw, blk)
	if err != nil {
		return nil, err
	}
	order := blk.Order
	if order == nil {
		order, _ = tiff.ByteOrder(blk.Data(raw))
	}
	data := blk.Data(raw)
	tags := make(TagSet, 0, len(entries))
	for _, e := range entries {
		tag, err := DecodeEntry(e, order, data)
		if err != nil {
			errs = multierror.Append(errs, err)
			if !errors.Is(err, ErrUnsupportedType) {
				continue
			}
		}
		tags = append(tags, tag)
	}
	return tags, errs.ErrorOrNil()
}

// decodeDir reads the directory at offset. Entries whose values lie outside
// data are skipped and reported in the returned error.
func decodeDir(data []byte, offset uint32, order binary.ByteOrder, group Group) (entries []Entry, next uint32, err error) {
	if uint64(offset)+2 > uint64(len(data)) || offset < tiff.HeaderSize {
		return nil, 0, &DirError{Group: group, Offset: offset, Err: ErrOffsetOutOfBounds}
	}
	var errs *multierror.Error
	nTags := int(order.Uint16(data[offset:]))
	start := int(offset) + 2
	entries = make([]Entry, 0, nTags)
	for i := 0; i < nTags; i++ {
		pos := start + i*entrySize
		if pos+entrySize > len(data) {
			errs = multierror.Append(errs, &DirError{Group: group, Offset: offset, Err: fmt.Errorf("truncated after %d of %d entries: %w", i, nTags, ErrOffsetOutOfBounds)})
			return entries, 0, errs.ErrorOrNil()
		}
		e := decodeTag(data[pos:pos+entrySize], order, group)
		if !e.IsInline() && uint64(e.ValueOffset)+e.Size() > uint64(len(data)) {
			errs = multierror.Append(errs, &EntryError{Group: group, ID: e.ID, Err: fmt.Errorf("%d byte value at %#x: %w", e.Size(), e.ValueOffset, ErrOffsetOutOfBounds)})
			continue
		}
		entries = append(entries, e)
	}
	link := start + nTags*entrySize
	if link+4 <= len(data) {
		next = order.Uint32(data[link:])
	}
	return entries, next, errs.ErrorOrNil()
}

func decodeTag(b []byte, order binary.ByteOrder, group Group) (e Entry) {
	e.ID = ID(order.Uint16(b[0:]))
	e.Type = Type(order.Uint16(b[2:]))
	e.Count = order.Uint32(b[4:])
	copy(e.inline[:], b[8:12])
	e.ValueOffset = order.Uint32(b[8:])
	e.Group = group
	return e
}

// DecodeEntry interprets the value of e. tiffData is the TIFF structure e was
// read from, against which value offsets are resolved. Errors are of type
// *EntryError. A Tag holding the unsupported Value is returned along with
// ErrUnsupportedType for unknown field types.
func DecodeEntry(e Entry, order binary.ByteOrder, tiffData []byte) (Tag, error) {
	tag := Tag{ID: e.ID, Group: e.Group}
	if e.Type == typeIFD {
		e.Type = TypeUint32
	}
	if e.Type.Size() == 0 {
		return tag, &EntryError{Group: e.Group, ID: e.ID, Err: fmt.Errorf("%w %s", ErrUnsupportedType, e.Type)}
	}
	var data []byte
	if e.IsInline() {
		data = e.inline[:e.Size()]
	} else {
		end := uint64(e.ValueOffset) + e.Size()
		if end > uint64(len(tiffData)) {
			return tag, &EntryError{Group: e.Group, ID: e.ID, Err: fmt.Errorf("%d byte value at %#x: %w", e.Size(), e.ValueOffset, ErrOffsetOutOfBounds)}
		}
		data = tiffData[e.ValueOffset:end]
	}
	v, err := DecodeTypeData(e.Type, order, data)
	if err != nil {
		return tag, &EntryError{Group: e.Group, ID: e.ID, Err: err}
	}
	tag.Value = v
	return tag, nil
}
