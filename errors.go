package exif

import (
	"errors"
	"fmt"

	"github.com/soypat/exifmeta/container"
	"github.com/soypat/exifmeta/tiff"
)

var (
	// ErrNotFound is returned when the input holds no recognizable EXIF block.
	ErrNotFound = container.ErrNotFound
	// ErrMalformedHeader is returned when the TIFF header of an EXIF block is invalid.
	ErrMalformedHeader = tiff.ErrMalformedHeader
	// ErrOffsetOutOfBounds is wrapped by entry and directory errors of
	// directories or values that lie outside the EXIF block.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")
	// ErrUnsupportedType is returned when decoding a field of an unknown TIFF type.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// EntryError describes a failure scoped to one directory entry. An entry
// error never aborts a directory walk: the entry is skipped.
type EntryError struct {
	Group Group
	ID    ID
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("exif: %s: %v", e.ID.Name(e.Group), e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// DirError describes a directory that could not be read in full. Entries of
// the directory read before the failure are kept.
type DirError struct {
	Group  Group
	Offset uint32
	Err    error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("exif: %s directory at %#x: %v", e.Group, e.Offset, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }
