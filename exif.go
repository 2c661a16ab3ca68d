package exif

import (
	"fmt"
	"strconv"
)

//go:generate go run ./cmd/codegen -in tags.txt -out tagdefinitions.go -ids exifid/exifid.go

// IFD or Image File Directory. It groups decoded tags by the directory they
// were found in.
type IFD struct {
	Tags  []Tag
	Group Group
}

// Tag represents an EXIF field, the directory it was found in and the
// contained data in the field.
type Tag struct {
	ID    ID
	Group Group
	Value Value
}

// String returns a human readable representation of the tag and its value.
func (t Tag) String() string {
	return fmt.Sprintf("%s (%s): %v", t.Name(), t.Value.Kind(), t.Value)
}

// Name returns the name of the tag within its directory.
func (t Tag) Name() string { return t.ID.Name(t.Group) }

// Type is the set of all types one may encounter when parsing EXIF data.
type Type uint16

const (
	_ = iota
	// TypeUint8 can be found as Byte type in the EXIF standard.
	TypeUint8
	// TypeString a.k.a. ASCII.
	TypeString
	TypeUint16
	TypeUint32
	// Unsigned rational type.
	TypeURational64
	TypeInt8
	TypeUndefined
	TypeInt16
	TypeInt32
	// Signed rational type.
	TypeRational64
	TypeFloat32
	// TypeFloat64 can be found as the double type in the EXIF standard.
	TypeFloat64
)

// typeIFD is used by some writers for sub-IFD pointers. It is stored like TypeUint32.
const typeIFD Type = 13

// Group represents the IFD group.
type Group uint8

const (
	GroupNone Group = iota
	// IFD of the main image. Usually contains ExifOffset and GPSInfo tags
	// which point to the Exif and GPS sub-IFDs.
	GroupIFD0
	// IFD of the thumbnail.
	GroupIFD1
	// IFD containing digicam's information such as shutter speed, focal length etc.
	GroupExif
	// IFD containing the GPS position of the capture.
	GroupGPS
	GroupInterop
)

// String returns a human readable representation of the IFD group. i.e: IFD0, IFD1, ExifIFD.
func (g Group) String() (s string) {
	switch g {
	case GroupIFD0:
		s = "IFD0"
	case GroupIFD1:
		s = "IFD1"
	case GroupExif:
		s = "ExifIFD"
	case GroupGPS:
		s = "GPS"
	case GroupInterop:
		s = "InteropIFD"
	default:
		s = "<unknown IFD group>"
	}
	return s
}

// Size returns the size in bytes of the type. Can be 1, 2, 4, or 8 for valid types. 0 otherwise.
func (tp Type) Size() (s uint8) {
	switch tp {
	case TypeInt8, TypeUint8, TypeString, TypeUndefined:
		s = 1
	case TypeUint16, TypeInt16:
		s = 2
	case TypeUint32, TypeInt32, TypeFloat32:
		s = 4
	case TypeRational64, TypeFloat64, TypeURational64:
		s = 8
	default:
		s = 0 // Invalid type.
	}
	return s
}

// String returns a Go-like representation of the type.
func (tp Type) String() (s string) {
	switch tp {
	case TypeUint8:
		s = "uint8"
	case TypeString:
		s = "string"
	case TypeUint16:
		s = "uint16"
	case TypeUint32:
		s = "uint32"
	case TypeUndefined:
		s = "undefined"
	case TypeInt16:
		s = "int16"
	case TypeInt32:
		s = "int32"
	case TypeInt8:
		s = "int8"
	case TypeFloat32:
		s = "float32"
	case TypeFloat64:
		s = "float64"
	case TypeURational64:
		s = "urational"
	case TypeRational64:
		s = "rational"
	default:
		s = "unknown(" + strconv.Itoa(int(tp)) + ")"
	}
	return s
}

// IsInt returns true if tp is a signed or unsigned integer type.
func (tp Type) IsInt() bool {
	return tp == TypeInt8 || tp == TypeInt16 || tp == TypeInt32 ||
		tp == TypeUint8 || tp == TypeUint16 || tp == TypeUint32
}

// IsFloat returns true if tp is of float32 (single) or float64 (double) type.
func (tp Type) IsFloat() bool {
	return tp == TypeFloat32 || tp == TypeFloat64
}

// IsRational returns true if tp is of unsigned or signed rational type.
func (tp Type) IsRational() bool {
	return tp == TypeRational64 || tp == TypeURational64
}

// ID is a tag identifier. IDs are only unique within a directory.
type ID uint16

// String returns a camel case human readable representation of the ID as
// found in the primary or Exif directories.
func (id ID) String() string {
	if def, ok := lookupDef(GroupIFD0, id); ok {
		return def.Name
	}
	if def, ok := lookupDef(GroupExif, id); ok {
		return def.Name
	}
	return "<unknown EXIF ID>"
}

// Name returns the name of the ID in the directory g. Unknown IDs are named
// by their directory and hexadecimal value, i.e: "ExifIFD.0xc4a5".
func (id ID) Name(g Group) string {
	if def, ok := lookupDef(g, id); ok {
		return def.Name
	}
	return fmt.Sprintf("%s.%#04x", g, uint16(id))
}

// Type returns the type of data the ID field is expected to contain in the
// directory g. Writers do not always respect it.
func (id ID) Type(g Group) Type {
	def, _ := lookupDef(g, id)
	return def.Type
}

type tagdef struct {
	Name string
	Type Type
}

func lookupDef(g Group, id ID) (tagdef, bool) {
	if g == GroupIFD1 {
		g = GroupIFD0 // Thumbnail directory shares the primary image's tags.
	}
	def, ok := tags[g][id]
	return def, ok
}
