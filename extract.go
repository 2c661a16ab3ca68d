package exif

import (
	"errors"

	"github.com/soypat/exifmeta/container"
)

// Result is the outcome of extracting EXIF metadata from an image.
type Result struct {
	Metadata Metadata
	// Tags holds every decoded tag. It is empty when the image has no EXIF.
	Tags TagSet
	// Format is the container the image was recognized as.
	Format container.Format
	// Warnings collects errors of entries and directories that were skipped,
	// or of a malformed EXIF block. Images without EXIF carry no warning.
	Warnings error
}

// Extract decodes the EXIF metadata of an image held in data with a zero
// Decoder. It never fails: images without EXIF or with a malformed EXIF block
// return an empty Result. data is not retained.
func Extract(data []byte) Result {
	var d Decoder
	return d.Extract(data)
}

// Extract decodes the EXIF metadata of an image held in data. See Extract.
func (d *Decoder) Extract(data []byte) (res Result) {
	blk, format, err := Locate(data)
	res.Format = format
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			res.Warnings = err
		}
		return res
	}
	tags, err := d.Decode(data, blk)
	res.Warnings = err
	if len(tags) == 0 {
		return res
	}
	res.Tags = tags
	res.Metadata = Normalize(tags)
	return res
}
