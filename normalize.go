package exif

import (
	"math"
	"strings"

	"github.com/soypat/exifmeta/exifid"
)

// GPS is a position in decimal degrees. South latitudes and west longitudes
// are negative.
type GPS struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Metadata is the application-facing subset of EXIF. Absent or invalid
// fields are nil.
type Metadata struct {
	Width  *int `json:"width"`
	Height *int `json:"height"`
	GPS    *GPS `json:"gps"`
	// CapturedAt is the capture timestamp exactly as stored,
	// usually "YYYY:MM:DD HH:MM:SS".
	CapturedAt *string `json:"capturedAt"`
}

// Normalize derives Metadata from decoded tags.
//   - Width is PixelXDimension of the Exif directory, else ImageWidth of IFD0.
//   - Height is PixelYDimension of the Exif directory, else ImageHeight of IFD0.
//   - GPS is set only when latitude, longitude and both references are present
//     and valid in the GPS directory.
//   - CapturedAt is DateTimeOriginal, else CreateDate.
func Normalize(tags TagSet) Metadata {
	var md Metadata
	md.Width = dimension(tags, exifid.PixelXDimension, exifid.ImageWidth)
	md.Height = dimension(tags, exifid.PixelYDimension, exifid.ImageHeight)
	md.GPS = position(tags)
	for _, id := range []ID{exifid.DateTimeOriginal, exifid.CreateDate} {
		if t, ok := tags.Find(id, GroupExif, GroupIFD0); ok {
			if s, ok := t.Value.Text(); ok && s != "" {
				md.CapturedAt = &s
				break
			}
		}
	}
	return md
}

func dimension(tags TagSet, exifID, ifd0ID ID) *int {
	if n, ok := positiveInt(tags.Lookup(GroupExif, exifID)); ok {
		return &n
	}
	if n, ok := positiveInt(tags.Lookup(GroupIFD0, ifd0ID)); ok {
		return &n
	}
	return nil
}

func positiveInt(v Value, found bool) (int, bool) {
	if !found {
		return 0, false
	}
	n, ok := v.Int(0)
	if !ok || n <= 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func position(tags TagSet) *GPS {
	lat, ok := coordinate(tags, exifid.GPSLatitudeRef, exifid.GPSLatitude, "N", "S", 90)
	if !ok {
		return nil
	}
	lon, ok := coordinate(tags, exifid.GPSLongitudeRef, exifid.GPSLongitude, "E", "W", 180)
	if !ok {
		return nil
	}
	return &GPS{Lat: lat, Lon: lon}
}

// coordinate converts a degrees, minutes, seconds rational triplet and its
// hemisphere reference to signed decimal degrees. Minutes and seconds may be
// omitted.
func coordinate(tags TagSet, refID, dmsID ID, pos, neg string, limit float64) (float64, bool) {
	refv, ok := tags.Lookup(GroupGPS, refID)
	if !ok {
		return 0, false
	}
	ref, _ := refv.Text()
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref != pos && ref != neg {
		return 0, false
	}
	dmsv, ok := tags.Lookup(GroupGPS, dmsID)
	if !ok {
		return 0, false
	}
	dms := dmsv.Rationals()
	if len(dms) == 0 || len(dms) > 3 {
		return 0, false
	}
	var deg float64
	scale := 1.0
	for _, r := range dms {
		if !r.Defined() {
			return 0, false
		}
		deg += r.Float() / scale
		scale *= 60
	}
	if ref == neg {
		deg = -deg
	}
	if math.IsNaN(deg) || math.Abs(deg) > limit {
		return 0, false
	}
	return deg, true
}
