package exif_test

import (
	"fmt"

	exif "github.com/soypat/exifmeta"
	"github.com/soypat/exifmeta/exifid"
	"github.com/soypat/exifmeta/internal/exiftest"
)

func ExampleExtract() {
	jpg := exiftest.JPEG(pittsburgh(exiftest.LittleEndian()).Bytes(), 16, 16)
	res := exif.Extract(jpg)
	if res.Warnings != nil {
		panic(res.Warnings)
	}
	md := res.Metadata
	fmt.Println("format:", res.Format)
	fmt.Println("size:", *md.Width, "x", *md.Height)
	fmt.Printf("position: %.3f, %.3f\n", md.GPS.Lat, md.GPS.Lon)
	fmt.Println("captured:", *md.CapturedAt)
	//Output:
	// format: jpeg
	// size: 800 x 600
	// position: 40.446, -79.982
	// captured: 2023:05:01 10:00:00
}

func ExampleTagSet_IFDs() {
	res := exif.Extract(pittsburgh(exiftest.BigEndian()).Bytes())
	for _, ifd := range res.Tags.IFDs() {
		fmt.Printf("%s:\n", ifd.Group.String())
		for _, tag := range ifd.Tags {
			if tag.ID == exifid.ExifOffset || tag.ID == exifid.GPSInfo {
				continue // Offsets depend on layout.
			}
			fmt.Println("\t" + tag.String())
		}
	}
	//Output:
	// IFD0:
	// 	Make (string): Acme
	// 	Model (string): Pinhole 1
	// 	Orientation (int): 1
	// 	XResolution (rational): 72/1
	// ExifIFD:
	// 	DateTimeOriginal (string): 2023:05:01 10:00:00
	// 	PixelXDimension (int): 800
	// 	PixelYDimension (int): 600
	// GPS:
	// 	GPSLatitudeRef (string): N
	// 	GPSLatitude (rational): 40/1 26/1 46/1
	// 	GPSLongitudeRef (string): W
	// 	GPSLongitude (rational): 79/1 58/1 56/1
}

func ExampleDecoder_Walk() {
	b := exiftest.LittleEndian()
	b.IFD0 = []exiftest.Field{
		exiftest.Long(exifid.ImageWidth, 800),
		exiftest.ASCII(exifid.Software, "exifmeta"),
	}
	raw := exiftest.JPEG(b.Bytes(), 8, 8)
	blk, _, err := exif.Locate(raw)
	if err != nil {
		panic(err)
	}
	var d exif.Decoder
	entries, err := d.Walk(raw, blk)
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		tag, err := exif.DecodeEntry(e, blk.Order, blk.Data(raw))
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s count=%d inline=%v: %v\n", tag.Name(), e.Count, e.IsInline(), tag.Value)
	}
	//Output:
	// ImageWidth count=1 inline=true: 800
	// Software count=9 inline=false: exifmeta
}
