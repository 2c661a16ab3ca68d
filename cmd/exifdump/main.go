// Command exifdump prints the EXIF metadata and tags of image files.
//
//	exifdump [-thumb dir] [-compare] [-interop] file...
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/sirupsen/logrus"
	exif "github.com/soypat/exifmeta"
)

var (
	flagThumb   = flag.String("thumb", "", "write embedded thumbnails to this directory")
	flagCompare = flag.Bool("compare", false, "cross check normalized fields against github.com/rwcarlsen/goexif")
	flagInterop = flag.Bool("interop", false, "follow the interoperability directory")
)

func main() {
	flag.Parse()
	log := logrus.New()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: exifdump [flags] file...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	failed := false
	for _, name := range flag.Args() {
		if err := dump(name); err != nil {
			log.WithError(err).WithField("file", name).Error("dump failed")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	d := exif.Decoder{Thumbnail: *flagThumb != "", Interop: *flagInterop}
	res := d.Extract(data)
	md, err := json.Marshal(res.Metadata)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s): %s\n", name, res.Format, md)
	if res.Warnings != nil {
		fmt.Printf("  warnings: %s\n", strings.ReplaceAll(res.Warnings.Error(), "\n", "\n  "))
	}
	for _, ifd := range res.Tags.IFDs() {
		fmt.Printf("  %s:\n", ifd.Group)
		for _, tag := range ifd.Tags {
			fmt.Printf("    %s\n", tag)
		}
	}

	if *flagThumb != "" {
		if err := writeThumbnail(name, data, res.Tags); err != nil {
			return err
		}
	}
	if *flagCompare {
		compare(data, res)
	}
	return nil
}

func writeThumbnail(name string, data []byte, tags exif.TagSet) error {
	blk, _, err := exif.Locate(data)
	if err != nil {
		return nil
	}
	thumb, ok := tags.Thumbnail(blk.Data(data))
	if !ok {
		return nil
	}
	out := filepath.Join(*flagThumb, strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))+".thumb.jpg")
	if err := os.WriteFile(out, thumb, 0o644); err != nil {
		return err
	}
	fmt.Printf("  thumbnail: %s (%d bytes)\n", out, len(thumb))
	return nil
}

func compare(data []byte, res exif.Result) {
	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("  goexif: %v\n", err)
		return
	}
	lat, lon, err := x.LatLong()
	switch {
	case err != nil && res.Metadata.GPS != nil:
		fmt.Printf("  goexif: no position (%v), have %+v\n", err, *res.Metadata.GPS)
	case err == nil && res.Metadata.GPS == nil:
		fmt.Printf("  goexif: position %v,%v, have none\n", lat, lon)
	case err == nil:
		fmt.Printf("  goexif: position %v,%v, have %v,%v\n", lat, lon, res.Metadata.GPS.Lat, res.Metadata.GPS.Lon)
	}
	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		s, _ := tag.StringVal()
		have := "<nil>"
		if res.Metadata.CapturedAt != nil {
			have = *res.Metadata.CapturedAt
		}
		fmt.Printf("  goexif: DateTimeOriginal %q, have %q\n", s, have)
	}
}
