package exif

import "github.com/soypat/exifmeta/exifid"

// TagSet holds decoded tags in the order their directories were walked.
type TagSet []Tag

// Lookup returns the value of the first tag with the given directory and ID.
func (ts TagSet) Lookup(g Group, id ID) (Value, bool) {
	for _, t := range ts {
		if t.Group == g && t.ID == id {
			return t.Value, true
		}
	}
	return Value{}, false
}

// Find returns the first tag with the ID id found in groups, trying groups
// in order. With no groups the first tag with a matching ID in any directory
// is returned.
func (ts TagSet) Find(id ID, groups ...Group) (Tag, bool) {
	if len(groups) == 0 {
		for _, t := range ts {
			if t.ID == id {
				return t, true
			}
		}
		return Tag{}, false
	}
	for _, g := range groups {
		for _, t := range ts {
			if t.Group == g && t.ID == id {
				return t, true
			}
		}
	}
	return Tag{}, false
}

// Map returns the tag values keyed by ID. When an ID repeats across
// directories the first occurrence wins. Thumbnail tags and values of
// unsupported type are left out.
func (ts TagSet) Map() map[ID]Value {
	m := make(map[ID]Value, len(ts))
	for _, t := range ts {
		if !mappable(t) {
			continue
		}
		if _, ok := m[t.ID]; !ok {
			m[t.ID] = t.Value
		}
	}
	return m
}

// Named returns the tag values keyed by their directory-aware names, the
// form in which raw EXIF is rendered as JSON. Like Map, thumbnail tags and
// unsupported values are left out and the first occurrence of a name wins.
func (ts TagSet) Named() map[string]Value {
	m := make(map[string]Value, len(ts))
	for _, t := range ts {
		if !mappable(t) {
			continue
		}
		name := t.Name()
		if _, ok := m[name]; !ok {
			m[name] = t.Value
		}
	}
	return m
}

func mappable(t Tag) bool {
	return t.Group != GroupIFD1 && t.Value.Kind() != KindUnsupported
}

// IFDs groups the tags by directory, in the order directories first appear.
func (ts TagSet) IFDs() []IFD {
	var ifds []IFD
	idx := make(map[Group]int)
	for _, t := range ts {
		i, ok := idx[t.Group]
		if !ok {
			i = len(ifds)
			idx[t.Group] = i
			ifds = append(ifds, IFD{Group: t.Group})
		}
		ifds[i].Tags = append(ifds[i].Tags, t)
	}
	return ifds
}

// Thumbnail returns the JPEG thumbnail referenced by the IFD1 tags of ts.
// tiffData is the TIFF structure the tags were decoded from. The tags must
// have been decoded with Decoder.Thumbnail set.
func (ts TagSet) Thumbnail(tiffData []byte) ([]byte, bool) {
	offv, ok := ts.Lookup(GroupIFD1, exifid.ThumbnailOffset)
	if !ok {
		return nil, false
	}
	lenv, ok := ts.Lookup(GroupIFD1, exifid.ThumbnailLength)
	if !ok {
		return nil, false
	}
	off, ok1 := offv.Int(0)
	n, ok2 := lenv.Int(0)
	if !ok1 || !ok2 || off <= 0 || n <= 0 || off+n > int64(len(tiffData)) {
		return nil, false
	}
	return tiffData[off : off+n], true
}
