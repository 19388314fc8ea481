// Package tiff extracts the vendor header tags from a baseline TIFF file.
//
// This is deliberately not a TIFF decoder: pixel data, compression and
// sub-IFDs are ignored. The only job is to walk IFD0 and pull out the
// ASCII text stored under the private vendor tags (34118 Zeiss SmartSEM,
// 34682 Thermo Fisher xT).
package tiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/semmeta/internal/binary"
	"github.com/simonhull/semmeta/internal/types"
)

// TIFF field types accepted for the header tags. All are byte-sized, so
// the value length equals the count.
const (
	typeByte      = 1
	typeASCII     = 2
	typeUndefined = 7
)

const entrySize = 12

// ExtractHeaders reads the TIFF's first image file directory and returns
// the raw header text of every vendor tag present, keyed by vendor.
//
// Entries stored under a vendor tag with an unexpected field type are
// skipped with a warning instead of failing the whole file. A file that
// is not a TIFF at all fails with a *types.UnsupportedFileError.
func ExtractHeaders(r io.ReaderAt, size int64, path string) (map[types.Vendor]string, []types.Warning, error) {
	sr := binary.NewSafeReader(r, size, path)

	order, err := byteOrder(sr)
	if err != nil {
		return nil, nil, err
	}

	magic, err := binary.ReadEndian[uint16](sr, 2, "TIFF magic number", order)
	if err != nil {
		return nil, nil, err
	}
	if magic != 42 {
		return nil, nil, &types.UnsupportedFileError{Path: path, Reason: fmt.Sprintf("bad TIFF magic number %d", magic)}
	}

	ifdOffset, err := binary.ReadEndian[uint32](sr, 4, "IFD0 offset", order)
	if err != nil {
		return nil, nil, err
	}

	return readIFD(sr, int64(ifdOffset), order)
}

func byteOrder(sr *binary.SafeReader) (binary.Endianness, error) {
	bom := make([]byte, 2)
	if err := sr.ReadAt(bom, 0, "TIFF byte-order mark"); err != nil {
		return 0, err
	}
	switch string(bom) {
	case "II":
		return binary.LittleEndian, nil
	case "MM":
		return binary.BigEndian, nil
	default:
		return 0, &types.UnsupportedFileError{Path: sr.Path(), Reason: "not a TIFF file (no II/MM byte-order mark)"}
	}
}

// readIFD walks the entries of one image file directory and collects the
// vendor tags.
func readIFD(sr *binary.SafeReader, offset int64, order binary.Endianness) (map[types.Vendor]string, []types.Warning, error) {
	count, err := binary.ReadEndian[uint16](sr, offset, "IFD entry count", order)
	if err != nil {
		return nil, nil, err
	}

	raws := make(map[types.Vendor]string)
	var warnings []types.Warning

	for i := 0; i < int(count); i++ {
		entry := offset + 2 + int64(i)*entrySize

		tag, err := binary.ReadEndian[uint16](sr, entry, "IFD tag", order)
		if err != nil {
			return nil, nil, err
		}
		vendor, ok := vendorForTag(tag)
		if !ok {
			continue
		}

		fieldType, err := binary.ReadEndian[uint16](sr, entry+2, "IFD field type", order)
		if err != nil {
			return nil, nil, err
		}
		if fieldType != typeASCII && fieldType != typeByte && fieldType != typeUndefined {
			warnings = append(warnings, types.Warning{
				Stage:   "container",
				Message: fmt.Sprintf("tag %d has unexpected field type %d, skipping", tag, fieldType),
			})
			continue
		}

		valueLen, err := binary.ReadEndian[uint32](sr, entry+4, "IFD value count", order)
		if err != nil {
			return nil, nil, err
		}
		// A corrupt count can claim up to 4 GiB; reject before allocating.
		if int64(valueLen) > sr.Size() {
			return nil, nil, fmt.Errorf("%s: tag %d claims %d bytes of header text, more than the file holds (%d)",
				sr.Path(), tag, valueLen, sr.Size())
		}

		// Values up to 4 bytes are stored inline in the entry itself,
		// longer ones behind an offset.
		valueOff := entry + 8
		if valueLen > 4 {
			off, err := binary.ReadEndian[uint32](sr, entry+8, "IFD value offset", order)
			if err != nil {
				return nil, nil, err
			}
			valueOff = int64(off)
		}

		buf := make([]byte, valueLen)
		if err := sr.ReadAt(buf, valueOff, fmt.Sprintf("header text of tag %d", tag)); err != nil {
			return nil, nil, err
		}

		raws[vendor] = trimHeader(string(buf))
	}

	return raws, warnings, nil
}

func vendorForTag(tag uint16) (types.Vendor, bool) {
	for _, v := range types.Vendors() {
		if v.TagID() == tag {
			return v, true
		}
	}
	return types.VendorUnknown, false
}

// trimHeader strips the ASCII NUL terminator and surrounding whitespace
// from the raw tag text.
func trimHeader(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\x00"))
}
