package tiff

import (
	"bytes"
	stdbin "encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/semmeta/internal/types"
)

type tagSpec struct {
	tag       uint16
	fieldType uint16
	value     []byte
}

// buildTIFF assembles a minimal TIFF: header, IFD0 at offset 8, then a
// value region for entries longer than 4 bytes.
func buildTIFF(t *testing.T, order stdbin.ByteOrder, tags []tagSpec) []byte {
	t.Helper()

	var buf bytes.Buffer
	if order == stdbin.LittleEndian {
		buf.WriteString("II")
	} else {
		buf.WriteString("MM")
	}
	stdbin.Write(&buf, order, uint16(42))
	stdbin.Write(&buf, order, uint32(8)) // IFD0 right after the header

	stdbin.Write(&buf, order, uint16(len(tags)))

	// Long values land after the entries and the next-IFD pointer.
	valueOff := uint32(8 + 2 + 12*len(tags) + 4)
	var values bytes.Buffer

	for _, tag := range tags {
		stdbin.Write(&buf, order, tag.tag)
		stdbin.Write(&buf, order, tag.fieldType)
		stdbin.Write(&buf, order, uint32(len(tag.value)))
		if len(tag.value) <= 4 {
			inline := make([]byte, 4)
			copy(inline, tag.value)
			buf.Write(inline)
		} else {
			stdbin.Write(&buf, order, valueOff)
			values.Write(tag.value)
			valueOff += uint32(len(tag.value))
		}
	}
	stdbin.Write(&buf, order, uint32(0)) // no next IFD
	buf.Write(values.Bytes())

	return buf.Bytes()
}

func extract(t *testing.T, data []byte) (map[types.Vendor]string, []types.Warning, error) {
	t.Helper()
	return ExtractHeaders(bytes.NewReader(data), int64(len(data)), "test.tif")
}

func TestExtractHeaders(t *testing.T) {
	header := "DP_DETECTOR\r\nDetector = InLens\r\n\x00"
	data := buildTIFF(t, stdbin.LittleEndian, []tagSpec{
		{tag: 256, fieldType: 3, value: []byte{0, 4}}, // ImageWidth, ignored
		{tag: 34118, fieldType: typeASCII, value: []byte(header)},
	})

	raws, warnings, err := extract(t, data)
	if err != nil {
		t.Fatalf("ExtractHeaders() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(raws) != 1 {
		t.Fatalf("raws = %v, want one entry", raws)
	}
	got := raws[types.VendorZeiss]
	if !strings.HasPrefix(got, "DP_DETECTOR") {
		t.Errorf("header = %q", got)
	}
	if strings.ContainsRune(got, '\x00') {
		t.Error("NUL terminator should be trimmed")
	}
}

func TestExtractHeaders_BothVendorTags(t *testing.T) {
	data := buildTIFF(t, stdbin.LittleEndian, []tagSpec{
		{tag: 34118, fieldType: typeASCII, value: []byte("DP_A\r\nA = 1\r\n\x00")},
		{tag: 34682, fieldType: typeASCII, value: []byte("[User]\r\nDate=1/1/2023\x00")},
	})

	raws, _, err := extract(t, data)
	if err != nil {
		t.Fatalf("ExtractHeaders() error = %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("raws = %v, want two entries", raws)
	}
	if !strings.HasPrefix(raws[types.VendorThermoFisher], "[User]") {
		t.Errorf("xT header = %q", raws[types.VendorThermoFisher])
	}
}

func TestExtractHeaders_BigEndian(t *testing.T) {
	data := buildTIFF(t, stdbin.BigEndian, []tagSpec{
		{tag: 34118, fieldType: typeUndefined, value: []byte("DP_A\r\nA = 1\r\n\x00")},
	})

	raws, _, err := extract(t, data)
	if err != nil {
		t.Fatalf("ExtractHeaders() error = %v", err)
	}
	if !strings.HasPrefix(raws[types.VendorZeiss], "DP_A") {
		t.Errorf("header = %q", raws[types.VendorZeiss])
	}
}

func TestExtractHeaders_InlineValue(t *testing.T) {
	// A value of 4 bytes or fewer lives inside the entry itself.
	data := buildTIFF(t, stdbin.LittleEndian, []tagSpec{
		{tag: 34118, fieldType: typeASCII, value: []byte("ab\x00")},
	})

	raws, _, err := extract(t, data)
	if err != nil {
		t.Fatalf("ExtractHeaders() error = %v", err)
	}
	if raws[types.VendorZeiss] != "ab" {
		t.Errorf("header = %q, want %q", raws[types.VendorZeiss], "ab")
	}
}

func TestExtractHeaders_NoVendorTags(t *testing.T) {
	data := buildTIFF(t, stdbin.LittleEndian, []tagSpec{
		{tag: 256, fieldType: 3, value: []byte{0, 4}},
		{tag: 257, fieldType: 3, value: []byte{0, 4}},
	})

	raws, warnings, err := extract(t, data)
	if err != nil {
		t.Fatalf("ExtractHeaders() error = %v", err)
	}
	if len(raws) != 0 || len(warnings) != 0 {
		t.Errorf("raws = %v, warnings = %v, want none", raws, warnings)
	}
}

func TestExtractHeaders_UnexpectedFieldType(t *testing.T) {
	// A vendor tag stored as SHORT is skipped with a warning, and the
	// other vendor tag still comes through.
	data := buildTIFF(t, stdbin.LittleEndian, []tagSpec{
		{tag: 34118, fieldType: 3, value: []byte{0, 4}},
		{tag: 34682, fieldType: typeASCII, value: []byte("[User]\r\nDate=1/1/2023\x00")},
	})

	raws, warnings, err := extract(t, data)
	if err != nil {
		t.Fatalf("ExtractHeaders() error = %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}
	if warnings[0].Stage != "container" {
		t.Errorf("warning stage = %q", warnings[0].Stage)
	}
	if _, ok := raws[types.VendorZeiss]; ok {
		t.Error("mistyped tag should be skipped")
	}
	if _, ok := raws[types.VendorThermoFisher]; !ok {
		t.Error("well-formed tag should survive")
	}
}

func TestExtractHeaders_NotATIFF(t *testing.T) {
	_, _, err := extract(t, []byte("PK\x03\x04 definitely not a TIFF"))

	var unsupported *types.UnsupportedFileError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *UnsupportedFileError", err)
	}
	if unsupported.Path != "test.tif" {
		t.Errorf("Path = %q", unsupported.Path)
	}
}

func TestExtractHeaders_BadMagic(t *testing.T) {
	data := buildTIFF(t, stdbin.LittleEndian, nil)
	data[2] = 43

	var unsupported *types.UnsupportedFileError
	if _, _, err := extract(t, data); !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *UnsupportedFileError", err)
	}
}

func TestExtractHeaders_OversizedValueCount(t *testing.T) {
	data := buildTIFF(t, stdbin.LittleEndian, []tagSpec{
		{tag: 34118, fieldType: typeASCII, value: []byte("DP_A\r\nA = 1\r\n\x00")},
	})

	// Patch the entry's value count to claim far more than the file
	// holds. The walker must reject it before allocating a buffer of
	// that size. Entry layout: 8-byte header, 2-byte count, then
	// tag(2) type(2) count(4) at offset 10.
	stdbin.LittleEndian.PutUint32(data[14:18], 0xFFFFFFF0)

	if _, _, err := extract(t, data); err == nil {
		t.Error("an oversized value count should fail")
	}
}

func TestExtractHeaders_Truncated(t *testing.T) {
	data := buildTIFF(t, stdbin.LittleEndian, []tagSpec{
		{tag: 34118, fieldType: typeASCII, value: []byte("DP_A\r\nA = 1\r\n\x00")},
	})

	// Cut the file in the middle of the value region.
	if _, _, err := extract(t, data[:len(data)-5]); err == nil {
		t.Error("reading past the end of the file should fail")
	}
}
