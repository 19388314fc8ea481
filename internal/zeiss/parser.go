// Package zeiss parses image headers written by the Zeiss SmartSEM
// software (TIFF tag 34118).
//
// The header is a flat CR+LF line format: each data line carries a
// "name = value" or "name : value" pair, and the two characters at the
// start of the line immediately above it name the section the pair
// belongs to. Three section codes occur: DP (device parameters), AP
// (analysis parameters) and SV (scan/save values).
package zeiss

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/semmeta/internal/registry"
	"github.com/simonhull/semmeta/internal/types"
)

// Section codes used by SmartSEM headers.
const (
	SectionDevice   = "DP"
	SectionAnalysis = "AP"
	SectionSave     = "SV"
)

func init() {
	p := &Parser{}
	registry.Register(types.VendorZeiss, p)
	registry.RegisterScheme(types.VendorZeiss, Scheme)
}

// Parser parses SmartSEM headers.
type Parser struct{}

// Parse tokenizes a SmartSEM header into sections DP, AP and SV.
//
// The first section header is located by scanning for the first line
// whose first character is alphabetic (the last line is excluded from
// the scan, it may be truncated). Data lines follow at every second
// line after it. Lines matching neither the "=" nor the ":" pattern are
// silently skipped, as are lines filed under an unrecognized code.
// Sections with no recognized entries are omitted.
//
// After tokenizing, the dwell time is recomputed from the scan speed
// (the header's own dwell time entry is a constant placeholder) and the
// V05 pixel-size key relocation is applied. A header without a
// DP/Scan Speed entry fails with a *types.MissingFieldError.
func (p *Parser) Parse(header string) (*types.Params, error) {
	lines := strings.Split(header, "\r\n")
	params := types.NewParams()

	start := -1
	for i := 0; i < len(lines)-1; i++ {
		if len(lines[i]) > 0 && isAlpha(lines[i][0]) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("no section header line found")
	}

	for i := start + 1; i < len(lines); i += 2 {
		name, value, ok := splitPair(lines[i])
		if !ok {
			continue
		}
		if len(lines[i-1]) < 2 {
			continue
		}
		switch code := lines[i-1][:2]; code {
		case SectionDevice, SectionAnalysis, SectionSave:
			params.Set(code, name, types.NewValue(value))
		}
	}

	if err := deriveDwellTime(params); err != nil {
		return nil, err
	}
	relocatePixelSize(params)

	return params, nil
}

// PixelSize returns the image pixel size from AP/Image Pixel Size.
func (p *Parser) PixelSize(params *types.Params) (float64, string, error) {
	v, ok := params.Get(SectionAnalysis, "Image Pixel Size")
	if !ok {
		return 0, "", &types.MissingFieldError{Section: SectionAnalysis, Name: "Image Pixel Size"}
	}
	return types.ParseValue(v.Raw)
}

// splitPair splits a data line at the first "=", falling back to the
// first ":". Name and value are trimmed of surrounding whitespace.
func splitPair(line string) (name, value string, ok bool) {
	k, v, found := strings.Cut(line, "=")
	if !found {
		k, v, found = strings.Cut(line, ":")
	}
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

func isAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// DwellTime converts a scan speed setting (1-15) into the per-pixel
// dwell time in seconds. The formula comes from the SmartSEM help table.
func DwellTime(speed int) float64 {
	return 1.0e-7 * math.Exp2(float64(speed-1))
}

// deriveDwellTime overwrites DP/Dwell Time with a value computed from
// DP/Scan Speed. The header always stores 100 ns for the dwell time
// regardless of the actual speed, so the stored entry cannot be trusted.
func deriveDwellTime(params *types.Params) error {
	raw, ok := params.Get(SectionDevice, "Scan Speed")
	if !ok {
		return &types.MissingFieldError{Section: SectionDevice, Name: "Scan Speed"}
	}
	speed, err := strconv.Atoi(strings.TrimSpace(raw.Raw))
	if err != nil {
		return &types.MalformedValueError{Raw: raw.Raw}
	}
	dwell := DwellTime(speed)
	params.Set(SectionDevice, "Dwell Time", types.NewValue(fmt.Sprintf("%.5e s", dwell)))
	return nil
}

// relocatePixelSize renames AP/"Pixel Size" to AP/"Image Pixel Size" for
// headers written by SmartSEM V05, so downstream consumers see the key
// newer releases use. Versions matching neither pattern are left alone.
func relocatePixelSize(params *types.Params) {
	v, ok := params.Get(SectionSave, "Version")
	if !ok || !strings.Contains(v.Raw, "V05") {
		return
	}
	params.Rename(SectionAnalysis, "Pixel Size", "Image Pixel Size")
}
