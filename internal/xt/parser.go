// Package xt parses image headers written by the Thermo Fisher
// Scientific xT software (TIFF tag 34682).
//
// The header is an INI-like format: sections separated by a double
// CR+LF, each starting with a bracketed name line ("[Beam]") followed by
// "name=value" lines. One region of the header is known to be malformed
// and needs a recovery pass, see parseMergedChunk.
package xt

import (
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/semmeta/internal/registry"
	"github.com/simonhull/semmeta/internal/types"
)

// hiResSection names the super-section whose chunk arrives merged with
// the sections that follow it.
const hiResSection = "[HiResIllumination]"

func init() {
	p := &Parser{}
	registry.Register(types.VendorThermoFisher, p)
	registry.RegisterScheme(types.VendorThermoFisher, Scheme)
}

// Parser parses xT headers.
type Parser struct{}

// Parse tokenizes an xT header, keyed by the literal bracketed section
// names. Sections may be present but empty. Lines without an "=" are
// skipped.
//
// Chunks starting with [HiResIllumination] go through the recovery path:
// xT (seen with version 23.3.1.22195) separates the sections after that
// one with a single CR+LF instead of a double one, so the plain split
// leaves several sections glued into one chunk.
func (p *Parser) Parse(header string) (*types.Params, error) {
	params := types.NewParams()

	for _, chunk := range strings.Split(header, "\r\n\r\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		if strings.HasPrefix(chunk, hiResSection) {
			parseMergedChunk(params, chunk)
			continue
		}
		parseSection(params, strings.Split(chunk, "\r\n"))
	}

	return params, nil
}

// PixelSize returns the image pixel size from a parsed header.
//
// Electron channeling patterns are calibrated in degrees rather than
// metres: when [EBeam]/ElectronChannelingPatternIsOn is "On" the pixel
// size is [EBeam]/AngularPixelWidth converted from radians to degrees.
// Otherwise it is [Scan]/PixelWidth in metres. The header stores both as
// bare SI numbers without units.
func (p *Parser) PixelSize(params *types.Params) (float64, string, error) {
	if v, ok := params.Get("[EBeam]", "ElectronChannelingPatternIsOn"); ok && v.Raw == "On" {
		w, ok := params.Get("[EBeam]", "AngularPixelWidth")
		if !ok {
			return 0, "", &types.MissingFieldError{Section: "[EBeam]", Name: "AngularPixelWidth"}
		}
		rad, err := strconv.ParseFloat(strings.TrimSpace(w.Raw), 64)
		if err != nil {
			return 0, "", &types.MalformedValueError{Raw: w.Raw}
		}
		return rad * 180 / math.Pi, "deg", nil
	}

	v, ok := params.Get("[Scan]", "PixelWidth")
	if !ok {
		return 0, "", &types.MissingFieldError{Section: "[Scan]", Name: "PixelWidth"}
	}
	m, err := strconv.ParseFloat(strings.TrimSpace(v.Raw), 64)
	if err != nil {
		return 0, "", &types.MalformedValueError{Raw: v.Raw}
	}
	return m, "m", nil
}

// parseSection files the "name=value" lines of one section under its
// bracketed name, the first line. Empty lines and lines without an "="
// are skipped.
func parseSection(params *types.Params, lines []string) {
	if len(lines) == 0 || lines[0] == "" {
		return
	}
	name := lines[0]
	params.AddSection(name)
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		params.Set(name, strings.TrimSpace(k), types.NewValue(strings.TrimSpace(v)))
	}
}

// parseMergedChunk recovers the sections glued into the
// [HiResIllumination] chunk. Every "[" in the chunk starts a section
// name; the chunk is carved into consecutive ranges at those positions
// and each range is parsed as a normal section.
func parseMergedChunk(params *types.Params, chunk string) {
	var starts []int
	for i := 0; i < len(chunk); i++ {
		if chunk[i] == '[' {
			starts = append(starts, i)
		}
	}
	for k, s := range starts {
		end := len(chunk)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		parseSection(params, strings.Split(chunk[s:end], "\r\n"))
	}
}
