// Package registry manages vendor-specific header parsers and schemes.
package registry

import (
	"github.com/simonhull/semmeta/internal/types"
)

// HeaderParser is the interface all vendor parsers implement.
type HeaderParser interface {
	// Parse tokenizes one vendor's raw header text into a Params
	// structure, including any derived-value computation the vendor
	// needs.
	Parse(header string) (*types.Params, error)
}

// PixelSizer is an optional interface for parsers that can derive the
// image pixel size from a parsed header.
type PixelSizer interface {
	// PixelSize returns the pixel size magnitude and its unit.
	PixelSize(p *types.Params) (float64, string, error)
}

// parsers maps vendors to their parsers.
var parsers = make(map[types.Vendor]HeaderParser)

// schemes maps vendors to their grouping schemes.
var schemes = make(map[types.Vendor]*types.Scheme)

// Register registers a parser for a vendor.
// This is called by vendor packages during initialization (init functions).
func Register(vendor types.Vendor, parser HeaderParser) {
	parsers[vendor] = parser
}

// Get returns the parser for a given vendor.
// Returns nil if no parser is registered for the vendor.
func Get(vendor types.Vendor) HeaderParser {
	return parsers[vendor]
}

// RegisterScheme registers a grouping scheme for a vendor.
// This is called by vendor packages during initialization (init functions).
func RegisterScheme(vendor types.Vendor, scheme *types.Scheme) {
	schemes[vendor] = scheme
}

// GetScheme returns the grouping scheme for a given vendor.
// Returns nil if no scheme is registered for the vendor.
func GetScheme(vendor types.Vendor) *types.Scheme {
	return schemes[vendor]
}
