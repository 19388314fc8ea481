package semmeta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/semmeta/internal/registry"
	"github.com/simonhull/semmeta/internal/tiff"
	"github.com/simonhull/semmeta/internal/types"

	// Vendor parsers register themselves on import.
	_ "github.com/simonhull/semmeta/internal/xt"
	_ "github.com/simonhull/semmeta/internal/zeiss"
)

// Image represents an opened SEM image with its parsed header.
//
// All parsing happens during Open; an Image holds no file handle and is
// read-only afterwards, so it may be shared freely across goroutines.
type Image struct {
	// Path to the image file
	Path string

	// Detected vendor (Zeiss SmartSEM or Thermo Fisher xT)
	Vendor Vendor

	// File size in bytes
	Size int64

	// Parsed header in the vendor's own vocabulary
	Params *Params

	// Warnings encountered while reading the container (non-fatal issues)
	Warnings []Warning

	groupOnce sync.Once
	grouped   *GroupedView // built on first use, guarded by groupOnce
}

// Open opens an SEM image and parses its header.
//
// The file must be a TIFF written by either Zeiss SmartSEM or Thermo
// Fisher xT. The whole header is parsed eagerly and the file handle is
// released before Open returns.
//
// Options can be provided to customize behavior:
//
//	img, err := semmeta.Open("specimen.tif", semmeta.WithStrictParsing())
func Open(path string, opts ...Option) (*Image, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return openReader(f, stat.Size(), path, options)
}

// openReader parses from an io.ReaderAt (internal, also used by tests).
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*Image, error) {
	raws, warnings, err := tiff.ExtractHeaders(r, size, path)
	if err != nil {
		return nil, err
	}

	vendor, header, err := types.DetectVendor(raws, path)
	if err != nil {
		return nil, err
	}

	parser := registry.Get(vendor)
	if parser == nil {
		return nil, fmt.Errorf("no parser registered for %s", vendor)
	}

	params, err := parser.Parse(header)
	if err != nil {
		return nil, fmt.Errorf("parse %s header: %w", vendor, err)
	}

	img := &Image{
		Path:     path,
		Vendor:   vendor,
		Size:     size,
		Params:   params,
		Warnings: warnings,
	}

	if options.ignoreWarnings {
		img.Warnings = nil
	}
	if options.strictParsing && len(img.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", img.Warnings[0].Message)
	}

	return img, nil
}

// OpenContext opens an image with context support for cancellation.
//
// Parsing a single header is fast and bounded by its text length, so the
// context is checked once before starting rather than threaded through
// the parse.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple SEM images concurrently.
//
// Images are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any
// image fails to open, an error is returned.
//
// Example:
//
//	imgs, err := semmeta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, img := range imgs {
//		fmt.Printf("%s: %s\n", img.Path, img.Vendor)
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Image, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Image, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			img, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// DetectAndParse runs the header engine without the container reader.
//
// raws maps each vendor to the raw text of its header tag, as extracted
// from the container by any collaborator. Exactly one entry must be
// present; see DetectVendor for the failure modes.
func DetectAndParse(raws map[Vendor]string) (Vendor, *Params, error) {
	vendor, header, err := types.DetectVendor(raws, "")
	if err != nil {
		return VendorUnknown, nil, err
	}

	parser := registry.Get(vendor)
	if parser == nil {
		return VendorUnknown, nil, fmt.Errorf("no parser registered for %s", vendor)
	}

	params, err := parser.Parse(header)
	if err != nil {
		return VendorUnknown, nil, fmt.Errorf("parse %s header: %w", vendor, err)
	}
	return vendor, params, nil
}

// Group builds the normalized, category-grouped view of a parsed header
// using the vendor's static scheme.
//
// Grouping never fails on missing optional parameters; they surface as
// absent entries. The returned error is non-nil only for a vendor with
// no registered scheme.
func Group(params *Params, vendor Vendor) (*GroupedView, error) {
	scheme := registry.GetScheme(vendor)
	if scheme == nil {
		return nil, fmt.Errorf("no scheme registered for %s", vendor)
	}
	return scheme.Group(params), nil
}

// Grouped returns the normalized view of the image's header, built on
// first use and cached. Safe for concurrent use.
func (img *Image) Grouped() *GroupedView {
	img.groupOnce.Do(func() {
		// Vendor was parsed, so a scheme is registered for it.
		img.grouped, _ = Group(img.Params, img.Vendor)
	})
	return img.grouped
}

// PixelSize returns the image pixel size and its unit from a parsed
// header.
//
// For SmartSEM images this is the AP/"Image Pixel Size" entry, split
// into magnitude and unit. For xT images the value is derived: electron
// channeling patterns report the angular pixel width in degrees, all
// other images the linear pixel width in metres.
func PixelSize(params *Params, vendor Vendor) (float64, string, error) {
	parser := registry.Get(vendor)
	sizer, ok := parser.(registry.PixelSizer)
	if !ok {
		return 0, "", fmt.Errorf("no pixel size support for %s", vendor)
	}
	return sizer.PixelSize(params)
}

// PixelSize returns the image's pixel size and its unit.
func (img *Image) PixelSize() (float64, string, error) {
	return PixelSize(img.Params, img.Vendor)
}

// SoftwareVersion returns the acquisition software version recorded in
// the header, or the empty string if it is absent.
func (img *Image) SoftwareVersion() string {
	var v Value
	var ok bool
	switch img.Vendor {
	case VendorZeiss:
		v, ok = img.Params.Get("SV", "Version")
	case VendorThermoFisher:
		v, ok = img.Params.Get("[System]", "Software")
	}
	if !ok {
		return ""
	}
	return v.Raw
}
