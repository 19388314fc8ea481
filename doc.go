// Package semmeta extracts acquisition metadata from the headers of SEM
// images.
//
// Scanning electron microscopes embed their acquisition parameters as a
// free-text blob inside a private TIFF tag, in a vendor-specific and
// undocumented format. semmeta reads images written by two of them -
// Zeiss SmartSEM (tag 34118) and Thermo Fisher Scientific xT (tag 34682) -
// and normalizes both into a single queryable structure.
//
// # Quick Start
//
// Reading metadata from an SEM image:
//
//	img, err := semmeta.Open("specimen.tif")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mag, unit, err := img.PixelSize()
//	if err == nil {
//		fmt.Printf("pixel size: %g %s\n", mag, unit)
//	}
//
//	for _, category := range img.Grouped().Categories() {
//		fmt.Printf("%s parameters:\n", category)
//		for _, name := range img.Grouped().Names(category) {
//			if v, ok := img.Grouped().Get(category, name); ok {
//				fmt.Printf("\t%s = %s\n", name, v)
//			}
//		}
//	}
//
// # Two views of the header
//
// Image.Params is the parsed header as the vendor wrote it: an ordered
// two-level mapping of vendor section to parameter name ("AP"/"EHT" for
// SmartSEM, "[Beam]"/"HV" for xT), with every entry the header contained.
//
// Image.Grouped() is the normalized view: a fixed, human-oriented
// category scheme ("Beam", "Stage", "Scanning", ...) shared by both
// vendors, with a predeclared parameter set per category. Parameters the
// source header omits are reported as absent, never as an error.
//
// # Derived values
//
// Some values in the raw headers are absent or wrong and are computed by
// semmeta instead. SmartSEM always records a dwell time of 100 ns; the
// true value is recomputed from the scan speed setting. xT electron
// channeling patterns are calibrated in degrees rather than metres;
// PixelSize reports them converted from the angular pixel width.
//
// # Batch processing
//
// Parse multiple images concurrently:
//
//	ctx := context.Background()
//	imgs, err := semmeta.OpenMany(ctx, paths...)
//
// Each header is parsed independently with no shared mutable state, so
// batches parallelize without coordination.
//
// # Working without a container
//
// The parsing engine is usable without reading a TIFF: pass the raw tag
// text straight to DetectAndParse. This is how the engine is wired to
// any other container reader.
//
//	vendor, params, err := semmeta.DetectAndParse(map[semmeta.Vendor]string{
//		semmeta.VendorZeiss: rawText,
//	})
//
// # Error Handling
//
// Failures are typed: *MissingHeaderError (no vendor tag present),
// *AmbiguousHeaderError (more than one), *MalformedValueError (a value
// expected to be numeric is not), *MissingFieldError (a field a derived
// value depends on is absent). Missing optional parameters are not
// errors; they surface as absent entries in the grouped view.
package semmeta
