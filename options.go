package semmeta

// Option configures behavior when opening SEM images.
//
// Options use the functional options pattern.
//
// Example:
//
//	img, err := semmeta.Open("specimen.tif",
//	    semmeta.WithStrictParsing(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening images.
type openOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, semmeta keeps going when the container has non-fatal
// oddities, such as a vendor tag stored with an unexpected field type,
// and records them in Image.Warnings. With strict parsing enabled, any
// warning becomes a fatal error.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about non-fatal issues are collected in
// Image.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}
