package types

import "fmt"

// MissingHeaderError is returned when neither vendor header tag is present.
type MissingHeaderError struct {
	Path string
}

func (e *MissingHeaderError) Error() string {
	msg := fmt.Sprintf("no SEM header found: missing tags %d (%s) and %d (%s)",
		VendorZeiss.TagID(), VendorZeiss, VendorThermoFisher.TagID(), VendorThermoFisher)
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// AmbiguousHeaderError is returned when more than one vendor header tag is
// present, leaving the image origin indeterminate.
type AmbiguousHeaderError struct {
	Path  string
	Count int
}

func (e *AmbiguousHeaderError) Error() string {
	msg := fmt.Sprintf("ambiguous SEM header: %d of tags %d and %d are present",
		e.Count, VendorZeiss.TagID(), VendorThermoFisher.TagID())
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// MalformedValueError is returned when a value expected to start with a
// number does not. A wrong numeric value is worse than a visible failure,
// so there is no silent defaulting.
type MalformedValueError struct {
	Raw string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value %q: expected a leading number", e.Raw)
}

// MissingFieldError is returned when a header field that a computation
// depends on is absent, such as the scan speed the dwell time is derived
// from.
type MissingFieldError struct {
	Section string
	Name    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required header field %s/%s is missing", e.Section, e.Name)
}

// UnsupportedFileError is returned when the container is not a readable
// TIFF file.
type UnsupportedFileError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("%s: unsupported file: %s", e.Path, e.Reason)
}

// Warning represents a non-fatal issue encountered while reading the
// container, such as a header tag stored with an unexpected field type.
//
// Warnings are collected in Image.Warnings; they never stop parsing.
type Warning struct {
	// Stage where the warning occurred ("container", "header")
	Stage string

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
