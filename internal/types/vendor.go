package types

// Vendor identifies the acquisition software that wrote an image header.
type Vendor int

const (
	// VendorUnknown represents an unrecognized or undetected vendor.
	VendorUnknown Vendor = iota
	// VendorZeiss represents headers written by Zeiss SmartSEM.
	VendorZeiss
	// VendorThermoFisher represents headers written by Thermo Fisher Scientific xT.
	VendorThermoFisher
)

// String returns the vendor name used in error messages and CLI output.
func (v Vendor) String() string {
	switch v {
	case VendorZeiss:
		return "Zeiss SmartSEM"
	case VendorThermoFisher:
		return "Thermo Fisher xT"
	default:
		return "Unknown"
	}
}

// TagID returns the TIFF tag number that carries this vendor's header text.
//
// SmartSEM writes its header under tag 34118, xT under tag 34682. Both are
// private tags holding a single ASCII blob.
func (v Vendor) TagID() uint16 {
	switch v {
	case VendorZeiss:
		return 34118
	case VendorThermoFisher:
		return 34682
	default:
		return 0
	}
}

// Vendors returns the known vendors in detection order.
func Vendors() []Vendor {
	return []Vendor{VendorZeiss, VendorThermoFisher}
}

// DetectVendor decides which vendor a set of raw header tags belongs to.
//
// raws maps each vendor to the raw text of its header tag, populated only
// for tags actually present in the container. Exactly one entry must be
// present: zero entries yield a *MissingHeaderError, more than one a
// *AmbiguousHeaderError, since an image carrying both vendor tags has no
// determinable origin.
//
// path is used only for error messages and may be empty.
func DetectVendor(raws map[Vendor]string, path string) (Vendor, string, error) {
	matched := VendorUnknown
	text := ""
	n := 0
	for _, v := range Vendors() {
		if raw, ok := raws[v]; ok {
			matched = v
			text = raw
			n++
		}
	}

	if n == 0 {
		return VendorUnknown, "", &MissingHeaderError{Path: path}
	}
	if n > 1 {
		return VendorUnknown, "", &AmbiguousHeaderError{Path: path, Count: n}
	}
	return matched, text, nil
}
