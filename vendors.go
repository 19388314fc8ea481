package semmeta

import (
	"github.com/simonhull/semmeta/internal/types"
)

// Vendor is an alias to types.Vendor.
// Re-exporting from internal/types to keep the public API in one place.
type Vendor = types.Vendor

// Re-export all vendor constants.
const (
	VendorUnknown      = types.VendorUnknown
	VendorZeiss        = types.VendorZeiss
	VendorThermoFisher = types.VendorThermoFisher
)

// Vendors returns the known vendors in detection order.
func Vendors() []Vendor {
	return types.Vendors()
}

// DetectVendor decides which vendor a set of raw header tags belongs to.
// See types.DetectVendor for the failure modes.
func DetectVendor(raws map[Vendor]string) (Vendor, string, error) {
	return types.DetectVendor(raws, "")
}
