package semmeta_test

import (
	"context"
	"testing"

	"github.com/simonhull/semmeta"
)

// BenchmarkOpen measures the performance of opening a single image.
func BenchmarkOpen(b *testing.B) {
	path := writeTIFF(b, "bench.tif", headerTag(34118, zeissHeader))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := semmeta.Open(path); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOpenMany measures concurrent opening performance.
func BenchmarkOpenMany(b *testing.B) {
	paths := make([]string, 10)
	for i := range paths {
		paths[i] = writeTIFF(b, "bench.tif", headerTag(34682, xtHeader))
	}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := semmeta.OpenMany(ctx, paths...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDetectAndParse measures the header engine without file I/O.
func BenchmarkDetectAndParse(b *testing.B) {
	raws := map[semmeta.Vendor]string{semmeta.VendorZeiss: zeissHeader}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := semmeta.DetectAndParse(raws); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGrouped measures building the normalized view.
func BenchmarkGrouped(b *testing.B) {
	vendor, params, err := semmeta.DetectAndParse(map[semmeta.Vendor]string{
		semmeta.VendorThermoFisher: xtHeader,
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := semmeta.Group(params, vendor); err != nil {
			b.Fatal(err)
		}
	}
}
