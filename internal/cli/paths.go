package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/semmeta"
)

// expandPaths resolves the command line arguments into a list of .tif
// files. A directory argument expands to the .tif files it contains
// (non-recursive, matching what the microscope writes into one session
// folder).
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.tif"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .tif files found")
	}
	return paths, nil
}

// openAll opens every path concurrently, tolerating per-file failures:
// a broken image is reported to stderr and skipped so the rest of the
// batch still processes, like the original per-image workflow.
//
// The returned slice is parallel to paths, with nil entries for
// failures; failed counts how many there were.
func openAll(ctx context.Context, paths []string) (images []*semmeta.Image, failed int) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	images = make([]*semmeta.Image, len(paths))
	errs := make([]error, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			img, err := semmeta.OpenContext(ctx, path)
			if err != nil {
				errs[i] = err
				return nil
			}
			images[i] = img
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", paths[i], err)
			failed++
		}
	}
	return images, failed
}
