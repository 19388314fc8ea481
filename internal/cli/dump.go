package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/semmeta"
)

var (
	dumpFull     bool
	dumpWithPath bool
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <image|folder>...",
	Short: "Export image metadata to JSON files",
	Long: `Dump writes one JSON file per image, stored next to the image and named
after it with a _metadata.json suffix. By default the grouped parameter
selection is exported; --full exports every header entry in the vendor's
own sections.

Example:
  semmeta dump specimen.tif            (writes specimen_metadata.json)
  semmeta dump --full --with-path session1/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVar(&dumpFull, "full", false, "export every header entry instead of the grouped selection")
	dumpCmd.Flags().BoolVar(&dumpWithPath, "with-path", false, "record the original image path in the JSON")
}

func runDump(cmd *cobra.Command, args []string) error {
	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	images, failed := openAll(context.Background(), paths)
	for _, img := range images {
		if img == nil {
			continue
		}
		if err := dumpImage(img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", img.Path, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(paths))
	}
	return nil
}

func dumpImage(img *semmeta.Image) error {
	out := metadataPath(img.Path)

	var m *orderedmap.OrderedMap
	if dumpFull {
		m = paramsMap(img.Params)
	} else {
		m = groupedMap(img.Grouped())
	}
	if dumpWithPath {
		m.Set("Original image path", img.Path)
	}

	indent := strings.Repeat(" ", viper.GetInt("indent"))
	data, err := json.MarshalIndent(m, "", indent)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Writing %s\n", out)
	}
	return os.WriteFile(out, data, 0o644)
}

// metadataPath returns the JSON path for an image: the image path with
// its extension replaced by _metadata.json.
func metadataPath(imagePath string) string {
	base := strings.TrimSuffix(imagePath, ".tif")
	return base + "_metadata.json"
}

// groupedMap converts a grouped view into an order-preserving map for
// JSON export. Absent parameters export as empty strings.
func groupedMap(view *semmeta.GroupedView) *orderedmap.OrderedMap {
	m := orderedmap.New()
	for _, category := range view.Categories() {
		c := orderedmap.New()
		for _, name := range view.Names(category) {
			if v, ok := view.Get(category, name); ok {
				c.Set(name, v.String())
			} else {
				c.Set(name, "")
			}
		}
		m.Set(category, c)
	}
	return m
}

// paramsMap converts a full parsed header into an order-preserving map
// for JSON export.
func paramsMap(params *semmeta.Params) *orderedmap.OrderedMap {
	m := orderedmap.New()
	for _, sec := range params.Sections() {
		s := orderedmap.New()
		for _, name := range params.Names(sec) {
			v, _ := params.Get(sec, name)
			s.Set(name, v.String())
		}
		m.Set(sec, s)
	}
	return m
}
