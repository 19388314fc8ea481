package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/semmeta"
)

var showAll bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <image|folder>...",
	Short: "Print the acquisition parameters of SEM images",
	Long: `Show prints the parameters extracted from each image header, grouped
into display categories. Folder arguments expand to the .tif images they
contain.

Example:
  semmeta show specimen.tif
  semmeta show --all specimen.tif
  semmeta show session1/ session2/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showAll, "all", false, "print every header entry in the vendor's own sections instead of the grouped selection")
}

func runShow(cmd *cobra.Command, args []string) error {
	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	images, failed := openAll(context.Background(), paths)
	for _, img := range images {
		if img == nil {
			continue
		}
		printImage(img)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(paths))
	}
	return nil
}

func printImage(img *semmeta.Image) {
	s := newStyles()

	fmt.Println()
	fmt.Println(s.Title.Render(fmt.Sprintf("Parameters extracted from the SEM image: %s", img.Path)))
	if verbose {
		fmt.Printf("Image type: %s\n", img.Vendor)
		fmt.Printf("Software version: %s\n", img.SoftwareVersion())
	}
	fmt.Println()

	if showAll {
		printParams(img, s)
		return
	}
	printGrouped(img, s)
}

// printGrouped prints the normalized category view; absent parameters
// show as empty values, matching their representation in the JSON dump.
func printGrouped(img *semmeta.Image, s *styleSet) {
	view := img.Grouped()
	for _, category := range view.Categories() {
		fmt.Println(s.Category.Render(category + " parameters:"))
		for _, name := range view.Names(category) {
			if v, ok := view.Get(category, name); ok {
				fmt.Printf("\t%s = %s\n", s.Name.Render(name), s.Value.Render(v.String()))
			} else {
				fmt.Printf("\t%s = %s\n", s.Name.Render(name), s.Absent.Render(""))
			}
		}
		fmt.Println()
	}
}

// printParams prints the whole header in the vendor's own vocabulary.
func printParams(img *semmeta.Image, s *styleSet) {
	for _, sec := range img.Params.Sections() {
		fmt.Println(s.Category.Render(sec + " parameters:"))
		for _, name := range img.Params.Names(sec) {
			v, _ := img.Params.Get(sec, name)
			fmt.Printf("\t%s = %s\n", s.Name.Render(name), s.Value.Render(v.String()))
		}
		fmt.Println()
	}
}
