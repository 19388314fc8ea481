package zeiss

import "github.com/simonhull/semmeta/internal/types"

// Scheme declares the SmartSEM parameter names worth surfacing, the
// section each lives in, and the display categories they are grouped
// under.
var Scheme = &types.Scheme{
	Vendor: types.VendorZeiss,
	Locations: map[string]types.SectionRef{
		"Dwell Time":       types.FixedSection(SectionDevice),
		"Dyn.Focus":        types.FixedSection(SectionDevice),
		"BSD Gain":         types.FixedSection(SectionDevice),
		"Detector":         types.FixedSection(SectionDevice),
		"Store resolution": types.FixedSection(SectionDevice),
		"Tilt Corrn.":      types.FixedSection(SectionDevice),
		"High Current":     types.FixedSection(SectionDevice),
		"Scan Speed":       types.FixedSection(SectionDevice),
		"Image Pixel Size": types.FixedSection(SectionAnalysis),
		"Stage at X":       types.FixedSection(SectionAnalysis),
		"Stage at Y":       types.FixedSection(SectionAnalysis),
		"Stage at Z":       types.FixedSection(SectionAnalysis),
		"Stage at R":       types.FixedSection(SectionAnalysis),
		"C3 Lens I":        types.FixedSection(SectionAnalysis),
		"Cycle Time":       types.FixedSection(SectionAnalysis),
		"Line Time":        types.FixedSection(SectionAnalysis),
		"Stigmation X":     types.FixedSection(SectionAnalysis),
		"Stigmation Y":     types.FixedSection(SectionAnalysis),
		"Aperture Size":    types.FixedSection(SectionAnalysis),
		"Aperture at X":    types.FixedSection(SectionAnalysis),
		"Aperture at Y":    types.FixedSection(SectionAnalysis),
		"Beam Shift X":     types.FixedSection(SectionAnalysis),
		"Beam Shift Y":     types.FixedSection(SectionAnalysis),
		"Gun Vacuum":       types.FixedSection(SectionAnalysis),
		"System Vacuum":    types.FixedSection(SectionAnalysis),
		"WD":               types.FixedSection(SectionAnalysis),
		"Mag":              types.FixedSection(SectionAnalysis),
		"Brightness":       types.FixedSection(SectionAnalysis),
		"Contrast":         types.FixedSection(SectionAnalysis),
		"Fil I":            types.FixedSection(SectionAnalysis),
		"EHT":              types.FixedSection(SectionAnalysis),
		"Line Avg.Count":   types.FixedSection(SectionAnalysis),
		"Time":             types.FixedSection(SectionAnalysis),
		"Date":             types.FixedSection(SectionAnalysis),
		"File Name":        types.FixedSection(SectionSave),
	},
	Groups: []types.Group{
		{Name: "General", Params: []string{"File Name", "Date", "Time"}},
		{Name: "SEM", Params: []string{
			"Gun Vacuum", "System Vacuum", "Fil I",
			"Tilt Corrn.", "Dyn.Focus", "High Current", "EHT",
		}},
		{Name: "Beam", Params: []string{
			"Aperture Size",
			"Aperture at X", "Aperture at Y",
			"Stigmation X", "Stigmation Y",
			"Beam Shift X", "Beam Shift Y",
			"C3 Lens I",
		}},
		{Name: "Scanning", Params: []string{
			"Mag", "Cycle Time", "Scan Speed",
			"Line Time", "Dwell Time", "Line Avg.Count",
		}},
		{Name: "Image", Params: []string{
			"Detector", "Store resolution", "Image Pixel Size",
			"Brightness", "Contrast", "BSD Gain",
		}},
		{Name: "Stage", Params: []string{
			"Stage at X", "Stage at Y",
			"Stage at Z", "Stage at R", "WD",
		}},
	},
}

func init() {
	if err := Scheme.Validate(); err != nil {
		panic(err)
	}
}
