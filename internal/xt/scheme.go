package xt

import "github.com/simonhull/semmeta/internal/types"

// detector refers to the section named after the active detector, e.g.
// "[ETD]" when [Detectors]/Name is "ETD". Detector-specific parameters
// (contrast, brightness, signal) live there.
var detector = types.IndirectSection("[Detectors]", "Name")

// Scheme declares the xT parameter names worth surfacing, the section
// each lives in, and the display categories they are grouped under.
var Scheme = &types.Scheme{
	Vendor: types.VendorThermoFisher,
	Locations: map[string]types.SectionRef{
		"Date":                          types.FixedSection("[User]"),
		"Time":                          types.FixedSection("[User]"),
		"User":                          types.FixedSection("[User]"),
		"SystemType":                    types.FixedSection("[System]"),
		"HV":                            types.FixedSection("[Beam]"),
		"Spot":                          types.FixedSection("[Beam]"),
		"StigmatorX":                    types.FixedSection("[Beam]"),
		"StigmatorY":                    types.FixedSection("[Beam]"),
		"BeamShiftX":                    types.FixedSection("[Beam]"),
		"BeamShiftY":                    types.FixedSection("[Beam]"),
		"ScanRotation":                  types.FixedSection("[Beam]"),
		"ApertureDiameter":              types.FixedSection("[EBeam]"),
		"HFW":                           types.FixedSection("[EBeam]"),
		"VFW":                           types.FixedSection("[EBeam]"),
		"WD":                            types.FixedSection("[EBeam]"),
		"BeamCurrent":                   types.FixedSection("[EBeam]"),
		"TiltCorrectionIsOn":            types.FixedSection("[EBeam]"),
		"DynamicFocusIsOn":              types.FixedSection("[EBeam]"),
		"UseCase":                       types.FixedSection("[EBeam]"),
		"SourceTiltX":                   types.FixedSection("[EBeam]"),
		"SourceTiltY":                   types.FixedSection("[EBeam]"),
		"StageX":                        types.FixedSection("[EBeam]"),
		"StageY":                        types.FixedSection("[EBeam]"),
		"StageZ":                        types.FixedSection("[EBeam]"),
		"StageR":                        types.FixedSection("[EBeam]"),
		"StageTa":                       types.FixedSection("[EBeam]"),
		"EmissionCurrent":               types.FixedSection("[EBeam]"),
		"TiltCorrectionAngle":           types.FixedSection("[EBeam]"),
		"PreTilt":                       types.FixedSection("[EBeam]"),
		"AngularFieldWidth":             types.FixedSection("[EBeam]"),
		"AngularPixelWidth":             types.FixedSection("[EBeam]"),
		"ElectronChannelingPatternIsOn": types.FixedSection("[EBeam]"),
		"ModeOn":                        types.FixedSection("[EBeamDeceleration]"),
		"LandingEnergy":                 types.FixedSection("[EBeamDeceleration]"),
		"ImmersionRatio":                types.FixedSection("[EBeamDeceleration]"),
		"StageBias":                     types.FixedSection("[EBeamDeceleration]"),
		"Dwelltime":                     types.FixedSection("[Scan]"),
		"PixelWidth":                    types.FixedSection("[Scan]"),
		"Average":                       types.FixedSection("[Scan]"),
		"Integrate":                     types.FixedSection("[Scan]"),
		"FrameTime":                     types.FixedSection("[Scan]"),
		"LineTime":                      types.FixedSection("[EScan]"),
		"SpecTilt":                      types.FixedSection("[Stage]"),
		"ResolutionX":                   types.FixedSection("[Image]"),
		"ResolutionY":                   types.FixedSection("[Image]"),
		"ChPressure":                    types.FixedSection("[Vacuum]"),
		"SpecimenCurrent":               types.FixedSection("[Specimen]"),
		"Number":                        types.FixedSection("[Detectors]"),
		"Name":                          types.FixedSection("[Detectors]"),
		"Mode":                          types.FixedSection("[Detectors]"),
		"Contrast":                      detector,
		"Brightness":                    detector,
		"Signal":                        detector,
		"Setting":                       detector,
		"MinimumDwellTime":              detector,
		"DataBarSelected":               types.FixedSection("[PrivateFei]"),
		"DatabarHeight":                 types.FixedSection("[PrivateFei]"),
	},
	Groups: []types.Group{
		{Name: "General", Params: []string{"Date", "Time", "User", "SystemType"}},
		{Name: "SEM", Params: []string{"HV", "ChPressure", "EmissionCurrent"}},
		{Name: "Beam", Params: []string{
			"ApertureDiameter", "Spot", "BeamCurrent",
			"SpecimenCurrent",
			"StigmatorX", "StigmatorY",
			"BeamShiftX", "BeamShiftY", "UseCase",
			"SourceTiltX", "SourceTiltY",
		}},
		{Name: "Beam Deceleration", Params: []string{
			"ModeOn", "LandingEnergy", "ImmersionRatio", "StageBias",
		}},
		{Name: "Scanning", Params: []string{
			"FrameTime", "LineTime",
			"Dwelltime", "Average", "Integrate",
			"ScanRotation", "TiltCorrectionIsOn",
			"TiltCorrectionAngle", "DynamicFocusIsOn",
			"PreTilt", "SpecTilt", "MinimumDwellTime",
		}},
		{Name: "Detector", Params: []string{
			"Number", "Name", "Mode",
			"Contrast", "Brightness", "Signal",
			"Setting",
		}},
		{Name: "Image", Params: []string{
			"ResolutionX", "ResolutionY", "PixelWidth",
			"HFW", "VFW", "ElectronChannelingPatternIsOn",
			"AngularPixelWidth", "AngularFieldWidth",
			"DataBarSelected", "DatabarHeight",
		}},
		{Name: "Stage", Params: []string{
			"StageX", "StageY", "StageZ", "StageR",
			"StageTa", "WD",
		}},
	},
}

func init() {
	if err := Scheme.Validate(); err != nil {
		panic(err)
	}
}
