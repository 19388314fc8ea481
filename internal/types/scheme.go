package types

import "fmt"

// SectionRef locates the header section a named parameter normally lives
// in. It is a tagged variant: either a fixed section name, or an indirect
// reference resolved at lookup time from another already-parsed field.
//
// The indirect form exists for xT headers, where detector-specific
// parameters (contrast, brightness, signal) live in a section named after
// the active detector, e.g. "[ETD]" when [Detectors]/Name is "ETD".
type SectionRef struct {
	section    string
	viaSection string
	viaField   string
}

// FixedSection returns a reference to a fixed section name.
func FixedSection(name string) SectionRef {
	return SectionRef{section: name}
}

// IndirectSection returns a reference resolved from the value of
// viaSection/viaField: the target section is that value wrapped in
// brackets.
func IndirectSection(viaSection, viaField string) SectionRef {
	return SectionRef{viaSection: viaSection, viaField: viaField}
}

// Indirect reports whether the reference is resolved via another field.
func (r SectionRef) Indirect() bool {
	return r.viaSection != ""
}

// Resolve returns the concrete section name for a parsed header.
// An indirect reference resolves to false when the field it depends on is
// absent from the header.
func (r SectionRef) Resolve(p *Params) (string, bool) {
	if !r.Indirect() {
		return r.section, true
	}
	v, ok := p.Get(r.viaSection, r.viaField)
	if !ok {
		return "", false
	}
	return "[" + v.Raw + "]", true
}

// Group is one display category of a Scheme: a name and the ordered
// parameter names shown under it.
type Group struct {
	Name   string
	Params []string
}

// Scheme is the static, per-vendor declaration of which parameter names
// exist, which section each lives in, and how they are grouped for
// display. Schemes are process-wide constants, never built from input.
type Scheme struct {
	Vendor    Vendor
	Locations map[string]SectionRef
	Groups    []Group
}

// Validate checks that every parameter named by a display group has a
// location entry. Vendor packages call this once at init so a broken
// table fails at startup instead of mid-parse.
func (s *Scheme) Validate() error {
	for _, g := range s.Groups {
		for _, name := range g.Params {
			if _, ok := s.Locations[name]; !ok {
				return fmt.Errorf("%s scheme: group %q names parameter %q with no location",
					s.Vendor, g.Name, name)
			}
		}
	}
	return nil
}

// Group builds a GroupedView from a parsed header.
//
// Every category and parameter the scheme declares is present in the
// result regardless of what the header contained; parameters the header
// omits are marked absent. Grouping never fails: sources legitimately
// omit optional fields.
func (s *Scheme) Group(p *Params) *GroupedView {
	view := newGroupedView()
	for _, g := range s.Groups {
		for _, name := range g.Params {
			var gv GroupedValue
			if sec, ok := s.Locations[name].Resolve(p); ok {
				if v, ok := p.Get(sec, name); ok {
					gv = GroupedValue{Value: v, Present: true}
				}
			}
			view.add(g.Name, name, gv)
		}
	}
	return view
}
