package types

import "slices"

// GroupedValue is one entry of a GroupedView: a header value plus a
// presence flag. Present is false when the source header did not contain
// the parameter; absence is a valid state, not an error.
type GroupedValue struct {
	Value   Value
	Present bool
}

// GroupedView is the normalized, presentation-ready view of a parsed
// header: an ordered two-level mapping of display category to parameter
// name, with every pair the vendor's Scheme declares present.
//
// A GroupedView is built fresh by Scheme.Group and is read-only after
// construction.
type GroupedView struct {
	order      []string
	categories map[string]*groupedCategory
}

type groupedCategory struct {
	order  []string
	values map[string]GroupedValue
}

func newGroupedView() *GroupedView {
	return &GroupedView{categories: make(map[string]*groupedCategory)}
}

func (g *GroupedView) add(category, name string, v GroupedValue) {
	c, ok := g.categories[category]
	if !ok {
		c = &groupedCategory{values: make(map[string]GroupedValue)}
		g.categories[category] = c
		g.order = append(g.order, category)
	}
	if _, ok := c.values[name]; !ok {
		c.order = append(c.order, name)
	}
	c.values[name] = v
}

// Categories returns the display category names in scheme order.
func (g *GroupedView) Categories() []string {
	return slices.Clone(g.order)
}

// Names returns the parameter names of a category in scheme order.
func (g *GroupedView) Names(category string) []string {
	c, ok := g.categories[category]
	if !ok {
		return nil
	}
	return slices.Clone(c.order)
}

// Get returns the value stored under category/name. The second result is
// false when the parameter was absent from the source header (or the
// category/name pair is not part of the scheme at all).
func (g *GroupedView) Get(category, name string) (Value, bool) {
	c, ok := g.categories[category]
	if !ok {
		return Value{}, false
	}
	v, ok := c.values[name]
	if !ok || !v.Present {
		return Value{}, false
	}
	return v.Value, true
}

// Len returns the total number of declared parameters across categories.
func (g *GroupedView) Len() int {
	n := 0
	for _, c := range g.categories {
		n += len(c.order)
	}
	return n
}
