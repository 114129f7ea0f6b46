package el

import (
	"github.com/facet-dev/facet/pkg/tags"
	"github.com/facet-dev/facet/pkg/vdom"
)

// New constructs an element description for typ.
//
// A string typ is resolved through the tag table: a known pre-lowered
// name is replaced with its canonical class name, anything else passes
// through unchanged. For host elements (string typ) with a prop bag, the
// reserved Change, Event and Tag convenience keys are consumed in place
// and redistributed under the runtime's signal keys. New then delegates
// to vdom.CreateElement and returns its result unchanged.
//
// The prop bag is mutated, not copied: after the call the caller's bag
// has the convenience keys removed and their contents redistributed.
func New(typ any, props vdom.Props, children ...*vdom.VNode) *vdom.VNode {
	if name, ok := typ.(string); ok {
		typ = tags.Canonical(name)
		if props != nil {
			rewriteProps(props)
		}
	}
	return vdom.CreateElement(typ, props, children...)
}

// Class adapts a plain member declaration into a component class. The
// "Constructor" member becomes the class initializer; every other member
// is copied onto the class verbatim. See vdom.Extend.
func Class(name string, members map[string]any) *vdom.Class {
	return vdom.Extend(name, members)
}
