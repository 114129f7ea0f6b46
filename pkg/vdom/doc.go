// Package vdom provides the element-tree primitives for Facet.
//
// VNode is the fundamental building block representing host elements,
// text, fragments, and components. Props holds element properties keyed
// either by their string name or by the runtime's key objects.
//
// # Signal keys
//
// Handlers for host signals are stored under typed key objects rather
// than string names, so they can never collide with ordinary properties:
//
//	props[vdom.Event("Activated")] = onActivated
//	props[vdom.Changed("Text")] = onTextChanged
//	props[vdom.Tag] = "inventory-slot"
//
// # Element construction
//
// CreateElement is the runtime's element-construction primitive. It
// accepts a canonical host class name, a *Class, or a Component, and
// performs no validation; most callers go through the el package, which
// additionally resolves lower-case tag names and rewrites the Change,
// Event and Tag convenience props.
//
// # Component classes
//
// Extend adapts a plain member declaration into a component class: the
// "Constructor" member becomes the class initializer and every other
// member is copied onto the class verbatim.
package vdom
