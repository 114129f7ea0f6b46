// Package facet provides the public API for the Facet element DSL.
//
// This is the recommended import for most applications:
//
//	import "github.com/facet-dev/facet"
//
// Usage:
//
//	tree := facet.New("frame", facet.Props{
//	    "Size": size,
//	    "Event": facet.Events{
//	        "Activated": onActivated,
//	    },
//	})
//
// The full element DSL lives in github.com/facet-dev/facet/el and the
// underlying tree primitives in github.com/facet-dev/facet/pkg/vdom.
package facet

import (
	"github.com/facet-dev/facet/el"
	"github.com/facet-dev/facet/pkg/vdom"
)

// =============================================================================
// Tree primitives (pkg/vdom exposed as facet.*)
// =============================================================================

// VNode is the element description produced by New.
type VNode = vdom.VNode

// VKind is the node type discriminator.
type VKind = vdom.VKind

// Props holds element properties and signal handlers.
type Props = vdom.Props

// Component is anything that can render to a VNode.
type Component = vdom.Component

// Instance is a live component created from a Class.
type Instance = vdom.Instance

// Events groups event-signal handlers under the Event convenience key.
type Events = el.Events

// Changes groups property-changed handlers under the Change convenience key.
type Changes = el.Changes

// =============================================================================
// Entry points
// =============================================================================

// New constructs an element description. Lower-case tag names resolve to
// canonical host class names, and the Change, Event and Tag convenience
// props are rewritten to the runtime's signal keys. See el.New.
func New(typ any, props Props, children ...*VNode) *VNode {
	return el.New(typ, props, children...)
}

// Class adapts a plain member declaration into a component class. The
// "Constructor" member becomes the class initializer; every other member
// is copied onto the class verbatim. See vdom.Extend.
func Class(name string, members map[string]any) *vdom.Class {
	return vdom.Extend(name, members)
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return vdom.Func(render)
}

// =============================================================================
// Signal keys
// =============================================================================

// Changed returns the Props key for the named property's changed signal.
func Changed(property string) vdom.ChangedKey {
	return vdom.Changed(property)
}

// Event returns the Props key for the named event signal.
func Event(name string) vdom.EventKey {
	return vdom.Event(name)
}

// Tag keys the collection tag entry in a Props bag.
var Tag = vdom.Tag
