// Package el provides the element-construction DSL for Facet.
//
// It is a convenience layer over github.com/facet-dev/facet/pkg/vdom:
// lower-case string tags stand in for canonical host class names, and the
// grouped Change, Event and Tag props are expressed as nested mappings
// instead of the runtime's flat key-object convention.
//
// Typical usage:
//
//	import (
//	    "github.com/facet-dev/facet/el"
//	)
//
//	el.New("frame", el.Props{
//	    "Size": size,
//	    "Event": el.Events{
//	        "Activated": onActivated,
//	    },
//	},
//	    el.New("textlabel", el.Props{"Text": "Hello"}),
//	)
//
// New performs no validation: unknown tags and malformed props are passed
// through to the runtime unchanged.
package el
