package el

import "github.com/facet-dev/facet/pkg/vdom"

// Convenience keys consumed by New for host elements.
const (
	// ChangeProp groups property-changed handlers, keyed by property name.
	ChangeProp = "Change"
	// EventProp groups event handlers, keyed by event name.
	EventProp = "Event"
	// TagProp holds the element's collection tag.
	TagProp = "Tag"
)

// Events groups event-signal handlers under the Event convenience key,
// keyed by event name.
type Events map[string]any

// Changes groups property-changed handlers under the Change convenience
// key, keyed by property name.
type Changes map[string]any

// rewriteProps consumes the Change, Event and Tag convenience keys from
// props, redistributing their contents under the runtime's key objects.
// The bag is mutated in place; a bag without convenience keys is left
// untouched. Applying it to an already-rewritten bag is a no-op.
func rewriteProps(props vdom.Props) {
	if nested, ok := asBag(props[ChangeProp]); ok {
		for property, handler := range nested {
			props[vdom.Changed(property)] = handler
		}
		delete(props, ChangeProp)
	}
	if nested, ok := asBag(props[EventProp]); ok {
		for name, handler := range nested {
			props[vdom.Event(name)] = handler
		}
		delete(props, EventProp)
	}
	if tag, ok := props[TagProp]; ok {
		props[vdom.Tag] = tag
		delete(props, TagProp)
	}
}

// asBag normalizes the accepted nested bag shapes. A value of any other
// type is not consumed and is left for the runtime to reject.
func asBag(v any) (map[string]any, bool) {
	switch b := v.(type) {
	case Events:
		return b, true
	case Changes:
		return b, true
	case map[string]any:
		return b, true
	case vdom.Props:
		out := make(map[string]any, len(b))
		for key, val := range b {
			if s, ok := key.(string); ok {
				out[s] = val
			}
		}
		return out, true
	}
	return nil, false
}
