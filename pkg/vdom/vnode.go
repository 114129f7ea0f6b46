package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // Host element ("Frame", "TextLabel", etc.)
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the element description handed to the reconciler.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Canonical host class name (e.g. "Frame")
	Props    Props     // Properties and signal handlers
	Children []*VNode  // Child nodes
	Text     string    // For KindText
	Class    *Class    // For KindComponent built from a Class
	Comp     Component // For KindComponent built from a Component value
}

// Props holds element properties and signal handlers.
//
// Ordinary properties are keyed by their string name. Signal handlers and
// the collection tag are keyed by the runtime's key objects: ChangedKey,
// EventKey and Tag (see keys.go).
type Props map[any]any

// HasSignals returns true if this node carries signal handlers.
func (v *VNode) HasSignals() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		switch key.(type) {
		case ChangedKey, EventKey:
			return true
		}
	}
	return false
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
