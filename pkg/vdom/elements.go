package vdom

// CreateElement constructs an element description for typ.
//
// typ may be a canonical host class name (string), a *Class produced by
// Extend, or any Component. The props bag and children are carried as
// given; no validation is performed here. Unknown string tags construct
// an element node with the raw tag, which the reconciler rejects when the
// tree is mounted.
func CreateElement(typ any, props Props, children ...*VNode) *VNode {
	node := &VNode{
		Props:    props,
		Children: compact(children),
	}

	switch v := typ.(type) {
	case string:
		node.Kind = KindElement
		node.Tag = v
	case *Class:
		node.Kind = KindComponent
		node.Class = v
	case Component:
		node.Kind = KindComponent
		node.Comp = v
	default:
		// Anything else constructs an element with an empty tag, which
		// the reconciler rejects at mount time.
		node.Kind = KindElement
	}

	return node
}

// compact drops nil entries so callers can pass conditional children.
func compact(children []*VNode) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			out = append(out, child)
		}
	}
	return out
}
