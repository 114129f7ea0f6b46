package el

// Factory functions for common host classes. Each delegates to New, so
// the convenience props are rewritten exactly as for string tags.

// Container elements

func Frame(props Props, children ...*VNode) *VNode {
	return New("Frame", props, children...)
}
func ScrollingFrame(props Props, children ...*VNode) *VNode {
	return New("ScrollingFrame", props, children...)
}
func CanvasGroup(props Props, children ...*VNode) *VNode {
	return New("CanvasGroup", props, children...)
}
func ViewportFrame(props Props, children ...*VNode) *VNode {
	return New("ViewportFrame", props, children...)
}

// Text and image elements

func TextLabel(props Props, children ...*VNode) *VNode {
	return New("TextLabel", props, children...)
}
func TextButton(props Props, children ...*VNode) *VNode {
	return New("TextButton", props, children...)
}
func TextBox(props Props, children ...*VNode) *VNode {
	return New("TextBox", props, children...)
}
func ImageLabel(props Props, children ...*VNode) *VNode {
	return New("ImageLabel", props, children...)
}
func ImageButton(props Props, children ...*VNode) *VNode {
	return New("ImageButton", props, children...)
}

// Surface roots

func ScreenGui(props Props, children ...*VNode) *VNode {
	return New("ScreenGui", props, children...)
}
func BillboardGui(props Props, children ...*VNode) *VNode {
	return New("BillboardGui", props, children...)
}
func SurfaceGui(props Props, children ...*VNode) *VNode {
	return New("SurfaceGui", props, children...)
}

// Layout and constraint elements

func UIListLayout(props Props) *VNode {
	return New("UIListLayout", props)
}
func UIGridLayout(props Props) *VNode {
	return New("UIGridLayout", props)
}
func UIPadding(props Props) *VNode {
	return New("UIPadding", props)
}
func UICorner(props Props) *VNode {
	return New("UICorner", props)
}
func UIStroke(props Props) *VNode {
	return New("UIStroke", props)
}
func UIScale(props Props) *VNode {
	return New("UIScale", props)
}

// Custom creates an element with an arbitrary tag name.
func Custom(tag string, props Props, children ...*VNode) *VNode {
	return New(tag, props, children...)
}
