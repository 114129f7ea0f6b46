package el

import (
	"reflect"
	"testing"

	"github.com/facet-dev/facet/pkg/vdom"
)

func funcPtr(v any) uintptr {
	return reflect.ValueOf(v).Pointer()
}

func TestNewResolvesTags(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"frame", "Frame"},
		{"scrollingframe", "ScrollingFrame"},
		{"textlabel", "TextLabel"},
		{"uilistlayout", "UIListLayout"},
		// Absent names pass through unchanged.
		{"nonexistenttag", "nonexistenttag"},
		// The table is pre-lowered, so mixed case misses; canonical names
		// pass through already correct.
		{"Frame", "Frame"},
		{"TextLabel", "TextLabel"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			node := New(tt.tag, nil)
			if node.Kind != vdom.KindElement {
				t.Fatalf("Kind = %v, want %v", node.Kind, vdom.KindElement)
			}
			if node.Tag != tt.want {
				t.Errorf("New(%q).Tag = %q, want %q", tt.tag, node.Tag, tt.want)
			}
		})
	}
}

func TestNewRewritesEventProp(t *testing.T) {
	f := func() {}
	props := Props{
		"Event": Events{"Activated": f},
	}

	node := New("frame", props)

	if node.Tag != "Frame" {
		t.Errorf("Tag = %q, want %q", node.Tag, "Frame")
	}
	if _, ok := props["Event"]; ok {
		t.Error("Event convenience key should be consumed")
	}
	handler, ok := props[vdom.Event("Activated")]
	if !ok {
		t.Fatal("handler not moved under the Activated event-signal key")
	}
	if funcPtr(handler) != funcPtr(f) {
		t.Error("moved handler is not the original function")
	}
	if len(props) != 1 {
		t.Errorf("len(props) = %d, want exactly the one moved entry", len(props))
	}
}

func TestNewRewritesChangeProp(t *testing.T) {
	f := func() {}
	props := Props{
		"Change": Changes{"Text": f},
	}

	New("textbox", props)

	if _, ok := props["Change"]; ok {
		t.Error("Change convenience key should be consumed")
	}
	handler, ok := props[vdom.Changed("Text")]
	if !ok {
		t.Fatal("handler not moved under the Text changed-signal key")
	}
	if funcPtr(handler) != funcPtr(f) {
		t.Error("moved handler is not the original function")
	}
}

func TestNewRewritesTagProp(t *testing.T) {
	props := Props{
		"Tag": "inventory-slot",
	}

	New("frame", props)

	if _, ok := props["Tag"]; ok {
		t.Error("Tag convenience key should be consumed")
	}
	if props[vdom.Tag] != "inventory-slot" {
		t.Errorf("props[Tag key] = %v, want %q", props[vdom.Tag], "inventory-slot")
	}
}

func TestNewRewritesAllConvenienceKeys(t *testing.T) {
	onActivated := func() {}
	onText := func() {}
	props := Props{
		"Size":   8,
		"Change": map[string]any{"Text": onText},
		"Event":  map[string]any{"Activated": onActivated},
		"Tag":    "slot",
	}

	node := New("textbox", props)

	want := 4 // Size + moved Change entry + moved Event entry + Tag
	if len(props) != want {
		t.Fatalf("len(props) = %d, want %d: %v", len(props), want, props)
	}
	if props["Size"] != 8 {
		t.Error("ordinary properties should be untouched")
	}
	if funcPtr(props[vdom.Changed("Text")]) != funcPtr(onText) {
		t.Error("Change entry not moved")
	}
	if funcPtr(props[vdom.Event("Activated")]) != funcPtr(onActivated) {
		t.Error("Event entry not moved")
	}
	if props[vdom.Tag] != "slot" {
		t.Error("Tag entry not moved")
	}
	if node.Props == nil {
		t.Fatal("delegate should receive the rewritten bag")
	}
	if reflect.ValueOf(node.Props).Pointer() != reflect.ValueOf(props).Pointer() {
		t.Error("the bag should be mutated in place, not copied")
	}
}

func TestNewIdentityWithoutConvenienceKeys(t *testing.T) {
	props := Props{
		"Size":                   8,
		"BackgroundTransparency": 0.5,
	}

	node := New("frame", props)

	if len(props) != 2 || props["Size"] != 8 || props["BackgroundTransparency"] != 0.5 {
		t.Errorf("bag without convenience keys should pass through unmodified: %v", props)
	}
	if reflect.ValueOf(node.Props).Pointer() != reflect.ValueOf(props).Pointer() {
		t.Error("the same bag should reach the delegate")
	}
}

func TestNewSecondRewriteIsNoOp(t *testing.T) {
	f := func() {}
	props := Props{
		"Event": Events{"Activated": f},
	}
	New("frame", props)

	snapshot := make(Props, len(props))
	for k, v := range props {
		snapshot[k] = v
	}

	// The convenience keys were consumed, so a second pass has nothing
	// left to move.
	New("frame", props)

	if len(props) != len(snapshot) {
		t.Fatalf("second rewrite changed the bag size: %v", props)
	}
	for k := range snapshot {
		if _, ok := props[k]; !ok {
			t.Errorf("second rewrite dropped key %v", k)
		}
	}
}

func TestNewComponentTypeSkipsRewrite(t *testing.T) {
	comp := vdom.Func(func() *VNode { return nil })
	props := Props{
		"Event": Events{"Activated": func() {}},
	}

	node := New(comp, props)

	if node.Kind != vdom.KindComponent {
		t.Fatalf("Kind = %v, want %v", node.Kind, vdom.KindComponent)
	}
	if _, ok := props["Event"]; !ok {
		t.Error("component elements should keep their bag untouched")
	}
}

func TestNewLeavesMalformedConvenienceValue(t *testing.T) {
	props := Props{
		"Change": 42, // not a mapping
	}

	New("frame", props)

	// Unrecognized shapes are not consumed; the runtime sees them as-is.
	if props["Change"] != 42 {
		t.Errorf("malformed Change value should pass through: %v", props)
	}
}

func TestNewNilProps(t *testing.T) {
	node := New("frame", nil, Text("hi"))
	if node.Props != nil {
		t.Errorf("Props = %v, want nil", node.Props)
	}
	if len(node.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1", len(node.Children))
	}
}

func TestNewAcceptsPropsBag(t *testing.T) {
	f := func() {}
	props := Props{
		"Event": Props{"Activated": f},
	}

	New("frame", props)

	if funcPtr(props[vdom.Event("Activated")]) != funcPtr(f) {
		t.Error("a vdom.Props nested bag should be accepted")
	}
}

func TestClassBuilder(t *testing.T) {
	ctor := func(i *Instance) {}
	class := Class("Widget", map[string]any{
		"Constructor": ctor,
		"Render":      func(i *Instance) *VNode { return Text("w") },
	})

	if class.Name() != "Widget" {
		t.Errorf("Name() = %q, want %q", class.Name(), "Widget")
	}
	if funcPtr(class.Init()) != funcPtr(ctor) {
		t.Error("Init() should hold the declared constructor")
	}

	node := New(class, Props{"Size": 1})
	if node.Kind != vdom.KindComponent || node.Class != class {
		t.Errorf("New(class, ...) = %+v, want component node for the class", node)
	}
}

func TestElementFactories(t *testing.T) {
	f := func() {}
	node := TextButton(Props{"Event": Events{"Activated": f}},
		TextLabel(Props{"Text": "ok"}),
	)

	if node.Tag != "TextButton" {
		t.Errorf("Tag = %q, want %q", node.Tag, "TextButton")
	}
	if funcPtr(node.Props[vdom.Event("Activated")]) != funcPtr(f) {
		t.Error("factories should rewrite convenience props")
	}
	if len(node.Children) != 1 || node.Children[0].Tag != "TextLabel" {
		t.Errorf("Children = %v, want one TextLabel", node.Children)
	}

	if got := Custom("nonexistenttag", nil); got.Tag != "nonexistenttag" {
		t.Errorf("Custom should pass unknown tags through, got %q", got.Tag)
	}
}
