package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("hello")
	if node.Kind != KindText || node.Text != "hello" {
		t.Errorf("Text() = %+v, want text node %q", node, "hello")
	}
}

func TestTextf(t *testing.T) {
	node := Textf("%d items", 3)
	if node.Text != "3 items" {
		t.Errorf("Textf() = %q, want %q", node.Text, "3 items")
	}
}

func TestFragment(t *testing.T) {
	comp := Func(func() *VNode { return Text("c") })
	node := Fragment(
		Text("a"),
		nil,
		[]*VNode{Text("b"), nil},
		"inline",
		comp,
	)

	if node.Kind != KindFragment {
		t.Fatalf("Kind = %v, want %v", node.Kind, KindFragment)
	}
	if len(node.Children) != 4 {
		t.Fatalf("len(Children) = %d, want 4", len(node.Children))
	}
	if node.Children[2].Text != "inline" {
		t.Errorf("string child not converted to text node: %+v", node.Children[2])
	}
	if node.Children[3].Kind != KindComponent || node.Children[3].Comp != comp {
		t.Errorf("component child not wrapped: %+v", node.Children[3])
	}
}

func TestConditionals(t *testing.T) {
	node := Text("x")

	if If(true, node) != node || If(false, node) != nil {
		t.Error("If should return the node only when the condition holds")
	}
	if IfElse(true, node, nil) != node || IfElse(false, nil, node) != node {
		t.Error("IfElse should pick by condition")
	}
	if Unless(false, node) != node || Unless(true, node) != nil {
		t.Error("Unless is the inverse of If")
	}
	called := false
	if When(false, func() *VNode { called = true; return node }) != nil || called {
		t.Error("When should not evaluate the function when false")
	}
	if When(true, func() *VNode { return node }) != node {
		t.Error("When should evaluate the function when true")
	}
	if Nothing() != nil {
		t.Error("Nothing should return nil")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(item string, index int) *VNode {
		if item == "b" {
			return nil
		}
		return Text(item)
	})
	if len(nodes) != 2 || nodes[0].Text != "a" || nodes[1].Text != "c" {
		t.Errorf("Range() = %v, want [a c]", nodes)
	}
}

func TestRepeat(t *testing.T) {
	nodes := Repeat(3, func(i int) *VNode { return Textf("%d", i) })
	if len(nodes) != 3 || nodes[2].Text != "2" {
		t.Errorf("Repeat() = %v, want 3 numbered nodes", nodes)
	}
	if Repeat(0, func(i int) *VNode { return nil }) != nil {
		t.Error("Repeat(0) should return nil")
	}
}
