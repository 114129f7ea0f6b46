package vdom

import (
	"reflect"
	"testing"
)

func TestExtendRemapsConstructor(t *testing.T) {
	ctor := func(i *Instance) { i.State["count"] = 0 }
	greet := func(i *Instance) string { return "hi" }
	render := func(i *Instance) *VNode { return Text("x") }

	class := Extend("Counter", map[string]any{
		"Constructor": ctor,
		"Greet":       greet,
		"Render":      render,
	})

	if class.Name() != "Counter" {
		t.Errorf("Name() = %q, want %q", class.Name(), "Counter")
	}

	// The initializer slot holds the original constructor.
	if got := reflect.ValueOf(class.Init()).Pointer(); got != reflect.ValueOf(ctor).Pointer() {
		t.Error("Init() does not hold the original constructor")
	}

	// The other members are copied verbatim, and the constructor is not.
	wantNames := []string{"Greet", "Render"}
	if got := class.MemberNames(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("MemberNames() = %v, want %v", got, wantNames)
	}
	m, ok := class.Member("Greet")
	if !ok {
		t.Fatal("Member(Greet) missing")
	}
	if got := reflect.ValueOf(m).Pointer(); got != reflect.ValueOf(greet).Pointer() {
		t.Error("Member(Greet) is not the declared function")
	}
	if _, ok := class.Member("Constructor"); ok {
		t.Error("Constructor should be remapped, not kept as a member")
	}
}

func TestExtendNonFuncConstructorStaysMember(t *testing.T) {
	class := Extend("Odd", map[string]any{
		"Constructor": 42,
	})
	if class.Init() != nil {
		t.Error("Init() should be nil for a non-func constructor")
	}
	if m, ok := class.Member("Constructor"); !ok || m != 42 {
		t.Errorf("Member(Constructor) = %v, %v; want 42, true", m, ok)
	}
}

func TestClassNewRunsInitializer(t *testing.T) {
	class := Extend("Counter", map[string]any{
		"Constructor": func(i *Instance) {
			i.State["count"] = i.Props["Start"]
		},
	})

	inst := class.New(Props{"Start": 7})
	if inst.State["count"] != 7 {
		t.Errorf("State[count] = %v, want 7", inst.State["count"])
	}
	if inst.Class() != class {
		t.Error("Instance.Class() should return the defining class")
	}
}

func TestClassNewWithoutInitializer(t *testing.T) {
	class := Extend("Plain", nil)
	inst := class.New(nil)
	if inst == nil || inst.State == nil {
		t.Fatal("New() should produce an instance with initialized state")
	}
}

func TestInstanceRender(t *testing.T) {
	class := Extend("Label", map[string]any{
		"Constructor": func(i *Instance) { i.State["text"] = "hello" },
		"Render": func(i *Instance) *VNode {
			return Text(i.State["text"].(string))
		},
	})

	node := class.New(nil).Render()
	if node == nil || node.Text != "hello" {
		t.Errorf("Render() = %v, want text node %q", node, "hello")
	}
}

func TestInstanceRenderMissingMember(t *testing.T) {
	if got := Extend("Empty", nil).New(nil).Render(); got != nil {
		t.Errorf("Render() = %v, want nil for a class without a Render member", got)
	}
}
