package vdom

import "sort"

// InitMember is the conventional name of the declaration member that
// becomes a class initializer.
const InitMember = "Constructor"

// RenderMember is the name of the declaration member invoked to render
// an instance.
const RenderMember = "Render"

// Class is a component class produced by Extend.
type Class struct {
	name    string
	init    func(*Instance)
	members map[string]any
}

// Instance is a live component created from a Class.
type Instance struct {
	Props Props
	State map[string]any

	class *Class
}

// Extend adapts a plain member declaration into a component class.
//
// The member under "Constructor" becomes the class initializer; every
// other member is copied onto the class unchanged. The constructor must
// be a func(*Instance); a value of any other type is kept as an ordinary
// member.
func Extend(name string, members map[string]any) *Class {
	c := &Class{
		name:    name,
		members: make(map[string]any, len(members)),
	}
	for key, member := range members {
		if key == InitMember {
			if init, ok := member.(func(*Instance)); ok {
				c.init = init
				continue
			}
		}
		c.members[key] = member
	}
	return c
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Init returns the class initializer, or nil if the declaration had no
// constructor.
func (c *Class) Init() func(*Instance) {
	return c.init
}

// Member returns the named member copied from the declaration.
func (c *Class) Member(name string) (any, bool) {
	m, ok := c.members[name]
	return m, ok
}

// MemberNames returns the names of all copied members, sorted.
func (c *Class) MemberNames() []string {
	names := make([]string, 0, len(c.members))
	for name := range c.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates an instance of the class and runs its initializer.
func (c *Class) New(props Props) *Instance {
	inst := &Instance{
		Props: props,
		State: make(map[string]any),
		class: c,
	}
	if c.init != nil {
		c.init(inst)
	}
	return inst
}

// Class returns the class this instance was created from.
func (i *Instance) Class() *Class {
	return i.class
}

// Render invokes the class's Render member. It returns nil if the
// declaration had no Render member of the expected shape.
func (i *Instance) Render() *VNode {
	m, ok := i.class.members[RenderMember]
	if !ok {
		return nil
	}
	render, ok := m.(func(*Instance) *VNode)
	if !ok {
		return nil
	}
	return render(i)
}
