package vdom

// ChangedKey keys a property-changed-signal handler in a Props bag.
// Two ChangedKey values for the same property are equal, so handlers can
// be stored and looked up with a fresh key.
type ChangedKey struct {
	Property string
}

// String returns the string representation of the key.
func (k ChangedKey) String() string {
	return "Changed(" + k.Property + ")"
}

// EventKey keys an event-signal handler in a Props bag.
type EventKey struct {
	Name string
}

// String returns the string representation of the key.
func (k EventKey) String() string {
	return "Event(" + k.Name + ")"
}

// tagKey is the type of the Tag singleton.
type tagKey struct{}

func (tagKey) String() string {
	return "Tag"
}

// Tag keys the collection tag entry in a Props bag.
var Tag = tagKey{}

// Changed returns the Props key for the named property's changed signal.
func Changed(property string) ChangedKey {
	return ChangedKey{Property: property}
}

// Event returns the Props key for the named event signal.
func Event(name string) EventKey {
	return EventKey{Name: name}
}
