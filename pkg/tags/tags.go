// Package tags provides the static tag table for Facet.
//
// The table maps lower-cased host class names to their canonical form,
// so templating code can write "frame" or "textlabel" where the host
// expects "Frame" or "TextLabel". It is generated offline from the host
// platform's API dump by "facet gen tags" (see table_gen.go) and covers
// every creatable class at the recorded dump version.
//
// The table is read-only after package init and safe for unsynchronized
// concurrent reads.
package tags

import "sort"

// Resolve returns the canonical host class name for a pre-lowered tag
// name, and whether the table has an entry for it. Lookups are exact:
// the table keys are already lower-cased, so mixed-case input misses.
func Resolve(name string) (string, bool) {
	class, ok := canonical[name]
	return class, ok
}

// Canonical returns the canonical class name for name, or name itself
// when the table has no entry for it.
func Canonical(name string) string {
	if class, ok := canonical[name]; ok {
		return class
	}
	return name
}

// Names returns all canonical class names in the table, sorted.
func Names() []string {
	names := make([]string, 0, len(canonical))
	for _, class := range canonical {
		names = append(names, class)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries in the table.
func Len() int {
	return len(canonical)
}

// Version returns the API dump version the table was generated from.
func Version() string {
	return tableVersion
}
