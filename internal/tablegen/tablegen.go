// Package tablegen emits the pkg/tags lookup table from an API dump.
//
// The output is deterministic: running it multiple times against the
// same dump produces identical bytes.
package tablegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/facet-dev/facet/internal/apidump"
	"github.com/facet-dev/facet/internal/errors"
)

const header = `// Code generated by "facet gen tags"; DO NOT EDIT.

package tags

// tableVersion is the API dump version this table was generated from.
const tableVersion = %q

// canonical maps lower-cased host class names to their canonical form.
// Only creatable classes are included.
var canonical = map[string]string{
`

// Generate renders the tags table source for the dump's creatable
// classes. Two class names that lower-case to the same tag are a
// generation error, since lookups would be ambiguous.
func Generate(dump *apidump.Dump) ([]byte, error) {
	classes := dump.CreatableClasses()
	if len(classes) == 0 {
		return nil, errors.New("E021")
	}

	entries := make(map[string]string, len(classes))
	for _, class := range classes {
		tag := strings.ToLower(class.Name)
		if prev, ok := entries[tag]; ok && prev != class.Name {
			return nil, errors.New("E040").
				WithDetail(fmt.Sprintf("%q and %q both lower-case to %q", prev, class.Name, tag))
		}
		entries[tag] = class.Name
	}

	tagNames := make([]string, 0, len(entries))
	for tag := range entries {
		tagNames = append(tagNames, tag)
	}
	sort.Strings(tagNames)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, header, dump.Version)
	for _, tag := range tagNames {
		fmt.Fprintf(&buf, "\t%q: %q,\n", tag, entries[tag])
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.New("E041").Wrap(err)
	}
	return src, nil
}
