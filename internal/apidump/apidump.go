// Package apidump fetches and parses the host platform's API dump.
//
// The dump enumerates every class the host exposes, with its superclass
// and tags. The tag table generator keeps only creatable classes: those
// tagged neither NotCreatable nor Service.
package apidump

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/facet-dev/facet/internal/errors"
)

// Tags that exclude a class from the tag table.
const (
	TagNotCreatable = "NotCreatable"
	TagService      = "Service"
)

// Dump is the parsed API dump.
type Dump struct {
	Version string  `json:"version"`
	Classes []Class `json:"classes"`
}

// Class is a single class entry in the dump.
type Class struct {
	Name       string   `json:"name"`
	Superclass string   `json:"superclass,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Creatable reports whether instances of the class can be constructed.
func (c Class) Creatable() bool {
	for _, tag := range c.Tags {
		if tag == TagNotCreatable || tag == TagService {
			return false
		}
	}
	return true
}

// CreatableClasses returns the dump's creatable classes, sorted by name.
func (d *Dump) CreatableClasses() []Class {
	out := make([]Class, 0, len(d.Classes))
	for _, c := range d.Classes {
		if c.Creatable() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Parse decodes an API dump from r.
func Parse(r io.Reader) (*Dump, error) {
	var dump Dump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, errors.New("E020").Wrap(err)
	}
	return &dump, nil
}

// ParseFile decodes an API dump from a file on disk.
func ParseFile(path string) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("E061").
			WithDetail("Could not open " + path + ": " + err.Error())
	}
	defer f.Close()
	return Parse(f)
}

// Fetch downloads and parses an API dump from url.
func Fetch(ctx context.Context, url string) (*Dump, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New("E001").Wrap(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.New("E001").
			WithDetail("Could not connect to dump host: " + err.Error()).
			WithSuggestion("Check your internet connection")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("E002").
			WithDetail(fmt.Sprintf("Dump host returned status %d for %s", resp.StatusCode, url))
	}

	return Parse(resp.Body)
}
