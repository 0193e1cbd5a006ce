// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// Overrides is a user-supplied pack of named patterns, loaded from a TOML
// file with one `[name]` table per pattern and a `source` key.
type Overrides struct {
	entries map[string]string
}

type overrideEntry struct {
	Source string `toml:"source"`
}

// LoadOverrides decodes path into an Overrides pack.
func LoadOverrides(path string) (*Overrides, error) {
	var raw map[string]overrideEntry
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	o := &Overrides{entries: make(map[string]string, len(raw))}
	for name, entry := range raw {
		o.entries[name] = entry.Source
	}
	return o, nil
}

// Get returns the pattern source registered under name, and whether it
// was found.
func (o *Overrides) Get(name string) (string, bool) {
	if o == nil {
		return "", false
	}
	s, ok := o.entries[name]
	return s, ok
}

// Write serialises the pack back to TOML, mirroring Template.Write's
// toml.NewEncoder(out).Encode(m) shape.
func (o *Overrides) Write(out io.Writer) error {
	raw := make(map[string]overrideEntry, len(o.entries))
	for name, source := range o.entries {
		raw[name] = overrideEntry{Source: source}
	}
	return toml.NewEncoder(out).Encode(raw)
}

// WriteFile writes the pack to path, creating or truncating it.
func (o *Overrides) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return o.Write(f)
}

// Names returns the registered pattern names in sorted order.
func (o *Overrides) Names() []string {
	names := make([]string, 0, len(o.entries))
	for name := range o.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
