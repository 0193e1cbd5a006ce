// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"regexp"
	"testing"

	"github.com/gocsaf/stringgen/pkg/stringgen"
)

func TestNamedPatternsRenderAndMatch(t *testing.T) {
	named := map[string]string{
		"UUIDv4":    UUIDv4,
		"IPv4":      IPv4,
		"SemVer":    SemVer,
		"PhoneE164": PhoneE164,
		"HexColor":  HexColor,
		"ISODate":   ISODate,
	}
	for name, pattern := range named {
		gen, err := stringgen.New(pattern, stringgen.WithSeed(name))
		if err != nil {
			t.Fatalf("New(%s) failed: %v", name, err)
		}
		s, err := gen.Render()
		if err != nil {
			t.Fatalf("Render for %s failed: %v", name, err)
		}
		ok, err := regexp.MatchString("^(?:"+pattern+")$", s)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("%s: %q does not match %q", name, s, pattern)
		}
	}
}
