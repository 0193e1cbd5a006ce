// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package stringgen

import "testing"

func TestConfigureMapRejectsUnknownKey(t *testing.T) {
	t.Cleanup(Reset)
	err := ConfigureMap(map[string]any{"bogus": 1})
	if err == nil {
		t.Fatal("ConfigureMap with an unknown key succeeded, want an error")
	}
}

func TestConfigureMapRejectsWrongType(t *testing.T) {
	t.Cleanup(Reset)
	err := ConfigureMap(map[string]any{"max_repeat": "10"})
	if err == nil {
		t.Fatal("ConfigureMap with a string max_repeat succeeded, want an error")
	}
}

func TestConfigureMapAppliesValidKeys(t *testing.T) {
	t.Cleanup(Reset)
	if err := ConfigureMap(map[string]any{"max_repeat": 7, "alphabet": "xy"}); err != nil {
		t.Fatal(err)
	}
	maxRepeat, alphabet := currentDefaults()
	if maxRepeat != 7 || alphabet != "xy" {
		t.Errorf("currentDefaults() = (%d, %q), want (7, %q)", maxRepeat, alphabet, "xy")
	}
}

func TestResetClearsDefaults(t *testing.T) {
	if err := Configure(ConfigMaxRepeat(3)); err != nil {
		t.Fatal(err)
	}
	Reset()
	maxRepeat, alphabet := currentDefaults()
	if maxRepeat != 0 || alphabet != "" {
		t.Errorf("currentDefaults() after Reset() = (%d, %q), want (0, \"\")", maxRepeat, alphabet)
	}
}
