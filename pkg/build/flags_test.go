// SPDX-License-Identifier: MIT
package build

import "testing"

func TestInitializeDefaults(t *testing.T) {
	Initialize()
	flags := GetBuildFlags()

	if flags.Name == "" {
		t.Error("expected a default name for development builds")
	}
	if flags.Version == "" {
		t.Error("expected a default version for development builds")
	}
}

func TestInitializeAppliesLdflags(t *testing.T) {
	origName, origVersion := buildName, buildVersion
	t.Cleanup(func() {
		buildName, buildVersion = origName, origVersion
	})

	buildName = "soundscope-ci"
	buildVersion = "1.2.3"
	Initialize()

	flags := GetBuildFlags()
	if flags.Name != "soundscope-ci" {
		t.Errorf("Name = %q, want %q", flags.Name, "soundscope-ci")
	}
	if flags.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", flags.Version, "1.2.3")
	}
}
