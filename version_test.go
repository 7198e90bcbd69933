package scalindent

import "testing"

func TestVersionIsSemver(t *testing.T) {
	if !VersionIsSemver() {
		t.Fatalf("embedded version %q is not valid SemVer", Version())
	}
}

func TestVersionTag(t *testing.T) {
	if got := VersionTag(); got != "v"+Version() {
		t.Fatalf("got=%q, want v-prefixed version", got)
	}
}

func TestIsSemver(t *testing.T) {
	valid := []string{"0.1.0", "1.2.3", "1.0.0-rc.1", "2.0.0+build.5"}
	for _, v := range valid {
		if !IsSemver(v) {
			t.Fatalf("IsSemver(%q)=false, want true", v)
		}
	}
	invalid := []string{"", "1.2", "v1.2.3", "01.2.3", "1.2.3.4"}
	for _, v := range invalid {
		if IsSemver(v) {
			t.Fatalf("IsSemver(%q)=true, want false", v)
		}
	}
}
