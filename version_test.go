package querybox

import (
	"regexp"
	"testing"
)

var releasePattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z.-]+)?$`)

func TestVersion_ReleaseNumber(t *testing.T) {
	v := Version()
	if !releasePattern.MatchString(v) {
		t.Fatalf("VERSION must hold a major.minor.patch release: got %q", v)
	}
}

func TestVersionTag(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}
