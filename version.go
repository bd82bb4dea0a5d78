package querybox

import (
	_ "embed"
	"strings"
)

// versionFile is the release number kept in VERSION at the module root.
//
//go:embed VERSION
var versionFile string

// Version returns the querybox release number, such as "0.1.0".
func Version() string {
	return strings.TrimSpace(versionFile)
}

// VersionTag returns the release as printed by `querybox -version`, such as
// "v0.1.0".
func VersionTag() string {
	return "v" + Version()
}
