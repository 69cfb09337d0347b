// Package includes carries the assets compiled into the binary: the
// bundled license texts and the default README template. The texts are
// themselves templates, rendered against the project context before
// being written, so they may reference {{year}}, {{name}} and the other
// standard keys.
package includes

import (
	_ "embed"

	"plinth/pkg/types"
)

//go:embed licenses/BSD3
var bsd3 string

//go:embed licenses/BSD
var bsd string

//go:embed licenses/GPL3
var gpl3 string

//go:embed licenses/MIT
var mit string

//go:embed licenses/AllRightsReserved
var allRightsReserved string

// Readme is the template written to README.md when a manifest asks for
// one.
//
//go:embed README.md
var Readme string

// LicenseText returns the bundled text for a license. The second return
// is false when no text is bundled for it, which is the case for
// unknown licenses.
func LicenseText(license types.License) (string, bool) {
	switch license.Kind {
	case types.LicenseBSD3:
		return bsd3, true
	case types.LicenseBSD:
		return bsd, true
	case types.LicenseGPL3:
		return gpl3, true
	case types.LicenseMIT:
		return mit, true
	case types.LicenseAllRightsReserved:
		return allRightsReserved, true
	default:
		return "", false
	}
}
