package types

// LicenseKind enumerates the licenses with built-in texts. The zero value
// is LicenseUnknown so an unset License never aliases a real license.
type LicenseKind int

const (
	LicenseUnknown LicenseKind = iota
	LicenseBSD3
	LicenseBSD
	LicenseGPL3
	LicenseMIT
	LicenseAllRightsReserved
)

// License is a closed set of known licenses plus an Unknown variant that
// carries the original unrecognized value for logging.
type License struct {
	Kind LicenseKind

	// Raw is the original configuration value; set only when Kind is
	// LicenseUnknown.
	Raw string
}

// licenseTokens maps the serialized names accepted in manifests and
// global settings to their kinds.
var licenseTokens = map[string]LicenseKind{
	"BSD3":              LicenseBSD3,
	"BSD":               LicenseBSD,
	"GPL3":              LicenseGPL3,
	"MIT":               LicenseMIT,
	"AllRightsReserved": LicenseAllRightsReserved,
}

// ParseLicense maps a serialized license name to a License. Unrecognized
// names produce an Unknown license carrying the original string.
func ParseLicense(s string) License {
	if kind, ok := licenseTokens[s]; ok {
		return License{Kind: kind}
	}
	return License{Kind: LicenseUnknown, Raw: s}
}

// Known reports whether the license has a built-in text.
func (l License) Known() bool {
	return l.Kind != LicenseUnknown
}

// String returns the display name of the license, as substituted into
// templates under the "license" key. Unknown licenses display their
// original value.
func (l License) String() string {
	switch l.Kind {
	case LicenseBSD3:
		return "BSD3"
	case LicenseBSD:
		return "BSD"
	case LicenseGPL3:
		return "GPL3"
	case LicenseMIT:
		return "MIT"
	case LicenseAllRightsReserved:
		return "All Rights Reserved"
	default:
		if l.Raw != "" {
			return l.Raw
		}
		return "Unknown License"
	}
}

// token returns the serialized name for a known license.
func (l License) token() string {
	switch l.Kind {
	case LicenseBSD3:
		return "BSD3"
	case LicenseBSD:
		return "BSD"
	case LicenseGPL3:
		return "GPL3"
	case LicenseMIT:
		return "MIT"
	case LicenseAllRightsReserved:
		return "AllRightsReserved"
	default:
		return l.Raw
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (l *License) UnmarshalText(text []byte) error {
	*l = ParseLicense(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML encoding.
func (l License) MarshalText() ([]byte, error) {
	return []byte(l.token()), nil
}
