package types

// VCSKind enumerates the supported version control tools. The zero value
// is VCSUnknown so an unset VersionControl never aliases a real tool.
type VCSKind int

const (
	VCSUnknown VCSKind = iota
	VCSGit
	VCSMercurial
	VCSDarcs
	VCSPijul
)

// VersionControl is a closed set of known version control tools plus an
// Unknown variant carrying the original unrecognized value.
type VersionControl struct {
	Kind VCSKind

	// Raw is the original configuration value; set only when Kind is
	// VCSUnknown.
	Raw string
}

// ParseVersionControl maps a serialized tool name to a VersionControl.
// Both "hg" and "mercurial" select Mercurial. Unrecognized names produce
// an Unknown value carrying the original string.
func ParseVersionControl(s string) VersionControl {
	switch s {
	case "git":
		return VersionControl{Kind: VCSGit}
	case "hg", "mercurial":
		return VersionControl{Kind: VCSMercurial}
	case "darcs":
		return VersionControl{Kind: VCSDarcs}
	case "pijul":
		return VersionControl{Kind: VCSPijul}
	default:
		return VersionControl{Kind: VCSUnknown, Raw: s}
	}
}

// Known reports whether the value names a supported tool.
func (v VersionControl) Known() bool {
	return v.Kind != VCSUnknown
}

// String returns the canonical tool name. Unknown values display their
// original string.
func (v VersionControl) String() string {
	switch v.Kind {
	case VCSGit:
		return "git"
	case VCSMercurial:
		return "mercurial"
	case VCSDarcs:
		return "darcs"
	case VCSPijul:
		return "pijul"
	default:
		if v.Raw != "" {
			return v.Raw
		}
		return "unknown"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (v *VersionControl) UnmarshalText(text []byte) error {
	*v = ParseVersionControl(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML encoding.
func (v VersionControl) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
