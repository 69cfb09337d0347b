package types

// Author is the identity substituted into templates, read from the
// [author] table of the global settings file.
type Author struct {
	Name           string `toml:"name"`
	Email          string `toml:"email"`
	GithubUsername string `toml:"github_username,omitempty"`
}

// CustomKeys is an arbitrary user-defined table folded into the
// substitution context. The nested "toml" table mirrors the on-disk
// layout: keys live under [custom_keys.toml].
type CustomKeys struct {
	Values map[string]interface{} `toml:"toml"`
}

// Strings returns the string-valued entries of the table. Values of any
// other type are skipped.
func (c *CustomKeys) Strings() map[string]string {
	if c == nil {
		return nil
	}

	out := make(map[string]string, len(c.Values))
	for key, value := range c.Values {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}
