// Package ui provides output format detection and styling for plinth's
// terminal output. Rich output (colors, rendered markdown) is used only
// when the destination is a capable terminal; plain text otherwise.
package ui

import "plinth/pkg/ui/styles"

// Sprint returns text decorated with the named style when the format is
// FormatTerminal, and unchanged for any other format.
func Sprint(format Format, style string, text string) string {
	if format != FormatTerminal {
		return text
	}
	return styles.GetStyle(style).Render(text)
}
