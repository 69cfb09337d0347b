package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal display using glamour.
type MarkdownRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Terminal width (0 = auto-detect)
}

// NewMarkdownRenderer creates a markdown renderer for the given output
// format. Plain-text formats use glamour's "notty" style so the output
// stays readable when piped.
func NewMarkdownRenderer(format Format) *MarkdownRenderer {
	style := "auto"
	if format != FormatTerminal {
		style = "notty"
	}
	return &MarkdownRenderer{Style: style}
}

// Render converts markdown to terminal output. On any rendering error the
// original content is returned unchanged.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStandardStyle(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
