package mustache

import (
	"strings"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

type nodeKind int

const (
	textNode nodeKind = iota
	variableNode
	sectionNode
	invertedNode
)

// node is one parsed template element. text holds literal content for
// textNode and the referenced name for the other kinds.
type node struct {
	kind     nodeKind
	text     string
	children []node
}

// Render substitutes ctx bindings into tmpl and returns the result.
// Unbound names render as empty text; input containing no tags is
// returned unchanged.
func Render(tmpl string, ctx *Context) string {
	if !strings.Contains(tmpl, openDelim) {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	renderNodes(&b, parse(tmpl), ctx, "")
	return b.String()
}

// frame is an open section while parsing.
type frame struct {
	kind     nodeKind
	name     string
	children []node
}

func parse(tmpl string) []node {
	stack := []frame{{}}

	appendText := func(text string) {
		top := &stack[len(stack)-1]
		top.children = append(top.children, node{kind: textNode, text: text})
	}
	appendNode := func(n node) {
		top := &stack[len(stack)-1]
		top.children = append(top.children, n)
	}

	pos := 0
	for pos < len(tmpl) {
		open := strings.Index(tmpl[pos:], openDelim)
		if open < 0 {
			appendText(tmpl[pos:])
			break
		}
		open += pos

		end := strings.Index(tmpl[open+len(openDelim):], closeDelim)
		if end < 0 {
			// Unterminated tag, keep the rest as literal text.
			appendText(tmpl[pos:])
			break
		}
		end += open + len(openDelim)

		if open > pos {
			appendText(tmpl[pos:open])
		}
		tag := strings.TrimSpace(tmpl[open+len(openDelim) : end])
		pos = end + len(closeDelim)

		switch {
		case tag == "":
			// An empty tag produces no output.
		case tag[0] == '!':
			// Comment.
		case tag[0] == '#':
			stack = append(stack, frame{kind: sectionNode, name: strings.TrimSpace(tag[1:])})
		case tag[0] == '^':
			stack = append(stack, frame{kind: invertedNode, name: strings.TrimSpace(tag[1:])})
		case tag[0] == '/':
			name := strings.TrimSpace(tag[1:])
			if top := len(stack) - 1; top > 0 && stack[top].name == name {
				f := stack[top]
				stack = stack[:top]
				appendNode(node{kind: f.kind, text: f.name, children: f.children})
			}
			// A closer with no matching open section is dropped.
		default:
			appendNode(node{kind: variableNode, text: tag})
		}
	}

	// Sections still open at the end of input close there.
	for len(stack) > 1 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		appendNode(node{kind: f.kind, text: f.name, children: f.children})
	}

	return stack[0].children
}

// renderNodes walks the tree writing output. element carries the value
// of {{.}} inside the innermost section.
func renderNodes(b *strings.Builder, nodes []node, ctx *Context, element string) {
	for _, n := range nodes {
		switch n.kind {
		case textNode:
			b.WriteString(n.text)

		case variableNode:
			if n.text == "." {
				b.WriteString(element)
				continue
			}
			if v, ok := ctx.StringValue(n.text); ok {
				b.WriteString(v)
			}

		case sectionNode:
			if list, ok := ctx.ListValue(n.text); ok {
				for _, el := range list {
					renderNodes(b, n.children, ctx, el)
				}
				continue
			}
			if v, ok := ctx.StringValue(n.text); ok && v != "" {
				renderNodes(b, n.children, ctx, v)
			}

		case invertedNode:
			if !truthy(ctx, n.text) {
				renderNodes(b, n.children, ctx, element)
			}
		}
	}
}

// truthy reports whether name is bound to a non-empty list or a
// non-empty scalar.
func truthy(ctx *Context, name string) bool {
	if list, ok := ctx.ListValue(name); ok {
		return len(list) > 0
	}
	v, ok := ctx.StringValue(name)
	return ok && v != ""
}
