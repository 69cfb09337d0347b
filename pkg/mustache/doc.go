// Package mustache implements the token substitution grammar used for
// paths, file contents, and the built-in license and README texts.
//
// The grammar is mustache-style and deliberately small:
//
//	{{name}}            interpolates a scalar binding
//	{{#name}}…{{/name}} repeats its body for each element of a list
//	                    binding, or renders it once when name is bound
//	                    to a truthy scalar
//	{{^name}}…{{/name}} renders its body when name is absent or falsy
//	{{.}}               interpolates the current list element
//	{{!…}}              comment, produces no output
//
// Referencing an unbound name renders as empty text and is never an
// error. Rendering is lenient about malformed input: a tag that never
// closes is literal text, a stray section closer is dropped, and a
// section still open at the end of input closes there. Input without
// any tags always comes back byte for byte unchanged.
package mustache
