// Package types defines the closed value types shared across plinth:
// the author identity, the license and version control enumerations with
// their Unknown variants, and the user-defined custom key table.
package types
