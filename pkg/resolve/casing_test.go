package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalized(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"project", "Project"},
		{"Project", "Project"},
		{"my-awesome-project", "My-awesome-project"},
		{"über", "Über"},
		{"7zip", "7zip"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalized(tt.in), "capitalized(%q)", tt.in)
	}
}

func TestUpperCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"project", "Project"},
		{"my-awesome-project", "MyAwesomeProject"},
		{"snake_case_name", "SnakeCaseName"},
		{"spaced out name", "SpacedOutName"},
		{"alreadyCamel", "AlreadyCamel"},
		{"XMLHttpRequest", "XmlHttpRequest"},
		{"HTTPServer", "HttpServer"},
		{"foo2bar", "Foo2bar"},
		{"--dashed--", "Dashed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, upperCamelCase(tt.in), "upperCamelCase(%q)", tt.in)
	}
}
