package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{tag: "str", want: "string"},
		{tag: "filename", want: "string"},
		{tag: "path", want: "string"},
		{tag: "raw", want: "string"},
		{tag: "sid", want: "string"},
		{tag: "list", want: "array"},
		{tag: "bool", want: "boolean"},
		{tag: "int", want: "integer"},
		{tag: "dict", want: "object"},
		{tag: "jsonarg", want: "object"},
		{tag: "json", want: "object"},
		{tag: "float", want: "number"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := MapType(tt.tag)
			if err != nil {
				t.Fatalf("MapType(%q): unexpected error: %v", tt.tag, err)
			}
			if got != tt.want {
				t.Errorf("MapType(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestMapTypeUnsupported(t *testing.T) {
	for _, tag := range []string{"binary", "STR", "", "string"} {
		t.Run(tag, func(t *testing.T) {
			got, err := MapType(tag)
			if err == nil {
				t.Fatalf("MapType(%q) = %q, want error", tag, got)
			}
			var ute *UnsupportedTypeError
			if !errors.As(err, &ute) {
				t.Fatalf("MapType(%q) error is %T, want *UnsupportedTypeError", tag, err)
			}
			if ute.Tag != tag {
				t.Errorf("error tag = %q, want %q", ute.Tag, tag)
			}
			if !strings.Contains(err.Error(), tag) && tag != "" {
				t.Errorf("error %q does not name the offending tag", err)
			}
		})
	}
}
