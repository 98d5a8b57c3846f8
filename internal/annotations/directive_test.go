package annotations

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name     string
		comment  string
		expected *Directive
	}{
		{
			name:     "controller with base path",
			comment:  "//tsbridge::Controller /users",
			expected: &Directive{Name: "Controller", Args: []string{"/users"}},
		},
		{
			name:     "controller without base path",
			comment:  "//tsbridge::Controller",
			expected: &Directive{Name: "Controller"},
		},
		{
			name:     "verb with path suffix",
			comment:  "//tsbridge::Get /:id",
			expected: &Directive{Name: "Get", Args: []string{"/:id"}},
		},
		{
			name:     "verb without path suffix",
			comment:  "//tsbridge::Post",
			expected: &Directive{Name: "Post"},
		},
		{
			name:     "param binding with quoted argument",
			comment:  `//tsbridge::Param id "id"`,
			expected: &Directive{Name: "Param", Args: []string{"id", `"id"`}},
		},
		{
			name:     "body binding",
			comment:  "//tsbridge::Body payload",
			expected: &Directive{Name: "Body", Args: []string{"payload"}},
		},
		{
			name:     "leading whitespace tolerated",
			comment:  "  // tsbridge::Delete /:id",
			expected: &Directive{Name: "Delete", Args: []string{"/:id"}},
		},
		{
			name:     "unknown names still parse",
			comment:  "//tsbridge::Websocket /feed",
			expected: &Directive{Name: "Websocket", Args: []string{"/feed"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directive, err := ParseDirective(tt.comment)
			if err != nil {
				t.Fatalf("ParseDirective(%q) returned error: %v", tt.comment, err)
			}
			if directive.Name != tt.expected.Name {
				t.Errorf("Name = %q, want %q", directive.Name, tt.expected.Name)
			}
			if !reflect.DeepEqual(directive.Args, tt.expected.Args) {
				t.Errorf("Args = %v, want %v", directive.Args, tt.expected.Args)
			}
		})
	}
}

func TestParseDirective_NotDirective(t *testing.T) {
	comments := []string{
		"// ordinary comment",
		"// GetUser returns a user by id",
		"//go:generate mockgen",
		"not a comment at all",
		"//apigen::route GET /users",
	}
	for _, comment := range comments {
		_, err := ParseDirective(comment)
		if !errors.Is(err, ErrNotDirective) {
			t.Errorf("ParseDirective(%q) error = %v, want ErrNotDirective", comment, err)
		}
	}
}

func TestParseDirective_Malformed(t *testing.T) {
	_, err := ParseDirective("//tsbridge:: ::")
	if err == nil {
		t.Fatal("expected error for malformed directive")
	}
	if errors.Is(err, ErrNotDirective) {
		t.Fatal("malformed directive should not be reported as a non-directive")
	}
}
