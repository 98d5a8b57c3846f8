package annotations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Prefix is the marker shared by all tsbridge directive comments
const Prefix = "tsbridge::"

// ErrNotDirective is returned for comments that are not tsbridge directives
var ErrNotDirective = errors.New("not a tsbridge directive")

// Directive is one parsed annotation line: a name from the annotation
// vocabulary plus positional argument tokens. Argument tokens are kept raw
// (quoted strings keep their quotes); literal extraction is the extractor's
// concern.
type Directive struct {
	Name string
	Args []string
}

// directiveLine is the participle grammar for a directive comment
type directiveLine struct {
	Name string         `parser:"Comment Marker Separator @Ident"`
	Args []directiveArg `parser:"@@*"`
}

type directiveArg struct {
	String *string `parser:"  @String"`
	Path   *string `parser:"| @Path"`
	Ident  *string `parser:"| @Ident"`
}

var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//`},
	{Name: "Marker", Pattern: `tsbridge`},
	{Name: "Separator", Pattern: `::`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Path", Pattern: `/[^\s]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var directiveParser = participle.MustBuild[directiveLine](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseDirective parses a single comment line. Comments without the tsbridge
// marker return ErrNotDirective so callers can treat them as ordinary text.
func ParseDirective(comment string) (*Directive, error) {
	text := strings.TrimSpace(comment)
	if !strings.HasPrefix(text, "//") {
		return nil, ErrNotDirective
	}
	body := strings.TrimSpace(strings.TrimPrefix(text, "//"))
	if !strings.HasPrefix(body, Prefix) {
		return nil, ErrNotDirective
	}

	line, err := directiveParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("malformed directive %q: %w", comment, err)
	}

	directive := &Directive{Name: line.Name}
	for _, arg := range line.Args {
		switch {
		case arg.String != nil:
			directive.Args = append(directive.Args, *arg.String)
		case arg.Path != nil:
			directive.Args = append(directive.Args, *arg.Path)
		case arg.Ident != nil:
			directive.Args = append(directive.Args, *arg.Ident)
		}
	}
	return directive, nil
}
