package extractor

import (
	"strconv"
	"strings"
)

// literalText reads an annotation argument as a literal. Quoted arguments have
// their surrounding quote markers stripped; unquoted arguments are taken
// verbatim. An argument that looks quoted but cannot be read as a string
// literal contributes the empty string rather than an error, favoring
// availability over strictness for cosmetic path pieces.
func literalText(arg string) string {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ""
	}
	if strings.HasPrefix(arg, `"`) || strings.HasPrefix(arg, "'") {
		unquoted, err := strconv.Unquote(arg)
		if err != nil {
			return ""
		}
		return unquoted
	}
	return arg
}
