package jsonfmt

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used for highlighting.
const DefaultStyle = "dracula"

// Highlight colorizes JSON text with ANSI 256-color escapes. Unknown style
// names fall back to chroma's default style.
func Highlight(text, styleName string) (string, error) {
	lexer := chroma.Coalesce(lexers.Get("json"))

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenising JSON: %w", err)
	}

	style := styles.Get(styleName)

	var sb strings.Builder
	if err := formatters.TTY256.Format(&sb, style, iterator); err != nil {
		return "", fmt.Errorf("highlighting JSON: %w", err)
	}

	return sb.String(), nil
}
