// Package jsonfmt pretty-prints JSON documents.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultIndent is the default number of spaces per nesting level.
const DefaultIndent = 4

// ErrEmpty is returned for input containing only whitespace.
var ErrEmpty = errors.New("empty input")

// Format re-indents a JSON document using indent spaces per level, keeping key
// order. An indent of zero produces compact output.
func Format(data []byte, indent int) ([]byte, error) {
	if indent < 0 {
		return nil, fmt.Errorf("indent cannot be negative: %d", indent)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	var out bytes.Buffer

	if indent == 0 {
		if err := json.Compact(&out, data); err != nil {
			return nil, describe(err)
		}

		return out.Bytes(), nil
	}

	if err := json.Indent(&out, data, "", strings.Repeat(" ", indent)); err != nil {
		return nil, describe(err)
	}

	return out.Bytes(), nil
}

// describe adds the byte offset to syntax errors.
func describe(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("invalid JSON at offset %d: %w", syntaxErr.Offset, err)
	}

	return fmt.Errorf("invalid JSON: %w", err)
}
