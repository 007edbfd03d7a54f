package jsonfmt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		indent int
		want   string
	}{
		{
			name:   "object keeps key order",
			input:  `{"b":1,"a":[true,null]}`,
			indent: 2,
			want:   "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}",
		},
		{
			name:   "default indent",
			input:  `{"k":"v"}`,
			indent: DefaultIndent,
			want:   "{\n    \"k\": \"v\"\n}",
		},
		{
			name:   "compact",
			input:  "{ \"k\" : [ 1 , 2 ] }\n",
			indent: 0,
			want:   `{"k":[1,2]}`,
		},
		{
			name:   "scalar",
			input:  "  42  ",
			indent: 4,
			want:   "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format([]byte(tt.input), tt.indent)
			require.NoError(t, err)

			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFormatErrors(t *testing.T) {
	_, err := Format([]byte(" \n "), 4)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Format([]byte(`{"a":}`), 4)
	require.ErrorContains(t, err, "invalid JSON at offset")

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = Format([]byte(`{}`), -1)
	require.ErrorContains(t, err, "indent cannot be negative")
}

func TestHighlight(t *testing.T) {
	got, err := Highlight("{\n    \"k\": 1\n}", DefaultStyle)
	require.NoError(t, err)

	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, `"k"`)

	fallback, err := Highlight(`[true]`, "no-such-style")
	require.NoError(t, err)
	assert.Contains(t, fallback, "true")
}
