package filesize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeOf(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero bytes", bytes: 0, want: "0.0B"},
		{name: "ten bytes", bytes: 10, want: "10.0B"},
		{name: "under 1KiB", bytes: 512, want: "512.0B"},
		{name: "just under 1KiB", bytes: 1023, want: "1023.0B"},
		{name: "exactly 1KiB", bytes: 1024, want: "1.0KiB"},
		{name: "1.5 KiB", bytes: 1536, want: "1.5KiB"},
		{name: "rounds to one digit", bytes: 3174, want: "3.1KiB"},
		{name: "exactly 1MiB", bytes: 1 << 20, want: "1.0MiB"},
		{name: "exactly 1GiB", bytes: 1 << 30, want: "1.0GiB"},
		{name: "exactly 1TiB", bytes: 1 << 40, want: "1.0TiB"},
		{name: "exactly 1PiB", bytes: 1 << 50, want: "1.0PiB"},
		{name: "exactly 1EiB", bytes: 1 << 60, want: "1.0EiB"},
		{name: "negative", bytes: -2048, want: "-2.0KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeOf(tt.bytes))
		})
	}
}

func TestFormatSizeLargePrefixes(t *testing.T) {
	assert.Equal(t, "1.0ZiB", FormatSize(math.Pow(1024, 7), DefaultSuffix))
	assert.Equal(t, "1.0YiB", FormatSize(math.Pow(1024, 8), DefaultSuffix))
	assert.Equal(t, "2048.0YiB", FormatSize(math.Pow(1024, 9)*2, DefaultSuffix))
}

func TestFormatSizeSuffix(t *testing.T) {
	assert.Equal(t, "1.5Kibit", FormatSize(1536, "bit"))
	assert.Equal(t, "100.0", FormatSize(100, ""))
}

func TestSizeOfBelowKibiHasNoPrefix(t *testing.T) {
	for b := int64(0); b < 1024; b += 37 {
		got := SizeOf(b)

		assert.Regexp(t, `^\d+\.\dB$`, got)
	}
}

func TestSizeOfKibiRange(t *testing.T) {
	for b := int64(1024); b < 1<<20; b += 4099 {
		assert.Regexp(t, `^\d+\.\dKiB$`, SizeOf(b))
	}
}
