package filesize

import (
	"fmt"
	"math"
)

// DefaultSuffix is the unit appended after the binary prefix.
const DefaultSuffix = "B"

// step is the factor between two consecutive binary prefixes.
const step = 1024.0

//nolint:gochecknoglobals // Lookup table
var prefixes = [...]string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// FormatSize renders num with one decimal digit and the largest binary prefix
// that keeps its absolute value below 1024. Values that are still too large
// after "Zi" are rendered with "Yi" regardless of magnitude.
func FormatSize(num float64, suffix string) string {
	for _, prefix := range prefixes {
		if math.Abs(num) < step {
			return fmt.Sprintf("%3.1f%s%s", num, prefix, suffix)
		}

		num /= step
	}

	return fmt.Sprintf("%.1fYi%s", num, suffix)
}

// SizeOf formats a byte count, e.g. 1536 -> "1.5KiB".
func SizeOf(bytes int64) string {
	return FormatSize(float64(bytes), DefaultSuffix)
}
