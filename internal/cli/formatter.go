package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/lucky/internal/filesize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// jsonEntry is the JSON form of a report entry.
type jsonEntry struct {
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	Human string `json:"human"`
}

// PrintLines outputs one "<path>, <size>" line per entry.
func PrintLines(entries []filesize.Entry, writer io.Writer) error {
	for _, line := range filesize.Lines(entries) {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	return nil
}

// PrintJSON outputs entries as a JSON array.
func PrintJSON(entries []filesize.Entry, writer io.Writer) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{Path: e.Path, Size: e.Size, Human: filesize.SizeOf(e.Size)}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintSummary outputs totals of a walk in a small table.
//
//nolint:forbidigo // This function prints output to the console.
func PrintSummary(result *filesize.Result, shown int, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Total files:\t%s (%d shown)\n", humanize.Comma(int64(len(result.Sizes))), shown)
	fmt.Fprintf(w, "Total size:\t%s (%s bytes)\n",
		humanize.IBytes(uint64(result.TotalBytes)), humanize.Comma(result.TotalBytes)) //nolint:gosec // Sizes are never negative
	fmt.Fprintf(w, "Skipped:\t%d\n", result.Errors)
	fmt.Fprintf(w, "Elapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
