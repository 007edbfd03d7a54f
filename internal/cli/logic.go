package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/idelchi/lucky/internal/config"
	"github.com/idelchi/lucky/internal/filesize"
	"github.com/idelchi/lucky/internal/jsonfmt"
	"github.com/idelchi/lucky/internal/textlen"
)

const (
	outputLines = "lines"
	outputJSON  = "json"
)

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{outputLines, outputJSON}

// sizeOptions holds the flags of "file size".
type sizeOptions struct {
	filesize.Options

	Limit      int
	Asc        bool
	Output     string
	MinSizeStr string
	Summary    bool
}

// resolve fills unset flags from the config and validates the result.
// An absent --limit means no limit; an explicit 0 shows nothing.
func (o *sizeOptions) resolve(flags *pflag.FlagSet, cfg config.Size) error {
	switch {
	case flags.Changed("limit"):
		if o.Limit < 0 {
			return fmt.Errorf("limit cannot be negative: %d", o.Limit)
		}
	case cfg.Limit < 0:
		o.Limit = filesize.NoLimit
	default:
		o.Limit = cfg.Limit
	}

	if !flags.Changed("asc") {
		o.Asc = cfg.Asc
	}

	if !flags.Changed("exclude") {
		o.Excludes = cfg.Excludes
	}

	if !flags.Changed("min-size") {
		o.MinSizeStr = cfg.MinSize
	}

	if !flags.Changed("parallel") {
		o.Parallel = cfg.Parallel
	}

	if !flags.Changed("strict") {
		o.Strict = cfg.Strict
	}

	o.Output = strings.ToLower(o.Output)
	if !slices.Contains(allowedOutputs, o.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", o.Output, allowedOutputs)
	}

	if o.MinSizeStr != "" {
		size, err := humanize.ParseBytes(o.MinSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		o.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return nil
}

func (a *app) runSize(ctx context.Context, out io.Writer, opts sizeOptions) error {
	enableProgress := opts.Output != outputJSON &&
		!a.cfg.Debug &&
		a.interactive()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(a.stderr, "\033[?25l")
		defer fmt.Fprint(a.stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %s files, %s",
				humanize.Comma(files), humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(a.stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := filesize.Walk(ctx, opts.Options, a.log, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(a.stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	entries := filesize.Build(result.Sizes, opts.Asc, opts.Limit)

	switch opts.Output {
	case outputJSON:
		err = PrintJSON(entries, out)
	default:
		err = PrintLines(entries, out)
	}

	if err != nil {
		return err
	}

	if opts.Summary {
		return PrintSummary(result, len(entries), a.stderr)
	}

	return nil
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

//nolint:gochecknoglobals // Config constant
var allowedColors = []string{colorAuto, colorAlways, colorNever}

// jsonOptions holds the flags of "json format".
type jsonOptions struct {
	Indent int
	Copy   bool
	Color  string
}

// colorize reports whether output written to out should be highlighted.
func (o jsonOptions) colorize(out io.Writer) (bool, error) {
	switch o.Color {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		f, ok := out.(*os.File)

		return ok && isatty.IsTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q: must be one of %v", o.Color, allowedColors)
	}
}

func (a *app) runJSONFormat(out io.Writer, input string, opts jsonOptions) error {
	colorize, err := opts.colorize(out)
	if err != nil {
		return err
	}

	var data []byte

	if input == "-" {
		data, err = io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data = []byte(input)
	}

	formatted, err := jsonfmt.Format(data, opts.Indent)
	if err != nil {
		return err
	}

	rendered := string(formatted)

	if colorize {
		if rendered, err = jsonfmt.Highlight(rendered, jsonfmt.DefaultStyle); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(out, rendered); err != nil {
		return err
	}

	if opts.Copy {
		if _, err := a.toClipboard(string(formatted)); err != nil {
			return err
		}
	}

	return nil
}

// errNotTerminal is logged when the clipboard cannot be reached.
var errNotTerminal = errors.New("stderr is not a terminal")

// toClipboard sends text to the clipboard and reports whether it did. Without a
// terminal the copy is skipped with a warning rather than failing the command.
func (a *app) toClipboard(text string) (bool, error) {
	if !a.interactive() {
		a.log.Warn("clipboard unavailable", "err", errNotTerminal)

		return false, nil
	}

	if err := a.clip.Copy(text); err != nil {
		return false, err
	}

	return true, nil
}

func (a *app) runLen(out io.Writer, input string, copyResult bool) error {
	n := strconv.Itoa(textlen.Count(input))

	style := lipgloss.NewRenderer(out).NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true)

	copied := false

	if copyResult {
		var err error
		if copied, err = a.toClipboard(n); err != nil {
			return err
		}
	}

	if copied {
		_, err := fmt.Fprintf(out, "len: %s, copied to your clipboard\n", style.Render(n))

		return err
	}

	_, err := fmt.Fprintf(out, "len: %s\n", style.Render(n))

	return err
}
