package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/lucky/internal/clipboard"
	"github.com/idelchi/lucky/internal/config"
	"github.com/idelchi/lucky/internal/jsonfmt"
	"github.com/idelchi/lucky/internal/logging"
)

// CLI represents the command-line interface.
type CLI struct {
	version string

	// stderr receives logs, progress and clipboard sequences.
	stderr io.Writer
	// clip is the clipboard sink used by "len" and "json format --copy".
	clip clipboard.Copier
	// interactive reports whether stderr is a terminal.
	interactive func() bool
	// stdin is read by "json format" when no input argument is given.
	stdin io.Reader
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{
		version: version,
		stderr:  os.Stderr,
		clip:    clipboard.New(os.Stderr),
		interactive: func() bool {
			return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		},
		stdin: os.Stdin,
	}
}

// app carries state resolved once per invocation by the root command.
type app struct {
	CLI

	configPath string
	debug      bool

	cfg config.Config
	log *log.Logger
}

// Execute runs the CLI with os.Args. SIGINT and SIGTERM cancel the running command.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.Command().ExecuteContext(ctx)
}

// Command builds the command tree.
func (c CLI) Command() *cobra.Command {
	a := &app{CLI: c}

	root := &cobra.Command{
		Use:   "lucky",
		Short: "lucky command util for enhancing your work and life",
		Long: heredoc.Doc(`
			lucky bundles small everyday helpers:

			  lucky len <text>            count characters and copy the count
			  lucky json format [json]    pretty-print JSON
			  lucky file size [path]      list files under a directory by size

			Defaults can be set in config.{yaml,toml,json} in the user config
			directory (e.g. ~/.config/lucky) or via LUCKY_* environment variables.
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a config file")

	jsonGroup := &cobra.Command{
		Use:   "json",
		Short: "Operate on JSON data",
	}
	jsonGroup.AddCommand(a.jsonFormatCommand())

	fileGroup := &cobra.Command{
		Use:   "file",
		Short: "Inspect files",
	}
	fileGroup.AddCommand(a.sizeCommand())

	root.AddCommand(a.lenCommand(), jsonGroup, fileGroup)

	return root
}

// setup loads the config and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}

	a.cfg = cfg
	a.log = logging.New(a.stderr, cfg.Debug)

	return nil
}

func (a *app) lenCommand() *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "len <text>",
		Short: "Print the number of characters in text and copy it to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLen(cmd.OutOrStdout(), args[0], !noCopy)
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Do not copy the length to the clipboard")

	return cmd
}

func (a *app) jsonFormatCommand() *cobra.Command {
	var opts jsonOptions

	cmd := &cobra.Command{
		Use:   "format [json]",
		Short: "Pretty-print JSON from the argument or stdin",
		Long: heredoc.Doc(`
			Pretty-print a JSON document, keeping key order.

			The document is taken from the argument, or read from stdin when the
			argument is omitted or "-".
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				opts.Indent = a.cfg.JSON.Indent
			}

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}

			return a.runJSONFormat(cmd.OutOrStdout(), input, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Indent, "indent", "n", jsonfmt.DefaultIndent, "Spaces per indentation level (0 for compact output)")
	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "Also copy the result to the clipboard")
	cmd.Flags().StringVar(&opts.Color, "color", colorAuto, "Syntax highlighting: auto, always or never")

	return cmd
}

func (a *app) sizeCommand() *cobra.Command {
	var opts sizeOptions

	cmd := &cobra.Command{
		Use:   "size [path]",
		Short: "Show file sizes under a path, largest first",
		Long: heredoc.Doc(`
			Show the size of every regular file under path (default: current
			directory), ordered by size, largest first.

			Each line reads "<relative-path>, <size>" using binary units.
			Symlinks are not followed. Unreadable entries are skipped with a
			warning unless --strict is given.
		`),
		Example: heredoc.Doc(`
			lucky file size --limit 10
			lucky file size --asc ./build
			lucky file size -e '^\.git$' --min-size 1MB -o json
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = "."
			if len(args) == 1 {
				opts.Path = args[0]
			}

			if err := opts.resolve(cmd.Flags(), a.cfg.Size); err != nil {
				return err
			}

			return a.runSize(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Limit, "limit", "l", 0, "Show at most this many files (0 shows none; omit for all)")
	flags.BoolVar(&opts.Asc, "asc", false, "Order by file size ascending")
	flags.StringVarP(&opts.Output, "output", "o", outputLines, "Output format: lines or json")
	flags.StringSliceVarP(&opts.Excludes, "exclude", "e", nil, "Regex patterns matched against relative paths to exclude")
	flags.StringVar(&opts.MinSizeStr, "min-size", "0B", "Minimum file size (e.g., 1KB)")
	flags.BoolVarP(&opts.Parallel, "parallel", "p", false, "Walk directories concurrently")
	flags.BoolVar(&opts.Strict, "strict", false, "Fail on unreadable entries instead of skipping them")
	flags.BoolVarP(&opts.Summary, "summary", "s", false, "Print totals to stderr")

	cmd.Flags().SortFlags = false

	return cmd
}
