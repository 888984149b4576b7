package main

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/sortby"
	"github.com/npillmayer/sortby/compare"
	"github.com/npillmayer/sortby/textfile"
	"github.com/npillmayer/sortby/tree234"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	by      string
	then    string
	reverse bool
	dot     string
	dump    bool
	check   bool
	trace   string
}

// orderings names the comparators selectable by --by and --then. The width
// context is detected from the environment only when width is selected.
var orderings = map[string]func() compare.Func[string]{
	"natural":   func() compare.Func[string] { return compare.Lexical },
	"bytes":     func() compare.Func[string] { return compare.ByteLength },
	"graphemes": func() compare.Func[string] { return compare.Graphemes },
	"width": func() compare.Func[string] {
		return compare.DisplayWidth(uax11.ContextFromEnvironment())
	},
}

func orderingNames() string {
	return strings.Join(slices.Sorted(maps.Keys(orderings)), "|")
}

func ordering(name string) (compare.Func[string], error) {
	mk, ok := orderings[name]
	if !ok {
		return nil, fmt.Errorf("unknown ordering %q, expected one of %s", name, orderingNames())
	}
	return mk(), nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sortlines [file]",
		Short: "Sort lines of text stably",
		Long: `sortlines reads lines of text from a file or from stdin and prints them
in sorted order. Lines comparing equal keep their input order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(opts.trace)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.by, "by", "b", "natural", "ordering of lines: "+orderingNames())
	f.StringVarP(&opts.then, "then", "t", "", "secondary ordering of lines equal under --by")
	f.BoolVarP(&opts.reverse, "reverse", "r", false, "sort descending by --by")
	f.StringVar(&opts.dot, "dot", "", "write the sorting tree in Graphviz DOT format to `file`")
	f.BoolVar(&opts.dump, "dump", false, "print an outline of the sorting tree to stderr")
	f.BoolVar(&opts.check, "check", false, "verify the invariants of the sorting tree")
	f.StringVar(&opts.trace, "trace", "", "trace level: info|debug")
	return cmd
}

func setupTracing(level string) error {
	gtrace.CoreTracer = gologadapter.New()
	switch level {
	case "":
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	primary, err := ordering(opts.by)
	if err != nil {
		return err
	}
	var src *textfile.Source
	if len(args) == 1 {
		if src, err = textfile.Open(args[0]); err != nil {
			return err
		}
	} else {
		src = textfile.FromReader("<stdin>", cmd.InOrStdin())
	}
	var sorted *sortby.Sorted[string]
	if opts.reverse {
		sorted = sortby.ByDescending(src.Lines(), primary)
	} else {
		sorted = sortby.By(src.Lines(), primary)
	}
	if opts.then != "" {
		secondary, err := ordering(opts.then)
		if err != nil {
			return err
		}
		sorted = sorted.ThenBy(secondary)
	}
	tree := sorted.Tree()
	if err := src.Err(); err != nil {
		return err
	}
	gtrace.CoreTracer.Infof("sorted %d lines of %s", tree.Len(), src.Name())
	if opts.check {
		if err := tree.Check(); err != nil {
			return err
		}
	}
	if opts.dot != "" {
		if err := writeDot(tree, opts.dot); err != nil {
			return err
		}
	}
	if opts.dump {
		if err := tree.Dump(cmd.ErrOrStderr(), palette(cmd.ErrOrStderr())); err != nil {
			return err
		}
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	for line := range tree.All() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeDot(tree *tree234.Tree[string], name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := tree.ToDot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// palette colours the tree dump only if w is a terminal.
func palette(w io.Writer) *tree234.Palette {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !color.NoColor {
		return tree234.DefaultPalette()
	}
	return &tree234.Palette{}
}
