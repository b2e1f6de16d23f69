package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/zephyrtronium/notecalc"
	"github.com/zephyrtronium/notecalc/notes"
)

func main() {
	tty := term.IsTerminal(int(os.Stdin.Fd()))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, tty))
}

// cli holds the settings for one run.
type cli struct {
	out   io.Writer
	log   *slog.Logger
	opts  []notecalc.ParseOption
	verb  string
	echo  bool
	lines bool
	sheet *notes.Sheet
	// failed is set when any expression fails to parse or evaluate.
	failed bool
}

// run is main without the process globals. tty reports whether stdin is a
// terminal, in which case lines are read interactively with a prompt.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, tty bool) int {
	var (
		inname, verb                 string
		nl, notesmode, echo, verbose bool
		depth                        int
	)
	fs := flag.NewFlagSet("notecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file, - for stdin (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "", "result formatting string (default shortest decimal)")
	fs.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	fs.BoolVar(&notesmode, "notes", false, `notes mode: fill in " = result" on lines ending with '='`)
	fs.BoolVar(&echo, "echo", false, "print parse trees")
	fs.IntVar(&depth, "depth", notecalc.DefaultMaxDepth, "maximum nesting depth")
	fs.BoolVar(&verbose, "v", false, "log each evaluation to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := log.New(stderr, "", 0)
	if depth < 1 {
		logger.Printf("depth (%d) must be positive", depth)
		return 2
	}

	var handler slog.Handler = slog.NewTextHandler(io.Discard, nil) // slog.DiscardHandler requires Go 1.24
	if verbose {
		handler = slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	c := cli{
		out:   stdout,
		log:   slog.New(handler),
		opts:  []notecalc.ParseOption{notecalc.MaxDepth(depth)},
		verb:  verb,
		echo:  echo,
		lines: nl,
	}
	if notesmode {
		c.sheet = &notes.Sheet{Log: c.log, Opts: c.opts}
	}

	var in io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			logger.Print(err)
			return 1
		}
		defer f.Close()
		in = f
		tty = false
	case inname == "-", fs.NArg() == 0:
		in = stdin
	}
	if in != nil {
		if err := c.input(in, tty); err != nil {
			logger.Print(err)
			return 1
		}
	}
	for _, arg := range fs.Args() {
		if c.sheet != nil {
			fmt.Fprintln(c.out, c.notes(arg))
			continue
		}
		e, err := notecalc.ParseString(arg, c.opts...)
		c.show(arg, e, err)
	}
	if c.failed {
		return 1
	}
	return 0
}

// input evaluates everything from r. Expressions end at NUL, or at the end
// of each line with -n or on a terminal.
func (c *cli) input(r io.Reader, tty bool) error {
	if c.sheet != nil {
		b, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(c.out, c.notes(string(b)))
		return err
	}
	opts := c.opts
	x := &exprReader{r: bufio.NewReader(r)}
	if c.lines || tty {
		x.stop = '\n'
		opts = append(opts[:len(opts):len(opts)], notecalc.StopOn('\n'))
	}
	for {
		if tty {
			fmt.Fprint(c.out, "> ")
		}
		// First check whether we're done with the input.
		ok, err := x.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		e, err := notecalc.Parse(x, opts...)
		if err != nil {
			if err := x.discard(); err != nil {
				return err
			}
		}
		c.show(x.src(), e, err)
	}
	if tty {
		fmt.Fprintln(c.out)
	}
	return nil
}

// notes fills in the lines of text ending with '='.
func (c *cli) notes(text string) string {
	out, err := c.sheet.CheckLines(text)
	if err != nil {
		c.failed = true
		c.log.Debug("notes", slog.Any("err", err))
	}
	return out
}

// show evaluates and prints one parsed expression, or its parse error.
func (c *cli) show(src string, e *notecalc.Expr, err error) {
	var r float64
	if err == nil {
		if c.echo {
			fmt.Fprintf(c.out, "%v : ", e)
		}
		r, err = e.Eval()
	}
	c.log.LogAttrs(context.Background(), slog.LevelDebug, "evaluate",
		slog.String("src", src),
		slog.Float64("result", r),
		slog.Any("err", err),
	)
	if err != nil {
		c.failed = true
		fmt.Fprintln(c.out, notecalc.FormatResult(r, err))
		return
	}
	if c.verb == "" {
		fmt.Fprintln(c.out, notecalc.FormatResult(r, nil))
		return
	}
	fmt.Fprintf(c.out, c.verb+"\n", r)
}
