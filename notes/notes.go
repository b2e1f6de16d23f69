// Package notes splices calculator results into free-form text the way a
// notes editor does: pick the expression before the cursor, evaluate it, and
// insert " = result" after it.
package notes

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zephyrtronium/notecalc"
)

// Sheet evaluates expressions found in notes text. The zero value uses the
// default functions and discards logs.
type Sheet struct {
	// Log receives a debug record for every evaluation. Nil discards them.
	Log *slog.Logger
	// Opts are the parse options for every evaluation.
	Opts []notecalc.ParseOption
}

// Span finds the text to evaluate given a selection from primary to secondary,
// both byte offsets into text. With an empty selection, the span runs from
// just after the last ':', '=', or newline before the cursor up to the cursor.
// Otherwise it is the selection. Offsets outside text are clamped.
func Span(text string, primary, secondary int) (start, end int) {
	primary = clamp(primary, len(text))
	secondary = clamp(secondary, len(text))
	end = max(primary, secondary)
	if primary != secondary {
		return min(primary, secondary), end
	}
	return strings.LastIndexAny(text[:end], ":=\n") + 1, end
}

func clamp(x, n int) int {
	return min(max(x, 0), n)
}

// Eval evaluates src and formats the result as it is inserted into notes.
func (s *Sheet) Eval(src string) string {
	out, _ := s.eval(src)
	return out
}

func (s *Sheet) eval(src string) (string, error) {
	r, err := notecalc.Eval(strings.NewReader(src), s.Opts...)
	out := notecalc.FormatResult(r, err)
	if s.Log != nil {
		s.Log.LogAttrs(context.Background(), slog.LevelDebug, "evaluate",
			slog.String("src", src),
			slog.String("result", out),
			slog.Any("err", err),
		)
	}
	return out, err
}

// Splice evaluates the span of text selected by primary and secondary and
// inserts " = " and the result after it. The second result is the offset just
// past the insertion, where the cursor goes.
func (s *Sheet) Splice(text string, primary, secondary int) (string, int) {
	out, cursor, _ := s.splice(text, primary, secondary)
	return out, cursor
}

func (s *Sheet) splice(text string, primary, secondary int) (string, int, error) {
	start, end := Span(text, primary, secondary)
	res, err := s.eval(text[start:end])
	ins := " = " + res
	return text[:end] + ins + text[end:], end + len(ins), err
}

// SpliceLines fills in every line of text that ends with '=', ignoring
// trailing whitespace. The expression is the text between the previous ':'
// or '=' on the line and the final '='. Other lines are unchanged. For
// example, "rent: 1200*12 =" becomes "rent: 1200*12 = 14400".
func (s *Sheet) SpliceLines(text string) string {
	out, _ := s.CheckLines(text)
	return out
}

// CheckLines is SpliceLines, also returning the evaluation errors of the
// lines it filled in. Each error is a *LineError.
func (s *Sheet) CheckLines(text string) (string, error) {
	var errs []error
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		body := strings.TrimRight(line, " \t\r")
		if !strings.HasSuffix(body, "=") {
			continue
		}
		body = strings.TrimRight(body[:len(body)-1], " \t")
		if strings.TrimSpace(body[strings.LastIndexAny(body, ":=")+1:]) == "" {
			continue
		}
		out, _, err := s.splice(body, len(body), len(body))
		if strings.HasSuffix(line, "\r") {
			out += "\r"
		}
		lines[i] = out
		if err != nil {
			errs = append(errs, &LineError{Line: i + 1, Err: err})
		}
	}
	return strings.Join(lines, "\n"), errors.Join(errs...)
}

// LineError is an evaluation failure on a line of notes.
type LineError struct {
	// Line is the 1-based line number.
	Line int
	Err  error
}

func (err *LineError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *LineError) Unwrap() error {
	return err.Err
}
