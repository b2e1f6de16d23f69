package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// exprReader reads consecutive expressions separated by a stop rune and
// keeps the text of the current one.
type exprReader struct {
	r    *bufio.Reader
	stop rune
	text []rune
}

func (x *exprReader) ReadRune() (rune, int, error) {
	r, sz, err := x.r.ReadRune()
	if err == nil {
		x.text = append(x.text, r)
	}
	return r, sz, err
}

func (x *exprReader) UnreadRune() error {
	if err := x.r.UnreadRune(); err != nil {
		return err
	}
	x.text = x.text[:len(x.text)-1]
	return nil
}

// next skips whitespace and stop runes up to the start of the next
// expression. It reports false at the end of the input.
func (x *exprReader) next() (bool, error) {
	for {
		r, _, err := x.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		if r != x.stop && !unicode.IsSpace(r) {
			x.UnreadRune()
			x.text = x.text[:0]
			return true, nil
		}
	}
}

// discard skips the rest of an expression that failed to parse, through its
// stop rune.
func (x *exprReader) discard() error {
	if n := len(x.text); n > 0 && x.text[n-1] == x.stop {
		return nil
	}
	for {
		r, _, err := x.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r == x.stop {
			return nil
		}
	}
}

// src is the text of the current expression without its stop rune.
func (x *exprReader) src() string {
	t := x.text
	if n := len(t); n > 0 && t[n-1] == x.stop {
		t = t[:n-1]
	}
	return strings.TrimSpace(string(t))
}
