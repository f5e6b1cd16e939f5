// Package prompt reads line-oriented answers from the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InvalidInput is printed before a question is asked again.
const InvalidInput = "Invalid input, please try again"

// Prompter writes questions to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question as given and returns the next line of input without
// its line terminator. It returns io.EOF once input is exhausted; a final
// line without a terminator is still returned.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Until asks question until parse accepts the answer, printing InvalidInput
// after every rejected one. Only read errors end the loop early.
func Until[T any](p *Prompter, question string, parse func(answer string) (T, bool)) (T, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(answer); ok {
			return v, nil
		}
		fmt.Fprintln(p.out, InvalidInput)
	}
}

// Prefix returns the first n runes of s, or all of s if it is shorter.
func Prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// FirstLetter returns the lower-cased first rune of s, or "" for empty input.
func FirstLetter(s string) string {
	return strings.ToLower(Prefix(s, 1))
}

var title = cases.Title(language.English)

// FirstThreeTitle returns the first three runes of s in title case, so
// "feb", "FEBRUARY" and "Feb" all become "Feb".
func FirstThreeTitle(s string) string {
	return title.String(Prefix(s, 3))
}
