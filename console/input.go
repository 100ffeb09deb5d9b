// Package console is the terminal side of the game: it reads and validates
// every answer, draws the tables and seats the players.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

// ErrQuit is returned once the player types the quit token or input ends.
var ErrQuit = errors.New("quit requested")

// Validator reports whether an answer is acceptable.
type Validator func(input string) bool

const (
	colorRed   = "\x1b[31m"
	resetColor = "\x1b[0m"
)

// Console reads answers from in and writes everything to out.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	quit string
	fold cases.Caser
}

func New(in io.Reader, out io.Writer, quitToken string) *Console {
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		quit: quitToken,
		fold: cases.Fold(),
	}
}

// Request prompts until validate accepts the trimmed answer. An answer that
// is a unique case-insensitive prefix of one suggestion is expanded to it.
// The quit token, or the end of input, returns ErrQuit.
func (c *Console) Request(prompt string, validate Validator, errorMessage string, suggestions ...string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				return "", ErrQuit
			}
			return "", fmt.Errorf("read input: %w", err)
		}

		answer := strings.TrimSpace(line)
		if c.fold.String(answer) == c.fold.String(c.quit) {
			return "", ErrQuit
		}
		if validate(answer) {
			return answer, nil
		}
		if expanded, ok := c.complete(answer, suggestions); ok && validate(expanded) {
			return expanded, nil
		}

		fmt.Fprintf(c.out, "\n\n%s%s%s\n", colorRed, errorMessage, resetColor)
	}
}

func (c *Console) complete(answer string, suggestions []string) (string, bool) {
	if answer == "" {
		return "", false
	}
	prefix := c.fold.String(answer)
	match := ""
	for _, s := range suggestions {
		if strings.HasPrefix(c.fold.String(s), prefix) {
			if match != "" {
				return "", false
			}
			match = s
		}
	}
	return match, match != ""
}

// Farewell is printed when the player quits.
func (c *Console) Farewell() {
	fmt.Fprintln(c.out, "\nGoodbye!")
}
