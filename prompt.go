package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var errInputClosed = errors.New("input closed before a valid answer was given")

var warn = color.New(color.FgRed)

// prompter asks questions on out and reads answers line by line from in.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// until repeats question until valid accepts the trimmed answer, printing
// message after each rejected one. It only fails when input runs out.
func (p *prompter) until(question string, valid func(string) bool, message string) (string, error) {
	for {
		fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", errInputClosed
		}
		answer := strings.TrimSpace(p.in.Text())
		if valid(answer) {
			return answer, nil
		}
		warn.Fprintln(p.out, message)
	}
}
