// Package prompt asks the user yes/no questions. The concrete source of the
// answer is swappable so destructive paths can be tested without a terminal.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/AlecAivazis/survey.v1"
)

// Confirmer returns the user's raw answer to a question.
type Confirmer interface {
	Confirm(message string) (string, error)
}

// Default returns an interactive survey prompt when stdin is a terminal and a
// plain line reader on stdin otherwise.
func Default() Confirmer {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return Survey{}
	}
	return NewLine(os.Stdin, os.Stdout)
}

// Survey asks through an interactive terminal prompt
type Survey struct{}

func (Survey) Confirm(message string) (answer string, err error) {
	err = survey.AskOne(&survey.Input{Message: message}, &answer, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to read confirmation")
	}
	return answer, nil
}

// Line reads a single line of input, printing the question to out first.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) Confirm(message string) (string, error) {
	if _, err := io.WriteString(l.out, message+" "); err != nil {
		return "", err
	}
	answer, err := l.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "failed to read confirmation")
	}
	return strings.TrimRight(answer, "\r\n"), nil
}

// Fixed always answers with the same string
type Fixed string

func (f Fixed) Confirm(string) (string, error) {
	return string(f), nil
}
