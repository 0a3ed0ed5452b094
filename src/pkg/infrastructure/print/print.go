// Package print provides the levelled console output used by every command.
package print

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	isVerbose  = false
	isColoured = false
	out        io.Writer = os.Stdout
	errOut     io.Writer = os.Stderr
	infoStyle  = color.New(color.FgBlack).Add(color.BgCyan)
	warnStyle  = color.New(color.FgBlack).Add(color.BgHiYellow)
	erroStyle  = color.New(color.FgRed).Add(color.BgBlack)
)

// SetVerbose activates all the Verb calls
func SetVerbose() {
	isVerbose = true
}

// SetColoured activates ANSI colour codes
func SetColoured() {
	isColoured = true
}

// Verb prints a message only if Verb is set - controlled via the --verbose flag
func Verb(a ...interface{}) {
	if isVerbose {
		emit(out, "VERB:", infoStyle, color.HiBlackString, a...)
	}
}

// Info is for general purpose messages that are always shown
func Info(a ...interface{}) {
	emit(out, "INFO:", infoStyle, color.WhiteString, a...)
}

// Warn is for warnings that do not prevent the command from finishing
func Warn(a ...interface{}) {
	emit(out, "WARN:", warnStyle, color.YellowString, a...)
}

// Erro is for errors that end the run
func Erro(a ...interface{}) {
	emit(errOut, "ERROR:", erroStyle, color.RedString, a...)
}

func emit(w io.Writer, label string, style *color.Color, body func(string, ...interface{}) string, a ...interface{}) {
	if isColoured {
		fmt.Fprint(w, style.Sprint(label), " ", body("%s", fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(w, label, " ", fmt.Sprintln(a...))
	}
}
