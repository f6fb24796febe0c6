// Package ui renders the operator-facing status lines printed by the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Level tags a check result line.
type Level int

const (
	LevelOK Level = iota
	LevelInfo
	LevelWarn
	LevelMiss
	LevelFail
)

func (l Level) tag() string {
	switch l {
	case LevelOK:
		return successStyle.Render("[ OK ]")
	case LevelInfo:
		return faintStyle.Render("[INFO]")
	case LevelWarn:
		return warningStyle.Render("[WARN]")
	case LevelMiss:
		return warningStyle.Render("[MISS]")
	default:
		return errorStyle.Render("[FAIL]")
	}
}

// Header prints a section heading.
func Header(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf(format, a...)))
}

// Created reports a file written by the scaffolder.
func Created(w io.Writer, path string) {
	fmt.Fprintf(w, "%s Created %s\n", successStyle.Render("✅"), path)
}

// Updated reports an existing file that was patched.
func Updated(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s Updated %s\n", successStyle.Render("✅"), fmt.Sprintf(format, a...))
}

// Status prints an indented check result, e.g. "  [ OK ] node found".
func Status(w io.Writer, level Level, format string, a ...any) {
	fmt.Fprintf(w, "  %s %s\n", level.tag(), fmt.Sprintf(format, a...))
}

// Warning prints a bulleted warning line.
func Warning(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", warningStyle.Render("-"), msg)
}

// Error prints a top-level error message.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Error:"), err)
}
