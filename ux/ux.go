// Package ux terminal output helpers for the tutorial.
package ux

import (
	"strings"

	"github.com/pterm/pterm"
)

// Banner print a prominent banner for a lesson or stage.
func Banner(text string) {
	pterm.DefaultHeader.WithFullWidth().Println(text)
}

// Section print a section header.
func Section(text string) {
	pterm.DefaultSection.Println(text)
}

// Concept print a concept with title and explanation.
func Concept(title, explanation string) {
	pterm.NewStyle(pterm.FgLightYellow, pterm.Bold).Println(title)
	for _, line := range strings.Split(strings.Trim(explanation, "\n"), "\n") {
		pterm.FgGray.Println("   " + line)
	}
	pterm.Println()
}

// Success print a success message.
func Success(format string, args ...interface{}) {
	pterm.Success.Printfln(format, args...)
}

// Info print an informational message.
func Info(format string, args ...interface{}) {
	pterm.Info.Printfln(format, args...)
}

// Warning print a warning message.
func Warning(format string, args ...interface{}) {
	pterm.Warning.Printfln(format, args...)
}

// Failure print an error message.
func Failure(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
}

// Code print a command or code snippet.
func Code(code string) {
	pterm.FgGray.Println("  >>> " + code)
}

// Text print preformatted body text, dimmed.
func Text(body string) {
	for _, line := range strings.Split(strings.Trim(body, "\n"), "\n") {
		pterm.FgGray.Println(line)
	}
}

// Table render tabular data with a header row.
func Table(header []string, rows [][]string) {
	data := pterm.TableData{header}
	for _, r := range rows {
		data = append(data, r)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println("failed to render table", err)
	}
}
