package ux

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
)

// ErrQuit returned by the menu when the user asks to leave the tutorial.
const ErrQuit = errorsx.String("tutorial terminated by user")

// Action the choice made from the pause menu.
type Action int

const (
	// ActionContinue move on to the next section.
	ActionContinue Action = iota
	// ActionAQL open the aql query shell.
	ActionAQL
	// ActionAsadm open the asadm admin shell.
	ActionAsadm
	// ActionValidate run the full cluster health check.
	ActionValidate
	// ActionQuit leave the tutorial.
	ActionQuit
)

// ParseChoice maps the typed menu input to an action. the boolean reports
// whether the input was recognised.
func ParseChoice(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c", "continue":
		return ActionContinue, true
	case "a", "aql", "1":
		return ActionAQL, true
	case "s", "asadm", "2":
		return ActionAsadm, true
	case "v", "validate", "3":
		return ActionValidate, true
	case "q", "quit", "exit":
		return ActionQuit, true
	default:
		return ActionContinue, false
	}
}

// Menu renders the pause menu and reads choices until one is recognised.
// end of input is treated as continue; quitting returns ErrQuit.
func Menu(in io.Reader, out io.Writer) (Action, error) {
	var (
		divider = strings.Repeat("═", 60)
		scanner = bufio.NewScanner(in)
	)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, pterm.Bold.Sprint(divider))
		fmt.Fprintln(out, pterm.Bold.Sprint("  What would you like to do?"))
		fmt.Fprintln(out, pterm.Bold.Sprint(divider))
		fmt.Fprintf(out, "  %s Continue to next section\n", pterm.FgGreen.Sprint("[Enter]"))
		fmt.Fprintf(out, "  %s     Open AQL shell (query/insert data)\n", pterm.FgCyan.Sprint("[a]"))
		fmt.Fprintf(out, "  %s     Open ASADM shell (admin commands)\n", pterm.FgCyan.Sprint("[s]"))
		fmt.Fprintf(out, "  %s     Validate cluster health\n", pterm.FgYellow.Sprint("[v]"))
		fmt.Fprintf(out, "  %s     Quit tutorial\n", pterm.FgRed.Sprint("[q]"))
		fmt.Fprint(out, pterm.FgBlue.Sprint("Enter choice [Enter/a/s/v/q]: "))

		if !scanner.Scan() {
			return ActionContinue, scanner.Err()
		}

		choice, ok := ParseChoice(scanner.Text())
		if !ok {
			fmt.Fprintln(out, pterm.FgRed.Sprint("Invalid choice. Please enter a, s, v, q or just press Enter."))
			continue
		}

		if choice == ActionQuit {
			fmt.Fprintln(out, pterm.FgYellow.Sprint("Exiting tutorial..."))
			return ActionQuit, ErrQuit
		}

		return choice, nil
	}
}
