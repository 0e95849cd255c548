package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"lasso/internal/gateway"
)

// printOutcome renders a completed call. JSON outcomes are indented when
// writing to an interactive terminal and compact otherwise, so piped
// output stays machine-friendly. Text outcomes print verbatim.
func printOutcome(w io.Writer, outcome gateway.Outcome) error {
	if outcome.IsText() {
		fmt.Fprintln(w, outcome.Text())
		return nil
	}

	var data []byte
	var err error
	if isInteractive(w) {
		data, err = json.MarshalIndent(outcome.JSON(), "", "  ")
	} else {
		data, err = json.Marshal(outcome.JSON())
	}
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}

	fmt.Fprintln(w, string(data))
	return nil
}

// isInteractive reports whether the writer is a terminal.
func isInteractive(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
