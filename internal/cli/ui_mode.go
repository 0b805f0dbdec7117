package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Front-end modes accepted by --ui and ui.mode.
const (
	uiModeAuto  = "auto"
	uiModeLive  = "live"
	uiModePlain = "plain"
)

// uiModeDecision captures which front-end take should use.
type uiModeDecision struct {
	useLive bool
	noColor bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// lookupEnv reads terminal hints from the environment.
var lookupEnv = os.LookupEnv

// resolveUIMode determines whether to run the live quiz UI and whether it may use color.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = uiModeAuto
	}
	decision := uiModeDecision{noColor: colorDisabled()}
	switch normalized {
	case uiModeAuto, uiModeLive, uiModePlain:
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if verbose || normalized == uiModePlain {
		return decision, nil
	}
	tty := isTerminal(stdout)
	if normalized == uiModeLive && !tty {
		decision.warning = "Live UI requested but stdout is not a TTY; falling back to plain output."
		return decision, nil
	}
	decision.useLive = tty
	return decision, nil
}

// colorDisabled honors NO_COLOR and dumb terminals.
func colorDisabled() bool {
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return true
	}
	value, ok := lookupEnv("TERM")
	return ok && value == "dumb"
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
