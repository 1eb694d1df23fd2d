package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Color styles for console output, grounded directly on
// chai/src/logging/display.go's palette.
var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayDiagnostic prints one diagnostic to the console with a
// colored banner matching its kind.
func displayDiagnostic(d Diagnostic) {
	if d.Kind == Error {
		errorStyleBG.Print(" error ")
		errorColorFG.Printf(" line %d: %s\n", d.Line, d.Message)
	} else {
		warnStyleBG.Print(" warning ")
		warnColorFG.Printf(" line %d: %s\n", d.Line, d.Message)
	}
}

// phaseSpinner tracks the currently running compile-phase spinner, if
// any, mirroring chai/src/logging/display.go's displayBeginPhase.
var (
	phaseSpinner   *pterm.SpinnerPrinter
	currentPhase   string
	phaseStartTime time.Time
)

const maxPhaseLength = len("Parsing and analysis")

// BeginPhase starts a labelled spinner for one stage of a run (e.g.
// "Lexing", "Parsing", "Semantic analysis").
func BeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)

	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(successColorFG))
	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: successStyleBG, Text: "Done"},
	}
	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: errorStyleBG, Text: "Fail"},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// EndPhase closes out the current spinner, reporting success or
// failure and the elapsed time.
func EndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	padded := currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2)

	if success {
		phaseSpinner.Success(padded, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()))
	} else {
		phaseSpinner.Fail(padded)
	}

	phaseSpinner = nil
}

// Summary prints the closing message for a run: overall pass/fail plus
// error and warning counts, mirroring
// chai/src/logging/display.go's displayCompilationFinished.
func Summary(errorCount, warningCount int) {
	fmt.Print("\n")

	if errorCount == 0 {
		successColorFG.Print("All done! ")
	} else {
		errorColorFG.Print("Finished with errors. ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		successColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		errorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		errorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		successColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		warnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		warnColorFG.Print(warningCount)
		fmt.Println(" warnings)")
	}
}
