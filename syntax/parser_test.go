package syntax

import (
	"bytes"
	"strings"
	"testing"

	"cminor/report"
	"cminor/sema"
)

// analyzeSource runs the full lex-parse-analyze pipeline over src and
// returns the diagnostic lines that would be written to the error
// file, in emission order, matching spec.md §6's external contract.
func analyzeSource(t *testing.T, src string) []string {
	t.Helper()

	var log bytes.Buffer
	r := report.New(&log, report.LogLevelSilent)
	a := sema.NewAnalyzer(0, r)

	p := NewParser(strings.NewReader(src), a)
	p.Parse()

	var errBuf bytes.Buffer
	if err := r.WriteErrorFile(&errBuf); err != nil {
		t.Fatalf("WriteErrorFile: %v", err)
	}

	lines := strings.Split(strings.TrimRight(errBuf.String(), "\n"), "\n")
	return lines
}

func TestScenarioMultipleDeclaration(t *testing.T) {
	lines := analyzeSource(t, "int x; int x;")

	if len(lines) < 2 {
		t.Fatalf("expected at least a diagnostic and a total line, got %v", lines)
	}
	if lines[0] != "At line no: 1 Multiple declaration of variable x" {
		t.Errorf("got %q", lines[0])
	}
	if lines[len(lines)-1] != "Total errors: 1" {
		t.Errorf("expected Total errors: 1, got %q", lines[len(lines)-1])
	}
}

func TestScenarioArrayIndexNotInteger(t *testing.T) {
	lines := analyzeSource(t, "int main(){ int a[10]; a[2.5] = 3; }")

	found := false
	for _, l := range lines {
		if strings.Contains(l, "array index is not of integer type : a") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an array-index diagnostic, got %v", lines)
	}
}

func TestScenarioVoidInExpression(t *testing.T) {
	lines := analyzeSource(t, "void f(){} int main(){ int x; x = f(); }")

	found := false
	for _, l := range lines {
		if strings.Contains(l, "operation on void type") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an operation-on-void-type diagnostic, got %v", lines)
	}
}

func TestScenarioCallArityThenArgumentMismatch(t *testing.T) {
	lines := analyzeSource(t, "int add(int a, float b){ return a+3; } int main(){ add(1); add(1,2); }")

	foundArity := false
	foundArgType := false
	for _, l := range lines {
		if strings.Contains(l, "Inconsistencies in number of arguments in function call: add") {
			foundArity = true
		}
		if strings.Contains(l, "argument 2 type mismatch in function call: add") {
			foundArgType = true
		}
	}
	if !foundArity {
		t.Errorf("expected an arity diagnostic, got %v", lines)
	}
	if !foundArgType {
		t.Errorf("expected an argument-type diagnostic, got %v", lines)
	}
}

func TestScenarioFloatToIntWarning(t *testing.T) {
	lines := analyzeSource(t, "int main(){ int x; float y; y=1.5; x=y; }")

	found := false
	for _, l := range lines {
		if strings.Contains(l, "Warning: Assignment of float value into variable of integer type") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a float-to-int warning, got %v", lines)
	}
}

func TestScenarioDivisionAndModulusDiagnostics(t *testing.T) {
	lines := analyzeSource(t, "int main(){ int x; x = 5/0; x = 5%2.5; }")

	foundDiv := false
	foundMod := false
	for _, l := range lines {
		if strings.Contains(l, "Division by 0") {
			foundDiv = true
		}
		if strings.Contains(l, "Modulus operator on non integer type") {
			foundMod = true
		}
	}
	if !foundDiv {
		t.Errorf("expected a division-by-zero diagnostic, got %v", lines)
	}
	if !foundMod {
		t.Errorf("expected a modulus-on-non-integer diagnostic, got %v", lines)
	}
}
