package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/briolang/brio/internal/diagnostic"
)

const goodSource = `struct Point {
    integer x.
}
struct Point p.
void main() {
    p:x = 1.
}`

func TestCheckCleanSource(t *testing.T) {
	res := Check(goodSource)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected errors: %s", res.Diagnostics.Format("test"))
	}
	if len(res.Program.Decls) != 3 {
		t.Errorf("expected 3 top-level declarations, got %d", len(res.Program.Decls))
	}
}

func TestCheckReportsResolutionErrors(t *testing.T) {
	res := Check(`void main() {
    x = 1.
}`)
	if !res.Diagnostics.HasErrors() {
		t.Fatal("expected a resolution error")
	}
	if got := res.Diagnostics.All()[0].Kind; got != diagnostic.UndeclaredIdentifier {
		t.Errorf("expected an undeclared-identifier diagnostic, got %s", got)
	}
}

func TestCheckSkipsAnalysisOnParseErrors(t *testing.T) {
	res := Check(`integer x
x:y = 1.`)
	if !res.Diagnostics.HasErrors() {
		t.Fatal("expected parse errors")
	}
	// Resolution never ran, so no kinded diagnostics appear
	for _, d := range res.Diagnostics.All() {
		if d.Kind != diagnostic.KindNone {
			t.Errorf("expected only parse diagnostics, got %s", d.Kind)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	out, diags := Format("integer   x.\nboolean b.")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Format("test"))
	}
	if out != "integer x.\nboolean b.\n" {
		t.Errorf("unexpected canonical output: %q", out)
	}
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.brio")
	if err := os.WriteFile(path, []byte(goodSource), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := CheckFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Diagnostics.HasErrors() {
		t.Errorf("unexpected errors: %s", res.Diagnostics.Format(path))
	}

	_, err = CheckFile(filepath.Join(t.TempDir(), "missing.brio"))
	if err == nil || !strings.Contains(err.Error(), "reading") {
		t.Errorf("expected a read error for a missing file, got %v", err)
	}
}
