package formatter

import (
	"testing"

	"github.com/briolang/brio/internal/parser"
)

func formatSource(t *testing.T, source string) string {
	t.Helper()
	p := parser.New(source)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected parse errors: %s", p.Diagnostics().Format("test"))
	}
	return Format(prog)
}

func TestFormatCanonical(t *testing.T) {
	source := `integer   x.
struct Point{integer x. integer y.}
void main(){
integer i.
i=0.
while(i<10){i++.}
if(i==10){disp<-"done".}else{i--.}
input->i.
return.
}`

	want := `integer x.

struct Point {
    integer x.
    integer y.
}

void main() {
    integer i.
    i = 0.
    while ((i < 10)) {
        i++.
    }
    if ((i == 10)) {
        disp <- "done".
    } else {
        i--.
    }
    input -> i.
    return.
}
`

	got := formatSource(t, source)
	if got != want {
		t.Errorf("canonical output mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestFormatColonAccessAndCalls(t *testing.T) {
	source := `struct Outer { struct Inner i. }
void main() {
o:i:v = f(1, 2).
g().
}`

	want := `struct Outer {
    struct Inner i.
}

void main() {
    o:i:v = f(1, 2).
    g().
}
`

	got := formatSource(t, source)
	if got != want {
		t.Errorf("canonical output mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

// TestFormatFixpoint checks that formatting is stable: formatting the
// formatter's own output must reproduce it exactly.
func TestFormatFixpoint(t *testing.T) {
	sources := []string{
		"integer x.\nboolean b.",
		`struct Point {
    integer x.
}
struct Point p.
void main() {
    integer n.
    n = 1 + 2 * 3.
    p:x = n.
    if (n > 0 && true) {
        n = -n.
    }
    return.
}`,
		`void f(integer a, boolean b) {
    a = (a = 5).
    disp <- "s".
}`,
	}

	for _, src := range sources {
		once := formatSource(t, src)
		twice := formatSource(t, once)
		if once != twice {
			t.Errorf("formatting is not a fixpoint:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
		}
	}
}
