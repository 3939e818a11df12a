package grammar

import (
	"os"
	"testing"

	"golang.org/x/exp/ebnf"
)

// TestEBNF checks that grammar.ebnf, the documentation-as-code mirror of the
// language grammar, is internally consistent and fully reachable from its
// start symbol. It does not generate or validate the hand-written
// recursive-descent parser in lang/parser: it checks the grammar file on its
// own, so a drift between the file and the parser goes undetected.
func TestEBNF(t *testing.T) {
	f, err := os.Open("grammar.ebnf")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	g, err := ebnf.Parse("grammar.ebnf", f)
	if err != nil {
		t.Fatal(err)
	}
	if err := ebnf.Verify(g, "Program"); err != nil {
		t.Fatal(err)
	}
}
