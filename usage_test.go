package argparse

import (
	"os"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

func ExampleParser_WriteUsage() {
	p := NewParser()
	p.SetAppName("prog")
	p.AddArgument(ArgOpt{Long: "--name", Arity: Fixed(1), Required: true})
	p.AddArgument(ArgOpt{Long: "--inputs", Arity: ZeroOrMore})
	p.WriteUsage(os.Stdout)
	// Output:
	// Usage: prog --name NAME [--inputs [INPUTS INPUTS...]]
}

func TestUsageBanner(t *testing.T) {
	c := qt.New(t)
	p := NewParser()
	p.SetAppName("prog")
	c.Assert(p.AddArgument(ArgOpt{Long: "--name", Arity: Fixed(1), Required: true}), qt.IsNil)
	c.Assert(p.AddArgument(ArgOpt{Long: "--inputs", Arity: ZeroOrMore}), qt.IsNil)
	want := "Usage: prog --name NAME [--inputs [INPUTS INPUTS...]]"
	c.Check(cmp.Diff(want, p.Usage()), qt.Equals, "")
}

func TestUsageVariants(t *testing.T) {
	c := qt.New(t)
	p := NewParser()
	p.SetAppName("prog")
	c.Assert(p.AddArgument(ArgOpt{Long: "--flag", Required: true}), qt.IsNil)
	c.Assert(p.AddArgument(ArgOpt{Short: "-s", Arity: Fixed(1), Required: true}), qt.IsNil)
	c.Assert(p.AddArgument(ArgOpt{Long: "--many", Arity: Fixed(5), Required: true}), qt.IsNil)
	c.Assert(p.AddArgument(ArgOpt{Long: "--more", Arity: OneOrMore, Required: true}), qt.IsNil)
	want := "Usage: prog --flag -s S --many MANY MANY MANY ... --more MORE [MORE...]"
	c.Check(cmp.Diff(want, p.Usage()), qt.Equals, "")
}

func TestUsageOrdering(t *testing.T) {
	c := qt.New(t)
	p := NewParser()
	p.SetAppName("prog")
	// Declared out of order on purpose: final first, optional before required.
	c.Assert(p.AddFinalArgument(FinalOpt{Long: "output"}), qt.IsNil)
	c.Assert(p.AddArgument(ArgOpt{Long: "--inputs", Arity: ZeroOrMore}), qt.IsNil)
	c.Assert(p.AddArgument(ArgOpt{Long: "--name", Arity: Fixed(1), Required: true}), qt.IsNil)
	want := "Usage: prog --name NAME [--inputs [INPUTS INPUTS...]] --output OUTPUT"
	c.Check(cmp.Diff(want, p.Usage()), qt.Equals, "")
}

func TestUsageWrapping(t *testing.T) {
	c := qt.New(t)
	p := NewParser()
	p.SetAppName("prog")
	for _, name := range []string{"--alpha", "--bravo", "--delta", "--gamma", "--omega"} {
		c.Assert(p.AddArgument(ArgOpt{Long: name, Arity: Fixed(1), Required: true}), qt.IsNil)
	}
	want := "Usage: prog --alpha ALPHA --bravo BRAVO --delta DELTA --gamma GAMMA\n" +
		"            --omega OMEGA"
	c.Check(cmp.Diff(want, p.Usage()), qt.Equals, "")
}

func TestUsageNeverPassesColumn80(t *testing.T) {
	c := qt.New(t)
	p := NewParser()
	p.SetAppName("prog")
	for _, name := range []string{
		"--ant", "--bee", "--cat", "--dog", "--eel", "--fox", "--gnu", "--hen",
		"--ibis", "--jay", "--kiwi", "--lark", "--mole", "--newt", "--orca",
		"--puma", "--quail", "--raven", "--shrew", "--tapir",
	} {
		c.Assert(p.AddArgument(ArgOpt{Long: name, Arity: Fixed(1)}), qt.IsNil)
	}
	u := p.Usage()
	indent := strings.Repeat(" ", len("Usage: prog "))
	for i, line := range strings.Split(u, "\n") {
		c.Check(len(line) <= 80, qt.IsTrue, qt.Commentf("line %d: %q", i, line))
		if i > 0 {
			c.Check(strings.HasPrefix(line, indent), qt.IsTrue, qt.Commentf("line %d: %q", i, line))
		}
	}
}
