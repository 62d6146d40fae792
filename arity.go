package argparse

import "fmt"

type arityKind int

const (
	arityUnset arityKind = iota
	arityFixed
	arityOneOrMore
	arityZeroOrMore
)

// Arity is how many values an argument consumes per occurrence: an exact
// count, or a greedy variable run. The zero value means "unset" and lets
// each declaration site apply its default.
type Arity struct {
	kind  arityKind
	count int
}

// Fixed returns an arity consuming exactly n values.
func Fixed(n int) Arity { return Arity{kind: arityFixed, count: n} }

var (
	// OneOrMore consumes values greedily and requires at least one.
	OneOrMore = Arity{kind: arityOneOrMore}
	// ZeroOrMore consumes values greedily and accepts none.
	ZeroOrMore = Arity{kind: arityZeroOrMore}
)

func (a Arity) variable() bool {
	return a.kind == arityOneOrMore || a.kind == arityZeroOrMore
}

func (a Arity) or(def Arity) Arity {
	if a.kind == arityUnset {
		return def
	}
	return a
}

func (a Arity) String() string {
	switch a.kind {
	case arityOneOrMore:
		return "+"
	case arityZeroOrMore:
		return "*"
	default:
		return fmt.Sprint(a.count)
	}
}
