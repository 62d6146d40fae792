package argparse

import "strings"

// argument is one immutable declaration: names stored without their dash
// decoration, optionality, and arity.
type argument struct {
	short    string
	long     string
	optional bool
	arity    Arity
}

// name is the display name, preferring the long form.
func (a *argument) name() string {
	if a.long != "" {
		return a.long
	}
	return a.short
}

func (a *argument) flag() string {
	if a.long != "" {
		return "--" + a.long
	}
	return "-" + a.short
}

func upper(s string) string { return strings.ToUpper(s) }

// String renders the argument for the usage banner. Fixed arity repeats the
// uppercased name up to three times before eliding; variable arity brackets
// the repeatable tail. An optional argument is bracketed whole.
func (a *argument) String() string {
	var b strings.Builder
	uname := upper(a.name())
	if a.optional {
		b.WriteByte('[')
	}
	b.WriteString(a.flag())
	switch a.arity.kind {
	case arityOneOrMore:
		b.WriteString(" " + uname + " [" + uname + "...]")
	case arityZeroOrMore:
		b.WriteString(" [" + uname + " " + uname + "...]")
	default:
		n := a.arity.count
		if n > 3 {
			n = 3
		}
		for i := 0; i < n; i++ {
			b.WriteString(" " + uname)
		}
		if a.arity.count > 3 {
			b.WriteString(" ...")
		}
	}
	if a.optional {
		b.WriteByte(']')
	}
	return b.String()
}
