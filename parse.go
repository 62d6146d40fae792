package argparse

import (
	"fmt"
	"strings"
)

// Parse consumes raw tokens, typically os.Args, left to right in one pass.
// Unless the application name is already set or SetIgnoreFirst was called,
// the first token names the application and is not matched. Tokens matching
// a declared flag start an arity run; everything else is held back for the
// final positional slot. After the pass every required argument must have a
// value.
//
// On failure the parser may hold a partial parse; Clear and re-declare
// before retrying.
func (p *Parser) Parse(tokens []string) error {
	if p.appName == "" && !p.ignoreFirst && len(tokens) > 0 {
		p.appName = tokens[0]
		tokens = tokens[1:]
	}
	var leftover []string
	for i := 0; i < len(tokens); {
		pos, ok := p.matchFlag(tokens[i])
		if !ok {
			leftover = append(leftover, tokens[i])
			i++
			continue
		}
		var err error
		i, err = p.collect(pos, tokens, i+1)
		if err != nil {
			return err
		}
	}
	if err := p.bindFinal(leftover); err != nil {
		return err
	}
	for n := range p.args {
		if !p.args[n].optional && p.values[n].empty() {
			return fmt.Errorf("%w: %s", ErrMissingRequired, p.args[n].flag())
		}
	}
	return nil
}

// matchFlag resolves a token of the form "-x" or "--name" to its argument
// position. A single dash matches only short names, a double dash only
// long names.
func (p *Parser) matchFlag(tok string) (int, bool) {
	if strings.HasPrefix(tok, "--") && len(tok) > 2 {
		if pos, ok := p.index[tok[2:]]; ok && p.args[pos].long == tok[2:] {
			return pos, true
		}
		return 0, false
	}
	if len(tok) == 2 && tok[0] == '-' {
		if pos, ok := p.index[tok[1:]]; ok && p.args[pos].short == tok[1:] {
			return pos, true
		}
	}
	return 0, false
}

// collect runs one arity pass for the argument at pos, starting at
// tokens[i], and returns the index of the first unconsumed token. A run
// stops at the next recognized flag; unknown flag-looking tokens are
// ordinary values.
func (p *Parser) collect(pos int, tokens []string, i int) (int, error) {
	arg := &p.args[pos]
	cell := &p.values[pos]
	var run []string
	for i < len(tokens) {
		if _, flag := p.matchFlag(tokens[i]); flag {
			break
		}
		if arg.arity.kind == arityFixed && len(run) == arg.arity.count {
			break
		}
		run = append(run, tokens[i])
		i++
	}
	switch arg.arity.kind {
	case arityFixed:
		if len(run) < arg.arity.count {
			return i, fmt.Errorf("%w: %s expects %d values, got %d",
				ErrMissingValue, arg.flag(), arg.arity.count, len(run))
		}
		switch arg.arity.count {
		case 0:
			cell.scalar = "true"
		case 1:
			cell.scalar = run[0]
		default:
			cell.scalar = strings.Join(run, " ")
		}
	case arityOneOrMore:
		if len(run) == 0 {
			return i, fmt.Errorf("%w: %s expects at least one value", ErrMissingValue, arg.flag())
		}
		cell.seq = append(cell.seq, run...)
	case arityZeroOrMore:
		cell.seq = append(cell.seq, run...)
	}
	return i, nil
}

// bindFinal hands the held-back tokens to the final positional slot. With
// no slot declared any leftover token is unknown. An empty slot is left for
// the required sweep to report.
func (p *Parser) bindFinal(leftover []string) error {
	if p.finalName == "" {
		if len(leftover) > 0 {
			return fmt.Errorf("%w: %q", ErrUnknownArgument, leftover[0])
		}
		return nil
	}
	pos := p.index[p.finalName]
	arg := &p.args[pos]
	cell := &p.values[pos]
	if arg.arity.variable() {
		cell.seq = append(cell.seq, leftover...)
		return nil
	}
	n := arg.arity.count
	if len(leftover) > n {
		return fmt.Errorf("%w: %q", ErrUnknownArgument, leftover[n])
	}
	if len(leftover) == 0 {
		return nil
	}
	if len(leftover) < n {
		return fmt.Errorf("%w: %s expects %d values, got %d",
			ErrMissingValue, arg.flag(), n, len(leftover))
	}
	if n == 1 {
		cell.scalar = leftover[0]
	} else {
		cell.scalar = strings.Join(leftover, " ")
	}
	return nil
}
