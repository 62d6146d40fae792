// Package argparse declares, parses and retrieves named command-line
// arguments, in the spirit of python's ArgumentParser:
//
//	p := argparse.NewParser()
//	p.AddArgument(argparse.ArgOpt{Short: "-n", Long: "--name", Arity: argparse.Fixed(1)})
//	p.AddArgument(argparse.ArgOpt{Long: "--inputs", Arity: argparse.OneOrMore})
//	p.Parse(os.Args)
//	name, err := argparse.Retrieve[string](p, "name")
//	inputs, err := argparse.Retrieve[[]string](p, "inputs")
package argparse

import (
	"fmt"
	"strings"
)

// Parser owns the declared arguments and their parsed values. Declare with
// AddArgument and AddFinalArgument, feed Parse the raw token list, then
// read values back with Retrieve, Count and Exists. A Parser is not safe
// for concurrent use.
type Parser struct {
	appName     string
	ignoreFirst bool
	finalName   string
	args        []argument
	values      []value
	index       map[string]int
}

func NewParser() *Parser {
	return &Parser{index: make(map[string]int)}
}

// ArgOpt declares one argument. At least one of Short and Long must be
// given, dash decoration included: "-x" for shorts, "--name" for longs.
// The zero Arity means a nullary flag.
type ArgOpt struct {
	Short    string
	Long     string
	Arity    Arity
	Required bool
}

// FinalOpt declares the trailing positional argument. The zero Arity means
// a single value, and the slot is required unless Optional is set.
type FinalOpt struct {
	Long     string
	Arity    Arity
	Optional bool
}

func (p *Parser) AddArgument(opt ArgOpt) error {
	short, err := sanitizeShort(opt.Short)
	if err != nil {
		return err
	}
	long, err := sanitizeLong(opt.Long)
	if err != nil {
		return err
	}
	if short == "" && long == "" {
		return fmt.Errorf("%w: an argument needs a short or a long name", ErrInvalidDeclaration)
	}
	return p.insert(argument{
		short:    short,
		long:     long,
		optional: !opt.Required,
		arity:    opt.Arity.or(Fixed(0)),
	})
}

// AddFinalArgument declares the trailing positional slot, bound from
// whatever tokens remain once all flags are matched. The name may be given
// bare or with the "--" decoration. A later call moves the designation.
func (p *Parser) AddFinalArgument(opt FinalOpt) error {
	long, err := sanitizeLong("--" + strings.TrimPrefix(opt.Long, "--"))
	if err != nil {
		return err
	}
	err = p.insert(argument{
		long:     long,
		optional: opt.Optional,
		arity:    opt.Arity.or(Fixed(1)),
	})
	if err != nil {
		return err
	}
	p.finalName = long
	return nil
}

// sanitizeShort strips the dash from "-x". Anything longer than one
// character after the dash, or an undashed name, is rejected.
func sanitizeShort(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if len(name) != 2 || name[0] != '-' || name[1] == '-' {
		return "", fmt.Errorf("%w: %q: short names are a dash and one character", ErrInvalidDeclaration, name)
	}
	return name[1:], nil
}

// sanitizeLong strips the double dash from "--name". The bare name must be
// more than one character.
func sanitizeLong(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if !strings.HasPrefix(name, "--") || len(name) < 4 || name[2] == '-' {
		return "", fmt.Errorf("%w: %q: long names are two dashes and more than one character", ErrInvalidDeclaration, name)
	}
	return name[2:], nil
}

func (p *Parser) insert(arg argument) error {
	if arg.arity.kind == arityFixed && arg.arity.count < 0 {
		return fmt.Errorf("%w: negative arity for %s", ErrInvalidDeclaration, arg.flag())
	}
	for _, name := range []string{arg.short, arg.long} {
		if name == "" {
			continue
		}
		if _, ok := p.index[name]; ok {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidDeclaration, name)
		}
	}
	n := len(p.args)
	p.args = append(p.args, arg)
	p.values = append(p.values, newValue(arg.arity))
	if arg.short != "" {
		p.index[arg.short] = n
	}
	if arg.long != "" {
		p.index[arg.long] = n
	}
	return nil
}

// SetAppName fixes the name used in the usage banner; when unset, Parse
// takes the first token instead.
func (p *Parser) SetAppName(name string) { p.appName = name }

// SetIgnoreFirst stops Parse from consuming the first token as the
// application name.
func (p *Parser) SetIgnoreFirst(ignore bool) { p.ignoreFirst = ignore }

// Exists reports whether name is declared, under either of its forms.
func (p *Parser) Exists(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Count reports how many values are bound to name: 0 or 1 for fixed-arity
// arguments, the element count for variable arity, and 0 for undeclared
// names.
func (p *Parser) Count(name string) int {
	pos, ok := p.index[name]
	if !ok {
		return 0
	}
	cell := &p.values[pos]
	if cell.kind == valueSequence {
		return len(cell.seq)
	}
	if cell.scalar == "" {
		return 0
	}
	return 1
}

// Empty reports whether nothing has been declared.
func (p *Parser) Empty() bool { return len(p.index) == 0 }

// Clear drops every declaration and parsed value, including the final
// designation. The application name and the ignore-first setting are
// parser configuration and survive.
func (p *Parser) Clear() {
	p.args = nil
	p.values = nil
	p.index = make(map[string]int)
	p.finalName = ""
}
