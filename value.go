package argparse

import "fmt"

type valueKind int

const (
	valueScalar valueKind = iota
	valueSequence
)

// value is the storage cell for one argument: a single string for fixed
// arity, a string sequence for variable arity. The kind tag is decided at
// declaration time and retrieval refuses the other shape.
type value struct {
	kind   valueKind
	scalar string
	seq    []string
}

func newValue(a Arity) value {
	if a.variable() {
		return value{kind: valueSequence}
	}
	return value{kind: valueScalar}
}

func (v *value) empty() bool {
	if v.kind == valueSequence {
		return len(v.seq) == 0
	}
	return v.scalar == ""
}

// Retrievable is the closed set of types a cell can hold.
type Retrievable interface {
	string | []string
}

// Retrieve returns the value bound to name: string for fixed-arity
// arguments, []string for variable arity. Requesting the shape the cell
// does not hold is ErrTypeMismatch; there is no coercion. Either of an
// argument's names resolves to the same cell.
func Retrieve[T Retrievable](p *Parser, name string) (T, error) {
	var ret T
	pos, ok := p.index[name]
	if !ok {
		return ret, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	cell := &p.values[pos]
	switch out := any(&ret).(type) {
	case *string:
		if cell.kind != valueScalar {
			return ret, fmt.Errorf("%w: %q holds a sequence, requested string", ErrTypeMismatch, name)
		}
		*out = cell.scalar
	case *[]string:
		if cell.kind != valueSequence {
			return ret, fmt.Errorf("%w: %q holds a scalar, requested []string", ErrTypeMismatch, name)
		}
		*out = cell.seq
	}
	return ret, nil
}
