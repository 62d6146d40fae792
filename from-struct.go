package argparse

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/huandu/xstrings"
)

// AddStruct declares one argument per exported field of the struct pointed
// to by target. The long name is the kebab-cased field name, overridable
// with an `arg` tag; a `short` tag adds a one-character alias; `arity`
// takes "+", "*" or a fixed count; `required:"true"` marks the argument
// required; `arg:"final"` makes the field the trailing positional slot
// (required unless tagged `required:"false"`).
//
// Bool fields declare nullary flags, slice fields default to zero-or-more,
// anything else to a single value. Call Scan with the same struct after
// Parse to fill it in.
func (p *Parser) AddStruct(target interface{}) error {
	type_ := reflect.ValueOf(target).Elem().Type()
	for i := 0; i < type_.NumField(); i++ {
		field := type_.Field(i)
		if field.PkgPath != "" {
			continue
		}
		long := structFieldName(field)
		arity, err := fieldArity(field)
		if err != nil {
			return err
		}
		required := field.Tag.Get("required")
		if field.Tag.Get("arg") == "final" {
			err = p.AddFinalArgument(FinalOpt{
				Long:     long,
				Arity:    arity,
				Optional: required == "false",
			})
		} else {
			short := ""
			if s := field.Tag.Get("short"); s != "" {
				short = "-" + s
			}
			err = p.AddArgument(ArgOpt{
				Short:    short,
				Long:     "--" + long,
				Arity:    arity,
				Required: required == "true",
			})
		}
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// Scan fills target, a struct previously declared with AddStruct, from the
// parsed cells. Fields the command line left unset keep their values.
func (p *Parser) Scan(target interface{}) error {
	value := reflect.ValueOf(target).Elem()
	type_ := value.Type()
	for i := 0; i < type_.NumField(); i++ {
		field := type_.Field(i)
		if field.PkgPath != "" {
			continue
		}
		long := structFieldName(field)
		pos, ok := p.index[long]
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, long)
		}
		cell := &p.values[pos]
		if cell.empty() {
			continue
		}
		fv := value.Field(i)
		if cell.kind == valueSequence {
			if fv.Kind() != reflect.Slice {
				return fmt.Errorf("%w: %q holds a sequence, field %s is %v",
					ErrTypeMismatch, long, field.Name, field.Type)
			}
			for _, s := range cell.seq {
				elem := reflect.New(fv.Type().Elem())
				if err := unmarshalInto(s, elem.Interface()); err != nil {
					return fmt.Errorf("field %s: %w", field.Name, err)
				}
				fv.Set(reflect.Append(fv, elem.Elem()))
			}
			continue
		}
		if err := unmarshalInto(cell.scalar, fv.Addr().Interface()); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

func structFieldName(field reflect.StructField) string {
	switch tag := field.Tag.Get("arg"); tag {
	case "", "final":
		return xstrings.ToKebabCase(field.Name)
	default:
		return tag
	}
}

func fieldArity(field reflect.StructField) (Arity, error) {
	switch tag := field.Tag.Get("arity"); tag {
	case "":
	case "+":
		return OneOrMore, nil
	case "*":
		return ZeroOrMore, nil
	default:
		n, err := strconv.Atoi(tag)
		if err != nil {
			return Arity{}, fmt.Errorf("%w: bad arity tag %q on %s", ErrInvalidDeclaration, tag, field.Name)
		}
		return Fixed(n), nil
	}
	switch field.Type.Kind() {
	case reflect.Bool:
		return Fixed(0), nil
	case reflect.Slice:
		return ZeroOrMore, nil
	default:
		return Fixed(1), nil
	}
}

var builtinUnmarshallers = map[reflect.Type]func(s string, value interface{}) error{
	reflect.TypeOf((*time.Duration)(nil)): func(s string, value interface{}) error {
		d, err := time.ParseDuration(s)
		if err == nil {
			reflect.ValueOf(value).Elem().Set(reflect.ValueOf(d))
		}
		return err
	},
}

func unmarshalInto(s string, target interface{}) error {
	if u, ok := target.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}
	if f, ok := builtinUnmarshallers[reflect.TypeOf(target)]; ok {
		return f(s, target)
	}
	value := reflect.ValueOf(target).Elem()
	switch value.Type().Kind() {
	case reflect.String:
		value.SetString(s)
	case reflect.Slice:
		x := reflect.New(value.Type().Elem())
		err := unmarshalInto(s, x.Interface())
		if err != nil {
			return fmt.Errorf("unmarshalling into new element for %v: %w", value.Type(), err)
		}
		value.Set(reflect.Append(value, x.Elem()))
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		value.SetBool(b)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		value.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		value.SetFloat(f)
	default:
		return fmt.Errorf("unhandled target type %v", value.Type())
	}
	return nil
}
