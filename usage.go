package argparse

import (
	"io"
	"strings"
)

const usageWidth = 80

// Usage renders the banner: "Usage: <app> " followed by required arguments
// in declaration order, then optional ones, then the final slot last
// regardless of where it was declared. Lines wrap before column 80, with
// continuation lines indented to the width of the prefix. The column count
// tracks the current line, not the accumulated banner.
func (p *Parser) Usage() string {
	prefix := "Usage: " + p.appName + " "
	var b strings.Builder
	b.WriteString(prefix)
	col := len(prefix)
	first := true
	emit := func(s string) {
		if !first {
			if col+1+len(s) > usageWidth {
				b.WriteString("\n" + strings.Repeat(" ", len(prefix)))
				col = len(prefix)
			} else {
				b.WriteByte(' ')
				col++
			}
		}
		b.WriteString(s)
		col += len(s)
		first = false
	}
	final := func(arg *argument) bool {
		return p.finalName != "" && arg.long == p.finalName
	}
	for n := range p.args {
		arg := &p.args[n]
		if arg.optional || final(arg) {
			continue
		}
		emit(arg.String())
	}
	for n := range p.args {
		arg := &p.args[n]
		if !arg.optional || final(arg) {
			continue
		}
		emit(arg.String())
	}
	if p.finalName != "" {
		emit(p.args[p.index[p.finalName]].String())
	}
	return b.String()
}

// WriteUsage writes the banner and a trailing newline to w.
func (p *Parser) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, p.Usage()+"\n")
	return err
}
