// File: wrap.go
// Title: Scalar Wrapper for fmt Integration
// Description: Wraps a value together with its Radix so it can flow
//              through fmt verbs. The Formatter implementation maps fmt
//              width, precision, and flags onto a format spec.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial wrapper implementation

package radix

import (
	"fmt"
	"io"

	"github.com/msto63/radix/format"
	"github.com/msto63/radix/numeral"
)

// Wrapped binds a numeric value to a Radix for use with the fmt package.
// The supported verbs are %f, %e, %E, and %d with their usual meaning in
// the format mini-language, %v and %s for the default presentation. The
// +, space, #, 0, and - flags and the width and precision map onto the
// corresponding spec fields.
type Wrapped struct {
	r     *Radix
	value numeral.Decimal
	isInt bool
}

// Wrap binds a value to this Radix. String values are decoded as
// numerals of this system first, so wrapping an encoded string wraps
// its numeric value. The other value types follow Encode.
func (r *Radix) Wrap(value any) (*Wrapped, error) {
	if s, ok := value.(string); ok {
		p, err := format.ScanNumber(s, r.alpha, r.sym)
		if err != nil {
			return nil, err
		}
		d := numeral.Assemble(p.Negative, p.IntDigits, p.FracDigits, p.Exp, r.Base())
		return &Wrapped{r: r, value: d, isInt: !p.HasFraction() && !p.HasExp}, nil
	}

	d, isInt, err := r.toDecimal(value)
	if err != nil {
		return nil, err
	}
	return &Wrapped{r: r, value: d, isInt: isInt}, nil
}

// WrapAll wraps several values, order preserved. The first failing
// value aborts.
func (r *Radix) WrapAll(values ...any) ([]*Wrapped, error) {
	wrapped := make([]*Wrapped, 0, len(values))
	for _, v := range values {
		w, err := r.Wrap(v)
		if err != nil {
			return nil, err
		}
		wrapped = append(wrapped, w)
	}
	return wrapped, nil
}

// Value returns the exact decimal behind the wrapper
func (w *Wrapped) Value() numeral.Decimal {
	return w.value
}

// Encode renders the wrapped value under the given spec, an empty spec
// applies the Radix's default format
func (w *Wrapped) Encode(spec string) (string, error) {
	sp, err := w.r.resolveSpec(spec)
	if err != nil {
		return "", err
	}
	return format.Render(w.value, w.isInt, w.r.alpha, w.r.sym, sp)
}

// String renders the wrapped value under the Radix's default format
func (w *Wrapped) String() string {
	s, err := format.Render(w.value, w.isInt, w.r.alpha, w.r.sym, w.r.defaultSpec)
	if err != nil {
		return w.value.String()
	}
	return s
}

// Format implements fmt.Formatter
func (w *Wrapped) Format(f fmt.State, verb rune) {
	var sp format.Spec

	switch verb {
	case 'f', 'e', 'E', 'd':
		sp.Type = verb
	case 'v', 's':
		sp = w.r.defaultSpec
	default:
		fmt.Fprintf(f, "%%!%c(radix.Wrapped=%s)", verb, w.String())
		return
	}

	if width, ok := f.Width(); ok {
		sp.Width = width
	}
	if prec, ok := f.Precision(); ok {
		sp.Precision = prec
		sp.HasPrec = true
	}
	if f.Flag('+') {
		sp.Sign = format.SignAlways
	} else if f.Flag(' ') {
		sp.Sign = format.SignSpace
	}
	if f.Flag('#') {
		sp.Alternate = true
	}
	if f.Flag('0') {
		sp.ZeroPad = true
	}
	if f.Flag('-') {
		sp.Align = format.AlignLeft
	}

	s, err := format.Render(w.value, w.isInt, w.r.alpha, w.r.sym, sp)
	if err != nil {
		fmt.Fprintf(f, "%%!%c(ERROR=%v)", verb, err)
		return
	}
	io.WriteString(f, s)
}
