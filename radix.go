// File: radix.go
// Title: Radix Conversion Facade
// Description: The user-facing type of the conversion engine. A Radix
//              binds a digit alphabet to presentation symbols and a
//              default format, and converts values between decimal and
//              its positional numeral system in both directions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial facade implementation

package radix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/msto63/radix/alphabet"
	rxerrors "github.com/msto63/radix/core/errors"
	"github.com/msto63/radix/format"
	"github.com/msto63/radix/numeral"
)

// Options adjusts the presentation symbols and the default format spec of
// a Radix. Zero runes keep the default symbols, an empty Format keeps the
// general presentation.
type Options struct {
	Sep    rune
	Neg    rune
	Pos    rune
	Group  rune
	Exp    rune
	Format string
}

// Radix converts between decimal values and the numeral strings of one
// positional system. A Radix is immutable after construction and safe
// for concurrent use.
type Radix struct {
	alpha         alphabet.Alphabet
	sym           alphabet.Symbols
	defaultSpec   format.Spec
	defaultFormat string
}

// New creates a Radix over the given digit string with default symbols.
// The digit string defines the base: position is value.
func New(digits string) (*Radix, error) {
	return NewWithOptions(digits, Options{})
}

// NewWithOptions creates a Radix with adjusted symbols or a default
// format spec. Symbol collisions with the alphabet fail here, not at
// conversion time.
func NewWithOptions(digits string, opts Options) (*Radix, error) {
	a, err := alphabet.New(digits)
	if err != nil {
		return nil, err
	}

	sym := alphabet.DefaultSymbols()
	if opts.Sep != 0 {
		sym.Sep = opts.Sep
	}
	if opts.Neg != 0 {
		sym.Neg = opts.Neg
	}
	if opts.Pos != 0 {
		sym.Pos = opts.Pos
	}
	if opts.Group != 0 {
		sym.Group = opts.Group
	}
	if opts.Exp != 0 {
		sym.Exp = opts.Exp
	}

	if err := sym.Validate(a); err != nil {
		return nil, err
	}

	r := &Radix{alpha: a, sym: sym}
	if opts.Format != "" {
		sp, err := format.ParseSpec(opts.Format)
		if err != nil {
			return nil, err
		}
		r.defaultSpec = sp
		r.defaultFormat = opts.Format
	}

	return r, nil
}

// MustNew creates a Radix, panicking on error
// Use this for digit strings known to be valid
func MustNew(digits string) *Radix {
	r, err := New(digits)
	if err != nil {
		panic(err)
	}
	return r
}

// Base returns the number of digits in the alphabet
func (r *Radix) Base() int {
	return r.alpha.Base()
}

// Alphabet returns the digit alphabet
func (r *Radix) Alphabet() alphabet.Alphabet {
	return r.alpha
}

// Symbols returns the presentation symbols
func (r *Radix) Symbols() alphabet.Symbols {
	return r.sym
}

// String describes the Radix for logs and error messages
func (r *Radix) String() string {
	return fmt.Sprintf("Radix(base %d, digits %q)", r.Base(), r.alpha.String())
}

// resolveSpec parses a spec string, falling back to the default spec
func (r *Radix) resolveSpec(spec string) (format.Spec, error) {
	if spec == "" {
		return r.defaultSpec, nil
	}
	return format.ParseSpec(spec)
}

// toDecimal converts an input value to its exact decimal and reports
// whether it takes the integer rendering path. Integer-typed inputs do,
// float64 and fractional strings keep a fraction even when integral.
func (r *Radix) toDecimal(value any) (numeral.Decimal, bool, error) {
	switch v := value.(type) {
	case int:
		return numeral.FromInt64(int64(v)), true, nil
	case int8:
		return numeral.FromInt64(int64(v)), true, nil
	case int16:
		return numeral.FromInt64(int64(v)), true, nil
	case int32:
		return numeral.FromInt64(int64(v)), true, nil
	case int64:
		return numeral.FromInt64(v), true, nil
	case uint:
		return numeral.FromUint64(uint64(v)), true, nil
	case uint8:
		return numeral.FromInt64(int64(v)), true, nil
	case uint16:
		return numeral.FromInt64(int64(v)), true, nil
	case uint32:
		return numeral.FromInt64(int64(v)), true, nil
	case uint64:
		return numeral.FromUint64(v), true, nil
	case *big.Int:
		return numeral.FromBigInt(v), true, nil
	case float32:
		d, err := numeral.FromFloat64(float64(v))
		if err != nil {
			return numeral.Decimal{}, false, err
		}
		return d, false, nil
	case float64:
		d, err := numeral.FromFloat64(v)
		if err != nil {
			return numeral.Decimal{}, false, err
		}
		return d, false, nil
	case numeral.Decimal:
		return v, v.IsInt(), nil
	case string:
		s := strings.TrimSpace(v)
		d, err := numeral.New(s)
		if err != nil {
			return numeral.Decimal{}, false, rxerrors.ValueUnsupported("encode", value)
		}
		return d, isIntegerLiteral(s), nil
	default:
		return numeral.Decimal{}, false, rxerrors.ValueUnsupported("encode", value)
	}
}

// isIntegerLiteral reports whether s is a pure integer literal, an
// optional sign followed by ASCII digits only
func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Encode renders a value as a numeral string of this system. The value
// may be any Go integer type, *big.Int, float32/float64, a
// numeral.Decimal, or a decimal string. An empty spec applies the
// Radix's default format.
func (r *Radix) Encode(value any, spec string) (string, error) {
	sp, err := r.resolveSpec(spec)
	if err != nil {
		return "", err
	}

	d, isInt, err := r.toDecimal(value)
	if err != nil {
		return "", err
	}

	return format.Render(d, isInt, r.alpha, r.sym, sp)
}

// EncodeInt64 renders an integer value
func (r *Radix) EncodeInt64(value int64, spec string) (string, error) {
	return r.Encode(value, spec)
}

// EncodeFloat64 renders a float value
func (r *Radix) EncodeFloat64(value float64, spec string) (string, error) {
	return r.Encode(value, spec)
}

// EncodeDecimal renders an exact decimal value
func (r *Radix) EncodeDecimal(value numeral.Decimal, spec string) (string, error) {
	return r.Encode(value, spec)
}

// Decode parses a numeral string of this system into its exact decimal
// value. Grouping symbols are tolerated, an exponent suffix scales by
// the base.
func (r *Radix) Decode(s string) (numeral.Decimal, error) {
	p, err := format.ScanNumber(s, r.alpha, r.sym)
	if err != nil {
		return numeral.Decimal{}, err
	}
	return numeral.Assemble(p.Negative, p.IntDigits, p.FracDigits, p.Exp, r.Base()), nil
}

// DecodeFloat64 decodes a numeral string to the nearest float64
func (r *Radix) DecodeFloat64(s string) (float64, error) {
	d, err := r.Decode(s)
	if err != nil {
		return 0, err
	}
	return d.Float64(), nil
}

// DecodeInt64 decodes a numeral string to an int64. Values with a
// fractional part or beyond the int64 range fail.
func (r *Radix) DecodeInt64(s string) (int64, error) {
	d, err := r.Decode(s)
	if err != nil {
		return 0, err
	}
	return d.Int64()
}
