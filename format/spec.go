// File: spec.go
// Title: Format Specification Type
// Description: Defines the parsed representation of the format
//              mini-language and the default resolution rules the
//              renderer applies to unset fields.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package format

import (
	"strconv"
	"strings"
)

// Alignment runes of the mini-language
const (
	AlignLeft   = '<'
	AlignRight  = '>'
	AlignCenter = '^'
	AlignPad    = '=' // pad between sign and digits
)

// Sign mode runes of the mini-language
const (
	SignAlways  = '+'
	SignNegOnly = '-'
	SignSpace   = ' '
)

// Presentation type letters. TypeGeneral is the absent type.
const (
	TypeFixed   = 'f'
	TypeExp     = 'e'
	TypeExpUp   = 'E'
	TypeInt     = 'd'
	TypeGeneral = rune(0)
)

// defaultPrecision applies to f, e, and E when the spec gives none
const defaultPrecision = 6

// generalSignificance is the total radix-digit budget of general mode:
// the fraction gets whatever the integer part leaves of it.
const generalSignificance = 17

// Spec is a parsed format specification. The zero value is the default
// format: general presentation, no width, no grouping.
//
// Fill, Align, and Sign are stored as parsed; zero means unset. The
// resolution rules for unset fields live in FillRune, AlignMode, and
// SignMode because they depend on other fields (the zero-pad flag turns
// the default alignment into pad-after-sign).
type Spec struct {
	Fill      rune
	Align     rune
	Sign      rune
	Alternate bool
	ZeroPad   bool
	Width     int
	Grouping  bool
	Precision int
	HasPrec   bool
	Type      rune
}

// AlignMode returns the effective alignment: an explicit align rune wins,
// the zero-pad flag implies pad-after-sign, numbers default to right.
func (sp Spec) AlignMode() rune {
	if sp.Align != 0 {
		return sp.Align
	}
	if sp.ZeroPad {
		return AlignPad
	}
	return AlignRight
}

// FillRune returns the effective fill character: an explicit fill wins,
// the zero-pad flag fills with the alphabet's zero digit, otherwise space.
// The caller passes the alphabet's zero digit.
func (sp Spec) FillRune(zeroDigit rune) rune {
	if sp.Fill != 0 {
		return sp.Fill
	}
	if sp.ZeroPad {
		return zeroDigit
	}
	return ' '
}

// SignMode returns the effective sign mode, defaulting to negative-only
func (sp Spec) SignMode() rune {
	if sp.Sign != 0 {
		return sp.Sign
	}
	return SignNegOnly
}

// Prec returns the effective precision for the given default
func (sp Spec) Prec(def int) int {
	if sp.HasPrec {
		return sp.Precision
	}
	return def
}

// String reassembles the canonical spec string
func (sp Spec) String() string {
	var b strings.Builder

	if sp.Fill != 0 {
		b.WriteRune(sp.Fill)
	}
	if sp.Align != 0 {
		b.WriteRune(sp.Align)
	}
	if sp.Sign != 0 {
		b.WriteRune(sp.Sign)
	}
	if sp.Alternate {
		b.WriteByte('#')
	}
	if sp.ZeroPad {
		b.WriteByte('0')
	}
	if sp.Width > 0 {
		b.WriteString(strconv.Itoa(sp.Width))
	}
	if sp.Grouping {
		b.WriteByte(',')
	}
	if sp.HasPrec {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(sp.Precision))
	}
	if sp.Type != TypeGeneral {
		b.WriteRune(sp.Type)
	}

	return b.String()
}
