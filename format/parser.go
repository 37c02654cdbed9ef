// File: parser.go
// Title: Format Specification Parser
// Description: Implements the parser for the format mini-language
//              [[fill]align][sign][#][0][minimumwidth][,][.precision][type]
//              as a position-tracked rune scanner. The scanner is
//              rune-based because fill characters may be multi-byte.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial parser implementation

package format

import (
	"unicode/utf8"

	rxerrors "github.com/msto63/radix/core/errors"
)

// specScanner walks a spec string rune by rune
type specScanner struct {
	input    string
	position int  // Byte offset of the current rune
	readPos  int  // Byte offset after the current rune
	ch       rune // Current rune under examination, 0 at EOF
}

func newSpecScanner(input string) *specScanner {
	s := &specScanner{input: input}
	s.readChar() // Initialize first rune
	return s
}

// readChar reads the next rune and advances position
func (s *specScanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0
		s.position = s.readPos
		return
	}
	r, size := utf8.DecodeRuneInString(s.input[s.readPos:])
	s.ch = r
	s.position = s.readPos
	s.readPos += size
}

// peekChar returns the next rune without advancing position
func (s *specScanner) peekChar() rune {
	if s.readPos >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.readPos:])
	return r
}

func isAlign(r rune) bool {
	return r == AlignLeft || r == AlignRight || r == AlignCenter || r == AlignPad
}

func isSign(r rune) bool {
	return r == SignAlways || r == SignNegOnly || r == SignSpace
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// readInt reads a run of ASCII digits as a non-negative integer
func (s *specScanner) readInt() int {
	n := 0
	for isASCIIDigit(s.ch) {
		n = n*10 + int(s.ch-'0')
		s.readChar()
	}
	return n
}

// ParseSpec parses a format specification string. The empty string is the
// default (general) spec. Unrecognized or out-of-order characters fail
// with the format-spec error kind.
func ParseSpec(input string) (Spec, error) {
	var sp Spec
	s := newSpecScanner(input)

	// [[fill]align]: a fill is only a fill when an align rune follows it,
	// so an align rune itself works as a fill ("<<8").
	if s.ch != 0 && isAlign(s.peekChar()) {
		sp.Fill = s.ch
		s.readChar()
		sp.Align = s.ch
		s.readChar()
	} else if isAlign(s.ch) {
		sp.Align = s.ch
		s.readChar()
	}

	// [sign]
	if isSign(s.ch) {
		sp.Sign = s.ch
		s.readChar()
	}

	// [#]
	if s.ch == '#' {
		sp.Alternate = true
		s.readChar()
	}

	// [0]
	if s.ch == '0' {
		sp.ZeroPad = true
		s.readChar()
	}

	// [minimumwidth]
	if isASCIIDigit(s.ch) {
		sp.Width = s.readInt()
	}

	// [,]
	if s.ch == ',' || s.ch == '_' {
		sp.Grouping = true
		s.readChar()
	}

	// [.precision]
	if s.ch == '.' {
		s.readChar()
		if !isASCIIDigit(s.ch) {
			return Spec{}, rxerrors.FormatSpecBadPrecision(input)
		}
		sp.Precision = s.readInt()
		sp.HasPrec = true
	}

	// [type]
	switch s.ch {
	case 0:
		// No type: general presentation
	case TypeFixed, TypeExp, TypeExpUp, TypeInt:
		sp.Type = s.ch
		s.readChar()
	default:
		return Spec{}, rxerrors.FormatSpecUnknownType(input, s.ch)
	}

	// Nothing may follow the type letter
	if s.ch != 0 {
		return Spec{}, rxerrors.FormatSpecInvalid(input, "unexpected trailing characters")
	}

	return sp, nil
}

// MustParseSpec parses a spec, panicking on error
// Use this for literal specs known to be valid
func MustParseSpec(input string) Spec {
	sp, err := ParseSpec(input)
	if err != nil {
		panic(err)
	}
	return sp
}
