// File: presets.go
// Title: Preset Numeral Systems
// Description: Ready-made Radix constructors for the common systems,
//              the dozenal digit conventions, numeric base selection,
//              and the name registry the CLI resolves against.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial preset implementation

package radix

import (
	"sort"
	"strings"

	rxerror "github.com/msto63/radix/core/error"
	rxerrors "github.com/msto63/radix/core/errors"
)

// base62Digits is the canonical digit sequence numeric base selection
// slices from
const base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// base57Digits leaves out I, l, 1, O, and 0 to avoid misreading,
// letters before digits
const base57Digits = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// Dozenal digit and separator conventions. All dozenal presets use the
// Humphrey point ';' as fractional separator.
const (
	dozenalDigits            = "0123456789XE"               // Andrews
	dozenalPitmanDigits      = "0123456789↊↋"     // Pitman turned digits
	dozenalPitmanASCIIDigits = "0123456789TE"               // Pitman ASCII fallback
	dozenalDwigginsDigits    = "0123456789\U0001d4b3ℰ" // Dwiggins script letters
	dozenalKramerDigits      = "0123456789*#"               // Kramer phone keys
)

func mustPreset(digits string, opts Options) *Radix {
	r, err := NewWithOptions(digits, opts)
	if err != nil {
		panic(err)
	}
	return r
}

// Binary returns the base-2 system over 01
func Binary() *Radix {
	return mustPreset("01", Options{})
}

// Octal returns the base-8 system over 0-7
func Octal() *Radix {
	return mustPreset("01234567", Options{})
}

// Decimal returns the base-10 system over 0-9
func Decimal() *Radix {
	return mustPreset("0123456789", Options{})
}

// Hex returns the base-16 system with uppercase letter digits
func Hex() *Radix {
	return mustPreset("0123456789ABCDEF", Options{})
}

// HexLower returns the base-16 system with lowercase letter digits
func HexLower() *Radix {
	return mustPreset("0123456789abcdef", Options{})
}

// Dozenal returns the base-12 system in Andrews notation, X and E for
// ten and eleven with the Humphrey point
func Dozenal() *Radix {
	return mustPreset(dozenalDigits, Options{Sep: ';'})
}

// DozenalPitman returns the base-12 system with Pitman's turned digits
func DozenalPitman() *Radix {
	return mustPreset(dozenalPitmanDigits, Options{Sep: ';'})
}

// DozenalPitmanASCII returns the base-12 system with T and E standing in
// for the Pitman digits
func DozenalPitmanASCII() *Radix {
	return mustPreset(dozenalPitmanASCIIDigits, Options{Sep: ';'})
}

// DozenalDwiggins returns the base-12 system with Dwiggins' script X
// and E
func DozenalDwiggins() *Radix {
	return mustPreset(dozenalDwigginsDigits, Options{Sep: ';'})
}

// DozenalKramer returns the base-12 system with * and # as on a phone
// keypad
func DozenalKramer() *Radix {
	return mustPreset(dozenalKramerDigits, Options{Sep: ';'})
}

// Base57 returns the base-57 system without the easily confused
// characters I, l, 1, O, 0
func Base57() *Radix {
	return mustPreset(base57Digits, Options{})
}

// Base62 returns the base-62 system over digits, uppercase, lowercase
func Base62() *Radix {
	return mustPreset(base62Digits, Options{})
}

// ByBase returns the system of the given base with digits sliced from
// the canonical 0-9A-Za-z sequence. Bases outside [2, 62] fail.
func ByBase(base int) (*Radix, error) {
	if base < 2 || base > len(base62Digits) {
		return nil, rxerrors.AlphabetBaseOutOfRange(base, 2, len(base62Digits))
	}
	return New(base62Digits[:base])
}

// presetRegistry maps CLI names to constructors
var presetRegistry = map[string]func() *Radix{
	"bin":                  Binary,
	"oct":                  Octal,
	"dec":                  Decimal,
	"hex":                  Hex,
	"hex_lc":               HexLower,
	"dozenal":              Dozenal,
	"dozenal_pitman":       DozenalPitman,
	"dozenal_pitman_ascii": DozenalPitmanASCII,
	"dozenal_dwiggins":     DozenalDwiggins,
	"dozenal_kramer":       DozenalKramer,
	"base57":               Base57,
	"base62":               Base62,
}

// Preset returns the named preset system. Unknown names fail with the
// list of valid names in the message.
func Preset(name string) (*Radix, error) {
	ctor, ok := presetRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, rxerrors.NewErrorBuilder(rxerrors.ModuleAlphabet).
			Operation("lookup_preset").
			Messagef("unknown preset %q, valid presets: %s", name, strings.Join(PresetNames(), ", ")).
			Code(rxerror.CodeAlphabetUnknownPreset).
			Detail("name", name).
			Severity(rxerror.SeverityLow).
			Build()
	}
	return ctor(), nil
}

// PresetWithOptions returns the named preset with symbols or default
// format adjusted on top of the preset's own conventions
func PresetWithOptions(name string, opts Options) (*Radix, error) {
	base, err := Preset(name)
	if err != nil {
		return nil, err
	}

	sym := base.sym
	merged := Options{
		Sep:    sym.Sep,
		Neg:    sym.Neg,
		Pos:    sym.Pos,
		Group:  sym.Group,
		Exp:    sym.Exp,
		Format: base.defaultFormat,
	}
	if opts.Sep != 0 {
		merged.Sep = opts.Sep
	}
	if opts.Neg != 0 {
		merged.Neg = opts.Neg
	}
	if opts.Pos != 0 {
		merged.Pos = opts.Pos
	}
	if opts.Group != 0 {
		merged.Group = opts.Group
	}
	if opts.Exp != 0 {
		merged.Exp = opts.Exp
	}
	if opts.Format != "" {
		merged.Format = opts.Format
	}

	return NewWithOptions(base.alpha.String(), merged)
}

// PresetNames returns the registered preset names, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presetRegistry))
	for name := range presetRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
