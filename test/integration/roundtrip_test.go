package integration

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/msto63/radix"
	rxerror "github.com/msto63/radix/core/error"
	"github.com/msto63/radix/numeral"
)

// testSystems returns a representative sweep of numeral systems: the
// preset families plus odd, prime and large bases.
func testSystems(t *testing.T) []*radix.Radix {
	t.Helper()

	systems := []*radix.Radix{
		radix.Binary(),
		radix.Octal(),
		radix.Decimal(),
		radix.Dozenal(),
		radix.Hex(),
		radix.Base57(),
		radix.Base62(),
	}
	for _, base := range []int{3, 5, 7, 11, 36, 49} {
		r, err := radix.ByBase(base)
		if err != nil {
			t.Fatalf("ByBase(%d): %v", base, err)
		}
		systems = append(systems, r)
	}
	return systems
}

// TestRoundTripIntegers checks decode(encode(n)) == n exactly for a sweep
// of integers in every system.
func TestRoundTripIntegers(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, 7, 10, 11, 12, 16, 61, 62, 63, 100, 1727, 1728,
		-144, 65535, 299792458, 1<<40 - 1, -(1 << 52),
	}

	for _, r := range testSystems(t) {
		for _, n := range values {
			s, err := r.EncodeInt64(n, "d")
			if err != nil {
				t.Fatalf("base %d: EncodeInt64(%d): %v", r.Base(), n, err)
			}
			got, err := r.DecodeInt64(s)
			if err != nil {
				t.Fatalf("base %d: DecodeInt64(%q): %v", r.Base(), s, err)
			}
			if got != n {
				t.Errorf("base %d: round trip %d = %q = %d", r.Base(), n, s, got)
			}
		}
	}
}

// TestRoundTripFractions checks that fixed-point encoding at p places
// loses less than base^-p: rounding contributes at most half a unit in
// the last rendered place.
func TestRoundTripFractions(t *testing.T) {
	values := []string{
		"0.5", "-0.25", "0.1", "1/3", "2/3", "142456.25",
		"3.14159265358979", "-1/7", "99.999",
	}
	precisions := []int{4, 8, 17}

	for _, r := range testSystems(t) {
		base := numeral.FromInt64(int64(r.Base()))
		for _, vs := range values {
			v := numeral.MustNew(vs)
			for _, p := range precisions {
				spec := fmt.Sprintf(".%df", p)
				s, err := r.EncodeDecimal(v, spec)
				if err != nil {
					t.Fatalf("base %d: EncodeDecimal(%s, %s): %v", r.Base(), vs, spec, err)
				}
				got, err := r.Decode(s)
				if err != nil {
					t.Fatalf("base %d: Decode(%q): %v", r.Base(), s, err)
				}

				diff := got.Subtract(v).Abs()
				bound := numeral.One().MustDivide(base.Pow(int64(p)))
				if !diff.LessThan(bound) {
					t.Errorf("base %d: |decode(encode(%s, %s)) - %s| = %s, want < base^-%d",
						r.Base(), vs, spec, vs, diff.Text(30), p)
				}
			}
		}
	}
}

// TestDecimalIdentity checks that base 10 with digits 0-9 reproduces
// strconv formatting.
func TestDecimalIdentity(t *testing.T) {
	dec := radix.Decimal()

	for _, n := range []int64{0, 1, -1, 42, 1234567890, -987654} {
		got, err := dec.EncodeInt64(n, "d")
		if err != nil {
			t.Fatalf("EncodeInt64(%d): %v", n, err)
		}
		if want := strconv.FormatInt(n, 10); got != want {
			t.Errorf("EncodeInt64(%d) = %q, want %q", n, got, want)
		}
	}

	for _, f := range []float64{0.5, -2.25, 3.14159, 100, 0.1} {
		got, err := dec.EncodeFloat64(f, ".6f")
		if err != nil {
			t.Fatalf("EncodeFloat64(%g): %v", f, err)
		}
		if want := strconv.FormatFloat(f, 'f', 6, 64); got != want {
			t.Errorf("EncodeFloat64(%g, .6f) = %q, want %q", f, got, want)
		}
	}
}

// TestGroupingDozenal checks that the group separator splits the integer
// part into groups of three digits from the least significant end.
func TestGroupingDozenal(t *testing.T) {
	doz := radix.Dozenal()

	tests := []struct {
		value int64
		want  string
	}{
		{1, "1"},
		{1727, "EEE"},
		{1728, "1,000"},
		{142456, "6X,534"},
		{2985984, "1,000,000"},
		{-1728, "-1,000"},
	}
	for _, tt := range tests {
		got, err := doz.EncodeInt64(tt.value, ",d")
		if err != nil {
			t.Fatalf("EncodeInt64(%d, \",d\"): %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("EncodeInt64(%d, \",d\") = %q, want %q", tt.value, got, tt.want)
		}
	}
}

// TestExponentialRoundTrip checks that exponential presentation survives
// a round trip within the implied relative precision, for magnitudes far
// outside the fixed-point range.
func TestExponentialRoundTrip(t *testing.T) {
	values := []string{"1e+30", "-2.5e+18", "7.25e-12", "1.5e-40"}

	for _, r := range testSystems(t) {
		bound := numeral.One().MustDivide(numeral.FromInt64(int64(r.Base())).Pow(11))

		for _, vs := range values {
			v := numeral.MustNew(vs)
			s, err := r.EncodeDecimal(v, ".12e")
			if err != nil {
				t.Fatalf("base %d: EncodeDecimal(%s, .12e): %v", r.Base(), vs, err)
			}
			got, err := r.Decode(s)
			if err != nil {
				t.Fatalf("base %d: Decode(%q): %v", r.Base(), s, err)
			}

			rel := got.Subtract(v).Abs().MustDivide(v.Abs())
			if rel.GreaterThan(bound) {
				t.Errorf("base %d: relative error of %s via %q = %s, want <= base^-11",
					r.Base(), vs, s, rel.Text(30))
			}
		}
	}
}

// TestDozenalAnchor pins the canonical conversion example end to end.
func TestDozenalAnchor(t *testing.T) {
	doz := radix.Dozenal()

	got, err := doz.Encode(142456.25, ",.4f")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if want := "6X,534;3000"; got != want {
		t.Errorf("Encode(142456.25, \",.4f\") = %q, want %q", got, want)
	}

	v, err := doz.Decode(got)
	if err != nil {
		t.Fatalf("Decode(%q): %v", got, err)
	}
	if !v.Equal(numeral.MustNew("142456.25")) {
		t.Errorf("Decode(%q) = %s, want 142456.25", got, v.Text(6))
	}

	third, err := doz.Encode(numeral.One().MustDivide(numeral.FromInt64(3)), "")
	if err != nil {
		t.Fatalf("Encode(1/3): %v", err)
	}
	if third != "0;4" {
		t.Errorf("Encode(1/3) = %q, want \"0;4\"", third)
	}
}

// TestZeroAcrossSystems checks that zero renders as the single zero digit
// of each alphabet and that all-zero numerals decode to exactly zero.
func TestZeroAcrossSystems(t *testing.T) {
	for _, r := range testSystems(t) {
		zero := string(r.Alphabet().Zero())

		got, err := r.EncodeInt64(0, "d")
		if err != nil {
			t.Fatalf("base %d: EncodeInt64(0): %v", r.Base(), err)
		}
		if got != zero {
			t.Errorf("base %d: EncodeInt64(0) = %q, want %q", r.Base(), got, zero)
		}

		v, err := r.Decode(strings.Repeat(zero, 4))
		if err != nil {
			t.Fatalf("base %d: Decode(%q): %v", r.Base(), strings.Repeat(zero, 4), err)
		}
		if !v.IsZero() {
			t.Errorf("base %d: Decode(%q) = %s, want 0", r.Base(), strings.Repeat(zero, 4), v.String())
		}
	}
}

// TestErrorKindsDistinguishable checks that the four error families keep
// their codes through the public API.
func TestErrorKindsDistinguishable(t *testing.T) {
	if _, err := radix.New("0"); !rxerror.HasCode(err, rxerror.CodeAlphabetTooShort) {
		t.Errorf("New(\"0\") error = %v, want code %s", err, rxerror.CodeAlphabetTooShort)
	}

	doz := radix.Dozenal()

	if _, err := doz.Encode(struct{}{}, ""); !rxerror.HasCode(err, rxerror.CodeValueUnsupported) {
		t.Errorf("Encode(struct{}{}) error = %v, want code %s", err, rxerror.CodeValueUnsupported)
	}

	if _, err := doz.Decode("1Z"); !rxerror.HasCode(err, rxerror.CodeDecodeInvalidDigit) {
		t.Errorf("Decode(\"1Z\") error = %v, want code %s", err, rxerror.CodeDecodeInvalidDigit)
	}
	if _, err := doz.Decode("1Z"); !rxerror.HasCategory(err, "decode") {
		t.Errorf("Decode(\"1Z\") error not in category decode")
	}

	if _, err := doz.Encode(1, "10q"); !rxerror.HasCode(err, rxerror.CodeFormatSpecUnknownType) {
		t.Errorf("Encode(1, \"10q\") error = %v, want code %s", err, rxerror.CodeFormatSpecUnknownType)
	}
}

// TestConcurrentUse hammers a shared Radix from several goroutines. The
// value is immutable after construction, so round trips must stay exact
// without coordination.
func TestConcurrentUse(t *testing.T) {
	doz := radix.Dozenal()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			for i := int64(0); i < 200; i++ {
				n := seed*1000 + i
				s, err := doz.EncodeInt64(n, ",d")
				if err != nil {
					t.Errorf("EncodeInt64(%d): %v", n, err)
					return
				}
				got, err := doz.DecodeInt64(s)
				if err != nil || got != n {
					t.Errorf("round trip %d = %q = %d (%v)", n, s, got, err)
					return
				}
			}
		}(int64(g))
	}
	wg.Wait()
}
