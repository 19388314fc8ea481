package types

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMag float64
		wantUnit string
	}{
		{"magnitude and unit", "1.234 nm", 1.234, "nm"},
		{"bare number", "5", 5.0, ""},
		{"negative", "-4.2 mm", -4.2, "mm"},
		{"scientific notation", "5.043e-009 A", 5.043e-9, "A"},
		{"multi-word unit", "25.00 K X", 25.0, "K X"},
		{"surrounding whitespace", "  20.00 kV  ", 20.0, "kV"},
		{"zero", "0", 0.0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mag, unit, err := ParseValue(tc.input)
			if err != nil {
				t.Fatalf("ParseValue(%q) error = %v", tc.input, err)
			}
			if mag != tc.wantMag || unit != tc.wantUnit {
				t.Errorf("ParseValue(%q) = (%v, %q), want (%v, %q)",
					tc.input, mag, unit, tc.wantMag, tc.wantUnit)
			}
		})
	}
}

func TestParseValue_Malformed(t *testing.T) {
	for _, input := range []string{"abc nm", "", "nm 1.234", "--5"} {
		_, _, err := ParseValue(input)
		if err == nil {
			t.Errorf("ParseValue(%q) expected error, got nil", input)
			continue
		}
		var malformed *MalformedValueError
		if !errors.As(err, &malformed) {
			t.Errorf("ParseValue(%q) error = %T, want *MalformedValueError", input, err)
		}
	}
}

func TestNewValue(t *testing.T) {
	numeric := NewValue("20.00 kV")
	if !numeric.Numeric || numeric.Magnitude != 20.0 || numeric.Unit != "kV" {
		t.Errorf("NewValue numeric = %+v", numeric)
	}
	if numeric.Raw != "20.00 kV" {
		t.Errorf("Raw = %q, want original text", numeric.Raw)
	}

	text := NewValue("InLens")
	if text.Numeric {
		t.Errorf("NewValue(%q) classified as numeric", "InLens")
	}
	if text.String() != "InLens" {
		t.Errorf("String() = %q", text.String())
	}
}
