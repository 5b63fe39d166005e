package version

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Version
		wantErr  bool
	}{
		{
			name:     "plain_four_part",
			input:    "1.8.0.0",
			expected: Version{Major: 1, Minor: 8},
		},
		{
			name:     "with_build_suffix",
			input:    "1.9.2.0-1042",
			expected: Version{Major: 1, Minor: 9, Patch: 2, Build: 1042},
		},
		{
			name:     "zero_build_suffix",
			input:    "2.0.0.1-0",
			expected: Version{Major: 2, Revision: 1},
		},
		{
			name:    "three_parts",
			input:   "1.8.0",
			wantErr: true,
		},
		{
			name:    "five_parts",
			input:   "1.8.0.0.3",
			wantErr: true,
		},
		{
			name:    "non_numeric_component",
			input:   "1.x.0.0",
			wantErr: true,
		},
		{
			name:    "non_numeric_build",
			input:   "1.8.0.0-beta",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative_component",
			input:   "1.-8.0.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("Parse(%q) = %+v, expected %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{name: "equal", a: "1.8.0.0", b: "1.8.0.0", expected: true},
		{name: "equal_with_build", a: "1.8.0.0-100", b: "1.8.0.0-100", expected: true},
		{name: "higher_major", a: "2.0.0.0", b: "1.9.9.9-9999", expected: true},
		{name: "lower_major", a: "1.9.9.9-9999", b: "2.0.0.0", expected: false},
		{name: "higher_minor", a: "1.9.0.0", b: "1.8.7.0", expected: true},
		{name: "higher_patch", a: "1.8.1.0", b: "1.8.0.9", expected: true},
		{name: "higher_revision", a: "1.8.0.2", b: "1.8.0.1", expected: true},
		{name: "build_breaks_tie", a: "1.8.0.0-1201", b: "1.8.0.0-1200", expected: true},
		{name: "build_below_threshold", a: "1.8.0.0-1200", b: "1.8.0.0-1201", expected: false},
		{name: "missing_build_is_zero", a: "1.8.0.0", b: "1.8.0.0-1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParse(tt.a)
			b := MustParse(tt.b)
			if got := a.AtLeast(b); got != tt.expected {
				t.Errorf("AtLeast(%s, %s) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := MustParse("1.9.2.0-1042").String(); got != "1.9.2.0-1042" {
		t.Errorf("String() = %q, expected %q", got, "1.9.2.0-1042")
	}
	if got := MustParse("1.8.0.0").String(); got != "1.8.0.0" {
		t.Errorf("String() = %q, expected %q", got, "1.8.0.0")
	}
}
