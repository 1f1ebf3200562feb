package cfg

import "testing"

func TestIsValidName(t *testing.T) {
	f := func(name, input string, expected bool) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			if got := IsValidName(input); got != expected {
				t.Errorf("IsValidName(%q) = %v, expected %v", input, got, expected)
			}
		})
	}

	f("simple", "window", true)
	f("mixed_case", "WindowSize", true)
	f("underscore_start", "_hidden", true)
	f("underscore_only", "_", true)
	f("digits_after_first", "key1", true)
	f("underscores_inside", "a_b_c", true)

	f("empty", "", false)
	f("digit_start", "9lives", false)
	f("space_inside", "has space", false)
	f("dash_inside", "has-dash", false)
	f("dot_inside", "a.b", false)
	f("non_ascii", "héllo", false)
	f("non_ascii_lookalike", "ｗindow", false)
	f("leading_space", " window", false)
}

func TestSanitizeName(t *testing.T) {
	f := func(name, input, expected string) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			got := SanitizeName(input, '_')
			if got != expected {
				t.Errorf("SanitizeName(%q) = %q, expected %q", input, got, expected)
			}
			if !IsValidName(got) {
				t.Errorf("SanitizeName(%q) = %q is not a valid name", input, got)
			}
			if again := SanitizeName(got, '_'); again != got {
				t.Errorf("SanitizeName is not idempotent: %q became %q", got, again)
			}
		})
	}

	f("already_valid", "window", "window")
	f("preserves_case", "WindowSize", "WindowSize")
	f("space_replaced", "has space", "has_space")
	f("dash_replaced", "has-dash", "has_dash")
	f("symbols_replaced", "a+b*c", "a_b_c")
	f("all_invalid", "***", "___")
	f("empty", "", "_")
	f("whitespace_only", "   ", "_")
	f("surrounding_space_trimmed", "  padded  ", "padded")

	// A leading digit is kept and an underscore is prepended, so no
	// information is lost.
	f("digit_start", "9lives", "_9lives")
	f("digit_only", "1", "_1")

	f("non_ascii_replaced", "héllo", "h_llo")
}

func TestSanitizeNameCustomReplacement(t *testing.T) {
	if got := SanitizeName("has space", 'x'); got != "hasxspace" {
		t.Errorf("expected %q, got %q", "hasxspace", got)
	}
	if got := SanitizeName("", 'x'); got != "x" {
		t.Errorf("expected %q, got %q", "x", got)
	}
}
