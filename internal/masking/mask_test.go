package masking

import (
	"strings"
	"testing"
)

func TestMaskShortInputsUnchanged(t *testing.T) {
	t.Parallel()

	for _, phone := range []string{"", "1", "12", "123", "1234"} {
		if got := Mask(phone); got != phone {
			t.Fatalf("Mask(%q) = %q, want unchanged", phone, got)
		}
	}
}

func TestMaskKeepsPrefixAndSuffix(t *testing.T) {
	t.Parallel()

	for _, phone := range []string{"12345", "5551234567", "+49 170 1234567", "abcdefgh"} {
		got := Mask(phone)
		in := []rune(phone)
		out := []rune(got)

		if len(out) != len(in) {
			t.Fatalf("Mask(%q) changed length: %q", phone, got)
		}
		if string(out[:3]) != string(in[:3]) {
			t.Fatalf("Mask(%q) altered prefix: %q", phone, got)
		}
		if string(out[len(out)-2:]) != string(in[len(in)-2:]) {
			t.Fatalf("Mask(%q) altered suffix: %q", phone, got)
		}
		for _, r := range out[3 : len(out)-2] {
			if r != '*' {
				t.Fatalf("Mask(%q) left interior character visible: %q", phone, got)
			}
		}
	}
}

func TestMaskKnownNumber(t *testing.T) {
	t.Parallel()

	if got := Mask("5551234567"); got != "555*****67" {
		t.Fatalf("Mask(5551234567) = %q, want 555*****67", got)
	}
	if strings.Contains(Mask("5551234567"), "12345") {
		t.Fatal("masked phone leaks interior digits")
	}
}
