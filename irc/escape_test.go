package irc

import "testing"

func TestUnescapeTagValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"space", `hello\schat`, "hello chat"},
		{"semicolon", `a\:b`, "a;b"},
		{"backslash", `a\\b`, `a\b`},
		{"all three", `\:\s\\`, `; \`},
		{"consecutive", `\s\s\s`, "   "},
		{"trailing backslash", `abc\`, `abc\`},
		{"unrecognized escape", `a\nb`, `a\nb`},
		{"escaped backslash then s", `a\\sb`, `a\sb`},
		{"system msg", `10\smonths,\scool!`, "10 months, cool!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unescapeTagValue(tt.in); got != tt.want {
				t.Errorf("unescapeTagValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescapeTagValueNoAllocFastPath(t *testing.T) {
	in := "no escapes here"
	if got := unescapeTagValue(in); got != in {
		t.Errorf("fast path changed input: %q", got)
	}
}
