package render

import "testing"

func TestDedent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"uniform spaces", "    x\n    y\n", "x\ny\n"},
		{"mixed depth", "    a\n      b\n", "a\n  b\n"},
		{"no indent", "a\nb", "a\nb"},
		{"no common prefix", "    a\nb\n", "    a\nb\n"},
		{"tabs", "\t\ta\n\t\tb", "a\nb"},
		{"blank lines ignored", "    a\n\n    b\n", "a\n\nb\n"},
		{"whitespace-only line ignored", "    a\n  \n    b", "a\n  \nb"},
		{"empty", "", ""},
		{"all blank", "\n  \n", "\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dedent(tt.input); got != tt.want {
				t.Errorf("Dedent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
