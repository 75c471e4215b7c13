package render

import "strings"

// Dedent strips the longest whitespace prefix common to all non-blank
// lines from every line. Blank (whitespace-only) lines are ignored when
// computing the prefix and are left alone when they do not carry it.
func Dedent(code string) string {
	lines := strings.Split(code, "\n")

	margin := ""
	found := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		prefix := line[:len(line)-len(trimmed)]
		if !found {
			margin = prefix
			found = true
			continue
		}
		margin = commonPrefix(margin, prefix)
		if margin == "" {
			return code
		}
	}
	if margin == "" {
		return code
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
