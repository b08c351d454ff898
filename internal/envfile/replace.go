package envfile

import "strings"

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

// Line formats a KEY="VALUE" assignment.
func Line(key, value string) string {
	return key + `="` + quoteReplacer.Replace(value) + `"`
}

// Replace rewrites every assignment of key in content to the given value.
// When no assignment exists, one is appended. It reports whether an existing
// assignment was rewritten.
func Replace(content, key, value string) (string, bool) {
	var b strings.Builder
	b.Grow(len(content) + len(key) + len(value) + 4)

	replaced := false
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			continue
		}

		body, eol := splitEOL(line)
		prefix, ok := matchKey(body, key)
		if !ok {
			b.WriteString(line)
			continue
		}

		replaced = true
		b.WriteString(prefix)
		b.WriteString(Line(key, value))
		b.WriteString(eol)
	}

	if replaced {
		return b.String(), true
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(Line(key, value))
	b.WriteString("\n")

	return b.String(), false
}

func splitEOL(line string) (string, string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}

// matchKey reports whether line assigns key and returns what precedes the key
// (indentation and an optional export keyword).
func matchKey(line, key string) (string, bool) {
	rest := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(rest)]

	if after, ok := strings.CutPrefix(rest, "export "); ok {
		trimmed := strings.TrimLeft(after, " \t")
		indent += rest[:len(rest)-len(trimmed)]
		rest = trimmed
	}

	after, ok := strings.CutPrefix(rest, key)
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(strings.TrimLeft(after, " \t"), "=") {
		return "", false
	}

	return indent, true
}
