package staging

import "strings"

// FallbackName is returned for input that cannot yield a usable name.
const FallbackName = "file.bin"

// maxBaseLen bounds the cleaned base name, in characters.
const maxBaseLen = 200

// Sanitize normalizes an arbitrary, possibly hostile filename into a safe
// staging name of the form "<cleaned-base>.<extension>".
//
// The extension is whatever follows the last dot, defaulting to "bin". Path
// separators, shell metacharacters, markup and quoting characters, and
// control characters are stripped. A base that empties out (or consisted
// solely of dots) becomes "file"; the base is truncated to 200 characters.
// Sanitize is pure and idempotent: it never touches the filesystem and
// re-sanitizing its own output is a no-op.
func Sanitize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return FallbackName
	}

	base, ext := raw, "bin"
	if i := strings.LastIndex(raw, "."); i >= 0 {
		base = raw[:i]
		if e := stripUnsafe(raw[i+1:]); e != "" {
			ext = e
		}
	}

	base = stripUnsafe(base)
	if dotsOnly(base) {
		base = ""
	}
	if base == "" {
		base = "file"
	}
	if r := []rune(base); len(r) > maxBaseLen {
		base = string(r[:maxBaseLen])
	}

	return base + "." + ext
}

// stripUnsafe removes path separators, shell metacharacters, markup and
// quoting characters, and C0/C1 control characters.
func stripUnsafe(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unsafeRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unsafeRune(r rune) bool {
	if r <= 0x1F || (r >= 0x80 && r <= 0x9F) {
		return true
	}
	switch r {
	case '/', '?', '<', '>', '\\', ':', '*', '|', '"',
		'&', '\'', '%', '!', '{', '}', '[', ']':
		return true
	}
	return false
}

func dotsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '.' {
			return false
		}
	}
	return true
}
