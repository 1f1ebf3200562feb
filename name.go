package cfg

import "strings"

// IsValidName reports whether name is usable as a key or section name: it
// must be non-empty, start with an ASCII letter or underscore, and contain
// only ASCII letters, digits and underscores after that. The check is
// case-insensitive.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		lower := r | 0x20
		letter := lower >= 'a' && lower <= 'z' && r < 0x80

		if i == 0 {
			if !letter && r != '_' {
				return false
			}
			continue
		}

		if !letter && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}

	return true
}

// SanitizeName returns name with every character that violates the name
// rules replaced by repl. Surrounding whitespace is trimmed first; if
// nothing remains, the replacement character alone is returned. A leading
// digit is kept but an underscore is prepended so the result starts legally.
// Sanitizing an already-valid name returns it unchanged, and the function is
// deterministic, so it is idempotent.
func SanitizeName(name string, repl rune) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return string(repl)
	}

	var (
		b        strings.Builder
		numStart = false
		first    = true
	)
	b.Grow(len(name))

	for _, r := range name {
		lower := r | 0x20
		letter := lower >= 'a' && lower <= 'z' && r < 0x80
		digit := r >= '0' && r <= '9'

		if first {
			first = false
			if digit {
				numStart = true
				b.WriteRune(r)
				continue
			}
			if !letter && r != '_' {
				b.WriteRune(repl)
				continue
			}
			b.WriteRune(r)
			continue
		}

		if !letter && !digit && r != '_' {
			b.WriteRune(repl)
			continue
		}
		b.WriteRune(r)
	}

	if numStart {
		return "_" + b.String()
	}

	return b.String()
}
