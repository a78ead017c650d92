package syntax

// Character-class predicates shared by colorizers. They are deliberately
// ASCII-only: tokens are ASCII by the language definitions, and non-ASCII
// delimiter characters (the cent and pound signs) are matched by exact code
// point, never case-folded.

// IsBlank reports whether c is a space or tab.
func IsBlank(c rune) bool {
	return c == ' ' || c == '\t'
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsUpper reports whether c is an ASCII upper-case letter.
func IsUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c rune) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsWord reports whether c is an ASCII letter, digit, or underscore.
func IsWord(c rune) bool {
	return IsAlnum(c) || c == '_'
}

// ToLower lower-cases an ASCII letter and returns every other rune unchanged.
func ToLower(c rune) rune {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
