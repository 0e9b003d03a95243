package pwz

import (
	"strings"
	"unicode/utf8"
)

// match checks a single token against a character class label.
// The empty token stands for the end of input and matches the empty label only.
func match(label, token string) bool {
	if token == "" {
		return label == ""
	}
	if strings.HasPrefix(label, `\`) {
		switch label {
		case `\.`:
			return true
		case `\^`:
			return token == "^"
		case `\`:
			return token == `\`
		}
		return strings.Contains(label[1:], token)
	}
	if strings.HasPrefix(label, "^") {
		return !match(label[1:], token)
	}
	if utf8.RuneCountInString(label) == 3 {
		r := []rune(label)
		if r[1] == '-' {
			t, _ := utf8.DecodeRuneInString(token)
			return r[0] <= t && t <= r[2]
		}
	}
	return strings.Contains(label, token)
}

// Match is the exported version of the character matcher, for clients which want
// to check character classes for Tok beforehand.
func Match(label, token string) bool {
	return match(label, token)
}

// escape returns a label matching exactly rune r.
func escape(r rune) string {
	switch r {
	case '\\':
		return `\`
	case '^':
		return `\^`
	}
	return string(r)
}
